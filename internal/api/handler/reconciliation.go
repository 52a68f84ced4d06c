package handler

import (
	"errors"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/receivables-recon-api/infrastructure/repository"
	"github.com/vfg2006/receivables-recon-api/internal/scheduler"
	"github.com/vfg2006/receivables-recon-api/internal/usecases/reconciling"
	"github.com/vfg2006/receivables-recon-api/pkg/apiErrors"
	"github.com/vfg2006/receivables-recon-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ReconciliationServices agrupa as dependências das rotas de reconciliação.
// O repositório de histórico pode ser nil quando o banco não está disponível.
type ReconciliationServices struct {
	Reconciler  reconciling.Reconciler
	SyncService *scheduler.ReconciliationSyncService
	RunRepo     repository.ReconciliationRunRepository
}

// RunReconciliation executa a reconciliação de forma síncrona e retorna o
// registro da execução. A data de referência vem do parâmetro
// reference_date (ISO) e vale hoje quando ausente.
func RunReconciliation(services ReconciliationServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunReconciliation")

		referenceDate, ok := referenceDateFromRequest(w, r)
		if !ok {
			return
		}

		if services.SyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de reconciliação não disponível", nil)
			return
		}

		run, err := services.SyncService.RunOnce(referenceDate)
		if err != nil {
			writeReconciliationError(w, err)
			return
		}

		if run == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Reconciliação já em andamento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(run); err != nil {
			logrus.Error("Erro ao enviar resposta da reconciliação:", err)
		}
	}
}

// GetReconciliationReport executa a reconciliação e retorna o relatório
// completo em JSON, sem gravar o documento de saída nem registrar execução.
func GetReconciliationReport(services ReconciliationServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		referenceDate, ok := referenceDateFromRequest(w, r)
		if !ok {
			return
		}

		report, err := services.Reconciler.Reconcile(referenceDate)
		if err != nil {
			writeReconciliationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.Error("Erro ao enviar resposta do relatório:", err)
		}
	}
}

// GetReconciliationStatus retorna o status atual do agendador
func GetReconciliationStatus(services ReconciliationServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if services.SyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de reconciliação não disponível", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(services.SyncService.GetStatus()); err != nil {
			logrus.Error("Erro ao enviar resposta do status:", err)
		}
	}
}

// ListReconciliationRuns retorna as execuções mais recentes do histórico
func ListReconciliationRuns(services ReconciliationServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if services.RunRepo == nil {
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Histórico de execuções não disponível", nil)
			return
		}

		runs, err := services.RunRepo.ListRecent(10)
		if err != nil {
			logrus.Error("Erro ao listar o histórico de execuções:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar o histórico de execuções", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(runs); err != nil {
			logrus.Error("Erro ao enviar resposta do histórico:", err)
		}
	}
}

func referenceDateFromRequest(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	raw := r.URL.Query().Get("reference_date")
	if raw == "" {
		return time.Now(), true
	}

	referenceDate, err := utils.ParseDate(raw)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat,
			"Data de referência inválida, use o formato AAAA-MM-DD", nil)
		return time.Time{}, false
	}

	return *referenceDate, true
}

func writeReconciliationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, reconciling.ErrNoCurrentSnapshot):
		apiErrors.WriteError(w, apiErrors.ErrNoCurrentSnapshot, err.Error(), nil)
	case errors.Is(err, reconciling.ErrEmptyCurrentData):
		apiErrors.WriteError(w, apiErrors.ErrEmptyCurrentData, err.Error(), nil)
	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao executar a reconciliação", nil)
	}
}
