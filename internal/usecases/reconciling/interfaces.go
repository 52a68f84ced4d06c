package reconciling

import (
	"time"

	"github.com/vfg2006/receivables-recon-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// ExtractLoader lista o diretório de extratos e carrega os registros de um
// extrato escolhido pelo resolver.
type ExtractLoader interface {
	// ListExtracts retorna os nomes dos arquivos presentes no diretório de extratos
	ListExtracts() ([]string, error)

	// LoadRecords carrega os registros válidos de um extrato
	LoadRecords(snapshot *domain.Snapshot) ([]domain.Record, error)
}

// Reconciler executa a reconciliação semanal completa para uma data de referência
type Reconciler interface {
	Reconcile(referenceDate time.Time) (*domain.ReconciliationReport, error)
}

// ReportExporter persiste as seções do relatório no documento de saída e
// retorna o caminho do arquivo gerado.
type ReportExporter interface {
	Write(report *domain.ReconciliationReport) (string, error)
}
