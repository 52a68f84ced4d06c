package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/receivables-recon-api/infrastructure/repository"
	"github.com/vfg2006/receivables-recon-api/internal/config"
	"github.com/vfg2006/receivables-recon-api/internal/domain"
	"github.com/vfg2006/receivables-recon-api/internal/usecases/reconciling"
	"github.com/vfg2006/receivables-recon-api/pkg/utils"
)

// ReconciliationSyncService gerencia o agendamento da reconciliação semanal
// de contas a receber e registra cada execução no histórico.
type ReconciliationSyncService struct {
	scheduler           *gocron.Scheduler
	config              config.ReconciliationSync
	reconciler          reconciling.Reconciler
	exporter            reconciling.ReportExporter
	runRepo             repository.ReconciliationRunRepository
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastReportPath      string
}

// NewReconciliationSyncService cria o serviço de sincronização. O repositório
// de histórico pode ser nil quando o banco não está disponível; nesse caso as
// execuções não são registradas.
func NewReconciliationSyncService(
	reconciler reconciling.Reconciler,
	exporter reconciling.ReportExporter,
	runRepo repository.ReconciliationRunRepository,
	appConfig *config.Config,
) *ReconciliationSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": appConfig.ReconciliationSync.CronSchedule,
		"sync_enabled":  appConfig.ReconciliationSync.Enabled,
	}).Info("Configuração do agendador de reconciliação carregada")

	return &ReconciliationSyncService{
		scheduler:   scheduler,
		config:      appConfig.ReconciliationSync,
		reconciler:  reconciler,
		exporter:    exporter,
		runRepo:     runRepo,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *ReconciliationSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Reconciliação agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).
		Info("Iniciando agendador de reconciliação semanal")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runReconciliation(time.Now())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconciliação semanal: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de reconciliação semanal")
		s.scheduler.Stop()
	}()

	return nil
}

// RunOnce executa a reconciliação de forma síncrona para a data de
// referência informada. Usada pelo disparo manual via API.
func (s *ReconciliationSyncService) RunOnce(referenceDate time.Time) (*domain.ReconciliationRun, error) {
	return s.runReconciliation(referenceDate)
}

// TriggerManualSync inicia uma reconciliação em segundo plano, ignorando a
// solicitação se já houver uma em andamento.
func (s *ReconciliationSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconciliação já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando reconciliação manual")
	go func() {
		_, _ = s.runReconciliation(time.Now())
	}()
}

// GetStatus retorna o status atual do agendador
func (s *ReconciliationSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_report_path":       s.lastReportPath,
	}
}

func (s *ReconciliationSyncService) runReconciliation(referenceDate time.Time) (*domain.ReconciliationRun, error) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconciliação já em andamento, ignorando")
		return nil, nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		logrus.WithError(err).Warn("Erro ao gerar o identificador da execução")
	}

	run := &domain.ReconciliationRun{
		ID:            runID,
		ReferenceDate: utils.TruncateToDate(referenceDate),
		CreatedAt:     time.Now(),
	}

	report, err := s.reconciler.Reconcile(referenceDate)
	if err != nil {
		run.Status = domain.RunStatusFailed
		run.FailureReason = err.Error()
		s.saveRun(run)
		return run, err
	}

	fillRunFromReport(run, report)

	reportPath, err := s.exporter.Write(report)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gravar o relatório de reconciliação")
		run.Status = domain.RunStatusFailed
		run.FailureReason = err.Error()
		s.saveRun(run)
		return run, err
	}

	s.syncMutex.Lock()
	s.lastReportPath = reportPath
	s.syncMutex.Unlock()

	run.Status = domain.RunStatusSucceeded
	s.saveRun(run)

	logrus.WithFields(logrus.Fields{
		"run_id":      run.ID,
		"report_path": reportPath,
	}).Info("Reconciliação agendada concluída")

	return run, nil
}

// saveRun registra a execução no histórico quando o repositório está
// disponível. Falhas de persistência não interrompem a execução.
func (s *ReconciliationSyncService) saveRun(run *domain.ReconciliationRun) {
	if s.runRepo == nil {
		return
	}

	if err := s.runRepo.Save(run); err != nil {
		logrus.WithError(err).WithField("run_id", run.ID).
			Warn("Erro ao registrar a execução no histórico")
	}
}

func fillRunFromReport(run *domain.ReconciliationRun, report *domain.ReconciliationReport) {
	run.CurrentRows = len(report.CurrentData)
	run.PreviousRows = len(report.PreviousData)

	for _, info := range report.FileInfo {
		switch info.Role {
		case reconciling.RoleCurrent:
			run.CurrentFile = info.FileName
		case reconciling.RolePrevious:
			run.PreviousFile = info.FileName
		}
	}
}
