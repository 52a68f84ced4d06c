package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/receivables-recon-api/infrastructure/repository/mocks"
	"github.com/vfg2006/receivables-recon-api/internal/config"
	"github.com/vfg2006/receivables-recon-api/internal/domain"
	"github.com/vfg2006/receivables-recon-api/internal/usecases/reconciling"
	"github.com/vfg2006/receivables-recon-api/internal/usecases/reconciling/mocks"
	"go.uber.org/mock/gomock"
)

func testSyncConfig() *config.Config {
	return &config.Config{
		ReconciliationSync: config.ReconciliationSync{
			CronSchedule: "0 7 * * 1",
			Enabled:      false,
		},
	}
}

func reportFixture(referenceDate time.Time) *domain.ReconciliationReport {
	return &domain.ReconciliationReport{
		ReferenceDate: referenceDate,
		GeneratedAt:   time.Now(),
		FileInfo: []domain.SnapshotInfo{
			{Role: reconciling.RoleCurrent, FileName: "ContasReceber20240115.xlsx"},
			{Role: reconciling.RolePrevious, FileName: "ContasReceber20240110.xlsx"},
		},
		CurrentData:  make([]domain.Record, 42),
		PreviousData: make([]domain.Record, 40),
	}
}

func TestRunOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reconciler := mocks.NewMockReconciler(ctrl)
	exporter := mocks.NewMockReportExporter(ctrl)
	runRepo := repomocks.NewMockReconciliationRunRepository(ctrl)

	referenceDate := time.Date(2024, time.January, 17, 10, 30, 0, 0, time.UTC)
	report := reportFixture(referenceDate)

	reconciler.EXPECT().Reconcile(referenceDate).Return(report, nil)
	exporter.EXPECT().Write(report).Return("/data/processed/reconciliacao.xlsx", nil)

	var savedRun *domain.ReconciliationRun
	runRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(run *domain.ReconciliationRun) error {
		savedRun = run
		return nil
	})

	service := NewReconciliationSyncService(reconciler, exporter, runRepo, testSyncConfig())

	run, err := service.RunOnce(referenceDate)
	require.NoError(t, err)
	require.NotNil(t, run)

	assert.Equal(t, domain.RunStatusSucceeded, run.Status)
	assert.Equal(t, "ContasReceber20240115.xlsx", run.CurrentFile)
	assert.Equal(t, "ContasReceber20240110.xlsx", run.PreviousFile)
	assert.Equal(t, 42, run.CurrentRows)
	assert.Equal(t, 40, run.PreviousRows)
	assert.NotEmpty(t, run.ID)

	// A data de referência é persistida sem componente de hora
	assert.Equal(t, time.Date(2024, time.January, 17, 0, 0, 0, 0, time.UTC), run.ReferenceDate)

	require.NotNil(t, savedRun)
	assert.Equal(t, run.ID, savedRun.ID)

	status := service.GetStatus()
	assert.Equal(t, "/data/processed/reconciliacao.xlsx", status["last_report_path"])
	assert.Equal(t, false, status["sync_running"])
}

func TestRunOnce_FalhaNaReconciliacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reconciler := mocks.NewMockReconciler(ctrl)
	exporter := mocks.NewMockReportExporter(ctrl)
	runRepo := repomocks.NewMockReconciliationRunRepository(ctrl)

	reconciler.EXPECT().Reconcile(gomock.Any()).Return(nil, errors.New("sem extrato da semana atual"))

	var savedRun *domain.ReconciliationRun
	runRepo.EXPECT().Save(gomock.Any()).DoAndReturn(func(run *domain.ReconciliationRun) error {
		savedRun = run
		return nil
	})

	service := NewReconciliationSyncService(reconciler, exporter, runRepo, testSyncConfig())

	run, err := service.RunOnce(time.Now())
	assert.Error(t, err)
	require.NotNil(t, run)
	assert.Equal(t, domain.RunStatusFailed, run.Status)
	assert.Equal(t, "sem extrato da semana atual", run.FailureReason)

	require.NotNil(t, savedRun)
	assert.Equal(t, domain.RunStatusFailed, savedRun.Status)
}

func TestRunOnce_FalhaNaExportacao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reconciler := mocks.NewMockReconciler(ctrl)
	exporter := mocks.NewMockReportExporter(ctrl)
	runRepo := repomocks.NewMockReconciliationRunRepository(ctrl)

	referenceDate := time.Now()
	reconciler.EXPECT().Reconcile(referenceDate).Return(reportFixture(referenceDate), nil)
	exporter.EXPECT().Write(gomock.Any()).Return("", errors.New("disco cheio"))
	runRepo.EXPECT().Save(gomock.Any()).Return(nil)

	service := NewReconciliationSyncService(reconciler, exporter, runRepo, testSyncConfig())

	run, err := service.RunOnce(referenceDate)
	assert.Error(t, err)
	require.NotNil(t, run)
	assert.Equal(t, domain.RunStatusFailed, run.Status)
}

func TestRunOnce_SemRepositorioDeHistorico(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reconciler := mocks.NewMockReconciler(ctrl)
	exporter := mocks.NewMockReportExporter(ctrl)

	referenceDate := time.Now()
	reconciler.EXPECT().Reconcile(referenceDate).Return(reportFixture(referenceDate), nil)
	exporter.EXPECT().Write(gomock.Any()).Return("/tmp/reconciliacao.xlsx", nil)

	// Sem banco disponível a execução segue normalmente, só não é registrada
	service := NewReconciliationSyncService(reconciler, exporter, nil, testSyncConfig())

	run, err := service.RunOnce(referenceDate)
	require.NoError(t, err)
	assert.Equal(t, domain.RunStatusSucceeded, run.Status)
}

func TestStart_Desabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewReconciliationSyncService(
		mocks.NewMockReconciler(ctrl),
		mocks.NewMockReportExporter(ctrl),
		nil,
		testSyncConfig(),
	)

	assert.NoError(t, service.Start(context.Background()))
}
