package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/receivables-recon-api/infrastructure/repository/mocks"
	"github.com/vfg2006/receivables-recon-api/internal/domain"
	"github.com/vfg2006/receivables-recon-api/internal/usecases/reconciling"
	"github.com/vfg2006/receivables-recon-api/internal/usecases/reconciling/mocks"
	"github.com/vfg2006/receivables-recon-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGetReconciliationReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reconciler := mocks.NewMockReconciler(ctrl)
	reconciler.EXPECT().
		Reconcile(gomock.Any()).
		DoAndReturn(func(referenceDate time.Time) (*domain.ReconciliationReport, error) {
			require.Equal(t, time.Date(2024, time.January, 17, 0, 0, 0, 0, time.UTC), referenceDate)
			return &domain.ReconciliationReport{ReferenceDate: referenceDate}, nil
		})

	services := ReconciliationServices{Reconciler: reconciler}

	req := httptest.NewRequest(http.MethodGet, "/v1/reconciliation/report?reference_date=2024-01-17", nil)
	recorder := httptest.NewRecorder()

	GetReconciliationReport(services)(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	report := &domain.ReconciliationReport{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), report))
	assert.Equal(t, 2024, report.ReferenceDate.Year())
}

func TestGetReconciliationReport_DataInvalida(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	services := ReconciliationServices{Reconciler: mocks.NewMockReconciler(ctrl)}

	req := httptest.NewRequest(http.MethodGet, "/v1/reconciliation/report?reference_date=17-01-2024", nil)
	recorder := httptest.NewRecorder()

	GetReconciliationReport(services)(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetReconciliationReport_SemExtratoAtual(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reconciler := mocks.NewMockReconciler(ctrl)
	reconciler.EXPECT().Reconcile(gomock.Any()).Return(nil, reconciling.ErrNoCurrentSnapshot)

	services := ReconciliationServices{Reconciler: reconciler}

	req := httptest.NewRequest(http.MethodGet, "/v1/reconciliation/report", nil)
	recorder := httptest.NewRecorder()

	GetReconciliationReport(services)(recorder, req)

	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)

	apiErr := apiErrors.APIError{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &apiErr))
	assert.Equal(t, apiErrors.ErrNoCurrentSnapshot, apiErr.Code)
}

func TestListReconciliationRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runRepo := repomocks.NewMockReconciliationRunRepository(ctrl)
	runRepo.EXPECT().ListRecent(10).Return([]*domain.ReconciliationRun{
		{ID: "abc123", Status: domain.RunStatusSucceeded},
	}, nil)

	services := ReconciliationServices{RunRepo: runRepo}

	req := httptest.NewRequest(http.MethodGet, "/v1/reconciliation/runs", nil)
	recorder := httptest.NewRecorder()

	ListReconciliationRuns(services)(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	runs := []*domain.ReconciliationRun{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, "abc123", runs[0].ID)
}

func TestListReconciliationRuns_SemHistorico(t *testing.T) {
	services := ReconciliationServices{}

	req := httptest.NewRequest(http.MethodGet, "/v1/reconciliation/runs", nil)
	recorder := httptest.NewRecorder()

	ListReconciliationRuns(services)(recorder, req)

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
