package handler

import (
	"net/http"

	"github.com/vfg2006/receivables-recon-api/internal/api/handler/router"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Reconciliation(services ReconciliationServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reconciliation/run",
			Method:  http.MethodPost,
			Handler: RunReconciliation(services),
		},
		{
			Path:    "/v1/reconciliation/report",
			Method:  http.MethodGet,
			Handler: GetReconciliationReport(services),
		},
		{
			Path:    "/v1/reconciliation/status",
			Method:  http.MethodGet,
			Handler: GetReconciliationStatus(services),
		},
		{
			Path:    "/v1/reconciliation/runs",
			Method:  http.MethodGet,
			Handler: ListReconciliationRuns(services),
		},
	}
}
