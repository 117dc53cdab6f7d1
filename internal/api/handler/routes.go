package handler

import (
	"net/http"

	"github.com/vfg2006/ebay-reconciler/internal/api/handler/router"
	"github.com/vfg2006/ebay-reconciler/internal/config"
	"github.com/vfg2006/ebay-reconciler/internal/usecases/reconciling"
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

func Reconciliations(service reconciling.Reconciler, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reconciliations",
			Method:  http.MethodPost,
			Handler: ReconcileHandler(service, cfg),
		},
		{
			Path:    "/v1/refunds/report",
			Method:  http.MethodPost,
			Handler: RefundsHandler(service, cfg),
		},
	}
}
