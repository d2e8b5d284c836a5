package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ads-audit-api/infrastructure/spreadsheet"
	"github.com/vfg2006/ads-audit-api/internal/api/handler/router"
	"github.com/vfg2006/ads-audit-api/internal/config"
	"github.com/vfg2006/ads-audit-api/internal/usecases/auditing"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Audit(service auditing.Auditor, reader spreadsheet.TableReader, cfg config.Audit) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/audit",
			Method:  http.MethodPost,
			Handler: RunAudit(service, reader, cfg),
		},
		{
			Path:    "/v1/audit/actions",
			Method:  http.MethodGet,
			Handler: ListActions(),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
