package handler

import (
	"net/http"

	"github.com/fieldops/forst-api/internal/api/handler/router"
	"github.com/fieldops/forst-api/internal/usecases/forst"
)

const forstBasePath = "/v1/forst"

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Forst(service forst.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    forstBasePath + "/highlights",
			Method:  http.MethodGet,
			Handler: GetHighlights(service),
		},
		{
			Path:    forstBasePath + "/zone-monthly",
			Method:  http.MethodGet,
			Handler: GetZoneMonthly(service),
		},
		{
			Path:    forstBasePath + "/quarterly",
			Method:  http.MethodGet,
			Handler: GetQuarterly(service),
		},
		{
			Path:    forstBasePath + "/product-type-summary",
			Method:  http.MethodGet,
			Handler: GetProductTypeSummary(service),
		},
		{
			Path:    forstBasePath + "/person-performance",
			Method:  http.MethodGet,
			Handler: GetPersonPerformance(service),
		},
		{
			Path:    forstBasePath + "/product-forecast",
			Method:  http.MethodGet,
			Handler: GetProductForecast(service),
		},
		{
			Path:    forstBasePath + "/complete-report",
			Method:  http.MethodGet,
			Handler: GetCompleteReport(service),
		},
		{
			Path:    forstBasePath + "/export",
			Method:  http.MethodGet,
			Handler: ExportReport(service),
		},
	}
}

func Snapshots(service forst.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    forstBasePath + "/snapshots",
			Method:  http.MethodGet,
			Handler: ListSnapshots(service),
		},
		{
			Path:    forstBasePath + "/snapshots/latest",
			Method:  http.MethodGet,
			Handler: GetLatestSnapshot(service),
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
