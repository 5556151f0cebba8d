package handler

import (
	"net/http"

	"github.com/vfg2006/vehicle-insights-api/internal/api/handler/router"
	"github.com/vfg2006/vehicle-insights-api/internal/scheduler"
	"github.com/vfg2006/vehicle-insights-api/internal/usecases/maintenance"
	"github.com/vfg2006/vehicle-insights-api/internal/usecases/mileage"
	"github.com/vfg2006/vehicle-insights-api/internal/usecases/spending"
	"github.com/vfg2006/vehicle-insights-api/pkg/middleware"
)

var bearer = []func(http.Handler) http.Handler{middleware.RequireBearerToken()}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Insights(service spending.Spender) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/insights/spending",
			Method:      http.MethodGet,
			Handler:     GetSpendingComparison(service),
			Middlewares: bearer,
		},
		{
			Path:        "/v1/insights/spending/monthly",
			Method:      http.MethodGet,
			Handler:     GetMonthlySpending(service),
			Middlewares: bearer,
		},
		{
			Path:        "/v1/insights/spending/recent",
			Method:      http.MethodGet,
			Handler:     GetRecentSpending(service),
			Middlewares: bearer,
		},
	}
}

func Units() []router.Route {
	return []router.Route{
		{
			Path:    "/v1/units/convert",
			Method:  http.MethodGet,
			Handler: ConvertUnits(),
		},
		{
			Path:    "/v1/units/efficiency",
			Method:  http.MethodGet,
			Handler: FuelEfficiency(),
		},
	}
}

func Maintenance(service *maintenance.Service) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/maintenance/templates",
			Method:  http.MethodGet,
			Handler: ListMaintenanceTemplates(),
		},
		{
			Path:        "/v1/vehicles/:id/reminders/suggestion",
			Method:      http.MethodGet,
			Handler:     SuggestReminder(service),
			Middlewares: bearer,
		},
	}
}

func Mileage(service *mileage.Service) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/vehicles/:id/mileage/validate",
			Method:      http.MethodGet,
			Handler:     ValidateMileage(service),
			Middlewares: bearer,
		},
	}
}

func Cache(sweeper *scheduler.CacheSweeperService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cache/status",
			Method:      http.MethodGet,
			Handler:     GetCacheStatus(sweeper),
			Middlewares: bearer,
		},
		{
			Path:        "/v1/cache/sweep",
			Method:      http.MethodPost,
			Handler:     RunCacheSweep(sweeper),
			Middlewares: bearer,
		},
	}
}
