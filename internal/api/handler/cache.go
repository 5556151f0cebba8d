package handler

import (
	"net/http"

	"github.com/vfg2006/vehicle-insights-api/internal/scheduler"
	"github.com/vfg2006/vehicle-insights-api/pkg/apiErrors"
	"github.com/vfg2006/vehicle-insights-api/pkg/log"
)

// RunCacheSweep sweeps expired snapshots immediately
func RunCacheSweep(sweeper *scheduler.CacheSweeperService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if sweeper == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "cache sweeper not available", nil)
			return
		}

		removed := sweeper.Sweep()
		logger.WithField("removed", removed).Info("cache: manual sweep")

		writeJSON(w, logger, http.StatusOK, map[string]any{
			"message": "cache swept",
			"removed": removed,
		})
	})
}

// GetCacheStatus reports the sweeper schedule and cache size
func GetCacheStatus(sweeper *scheduler.CacheSweeperService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if sweeper == nil {
			writeJSON(w, logger, http.StatusOK, map[string]any{"sweep_enabled": false})
			return
		}

		writeJSON(w, logger, http.StatusOK, sweeper.GetStatus())
	})
}
