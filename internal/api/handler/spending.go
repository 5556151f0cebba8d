package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/vehicle-insights-api/internal/usecases/spending"
	"github.com/vfg2006/vehicle-insights-api/pkg/apiErrors"
	"github.com/vfg2006/vehicle-insights-api/pkg/log"
	"github.com/vfg2006/vehicle-insights-api/pkg/middleware"
	"github.com/vfg2006/vehicle-insights-api/pkg/utils"
)

const (
	defaultRecentMonths = 3
	maxRecentMonths     = 24
)

// spendingQuery reads vehicle_id (comma separated or repeated) and refresh
func spendingQuery(r *http.Request) (spending.Query, error) {
	q := spending.Query{Token: middleware.TokenFromContext(r.Context())}

	for _, raw := range r.URL.Query()["vehicle_id"] {
		ids, err := utils.ParseIntList(raw)
		if err != nil {
			return q, err
		}
		q.VehicleIDs = append(q.VehicleIDs, ids...)
	}

	if refresh := r.URL.Query().Get("refresh"); refresh != "" {
		parsed, err := strconv.ParseBool(refresh)
		if err != nil {
			return q, err
		}
		q.Refresh = parsed
	}

	return q, nil
}

// GetSpendingComparison returns the current month against the previous one
func GetSpendingComparison(service spending.Spender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		q, err := spendingQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		report, err := service.Comparison(r.Context(), q)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		logger.WithFields(log.Fields{
			"vehicle_count": report.Totals.Vehicles,
			"cached":        report.Cached,
		}).Info("spending: comparison returned")

		writeJSON(w, logger, http.StatusOK, report)
	})
}

// GetMonthlySpending returns one month, the current one when month/year are omitted
func GetMonthlySpending(service spending.Spender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		q, err := spendingQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		month, year, err := utils.ParseMonthYear(r.URL.Query().Get("month"), r.URL.Query().Get("year"), service.Now())
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "month must be 1-12 and year a four digit number", nil)
			return
		}

		report, err := service.Monthly(r.Context(), q, month, year)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, report)
	})
}

// GetRecentSpending returns the last N months, most recent first
func GetRecentSpending(service spending.Spender) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		q, err := spendingQuery(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
			return
		}

		months, err := utils.ParseBoundedInt(r.URL.Query().Get("months"), defaultRecentMonths, 1, maxRecentMonths)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "months must be between 1 and "+strconv.Itoa(maxRecentMonths), nil)
			return
		}

		report, err := service.Recent(r.Context(), q, months)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, report)
	})
}
