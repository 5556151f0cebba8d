package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/vehicle-insights-api/internal/usecases/mileage"
	"github.com/vfg2006/vehicle-insights-api/pkg/apiErrors"
	"github.com/vfg2006/vehicle-insights-api/pkg/log"
	"github.com/vfg2006/vehicle-insights-api/pkg/middleware"
)

// ValidateMileage checks a new odometer reading against the vehicle
func ValidateMileage(service *mileage.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		vehicleID, ok := vehicleIDParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "vehicle id must be a positive integer", nil)
			return
		}

		newMileage, err := strconv.Atoi(r.URL.Query().Get("mileage"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "mileage must be an integer", nil)
			return
		}

		result, err := service.Validate(r.Context(), middleware.TokenFromContext(r.Context()), vehicleID, newMileage)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, result)
	})
}
