package handler

import (
	"context"
	"errors"
	"net"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/vehicle-insights-api/internal/domain"
	"github.com/vfg2006/vehicle-insights-api/internal/usecases/maintenance"
	"github.com/vfg2006/vehicle-insights-api/pkg/apiErrors"
	"github.com/vfg2006/vehicle-insights-api/pkg/log"
	"github.com/vfg2006/vehicle-insights-api/pkg/units"
	"github.com/vfg2006/vehicle-insights-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, logger log.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.WithError(err).Error("handler: encode response")
	}
}

// writeServiceError maps usecase and upstream errors onto API error codes
func writeServiceError(w http.ResponseWriter, logger log.Logger, err error) {
	var netErr net.Error

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "the vehicle API rejected the token", nil)
	case errors.Is(err, domain.ErrVehicleNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "vehicle not found", nil)
	case errors.Is(err, maintenance.ErrUnknownTemplate):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, err.Error(), nil)
	case errors.Is(err, utils.ErrInvalidPeriod), errors.Is(err, maintenance.ErrInvalidInterval):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, units.ErrUnsupportedUnit):
		apiErrors.WriteError(w, apiErrors.ErrUnsupportedUnit, err.Error(), nil)
	case errors.Is(err, context.DeadlineExceeded), errors.As(err, &netErr):
		logger.WithError(err).Warn("handler: vehicle API unreachable")
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "the vehicle API is unreachable", nil)
	case errors.Is(err, domain.ErrUpstream):
		logger.WithError(err).Error("handler: vehicle API error")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "the vehicle API returned an error", nil)
	default:
		logger.WithError(err).Error("handler: unexpected error")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "internal server error", nil)
	}
}
