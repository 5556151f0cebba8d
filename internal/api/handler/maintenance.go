package handler

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/vehicle-insights-api/internal/domain"
	"github.com/vfg2006/vehicle-insights-api/internal/usecases/maintenance"
	"github.com/vfg2006/vehicle-insights-api/pkg/apiErrors"
	"github.com/vfg2006/vehicle-insights-api/pkg/log"
	"github.com/vfg2006/vehicle-insights-api/pkg/middleware"
)

type TemplateResponse struct {
	domain.MaintenanceTemplate
	IntervalLabel string `json:"interval_label"`
}

func vehicleIDParam(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(httprouter.ParamsFromContext(r.Context()).ByName("id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ListMaintenanceTemplates returns the built-in templates, optionally by category
func ListMaintenanceTemplates() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var templates []domain.MaintenanceTemplate
		switch category := domain.TemplateCategory(r.URL.Query().Get("category")); category {
		case "":
			templates = maintenance.Templates()
		case domain.CategoryRoutine, domain.CategoryPeriodic, domain.CategorySeasonal:
			templates = maintenance.TemplatesByCategory(category)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "category must be routine, periodic or seasonal", nil)
			return
		}

		resp := make([]TemplateResponse, 0, len(templates))
		for _, t := range templates {
			resp = append(resp, TemplateResponse{MaintenanceTemplate: t, IntervalLabel: maintenance.FormatInterval(t.IntervalMonths)})
		}

		writeJSON(w, logger, http.StatusOK, resp)
	})
}

// SuggestReminder computes the next due date of a service for a vehicle
func SuggestReminder(service *maintenance.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		vehicleID, ok := vehicleIDParam(r)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "vehicle id must be a positive integer", nil)
			return
		}

		query := r.URL.Query()
		q := maintenance.ReminderQuery{
			Token:           middleware.TokenFromContext(r.Context()),
			VehicleID:       vehicleID,
			TemplateID:      query.Get("template"),
			MaintenanceType: query.Get("type"),
		}

		if q.TemplateID == "" && q.MaintenanceType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "template or type is required", nil)
			return
		}

		if raw := query.Get("interval"); raw != "" {
			interval, err := strconv.Atoi(raw)
			if err != nil || interval <= 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "interval must be a positive number of months", nil)
				return
			}
			q.IntervalMonths = interval
		}

		suggestion, err := service.SuggestReminder(r.Context(), q)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, suggestion)
	})
}
