package maintenance

import (
	"context"
	"errors"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"github.com/vfg2006/vehicle-insights-api/internal/domain"
	"github.com/vfg2006/vehicle-insights-api/pkg/log"
)

var (
	ErrUnknownTemplate = errors.New("unknown maintenance template")
	ErrInvalidInterval = errors.New("interval must be a positive number of months")
)

// LogReader loads the maintenance history of one vehicle
type LogReader interface {
	GetMaintenanceLogs(ctx context.Context, token string, vehicleID int) ([]domain.MaintenanceLog, error)
}

// ReminderQuery names either a template or a free maintenance type. An
// explicit IntervalMonths overrides the template interval.
type ReminderQuery struct {
	Token           string
	VehicleID       int
	TemplateID      string
	MaintenanceType string
	IntervalMonths  int
}

type Service struct {
	reader LogReader
}

func NewService(reader LogReader) *Service {
	return &Service{reader: reader}
}

func (s *Service) SuggestReminder(ctx context.Context, q ReminderQuery) (*domain.ReminderSuggestion, error) {
	maintenanceType := strings.TrimSpace(q.MaintenanceType)
	interval := q.IntervalMonths

	if q.TemplateID != "" {
		template, ok := TemplateByID(q.TemplateID)
		if !ok {
			return nil, ErrUnknownTemplate
		}
		if maintenanceType == "" {
			maintenanceType = template.Title
		}
		if interval == 0 {
			interval = template.IntervalMonths
		}
	}

	if interval <= 0 {
		return nil, ErrInvalidInterval
	}

	logs, err := s.reader.GetMaintenanceLogs(ctx, q.Token, q.VehicleID)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "maintenance: load logs")
	}

	suggestion := &domain.ReminderSuggestion{
		VehicleID:       q.VehicleID,
		MaintenanceType: maintenanceType,
		IntervalMonths:  interval,
	}

	last, found := LastServiceDate(logs, maintenanceType)
	if found {
		suggestion.Found = true
		suggestion.LastServiceDate = last
		suggestion.NextDueDate = CalculateNextDueDate(last, interval)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"vehicle_id":   q.VehicleID,
		"vehicle_logs": len(logs),
		"found":        found,
	}).Debug("maintenance: reminder suggested")

	return suggestion, nil
}
