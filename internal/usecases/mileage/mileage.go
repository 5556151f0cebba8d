package mileage

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/vehicle-insights-api/internal/domain"
)

// ValidateEntry checks a new odometer reading against the current one. A
// lower reading is accepted but flagged.
func ValidateEntry(current, newMileage int) domain.MileageValidation {
	result := domain.MileageValidation{CurrentMileage: current, NewMileage: newMileage}

	switch {
	case newMileage <= 0:
		result.Message = "Mileage must be a positive number"
	case newMileage < current:
		result.Valid = true
		result.RequiresWarning = true
		result.Message = fmt.Sprintf("New mileage (%d) is lower than current vehicle mileage (%d). This might be a mistake.", newMileage, current)
	case newMileage == current:
		result.Valid = true
		result.Message = "Mileage matches current reading"
	default:
		result.Valid = true
		result.Message = "Mileage is valid"
	}

	return result
}

// LatestFromLogs is the highest odometer value recorded in any log, 0 if none
func LatestFromLogs(fuelLogs []domain.FuelLog, maintenanceLogs []domain.MaintenanceLog) int {
	latest := 0
	for _, f := range fuelLogs {
		if f.OdometerReading != nil && *f.OdometerReading > latest {
			latest = *f.OdometerReading
		}
	}
	for _, m := range maintenanceLogs {
		if m.Mileage != nil && *m.Mileage > latest {
			latest = *m.Mileage
		}
	}
	return latest
}

type VehicleReader interface {
	GetVehicle(ctx context.Context, token string, vehicleID int) (*domain.Vehicle, error)
}

type Service struct {
	reader VehicleReader
}

func NewService(reader VehicleReader) *Service {
	return &Service{reader: reader}
}

// Validate checks newMileage against the vehicle's current reading
func (s *Service) Validate(ctx context.Context, token string, vehicleID, newMileage int) (*domain.MileageValidation, error) {
	if newMileage <= 0 {
		result := ValidateEntry(0, newMileage)
		return &result, nil
	}

	vehicle, err := s.reader.GetVehicle(ctx, token, vehicleID)
	if err != nil {
		return nil, errors.Wrap(err, "mileage: load vehicle")
	}

	result := ValidateEntry(vehicle.CurrentMileage, newMileage)
	return &result, nil
}
