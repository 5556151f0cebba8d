package domain

import (
	"errors"
	"time"
)

var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrUnauthorized    = errors.New("vehicle API rejected the token")
	ErrUpstream        = errors.New("vehicle API request failed")
)

// Vehicle as returned by GET /vehicles/. The base64 image is not decoded.
type Vehicle struct {
	ID             int    `json:"vehicle_id"`
	UserID         int    `json:"user_id"`
	Make           string `json:"make"`
	Model          string `json:"model"`
	Year           int    `json:"year"`
	Color          string `json:"color,omitempty"`
	LicensePlate   string `json:"license_plate,omitempty"`
	CurrentMileage int    `json:"current_mileage"`
	FuelType       string `json:"fuel_type,omitempty"`
	PurchaseDate   Date   `json:"purchase_date"`
}

// LogSnapshot holds the logs of a set of vehicles fetched in one pass
type LogSnapshot struct {
	Vehicles        []Vehicle
	FuelLogs        []FuelLog
	MaintenanceLogs []MaintenanceLog
	FetchedAt       time.Time
}

// LogTotals counts what a snapshot covers
type LogTotals struct {
	Vehicles        int `json:"vehicles"`
	FuelLogs        int `json:"fuel_logs"`
	MaintenanceLogs int `json:"maintenance_logs"`
}

func (s *LogSnapshot) Totals() LogTotals {
	if s == nil {
		return LogTotals{}
	}
	return LogTotals{
		Vehicles:        len(s.Vehicles),
		FuelLogs:        len(s.FuelLogs),
		MaintenanceLogs: len(s.MaintenanceLogs),
	}
}
