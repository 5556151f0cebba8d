package domain

// FuelLog is a fuel purchase as returned by GET /fuel/vehicle/{id}
type FuelLog struct {
	ID                 int      `json:"fuel_id"`
	VehicleID          int      `json:"vehicle_id"`
	Date               Date     `json:"date"`
	Liters             *float64 `json:"liters,omitempty"`
	KWh                *float64 `json:"kwh,omitempty"`
	Cost               Cost     `json:"cost"`
	OdometerReading    *int     `json:"odometer_reading,omitempty"`
	Location           string   `json:"location,omitempty"`
	NormalizedLocation string   `json:"normalized_location,omitempty"`
	FullTank           bool     `json:"full_tank"`
	Notes              string   `json:"notes,omitempty"`
}

// MaintenanceLog is a maintenance service as returned by GET /maintenance/vehicle/{id}
type MaintenanceLog struct {
	ID              int    `json:"maintenance_id"`
	VehicleID       int    `json:"vehicle_id"`
	Date            Date   `json:"date"`
	MaintenanceType string `json:"maintenance_type"`
	Description     string `json:"description,omitempty"`
	Mileage         *int   `json:"mileage,omitempty"`
	Cost            Cost   `json:"cost"`
	Location        string `json:"location,omitempty"`
	Notes           string `json:"notes,omitempty"`
}
