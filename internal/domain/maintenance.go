package domain

type (
	TemplateInterval string
	TemplateCategory string
)

const (
	IntervalMonthly TemplateInterval = "monthly"
	IntervalYearly  TemplateInterval = "yearly"

	CategoryRoutine  TemplateCategory = "routine"
	CategoryPeriodic TemplateCategory = "periodic"
	CategorySeasonal TemplateCategory = "seasonal"
)

// MaintenanceTemplate is a built-in service with its recommended interval
type MaintenanceTemplate struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Icon            string           `json:"icon"`
	DefaultInterval TemplateInterval `json:"default_interval"`
	IntervalMonths  int              `json:"interval_months"`
	Category        TemplateCategory `json:"category"`
}

// ReminderSuggestion is a next-due date derived from the last matching log
type ReminderSuggestion struct {
	VehicleID       int    `json:"vehicle_id"`
	MaintenanceType string `json:"maintenance_type"`
	IntervalMonths  int    `json:"interval_months"`
	LastServiceDate Date   `json:"last_service_date"`
	NextDueDate     Date   `json:"next_due_date"`
	Found           bool   `json:"found"`
}

// MileageValidation is the outcome of checking a new odometer reading
type MileageValidation struct {
	Valid           bool   `json:"valid"`
	Message         string `json:"message"`
	RequiresWarning bool   `json:"requires_warning"`
	CurrentMileage  int    `json:"current_mileage"`
	NewMileage      int    `json:"new_mileage"`
}
