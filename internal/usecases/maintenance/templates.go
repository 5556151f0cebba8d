package maintenance

import (
	"strconv"

	"github.com/vfg2006/vehicle-insights-api/internal/domain"
)

var templates = []domain.MaintenanceTemplate{
	// routine
	{ID: "oil_change", Title: "Oil Change", Description: "Change engine oil and oil filter", Icon: "water", DefaultInterval: domain.IntervalMonthly, IntervalMonths: 3, Category: domain.CategoryRoutine},
	{ID: "tire_rotation", Title: "Tire Rotation", Description: "Rotate tires for even wear", Icon: "sync", DefaultInterval: domain.IntervalMonthly, IntervalMonths: 6, Category: domain.CategoryRoutine},
	{ID: "air_filter", Title: "Air Filter Replacement", Description: "Replace engine air filter", Icon: "filter", DefaultInterval: domain.IntervalMonthly, IntervalMonths: 6, Category: domain.CategoryRoutine},
	{ID: "cabin_filter", Title: "Cabin Air Filter", Description: "Replace cabin air filter for better air quality", Icon: "leaf", DefaultInterval: domain.IntervalMonthly, IntervalMonths: 6, Category: domain.CategoryRoutine},

	// periodic
	{ID: "brake_inspection", Title: "Brake Inspection", Description: "Inspect brake pads, rotors, and fluid", Icon: "hand-left", DefaultInterval: domain.IntervalYearly, IntervalMonths: 12, Category: domain.CategoryPeriodic},
	{ID: "battery_check", Title: "Battery Check", Description: "Test battery and clean terminals", Icon: "battery-charging", DefaultInterval: domain.IntervalYearly, IntervalMonths: 12, Category: domain.CategoryPeriodic},
	{ID: "coolant_flush", Title: "Coolant Flush", Description: "Flush and replace engine coolant", Icon: "thermometer", DefaultInterval: domain.IntervalYearly, IntervalMonths: 24, Category: domain.CategoryPeriodic},
	{ID: "transmission_service", Title: "Transmission Service", Description: "Change transmission fluid and filter", Icon: "cog", DefaultInterval: domain.IntervalYearly, IntervalMonths: 24, Category: domain.CategoryPeriodic},
	{ID: "spark_plugs", Title: "Spark Plugs Replacement", Description: "Replace spark plugs for optimal performance", Icon: "flash", DefaultInterval: domain.IntervalYearly, IntervalMonths: 24, Category: domain.CategoryPeriodic},
	{ID: "wheel_alignment", Title: "Wheel Alignment", Description: "Check and adjust wheel alignment", Icon: "compass", DefaultInterval: domain.IntervalYearly, IntervalMonths: 12, Category: domain.CategoryPeriodic},

	// seasonal
	{ID: "annual_inspection", Title: "Annual Vehicle Inspection", Description: "Comprehensive vehicle safety inspection", Icon: "checkmark-circle", DefaultInterval: domain.IntervalYearly, IntervalMonths: 12, Category: domain.CategorySeasonal},
	{ID: "rainy_season_prep", Title: "Rainy Season Preparation", Description: "Check wipers, lights, and tire tread for rainy season", Icon: "rainy", DefaultInterval: domain.IntervalYearly, IntervalMonths: 12, Category: domain.CategorySeasonal},
}

// Templates returns a copy of the built-in templates
func Templates() []domain.MaintenanceTemplate {
	return append([]domain.MaintenanceTemplate(nil), templates...)
}

func TemplatesByCategory(category domain.TemplateCategory) []domain.MaintenanceTemplate {
	var out []domain.MaintenanceTemplate
	for _, t := range templates {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

func TemplateByID(id string) (domain.MaintenanceTemplate, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return domain.MaintenanceTemplate{}, false
}

func FormatInterval(months int) string {
	switch months {
	case 1:
		return "Every month"
	case 12:
		return "Every year"
	case 24:
		return "Every 2 years"
	}
	return "Every " + strconv.Itoa(months) + " months"
}
