package maintenance

import (
	"strings"

	"github.com/vfg2006/vehicle-insights-api/internal/domain"
)

// CalculateNextDueDate adds intervalMonths to last. Day overflow rolls into
// the following month, so Jan 31 + 1 month is Mar 2 or Mar 3.
func CalculateNextDueDate(last domain.Date, intervalMonths int) domain.Date {
	return domain.Date{Time: last.AddDate(0, intervalMonths, 0)}
}

// LastServiceDate finds the most recent dated log whose type contains
// maintenanceType, ignoring case.
func LastServiceDate(logs []domain.MaintenanceLog, maintenanceType string) (domain.Date, bool) {
	query := strings.ToLower(maintenanceType)

	var latest domain.Date
	found := false
	for _, l := range logs {
		if l.Date.IsZero() || !strings.Contains(strings.ToLower(l.MaintenanceType), query) {
			continue
		}
		if !found || l.Date.After(latest.Time) {
			latest = l.Date
			found = true
		}
	}

	return latest, found
}

// SuggestedReminder is the next due date after the last matching service
func SuggestedReminder(logs []domain.MaintenanceLog, maintenanceType string, intervalMonths int) (domain.Date, bool) {
	last, ok := LastServiceDate(logs, maintenanceType)
	if !ok {
		return domain.Date{}, false
	}
	return CalculateNextDueDate(last, intervalMonths), true
}
