package spending

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/vehicle-insights-api/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// CalculateMonthlySpending sums the fuel and maintenance costs whose date
// falls in month/year. A month outside January..December matches nothing and
// leaves MonthName empty.
func CalculateMonthlySpending(fuelLogs []domain.FuelLog, maintenanceLogs []domain.MaintenanceLog, month time.Month, year int) domain.MonthlySpending {
	result := domain.MonthlySpending{
		TotalSpending:       decimal.Zero,
		FuelSpending:        decimal.Zero,
		MaintenanceSpending: decimal.Zero,
		Year:                year,
	}

	if month < time.January || month > time.December {
		return result
	}

	result.MonthName = month.String()
	result.Month = int(month)

	for _, f := range fuelLogs {
		if !f.Date.InMonth(month, year) {
			continue
		}
		result.FuelSpending = result.FuelSpending.Add(f.Cost.Amount())
		result.FuelCount++
	}

	for _, m := range maintenanceLogs {
		if !m.Date.InMonth(month, year) {
			continue
		}
		result.MaintenanceSpending = result.MaintenanceSpending.Add(m.Cost.Amount())
		result.MaintenanceCount++
	}

	result.TotalSpending = result.FuelSpending.Add(result.MaintenanceSpending)
	return result
}

// GetSpendingComparison compares the month containing now with the one
// before it.
func GetSpendingComparison(fuelLogs []domain.FuelLog, maintenanceLogs []domain.MaintenanceLog, now time.Time) domain.SpendingComparison {
	month, year := now.Month(), now.Year()
	prevMonth, prevYear := previousMonth(month, year)

	current := CalculateMonthlySpending(fuelLogs, maintenanceLogs, month, year)
	previous := CalculateMonthlySpending(fuelLogs, maintenanceLogs, prevMonth, prevYear)

	return domain.SpendingComparison{
		CurrentMonth:     current,
		PreviousMonth:    previous,
		PercentageChange: PercentageChange(current.TotalSpending, previous.TotalSpending),
	}
}

// PercentageChange is 100 on a zero baseline with nonzero current, and 0
// when both are zero.
func PercentageChange(current, previous decimal.Decimal) decimal.Decimal {
	if previous.IsPositive() {
		return current.Sub(previous).Div(previous).Mul(hundred)
	}
	if current.IsPositive() {
		return hundred
	}
	return decimal.Zero
}

// CurrentMonthSpending is the calculator for the month containing now
func CurrentMonthSpending(fuelLogs []domain.FuelLog, maintenanceLogs []domain.MaintenanceLog, now time.Time) domain.MonthlySpending {
	return CalculateMonthlySpending(fuelLogs, maintenanceLogs, now.Month(), now.Year())
}

// RecentMonths returns n months ending with the one containing now, most
// recent first.
func RecentMonths(fuelLogs []domain.FuelLog, maintenanceLogs []domain.MaintenanceLog, now time.Time, n int) []domain.MonthlySpending {
	if n <= 0 {
		return []domain.MonthlySpending{}
	}

	months := make([]domain.MonthlySpending, 0, n)
	month, year := now.Month(), now.Year()
	for i := 0; i < n; i++ {
		months = append(months, CalculateMonthlySpending(fuelLogs, maintenanceLogs, month, year))
		month, year = previousMonth(month, year)
	}
	return months
}

func previousMonth(month time.Month, year int) (time.Month, int) {
	if month == time.January {
		return time.December, year - 1
	}
	return month - 1, year
}
