package spending_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vehicle-insights-api/internal/domain"
	"github.com/vfg2006/vehicle-insights-api/internal/usecases/spending"
)

func fuel(t *testing.T, date, cost string) domain.FuelLog {
	t.Helper()
	d, err := domain.ParseDate(date)
	require.NoError(t, err)
	return domain.FuelLog{Date: d, Cost: domain.ParseCost(cost)}
}

func maint(t *testing.T, date, cost string) domain.MaintenanceLog {
	t.Helper()
	d, err := domain.ParseDate(date)
	require.NoError(t, err)
	return domain.MaintenanceLog{Date: d, Cost: domain.ParseCost(cost)}
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func assertMonth(t *testing.T, m domain.MonthlySpending, total, fuelSum, maintSum string, fuelCount, maintCount int, name string, year int) {
	t.Helper()
	assertDecimal(t, total, m.TotalSpending)
	assertDecimal(t, fuelSum, m.FuelSpending)
	assertDecimal(t, maintSum, m.MaintenanceSpending)
	assert.Equal(t, fuelCount, m.FuelCount)
	assert.Equal(t, maintCount, m.MaintenanceCount)
	assert.Equal(t, name, m.MonthName)
	assert.Equal(t, year, m.Year)
}

func TestCalculateMonthlySpending(t *testing.T) {
	tests := []struct {
		name     string
		fuel     func(t *testing.T) []domain.FuelLog
		maint    func(t *testing.T) []domain.MaintenanceLog
		month    time.Month
		year     int
		validate func(t *testing.T, m domain.MonthlySpending)
	}{
		{
			name: "excludes logs outside the month from sums and counts",
			fuel: func(t *testing.T) []domain.FuelLog {
				return []domain.FuelLog{
					fuel(t, "2024-03-01", "100"),
					fuel(t, "2024-03-31", "50.25"),
					fuel(t, "2024-02-29", "999"),
					fuel(t, "2023-03-15", "999"),
					fuel(t, "2024-04-01", "999"),
				}
			},
			maint: func(t *testing.T) []domain.MaintenanceLog {
				return []domain.MaintenanceLog{
					maint(t, "2024-03-10", "1200"),
					maint(t, "2025-03-10", "999"),
				}
			},
			month: time.March,
			year:  2024,
			validate: func(t *testing.T, m domain.MonthlySpending) {
				assertMonth(t, m, "1350.25", "150.25", "1200", 2, 1, "March", 2024)
				assert.Equal(t, 3, m.Month)
			},
		},
		{
			name: "string and malformed costs",
			fuel: func(t *testing.T) []domain.FuelLog {
				var logs []domain.FuelLog
				payload := `[
					{"date": "2024-05-02", "cost": "45.99"},
					{"date": "2024-05-03", "cost": null},
					{"date": "2024-05-04", "cost": "n/a"},
					{"date": "2024-05-05"}
				]`
				require.NoError(t, json.Unmarshal([]byte(payload), &logs))
				return logs
			},
			maint: func(t *testing.T) []domain.MaintenanceLog { return nil },
			month: time.May,
			year:  2024,
			validate: func(t *testing.T, m domain.MonthlySpending) {
				assertMonth(t, m, "45.99", "45.99", "0", 4, 0, "May", 2024)
			},
		},
		{
			name: "sum invariant holds without float drift",
			fuel: func(t *testing.T) []domain.FuelLog {
				return []domain.FuelLog{fuel(t, "2024-06-01", "0.1"), fuel(t, "2024-06-02", "0.2")}
			},
			maint: func(t *testing.T) []domain.MaintenanceLog {
				return []domain.MaintenanceLog{maint(t, "2024-06-03", "0.3")}
			},
			month: time.June,
			year:  2024,
			validate: func(t *testing.T, m domain.MonthlySpending) {
				assertDecimal(t, "0.3", m.FuelSpending)
				assertDecimal(t, "0.6", m.TotalSpending)
				assert.True(t, m.TotalSpending.Equal(m.FuelSpending.Add(m.MaintenanceSpending)))
			},
		},
		{
			name:  "nil inputs",
			fuel:  func(t *testing.T) []domain.FuelLog { return nil },
			maint: func(t *testing.T) []domain.MaintenanceLog { return nil },
			month: time.January,
			year:  2024,
			validate: func(t *testing.T, m domain.MonthlySpending) {
				assertMonth(t, m, "0", "0", "0", 0, 0, "January", 2024)
			},
		},
		{
			name: "invalid month has empty name and zero sums",
			fuel: func(t *testing.T) []domain.FuelLog {
				return []domain.FuelLog{fuel(t, "2024-03-01", "100")}
			},
			maint: func(t *testing.T) []domain.MaintenanceLog { return nil },
			month: time.Month(13),
			year:  2024,
			validate: func(t *testing.T, m domain.MonthlySpending) {
				assertMonth(t, m, "0", "0", "0", 0, 0, "", 2024)
				assert.Equal(t, 0, m.Month)
			},
		},
		{
			name: "undated logs never match",
			fuel: func(t *testing.T) []domain.FuelLog {
				return []domain.FuelLog{{Cost: domain.ParseCost("10")}}
			},
			maint: func(t *testing.T) []domain.MaintenanceLog {
				return []domain.MaintenanceLog{{Cost: domain.ParseCost("10")}}
			},
			month: time.January,
			year:  1,
			validate: func(t *testing.T, m domain.MonthlySpending) {
				assertMonth(t, m, "0", "0", "0", 0, 0, "January", 1)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := spending.CalculateMonthlySpending(tt.fuel(t), tt.maint(t), tt.month, tt.year)
			tt.validate(t, result)
		})
	}
}

func TestCalculateMonthlySpendingIsIdempotent(t *testing.T) {
	fuelLogs := []domain.FuelLog{fuel(t, "2024-03-05", "1000"), fuel(t, "2024-03-06", "12.34")}
	maintLogs := []domain.MaintenanceLog{maint(t, "2024-03-10", "500")}
	snapshot := append([]domain.FuelLog(nil), fuelLogs...)

	first := spending.CalculateMonthlySpending(fuelLogs, maintLogs, time.March, 2024)
	second := spending.CalculateMonthlySpending(fuelLogs, maintLogs, time.March, 2024)

	assert.True(t, first.TotalSpending.Equal(second.TotalSpending))
	assert.Equal(t, first.FuelCount, second.FuelCount)
	assert.Equal(t, first.MonthName, second.MonthName)
	assert.Equal(t, snapshot, fuelLogs)
}

func TestGetSpendingComparison(t *testing.T) {
	fuelLogs := []domain.FuelLog{fuel(t, "2024-03-05", "1000"), fuel(t, "2024-02-20", "800")}
	maintLogs := []domain.MaintenanceLog{maint(t, "2024-03-10", "500")}
	now := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)

	cmp := spending.GetSpendingComparison(fuelLogs, maintLogs, now)

	assertMonth(t, cmp.CurrentMonth, "1500", "1000", "500", 1, 1, "March", 2024)
	assertMonth(t, cmp.PreviousMonth, "800", "800", "0", 1, 0, "February", 2024)
	assertDecimal(t, "87.5", cmp.PercentageChange)
}

func TestGetSpendingComparisonWrapsYear(t *testing.T) {
	fuelLogs := []domain.FuelLog{fuel(t, "2023-12-24", "300"), fuel(t, "2024-01-02", "150")}
	now := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)

	cmp := spending.GetSpendingComparison(fuelLogs, nil, now)

	assert.Equal(t, 12, cmp.PreviousMonth.Month)
	assert.Equal(t, 2023, cmp.PreviousMonth.Year)
	assert.Equal(t, "December", cmp.PreviousMonth.MonthName)
	assertDecimal(t, "300", cmp.PreviousMonth.TotalSpending)
	assertDecimal(t, "-50", cmp.PercentageChange)
}

func TestPercentageChange(t *testing.T) {
	tests := []struct {
		name              string
		current, previous string
		expected          string
	}{
		{name: "zero baseline", current: "500", previous: "0", expected: "100"},
		{name: "both zero", current: "0", previous: "0", expected: "0"},
		{name: "increase", current: "1500", previous: "800", expected: "87.5"},
		{name: "decrease to zero", current: "0", previous: "200", expected: "-100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := spending.PercentageChange(decimal.RequireFromString(tt.current), decimal.RequireFromString(tt.previous))
			assertDecimal(t, tt.expected, got)
		})
	}
}

func TestRecentMonths(t *testing.T) {
	fuelLogs := []domain.FuelLog{
		fuel(t, "2024-02-01", "10"),
		fuel(t, "2024-01-01", "20"),
		fuel(t, "2023-12-01", "30"),
	}
	now := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)

	months := spending.RecentMonths(fuelLogs, nil, now, 3)
	require.Len(t, months, 3)

	assert.Equal(t, "February", months[0].MonthName)
	assert.Equal(t, "January", months[1].MonthName)
	assert.Equal(t, "December", months[2].MonthName)
	assert.Equal(t, 2023, months[2].Year)
	assertDecimal(t, "30", months[2].TotalSpending)

	assert.Empty(t, spending.RecentMonths(fuelLogs, nil, now, 0))

	current := spending.CurrentMonthSpending(fuelLogs, nil, now)
	assertDecimal(t, "10", current.TotalSpending)
}
