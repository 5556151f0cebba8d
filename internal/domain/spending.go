package domain

import "github.com/shopspring/decimal"

// MonthlySpending aggregates the logs of one calendar month.
// TotalSpending is always FuelSpending + MaintenanceSpending.
type MonthlySpending struct {
	TotalSpending       decimal.Decimal `json:"total_spending"`
	FuelSpending        decimal.Decimal `json:"fuel_spending"`
	MaintenanceSpending decimal.Decimal `json:"maintenance_spending"`
	FuelCount           int             `json:"fuel_count"`
	MaintenanceCount    int             `json:"maintenance_count"`
	MonthName           string          `json:"month_name"`
	Month               int             `json:"month"` // 1-12
	Year                int             `json:"year"`
}

// SpendingComparison pairs the current and previous month
type SpendingComparison struct {
	CurrentMonth     MonthlySpending `json:"current_month"`
	PreviousMonth    MonthlySpending `json:"previous_month"`
	PercentageChange decimal.Decimal `json:"percentage_change"`
}
