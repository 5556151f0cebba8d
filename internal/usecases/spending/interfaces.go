package spending

import (
	"context"
	"time"

	"github.com/vfg2006/vehicle-insights-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_fetcher.go -package=mocks

// LogFetcher loads the fuel and maintenance logs of a user's vehicles
type LogFetcher interface {
	// FetchLogs returns every vehicle of the token owner when vehicleIDs is empty
	FetchLogs(ctx context.Context, token string, vehicleIDs []int) (*domain.LogSnapshot, error)
}

// Spender is what the insight handlers depend on
type Spender interface {
	Comparison(ctx context.Context, q Query) (*ComparisonReport, error)
	Monthly(ctx context.Context, q Query, month time.Month, year int) (*MonthlyReport, error)
	Recent(ctx context.Context, q Query, months int) (*RecentReport, error)
	Now() time.Time
}
