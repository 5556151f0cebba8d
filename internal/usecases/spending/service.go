package spending

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/vehicle-insights-api/internal/cache"
	"github.com/vfg2006/vehicle-insights-api/internal/domain"
	"github.com/vfg2006/vehicle-insights-api/pkg/log"
	"github.com/vfg2006/vehicle-insights-api/pkg/utils"
)

const (
	TrendUp   = "up"
	TrendDown = "down"
)

// Query selects whose logs are aggregated
type Query struct {
	Token      string
	VehicleIDs []int
	// Refresh skips the snapshot cache
	Refresh bool
}

type FormattedMonth struct {
	Total       string `json:"total"`
	Fuel        string `json:"fuel"`
	Maintenance string `json:"maintenance"`
}

type ComparisonReport struct {
	domain.SpendingComparison
	Current     FormattedMonth   `json:"current_formatted"`
	Previous    FormattedMonth   `json:"previous_formatted"`
	Trend       string           `json:"trend"`
	ChangeLabel string           `json:"change_label"`
	Totals      domain.LogTotals `json:"totals"`
	Cached      bool             `json:"cached"`
}

type MonthlyReport struct {
	domain.MonthlySpending
	Formatted FormattedMonth   `json:"formatted"`
	Totals    domain.LogTotals `json:"totals"`
	Cached    bool             `json:"cached"`
}

type RecentReport struct {
	Months []MonthlyReport  `json:"months"`
	Totals domain.LogTotals `json:"totals"`
	Cached bool             `json:"cached"`
}

type Service struct {
	fetcher LogFetcher
	cache   cache.Cache[*domain.LogSnapshot]
	clock   func() time.Time
}

func NewService(fetcher LogFetcher) *Service {
	return &Service{
		fetcher: fetcher,
		clock:   time.Now,
	}
}

// WithCache keeps fetched snapshots for repeated queries by the same token
func (s *Service) WithCache(c cache.Cache[*domain.LogSnapshot]) *Service {
	s.cache = c
	return s
}

// WithClock sets the source of "now", typically time.Now in the configured zone
func (s *Service) WithClock(clock func() time.Time) *Service {
	if clock != nil {
		s.clock = clock
	}
	return s
}

func (s *Service) Now() time.Time {
	return s.clock()
}

func (s *Service) Comparison(ctx context.Context, q Query) (*ComparisonReport, error) {
	snapshot, cached, err := s.snapshot(ctx, q)
	if err != nil {
		return nil, err
	}

	cmp := GetSpendingComparison(snapshot.FuelLogs, snapshot.MaintenanceLogs, s.clock())

	log.ForContext(ctx).WithFields(log.Fields{
		"vehicle_count":     len(snapshot.Vehicles),
		"current_total":     cmp.CurrentMonth.TotalSpending.String(),
		"percentage_change": cmp.PercentageChange.StringFixed(1),
	}).Debug("spending: comparison computed")

	return &ComparisonReport{
		SpendingComparison: cmp,
		Current:            formatMonth(cmp.CurrentMonth),
		Previous:           formatMonth(cmp.PreviousMonth),
		Trend:              trend(cmp.PercentageChange),
		ChangeLabel:        cmp.PercentageChange.Abs().StringFixed(1) + "% vs last month",
		Totals:             snapshot.Totals(),
		Cached:             cached,
	}, nil
}

func (s *Service) Monthly(ctx context.Context, q Query, month time.Month, year int) (*MonthlyReport, error) {
	if month < time.January || month > time.December {
		return nil, utils.ErrInvalidPeriod
	}

	snapshot, cached, err := s.snapshot(ctx, q)
	if err != nil {
		return nil, err
	}

	monthly := CalculateMonthlySpending(snapshot.FuelLogs, snapshot.MaintenanceLogs, month, year)
	return &MonthlyReport{
		MonthlySpending: monthly,
		Formatted:       formatMonth(monthly),
		Totals:          snapshot.Totals(),
		Cached:          cached,
	}, nil
}

func (s *Service) Recent(ctx context.Context, q Query, months int) (*RecentReport, error) {
	snapshot, cached, err := s.snapshot(ctx, q)
	if err != nil {
		return nil, err
	}

	recent := RecentMonths(snapshot.FuelLogs, snapshot.MaintenanceLogs, s.clock(), months)
	reports := make([]MonthlyReport, 0, len(recent))
	for _, m := range recent {
		reports = append(reports, MonthlyReport{MonthlySpending: m, Formatted: formatMonth(m)})
	}

	return &RecentReport{
		Months: reports,
		Totals: snapshot.Totals(),
		Cached: cached,
	}, nil
}

func (s *Service) snapshot(ctx context.Context, q Query) (*domain.LogSnapshot, bool, error) {
	key := cache.SnapshotKey(q.Token, q.VehicleIDs)

	if s.cache != nil && !q.Refresh {
		if snapshot, ok := s.cache.Get(key); ok {
			log.ForContext(ctx).Debug("spending: snapshot served from cache")
			return snapshot, true, nil
		}
	}

	snapshot, err := s.fetcher.FetchLogs(ctx, q.Token, q.VehicleIDs)
	if err != nil {
		return nil, false, errors.Wrap(err, "spending: fetch logs")
	}

	if s.cache != nil {
		s.cache.Set(key, snapshot)
	}

	return snapshot, false, nil
}

func formatMonth(m domain.MonthlySpending) FormattedMonth {
	return FormattedMonth{
		Total:       utils.FormatCurrency(m.TotalSpending),
		Fuel:        utils.FormatCurrency(m.FuelSpending),
		Maintenance: utils.FormatCurrency(m.MaintenanceSpending),
	}
}

func trend(change decimal.Decimal) string {
	if change.IsNegative() {
		return TrendDown
	}
	return TrendUp
}
