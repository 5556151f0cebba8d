package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/vehicle-insights-api/infrastructure/integrator/vehicleapi/mocks"
	"github.com/vfg2006/vehicle-insights-api/infrastructure/integrator/vehicleapi/vehicleclient"
	"github.com/vfg2006/vehicle-insights-api/internal/api/handler/router"
	"github.com/vfg2006/vehicle-insights-api/internal/cache"
	"github.com/vfg2006/vehicle-insights-api/internal/config"
	"github.com/vfg2006/vehicle-insights-api/internal/domain"
	"github.com/vfg2006/vehicle-insights-api/internal/scheduler"
	"github.com/vfg2006/vehicle-insights-api/internal/usecases/maintenance"
	"github.com/vfg2006/vehicle-insights-api/internal/usecases/mileage"
	"github.com/vfg2006/vehicle-insights-api/internal/usecases/spending"
	spendingmocks "github.com/vfg2006/vehicle-insights-api/internal/usecases/spending/mocks"
	"github.com/vfg2006/vehicle-insights-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func serve(t *testing.T, routes []router.Route, method, target string, withToken bool) *httptest.ResponseRecorder {
	t.Helper()
	rt := router.New(router.WithRoutes(routes...))

	req := httptest.NewRequest(method, target, nil)
	if withToken {
		req.Header.Set("Authorization", "Bearer tok")
	}
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestInsightsRoutes(t *testing.T) {
	log.SetupTestLogger()
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	comparison := &spending.ComparisonReport{
		SpendingComparison: domain.SpendingComparison{
			CurrentMonth: domain.MonthlySpending{
				TotalSpending: decimal.NewFromInt(1500), FuelSpending: decimal.NewFromInt(1000),
				MaintenanceSpending: decimal.NewFromInt(500), MonthName: "March", Month: 3, Year: 2024,
			},
			PercentageChange: decimal.RequireFromString("87.5"),
		},
		Current: spending.FormattedMonth{Total: "₱1,500.00"},
		Trend:   spending.TrendUp,
	}

	tests := []struct {
		name       string
		target     string
		withToken  bool
		setup      func(s *spendingmocks.MockSpender)
		wantStatus int
		validate   func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:       "missing token",
			target:     "/v1/insights/spending",
			setup:      func(s *spendingmocks.MockSpender) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:      "comparison with vehicle filter",
			target:    "/v1/insights/spending?vehicle_id=1,2&vehicle_id=5&refresh=true",
			withToken: true,
			setup: func(s *spendingmocks.MockSpender) {
				s.EXPECT().
					Comparison(gomock.Any(), spending.Query{Token: "tok", VehicleIDs: []int{1, 2, 5}, Refresh: true}).
					Return(comparison, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				body := decodeBody(t, rec)
				assert.Equal(t, "87.5", body["percentage_change"])
				assert.Equal(t, "up", body["trend"])
				current := body["current_month"].(map[string]any)
				assert.Equal(t, "1500", current["total_spending"])
				assert.Equal(t, "March", current["month_name"])
			},
		},
		{
			name:       "bad vehicle filter",
			target:     "/v1/insights/spending?vehicle_id=abc",
			withToken:  true,
			setup:      func(s *spendingmocks.MockSpender) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:      "upstream rejects token",
			target:    "/v1/insights/spending",
			withToken: true,
			setup: func(s *spendingmocks.MockSpender) {
				s.EXPECT().Comparison(gomock.Any(), gomock.Any()).
					Return(nil, &vehicleclient.APIError{StatusCode: 401, Detail: "expired"})
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:      "upstream failure",
			target:    "/v1/insights/spending",
			withToken: true,
			setup: func(s *spendingmocks.MockSpender) {
				s.EXPECT().Comparison(gomock.Any(), gomock.Any()).
					Return(nil, &vehicleclient.APIError{StatusCode: 500, Detail: "boom"})
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:      "upstream timeout",
			target:    "/v1/insights/spending",
			withToken: true,
			setup: func(s *spendingmocks.MockSpender) {
				s.EXPECT().Comparison(gomock.Any(), gomock.Any()).Return(nil, context.DeadlineExceeded)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:      "monthly defaults to current month",
			target:    "/v1/insights/spending/monthly",
			withToken: true,
			setup: func(s *spendingmocks.MockSpender) {
				s.EXPECT().Now().Return(now)
				s.EXPECT().Monthly(gomock.Any(), gomock.Any(), time.March, 2024).
					Return(&spending.MonthlyReport{MonthlySpending: comparison.CurrentMonth}, nil)
			},
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, float64(3), decodeBody(t, rec)["month"])
			},
		},
		{
			name:      "monthly rejects month 13",
			target:    "/v1/insights/spending/monthly?month=13&year=2024",
			withToken: true,
			setup: func(s *spendingmocks.MockSpender) {
				s.EXPECT().Now().Return(now)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:      "recent defaults to three months",
			target:    "/v1/insights/spending/recent",
			withToken: true,
			setup: func(s *spendingmocks.MockSpender) {
				s.EXPECT().Recent(gomock.Any(), gomock.Any(), 3).Return(&spending.RecentReport{}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "recent caps months",
			target:     "/v1/insights/spending/recent?months=25",
			withToken:  true,
			setup:      func(s *spendingmocks.MockSpender) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := spendingmocks.NewMockSpender(ctrl)
			tt.setup(service)

			rec := serve(t, Insights(service), http.MethodGet, tt.target, tt.withToken)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.validate != nil {
				tt.validate(t, rec)
			}
		})
	}
}

func TestUnitsRoutes(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name       string
		target     string
		wantStatus int
		validate   func(t *testing.T, body map[string]any)
	}{
		{
			name:       "distance",
			target:     "/v1/units/convert?kind=distance&value=100&from=km&to=mi",
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, 62.14, body["rounded"])
				assert.Equal(t, "62.1 mi", body["formatted"])
			},
		},
		{
			name:       "volume",
			target:     "/v1/units/convert?kind=volume&value=10&from=gal&to=L",
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "37.85 L", body["formatted"])
			},
		},
		{
			name:       "unsupported unit",
			target:     "/v1/units/convert?kind=distance&value=1&from=ft&to=km",
			wantStatus: http.StatusBadRequest,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "VAL_004", body["code"])
			},
		},
		{
			name:       "missing value",
			target:     "/v1/units/convert?kind=distance&from=km&to=mi",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "efficiency",
			target:     "/v1/units/efficiency?distance=300&volume=10&distance_unit=mi&volume_unit=gal",
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "30.00 mpg", body["efficiency"])
			},
		},
		{
			name:       "efficiency zero volume",
			target:     "/v1/units/efficiency?distance=500&volume=0",
			wantStatus: http.StatusOK,
			validate: func(t *testing.T, body map[string]any) {
				assert.Equal(t, "N/A", body["efficiency"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(t, Units(), http.MethodGet, tt.target, false)
			assert.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			if tt.validate != nil {
				tt.validate(t, decodeBody(t, rec))
			}
		})
	}
}

func TestMaintenanceRoutes(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	routes := Maintenance(maintenance.NewService(client))

	rec := serve(t, routes, http.MethodGet, "/v1/maintenance/templates?category=seasonal", false)
	require.Equal(t, http.StatusOK, rec.Code)
	var templates []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &templates))
	require.Len(t, templates, 2)
	assert.Equal(t, "annual_inspection", templates[0]["id"])
	assert.Equal(t, "Every year", templates[0]["interval_label"])

	rec = serve(t, routes, http.MethodGet, "/v1/maintenance/templates?category=weekly", false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	client.EXPECT().GetMaintenanceLogs(gomock.Any(), "tok", 7).Return([]domain.MaintenanceLog{
		{MaintenanceType: "Oil Change", Date: domain.NewDate(2024, time.March, 5)},
	}, nil)

	rec = serve(t, routes, http.MethodGet, "/v1/vehicles/7/reminders/suggestion?template=oil_change", true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, "2024-06-05", body["next_due_date"])
	assert.Equal(t, true, body["found"])

	rec = serve(t, routes, http.MethodGet, "/v1/vehicles/7/reminders/suggestion?template=unknown", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, routes, http.MethodGet, "/v1/vehicles/7/reminders/suggestion", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, routes, http.MethodGet, "/v1/vehicles/abc/reminders/suggestion?type=oil&interval=3", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMileageRoute(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	routes := Mileage(mileage.NewService(client))

	client.EXPECT().GetVehicle(gomock.Any(), "tok", 3).Return(&domain.Vehicle{ID: 3, CurrentMileage: 1000}, nil)
	rec := serve(t, routes, http.MethodGet, "/v1/vehicles/3/mileage/validate?mileage=900", true)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["valid"])
	assert.Equal(t, true, body["requires_warning"])

	client.EXPECT().GetVehicle(gomock.Any(), "tok", 4).Return(nil, &vehicleclient.APIError{StatusCode: 404, Detail: "Vehicle not found"})
	rec = serve(t, routes, http.MethodGet, "/v1/vehicles/4/mileage/validate?mileage=900", true)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, routes, http.MethodGet, "/v1/vehicles/4/mileage/validate", true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthcheck(t *testing.T) {
	rec := serve(t, Healthcheck(), http.MethodGet, "/healthcheck", false)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeBody(t, rec)["status"])
}

func TestCacheRoutes(t *testing.T) {
	log.SetupTestLogger()

	rec := serve(t, Cache(nil), http.MethodGet, "/v1/cache/status", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decodeBody(t, rec)["sweep_enabled"])

	rec = serve(t, Cache(nil), http.MethodPost, "/v1/cache/sweep", true)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	snapshots := cache.NewLRUCache[*domain.LogSnapshot](10, time.Nanosecond)
	snapshots.Set("expired", &domain.LogSnapshot{})
	time.Sleep(time.Millisecond)

	cfg := &config.Config{
		App:   config.App{Timezone: "UTC"},
		Cache: config.Cache{Enabled: true, SweepCron: "*/5 * * * *"},
	}
	routes := Cache(scheduler.NewCacheSweeperService(snapshots, cfg))

	rec = serve(t, routes, http.MethodPost, "/v1/cache/sweep", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(t, routes, http.MethodPost, "/v1/cache/sweep", true)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decodeBody(t, rec)["removed"])

	rec = serve(t, routes, http.MethodGet, "/v1/cache/status", true)
	require.Equal(t, http.StatusOK, rec.Code)
	status := decodeBody(t, rec)
	assert.Equal(t, true, status["sweep_enabled"])
	assert.Equal(t, float64(0), status["cache_entries"])
	assert.Equal(t, float64(1), status["total_removed"])
}
