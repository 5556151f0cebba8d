package vehicleclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/vehicle-insights-api/internal/config"
	"github.com/vfg2006/vehicle-insights-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// defaultPageSize matches the limit default of the vehicle API list routes
const defaultPageSize = 100

//go:generate mockgen -source=client.go -destination=../mocks/mock_client.go -package=mocks

// Client reads vehicles and their logs from the vehicle API on behalf of the
// token owner.
type Client interface {
	GetVehicles(ctx context.Context, token string) ([]domain.Vehicle, error)
	GetVehicle(ctx context.Context, token string, vehicleID int) (*domain.Vehicle, error)
	GetFuelLogs(ctx context.Context, token string, vehicleID int) ([]domain.FuelLog, error)
	GetMaintenanceLogs(ctx context.Context, token string, vehicleID int) ([]domain.MaintenanceLog, error)
}

type VehicleClient struct {
	httpClient *http.Client
	baseURL    string
	pageSize   int
}

// NewClient builds a client for cfg.VehicleAPI
func NewClient(cfg *config.Config) *VehicleClient {
	pageSize := cfg.VehicleAPI.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &VehicleClient{
		httpClient: &http.Client{
			Timeout: cfg.VehicleAPI.Timeout,
		},
		baseURL:  cfg.VehicleAPI.BaseURL,
		pageSize: pageSize,
	}
}

func (c *VehicleClient) GetVehicles(ctx context.Context, token string) ([]domain.Vehicle, error) {
	return getAll[domain.Vehicle](ctx, c, token, "/vehicles/")
}

func (c *VehicleClient) GetVehicle(ctx context.Context, token string, vehicleID int) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	if err := c.get(ctx, token, "/vehicles/"+strconv.Itoa(vehicleID), nil, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (c *VehicleClient) GetFuelLogs(ctx context.Context, token string, vehicleID int) ([]domain.FuelLog, error) {
	return getAll[domain.FuelLog](ctx, c, token, "/fuel/vehicle/"+strconv.Itoa(vehicleID))
}

func (c *VehicleClient) GetMaintenanceLogs(ctx context.Context, token string, vehicleID int) ([]domain.MaintenanceLog, error) {
	return getAll[domain.MaintenanceLog](ctx, c, token, "/maintenance/vehicle/"+strconv.Itoa(vehicleID))
}

// getAll walks skip/limit pages until a short page comes back
func getAll[T any](ctx context.Context, c *VehicleClient, token, path string) ([]T, error) {
	var all []T
	for skip := 0; ; skip += c.pageSize {
		query := url.Values{}
		query.Set("skip", strconv.Itoa(skip))
		query.Set("limit", strconv.Itoa(c.pageSize))

		var page []T
		if err := c.get(ctx, token, path, query, &page); err != nil {
			return nil, err
		}

		all = append(all, page...)
		if len(page) < c.pageSize {
			return all, nil
		}
	}
}

func (c *VehicleClient) get(ctx context.Context, token, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("vehicleapi: create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("vehicleapi: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("vehicleapi: read body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return newAPIError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("vehicleapi: decode %s: %w", path, err)
	}

	return nil
}
