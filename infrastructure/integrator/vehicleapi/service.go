package vehicleapi

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/vehicle-insights-api/infrastructure/integrator/vehicleapi/vehicleclient"
	"github.com/vfg2006/vehicle-insights-api/internal/config"
	"github.com/vfg2006/vehicle-insights-api/internal/domain"
	"github.com/vfg2006/vehicle-insights-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

type Integrator interface {
	FetchLogs(ctx context.Context, token string, vehicleIDs []int) (*domain.LogSnapshot, error)
	GetVehicle(ctx context.Context, token string, vehicleID int) (*domain.Vehicle, error)
	GetMaintenanceLogs(ctx context.Context, token string, vehicleID int) ([]domain.MaintenanceLog, error)
}

type VehicleAPIService struct {
	Client         vehicleclient.Client
	maxConcurrency int
	now            func() time.Time
}

func New(cfg *config.Config, client vehicleclient.Client) *VehicleAPIService {
	maxConcurrency := cfg.VehicleAPI.MaxConcurrentFetches
	if maxConcurrency <= 0 {
		maxConcurrency = 1
	}

	return &VehicleAPIService{
		Client:         client,
		maxConcurrency: maxConcurrency,
		now:            time.Now,
	}
}

// FetchLogs loads the fuel and maintenance logs of the selected vehicles in
// parallel. An empty vehicleIDs selects every vehicle of the token owner.
func (s *VehicleAPIService) FetchLogs(ctx context.Context, token string, vehicleIDs []int) (*domain.LogSnapshot, error) {
	vehicles, err := s.Client.GetVehicles(ctx, token)
	if err != nil {
		return nil, errors.Wrap(err, "vehicleapi: list vehicles")
	}

	selected, err := selectVehicles(vehicles, vehicleIDs)
	if err != nil {
		return nil, err
	}

	snapshot := &domain.LogSnapshot{Vehicles: selected}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrency)

	for _, v := range selected {
		vehicleID := v.ID

		g.Go(func() error {
			fuelLogs, err := s.Client.GetFuelLogs(gctx, token, vehicleID)
			if err != nil {
				return errors.Wrapf(err, "vehicleapi: fuel logs of vehicle %d", vehicleID)
			}

			mu.Lock()
			snapshot.FuelLogs = append(snapshot.FuelLogs, fuelLogs...)
			mu.Unlock()
			return nil
		})

		g.Go(func() error {
			maintenanceLogs, err := s.Client.GetMaintenanceLogs(gctx, token, vehicleID)
			if err != nil {
				return errors.Wrapf(err, "vehicleapi: maintenance logs of vehicle %d", vehicleID)
			}

			mu.Lock()
			snapshot.MaintenanceLogs = append(snapshot.MaintenanceLogs, maintenanceLogs...)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.ForContext(ctx).WithError(err).Error("vehicleapi: fetch logs failed")
		return nil, err
	}

	snapshot.FetchedAt = s.now()

	log.ForContext(ctx).WithFields(log.Fields{
		"vehicle_count":            len(snapshot.Vehicles),
		"vehicle_fuel_logs":        len(snapshot.FuelLogs),
		"vehicle_maintenance_logs": len(snapshot.MaintenanceLogs),
	}).Debug("vehicleapi: logs fetched")

	return snapshot, nil
}

func (s *VehicleAPIService) GetVehicle(ctx context.Context, token string, vehicleID int) (*domain.Vehicle, error) {
	vehicle, err := s.Client.GetVehicle(ctx, token, vehicleID)
	if err != nil {
		return nil, errors.Wrapf(err, "vehicleapi: vehicle %d", vehicleID)
	}
	return vehicle, nil
}

func (s *VehicleAPIService) GetMaintenanceLogs(ctx context.Context, token string, vehicleID int) ([]domain.MaintenanceLog, error) {
	logs, err := s.Client.GetMaintenanceLogs(ctx, token, vehicleID)
	if err != nil {
		return nil, errors.Wrapf(err, "vehicleapi: maintenance logs of vehicle %d", vehicleID)
	}
	return logs, nil
}

func selectVehicles(vehicles []domain.Vehicle, vehicleIDs []int) ([]domain.Vehicle, error) {
	if len(vehicleIDs) == 0 {
		return vehicles, nil
	}

	byID := make(map[int]domain.Vehicle, len(vehicles))
	for _, v := range vehicles {
		byID[v.ID] = v
	}

	selected := make([]domain.Vehicle, 0, len(vehicleIDs))
	seen := make(map[int]bool, len(vehicleIDs))
	for _, id := range vehicleIDs {
		if seen[id] {
			continue
		}
		seen[id] = true

		v, ok := byID[id]
		if !ok {
			return nil, errors.Wrapf(domain.ErrVehicleNotFound, "vehicle %d", id)
		}
		selected = append(selected, v)
	}

	return selected, nil
}
