package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vehicle-insights-api/infrastructure/integrator/vehicleapi"
	"github.com/vfg2006/vehicle-insights-api/infrastructure/integrator/vehicleapi/vehicleclient"
	"github.com/vfg2006/vehicle-insights-api/internal/api"
	"github.com/vfg2006/vehicle-insights-api/internal/cache"
	"github.com/vfg2006/vehicle-insights-api/internal/config"
	"github.com/vfg2006/vehicle-insights-api/internal/domain"
	"github.com/vfg2006/vehicle-insights-api/internal/scheduler"
	"github.com/vfg2006/vehicle-insights-api/internal/usecases/maintenance"
	"github.com/vfg2006/vehicle-insights-api/internal/usecases/mileage"
	"github.com/vfg2006/vehicle-insights-api/internal/usecases/spending"
	"github.com/vfg2006/vehicle-insights-api/pkg/log"
)

func main() {
	chdirToSource()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := log.Configure(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("main: invalid log level %q, using info", cfg.App.LogLevel)
	}
	logrus.Infof("main: log level set to %s", logLevel)

	if err := cfg.Validate(); err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	vehicleClient := vehicleclient.NewClient(cfg)
	vehicleIntegrator := vehicleapi.New(cfg, vehicleClient)

	location := cfg.Location()
	spendingService := spending.NewService(vehicleIntegrator).
		WithClock(func() time.Time { return time.Now().In(location) })

	// a nil Cleaner keeps the sweeper disabled
	var cleaner cache.Cleaner
	if cfg.Cache.Enabled {
		snapshots := cache.NewLRUCache[*domain.LogSnapshot](cfg.Cache.MaxEntries, cfg.Cache.TTL)
		spendingService = spendingService.WithCache(snapshots)
		cleaner = snapshots
	}

	cacheSweeper := scheduler.NewCacheSweeperService(cleaner, cfg)
	if err := cacheSweeper.Start(ctx); err != nil {
		logrus.WithError(err).Error("main: cache sweeper did not start")
	}

	server, err := api.New(cfg, api.Services{
		Spending:     spendingService,
		Maintenance:  maintenance.NewService(vehicleIntegrator),
		Mileage:      mileage.NewService(vehicleIntegrator),
		CacheSweeper: cacheSweeper,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// chdirToSource makes the .env next to main.go visible when run with go run
func chdirToSource() {
	_, file, _, _ := runtime.Caller(0)
	_ = os.Chdir(path.Dir(file))
}
