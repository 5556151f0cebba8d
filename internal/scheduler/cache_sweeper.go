package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vehicle-insights-api/internal/cache"
	"github.com/vfg2006/vehicle-insights-api/internal/config"
)

// CacheSweeperConfig holds the schedule of the snapshot cache sweep
type CacheSweeperConfig struct {
	CronSchedule string
	Enabled      bool
}

// CacheSweeperService removes expired snapshots on a cron schedule
type CacheSweeperService struct {
	scheduler        *gocron.Scheduler
	config           CacheSweeperConfig
	cache            cache.Cleaner
	sweepRunning     bool
	sweepMutex       sync.Mutex
	lastSweepAt      time.Time
	lastSweepRemoved int
	totalRemoved     int
}

func NewCacheSweeperService(c cache.Cleaner, appConfig *config.Config) *CacheSweeperService {
	sweeperConfig := CacheSweeperConfig{
		CronSchedule: appConfig.Cache.SweepCron,
		Enabled:      appConfig.Cache.Enabled && c != nil,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweeperConfig.CronSchedule,
		"enabled":       sweeperConfig.Enabled,
	}).Info("scheduler: cache sweeper configured")

	return &CacheSweeperService{
		scheduler: gocron.NewScheduler(appConfig.Location()),
		config:    sweeperConfig,
		cache:     c,
	}
}

// Start schedules the sweep and stops the scheduler when ctx is done
func (s *CacheSweeperService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("scheduler: cache sweeper disabled")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.Sweep()
	})
	if err != nil {
		return fmt.Errorf("scheduler: schedule cache sweep: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("scheduler: stopping cache sweeper")
		s.scheduler.Stop()
	}()

	return nil
}

// Sweep drops expired entries and returns how many were removed. A sweep
// already in progress makes this a no-op returning 0.
func (s *CacheSweeperService) Sweep() int {
	if s.cache == nil {
		return 0
	}

	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Debug("scheduler: cache sweep already running, skipping")
		return 0
	}
	s.sweepRunning = true
	s.sweepMutex.Unlock()

	removed := s.cache.CleanExpired()

	s.sweepMutex.Lock()
	s.sweepRunning = false
	s.lastSweepAt = time.Now()
	s.lastSweepRemoved = removed
	s.totalRemoved += removed
	s.sweepMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"removed":   removed,
		"remaining": s.cache.Size(),
	}).Debug("scheduler: cache swept")

	return removed
}

// GetStatus reports the sweeper state and cache size
func (s *CacheSweeperService) GetStatus() map[string]any {
	s.sweepMutex.Lock()
	defer s.sweepMutex.Unlock()

	size := 0
	if s.cache != nil {
		size = s.cache.Size()
	}

	return map[string]any{
		"sweep_running":      s.sweepRunning,
		"sweep_cron":         s.config.CronSchedule,
		"sweep_enabled":      s.config.Enabled,
		"last_sweep_at":      s.lastSweepAt,
		"last_sweep_removed": s.lastSweepRemoved,
		"total_removed":      s.totalRemoved,
		"cache_entries":      size,
	}
}
