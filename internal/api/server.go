package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/vehicle-insights-api/internal/api/handler"
	"github.com/vfg2006/vehicle-insights-api/internal/api/handler/router"
	"github.com/vfg2006/vehicle-insights-api/internal/config"
	"github.com/vfg2006/vehicle-insights-api/internal/scheduler"
	"github.com/vfg2006/vehicle-insights-api/internal/usecases/maintenance"
	"github.com/vfg2006/vehicle-insights-api/internal/usecases/mileage"
	"github.com/vfg2006/vehicle-insights-api/internal/usecases/spending"
	"github.com/vfg2006/vehicle-insights-api/pkg/middleware"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
}

// Services groups what the handlers depend on
type Services struct {
	Spending     spending.Spender
	Maintenance  *maintenance.Service
	Mileage      *mileage.Service
	CacheSweeper *scheduler.CacheSweeperService
}

func New(cfg *config.Config, services Services) (*Server, error) {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Insights(services.Spending)...),
		router.WithRoutes(handler.Units()...),
		router.WithRoutes(handler.Maintenance(services.Maintenance)...),
		router.WithRoutes(handler.Mileage(services.Mileage)...),
		router.WithRoutes(handler.Cache(services.CacheSweeper)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.CORS.AllowedOrigins),
	}

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           alice.New(middlewares...).Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler exposes the full middleware chain, mainly for tests
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server: starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server: listen failed")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("server: interrupt received")
	case <-ctx.Done():
		logrus.Info("server: context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("server: shutting down")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("server: shutdown failed")
		return err
	}

	logrus.Info("server: stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
