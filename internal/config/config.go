package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	VehicleAPI VehicleAPI `mapstructure:",squash"`
	Cache      Cache      `mapstructure:",squash"`
	CORS       CORS       `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
	// Timezone decides which calendar month "now" falls in
	Timezone string `mapstructure:"timezone"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type VehicleAPI struct {
	BaseURL              string        `mapstructure:"vehicle_api_base_url"`
	Timeout              time.Duration `mapstructure:"vehicle_api_timeout"`
	PageSize             int           `mapstructure:"vehicle_api_page_size"`
	MaxConcurrentFetches int           `mapstructure:"vehicle_api_max_concurrent_fetches"`
}

type Cache struct {
	Enabled    bool          `mapstructure:"cache_enabled"`
	TTL        time.Duration `mapstructure:"cache_ttl"`
	MaxEntries int           `mapstructure:"cache_max_entries"`
	SweepCron  string        `mapstructure:"cache_sweep_cron"`
}

type CORS struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("TIMEZONE", "Asia/Manila")

	v.SetDefault("HOST", "localhost")
	v.SetDefault("PORT", "8080")

	v.SetDefault("VEHICLE_API_BASE_URL", "http://localhost:8000")
	v.SetDefault("VEHICLE_API_TIMEOUT", "15s")
	v.SetDefault("VEHICLE_API_PAGE_SIZE", 100) // upstream default limit
	v.SetDefault("VEHICLE_API_MAX_CONCURRENT_FETCHES", 4)

	v.SetDefault("CACHE_ENABLED", true)
	v.SetDefault("CACHE_TTL", "2m")
	v.SetDefault("CACHE_MAX_ENTRIES", 500)
	v.SetDefault("CACHE_SWEEP_CRON", "*/5 * * * *") // every 5 minutes

	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:8081,http://localhost:19006")
}

// NewConfig loads .env (when present), applies defaults and environment
// overrides, and returns the decoded configuration.
func NewConfig() (*Config, error) {
	loadEnvFile()

	v := viper.New()
	setDefaults(v)

	v.SetConfigType("env")
	v.SetConfigFile(".env")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		logrus.Debug("config: .env not read by viper, using environment only: ", err)
	}

	cfg := &Config{}
	err := v.Unmarshal(cfg, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	cfg.VehicleAPI.BaseURL = strings.TrimRight(cfg.VehicleAPI.BaseURL, "/")
	cfg.CORS.AllowedOrigins = trimAll(cfg.CORS.AllowedOrigins)

	return cfg, nil
}

// Location returns the configured time zone, UTC when it cannot be loaded
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Validate reports every configuration problem at once
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Server.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Server.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		problems = append(problems, fmt.Sprintf("invalid timezone '%s': %v", c.App.Timezone, err))
	}

	if parsed, err := url.Parse(c.VehicleAPI.BaseURL); err != nil || c.VehicleAPI.BaseURL == "" {
		problems = append(problems, fmt.Sprintf("invalid vehicle API base URL '%s'", c.VehicleAPI.BaseURL))
	} else if parsed.Scheme != "http" && parsed.Scheme != "https" {
		problems = append(problems, fmt.Sprintf("invalid vehicle API URL scheme '%s': must be 'http' or 'https'", parsed.Scheme))
	}

	if c.VehicleAPI.Timeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid vehicle API timeout %v: must be positive", c.VehicleAPI.Timeout))
	}

	if c.VehicleAPI.PageSize < 1 || c.VehicleAPI.PageSize > 1000 {
		problems = append(problems, fmt.Sprintf("invalid vehicle API page size %d: must be between 1 and 1000", c.VehicleAPI.PageSize))
	}

	if c.VehicleAPI.MaxConcurrentFetches < 1 || c.VehicleAPI.MaxConcurrentFetches > 32 {
		problems = append(problems, fmt.Sprintf("invalid max concurrent fetches %d: must be between 1 and 32", c.VehicleAPI.MaxConcurrentFetches))
	}

	if c.Cache.Enabled {
		if c.Cache.TTL <= 0 {
			problems = append(problems, fmt.Sprintf("invalid cache TTL %v: must be positive", c.Cache.TTL))
		}
		if c.Cache.MaxEntries < 1 {
			problems = append(problems, fmt.Sprintf("invalid cache size %d: must be at least 1", c.Cache.MaxEntries))
		}
		if strings.TrimSpace(c.Cache.SweepCron) == "" {
			problems = append(problems, "cache sweep cron cannot be empty when the cache is enabled")
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// loadEnvFile loads the first .env found near the working directory.
// Variables already present in the environment win.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("config: could not resolve working directory: ", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("config: .env loaded from ", location)
			return
		}
	}

	logrus.Debug("config: no .env file found, using environment only")
}
