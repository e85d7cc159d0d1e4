package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Team calendar specifics
	Backend  BackendConfig
	Calendar CalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// BackendConfig points at the team backend that owns auth and calendar data.
type BackendConfig struct {
	URL       string
	RateLimit float64 // requests per second against the backend
}

type CalendarConfig struct {
	DefaultTimezone   string
	TimezoneCacheSize int
	RosterRefresh     string // cron spec or "@every 15m" style interval
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Team calendar specifics
	cfg.Backend.URL = viper.GetString("backend.url")
	cfg.Backend.RateLimit = viper.GetFloat64("backend.rate_limit")
	if backendURL := viper.GetString("backend_url"); backendURL != "" {
		cfg.Backend.URL = backendURL
	}

	cfg.Calendar.DefaultTimezone = viper.GetString("calendar.default_timezone")
	cfg.Calendar.TimezoneCacheSize = viper.GetInt("calendar.timezone_cache_size")
	cfg.Calendar.RosterRefresh = viper.GetString("calendar.roster_refresh")
	if tz := viper.GetString("calendar_timezone"); tz != "" {
		cfg.Calendar.DefaultTimezone = tz
	}

	if cfg.Backend.URL == "" {
		return nil, fmt.Errorf("backend.url is required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("backend.url", "http://localhost:5000")
	viper.SetDefault("backend.rate_limit", 10.0)
	viper.SetDefault("calendar.default_timezone", "America/New_York")
	viper.SetDefault("calendar.timezone_cache_size", 32)
	viper.SetDefault("calendar.roster_refresh", "@every 15m")
}
