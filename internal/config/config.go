package config

import (
	"time"

	"pod-dashboard/pkg/logger"
)

type Config struct {
	App    AppConfig     `mapstructure:"app"`
	Server ServerConfig  `mapstructure:"server"`
	API    APIConfig     `mapstructure:"api"`
	Logger logger.Config `mapstructure:"logger"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ReloadViews     bool          `mapstructure:"reload_views"`
}

type APIConfig struct {
	BaseURL         string        `mapstructure:"base_url"`
	APIKey          string        `mapstructure:"api_key"`
	Timeout         time.Duration `mapstructure:"timeout"`
	MaxConnsPerHost int           `mapstructure:"max_conns_per_host"`
}

type Manager interface {
	Load(configPath string) (*Config, error)
	Reload() error
	GetConfig() *Config
}

const (
	DefaultAPIBaseURL = "http://localhost:8000/api/v1"
	DefaultPort       = 3000
)

var defaults = map[string]interface{}{
	"app.name":                "POD Trends",
	"app.environment":         "development",
	"app.debug":               false,
	"server.host":             "0.0.0.0",
	"server.port":             DefaultPort,
	"server.shutdown_timeout": 5 * time.Second,
	"server.read_timeout":     30 * time.Second,
	"server.write_timeout":    60 * time.Second,
	"server.reload_views":     false,
	"api.base_url":            DefaultAPIBaseURL,
	"api.api_key":             "",
	"api.timeout":             time.Duration(0),
	"api.max_conns_per_host":  64,
	"logger.level":            "info",
	"logger.format":           "json",
	"logger.output":           "stdout",
	"logger.time_format":      "",
}
