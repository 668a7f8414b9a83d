package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides: POD_SERVER_PORT, POD_API_BASE_URL, ...
const EnvPrefix = "POD"

type manager struct {
	mu         sync.RWMutex
	config     *Config
	viper      *viper.Viper
	configPath string
	loaded     bool
}

func NewManager() Manager {
	return &manager{
		viper: viper.New(),
	}
}

// Load reads defaults, an optional .env file, an optional config file and the
// environment, in increasing order of precedence. A missing config file is
// not an error.
func (m *manager) Load(configPath string) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	if err := m.setupViper(configPath); err != nil {
		return nil, fmt.Errorf("failed to setup viper: %w", err)
	}
	m.configPath = configPath
	m.loaded = true

	config, err := m.read()
	if err != nil {
		return nil, err
	}

	m.config = config
	return config, nil
}

func (m *manager) Reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.loaded {
		return fmt.Errorf("config not loaded")
	}

	config, err := m.read()
	if err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}

	m.config = config
	return nil
}

func (m *manager) GetConfig() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.config
}

func (m *manager) setupViper(configPath string) error {
	for key, value := range defaults {
		m.viper.SetDefault(key, value)
	}

	m.viper.SetEnvPrefix(EnvPrefix)
	m.viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	m.viper.AutomaticEnv()

	// API_URL is accepted alongside POD_API_BASE_URL for existing deployments.
	if err := m.viper.BindEnv("api.base_url", EnvPrefix+"_API_BASE_URL", "API_URL"); err != nil {
		return err
	}

	if configPath != "" {
		m.viper.SetConfigFile(configPath)
	}
	return nil
}

func (m *manager) read() (*Config, error) {
	if m.configPath != "" {
		if _, err := os.Stat(m.configPath); err == nil {
			if err := m.viper.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config: %w", err)
		}
	}

	var config Config
	if err := m.viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	config.API.BaseURL = strings.TrimRight(config.API.BaseURL, "/")
	return &config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port <= 0 || config.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", config.Server.Port)
	}

	if config.API.BaseURL == "" {
		return fmt.Errorf("api.base_url cannot be empty")
	}

	parsed, err := url.Parse(config.API.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute URL: %q", config.API.BaseURL)
	}

	if config.API.Timeout < 0 {
		return fmt.Errorf("api.timeout cannot be negative")
	}

	return nil
}

// loadDotEnv exports variables from path without overriding ones already set.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Addr returns the host:port the dashboard listens on.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
