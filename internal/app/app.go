// Package app assembles the dashboard's collaborators from configuration.
package app

import (
	"fmt"

	"pod-dashboard/internal/config"
	"pod-dashboard/internal/store"
	"pod-dashboard/pkg/api"
	"pod-dashboard/pkg/logger"
)

// App bundles the long-lived dependencies shared by the server and the CLI.
type App struct {
	Config *config.Config
	Client *api.Client
	Trends *store.TrendStore
}

// New configures logging and builds the API client and trend store.
func New(cfg *config.Config) (*App, error) {
	if cfg.App.Debug {
		cfg.Logger.Level = "debug"
	}
	logger.SetLogger(logger.New(cfg.Logger))

	conn := api.DefaultConnectionConfig()
	conn.RequestTimeout = cfg.API.Timeout
	if cfg.API.MaxConnsPerHost > 0 {
		conn.MaxConnsPerHost = cfg.API.MaxConnsPerHost
	}

	client, err := api.NewClient(api.Config{
		BaseURL:    cfg.API.BaseURL,
		APIKey:     cfg.API.APIKey,
		Connection: conn,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create api client: %w", err)
	}

	logger.GetSecurityLogger().SafeInfo("Configuration loaded", map[string]interface{}{
		"api_url":     cfg.API.BaseURL,
		"api_key":     cfg.API.APIKey,
		"environment": cfg.App.Environment,
		"api_timeout": cfg.API.Timeout.String(),
	})

	return &App{
		Config: cfg,
		Client: client,
		Trends: store.NewTrendStore(client.Trends()),
	}, nil
}

// Close releases pooled connections.
func (a *App) Close() {
	a.Client.Close()
}
