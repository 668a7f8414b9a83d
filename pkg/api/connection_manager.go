package api

import (
	"time"

	"github.com/valyala/fasthttp"
	"pod-dashboard/pkg/logger"
)

// ConnectionConfig holds configuration for the pooled fasthttp client
type ConnectionConfig struct {
	MaxConnsPerHost     int           `json:"max_conns_per_host"`
	MaxIdleConnDuration time.Duration `json:"max_idle_conn_duration"`
	ReadTimeout         time.Duration `json:"read_timeout"`
	WriteTimeout        time.Duration `json:"write_timeout"`
	// RequestTimeout bounds a whole request. Zero means no bound beyond the
	// caller's context deadline.
	RequestTimeout time.Duration `json:"request_timeout"`
}

// DefaultConnectionConfig suits a dashboard issuing a handful of requests per page view.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxConnsPerHost:     64,
		MaxIdleConnDuration: 90 * time.Second,
	}
}

// ConnectionManager owns the fasthttp client shared by every resource.
type ConnectionManager struct {
	config ConnectionConfig
	client *fasthttp.Client
	log    *logger.Logger
}

func NewConnectionManager(config ConnectionConfig) *ConnectionManager {
	client := &fasthttp.Client{
		Name:                "pod-dashboard/1.0",
		MaxConnsPerHost:     config.MaxConnsPerHost,
		MaxIdleConnDuration: config.MaxIdleConnDuration,
		ReadTimeout:         config.ReadTimeout,
		WriteTimeout:        config.WriteTimeout,
	}

	return &ConnectionManager{
		config: config,
		client: client,
		log:    logger.GetLogger().WithField("component", "connection_manager"),
	}
}

// GetFastHTTPClient returns the managed fasthttp client
func (cm *ConnectionManager) GetFastHTTPClient() *fasthttp.Client {
	return cm.client
}

// RequestTimeout returns the configured per-request bound.
func (cm *ConnectionManager) RequestTimeout() time.Duration {
	return cm.config.RequestTimeout
}

// Close closes all idle connections
func (cm *ConnectionManager) Close() {
	cm.log.Debug("Closing idle API connections")
	cm.client.CloseIdleConnections()
}
