package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"pod-dashboard/internal/app"
	"pod-dashboard/internal/config"
	"pod-dashboard/internal/server"
	"pod-dashboard/pkg/logger"
)

type Application struct {
	configPath string
	debug      bool
}

func main() {
	application := &Application{}

	flag.StringVar(&application.configPath, "config", "config/dashboard.yaml", "Configuration file path (optional)")
	flag.BoolVar(&application.debug, "debug", false, "Enable debug logging")
	flag.Parse()

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "dashboard failed: %v\n", err)
		os.Exit(1)
	}
}

func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewManager().Load(a.configPath)
	if err != nil {
		return err
	}
	if a.debug {
		cfg.App.Debug = true
	}

	deps, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	log := logger.GetLogger().WithField("component", "main")
	log.WithField("environment", cfg.App.Environment).Info("Starting dashboard")

	if err := server.New(cfg, deps.Trends, deps.Client).Run(ctx); err != nil {
		return fmt.Errorf("server stopped: %w", err)
	}

	log.Info("Dashboard stopped")
	return nil
}
