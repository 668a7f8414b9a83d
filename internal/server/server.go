// Package server wires the dashboard controller into a fiber application and
// runs it until its context is cancelled.
package server

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"pod-dashboard/internal/config"
	"pod-dashboard/internal/dashboard"
	"pod-dashboard/internal/handler"
	"pod-dashboard/internal/service"
	"pod-dashboard/internal/store"
	"pod-dashboard/pkg/logger"
)

// Server owns the fiber app and the store observer registered for it.
type Server struct {
	app         *fiber.App
	cfg         config.ServerConfig
	log         *logger.Logger
	unsubscribe func()
}

// New builds the dashboard application around an existing trend service and catalog.
func New(cfg *config.Config, trends service.TrendService, catalog service.CatalogService) *Server {
	log := logger.GetLogger().WithField("component", "server")

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		Views:                 dashboard.NewEngine(cfg.Server.ReloadViews),
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler(log),
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(requestLogger(log))

	controller := handler.NewController(trends, catalog, handler.ControllerConfig{
		AppName:     cfg.App.Name,
		Environment: cfg.App.Environment,
	})
	controller.RegisterRoutes(app)

	s := &Server{
		app: app,
		cfg: cfg.Server,
		log: log,
	}
	s.unsubscribe = trends.Subscribe(s.logStoreTransition)
	return s
}

// App exposes the fiber application, mainly for app.Test in tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves until ctx is cancelled, then shuts down within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	defer s.unsubscribe()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.log.WithField("addr", s.cfg.Addr()).Info("Dashboard listening")
		return s.app.Listen(s.cfg.Addr())
	})

	g.Go(func() error {
		<-gctx.Done()
		s.log.Info("Shutting down dashboard")

		timeout := s.cfg.ShutdownTimeout
		if timeout <= 0 {
			timeout = 5 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return s.app.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (s *Server) logStoreTransition(st store.State) {
	s.log.WithFields(map[string]interface{}{
		"trends":  len(st.Trends),
		"loading": st.Loading,
		"error":   st.Error,
	}).Debug("Trend store updated")
}

func requestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		entry := log.WithFields(map[string]interface{}{
			"request_id":  c.GetRespHeader(fiber.HeaderXRequestID),
			"method":      c.Method(),
			"path":        c.Path(),
			"status":      status,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		if status >= fiber.StatusInternalServerError {
			entry.Warn("Request failed")
		} else {
			entry.Debug("Request served")
		}
		return err
	}
}

func errorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Something went wrong"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}
		if code >= fiber.StatusInternalServerError {
			log.WithError(err).WithField("path", c.Path()).Error("Unhandled request error")
		}

		c.Status(code)
		if renderErr := c.Render(dashboard.ViewError, fiber.Map{
			"Title":   "Error - POD Trends",
			"Active":  "",
			"Status":  code,
			"Message": message,
		}, dashboard.LayoutMain); renderErr != nil {
			return c.SendString(message)
		}
		return nil
	}
}
