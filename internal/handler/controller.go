package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"pod-dashboard/internal/dashboard"
	"pod-dashboard/internal/service"
	"pod-dashboard/pkg/logger"
)

// Controller serves the dashboard pages and their JSON companions.
type Controller struct {
	trends  service.TrendService
	catalog service.CatalogService
	config  ControllerConfig
	log     *logger.Logger
	started time.Time
}

type ControllerConfig struct {
	AppName     string
	Environment string
}

// StatusResponse is the body of GET /health.
type StatusResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Uptime      string `json:"uptime"`
}

// SummaryResponse is the body of GET /api/trends/summary.
type SummaryResponse struct {
	Summary dashboard.Summary `json:"summary"`
	Count   int               `json:"count"`
	Loading bool              `json:"loading"`
	Error   *string           `json:"error"`
}

func NewController(trends service.TrendService, catalog service.CatalogService, config ControllerConfig) *Controller {
	if config.AppName == "" {
		config.AppName = "POD Trends"
	}
	return &Controller{
		trends:  trends,
		catalog: catalog,
		config:  config,
		log:     logger.GetLogger().WithField("component", "controller"),
		started: time.Now(),
	}
}

// RegisterRoutes mounts every dashboard route on router.
func (c *Controller) RegisterRoutes(router fiber.Router) {
	router.Get("/", c.Home)
	router.Get("/trends", c.Trends)
	router.Get("/designs", c.Designs)
	router.Get("/products", c.Products)
	router.Get("/health", c.Health)
	router.Get("/api/trends/summary", c.TrendSummary)
}

func (c *Controller) render(ctx *fiber.Ctx, view, title, active string, page interface{}) error {
	return ctx.Render(view, fiber.Map{
		"Title":  title,
		"Active": active,
		"Page":   page,
	}, dashboard.LayoutMain)
}

func (c *Controller) Home(ctx *fiber.Ctx) error {
	return c.render(ctx, dashboard.ViewHome, c.config.AppName+" - AI-Powered Design & Trend Analysis", "home", dashboard.NewHomePage())
}

// Trends runs the store's fetch once for this page view and renders the
// resulting snapshot.
func (c *Controller) Trends(ctx *fiber.Ctx) error {
	c.trends.FetchTrends(ctx.UserContext())
	page := dashboard.NewTrendsPage(c.trends.Snapshot())
	return c.render(ctx, dashboard.ViewTrends, "Trends - "+c.config.AppName, "trends", page)
}

func (c *Controller) Designs(ctx *fiber.Ctx) error {
	page := dashboard.LoadDesigns(ctx.UserContext(), c.catalog.Designs())
	return c.render(ctx, dashboard.ViewDesigns, "Designs - "+c.config.AppName, "designs", page)
}

func (c *Controller) Products(ctx *fiber.Ctx) error {
	page := dashboard.LoadProducts(ctx.UserContext(), c.catalog.Products())
	return c.render(ctx, dashboard.ViewProducts, "Products - "+c.config.AppName, "products", page)
}

func (c *Controller) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(StatusResponse{
		Status:      "healthy",
		Environment: c.config.Environment,
		Uptime:      time.Since(c.started).Round(time.Second).String(),
	})
}

// TrendSummary reports the current store state without triggering a fetch.
func (c *Controller) TrendSummary(ctx *fiber.Ctx) error {
	st := c.trends.Snapshot()
	resp := SummaryResponse{
		Summary: dashboard.Summarize(st.Trends),
		Count:   len(st.Trends),
		Loading: st.Loading,
	}
	if st.Error != "" {
		msg := st.Error
		resp.Error = &msg
	}
	return ctx.JSON(resp)
}
