package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/carein/call-summary/internal/adapter/dto/common"
	"github.com/carein/call-summary/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	summaryHandler *Summary
	commLogHandler *CommLog
	metrics        http.Handler
}

// NewRouter creates a new router with all handlers.
// metrics may be nil, in which case /metrics is not served.
func NewRouter(cfg *config.Config, summaryHandler *Summary, commLogHandler *CommLog, metrics http.Handler) *Router {
	return &Router{
		cfg:            cfg,
		summaryHandler: summaryHandler,
		commLogHandler: commLogHandler,
		metrics:        metrics,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// "/api/v1/summaries/" and "/api/v1/summaries" resolve to the same route
	e.Pre(middleware.RemoveTrailingSlash())

	e.GET("/", rt.welcome)
	e.GET("/health", rt.healthCheck)
	if rt.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(rt.metrics))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/api/v1")

	rt.setupSummaryRoutes(v1)
	rt.setupCommLogRoutes(v1)
}

// setupSummaryRoutes configures call summary routes
func (rt *Router) setupSummaryRoutes(g *echo.Group) {
	summaries := g.Group("/summaries")

	summaries.POST("", rt.summaryHandler.CreateSummary)
	summaries.GET("", rt.summaryHandler.ListSummaries)
	summaries.GET("/:id", rt.summaryHandler.GetSummary)
	summaries.POST("/:id/rerun", rt.summaryHandler.RerunSummary)
}

// setupCommLogRoutes configures audit trail routes
func (rt *Router) setupCommLogRoutes(g *echo.Group) {
	commlog := g.Group("/commlog")

	commlog.GET("", rt.commLogHandler.ListCommLogs)
	commlog.GET("/:summary_id", rt.commLogHandler.ListCommLogsBySummary)
}

// welcome handles GET /
// @Summary      API banner
// @Tags         System
// @Produce      json
// @Success      200  {object}  common.MessageResponse
// @Router       / [get]
func (rt *Router) welcome(c echo.Context) error {
	return c.JSON(http.StatusOK, common.MessageResponse{
		Message: "Welcome to CareIn AI Call Summary API",
	})
}

// healthCheck returns health status
// @Summary      Liveness probe
// @Tags         System
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	env := ""
	if rt.cfg != nil {
		env = rt.cfg.Environment
	}
	return c.JSON(http.StatusOK, common.HealthResponse{
		Status:      "ok",
		Environment: env,
	})
}
