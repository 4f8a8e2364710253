package server

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/franciscoturdera00/resume-automation/internal/runs"
	"github.com/franciscoturdera00/resume-automation/internal/shared/config"
	"github.com/franciscoturdera00/resume-automation/internal/shared/metrics"
	"github.com/franciscoturdera00/resume-automation/internal/shared/server/middleware"
	"github.com/franciscoturdera00/resume-automation/internal/shared/server/respond"
	"github.com/franciscoturdera00/resume-automation/internal/tailor"
)

// NewRouter builds the gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, tailorHandler *tailor.Handler, runsHandler *runs.Handler) *gin.Engine {
	if cfg.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	r.GET("/healthz", func(c *gin.Context) {
		respond.OK(c, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	registerRenderRoutes(api)
	runsHandler.RegisterRoutes(api)

	// Tailoring calls a paid LLM API, so it gets its own limit.
	tailorGroup := api.Group("")
	tailorGroup.Use(middleware.RateLimit(middleware.RateLimitConfig{
		Rules: map[string]middleware.RateLimitRule{
			"TAILOR": {Rate: 0.2, Burst: 3},
		},
		DefaultGroup: "TAILOR",
	}))
	tailorHandler.RegisterRoutes(tailorGroup)

	return r
}

// Addr returns a normalized listen address for the given port.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return fmt.Sprintf(":%s", port)
}
