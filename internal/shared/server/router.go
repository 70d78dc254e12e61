package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-insights/internal/analyses"
	"resume-insights/internal/services/health"
	"resume-insights/internal/shared/config"
	"resume-insights/internal/shared/metrics"
	"resume-insights/internal/shared/server/middleware"
	"resume-insights/internal/shared/server/respond"
)

const analyzeRateGroup = "ANALYZE"

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config, svc *analyses.Service) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: rateGroup,
			Rules: map[string]middleware.RateLimitRule{
				analyzeRateGroup: {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
			},
		}),
	)

	r.GET("/metrics", metrics.Handler())

	healthSvc := health.NewService(svc.Pipeline.Classifier(), cfg.ObjectStoreType)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, healthSvc.Status())
	})
	analyses.NewHandler(svc).RegisterRoutes(api)

	return r
}

// rateGroup limits only the analysis endpoints; health and metrics stay open.
func rateGroup(c *gin.Context) string {
	if c.Request.Method == http.MethodPost && strings.HasPrefix(c.Request.URL.Path, "/api/v1/analyses") {
		return analyzeRateGroup
	}
	return ""
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
