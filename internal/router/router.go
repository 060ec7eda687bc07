package router

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/healthshop/backend/internal/api"
	"github.com/pageza/healthshop/backend/internal/cache"
	"github.com/pageza/healthshop/backend/internal/logger"
	"github.com/pageza/healthshop/backend/internal/metrics"
	"github.com/pageza/healthshop/backend/internal/middleware"
	"github.com/pageza/healthshop/backend/internal/service"
)

// Deps is everything the router needs. Limiter and Exporter are optional.
type Deps struct {
	Engine      *service.Engine
	Tokens      middleware.TokenValidator
	Cache       cache.Cache
	Metrics     *metrics.Metrics
	Limiter     *middleware.RateLimiter
	Exporter    api.ReportExporter
	CORSOrigins []string
	// Ping checks the database for the health endpoint.
	Ping func(ctx context.Context) error
	Log  *logger.Logger
}

// SetupRouter configures the application routes
func SetupRouter(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.ErrorHandler(d.Log))
	router.Use(middleware.CORS(d.CORSOrigins))
	router.Use(d.Metrics.Middleware())

	router.GET("/health", healthHandler(d.Ping))
	router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))

	v1 := router.Group("/api/v1")
	v1.GET("/health", healthHandler(d.Ping))

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(d.Tokens))
	if d.Limiter != nil {
		protected.Use(d.Limiter.RateLimitMiddleware())
	}

	c := d.Cache
	if c == nil {
		c = cache.Noop{}
	}
	api.NewInsightsHandler(api.ServicesFromEngine(d.Engine), c, d.Metrics, d.Exporter, d.Log).RegisterRoutes(protected)
	api.NewRecommendationHandler(d.Engine.Recommendations, c, d.Metrics, d.Log).RegisterRoutes(protected)
	api.NewProfileHandler(d.Engine.Profiles, c, d.Log).RegisterRoutes(protected)

	return router
}

func healthHandler(ping func(ctx context.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ping != nil {
			if err := ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "database unavailable"})
				return
			}
		}
		api.HealthCheck(c)
	}
}
