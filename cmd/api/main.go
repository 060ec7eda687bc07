package main

import (
	"context"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/pageza/healthshop/backend/config"
	"github.com/pageza/healthshop/backend/internal/auth"
	"github.com/pageza/healthshop/backend/internal/cache"
	"github.com/pageza/healthshop/backend/internal/database"
	"github.com/pageza/healthshop/backend/internal/export"
	"github.com/pageza/healthshop/backend/internal/knowledge"
	"github.com/pageza/healthshop/backend/internal/logger"
	"github.com/pageza/healthshop/backend/internal/metrics"
	"github.com/pageza/healthshop/backend/internal/middleware"
	"github.com/pageza/healthshop/backend/internal/router"
	"github.com/pageza/healthshop/backend/internal/server"
	"github.com/pageza/healthshop/backend/internal/service"
	"github.com/pageza/healthshop/backend/internal/store"
)

const tokenIssuer = "healthshop"

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLog.Sync()

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Open(cfg, appLog)
	if err != nil {
		appLog.Fatal("database connection failed", "error", err)
	}
	defer database.Close(db)

	m := metrics.New()
	deps := router.Deps{
		Tokens:      auth.NewTokenService(cfg.JWTSecret, tokenIssuer),
		Cache:       cache.Noop{},
		Metrics:     m,
		CORSOrigins: cfg.CORSOrigins,
		Ping:        database.HealthCheck(db),
		Log:         appLog,
	}

	if cfg.RedisConfigured() {
		client, err := database.NewRedisClient(cfg, appLog)
		if err != nil {
			appLog.Warn("redis unavailable, running without cache and rate limiting", "error", err)
		} else {
			defer client.Close()
			deps.Cache = cache.NewRedisCache(client, cfg.CacheTTL, appLog)
			limiter := middleware.NewEngineRateLimiter(client, cfg.RateLimitPerMinute, appLog)
			limiter.OnLimited(m.RateLimitedTotal.Inc)
			deps.Limiter = limiter
		}
	} else {
		appLog.Warn("redis not configured, running without cache and rate limiting")
	}

	if cfg.ReportBucket != "" {
		s3cfg, err := config.NewS3Config(context.Background(), cfg)
		if err != nil {
			appLog.Fatal("report storage setup failed", "error", err)
		}
		deps.Exporter = export.NewReportExporter(s3cfg.Client, s3cfg.BucketName, cfg.ReportExpiry, appLog)
	}

	// The knowledge base is immutable and shared by every service.
	deps.Engine = service.NewEngine(
		store.NewCatalogStore(db, appLog),
		store.NewOrderStore(db, appLog),
		store.NewProfileStore(db, appLog),
		knowledge.New(),
		appLog,
	)

	srv := server.New(net.JoinHostPort(cfg.ServerHost, cfg.ServerPort), router.SetupRouter(deps), appLog)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		appLog.Fatal("server error", "error", err)
	}
	appLog.Info("server stopped")
}
