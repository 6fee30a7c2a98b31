package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"queryhub.app/api/common/arangodb"
	"queryhub.app/api/common/id"
	"queryhub.app/api/common/logger"
	"queryhub.app/api/common/otel"
	"queryhub.app/api/core/config"
	"queryhub.app/api/internal/cache"
	"queryhub.app/api/internal/http/middleware"
	httprouter "queryhub.app/api/internal/http/router"
	"queryhub.app/api/internal/search"
	"queryhub.app/api/internal/service"
	"queryhub.app/api/internal/store"
)

func main() {
	fmt.Printf("%s\n", banner)
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	// OTel must init before logger (logger uses OTel provider in production)
	telemetry, err := otel.Setup(ctx, cfg.OTel)
	if err != nil {
		// Can't use slog yet — OTel failed before logger setup
		os.Stderr.WriteString("failed to initialize otel: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger.Setup(cfg)

	if telemetry != nil {
		slog.InfoContext(ctx, "otel initialized", "endpoint", cfg.OTel.Endpoint)
	} else {
		slog.InfoContext(ctx, "otel disabled (no endpoint configured)")
	}

	slog.InfoContext(ctx, "queryhub starting", "env", cfg.Env, "service", cfg.OTel.ServiceName)
	if err := id.Init(1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize snowflake id generator", "error", err)
		os.Exit(1)
	}

	arango, err := arangodb.New(ctx, arangodb.Config{
		URL:      cfg.ArangoDB.URL,
		Username: cfg.ArangoDB.Username,
		Password: cfg.ArangoDB.Password,
		Database: cfg.ArangoDB.Database,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to arangodb", "error", err)
		os.Exit(1)
	}
	if err := arango.EnsureDatabase(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to ensure database", "error", err)
		os.Exit(1)
	}
	if err := arango.EnsureCollections(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to ensure collections", "error", err)
		os.Exit(1)
	}
	slog.InfoContext(ctx, "arangodb connected", "database", cfg.ArangoDB.Database)

	trendingCache := cache.NewNoop()
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		trendingCache = cache.NewRedis(redisClient, cfg.Redis.TrendingTTL)
		slog.InfoContext(ctx, "redis connected")
	} else {
		slog.InfoContext(ctx, "redis disabled, trending tags recomputed per request")
	}

	questionIndex := search.NewNoop()
	if cfg.Typesense.Enabled() {
		questionIndex, err = search.NewTypesense(ctx, cfg.Typesense)
		if err != nil {
			slog.ErrorContext(ctx, "failed to connect to typesense", "error", err)
			os.Exit(1)
		}
		slog.InfoContext(ctx, "typesense connected")
	} else {
		slog.InfoContext(ctx, "typesense disabled, falling back to database search")
	}

	stores := store.NewStores(arango.Database())
	services := service.NewServices(stores, cfg.JWT, questionIndex, trendingCache)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(cfg, services)
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.InfoContext(ctx, "http server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "http server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.ErrorContext(shutdownCtx, "http server shutdown error", "error", err)
	}

	if err := arango.Close(); err != nil {
		slog.ErrorContext(shutdownCtx, "arangodb shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "otel shutdown error", "error", err)
		}
	}

	slog.InfoContext(shutdownCtx, "shutdown complete")
}

func setupRouter(cfg config.Config, services *service.Services) *gin.Engine {
	router := gin.New()

	// Order matters: OTel creates span → Recovery catches panics → Logger logs with trace context
	if cfg.OTel.Enabled() {
		router.Use(otelgin.Middleware(cfg.OTel.ServiceName))
	}
	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())

	httprouter.SetupRoutes(router, services)

	return router
}

const banner = `
 ██████╗ ██╗   ██╗███████╗██████╗ ██╗   ██╗██╗  ██╗██╗   ██╗██████╗ 
██╔═══██╗██║   ██║██╔════╝██╔══██╗╚██╗ ██╔╝██║  ██║██║   ██║██╔══██╗
██║   ██║██║   ██║█████╗  ██████╔╝ ╚████╔╝ ███████║██║   ██║██████╔╝
██║▄▄ ██║██║   ██║██╔══╝  ██╔══██╗  ╚██╔╝  ██╔══██║██║   ██║██╔══██╗
╚██████╔╝╚██████╔╝███████╗██║  ██║   ██║   ██║  ██║╚██████╔╝██████╔╝
 ╚══▀▀═╝  ╚═════╝ ╚══════╝╚═╝  ╚═╝   ╚═╝   ╚═╝  ╚═╝ ╚═════╝ ╚═════╝ 
`
