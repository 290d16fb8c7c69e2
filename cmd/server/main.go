package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/dishdecider/backend/config"
	httpDelivery "github.com/dishdecider/backend/internal/delivery/http"
	"github.com/dishdecider/backend/internal/domain"
	"github.com/dishdecider/backend/internal/infrastructure/cache"
	"github.com/dishdecider/backend/internal/infrastructure/logger"
	"github.com/dishdecider/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog, err := logger.New(cfg.Server.Environment, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer appLog.Sync()

	appLog.Info("starting dishdecider backend",
		"version", "1.0.0",
		"environment", cfg.Server.Environment,
		"port", cfg.Server.Port,
		"cache_type", cfg.Cache.Type,
		"cache_ttl", cfg.Cache.TTL.String(),
	)

	// Initialize infrastructure dependencies
	store, closeStore, err := newCache(cfg, appLog)
	if err != nil {
		appLog.Fatal("failed to initialize cache", "error", err)
	}
	defer closeStore()

	// Initialize usecase layer
	menuService := usecase.NewMenuService(store, appLog, usecase.MenuServiceConfig{
		CacheTTL: cfg.Cache.TTL,
	})
	engine := usecase.NewNarrowingEngine(cfg.Quiz.NormalizeInput)
	scoring := usecase.NewScoringService(domain.ScoringOptions{
		Policy: domain.ScoringPolicy(cfg.Scoring.Policy),
		MaxGap: cfg.Scoring.MaxGap,
		Sort:   domain.SortDirection(cfg.Scoring.Sort),
	})

	appLog.Info("scoring configured",
		"policy", scoring.Options().Policy,
		"max_gap", scoring.Options().MaxGap,
		"sort", scoring.Options().Sort,
	)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(menuService, engine, scoring, appLog)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, appLog)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	appLog.Info("server listening", "addr", addr)

	if err := router.Run(addr); err != nil {
		appLog.Fatal("failed to start server", "error", err)
	}
}

// newCache builds the configured cache backend and its cleanup func
func newCache(cfg *config.Config, appLog *logger.Logger) (domain.CacheRepository, func(), error) {
	switch cfg.Cache.Type {
	case "redis":
		rc, err := cache.NewRedisCache(cfg.Cache.RedisURL, "dishdecider:")
		if err != nil {
			return nil, nil, err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := rc.Ping(ctx); err != nil {
			_ = rc.Close()
			return nil, nil, err
		}
		appLog.Info("redis cache connected")
		return rc, func() { _ = rc.Close() }, nil
	default:
		mc := cache.NewMemoryCache()
		return mc, func() { _ = mc.Close() }, nil
	}
}
