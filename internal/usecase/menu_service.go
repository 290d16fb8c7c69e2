package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dishdecider/backend/internal/domain"
	"github.com/dishdecider/backend/internal/infrastructure/logger"
)

// MenuServiceConfig holds configuration for the menu service
type MenuServiceConfig struct {
	CacheTTL time.Duration
}

// MenuService builds category trees from menus, caching by menu content
type MenuService struct {
	cache    domain.CacheRepository
	log      *logger.Logger
	cacheTTL time.Duration
}

// NewMenuService creates a menu service. cache may be nil to disable caching.
func NewMenuService(cache domain.CacheRepository, log *logger.Logger, config MenuServiceConfig) *MenuService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &MenuService{
		cache:    cache,
		log:      log.With("service", "MenuService"),
		cacheTTL: cacheTTL,
	}
}

// BuildFullMap returns the category tree and map for items.
// Flow: hash menu -> check cache -> build -> cache -> return
func (s *MenuService) BuildFullMap(ctx context.Context, items []domain.MenuItem) (*domain.FullMap, error) {
	payload, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	cacheKey := generateCacheKey(payload)

	if cached, ok := s.getFromCache(ctx, cacheKey); ok {
		return cached, nil
	}

	tree, categoryMap := BuildTree(items)
	fullMap := &domain.FullMap{Categories: tree, CategoryMap: categoryMap}

	s.setInCache(ctx, cacheKey, fullMap)
	return fullMap, nil
}

// generateCacheKey creates a cache key from the canonical menu JSON.
// Format: "menutree:{sha256 hex}"
func generateCacheKey(payload []byte) string {
	sum := sha256.Sum256(payload)
	return "menutree:" + hex.EncodeToString(sum[:])
}

func (s *MenuService) getFromCache(ctx context.Context, key string) (*domain.FullMap, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrCacheMiss) {
			s.log.Warn("cache get failed", "key", key, "error", err)
		}
		return nil, false
	}

	var fullMap domain.FullMap
	if err := json.Unmarshal(raw, &fullMap); err != nil {
		s.log.Warn("discarding undecodable cache entry", "key", key, "error", err)
		_ = s.cache.Delete(ctx, key)
		return nil, false
	}
	if fullMap.Categories == nil || fullMap.CategoryMap == nil {
		return nil, false
	}
	s.log.Debug("menu tree cache hit", "key", key)
	return &fullMap, true
}

// setInCache failures are logged, never returned
func (s *MenuService) setInCache(ctx context.Context, key string, fullMap *domain.FullMap) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(fullMap)
	if err != nil {
		s.log.Warn("cache encode failed", "key", key, "error", err)
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
		s.log.Warn("cache set failed", "key", key, "error", err)
	}
}
