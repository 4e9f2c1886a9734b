package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"spidergraph/internal/domain"
)

// AnalysisCache guarda el ultimo ProfileAnalysis por userkey para que el
// preview pueda reusarlo. Colaborador opcional: el pipeline funciona igual
// sin cache.
type AnalysisCache interface {
	Get(userkey string) (domain.ProfileAnalysis, bool, error)
	Set(userkey string, analysis domain.ProfileAnalysis) error
}

const analysisCacheTTL = time.Hour

type memoryAnalysisCache struct {
	mu    sync.Mutex
	items map[string]memoryCacheItem
}

type memoryCacheItem struct {
	analysis  domain.ProfileAnalysis
	expiresAt time.Time
}

func NewMemoryAnalysisCache() AnalysisCache {
	return &memoryAnalysisCache{
		items: make(map[string]memoryCacheItem),
	}
}

func (c *memoryAnalysisCache) Get(userkey string) (domain.ProfileAnalysis, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[userkey]
	if !ok {
		return domain.ProfileAnalysis{}, false, nil
	}
	if time.Now().UTC().After(item.expiresAt) {
		delete(c.items, userkey)
		return domain.ProfileAnalysis{}, false, nil
	}
	return item.analysis, true, nil
}

func (c *memoryAnalysisCache) Set(userkey string, analysis domain.ProfileAnalysis) error {
	if strings.TrimSpace(userkey) == "" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[userkey] = memoryCacheItem{
		analysis:  analysis,
		expiresAt: time.Now().UTC().Add(analysisCacheTTL),
	}
	return nil
}

type redisAnalysisCache struct {
	client *redis.Client
	prefix string
}

func NewRedisAnalysisCache(client *redis.Client) AnalysisCache {
	if client == nil {
		return nil
	}
	return &redisAnalysisCache{
		client: client,
		prefix: "analysis:cache:",
	}
}

func (c *redisAnalysisCache) Get(userkey string) (domain.ProfileAnalysis, bool, error) {
	if strings.TrimSpace(userkey) == "" {
		return domain.ProfileAnalysis{}, false, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	raw, err := c.client.Get(ctx, c.prefix+userkey).Bytes()
	if err == redis.Nil {
		return domain.ProfileAnalysis{}, false, nil
	}
	if err != nil {
		return domain.ProfileAnalysis{}, false, err
	}

	var analysis domain.ProfileAnalysis
	if err := json.Unmarshal(raw, &analysis); err != nil {
		return domain.ProfileAnalysis{}, false, err
	}
	return analysis, true, nil
}

func (c *redisAnalysisCache) Set(userkey string, analysis domain.ProfileAnalysis) error {
	if strings.TrimSpace(userkey) == "" {
		return nil
	}
	raw, err := json.Marshal(analysis)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	return c.client.Set(ctx, c.prefix+userkey, raw, analysisCacheTTL).Err()
}
