package inmemorycache

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"time"
)

// ConditionsCacheData is the cached weather reading for one coordinate pair.
type ConditionsCacheData struct {
	TempMinK float64  `json:"temp_min_k"`
	TempMaxK float64  `json:"temp_max_k"`
	Labels   []string `json:"labels"`
}

type cacheEntry struct {
	data       []byte
	expiration time.Time
}

type Cache interface {
	Get(key string) (*ConditionsCacheData, bool, error)
	Set(key string, data *ConditionsCacheData, ttl time.Duration) error
}

type InMemoryCache struct {
	cache           map[string]cacheEntry
	mutex           sync.Mutex
	cleanupInterval time.Duration
}

// NewInMemoryCacheProvider starts a cleanup loop that runs until ctx is done.
func NewInMemoryCacheProvider(ctx context.Context, cleanupInterval time.Duration) *InMemoryCache {
	provider := &InMemoryCache{
		cache:           make(map[string]cacheEntry),
		cleanupInterval: cleanupInterval,
	}

	go provider.startCleanup(ctx)

	return provider
}

// CoordinatesKey builds the cache key for a latitude/longitude pair.
func CoordinatesKey(lat, lon float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lon, 'f', -1, 64)
}

func (m *InMemoryCache) Get(key string) (*ConditionsCacheData, bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	entry, exists := m.cache[key]
	if !exists {
		return nil, false, nil
	}

	if time.Now().After(entry.expiration) {
		delete(m.cache, key)
		return nil, false, nil
	}

	var data ConditionsCacheData
	if err := json.Unmarshal(entry.data, &data); err != nil {
		return nil, false, err
	}

	return &data, true, nil
}

func (m *InMemoryCache) Set(key string, data *ConditionsCacheData, ttl time.Duration) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.cache[key] = cacheEntry{
		data:       jsonData,
		expiration: time.Now().Add(ttl),
	}

	return nil
}

func (m *InMemoryCache) startCleanup(ctx context.Context) {
	ticker := time.NewTicker(m.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.removeExpired()
		}
	}
}

func (m *InMemoryCache) removeExpired() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	now := time.Now()
	for k, v := range m.cache {
		if now.After(v.expiration) {
			delete(m.cache, k)
		}
	}
}
