package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"kurumaya-backend/internal/models"

	"github.com/redis/go-redis/v9"
)

// RedisManager implements Manager on top of a go-redis client. A cache miss
// is returned as (nil, nil); only transport or decode failures are errors.
type RedisManager struct {
	client *redis.Client
	config Config
	ctx    context.Context

	hits   atomic.Int64
	misses atomic.Int64
}

func NewRedisManager(client *redis.Client, cfg Config) *RedisManager {
	return &RedisManager{
		client: client,
		config: cfg,
		ctx:    context.Background(),
	}
}

func (m *RedisManager) GetVehicle(vehicleID string) (*models.Vehicle, error) {
	key := m.buildKey("vehicle", vehicleID)

	data, err := m.client.Get(m.ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			m.misses.Add(1)
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle from cache: %w", err)
	}

	var vehicle models.Vehicle
	if err := json.Unmarshal([]byte(data), &vehicle); err != nil {
		return nil, fmt.Errorf("decode cached vehicle: %w", err)
	}

	m.hits.Add(1)
	return &vehicle, nil
}

func (m *RedisManager) SetVehicle(vehicleID string, vehicle models.Vehicle, ttl time.Duration) error {
	key := m.buildKey("vehicle", vehicleID)

	data, err := json.Marshal(vehicle)
	if err != nil {
		return fmt.Errorf("encode vehicle for cache: %w", err)
	}
	if err := m.client.Set(m.ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("set vehicle in cache: %w", err)
	}
	return nil
}

func (m *RedisManager) InvalidateVehicle(vehicleID string) error {
	return m.Delete(m.buildKey("vehicle", vehicleID))
}

func (m *RedisManager) GetVehicleList(key string) ([]models.Vehicle, error) {
	cacheKey := m.buildKey("vehicle_list", key)

	data, err := m.client.Get(m.ctx, cacheKey).Result()
	if err != nil {
		if err == redis.Nil {
			m.misses.Add(1)
			return nil, nil
		}
		return nil, fmt.Errorf("get vehicle list from cache: %w", err)
	}

	var vehicles []models.Vehicle
	if err := json.Unmarshal([]byte(data), &vehicles); err != nil {
		return nil, fmt.Errorf("decode cached vehicle list: %w", err)
	}

	m.hits.Add(1)
	return vehicles, nil
}

func (m *RedisManager) SetVehicleList(key string, vehicles []models.Vehicle, ttl time.Duration) error {
	cacheKey := m.buildKey("vehicle_list", key)

	data, err := json.Marshal(vehicles)
	if err != nil {
		return fmt.Errorf("encode vehicle list for cache: %w", err)
	}
	if err := m.client.Set(m.ctx, cacheKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("set vehicle list in cache: %w", err)
	}
	return nil
}

// Delete removes a key. Plain names are treated as vehicle-list keys so the
// service layer can invalidate lists without knowing the prefix scheme.
func (m *RedisManager) Delete(key string) error {
	if err := m.client.Del(m.ctx, key, m.buildKey("vehicle_list", key)).Err(); err != nil {
		return fmt.Errorf("delete cache key %s: %w", key, err)
	}
	return nil
}

func (m *RedisManager) Stats() Stats {
	hits := m.hits.Load()
	misses := m.misses.Load()

	stats := Stats{TotalHits: hits, TotalMisses: misses}
	if total := hits + misses; total > 0 {
		stats.HitRate = float64(hits) / float64(total)
	}
	return stats
}

func (m *RedisManager) HealthCheck() error {
	ctx, cancel := context.WithTimeout(m.ctx, 3*time.Second)
	defer cancel()
	return m.client.Ping(ctx).Err()
}

func (m *RedisManager) Close() error {
	return m.client.Close()
}

func (m *RedisManager) buildKey(kind, key string) string {
	return fmt.Sprintf("%s%s:%s", m.config.KeyPrefix, kind, key)
}
