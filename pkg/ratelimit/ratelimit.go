package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

// Limiter decides whether a request from a client against an endpoint may
// proceed. When blocked, the returned duration says how long until a token
// frees up.
type Limiter interface {
	Allow(clientID, endpoint string) (bool, time.Duration)
}

type Config struct {
	Enabled           bool
	RequestsPerMinute int
	BurstSize         int
	CleanupInterval   time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:           true,
		RequestsPerMinute: 120,
		BurstSize:         30,
		CleanupInterval:   10 * time.Minute,
	}
}

type tokenBucket struct {
	tokens     float64
	lastRefill time.Time
}

// MemoryLimiter is a token-bucket limiter keyed by client and endpoint.
type MemoryLimiter struct {
	config  *Config
	mu      sync.Mutex
	buckets map[string]*tokenBucket
}

func NewMemoryLimiter(config *Config) *MemoryLimiter {
	if config == nil {
		config = DefaultConfig()
	}

	l := &MemoryLimiter{
		config:  config,
		buckets: make(map[string]*tokenBucket),
	}
	go l.cleanupLoop()
	return l
}

func (l *MemoryLimiter) Allow(clientID, endpoint string) (bool, time.Duration) {
	if !l.config.Enabled {
		return true, 0
	}

	key := fmt.Sprintf("%s:%s", clientID, endpoint)
	refillPerSecond := float64(l.config.RequestsPerMinute) / 60

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	bucket, ok := l.buckets[key]
	if !ok {
		bucket = &tokenBucket{
			tokens:     float64(l.config.BurstSize),
			lastRefill: now,
		}
		l.buckets[key] = bucket
	}

	elapsed := now.Sub(bucket.lastRefill).Seconds()
	bucket.tokens += elapsed * refillPerSecond
	if bucket.tokens > float64(l.config.BurstSize) {
		bucket.tokens = float64(l.config.BurstSize)
	}
	bucket.lastRefill = now

	if bucket.tokens >= 1 {
		bucket.tokens--
		return true, 0
	}

	wait := time.Duration((1 - bucket.tokens) / refillPerSecond * float64(time.Second))
	return false, wait
}

// cleanupLoop drops buckets that have been idle long enough to be full again.
func (l *MemoryLimiter) cleanupLoop() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		l.mu.Lock()
		now := time.Now()
		for key, bucket := range l.buckets {
			if now.Sub(bucket.lastRefill) > time.Hour {
				delete(l.buckets, key)
			}
		}
		l.mu.Unlock()
	}
}
