package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"main/model"

	"github.com/redis/go-redis/v9"
)

const leaderboardKey = "leaderboard"

type LeaderboardCache struct {
	client    *redis.Client
	cacheLock sync.RWMutex
}

type LeaderboardCacheEntry struct {
	Entries   []model.LeaderboardEntry `json:"entries"`
	Version   int64                    `json:"version"`
	UpdatedAt time.Time                `json:"updated_at"`
}

var GlobalLeaderboardCache *LeaderboardCache

// NewLeaderboardCache creates and initializes a new leaderboard cache
func NewLeaderboardCache(redisURL string) (*LeaderboardCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &LeaderboardCache{
		client:    client,
		cacheLock: sync.RWMutex{},
	}, nil
}

// SetLeaderboard caches a leaderboard snapshot
func (lc *LeaderboardCache) SetLeaderboard(entries []model.LeaderboardEntry) error {
	lc.cacheLock.Lock()
	defer lc.cacheLock.Unlock()

	ctx := context.Background()

	entry := LeaderboardCacheEntry{
		Entries:   entries,
		Version:   time.Now().UnixNano(),
		UpdatedAt: time.Now(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal leaderboard: %v", err)
	}

	// Cache for 5 minutes
	if err := lc.client.Set(ctx, leaderboardKey, data, 5*time.Minute).Err(); err != nil {
		return fmt.Errorf("failed to cache leaderboard: %v", err)
	}

	return nil
}

// GetLeaderboard retrieves the cached leaderboard snapshot. The second
// return value reports staleness (older than 30 seconds).
func (lc *LeaderboardCache) GetLeaderboard() ([]model.LeaderboardEntry, bool, error) {
	lc.cacheLock.RLock()
	defer lc.cacheLock.RUnlock()

	ctx := context.Background()

	data, err := lc.client.Get(ctx, leaderboardKey).Bytes()
	if err == redis.Nil {
		return nil, false, nil // Cache miss
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get leaderboard from cache: %v", err)
	}

	var entry LeaderboardCacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal leaderboard: %v", err)
	}

	isStale := time.Since(entry.UpdatedAt) > 30*time.Second
	return entry.Entries, isStale, nil
}

// Invalidate drops the cached snapshot. Called after log submissions and
// penalizer runs so the next read refreshes from the store.
func (lc *LeaderboardCache) Invalidate() error {
	lc.cacheLock.Lock()
	defer lc.cacheLock.Unlock()

	ctx := context.Background()

	if err := lc.client.Del(ctx, leaderboardKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate leaderboard cache: %v", err)
	}
	return nil
}
