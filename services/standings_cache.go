// services/standings_cache.go - Optional Redis cache for contest standings
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const standingsCacheTTL = 30 * time.Second

// StandingsCache caches computed standings per contest. It is nil-safe:
// with no Redis configured every method is a no-op and standings are always
// computed fresh. Any score update must invalidate the contests of the
// updated match before readers see stale totals beyond the TTL.
type StandingsCache struct {
	client *redis.Client
}

// NewStandingsCache connects to Redis when REDIS_ADDR is set, otherwise
// returns a disabled cache.
func NewStandingsCache() *StandingsCache {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return &StandingsCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Printf("Warning: Redis not reachable at %s, standings cache disabled: %v", addr, err)
		return &StandingsCache{}
	}

	log.Printf("Standings cache connected to Redis at %s", addr)
	return &StandingsCache{client: client}
}

func (c *StandingsCache) Enabled() bool {
	return c != nil && c.client != nil
}

func (c *StandingsCache) Get(ctx context.Context, contestID uint) ([]StandingsEntry, bool) {
	if !c.Enabled() {
		return nil, false
	}

	data, err := c.client.Get(ctx, standingsKey(contestID)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Standings cache read failed: %v", err)
		}
		return nil, false
	}

	var entries []StandingsEntry
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return nil, false
	}
	return entries, true
}

func (c *StandingsCache) Set(ctx context.Context, contestID uint, entries []StandingsEntry) {
	if !c.Enabled() {
		return
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, standingsKey(contestID), data, standingsCacheTTL).Err(); err != nil {
		log.Printf("Standings cache write failed: %v", err)
	}
}

// Invalidate drops the cached standings of the given contests. Called after
// every score update with the contests of the updated match.
func (c *StandingsCache) Invalidate(ctx context.Context, contestIDs ...uint) {
	if !c.Enabled() || len(contestIDs) == 0 {
		return
	}

	keys := make([]string, 0, len(contestIDs))
	for _, id := range contestIDs {
		keys = append(keys, standingsKey(id))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		log.Printf("Standings cache invalidation failed: %v", err)
	}
}

func standingsKey(contestID uint) string {
	return fmt.Sprintf("standings:%d", contestID)
}
