package leaderboard

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jsalinasr/SnakeDuel/internal/game"
)

var ctx = context.Background()

const cacheTTL = 30 * time.Second

// ListingCache holds recently served rankings. A cache failure is
// never an error: reads fall through to the store, writes are dropped.
type ListingCache interface {
	GetListing(mode game.Mode) ([]Entry, bool)
	SetListing(mode game.Mode, entries []Entry)
	Invalidate(mode game.Mode)
}

type RedisListingCache struct {
	rdb *redis.Client
}

func NewRedisListingCache(rdb *redis.Client) *RedisListingCache {
	return &RedisListingCache{rdb: rdb}
}

func cacheKey(mode game.Mode) string {
	if mode == "" {
		return "leaderboard:all"
	}
	return "leaderboard:" + string(mode)
}

func (c *RedisListingCache) GetListing(mode game.Mode) ([]Entry, bool) {
	val, err := c.rdb.Get(ctx, cacheKey(mode)).Result()
	if err == redis.Nil {
		return nil, false
	} else if err != nil {
		log.Println("Error reading leaderboard cache:", err)
		return nil, false
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(val), &entries); err != nil {
		log.Println("Error decoding cached leaderboard:", err)
		return nil, false
	}
	return entries, true
}

func (c *RedisListingCache) SetListing(mode game.Mode, entries []Entry) {
	data, err := json.Marshal(entries)
	if err != nil {
		log.Println("Error encoding leaderboard for cache:", err)
		return
	}

	if err := c.rdb.Set(ctx, cacheKey(mode), data, cacheTTL).Err(); err != nil {
		log.Println("Error writing leaderboard cache:", err)
	}
}

// Invalidate drops the submitted mode's listing and the all-modes
// listing, both of which the new row may reorder.
func (c *RedisListingCache) Invalidate(mode game.Mode) {
	if err := c.rdb.Del(ctx, cacheKey(mode), cacheKey("")).Err(); err != nil {
		log.Println("Error invalidating leaderboard cache:", err)
	}
}
