package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"taxpal/internal/models"
)

// ProfileCache is a two-tier cache for user profiles: a small LRU in
// process, redis behind it with a TTL. Profiles are immutable for the
// life of an account, so there is no invalidation path.
type ProfileCache struct {
	local *LRUCache
	redis *redis.Client
	ttl   time.Duration
}

func NewProfileCache(localCapacity int, redisClient *redis.Client, ttl time.Duration) *ProfileCache {
	return &ProfileCache{
		local: NewLRUCache(localCapacity),
		redis: redisClient,
		ttl:   ttl,
	}
}

func profileKey(userID string) string {
	return "profile:" + userID
}

func (c *ProfileCache) Get(ctx context.Context, userID string) (*models.User, bool) {
	key := profileKey(userID)

	raw, found := c.local.Get(key)
	if !found {
		val, err := c.redis.Get(ctx, key).Result()
		if err != nil {
			return nil, false
		}
		raw = val
		c.local.Set(key, val)
	}

	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, false
	}
	return &user, true
}

func (c *ProfileCache) Set(ctx context.Context, user *models.User) {
	data, err := json.Marshal(user)
	if err != nil {
		return
	}

	key := profileKey(user.ID)
	c.local.Set(key, string(data))
	// Cache writes are best effort; a redis hiccup must not fail the request.
	_ = c.redis.Set(ctx, key, data, c.ttl).Err()
}
