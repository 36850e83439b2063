package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

// unreachable points at a port nothing listens on so every command fails fast.
func unreachable(t *testing.T) *RedisCache {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisCache(rdb, "test:")
}

func TestRedisCacheKeyPrefix(t *testing.T) {
	c := NewRedisCache(nil, "devprofiles:")
	assert.Equal(t, "devprofiles:profile:1", c.key("profile:1"))
}

func TestRedisCacheDelNoKeys(t *testing.T) {
	assert.NoError(t, unreachable(t).Del(context.Background()))
}

func TestRedisCacheSurfacesConnectionErrors(t *testing.T) {
	ctx := context.Background()
	c := unreachable(t)

	var dst map[string]any
	hit, err := c.GetJSON(ctx, "k", &dst)
	assert.Error(t, err)
	assert.False(t, hit)

	assert.Error(t, c.SetJSON(ctx, "k", map[string]int{"a": 1}, time.Minute))
	assert.Error(t, c.Del(ctx, "k"))
}

func TestRedisCacheSetJSONRejectsUnencodable(t *testing.T) {
	err := unreachable(t).SetJSON(context.Background(), "k", make(chan int), time.Minute)
	assert.Error(t, err)
}
