package cache

import (
	"context"
	"time"
)

// Cache stores JSON-encoded values by key. A miss is (false, nil).
//
// The profile store in process memory is the source of truth. A Cache only
// mirrors it: callers namespace keys per store instance so a shared backend
// never answers for records this process does not hold, and they write
// through after every mutation. Errors are reported, never fatal to a request.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}
