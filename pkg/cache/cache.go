// Package cache stores rendered chart documents between requests.
//
// Three backends implement [Cache]: [NullCache] disables caching,
// [FileCache] keeps entries on local disk for the CLI, and [RedisCache]
// shares entries between server replicas. Keys are produced by a [Keyer]
// so that every backend sees the same namespace layout.
package cache

import (
	"context"
	"time"
)

// TTLDocument is how long a rendered document stays cached. Renders are
// pure, so the limit only bounds storage.
const TTLDocument = 7 * 24 * time.Hour

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value for key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl of zero never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}
