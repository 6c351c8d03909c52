// Package cache provides pluggable result caching for parse outcomes.
//
// The core never serializes its graph — rulesets recompile on every run —
// but classified parse results are plain values and safe to cache. Keys are
// derived from a fingerprint of the ruleset document plus the input string,
// so editing a ruleset invalidates its entries implicitly.
//
// Three backends are provided: [FileCache] for CLI use, [RedisCache] for
// shared deployments, and [NullCache] to disable caching.
package cache

import (
	"context"
	"time"
)

// DefaultTTL is the default lifetime for cached parse results.
const DefaultTTL = 24 * time.Hour

// Cache stores opaque byte values under string keys with per-entry TTLs.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was present
	// and unexpired; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}
