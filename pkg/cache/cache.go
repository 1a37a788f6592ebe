// Package cache stores enumeration results and rendered artifacts so that
// repeated requests skip recomputation.
//
// Permutation workloads are deterministic: the same elements, order and
// limit always produce the same arrangements, and the same graph options
// always produce the same DOT and SVG bytes. That makes every pipeline
// stage a pure function of its inputs, and caching a matter of deriving a
// stable key from those inputs.
//
// Three backends implement [Cache]:
//   - [FileCache]: per-user on-disk cache for the CLI
//   - [RedisCache]: shared cache for server deployments
//   - [NullCache]: disables caching without branching at call sites
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Lifetimes for cached pipeline products. The products are deterministic
// and never go stale; the TTLs only bound disk and Redis growth. Rendered
// artifacts cost the most to recompute, so they stay around longest.
const (
	TTLEnumeration = 24 * time.Hour
	TTLArtifact    = 7 * 24 * time.Hour
)

// Cache is the storage contract shared by all backends. Implementations
// must be safe for concurrent use.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the
	// key was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A ttl of zero or less means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Key derives a stable cache key from a stage name and the inputs that
// determine its output. The parts are serialized and hashed, so any
// JSON-marshalable value can participate.
//
// The key format is: prefix:hash(parts...)
func Key(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Full SHA-256 (64 hex chars) to keep collisions out of the picture.
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// Scoped wraps a cache so every key is transparently prefixed. Server
// deployments sharing one Redis instance use it to keep namespaces apart.
func Scoped(inner Cache, prefix string) Cache {
	return &scopedCache{inner: inner, prefix: prefix}
}

type scopedCache struct {
	inner  Cache
	prefix string
}

func (c *scopedCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return c.inner.Get(ctx, c.prefix+key)
}

func (c *scopedCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.inner.Set(ctx, c.prefix+key, data, ttl)
}

func (c *scopedCache) Delete(ctx context.Context, key string) error {
	return c.inner.Delete(ctx, c.prefix+key)
}

func (c *scopedCache) Close() error {
	return c.inner.Close()
}
