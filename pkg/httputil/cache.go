package httputil

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/matzehuels/clueboard/pkg/observability"
)

// ErrExpired is returned by [Cache.Get] when a cached entry exists but has
// exceeded its time-to-live. The stale data stays on disk; fetch fresh data
// and refresh the entry with [Cache.Set].
var ErrExpired = errors.New("cache entry expired")

// Cache provides file-based caching of arbitrary JSON-marshalable data.
//
// Each entry is one JSON file in the cache directory, named by the SHA-256
// hash of its key, which keeps filesystem-hostile keys (URLs, data URIs)
// safe and collision-free. TTL is tracked via file modification time; a TTL
// of 0 means entries never expire.
//
// Cache operations are not goroutine-safe; callers synchronize access.
// Separate Cache instances (even in different processes) can share a
// directory safely.
type Cache struct {
	dir    string
	ttl    time.Duration
	prefix string
}

// NewCache creates a Cache that stores entries in dir with the given TTL.
// If dir is empty, ~/.cache/clueboard/ is used. The directory is created if
// missing; directory creation errors are the only failure mode.
func NewCache(dir string, ttl time.Duration) (*Cache, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".cache", "clueboard")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Cache{dir: dir, ttl: ttl}, nil
}

// Dir returns the absolute path to the cache directory.
func (c *Cache) Dir() string { return c.dir }

// TTL returns the time-to-live for cache entries. 0 means no expiration.
func (c *Cache) TTL() time.Duration { return c.ttl }

// Get retrieves a cached value by key and unmarshals it into v.
//
// Outcomes:
//   - (true, nil): hit; the fresh value was unmarshaled into v
//   - (false, nil): miss; v is unchanged
//   - (false, ErrExpired): entry exists but exceeded its TTL; v is unchanged
//   - (false, other): I/O or unmarshal error
//
// v must be a pointer to a json.Unmarshal-compatible type. Reads never
// modify the cache.
func (c *Cache) Get(ctx context.Context, key string, v any) (bool, error) {
	path := c.keyPath(c.prefix + key)
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		observability.Cache().OnCacheMiss(ctx, c.prefix)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if c.ttl > 0 && time.Since(info.ModTime()) > c.ttl {
		observability.Cache().OnCacheMiss(ctx, c.prefix)
		return false, ErrExpired
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	observability.Cache().OnCacheHit(ctx, c.prefix)
	return true, json.Unmarshal(data, v)
}

// Set stores a value under key, overwriting any existing entry and resetting
// its TTL. The value is marshaled with encoding/json.
func (c *Cache) Set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.keyPath(c.prefix+key), data, 0o644); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, c.prefix, len(data))
	return nil
}

// Namespace returns a scoped view of the cache that prefixes all keys,
// sharing the parent's directory and TTL. Calls can be chained to build
// hierarchical key spaces.
func (c *Cache) Namespace(prefix string) *Cache {
	return &Cache{dir: c.dir, ttl: c.ttl, prefix: c.prefix + prefix}
}

func (c *Cache) keyPath(key string) string {
	h := sha256.Sum256([]byte(key))
	return filepath.Join(c.dir, hex.EncodeToString(h[:]))
}
