// Package store provides caches for memoised projection reports.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// ErrUnknownBackend is returned by Open for an unsupported backend name.
var ErrUnknownBackend = errors.New("unknown cache backend")

// Cache stores serialized values by key.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Close() error
}

// Backend names a cache implementation.
type Backend string

const (
	BackendNone   Backend = "none"
	BackendMemory Backend = "memory"
	BackendSQLite Backend = "sqlite"
	BackendRedis  Backend = "redis"
)

// Options configures Open.
type Options struct {
	Path      string        // sqlite database file
	RedisAddr string        // host:port
	TTL       time.Duration // redis expiry; zero keeps entries
}

// Open returns the cache for a backend. BackendNone yields a nil Cache and no error.
func Open(backend Backend, opts Options) (Cache, error) {
	switch Backend(strings.ToLower(string(backend))) {
	case BackendNone, "":
		return nil, nil
	case BackendMemory:
		return NewMemoryCache(), nil
	case BackendSQLite:
		c, err := OpenSQLite(opts.Path)
		if err != nil {
			return nil, err
		}
		return c, nil
	case BackendRedis:
		return NewRedisCache(opts.RedisAddr, opts.TTL), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}

// Key derives a stable cache key from the JSON encoding of v.
func Key(namespace string, v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encoding cache key: %w", err)
	}
	return fmt.Sprintf("%s:%016x", namespace, xxhash.Sum64(b)), nil
}
