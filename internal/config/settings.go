package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/finconsult/sipcalc/internal/store"
	"github.com/joho/godotenv"
)

// Settings holds process-level configuration read from the environment.
type Settings struct {
	LogLevel    string
	Environment string
	Cache       store.Backend
	CachePath   string
	RedisAddr   string
	CacheTTL    time.Duration
}

// LoadSettings reads settings from environment variables and a .env file (if present).
func LoadSettings() (*Settings, error) {
	// Existing environment variables win over .env entries.
	_ = godotenv.Load()

	s := &Settings{}

	s.LogLevel = strings.ToLower(os.Getenv("SIPCALC_LOG_LEVEL"))
	if s.LogLevel == "" {
		s.LogLevel = "warn"
	}

	s.Environment = strings.ToLower(os.Getenv("SIPCALC_ENV"))
	if s.Environment == "" {
		s.Environment = "development"
	}

	s.Cache = store.Backend(strings.ToLower(os.Getenv("SIPCALC_CACHE")))
	switch s.Cache {
	case "":
		s.Cache = store.BackendNone
	case store.BackendNone, store.BackendMemory, store.BackendSQLite, store.BackendRedis:
	default:
		return nil, fmt.Errorf("invalid SIPCALC_CACHE %q: %w", s.Cache, store.ErrUnknownBackend)
	}

	s.CachePath = os.Getenv("SIPCALC_CACHE_PATH")
	if s.CachePath == "" {
		s.CachePath = defaultCachePath()
	}

	s.RedisAddr = os.Getenv("SIPCALC_REDIS_ADDR")
	if s.RedisAddr == "" {
		s.RedisAddr = "localhost:6379"
	}

	if ttl := os.Getenv("SIPCALC_CACHE_TTL"); ttl != "" {
		d, err := time.ParseDuration(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid SIPCALC_CACHE_TTL: %w", err)
		}
		s.CacheTTL = d
	}

	return s, nil
}

// StoreOptions converts the settings to cache options.
func (s *Settings) StoreOptions() store.Options {
	return store.Options{Path: s.CachePath, RedisAddr: s.RedisAddr, TTL: s.CacheTTL}
}

func defaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "sipcalc-cache.db"
	}
	return filepath.Join(dir, "sipcalc", "projections.db")
}
