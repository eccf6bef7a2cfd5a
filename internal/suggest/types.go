package suggest

import (
	"context"
	"time"
)

// FetchFunc queries storage for suggestion candidates matching a prefix.
type FetchFunc func(ctx context.Context, ownerID, query string, limit int) ([]string, error)

// Result carries the outcome of one suggestion request. Stale means a
// newer query arrived before this one left its debounce window; its
// suggestions are always empty.
type Result struct {
	Query       string
	Suggestions []string
	Stale       bool
}

// Config tunes the suggester. Zero fields fall back to defaults.
type Config struct {
	Debounce  time.Duration
	Limit     int
	CacheSize int
	CacheTTL  time.Duration
}

const (
	defaultDebounce  = 300 * time.Millisecond
	defaultLimit     = 5
	defaultCacheSize = 256
	defaultCacheTTL  = 5 * time.Minute
)

func (c *Config) applyDefaults() {
	if c.Debounce <= 0 {
		c.Debounce = defaultDebounce
	}
	if c.Limit <= 0 {
		c.Limit = defaultLimit
	}
	if c.CacheSize <= 0 {
		c.CacheSize = defaultCacheSize
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = defaultCacheTTL
	}
}
