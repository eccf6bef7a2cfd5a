package suggest

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	pkgLog "taskboard/pkg/log"
)

// Suggester debounces keystroke-level queries and drops results that were
// superseded by a newer query from the same owner. Resolved queries are
// cached with a TTL so backspacing through a prefix stays cheap.
type Suggester struct {
	l     pkgLog.Logger
	fetch FetchFunc
	cfg   Config
	cache *expirable.LRU[string, []string]

	mu  sync.Mutex
	seq map[string]uint64 // latest query sequence per owner
}

// NewSuggester creates a debounced suggestion engine.
func NewSuggester(l pkgLog.Logger, fetch FetchFunc, cfg Config) *Suggester {
	cfg.applyDefaults()
	return &Suggester{
		l:     l,
		fetch: fetch,
		cfg:   cfg,
		cache: expirable.NewLRU[string, []string](cfg.CacheSize, nil, cfg.CacheTTL),
		seq:   make(map[string]uint64),
	}
}

// Suggest resolves one query. The call sleeps through the debounce window
// first; if a newer query for the same owner arrives meanwhile, this one
// returns stale without touching storage. The same check runs again after
// the fetch so slow results never clobber a newer query's view.
func (s *Suggester) Suggest(ctx context.Context, ownerID, query string) (Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Result{Query: query, Suggestions: []string{}}, nil
	}

	my := s.claim(ownerID)

	select {
	case <-time.After(s.cfg.Debounce):
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}

	if !s.latest(ownerID, my) {
		return Result{Query: query, Stale: true}, nil
	}

	key := ownerID + "\x00" + strings.ToLower(query)
	if cached, ok := s.cache.Get(key); ok {
		return Result{Query: query, Suggestions: cached}, nil
	}

	titles, err := s.fetch(ctx, ownerID, query, s.cfg.Limit)
	if err != nil {
		s.l.Errorf(ctx, "suggest: fetch for %q failed: %v", query, err)
		return Result{}, err
	}
	if titles == nil {
		titles = []string{}
	}

	if !s.latest(ownerID, my) {
		return Result{Query: query, Stale: true}, nil
	}

	s.cache.Add(key, titles)
	return Result{Query: query, Suggestions: titles}, nil
}

func (s *Suggester) claim(ownerID string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[ownerID]++
	return s.seq[ownerID]
}

func (s *Suggester) latest(ownerID string, my uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seq[ownerID] == my
}
