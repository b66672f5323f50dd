package cli

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/goosestudio/acficons/pkg/observability"
)

// cacheStats counts sprite cache activity for the summary line printed
// after resolve and extract.
type cacheStats struct {
	observability.NoopResolverHooks

	hits   atomic.Int64
	misses atomic.Int64
	writes atomic.Int64
	failed atomic.Int64
}

type statsSnapshot struct {
	Hits, Misses, Writes, Failed int64
}

// register resets the counters and installs s as the global hooks.
func (s *cacheStats) register() {
	s.hits.Store(0)
	s.misses.Store(0)
	s.writes.Store(0)
	s.failed.Store(0)
	observability.SetCacheHooks(s)
	observability.SetResolverHooks(s)
}

func (s *cacheStats) snapshot() statsSnapshot {
	return statsSnapshot{
		Hits:   s.hits.Load(),
		Misses: s.misses.Load(),
		Writes: s.writes.Load(),
		Failed: s.failed.Load(),
	}
}

func (s *cacheStats) OnCacheHit(context.Context, string, string)      { s.hits.Add(1) }
func (s *cacheStats) OnCacheMiss(context.Context, string, string)     { s.misses.Add(1) }
func (s *cacheStats) OnCacheSet(context.Context, string, string, int) { s.writes.Add(1) }

func (s *cacheStats) OnResolveComplete(_ context.Context, _, _ string, _ time.Duration, err error) {
	if err != nil {
		s.failed.Add(1)
	}
}
