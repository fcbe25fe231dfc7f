// Package prometheus instruments rush services with Prometheus metrics.
package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vecna/rush"
)

// Ensure Cache implements rush.ContentCache.
var _ rush.ContentCache = (*Cache)(nil)

// Cache wraps a ContentCache and counts hits, misses and writes.
type Cache struct {
	next rush.ContentCache

	hits   prometheus.Counter
	misses prometheus.Counter
	sets   prometheus.Counter
}

// NewCache wraps next and registers its counters on reg.
// Returns an error if the counters are already registered on reg.
func NewCache(next rush.ContentCache, reg prometheus.Registerer) (*Cache, error) {
	c := &Cache{
		next: next,
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rush_cache_hits_total",
			Help: "Total number of extraction cache hits",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rush_cache_misses_total",
			Help: "Total number of extraction cache misses",
		}),
		sets: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rush_cache_sets_total",
			Help: "Total number of extraction results stored",
		}),
	}

	for _, collector := range []prometheus.Collector{c.hits, c.misses, c.sets} {
		if err := reg.Register(collector); err != nil {
			return nil, rush.Wrapf(err, rush.EINTERNAL, "register cache metrics")
		}
	}
	return c, nil
}

// Get delegates to the wrapped cache and records a hit or a miss.
func (c *Cache) Get(content string) ([]rush.Post, bool) {
	posts, ok := c.next.Get(content)
	if ok {
		c.hits.Inc()
	} else {
		c.misses.Inc()
	}
	return posts, ok
}

// Set delegates to the wrapped cache.
func (c *Cache) Set(content string, posts []rush.Post) {
	c.sets.Inc()
	c.next.Set(content, posts)
}
