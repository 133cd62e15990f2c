package sampler

import (
	"sync"

	"go.uber.org/zap"

	"github.com/chrissnell/moonify/internal/log"
)

type cacheKey struct {
	day      string
	loc      string
	lat, lon float64
}

// Cache memoizes Sampler results keyed on calendar day and observer, keeping
// at most size days. Returned slices are shared and must not be modified.
type Cache struct {
	mu      sync.Mutex
	sampler *Sampler
	size    int
	entries map[cacheKey][]Sample
	order   []cacheKey
	logger  *zap.SugaredLogger

	hits, misses int
}

// NewCache wraps s. size <= 0 keeps a single day.
func NewCache(s *Sampler, size int, logger *zap.SugaredLogger) *Cache {
	if size <= 0 {
		size = 1
	}
	return &Cache{
		sampler: s,
		size:    size,
		entries: make(map[cacheKey][]Sample, size),
		logger:  log.OrNop(logger),
	}
}

// Sampler returns the wrapped sampler.
func (c *Cache) Sampler() *Sampler { return c.sampler }

// Get returns the samples for day at lat/lon, sampling on a miss. Failures are
// not cached.
func (c *Cache) Get(day Day, lat, lon float64) ([]Sample, error) {
	key := cacheKey{day: day.String(), loc: day.location().String(), lat: lat, lon: lon}

	c.mu.Lock()
	defer c.mu.Unlock()

	if samples, ok := c.entries[key]; ok {
		c.hits++
		return samples, nil
	}

	c.misses++
	c.logger.Debugw("sample cache miss", "day", key.day, "lat", lat, "lon", lon)

	samples, err := c.sampler.Sample(day, lat, lon)
	if err != nil {
		return nil, err
	}

	if len(c.order) >= c.size {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = samples
	c.order = append(c.order, key)

	return samples, nil
}

// Stats reports hit and miss counts.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
