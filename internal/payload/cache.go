package payload

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/alexanderramin/degreeplan/internal/domain"
	"golang.org/x/sync/singleflight"
)

// ClassFetcher loads a single class by id.
type ClassFetcher interface {
	Class(ctx context.Context, id int) (*domain.Class, error)
}

// ClassCache memoizes minimized classes by id. Concurrent misses for the
// same id share one fetch, so each id reaches the fetcher at most once.
type ClassCache struct {
	fetcher ClassFetcher
	group   singleflight.Group

	mu      sync.RWMutex
	classes map[int]domain.Class

	fetches atomic.Int64
}

// NewClassCache creates an empty cache in front of fetcher.
func NewClassCache(fetcher ClassFetcher) *ClassCache {
	return &ClassCache{
		fetcher: fetcher,
		classes: make(map[int]domain.Class),
	}
}

// Seed stores already-known classes without fetching them.
func (c *ClassCache) Seed(classes map[int]domain.Class) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for id, cls := range classes {
		c.classes[id] = cls
	}
}

// FetchClassData returns the minimized class for id, fetching it on the
// first request only.
func (c *ClassCache) FetchClassData(ctx context.Context, id int) (domain.Class, error) {
	if cls, ok := c.lookup(id); ok {
		return cls, nil
	}

	v, err, _ := c.group.Do(strconv.Itoa(id), func() (any, error) {
		if cls, ok := c.lookup(id); ok {
			return cls, nil
		}
		c.fetches.Add(1)
		raw, err := c.fetcher.Class(ctx, id)
		if err != nil {
			return nil, err
		}
		cls := MinimizeClass(*raw)
		c.mu.Lock()
		c.classes[id] = cls
		c.mu.Unlock()
		return cls, nil
	})
	if err != nil {
		return domain.Class{}, err
	}
	return v.(domain.Class), nil
}

// Len returns the number of cached classes.
func (c *ClassCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.classes)
}

// Fetches returns how many network fetches the cache has issued.
func (c *ClassCache) Fetches() int {
	return int(c.fetches.Load())
}

func (c *ClassCache) lookup(id int) (domain.Class, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cls, ok := c.classes[id]
	return cls, ok
}
