package search

import (
	"sync"

	"github.com/nao1215/seedscan/internal/model"
)

// Collector accumulates matches per shard and returns them in shard order.
// Add is mutually exclusive, so concurrent workers may share one Collector.
// Matches are never mutated or removed once added.
type Collector struct {
	mu      sync.Mutex
	buckets [][]model.Match
	count   int
	notify  func(model.Match)
}

// NewCollector creates a Collector for the given number of shards.
// notify, when non-nil, is called synchronously for every added match,
// one call at a time.
func NewCollector(shards int, notify func(model.Match)) *Collector {
	return &Collector{
		buckets: make([][]model.Match, shards),
		notify:  notify,
	}
}

// Add appends a match to the bucket of its shard.
func (c *Collector) Add(shard int, m model.Match) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.buckets[shard] = append(c.buckets[shard], m)
	c.count++
	if c.notify != nil {
		c.notify(m)
	}
}

// Len returns the number of collected matches.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

// Matches returns every collected match, shard by shard in shard order and
// in discovery order within each shard.
func (c *Collector) Matches() []model.Match {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.Match, 0, c.count)
	for _, bucket := range c.buckets {
		out = append(out, bucket...)
	}
	return out
}
