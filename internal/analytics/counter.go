// Package analytics counts dispatch outcomes per channel kind. The
// map-backed counter serves a single process; the Redis-backed one
// shares counts across restarts and replicas.
package analytics

import (
	"sync"

	"github.com/DehBarca/ordernotify/internal/domain/channel"
	"github.com/DehBarca/ordernotify/internal/domain/entity"
)

// Counter tallies dispatch outcomes per kind in memory
type Counter struct {
	mu     sync.Mutex
	counts map[channel.Kind]int64
}

// NewCounter creates an empty counter
func NewCounter() *Counter {
	return &Counter{
		counts: make(map[channel.Kind]int64),
	}
}

// Update implements the dispatch listener capability
func (c *Counter) Update(result *entity.NotificationResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[result.Kind]++
}

// Count returns the tally for one kind
func (c *Counter) Count(kind channel.Kind) int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[kind]
}

// Counts returns a copy of all tallies
func (c *Counter) Counts() map[channel.Kind]int64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[channel.Kind]int64, len(c.counts))
	for kind, n := range c.counts {
		out[kind] = n
	}
	return out
}
