// Package history keeps the append-only record of dispatch outcomes.
// The in-memory Log is the core contract; Archive adds a durable
// SQLite-backed copy for the server binary.
package history

import (
	"sync"

	"github.com/DehBarca/ordernotify/internal/domain/entity"
)

// Log is an append-only, unbounded record of notification results in
// append order. No deduplication, no eviction.
type Log struct {
	mu      sync.RWMutex
	entries []*entity.NotificationResult
}

// NewLog creates an empty history log
func NewLog() *Log {
	return &Log{}
}

// Append adds a result to the end of the log
func (l *Log) Append(result *entity.NotificationResult) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, result)
}

// All returns the results in append order. The returned slice is a
// copy; the log itself is never exposed.
func (l *Log) All() []*entity.NotificationResult {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*entity.NotificationResult, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded results
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
