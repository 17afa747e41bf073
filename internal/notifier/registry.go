package notifier

import (
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/DehBarca/ordernotify/internal/domain/channel"
)

// Registry maps channel kinds to handlers. Entries are mutated only
// through Register and persist for the lifetime of the dispatch system.
type Registry struct {
	mu       sync.RWMutex
	handlers map[channel.Kind]Handler
	logger   *zap.Logger
}

// NewRegistry creates an empty handler registry
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		handlers: make(map[channel.Kind]Handler),
		logger:   logger,
	}
}

// Register binds a handler to a channel kind, replacing any previous
// binding. Decorated and composite handlers register like primitives.
func (r *Registry) Register(kind channel.Kind, handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.handlers[kind] = handler

	r.logger.Info("Handler registered",
		zap.String("kind", kind.String()),
		zap.String("handler_kind", handler.Kind().String()))
}

// Resolve returns the handler for a kind, or a wrapped
// ErrHandlerNotFound when the kind has no binding
func (r *Registry) Resolve(kind channel.Kind) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	handler, ok := r.handlers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrHandlerNotFound, kind)
	}
	return handler, nil
}

// Kinds returns the registered kinds in sorted order
func (r *Registry) Kinds() []channel.Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	kinds := make([]channel.Kind, 0, len(r.handlers))
	for kind := range r.handlers {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}
