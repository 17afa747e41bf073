// Package dispatch runs the order dispatch loop: validate once, then
// resolve and invoke a handler per requested channel, recording every
// outcome and fanning it out to listeners. Failures are scoped to a
// single order or a single channel; nothing here is fatal.
package dispatch

import (
	"context"
	"errors"
	"sync"

	"github.com/DehBarca/ordernotify/internal/domain/channel"
	"github.com/DehBarca/ordernotify/internal/domain/entity"
	"github.com/DehBarca/ordernotify/internal/domain/lifecycle"
	"github.com/DehBarca/ordernotify/internal/history"
	"github.com/DehBarca/ordernotify/internal/notifier"
	"github.com/DehBarca/ordernotify/internal/validation"
)

// Logger interface for minimal logging dependency
type Logger interface {
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Config holds the engine's tunables. Created once at process start,
// read-only afterwards.
type Config struct {
	// MaxAttempts is the retry bound applied when the engine registers
	// the built-in handlers wrapped with retry
	MaxAttempts int

	// LogSends wraps built-in handlers with send logging
	LogSends bool
}

// DefaultConfig returns the engine defaults
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		LogSends:    true,
	}
}

// Engine coordinates the validator chain, the handler registry, the
// history log and the listeners
type Engine struct {
	chain    *validation.Chain
	registry *notifier.Registry
	log      *history.Log
	config   Config
	logger   Logger

	mu        sync.Mutex
	listeners []Listener
}

// Option configures the engine
type Option func(*Engine)

// WithLogger sets a logger for the engine
func WithLogger(logger Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithConfig sets the engine configuration
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.config = cfg
	}
}

// NewEngine creates a dispatch engine over the given chain, registry
// and history log
func NewEngine(chain *validation.Chain, registry *notifier.Registry, log *history.Log, opts ...Option) *Engine {
	e := &Engine{
		chain:    chain,
		registry: registry,
		log:      log,
		config:   DefaultConfig(),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Config returns the engine configuration
func (e *Engine) Config() Config {
	return e.config
}

// Registry returns the handler registry
func (e *Engine) Registry() *notifier.Registry {
	return e.registry
}

// History returns the history log
func (e *Engine) History() *history.Log {
	return e.log
}

// AddListener registers a listener. Listeners are notified after each
// channel outcome, in registration order.
func (e *Engine) AddListener(l Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, l)
}

// RemoveListener unregisters a previously added listener
func (e *Engine) RemoveListener(l Listener) {
	e.mu.Lock()
	defer e.mu.Unlock()

	filtered := make([]Listener, 0, len(e.listeners))
	for _, registered := range e.listeners {
		if registered != l {
			filtered = append(filtered, registered)
		}
	}
	e.listeners = filtered
}

// Dispatch validates the order and, if it passes, sends one
// notification per requested channel kind in request order. A channel
// with no registered handler is skipped; a channel whose send fails is
// recorded as failed. Neither stops the remaining channels.
func (e *Engine) Dispatch(ctx context.Context, order *entity.Order, kinds []channel.Kind) ([]*entity.NotificationResult, error) {
	machine := lifecycle.NewOrderLifecycle()

	if ok, reason := e.chain.Validate(order); !ok {
		if err := machine.Fire(ctx, lifecycle.TriggerReject); err != nil {
			return nil, err
		}
		if e.logger != nil {
			e.logger.Info("Order rejected",
				"order_id", order.ID,
				"reason", reason,
			)
		}
		return nil, &ValidationError{OrderID: order.ID, Reason: reason}
	}

	if err := machine.Fire(ctx, lifecycle.TriggerValidate); err != nil {
		return nil, err
	}

	if e.logger != nil {
		e.logger.Info("Dispatching order",
			"order_id", order.ID,
			"customer", order.Customer.Name,
			"channel_count", len(kinds),
		)
	}

	results := make([]*entity.NotificationResult, 0, len(kinds))

	for _, kind := range kinds {
		handler, err := e.registry.Resolve(kind)
		if err != nil {
			if errors.Is(err, notifier.ErrHandlerNotFound) {
				if e.logger != nil {
					e.logger.Error("Channel skipped, no handler registered",
						"order_id", order.ID,
						"kind", kind.String(),
					)
				}
				continue
			}
			return results, err
		}

		result, err := handler.Send(ctx, order.Customer, order.ID, order.Total)
		if err != nil {
			if e.logger != nil {
				e.logger.Error("Channel send failed",
					"order_id", order.ID,
					"kind", kind.String(),
					"error", err,
				)
			}
			result = entity.NewFailedResult(kind, order.ID, order.Customer.Address(kind), err)
		}

		e.log.Append(result)
		e.notifyListeners(result)
		results = append(results, result)
	}

	// The order is dispatched once the loop completes, regardless of
	// individual channel outcomes.
	if err := machine.Fire(ctx, lifecycle.TriggerDispatch); err != nil {
		return results, err
	}

	if e.logger != nil {
		e.logger.Info("Order dispatched",
			"order_id", order.ID,
			"state", machine.State().String(),
			"result_count", len(results),
		)
	}

	return results, nil
}

func (e *Engine) notifyListeners(result *entity.NotificationResult) {
	e.mu.Lock()
	listeners := make([]Listener, len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.Unlock()

	for _, l := range listeners {
		l.Update(result)
	}
}
