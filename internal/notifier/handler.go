// Package notifier contains the send-capable handlers for each channel
// kind and the registry that maps kinds to handlers. Handlers are
// polymorphic over one capability: rendering and delivering a single
// order confirmation. Wrapped handlers (retry, logging) and grouped
// handlers (composite) register and resolve exactly like primitives.
package notifier

import (
	"context"
	"errors"

	"github.com/DehBarca/ordernotify/internal/domain/channel"
	"github.com/DehBarca/ordernotify/internal/domain/entity"
)

var (
	// ErrHandlerNotFound is returned by Resolve for an unregistered kind
	ErrHandlerNotFound = errors.New("no handler registered for channel kind")

	// ErrMissingAddress is returned when the customer has no address for
	// the handler's channel kind
	ErrMissingAddress = errors.New("customer has no address for channel kind")

	// ErrEmptyComposite is returned when a composite handler has no members
	ErrEmptyComposite = errors.New("composite handler has no members")
)

// Handler renders and delivers a notification for one channel kind
type Handler interface {
	// Send delivers an order confirmation to the customer and returns
	// the delivery record
	Send(ctx context.Context, customer entity.Customer, orderID string, total float64) (*entity.NotificationResult, error)

	// Kind returns the channel kind this handler serves
	Kind() channel.Kind
}

// Transport is the sink a primitive handler delivers through. It only
// reports success or a transport-level failure.
type Transport interface {
	Deliver(ctx context.Context, recipient, message string) error
}
