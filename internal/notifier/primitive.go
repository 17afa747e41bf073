package notifier

import (
	"context"
	"fmt"

	"github.com/DehBarca/ordernotify/internal/domain/channel"
	"github.com/DehBarca/ordernotify/internal/domain/entity"
	"github.com/DehBarca/ordernotify/internal/render"
	"github.com/DehBarca/ordernotify/pkg/utils"
)

// primitive is a single-transport handler: it resolves the recipient
// address, renders the message and hands it to the transport sink.
type primitive struct {
	kind      channel.Kind
	render    render.Func
	transport Transport
	checkAddr func(string) error
}

// NewEmail creates the email handler
func NewEmail(transport Transport) Handler {
	return &primitive{
		kind:      channel.KindEmail,
		render:    render.Email,
		transport: transport,
		checkAddr: utils.ValidateEmail,
	}
}

// NewSMS creates the SMS handler
func NewSMS(transport Transport) Handler {
	return &primitive{
		kind:      channel.KindSMS,
		render:    render.SMS,
		transport: transport,
		checkAddr: utils.ValidatePhone,
	}
}

// NewPush creates the push handler
func NewPush(transport Transport) Handler {
	return &primitive{
		kind:      channel.KindPush,
		render:    render.Push,
		transport: transport,
		checkAddr: utils.ValidateDeviceToken,
	}
}

// NewPrimitive creates a handler for a custom kind with an explicit
// render function and no recipient format check
func NewPrimitive(kind channel.Kind, renderFn render.Func, transport Transport) Handler {
	return &primitive{
		kind:      kind,
		render:    renderFn,
		transport: transport,
	}
}

func (h *primitive) Kind() channel.Kind {
	return h.kind
}

func (h *primitive) Send(ctx context.Context, customer entity.Customer, orderID string, total float64) (*entity.NotificationResult, error) {
	recipient := customer.Address(h.kind)
	if recipient == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingAddress, h.kind)
	}

	if h.checkAddr != nil {
		if err := h.checkAddr(recipient); err != nil {
			return nil, fmt.Errorf("recipient for %s: %w", h.kind, err)
		}
	}

	message := h.render(customer.Name, orderID, total)

	if err := h.transport.Deliver(ctx, recipient, message); err != nil {
		return nil, fmt.Errorf("deliver %s to %s: %w", h.kind, recipient, err)
	}

	return entity.NewResult(h.kind, orderID, recipient, message), nil
}
