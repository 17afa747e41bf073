package notifier

import (
	"context"

	"github.com/DehBarca/ordernotify/internal/domain/channel"
	"github.com/DehBarca/ordernotify/internal/domain/entity"
)

// Composite groups several handlers under one kind. Send invokes each
// member in the order it was added and aggregates the member results,
// in that same order, into the Parts of a single result.
type Composite struct {
	kind    channel.Kind
	members []Handler
}

// NewComposite creates an empty group registered under the given kind
func NewComposite(kind channel.Kind) *Composite {
	return &Composite{kind: kind}
}

// Add appends a member handler. Members run in add order.
func (h *Composite) Add(member Handler) *Composite {
	h.members = append(h.members, member)
	return h
}

func (h *Composite) Kind() channel.Kind {
	return h.kind
}

// Send invokes every member. A member failure is recorded as a failed
// part and does not stop later members. The aggregate is SENT when at
// least one member delivered.
func (h *Composite) Send(ctx context.Context, customer entity.Customer, orderID string, total float64) (*entity.NotificationResult, error) {
	if len(h.members) == 0 {
		return nil, ErrEmptyComposite
	}

	aggregate := entity.NewResult(h.kind, orderID, "", "")
	anySent := false

	for _, member := range h.members {
		result, err := member.Send(ctx, customer, orderID, total)
		if err != nil {
			failed := entity.NewFailedResult(member.Kind(), orderID, customer.Address(member.Kind()), err)
			aggregate.Parts = append(aggregate.Parts, *failed)
			continue
		}
		anySent = true
		aggregate.Parts = append(aggregate.Parts, *result)
	}

	if !anySent {
		aggregate.Status = entity.StatusFailed
		aggregate.Error = "all members failed"
	}

	return aggregate, nil
}
