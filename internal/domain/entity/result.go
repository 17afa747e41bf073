package entity

import (
	"time"

	"github.com/DehBarca/ordernotify/internal/domain/channel"
)

// DeliveryStatus is the outcome of a notification send
type DeliveryStatus string

const (
	StatusSent   DeliveryStatus = "SENT"
	StatusFailed DeliveryStatus = "FAILED"
)

// NotificationResult records one handler invocation. Created once per
// send, immutable thereafter; owned by the history log.
type NotificationResult struct {
	Kind      channel.Kind         `json:"kind"`
	OrderID   string               `json:"order_id"`
	Recipient string               `json:"recipient"`
	Message   string               `json:"message"`
	Status    DeliveryStatus       `json:"status"`
	Error     string               `json:"error,omitempty"`
	Timestamp time.Time            `json:"timestamp"`
	Parts     []NotificationResult `json:"parts,omitempty"`
}

// NewResult creates a successful delivery record
func NewResult(kind channel.Kind, orderID, recipient, message string) *NotificationResult {
	return &NotificationResult{
		Kind:      kind,
		OrderID:   orderID,
		Recipient: recipient,
		Message:   message,
		Status:    StatusSent,
		Timestamp: time.Now(),
	}
}

// NewFailedResult creates a failed delivery record
func NewFailedResult(kind channel.Kind, orderID, recipient string, err error) *NotificationResult {
	r := &NotificationResult{
		Kind:      kind,
		OrderID:   orderID,
		Recipient: recipient,
		Status:    StatusFailed,
		Timestamp: time.Now(),
	}
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// Sent returns true if the notification was delivered
func (r *NotificationResult) Sent() bool {
	return r.Status == StatusSent
}
