package dispatch

import (
	"sync"
	"time"

	"github.com/DehBarca/ordernotify/internal/domain/channel"
	"github.com/DehBarca/ordernotify/internal/domain/entity"
)

// Listener is notified after each dispatch outcome, independent of the
// delivery transport
type Listener interface {
	Update(result *entity.NotificationResult)
}

// AuditEntry is one row of the audit trail
type AuditEntry struct {
	Timestamp time.Time      `json:"timestamp"`
	Kind      channel.Kind   `json:"kind"`
	OrderID   string         `json:"order_id"`
	Recipient string         `json:"recipient"`
	Status    entity.DeliveryStatus `json:"status"`
}

// AuditTrail records who was notified about what, in dispatch order
type AuditTrail struct {
	mu      sync.Mutex
	entries []AuditEntry
}

// NewAuditTrail creates an empty audit trail
func NewAuditTrail() *AuditTrail {
	return &AuditTrail{}
}

// Update appends an audit entry for the result
func (a *AuditTrail) Update(result *entity.NotificationResult) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.entries = append(a.entries, AuditEntry{
		Timestamp: time.Now(),
		Kind:      result.Kind,
		OrderID:   result.OrderID,
		Recipient: result.Recipient,
		Status:    result.Status,
	})
}

// Entries returns a copy of the audit trail in append order
func (a *AuditTrail) Entries() []AuditEntry {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]AuditEntry, len(a.entries))
	copy(out, a.entries)
	return out
}
