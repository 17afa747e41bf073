package entity

import "github.com/DehBarca/ordernotify/internal/domain/channel"

// Customer holds the recipient of an order's notifications.
// Delivery addresses are keyed by channel kind: an email address for
// email, a phone number for SMS, a device token for push.
type Customer struct {
	Name      string            `json:"name"`
	Addresses map[channel.Kind]string `json:"addresses"`
}

// Address returns the delivery address for the given channel kind
func (c Customer) Address(kind channel.Kind) string {
	return c.Addresses[kind]
}

// HasDeliveryAddress returns true if at least one non-empty address is present
func (c Customer) HasDeliveryAddress() bool {
	for _, addr := range c.Addresses {
		if addr != "" {
			return true
		}
	}
	return false
}

// LineItem is a single purchased item on an order
type LineItem struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Order is the unit of work for the dispatch pipeline.
// Constructed by the caller, validated once, never mutated after
// dispatch begins.
type Order struct {
	ID       string     `json:"id"`
	Customer Customer   `json:"customer"`
	Total    float64    `json:"total"`
	Items    []LineItem `json:"items,omitempty"`
}
