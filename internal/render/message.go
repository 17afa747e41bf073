// Package render builds the human-readable message for each channel
// kind. Handlers take a render function so callers can swap wording
// without touching transport code.
package render

import (
	"fmt"

	"github.com/DehBarca/ordernotify/internal/domain/channel"
)

// Func turns order facts into a message string for one channel kind
type Func func(customerName, orderID string, total float64) string

// Email builds the long-form confirmation used for email delivery
func Email(customerName, orderID string, total float64) string {
	return fmt.Sprintf("Dear %s, your order #%s for $%.2f has been confirmed.", customerName, orderID, total)
}

// SMS builds the short confirmation used for SMS delivery
func SMS(customerName, orderID string, total float64) string {
	return fmt.Sprintf("Order #%s confirmed. Total: $%.2f. Thank you!", orderID, total)
}

// Push builds the compact confirmation used for push delivery
func Push(customerName, orderID string, total float64) string {
	return fmt.Sprintf("Order confirmed! #%s - $%.2f", orderID, total)
}

// ForKind returns the default render function for a built-in kind.
// Unknown kinds fall back to the email wording.
func ForKind(kind channel.Kind) Func {
	switch kind {
	case channel.KindSMS:
		return SMS
	case channel.KindPush:
		return Push
	default:
		return Email
	}
}
