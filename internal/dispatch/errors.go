package dispatch

import "fmt"

// ValidationError reports why an order was rejected before any handler
// ran. It is scoped to the single order; the process keeps running.
type ValidationError struct {
	OrderID string
	Reason  string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("order %q failed validation: %s", e.OrderID, e.Reason)
}
