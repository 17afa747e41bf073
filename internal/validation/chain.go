package validation

import "github.com/DehBarca/ordernotify/internal/domain/entity"

// Failure reasons reported by the built-in checks.
const (
	ReasonIdentifierMissing  = "identifier missing"
	ReasonCustomerIncomplete = "customer incomplete"
	ReasonTotalNotPositive   = "total must be positive"
)

// Check is a single side-effect-free predicate over an order. It
// reports whether the order passes and, if not, a human-readable reason.
type Check func(order *entity.Order) (ok bool, reason string)

// CheckIdentifier requires a non-empty order ID
func CheckIdentifier(order *entity.Order) (bool, string) {
	if order.ID == "" {
		return false, ReasonIdentifierMissing
	}
	return true, ""
}

// CheckCustomer requires a customer name and at least one delivery address
func CheckCustomer(order *entity.Order) (bool, string) {
	if order.Customer.Name == "" || !order.Customer.HasDeliveryAddress() {
		return false, ReasonCustomerIncomplete
	}
	return true, ""
}

// CheckTotal requires a strictly positive order total
func CheckTotal(order *entity.Order) (bool, string) {
	if order.Total <= 0 {
		return false, ReasonTotalNotPositive
	}
	return true, ""
}

// Chain runs checks in a fixed order and stops at the first failure.
// It never aggregates reasons: the first failing check wins.
type Chain struct {
	checks []Check
}

// NewChain creates a chain from the given checks, run in argument order
func NewChain(checks ...Check) *Chain {
	return &Chain{checks: checks}
}

// DefaultChain returns the standard order chain: identifier, customer, total
func DefaultChain() *Chain {
	return NewChain(CheckIdentifier, CheckCustomer, CheckTotal)
}

// Validate runs the chain over the order. On failure it returns the
// failing check's reason; subsequent checks are not evaluated.
func (c *Chain) Validate(order *entity.Order) (bool, string) {
	for _, check := range c.checks {
		if ok, reason := check(order); !ok {
			return false, reason
		}
	}
	return true, ""
}
