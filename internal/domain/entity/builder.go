package entity

import (
	"errors"

	"github.com/DehBarca/ordernotify/internal/domain/channel"
)

var (
	// ErrBuilderMissingID is returned when Build is called without an order ID
	ErrBuilderMissingID = errors.New("order id is required")

	// ErrBuilderMissingCustomer is returned when Build is called without a customer name
	ErrBuilderMissingCustomer = errors.New("customer name is required")
)

// OrderBuilder assembles an Order step by step
type OrderBuilder struct {
	id        string
	name      string
	addresses map[channel.Kind]string
	total     float64
	items     []LineItem
}

// NewOrderBuilder creates an empty order builder
func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		addresses: make(map[channel.Kind]string),
	}
}

// WithID sets the order identifier
func (b *OrderBuilder) WithID(id string) *OrderBuilder {
	b.id = id
	return b
}

// WithCustomer sets the customer name
func (b *OrderBuilder) WithCustomer(name string) *OrderBuilder {
	b.name = name
	return b
}

// WithAddress sets a delivery address for a channel kind
func (b *OrderBuilder) WithAddress(kind channel.Kind, address string) *OrderBuilder {
	b.addresses[kind] = address
	return b
}

// WithTotal sets the order total
func (b *OrderBuilder) WithTotal(total float64) *OrderBuilder {
	b.total = total
	return b
}

// AddItem appends a line item
func (b *OrderBuilder) AddItem(name string, price float64, quantity int) *OrderBuilder {
	b.items = append(b.items, LineItem{Name: name, Price: price, Quantity: quantity})
	return b
}

// Build assembles the order. ID and customer name are required.
func (b *OrderBuilder) Build() (*Order, error) {
	if b.id == "" {
		return nil, ErrBuilderMissingID
	}
	if b.name == "" {
		return nil, ErrBuilderMissingCustomer
	}

	addresses := make(map[channel.Kind]string, len(b.addresses))
	for kind, addr := range b.addresses {
		addresses[kind] = addr
	}

	return &Order{
		ID: b.id,
		Customer: Customer{
			Name:      b.name,
			Addresses: addresses,
		},
		Total: b.total,
		Items: append([]LineItem{}, b.items...),
	}, nil
}
