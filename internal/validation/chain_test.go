package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DehBarca/ordernotify/internal/domain/channel"
	"github.com/DehBarca/ordernotify/internal/domain/entity"
)

func validOrder() *entity.Order {
	return &entity.Order{
		ID: "O1",
		Customer: entity.Customer{
			Name:      "Ana",
			Addresses: map[channel.Kind]string{channel.KindEmail: "a@x.com"},
		},
		Total: 10,
	}
}

func TestDefaultChain_Validate(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(*entity.Order)
		wantOK     bool
		wantReason string
	}{
		{
			name:   "valid order",
			mutate: func(o *entity.Order) {},
			wantOK: true,
		},
		{
			name:       "empty identifier",
			mutate:     func(o *entity.Order) { o.ID = "" },
			wantOK:     false,
			wantReason: ReasonIdentifierMissing,
		},
		{
			name: "empty identifier wins even when everything else is broken",
			mutate: func(o *entity.Order) {
				o.ID = ""
				o.Customer.Name = ""
				o.Total = -10
			},
			wantOK:     false,
			wantReason: ReasonIdentifierMissing,
		},
		{
			name:       "customer without name",
			mutate:     func(o *entity.Order) { o.Customer.Name = "" },
			wantOK:     false,
			wantReason: ReasonCustomerIncomplete,
		},
		{
			name:       "customer without delivery address",
			mutate:     func(o *entity.Order) { o.Customer.Addresses = nil },
			wantOK:     false,
			wantReason: ReasonCustomerIncomplete,
		},
		{
			name:       "zero total",
			mutate:     func(o *entity.Order) { o.Total = 0 },
			wantOK:     false,
			wantReason: ReasonTotalNotPositive,
		},
		{
			name:       "negative total",
			mutate:     func(o *entity.Order) { o.Total = -5 },
			wantOK:     false,
			wantReason: ReasonTotalNotPositive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := validOrder()
			tt.mutate(order)

			ok, reason := DefaultChain().Validate(order)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestChain_StopsAtFirstFailure(t *testing.T) {
	var ran []string

	first := func(order *entity.Order) (bool, string) {
		ran = append(ran, "first")
		return false, "first failed"
	}
	second := func(order *entity.Order) (bool, string) {
		ran = append(ran, "second")
		return true, ""
	}

	ok, reason := NewChain(first, second).Validate(validOrder())

	require.False(t, ok)
	assert.Equal(t, "first failed", reason)
	assert.Equal(t, []string{"first"}, ran, "second check must not run after a failure")
}

func TestChain_EmptyChainPasses(t *testing.T) {
	ok, reason := NewChain().Validate(&entity.Order{})
	assert.True(t, ok)
	assert.Empty(t, reason)
}
