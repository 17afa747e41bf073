package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/DehBarca/ordernotify/internal/domain/channel"
)

func TestRegistry_RegisterAndResolve(t *testing.T) {
	registry := NewRegistry(zap.NewNop())
	handler := NewEmail(&stubTransport{})

	registry.Register(channel.KindEmail, handler)

	resolved, err := registry.Resolve(channel.KindEmail)
	require.NoError(t, err)
	assert.Equal(t, handler, resolved)
}

func TestRegistry_ResolveUnknownKind(t *testing.T) {
	registry := NewRegistry(zap.NewNop())

	_, err := registry.Resolve(channel.Kind("telegram"))

	assert.ErrorIs(t, err, ErrHandlerNotFound)
}

func TestRegistry_RegisterReplaces(t *testing.T) {
	registry := NewRegistry(zap.NewNop())
	first := NewEmail(&stubTransport{})
	second := NewEmail(&stubTransport{})

	registry.Register(channel.KindEmail, first)
	registry.Register(channel.KindEmail, second)

	resolved, err := registry.Resolve(channel.KindEmail)
	require.NoError(t, err)
	assert.Equal(t, second, resolved)
}

func TestRegistry_DecoratedAndCompositeResolveLikePrimitives(t *testing.T) {
	registry := NewRegistry(zap.NewNop())

	retrying := NewRetrying(NewEmail(&stubTransport{}), 3, zap.NewNop())
	group := NewComposite(channel.Kind("premium")).
		Add(NewEmail(&stubTransport{})).
		Add(NewSMS(&stubTransport{}))

	registry.Register(channel.KindEmail, retrying)
	registry.Register(channel.Kind("premium"), group)

	resolved, err := registry.Resolve(channel.KindEmail)
	require.NoError(t, err)
	assert.Equal(t, channel.KindEmail, resolved.Kind())

	resolved, err = registry.Resolve(channel.Kind("premium"))
	require.NoError(t, err)
	assert.Equal(t, channel.Kind("premium"), resolved.Kind())
}

func TestRegistry_Kinds(t *testing.T) {
	registry := NewRegistry(zap.NewNop())
	registry.Register(channel.KindSMS, NewSMS(&stubTransport{}))
	registry.Register(channel.KindEmail, NewEmail(&stubTransport{}))

	assert.Equal(t, []channel.Kind{channel.KindEmail, channel.KindSMS}, registry.Kinds())
}
