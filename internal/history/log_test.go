package history

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DehBarca/ordernotify/internal/domain/channel"
	"github.com/DehBarca/ordernotify/internal/domain/entity"
)

func TestLog_AppendOrder(t *testing.T) {
	log := NewLog()

	first := entity.NewResult(channel.KindEmail, "O1", "a@x.com", "hello")
	second := entity.NewResult(channel.KindSMS, "O1", "+34600123456", "hello")
	log.Append(first)
	log.Append(second)

	entries := log.All()
	require.Len(t, entries, 2)
	assert.Same(t, first, entries[0])
	assert.Same(t, second, entries[1])
	assert.Equal(t, 2, log.Len())
}

func TestLog_KeepsDuplicatesAndFailures(t *testing.T) {
	log := NewLog()

	sent := entity.NewResult(channel.KindEmail, "O1", "a@x.com", "hello")
	failed := entity.NewFailedResult(channel.KindEmail, "O1", "a@x.com", assert.AnError)
	log.Append(sent)
	log.Append(sent)
	log.Append(failed)

	entries := log.All()
	require.Len(t, entries, 3)
	assert.Equal(t, entity.StatusFailed, entries[2].Status)
}

func TestLog_AllReturnsCopy(t *testing.T) {
	log := NewLog()
	log.Append(entity.NewResult(channel.KindEmail, "O1", "a@x.com", "hello"))

	entries := log.All()
	entries[0] = nil

	require.NotNil(t, log.All()[0])
}

func TestLog_ConcurrentAppend(t *testing.T) {
	log := NewLog()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			log.Append(entity.NewResult(channel.KindEmail, "O1", "a@x.com", "hello"))
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, log.Len())
}
