package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supplyfinder/domain/supply"
	"supplyfinder/service"
)

type memWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	err    error
	closed bool
}

func (w *memWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *memWriter) Close() error {
	w.closed = true
	return nil
}

func TestPublishLookupFinished(t *testing.T) {
	w := &memWriter{}
	p := NewEventPublisher(w, zerolog.Nop())

	p.LookupFinished(context.Background(), service.Summary{
		LookupID:   12,
		ItemID:     7,
		Quantity:   8,
		Discovered: 2,
		Collected:  2,
		Selected:   1,
		Duration:   3 * time.Millisecond,
	})

	require.Len(t, w.msgs, 1)
	assert.Equal(t, []byte("7"), w.msgs[0].Key)

	var ev LookupEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &ev))
	assert.Equal(t, EventLookupFinished, ev.Type)
	assert.Equal(t, uint64(12), ev.LookupID)
	assert.Equal(t, "ok", ev.Outcome)
	assert.Equal(t, int64(3), ev.TookMillis)
	assert.Empty(t, ev.Error)
}

func TestPublishFailedLookupAfterCancel(t *testing.T) {
	w := &memWriter{}
	p := NewEventPublisher(w, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p.LookupFinished(ctx, service.Summary{LookupID: 1, Err: supply.ErrNotFound})

	require.Len(t, w.msgs, 1)
	var ev LookupEvent
	require.NoError(t, json.Unmarshal(w.msgs[0].Value, &ev))
	assert.Equal(t, "not_found", ev.Outcome)
	assert.Equal(t, "not found", ev.Error)
}

func TestPublishIgnoresPhasesAndWriteErrors(t *testing.T) {
	w := &memWriter{err: errors.New("broker down")}
	p := NewEventPublisher(w, zerolog.Nop())

	ctx := p.PhaseStarted(context.Background(), 1, service.PhaseDiscovering)
	p.PhaseFinished(ctx, 1, service.PhaseDiscovering, nil)
	p.LookupFinished(ctx, service.Summary{LookupID: 1})

	assert.Empty(t, w.msgs)
	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}
