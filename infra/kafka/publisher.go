// Package kafka publishes one event per finished lookup.
package kafka

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"supplyfinder/infra/telemetry"
	"supplyfinder/service"
)

const EventLookupFinished = "lookup.finished"

// LookupEvent is the message value.
type LookupEvent struct {
	V          int       `json:"v"`
	Type       string    `json:"type"`
	LookupID   uint64    `json:"lookup_id"`
	ItemID     uint32    `json:"item_id"`
	Quantity   int64     `json:"quantity"`
	Discovered int       `json:"discovered"`
	Collected  int       `json:"collected"`
	Selected   int       `json:"selected"`
	Outcome    string    `json:"outcome"`
	Error      string    `json:"error,omitempty"`
	TookMillis int64     `json:"took_ms"`
	At         time.Time `json:"at"`
}

// EventPublisher is a service.Observer that only reacts to finished lookups.
type EventPublisher struct {
	service.NopObserver

	writer  MessageWriter
	timeout time.Duration
	log     zerolog.Logger
}

func NewEventPublisher(w MessageWriter, log zerolog.Logger) *EventPublisher {
	return &EventPublisher{
		writer:  w,
		timeout: time.Second,
		log:     log,
	}
}

func (p *EventPublisher) LookupFinished(ctx context.Context, s service.Summary) {
	ev := LookupEvent{
		V:          1,
		Type:       EventLookupFinished,
		LookupID:   s.LookupID,
		ItemID:     s.ItemID,
		Quantity:   s.Quantity,
		Discovered: s.Discovered,
		Collected:  s.Collected,
		Selected:   s.Selected,
		Outcome:    telemetry.Outcome(s.Err),
		TookMillis: s.Duration.Milliseconds(),
		At:         time.Now().UTC(),
	}
	if s.Err != nil {
		ev.Error = s.Err.Error()
	}

	value, err := json.Marshal(ev)
	if err != nil {
		p.log.Error().Err(err).Uint64("lookup", s.LookupID).Msg("encode lookup event")
		return
	}

	// Publish even when the lookup itself was cancelled.
	wctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	err = p.writer.WriteMessages(wctx, kafka.Message{
		Key:   []byte(strconv.FormatUint(uint64(s.ItemID), 10)),
		Value: value,
	})
	if err != nil {
		p.log.Warn().Err(err).Uint64("lookup", s.LookupID).Msg("publish lookup event")
	}
}

func (p *EventPublisher) Close() error {
	return p.writer.Close()
}

var _ service.Observer = (*EventPublisher)(nil)
