// Package broadcaster drains the registry outbox into Kafka.
package broadcaster

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/rs/zerolog"

	"supplyfinder/registry"
)

const DefaultMaxRetries = 5

// Outbox is the registry's queue of announcements.
type Outbox interface {
	ScanPending(fn func(rec registry.OutboxRecord) error) error
	MarkSent(seq uint64) error
	MarkRetry(seq uint64, maxRetries uint32) error
	MarkAcked(seq uint64) error
}

type Broadcaster struct {
	outbox     Outbox
	producer   sarama.SyncProducer
	topic      string
	interval   time.Duration
	maxRetries uint32
	log        zerolog.Logger
}

// ------------------------------------------------
// CONSTRUCTOR
// ------------------------------------------------

// NewSyncProducer connects a producer that waits for all in-sync replicas.
func NewSyncProducer(brokers []string) (sarama.SyncProducer, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	return sarama.NewSyncProducer(brokers, cfg)
}

func New(
	outbox Outbox,
	producer sarama.SyncProducer,
	topic string,
	interval time.Duration,
	log zerolog.Logger,
) *Broadcaster {
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	return &Broadcaster{
		outbox:     outbox,
		producer:   producer,
		topic:      topic,
		interval:   interval,
		maxRetries: DefaultMaxRetries,
		log:        log,
	}
}

// ------------------------------------------------
// LOOP
// ------------------------------------------------

// Run drains the outbox every interval until ctx is done.
func (b *Broadcaster) Run(ctx context.Context) {
	b.log.Info().Str("topic", b.topic).Msg("broadcaster started")

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			b.log.Info().Msg("broadcaster stopped")
			return

		case <-ticker.C:
			b.Flush()
		}
	}
}

// Flush makes one pass over the pending announcements and returns how many
// were delivered.
func (b *Broadcaster) Flush() int {
	delivered := 0
	err := b.outbox.ScanPending(func(rec registry.OutboxRecord) error {
		if err := b.outbox.MarkSent(rec.Seq); err != nil {
			return err
		}

		_, _, err := b.producer.SendMessage(&sarama.ProducerMessage{
			Topic: b.topic,
			Value: sarama.ByteEncoder(rec.Payload),
		})
		if err != nil {
			b.log.Warn().Err(err).
				Uint64("seq", rec.Seq).
				Uint32("retries", rec.Retries+1).
				Msg("announcement not delivered")
			return b.outbox.MarkRetry(rec.Seq, b.maxRetries)
		}

		delivered++
		return b.outbox.MarkAcked(rec.Seq)
	})
	if err != nil {
		b.log.Error().Err(err).Msg("outbox scan failed")
	}
	return delivered
}

// ------------------------------------------------
// SHUTDOWN
// ------------------------------------------------

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
