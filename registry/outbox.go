package registry

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/cockroachdb/pebble"
)

// -------------------- State --------------------

type OutboxState uint8

const (
	StateNew OutboxState = iota
	StateSent
	StateFailed
)

func (s OutboxState) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// -------------------- Record --------------------

// OutboxRecord is one queued announcement. Acked records are deleted.
type OutboxRecord struct {
	Seq         uint64
	State       OutboxState
	Retries     uint32
	LastAttempt int64
	Payload     []byte
}

const recordHeader = 1 + 4 + 8

// binary encoding: [state:1][retries:4][lastAttempt:8][payload...]
func encodeRecord(r OutboxRecord) []byte {
	buf := make([]byte, recordHeader+len(r.Payload))
	buf[0] = byte(r.State)
	binary.BigEndian.PutUint32(buf[1:5], r.Retries)
	binary.BigEndian.PutUint64(buf[5:13], uint64(r.LastAttempt))
	copy(buf[recordHeader:], r.Payload)
	return buf
}

func decodeRecord(b []byte) (OutboxRecord, error) {
	if len(b) < recordHeader {
		return OutboxRecord{}, errors.New("invalid outbox record length")
	}
	return OutboxRecord{
		State:       OutboxState(b[0]),
		Retries:     binary.BigEndian.Uint32(b[1:5]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[5:13])),
		Payload:     bytes.Clone(b[recordHeader:]),
	}, nil
}

// -------------------- Outbox --------------------

// ScanPending calls fn for every record not yet acked or given up on, oldest
// first.
func (s *Store) ScanPending(fn func(rec OutboxRecord) error) error {
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("outbox/"),
		UpperBound: prefixEnd([]byte("outbox/")),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		rec, err := decodeRecord(iter.Value())
		if err != nil {
			return err
		}
		if rec.State == StateFailed {
			continue
		}
		seq, err := parseOutboxKey(iter.Key())
		if err != nil {
			return err
		}
		rec.Seq = seq

		if err := fn(rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// MarkSent records a delivery attempt.
func (s *Store) MarkSent(seq uint64) error {
	return s.update(seq, func(r *OutboxRecord) {
		r.State = StateSent
		r.LastAttempt = time.Now().UnixNano()
	})
}

// MarkRetry records a failed attempt; after maxRetries the record is parked
// as FAILED and no longer scanned.
func (s *Store) MarkRetry(seq uint64, maxRetries uint32) error {
	return s.update(seq, func(r *OutboxRecord) {
		r.Retries++
		if r.Retries >= maxRetries {
			r.State = StateFailed
		}
	})
}

// MarkAcked removes a delivered record.
func (s *Store) MarkAcked(seq uint64) error {
	return s.db.Delete(outboxKey(seq), pebble.Sync)
}

// Outbox returns the record for seq.
func (s *Store) Outbox(seq uint64) (OutboxRecord, error) {
	val, closer, err := s.db.Get(outboxKey(seq))
	if err != nil {
		return OutboxRecord{}, err
	}
	defer closer.Close()

	rec, err := decodeRecord(val)
	rec.Seq = seq
	return rec, err
}

func (s *Store) update(seq uint64, fn func(*OutboxRecord)) error {
	rec, err := s.Outbox(seq)
	if err != nil {
		return err
	}
	fn(&rec)
	return s.db.Set(outboxKey(seq), encodeRecord(rec), pebble.Sync)
}

func outboxKey(seq uint64) []byte {
	return []byte(fmt.Sprintf("outbox/%020d", seq))
}

func parseOutboxKey(b []byte) (uint64, error) {
	var seq uint64
	_, err := fmt.Sscanf(string(bytes.TrimPrefix(b, []byte("outbox/"))), "%d", &seq)
	return seq, err
}
