package registry

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/rs/zerolog"
	"google.golang.org/protobuf/proto"

	pb "supplyfinder/api/pb"
	"supplyfinder/domain/supply"
	"supplyfinder/infra/sequence"
)

const DefaultCapacity = 10

// Options configures a Store.
type Options struct {
	// Capacity is the most providers the store accepts.
	Capacity int
	// Announce queues an outbox record for every registration.
	Announce bool
	Logger   zerolog.Logger
}

// Store is the registry index.
//
// Keys:
//
//	provider/<address>       -> ProviderInfo (protobuf)
//	item/<id>/<seq>          -> address
//	outbox/<seq>             -> outbox record
type Store struct {
	db  *pebble.DB
	seq *sequence.Sequencer

	// mu serializes registrations so the duplicate and capacity checks see
	// a stable count.
	mu       sync.Mutex
	count    int
	capacity int
	announce bool

	log zerolog.Logger
}

func Open(opts Options) (*Store, error) {
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCapacity
	}
	db, err := pebble.Open("registry", &pebble.Options{
		FS: vfs.NewMem(),
	})
	if err != nil {
		return nil, fmt.Errorf("open registry index: %w", err)
	}
	return &Store{
		db:       db,
		seq:      sequence.New(0),
		capacity: opts.Capacity,
		announce: opts.Announce,
		log:      opts.Logger,
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// -------------------- Commands --------------------

// Register lists p under every catalog item and returns the number of
// providers now registered.
func (s *Store) Register(p supply.ProviderDescriptor) (int, error) {
	p.Address = strings.TrimSpace(p.Address)
	if p.Address == "" {
		return 0, fmt.Errorf("%w: empty address", supply.ErrInvalidProvider)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	exists, err := s.has(providerKey(p.Address))
	if err != nil {
		return 0, err
	}
	if exists {
		return s.count, fmt.Errorf("%w: %s", supply.ErrConflict, p.Address)
	}
	if s.count >= s.capacity {
		return s.count, fmt.Errorf("%w: %d providers", supply.ErrCapacityExceeded, s.capacity)
	}

	val, err := proto.Marshal(&pb.ProviderInfo{
		Address:  p.Address,
		Name:     p.Name,
		Location: p.Location,
	})
	if err != nil {
		return s.count, fmt.Errorf("encode provider: %w", err)
	}

	seq := s.seq.Next()
	b := s.db.NewBatch()
	defer b.Close()

	if err := b.Set(providerKey(p.Address), val, nil); err != nil {
		return s.count, err
	}
	for id := uint32(0); id < supply.CatalogSize; id++ {
		if err := b.Set(itemKey(id, seq), []byte(p.Address), nil); err != nil {
			return s.count, err
		}
	}
	if s.announce {
		payload, err := encodeEvent(Event{
			V:        1,
			Type:     EventProviderRegistered,
			Seq:      seq,
			Address:  p.Address,
			Name:     p.Name,
			Location: p.Location,
			At:       time.Now().UTC(),
		})
		if err != nil {
			return s.count, err
		}
		if err := b.Set(outboxKey(seq), encodeRecord(OutboxRecord{State: StateNew, Payload: payload}), nil); err != nil {
			return s.count, err
		}
	}
	if err := b.Commit(pebble.Sync); err != nil {
		return s.count, fmt.Errorf("commit registration: %w", err)
	}

	s.count++
	s.log.Info().
		Str("provider", p.Address).
		Str("name", p.Name).
		Int("registered", s.count).
		Msg("provider registered")
	return s.count, nil
}

// -------------------- Queries --------------------

// Providers returns the providers listed for itemID in registration order.
func (s *Store) Providers(itemID uint32) ([]supply.ProviderDescriptor, error) {
	if !supply.InCatalog(itemID) {
		return nil, fmt.Errorf("%w: item %d", supply.ErrNotFound, itemID)
	}

	lower := itemPrefix(itemID)
	iter, err := s.db.NewIter(&pebble.IterOptions{
		LowerBound: lower,
		UpperBound: prefixEnd(lower),
	})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var out []supply.ProviderDescriptor
	for iter.First(); iter.Valid(); iter.Next() {
		p, err := s.provider(string(iter.Value()))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no provider for item %d", supply.ErrNotFound, itemID)
	}
	return out, nil
}

// Len is the number of registered providers.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// -------------------- Helpers --------------------

func (s *Store) provider(address string) (supply.ProviderDescriptor, error) {
	val, closer, err := s.db.Get(providerKey(address))
	if err != nil {
		return supply.ProviderDescriptor{}, fmt.Errorf("provider %s: %w", address, err)
	}
	defer closer.Close()

	var info pb.ProviderInfo
	if err := proto.Unmarshal(val, &info); err != nil {
		return supply.ProviderDescriptor{}, fmt.Errorf("decode provider %s: %w", address, err)
	}
	return supply.ProviderDescriptor{
		Address:  info.GetAddress(),
		Name:     info.GetName(),
		Location: info.GetLocation(),
	}, nil
}

func (s *Store) has(key []byte) (bool, error) {
	_, closer, err := s.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	closer.Close()
	return true, nil
}

func providerKey(address string) []byte {
	return []byte("provider/" + address)
}

func itemPrefix(itemID uint32) []byte {
	return []byte(fmt.Sprintf("item/%02d/", itemID))
}

func itemKey(itemID uint32, seq uint64) []byte {
	return []byte(fmt.Sprintf("item/%02d/%020d", itemID, seq))
}

// prefixEnd is the smallest key greater than every key starting with p.
func prefixEnd(p []byte) []byte {
	end := bytes.Clone(p)
	end[len(end)-1]++
	return end
}
