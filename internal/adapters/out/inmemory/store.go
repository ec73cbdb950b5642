// Package inmemory keeps zones, requesters, couriers and requests in process
// memory. It backs STORE_DRIVER=memory and the handler-level tests.
//
// Rows are stored as plain records and rebuilt into aggregates on every read,
// so callers never share state with the store. Transactions are serialized:
// Begin takes the store for the caller and Rollback restores the snapshot
// taken at Begin.
package inmemory

import (
	"maps"
	"slices"
	"sync"

	"vetpickup/internal/core/domain/model/courier"
	"vetpickup/internal/core/domain/model/kernel"
	"vetpickup/internal/core/domain/model/request"
	"vetpickup/internal/core/domain/model/requester"
	"vetpickup/internal/core/domain/model/zone"
)

type zoneRecord struct {
	id   kernel.UUID
	name string
}

type requesterRecord struct {
	id      kernel.UUID
	profile requester.Profile
}

type courierRecord struct {
	id    kernel.UUID
	name  string
	kind  courier.Kind
	zones []kernel.UUID
	seq   int64
}

type requestRecord struct {
	id          kernel.UUID
	requesterID kernel.UUID
	details     request.Details
	requestDate kernel.Date
	requestTime kernel.TimeOfDay
	status      request.Status
	courierID   *kernel.UUID
	seq         int64
}

type tables struct {
	zones      map[kernel.UUID]zoneRecord
	requesters map[kernel.UUID]requesterRecord
	couriers   map[kernel.UUID]courierRecord
	requests   map[kernel.UUID]requestRecord
	seq        int64
}

func (t tables) clone() tables {
	return tables{
		zones:      maps.Clone(t.zones),
		requesters: maps.Clone(t.requesters),
		couriers:   maps.Clone(t.couriers),
		requests:   maps.Clone(t.requests),
		seq:        t.seq,
	}
}

// Store is the shared state behind every repository of this package.
type Store struct {
	txMu sync.Mutex

	mu   sync.RWMutex
	data tables
}

func NewStore() *Store {
	return &Store{
		data: tables{
			zones:      make(map[kernel.UUID]zoneRecord),
			requesters: make(map[kernel.UUID]requesterRecord),
			couriers:   make(map[kernel.UUID]courierRecord),
			requests:   make(map[kernel.UUID]requestRecord),
		},
	}
}

func (s *Store) read(fn func(t *tables) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&s.data)
}

func (s *Store) write(fn func(t *tables) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&s.data)
}

func (s *Store) snapshot() tables {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.clone()
}

func (s *Store) restore(t tables) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = t
}

func (t *tables) nextSeq() int64 {
	t.seq++
	return t.seq
}

func toZone(rec zoneRecord) (*zone.Zone, error) {
	return zone.RestoreZone(rec.id, rec.name)
}

func toRequester(rec requesterRecord) (*requester.Requester, error) {
	return requester.RestoreRequester(rec.id, rec.profile)
}

func toCourier(rec courierRecord) (*courier.Courier, error) {
	return courier.RestoreCourier(rec.id, rec.name, rec.kind, slices.Clone(rec.zones))
}

func toRequest(rec requestRecord) (*request.Request, error) {
	return request.RestoreRequest(
		rec.id,
		rec.requesterID,
		rec.details,
		rec.requestDate,
		rec.requestTime,
		rec.status,
		rec.courierID,
	)
}
