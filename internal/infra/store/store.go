// Package store is the persistence collaborator: a mutex-guarded
// in-memory record store with the generic CRUD+subscribe surface the
// core consumes. Records are flat snake_case maps, the shape a remote
// row store would hand back; repositories translate them to and from
// domain entities.
package store

import (
	"errors"
	"sync"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateID    = errors.New("duplicate record id")
	ErrMissingID      = errors.New("record is missing an id field")
)

type Record map[string]any

// Filter matches records by field equality. A nil filter matches all.
type Filter map[string]any

type ChangeKind string

const (
	ChangeInsert ChangeKind = "INSERT"
	ChangeUpdate ChangeKind = "UPDATE"
)

// Change is one mutation pushed to subscribers, mirroring the realtime
// feed a remote store would emit. Delivery is eventually consistent by
// design; authoritative decisions stay on the write path.
type Change struct {
	Table  string
	Kind   ChangeKind
	Record Record
}

type Store struct {
	mu     sync.RWMutex
	tables map[string]map[string]Record
	order  map[string][]string
	subs   map[string][]func(Change)
}

func New() *Store {
	return &Store{
		tables: make(map[string]map[string]Record),
		order:  make(map[string][]string),
		subs:   make(map[string][]func(Change)),
	}
}

func (r Record) ID() (string, bool) {
	id, ok := r["id"].(string)
	return id, ok && id != ""
}

func (r Record) clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func (r Record) matches(f Filter) bool {
	for k, want := range f {
		if r[k] != want {
			return false
		}
	}
	return true
}

// List returns copies of all records in the table matching the filter,
// in insertion order.
func (s *Store) List(table string, filter Filter) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows := s.tables[table]
	out := make([]Record, 0, len(rows))
	for _, id := range s.order[table] {
		rec := rows[id]
		if rec.matches(filter) {
			out = append(out, rec.clone())
		}
	}
	return out, nil
}

// Get returns a copy of one record by id.
func (s *Store) Get(table, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.tables[table][id]
	if !ok {
		return nil, ErrRecordNotFound
	}
	return rec.clone(), nil
}

// Insert adds a record. The record must carry a non-empty id; inserting
// an existing id fails rather than overwriting.
func (s *Store) Insert(table string, rec Record) error {
	id, ok := rec.ID()
	if !ok {
		return ErrMissingID
	}

	s.mu.Lock()
	if s.tables[table] == nil {
		s.tables[table] = make(map[string]Record)
	}
	if _, exists := s.tables[table][id]; exists {
		s.mu.Unlock()
		return ErrDuplicateID
	}
	stored := rec.clone()
	s.tables[table][id] = stored
	s.order[table] = append(s.order[table], id)
	subs := append([]func(Change){}, s.subs[table]...)
	s.mu.Unlock()

	notify(subs, Change{Table: table, Kind: ChangeInsert, Record: stored.clone()})
	return nil
}

// Update applies a field patch to one record and returns the updated
// copy.
func (s *Store) Update(table, id string, patch Record) (Record, error) {
	s.mu.Lock()
	rec, ok := s.tables[table][id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrRecordNotFound
	}
	for k, v := range patch {
		if k == "id" {
			continue
		}
		rec[k] = v
	}
	updated := rec.clone()
	subs := append([]func(Change){}, s.subs[table]...)
	s.mu.Unlock()

	notify(subs, Change{Table: table, Kind: ChangeUpdate, Record: updated.clone()})
	return updated, nil
}

// OnChange registers a callback for mutations on a table. The returned
// function unsubscribes. Callbacks run synchronously after the write
// completes, outside the store lock.
func (s *Store) OnChange(table string, fn func(Change)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subs[table] = append(s.subs[table], fn)
	idx := len(s.subs[table]) - 1

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if idx < len(s.subs[table]) {
			s.subs[table][idx] = nil
		}
	}
}

func notify(subs []func(Change), ch Change) {
	for _, fn := range subs {
		if fn != nil {
			fn(ch)
		}
	}
}
