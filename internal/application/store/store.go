// Package store owns the single ApplicationRecord of a wizard session. All
// mutation goes through MergeSection and UpdateAtPath; the list helpers in
// lists.go are built on MergeSection.
//
// Writers are serialized by a mutex. When several browser tabs drive the same
// session the last write wins; that is a known limitation, not a bug.
package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"intake/internal/application/models"
	"intake/internal/application/paths"
)

// Listener observes every committed write with a snapshot of the new record.
type Listener func(version uint64, record models.ApplicationRecord)

// Store holds one ApplicationRecord.
type Store struct {
	mu        sync.RWMutex
	record    models.ApplicationRecord
	version   uint64
	listeners map[int]Listener
	nextSub   int
	newID     func() string
	// retired holds every list identifier that has left the record.
	retired map[string]struct{}
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides how child and address identifiers are minted.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// New returns a store holding a blank record.
func New(opts ...Option) *Store {
	s := &Store{
		record:    models.NewRecord(),
		listeners: make(map[int]Listener),
		newID:     uuid.NewString,
		retired:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a deep copy of the current record.
func (s *Store) Snapshot() models.ApplicationRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.record.Clone()
}

// Version counts committed writes.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// MergeSection replaces every top-level key present in section and leaves the
// rest untouched. List entries arriving without an identifier, with one
// already used earlier in the same list, or with one that was removed before
// get a fresh identifier.
func (s *Store) MergeSection(section models.Section) {
	s.commit(func(r *models.ApplicationRecord) error {
		s.apply(r, section)
		return nil
	})
}

// UpdateAtPath sets the leaf addressed by a dotted path such as
// "nationalId.number", creating missing optional sub-records on the way.
func (s *Store) UpdateAtPath(path string, value any) error {
	lens, err := paths.Lookup(path)
	if err != nil {
		return err
	}
	return s.commit(func(r *models.ApplicationRecord) error {
		if err := lens.Set(r, value); err != nil {
			return fmt.Errorf("set %s: %w", path, err)
		}
		return nil
	})
}

// update computes a section from the current record and merges it under the
// same lock, so read-modify-write helpers cannot interleave.
func (s *Store) update(fn func(current models.ApplicationRecord) (models.Section, error)) error {
	return s.commit(func(r *models.ApplicationRecord) error {
		section, err := fn(*r)
		if err != nil {
			return err
		}
		s.apply(r, section)
		return nil
	})
}

func (s *Store) commit(mutate func(r *models.ApplicationRecord) error) error {
	s.mu.Lock()
	if err := mutate(&s.record); err != nil {
		s.mu.Unlock()
		return err
	}
	s.version++
	version := s.version
	snapshot := s.record.Clone()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(version, snapshot)
	}
	return nil
}

func (s *Store) apply(r *models.ApplicationRecord, section models.Section) {
	children := idSet(r.Children, childID)
	addresses := idSet(r.PreviousAddresses, previousAddressID)

	section.ApplyTo(r)

	assignIDs(r.Children, childID, s.retired, s.newID)
	assignIDs(r.PreviousAddresses, previousAddressID, s.retired, s.newID)
	retire(s.retired, children, idSet(r.Children, childID))
	retire(s.retired, addresses, idSet(r.PreviousAddresses, previousAddressID))
}

func childID(c *models.Child) *string { return &c.ID }

func previousAddressID(a *models.PreviousAddress) *string { return &a.ID }

// assignIDs gives a fresh identifier to every entry whose identifier is
// empty, repeats an earlier entry, or was retired.
func assignIDs[T any](items []T, id func(*T) *string, retired map[string]struct{}, newID func() string) {
	seen := make(map[string]struct{}, len(items))
	for i := range items {
		p := id(&items[i])
		_, dup := seen[*p]
		_, gone := retired[*p]
		if *p == "" || dup || gone {
			*p = newID()
		}
		seen[*p] = struct{}{}
	}
}

func idSet[T any](items []T, id func(*T) *string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for i := range items {
		set[*id(&items[i])] = struct{}{}
	}
	return set
}

func retire(retired, before, after map[string]struct{}) {
	for id := range before {
		if _, ok := after[id]; !ok {
			retired[id] = struct{}{}
		}
	}
}
