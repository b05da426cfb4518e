package state

import (
	"sync"
	"time"

	"github.com/five82/insights/internal/metrics"
)

// Snapshot represents the latest data available to the UI.
type Snapshot struct {
	metrics.State
	Ready bool   // loading gate has elapsed
	Ticks uint64 // number of ticks published since start
}

// Loading reports whether the dashboard should still show placeholders.
func (s Snapshot) Loading() bool {
	return !s.Ready
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// NewStore returns a store seeded with initial.
func NewStore(initial metrics.State) *Store {
	return &Store{snapshot: Snapshot{State: initial.Clone()}}
}

// Update replaces every series at once and counts the tick.
func (s *Store) Update(next metrics.State) {
	next = next.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.State = next
	s.snapshot.Ticks++
}

// MarkReady flips the loading gate. It returns false when the store was
// already ready.
func (s *Store) MarkReady() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.snapshot.Ready {
		return false
	}
	s.snapshot.Ready = true
	return true
}

// State returns a copy of the current series.
func (s *Store) State() metrics.State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot.State.Clone()
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.State = s.snapshot.State.Clone()
	return snap
}

// LastUpdated returns the timestamp of the latest published state.
func (s *Store) LastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshot.LastUpdated
}
