package store

import (
	"sync/atomic"
	"time"

	"github.com/heysubinoy/confstore/pkg/kv"
)

// counters holds operation statistics for a wrapped store.
// Uses atomic operations for thread-safe updates without locks.
type counters struct {
	getHits   atomic.Uint64
	getMisses atomic.Uint64
	sets      atomic.Uint64
	deletes   atomic.Uint64

	// Cumulative latencies in nanoseconds.
	getLatencyNs    atomic.Uint64
	setLatencyNs    atomic.Uint64
	deleteLatencyNs atomic.Uint64
}

// InstrumentedStore wraps any kv.Store implementation with operation
// counters and timing. Lookups are counted separately as hits and misses,
// since the miss rate is the interesting number for a config-style store.
type InstrumentedStore struct {
	store kv.Store
	stats counters
}

// Compile-time check to ensure InstrumentedStore implements kv.Store.
var _ kv.Store = (*InstrumentedStore)(nil)

// NewInstrumented wraps a store with instrumentation.
func NewInstrumented(store kv.Store) *InstrumentedStore {
	return &InstrumentedStore{store: store}
}

// Get delegates to the wrapped store and records the outcome and timing.
func (s *InstrumentedStore) Get(key string) (string, bool) {
	start := time.Now()
	value, found := s.store.Get(key)
	elapsed := time.Since(start).Nanoseconds()

	if found {
		s.stats.getHits.Add(1)
	} else {
		s.stats.getMisses.Add(1)
	}
	s.stats.getLatencyNs.Add(uint64(elapsed))

	return value, found
}

// Set delegates to the wrapped store and records timing.
func (s *InstrumentedStore) Set(key, value string) error {
	start := time.Now()
	err := s.store.Set(key, value)
	elapsed := time.Since(start).Nanoseconds()

	s.stats.sets.Add(1)
	s.stats.setLatencyNs.Add(uint64(elapsed))

	return err
}

// Delete delegates to the wrapped store and records timing.
func (s *InstrumentedStore) Delete(key string) error {
	start := time.Now()
	err := s.store.Delete(key)
	elapsed := time.Since(start).Nanoseconds()

	s.stats.deletes.Add(1)
	s.stats.deleteLatencyNs.Add(uint64(elapsed))

	return err
}

// Snapshot returns a point-in-time view of the counters.
func (s *InstrumentedStore) Snapshot() Snapshot {
	hits := s.stats.getHits.Load()
	misses := s.stats.getMisses.Load()
	sets := s.stats.sets.Load()
	deletes := s.stats.deletes.Load()

	return Snapshot{
		GetHits:          hits,
		GetMisses:        misses,
		Sets:             sets,
		Deletes:          deletes,
		GetAvgLatency:    avgLatency(s.stats.getLatencyNs.Load(), hits+misses),
		SetAvgLatency:    avgLatency(s.stats.setLatencyNs.Load(), sets),
		DeleteAvgLatency: avgLatency(s.stats.deleteLatencyNs.Load(), deletes),
	}
}

// Reset clears all counters.
func (s *InstrumentedStore) Reset() {
	s.stats.getHits.Store(0)
	s.stats.getMisses.Store(0)
	s.stats.sets.Store(0)
	s.stats.deletes.Store(0)
	s.stats.getLatencyNs.Store(0)
	s.stats.setLatencyNs.Store(0)
	s.stats.deleteLatencyNs.Store(0)
}

func avgLatency(totalNs, count uint64) time.Duration {
	if count == 0 {
		return 0
	}
	return time.Duration(totalNs / count)
}

// Snapshot is a point-in-time view of a wrapped store's counters.
type Snapshot struct {
	GetHits          uint64
	GetMisses        uint64
	Sets             uint64
	Deletes          uint64
	GetAvgLatency    time.Duration
	SetAvgLatency    time.Duration
	DeleteAvgLatency time.Duration
}
