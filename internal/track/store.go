package track

import (
	"context"
	"sort"
	"sync"
	"time"
)

// Store maps aircraft addresses to their fused state. All mutation happens
// through WithState so that the update engine, the eviction sweep, and any
// read-only observers (the console monitor) are serialized per store.
type Store struct {
	mu       sync.RWMutex
	aircraft map[uint32]*State
}

// Stats is a point-in-time summary of the store.
type Stats struct {
	Tracked      int
	WithPosition int
	WithAltitude int
}

func NewStore() *Store {
	return &Store{aircraft: make(map[uint32]*State)}
}

// WithState runs fn with the state for addr held under the store lock,
// creating the state on first reference.
func (s *Store) WithState(addr uint32, hex string, now time.Time, fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.aircraft[addr]
	if !ok {
		st = &State{Address: addr, Hex: hex, FirstSeen: now}
		s.aircraft[addr] = st
	}
	st.LastSeen = now
	fn(st)
}

// MarkReported resets the dirty counter after reports for addr have been
// delivered, and bumps the per-aircraft beacon counter.
func (s *Store) MarkReported(addr uint32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.aircraft[addr]; ok {
		st.DirtyCount = 0
		st.Beacons++
	}
}

// Count returns the number of tracked aircraft.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.aircraft)
}

// Stats summarizes the store for the coverage diagnostic and the monitor.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var stats Stats
	stats.Tracked = len(s.aircraft)
	for _, st := range s.aircraft {
		if st.HasPosition() {
			stats.WithPosition++
		}
		if st.HasAltitude() {
			stats.WithAltitude++
		}
	}
	return stats
}

// Snapshot returns value copies of all tracked aircraft, sorted by address,
// so observers never share memory with the engine.
func (s *Store) Snapshot() []State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]State, 0, len(s.aircraft))
	for _, st := range s.aircraft {
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address < out[j].Address })
	return out
}

// Sweep evicts aircraft whose last record is older than ttl and returns the
// number removed.
func (s *Store) Sweep(now time.Time, ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for addr, st := range s.aircraft {
		if now.Sub(st.LastSeen) > ttl {
			delete(s.aircraft, addr)
			removed++
		}
	}
	return removed
}

// StartSweeping runs a periodic eviction sweep until the context is
// cancelled. onEvict is called with the count after any sweep that removed
// aircraft; it may be nil.
func (s *Store) StartSweeping(ctx context.Context, interval, ttl time.Duration, onEvict func(int)) {
	if interval == 0 {
		interval = time.Minute
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.Sweep(time.Now(), ttl); n > 0 && onEvict != nil {
					onEvict(n)
				}
			}
		}
	}()
}
