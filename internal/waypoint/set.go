package waypoint

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/levi9999123/photoroute/internal/lib/geo"
)

// Allocator hands out waypoint identities as a single process-wide sequence.
// IDs are monotonically increasing so that creation order can be recovered
// by sorting; the atomic counter makes concurrent allocation safe.
type Allocator struct {
	counter atomic.Int64
}

// NewAllocator creates an identity allocator starting at 1
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next returns the next waypoint ID
func (a *Allocator) Next() int64 {
	return a.counter.Add(1)
}

// Set is the session-owned working collection of waypoints. It preserves
// insertion order, rejects strict duplicates of already-present coordinates
// and is safe for the concurrent additions the extraction pipeline performs.
type Set struct {
	mu    sync.Mutex
	alloc *Allocator
	items []*Waypoint
	keys  map[string]int64
}

// NewSet creates an empty waypoint set using the given identity allocator
func NewSet(alloc *Allocator) *Set {
	return &Set{
		alloc: alloc,
		keys:  make(map[string]int64),
	}
}

// Add creates a waypoint, with or without coordinates. Returns false without
// adding when coords duplicates an already-present point exactly (same
// coordinates within key precision).
func (s *Set) Add(name string, coords *geo.Point) (*Waypoint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var key string
	if coords != nil {
		key = Key(coords.Latitude, coords.Longitude)
		if _, exists := s.keys[key]; exists {
			return nil, false
		}
	}

	item := &Waypoint{
		ID:     s.alloc.Next(),
		Name:   name,
		Coords: coords,
	}
	if coords != nil {
		s.keys[key] = item.ID
	}
	s.items = append(s.items, item)
	return item, true
}

// Update replaces a registered waypoint's coordinates and rekeys the
// strict-duplicate index: the old identity key is released and the new one
// registered. Fails when the waypoint is absent, the coordinates are out of
// range, or they duplicate another registered point.
func (s *Set) Update(id int64, lat, lon float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var target *Waypoint
	for _, item := range s.items {
		if item.ID == id {
			target = item
			break
		}
	}
	if target == nil {
		return fmt.Errorf("waypoint %d not found", id)
	}

	point, err := geo.NewPoint(lat, lon)
	if err != nil {
		return err
	}

	key := Key(lat, lon)
	if owner, exists := s.keys[key]; exists && owner != id {
		return fmt.Errorf("coordinates duplicate waypoint %d", owner)
	}

	if target.Coords != nil {
		delete(s.keys, Key(target.Coords.Latitude, target.Coords.Longitude))
	}
	target.Coords = &point
	s.keys[key] = id
	return nil
}

// Remove deletes a waypoint by ID, returning whether it was present
func (s *Set) Remove(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID != id {
			continue
		}
		if item.Coords != nil {
			delete(s.keys, Key(item.Coords.Latitude, item.Coords.Longitude))
		}
		s.items = append(s.items[:i], s.items[i+1:]...)
		return true
	}
	return false
}

// Get looks up a waypoint by ID
func (s *Set) Get(id int64) (*Waypoint, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return nil, false
}

// All returns the waypoints in insertion order
func (s *Set) All() []*Waypoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Waypoint, len(s.items))
	copy(out, s.items)
	return out
}

// Located returns only waypoints that carry coordinates, in insertion order
func (s *Set) Located() []*Waypoint {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*Waypoint
	for _, item := range s.items {
		if item.HasCoords() {
			out = append(out, item)
		}
	}
	return out
}

// Len returns the number of waypoints in the set
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
