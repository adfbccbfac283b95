package waypoint

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levi9999123/photoroute/internal/lib/geo"
)

func TestAllocator_Monotonic(t *testing.T) {
	alloc := NewAllocator()

	assert.Equal(t, int64(1), alloc.Next())
	assert.Equal(t, int64(2), alloc.Next())
	assert.Equal(t, int64(3), alloc.Next())
}

func TestAllocator_ConcurrentUniqueness(t *testing.T) {
	alloc := NewAllocator()

	const workers = 8
	const perWorker = 100

	var mu sync.Mutex
	seen := make(map[int64]bool)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := alloc.Next()
				mu.Lock()
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker, "every allocated ID must be unique")
}

func TestSet_AddAndOrder(t *testing.T) {
	set := NewSet(NewAllocator())

	first, ok := set.Add("first", &geo.Point{Latitude: 55.7558, Longitude: 37.6173})
	require.True(t, ok)
	second, ok := set.Add("second", nil)
	require.True(t, ok)
	third, ok := set.Add("third", &geo.Point{Latitude: 59.9343, Longitude: 30.3351})
	require.True(t, ok)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, int64(3), third.ID)

	all := set.All()
	require.Len(t, all, 3)
	assert.Equal(t, []*Waypoint{first, second, third}, all)

	located := set.Located()
	assert.Equal(t, []*Waypoint{first, third}, located)
	assert.Equal(t, 3, set.Len())
}

func TestSet_RejectsStrictDuplicates(t *testing.T) {
	set := NewSet(NewAllocator())

	_, ok := set.Add("original", &geo.Point{Latitude: 55.7558, Longitude: 37.6173})
	require.True(t, ok)

	// Same coordinates within key precision
	_, ok = set.Add("re-upload", &geo.Point{Latitude: 55.7558, Longitude: 37.6173})
	assert.False(t, ok)
	_, ok = set.Add("near-identical", &geo.Point{Latitude: 55.7558000004, Longitude: 37.6173})
	assert.False(t, ok)

	// A meaningfully different point still goes in
	_, ok = set.Add("different", &geo.Point{Latitude: 55.7559, Longitude: 37.6173})
	assert.True(t, ok)

	// Coordinate-less waypoints never collide
	_, ok = set.Add("pending a", nil)
	assert.True(t, ok)
	_, ok = set.Add("pending b", nil)
	assert.True(t, ok)

	assert.Equal(t, 4, set.Len())
}

func TestSet_RemoveFreesKey(t *testing.T) {
	set := NewSet(NewAllocator())

	item, ok := set.Add("point", &geo.Point{Latitude: 55.7558, Longitude: 37.6173})
	require.True(t, ok)

	require.True(t, set.Remove(item.ID))
	assert.False(t, set.Remove(item.ID), "second removal reports absence")

	// Removal releases the identity key for re-adding
	_, ok = set.Add("again", &geo.Point{Latitude: 55.7558, Longitude: 37.6173})
	assert.True(t, ok)
}

func TestSet_UpdateRekeysIndex(t *testing.T) {
	set := NewSet(NewAllocator())

	moved, ok := set.Add("moved", &geo.Point{Latitude: 55.7558, Longitude: 37.6173})
	require.True(t, ok)
	other, ok := set.Add("other", &geo.Point{Latitude: 59.9343, Longitude: 30.3351})
	require.True(t, ok)

	require.NoError(t, set.Update(moved.ID, 56.8389, 60.6057))
	assert.Equal(t, 56.8389, moved.Coords.Latitude)

	// The old identity key is released for a new point
	_, ok = set.Add("reclaimed", &geo.Point{Latitude: 55.7558, Longitude: 37.6173})
	assert.True(t, ok)

	// The new coordinates are registered for duplicate rejection
	_, ok = set.Add("dupe of moved", &geo.Point{Latitude: 56.8389, Longitude: 60.6057})
	assert.False(t, ok)

	// Edits may not land on another registered point, but re-confirming a
	// waypoint's own coordinates is fine
	assert.Error(t, set.Update(moved.ID, other.Coords.Latitude, other.Coords.Longitude))
	assert.NoError(t, set.Update(moved.ID, 56.8389, 60.6057))
}

func TestSet_Update_Errors(t *testing.T) {
	set := NewSet(NewAllocator())

	item, _ := set.Add("point", &geo.Point{Latitude: 55.7558, Longitude: 37.6173})

	assert.Error(t, set.Update(999, 55.0, 37.0), "unknown waypoint")
	assert.Error(t, set.Update(item.ID, 95.0, 37.0), "out-of-range edit is rejected")
	assert.Equal(t, 55.7558, item.Coords.Latitude, "failed edit leaves coordinates unchanged")

	// A rejected edit must not break the existing index entry
	_, ok := set.Add("dupe", &geo.Point{Latitude: 55.7558, Longitude: 37.6173})
	assert.False(t, ok)
}

func TestSet_Update_PendingWaypoint(t *testing.T) {
	set := NewSet(NewAllocator())

	pending, _ := set.Add("pending", nil)
	require.NoError(t, set.Update(pending.ID, 55.7558, 37.6173))
	require.True(t, pending.HasCoords())

	// The assigned coordinates join the duplicate index
	_, ok := set.Add("dupe", &geo.Point{Latitude: 55.7558, Longitude: 37.6173})
	assert.False(t, ok)
}

func TestSet_Get(t *testing.T) {
	set := NewSet(NewAllocator())

	item, _ := set.Add("point", nil)

	found, ok := set.Get(item.ID)
	require.True(t, ok)
	assert.Equal(t, item, found)

	_, ok = set.Get(999)
	assert.False(t, ok)
}

func TestWaypoint_SetCoords(t *testing.T) {
	w := &Waypoint{ID: 1, Name: "edited"}
	assert.False(t, w.HasCoords())

	require.NoError(t, w.SetCoords(55.7558, 37.6173))
	require.True(t, w.HasCoords())

	old := w.Coords
	require.NoError(t, w.SetCoords(59.9343, 30.3351))
	assert.NotSame(t, old, w.Coords, "coordinates are replaced, not mutated")
	assert.Equal(t, 55.7558, old.Latitude, "previous point is untouched")

	// Out-of-range edits are rejected and leave the waypoint unchanged
	assert.Error(t, w.SetCoords(95.0, 37.0))
	assert.Equal(t, 59.9343, w.Coords.Latitude)
}

func TestKey_Precision(t *testing.T) {
	assert.Equal(t, Key(55.7558, 37.6173), Key(55.75580000004, 37.61730000004))
	assert.NotEqual(t, Key(55.7558, 37.6173), Key(55.7559, 37.6173))
	assert.Equal(t, "55.755800|37.617300", Key(55.7558, 37.6173))
}
