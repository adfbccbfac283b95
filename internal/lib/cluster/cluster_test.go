package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levi9999123/photoroute/internal/lib/geo"
	"github.com/levi9999123/photoroute/internal/waypoint"
)

// wp builds a test waypoint; 0.00001 degrees of latitude is roughly 1.1 m
func wp(id int64, lat, lon float64) *waypoint.Waypoint {
	return &waypoint.Waypoint{
		ID:     id,
		Name:   "test",
		Coords: &geo.Point{Latitude: lat, Longitude: lon},
	}
}

func TestClusterer_GroupDuplicates(t *testing.T) {
	c := NewClusterer()

	a := wp(1, 55.0, 37.0)
	b := wp(2, 55.00004, 37.0) // ~4.4 m from a
	d := wp(3, 55.00018, 37.0) // ~20 m from a: very close but not duplicate
	e := wp(4, 55.01, 37.0)    // ~1.1 km away

	groups := c.GroupDuplicates([]*waypoint.Waypoint{a, b, d, e})

	require.Len(t, groups, 1)
	assert.Equal(t, []*waypoint.Waypoint{a, b}, groups[0])

	assert.True(t, a.VeryClose, "seed of a formed group is flagged")
	assert.True(t, b.VeryClose)
	assert.True(t, d.VeryClose, "within 25 m of the seed")
	assert.False(t, e.VeryClose)
}

func TestClusterer_GroupDuplicates_SeedRelative(t *testing.T) {
	c := NewClusterer()

	// a-b and b-c are each within 10 m, a-c is not. Membership is measured
	// against the seed, so c stays outside the group.
	a := wp(1, 55.0, 37.0)
	b := wp(2, 55.00008, 37.0) // ~8.9 m from a
	d := wp(3, 55.00016, 37.0) // ~17.8 m from a, ~8.9 m from b

	groups := c.GroupDuplicates([]*waypoint.Waypoint{a, b, d})

	require.Len(t, groups, 1)
	assert.Equal(t, []*waypoint.Waypoint{a, b}, groups[0])
	assert.True(t, d.VeryClose, "still within 25 m of the first seed")
}

func TestClusterer_GroupDuplicates_SkipsCoordless(t *testing.T) {
	c := NewClusterer()

	a := wp(1, 55.0, 37.0)
	b := wp(2, 55.00004, 37.0)
	pending := &waypoint.Waypoint{ID: 3, Name: "no coords yet"}

	groups := c.GroupDuplicates([]*waypoint.Waypoint{a, pending, b})

	require.Len(t, groups, 1)
	assert.Len(t, groups[0], 2)
	assert.False(t, pending.VeryClose)
}

func TestClusterer_GroupDuplicates_NoGroups(t *testing.T) {
	c := NewClusterer()

	a := wp(1, 55.0, 37.0)
	b := wp(2, 56.0, 37.0)

	assert.Empty(t, c.GroupDuplicates([]*waypoint.Waypoint{a, b}))
	assert.Empty(t, c.GroupDuplicates(nil))
	assert.False(t, a.VeryClose)
	assert.False(t, b.VeryClose)
}

func TestClusterer_GroupDuplicates_RecomputesFlags(t *testing.T) {
	c := NewClusterer()

	a := wp(1, 55.0, 37.0)
	b := wp(2, 55.00004, 37.0) // ~4.4 m from a

	groups := c.GroupDuplicates([]*waypoint.Waypoint{a, b})
	require.Len(t, groups, 1)
	require.True(t, a.VeryClose)
	require.True(t, b.VeryClose)

	// After the neighbor is removed from the working set, a new pass must
	// clear the stale flag
	groups = c.GroupDuplicates([]*waypoint.Waypoint{a})
	assert.Empty(t, groups)
	assert.False(t, a.VeryClose, "no duplicates remain, flag is recomputed")
}

func TestClusterer_FindNearby(t *testing.T) {
	c := NewClusterer()

	ref := wp(1, 55.0, 37.0)
	far := wp(2, 55.02, 37.0)     // ~2.2 km, outside the radius
	at900 := wp(3, 55.0081, 37.0) // ~900 m
	at50 := wp(4, 55.00045, 37.0) // ~50 m
	at100 := wp(5, 55.0009, 37.0) // ~100 m
	pending := &waypoint.Waypoint{ID: 6, Name: "no coords"}

	items := []*waypoint.Waypoint{ref, far, at900, at50, at100, pending}
	nearby := c.FindNearby(items, ref, 1.0)

	// Sorted ascending, reference and coordinate-less points excluded
	require.Equal(t, []*waypoint.Waypoint{at50, at100, at900}, nearby)
	assert.Equal(t, 3, ref.NearbyCount)

	assert.InDelta(t, 0.050, at50.DistanceKm, 0.002)
	assert.InDelta(t, 0.100, at100.DistanceKm, 0.002)
	assert.InDelta(t, 0.900, at900.DistanceKm, 0.005)
}

func TestClusterer_FindNearby_CoordlessReference(t *testing.T) {
	c := NewClusterer()

	ref := &waypoint.Waypoint{ID: 1, Name: "no coords"}
	other := wp(2, 55.0, 37.0)

	assert.Nil(t, c.FindNearby([]*waypoint.Waypoint{ref, other}, ref, 1.0))
}

func TestClusterer_CustomThresholds(t *testing.T) {
	// Widen the duplicate threshold to 30 m: the 20 m pair now groups
	c := NewClustererWithThresholds(30.0, 50.0)

	a := wp(1, 55.0, 37.0)
	b := wp(2, 55.00018, 37.0)

	groups := c.GroupDuplicates([]*waypoint.Waypoint{a, b})
	require.Len(t, groups, 1)
	assert.Len(t, groups[0], 2)
}
