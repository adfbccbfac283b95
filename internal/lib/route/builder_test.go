package route

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/levi9999123/photoroute/internal/lib/geo"
	"github.com/levi9999123/photoroute/internal/waypoint"
)

func wp(id int64, name string, lat, lon float64) *waypoint.Waypoint {
	return &waypoint.Waypoint{
		ID:     id,
		Name:   name,
		Coords: &geo.Point{Latitude: lat, Longitude: lon},
	}
}

func TestBuilder_BuildSequential(t *testing.T) {
	b := NewBuilder()

	moscow := wp(3, "moscow", 55.7558, 37.6173)
	spb := wp(1, "spb", 59.9343, 30.3351)
	kazan := wp(2, "kazan", 55.7887, 49.1221)

	// Input order is arbitrary, output order is by ID
	built, err := b.BuildSequential([]*waypoint.Waypoint{moscow, spb, kazan})
	require.NoError(t, err)

	require.Len(t, built.Points, 3)
	assert.Equal(t, []*waypoint.Waypoint{spb, kazan, moscow}, built.Points)

	require.Len(t, built.Segments, 2)
	assert.Equal(t, spb, built.Segments[0].From)
	assert.Equal(t, kazan, built.Segments[0].To)
	assert.InDelta(t, built.Segments[0].Meters+built.Segments[1].Meters, built.TotalMeters, 0.001)
}

func TestBuilder_BuildSequential_SkipsCoordless(t *testing.T) {
	b := NewBuilder()

	located := wp(1, "located", 55.7558, 37.6173)
	pending := &waypoint.Waypoint{ID: 2, Name: "pending"}

	built, err := b.BuildSequential([]*waypoint.Waypoint{pending, located})
	require.NoError(t, err)

	require.Len(t, built.Points, 1)
	assert.Equal(t, located, built.Points[0])
	assert.Empty(t, built.Segments)
	assert.Zero(t, built.TotalMeters)
}

func TestBuilder_BuildNearestNeighbor(t *testing.T) {
	b := NewBuilder()

	// Three points on a line of longitude: greedy from the middle walks to
	// the near end first, then jumps to the far end
	south := wp(1, "south", 55.0, 37.0)
	middle := wp(2, "middle", 55.4, 37.0)
	north := wp(3, "north", 56.0, 37.0)

	built, err := b.BuildNearestNeighbor([]*waypoint.Waypoint{south, middle, north}, 2)
	require.NoError(t, err)

	require.Len(t, built.Points, 3)
	assert.Equal(t, []*waypoint.Waypoint{middle, south, north}, built.Points)
}

func TestBuilder_BuildNearestNeighbor_DefaultStart(t *testing.T) {
	b := NewBuilder()

	first := wp(5, "first", 55.0, 37.0)
	second := wp(6, "second", 55.1, 37.0)

	// Unknown start ID falls back to the first located waypoint
	built, err := b.BuildNearestNeighbor([]*waypoint.Waypoint{first, second}, 999)
	require.NoError(t, err)

	require.Len(t, built.Points, 2)
	assert.Equal(t, first, built.Points[0])
}

func TestBuilder_BuildNearestNeighbor_ShorterThanSequential(t *testing.T) {
	b := NewBuilder()

	// Sequential order zig-zags, the greedy path does not
	a := wp(1, "a", 55.0, 37.0)
	far := wp(2, "far", 56.0, 37.0)
	near := wp(3, "near", 55.1, 37.0)

	sequential, err := b.BuildSequential([]*waypoint.Waypoint{a, far, near})
	require.NoError(t, err)

	greedy, err := b.BuildNearestNeighbor([]*waypoint.Waypoint{a, far, near}, 1)
	require.NoError(t, err)

	assert.Less(t, greedy.TotalMeters, sequential.TotalMeters)
}

func TestBuilder_EmptyAndSingle(t *testing.T) {
	b := NewBuilder()

	built, err := b.BuildSequential(nil)
	require.NoError(t, err)
	assert.Empty(t, built.Points)

	built, err = b.BuildNearestNeighbor(nil, 1)
	require.NoError(t, err)
	assert.Empty(t, built.Points)

	only := wp(1, "only", 55.0, 37.0)
	built, err = b.BuildNearestNeighbor([]*waypoint.Waypoint{only}, 1)
	require.NoError(t, err)
	require.Len(t, built.Points, 1)
	assert.Empty(t, built.Segments)
}

func TestRoute_Stats(t *testing.T) {
	b := NewBuilder()

	a := wp(1, "a", 55.0, 37.0)
	c := wp(2, "b", 55.1, 37.0) // ~11.1 km
	d := wp(3, "c", 55.3, 37.0) // ~22.2 km further

	built, err := b.BuildSequential([]*waypoint.Waypoint{a, c, d})
	require.NoError(t, err)

	stats := built.Stats()
	assert.Equal(t, 2, stats.Segments)
	assert.InDelta(t, 33.4, stats.TotalKm, 0.2)
	assert.InDelta(t, 11.1, stats.MinSegmentKm, 0.1)
	assert.InDelta(t, 22.2, stats.MaxSegmentKm, 0.2)
	assert.InDelta(t, 16.7, stats.AvgSegmentKm, 0.1)

	empty := Route{}
	assert.Zero(t, empty.Stats().TotalKm)
	assert.Zero(t, empty.Stats().Segments)
}
