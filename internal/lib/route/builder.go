package route

import (
	"fmt"
	"math"
	"sort"

	"github.com/levi9999123/photoroute/internal/lib/geo"
	"github.com/levi9999123/photoroute/internal/waypoint"
)

// builder implements the Builder interface
type builder struct {
	geoUtils geo.GeoUtils
}

// NewBuilder creates a new route builder
func NewBuilder() Builder {
	return &builder{geoUtils: geo.NewGeoUtils()}
}

// BuildSequential orders located waypoints by ID, which is creation order.
// No distance computation influences the ordering.
func (b *builder) BuildSequential(items []*waypoint.Waypoint) (Route, error) {
	located := locatedOnly(items)

	ordered := make([]*waypoint.Waypoint, len(located))
	copy(ordered, located)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ID < ordered[j].ID
	})

	return b.assemble(ordered)
}

// BuildNearestNeighbor builds a greedy path: start from the designated
// waypoint, repeatedly append the nearest unvisited waypoint to the current
// one until none remain.
func (b *builder) BuildNearestNeighbor(items []*waypoint.Waypoint, startID int64) (Route, error) {
	located := locatedOnly(items)
	if len(located) == 0 {
		return Route{}, nil
	}

	// Designated start, or the first located waypoint when absent
	startIdx := 0
	for i, item := range located {
		if item.ID == startID {
			startIdx = i
			break
		}
	}

	current := located[startIdx]
	remaining := make([]*waypoint.Waypoint, 0, len(located)-1)
	remaining = append(remaining, located[:startIdx]...)
	remaining = append(remaining, located[startIdx+1:]...)

	ordered := []*waypoint.Waypoint{current}
	for len(remaining) > 0 {
		points := make([]geo.Point, len(remaining))
		for i, item := range remaining {
			points[i] = *item.Coords
		}

		idx, _, err := b.geoUtils.NearestPointIndex(*current.Coords, points)
		if err != nil {
			return Route{}, fmt.Errorf("nearest-neighbor step failed: %w", err)
		}

		current = remaining[idx]
		ordered = append(ordered, current)
		remaining = append(remaining[:idx], remaining[idx+1:]...)
	}

	return b.assemble(ordered)
}

// assemble computes per-segment and total distances once the order is fixed
func (b *builder) assemble(ordered []*waypoint.Waypoint) (Route, error) {
	result := Route{Points: ordered}

	for i := 0; i+1 < len(ordered); i++ {
		meters, err := b.geoUtils.PointToPoint(*ordered[i].Coords, *ordered[i+1].Coords)
		if err != nil {
			return Route{}, fmt.Errorf("segment distance failed: %w", err)
		}
		result.Segments = append(result.Segments, Segment{
			From:   ordered[i],
			To:     ordered[i+1],
			Meters: meters,
		})
		result.TotalMeters += meters
	}

	return result, nil
}

// TotalKm returns the route's total length in kilometers
func (r Route) TotalKm() float64 {
	return geo.Kilometers(r.TotalMeters)
}

// Stats summarizes segment distances in kilometers
func (r Route) Stats() Stats {
	stats := Stats{
		TotalKm:  r.TotalKm(),
		Segments: len(r.Segments),
	}
	if len(r.Segments) == 0 {
		return stats
	}

	stats.MinSegmentKm = math.Inf(1)
	for _, segment := range r.Segments {
		km := geo.Kilometers(segment.Meters)
		if km < stats.MinSegmentKm {
			stats.MinSegmentKm = km
		}
		if km > stats.MaxSegmentKm {
			stats.MaxSegmentKm = km
		}
	}
	stats.AvgSegmentKm = stats.TotalKm / float64(len(r.Segments))
	return stats
}

// locatedOnly filters to waypoints that carry coordinates, preserving order
func locatedOnly(items []*waypoint.Waypoint) []*waypoint.Waypoint {
	var out []*waypoint.Waypoint
	for _, item := range items {
		if item.HasCoords() {
			out = append(out, item)
		}
	}
	return out
}
