package route

import (
	"github.com/levi9999123/photoroute/internal/waypoint"
)

// Segment is a pair of consecutive route points plus the great-circle
// distance between them. Derived, never stored.
type Segment struct {
	From   *waypoint.Waypoint `json:"from"`
	To     *waypoint.Waypoint `json:"to"`
	Meters float64            `json:"meters"`
}

// Route is an ordered path over located waypoints with per-segment and total
// distances
type Route struct {
	Points      []*waypoint.Waypoint `json:"points"`
	Segments    []Segment            `json:"segments"`
	TotalMeters float64              `json:"total_meters"`
}

// Stats summarizes a route's segment distances in kilometers
type Stats struct {
	TotalKm      float64 `json:"total_km"`
	MinSegmentKm float64 `json:"min_segment_km"`
	MaxSegmentKm float64 `json:"max_segment_km"`
	AvgSegmentKm float64 `json:"avg_segment_km"`
	Segments     int     `json:"segments"`
}

// Builder orders located waypoints into a path. Waypoints without
// coordinates are skipped; both strategies are pure over their inputs.
type Builder interface {
	// Stable order by waypoint ID (upload/creation order)
	BuildSequential(items []*waypoint.Waypoint) (Route, error)

	// Greedy nearest-neighbor path from the waypoint with startID (or the
	// first located waypoint when startID is not present). A heuristic TSP
	// approximation: ties go to the first candidate encountered, the
	// result is not guaranteed optimal.
	BuildNearestNeighbor(items []*waypoint.Waypoint, startID int64) (Route, error)
}

// NewBuilder is implemented in builder.go
