package cluster

import (
	"sort"

	"github.com/levi9999123/photoroute/internal/lib/geo"
	"github.com/levi9999123/photoroute/internal/waypoint"
)

// Default proximity thresholds in meters. Group membership uses the
// duplicate threshold; the very-close display flag uses its own wider
// threshold.
const (
	DefaultDuplicateThresholdMeters = 10.0
	DefaultVeryCloseThresholdMeters = 25.0
)

// Clusterer groups duplicate waypoints and searches for nearby ones.
// GroupDuplicates and FindNearby annotate the waypoints they match
// (VeryClose, DistanceKm, NearbyCount) - a documented mutation, recomputed
// from scratch whenever the working set changes.
type Clusterer interface {
	// Partition located waypoints into seed-relative duplicate groups
	GroupDuplicates(items []*waypoint.Waypoint) [][]*waypoint.Waypoint

	// Return waypoints within radiusKm of the reference, sorted by
	// ascending distance, reference excluded
	FindNearby(items []*waypoint.Waypoint, reference *waypoint.Waypoint, radiusKm float64) []*waypoint.Waypoint
}

// clusterer implements the Clusterer interface
type clusterer struct {
	geoUtils           geo.GeoUtils
	duplicateThreshold float64 // meters
	veryCloseThreshold float64 // meters
}

// NewClusterer creates a Clusterer with the default thresholds
func NewClusterer() Clusterer {
	return NewClustererWithThresholds(DefaultDuplicateThresholdMeters, DefaultVeryCloseThresholdMeters)
}

// NewClustererWithThresholds creates a Clusterer with explicit duplicate and
// very-close thresholds in meters
func NewClustererWithThresholds(duplicateMeters, veryCloseMeters float64) Clusterer {
	return &clusterer{
		geoUtils:           geo.NewGeoUtils(),
		duplicateThreshold: duplicateMeters,
		veryCloseThreshold: veryCloseMeters,
	}
}

// GroupDuplicates partitions located waypoints into groups whose members are
// within the duplicate threshold OF THE GROUP'S SEED. This is a single
// left-to-right scan, not transitive clustering: membership is always
// measured against the first unprocessed item that seeds the group, so if A
// is near B and B is near C but A is not near C, the result is {A, B}.
// Waypoints found within the very-close threshold of a seed get their
// VeryClose flag set. Only groups with at least two members are returned.
func (c *clusterer) GroupDuplicates(items []*waypoint.Waypoint) [][]*waypoint.Waypoint {
	located := locatedOnly(items)

	// Recomputed from scratch on every pass: a flag set on an earlier pass
	// must not survive once its neighbor leaves the working set
	for _, item := range located {
		item.VeryClose = false
	}

	processed := make([]bool, len(located))
	var groups [][]*waypoint.Waypoint

	for i, seed := range located {
		if processed[i] {
			continue
		}

		group := []*waypoint.Waypoint{seed}
		var memberIdx []int

		for j := i + 1; j < len(located); j++ {
			if processed[j] {
				continue
			}

			distance, err := c.geoUtils.PointToPoint(*seed.Coords, *located[j].Coords)
			if err != nil {
				continue
			}

			if distance < c.veryCloseThreshold {
				located[j].VeryClose = true
			}
			if distance <= c.duplicateThreshold {
				group = append(group, located[j])
				memberIdx = append(memberIdx, j)
			}
		}

		// Seed is processed regardless of whether a group formed
		processed[i] = true

		if len(group) >= 2 {
			seed.VeryClose = true
			for _, j := range memberIdx {
				processed[j] = true
			}
			groups = append(groups, group)
		}
	}

	return groups
}

// FindNearby returns waypoints within radiusKm of the reference, each
// annotated with its distance in kilometers, sorted ascending. The reference
// itself and coordinate-less waypoints are excluded; the reference's
// NearbyCount is updated to the number of matches.
func (c *clusterer) FindNearby(items []*waypoint.Waypoint, reference *waypoint.Waypoint, radiusKm float64) []*waypoint.Waypoint {
	if !reference.HasCoords() {
		return nil
	}

	var matches []*waypoint.Waypoint
	for _, item := range items {
		if item.ID == reference.ID || !item.HasCoords() {
			continue
		}

		meters, err := c.geoUtils.PointToPoint(*reference.Coords, *item.Coords)
		if err != nil {
			continue
		}

		km := geo.Kilometers(meters)
		if km <= radiusKm {
			item.DistanceKm = km
			matches = append(matches, item)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].DistanceKm < matches[j].DistanceKm
	})

	reference.NearbyCount = len(matches)
	return matches
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
