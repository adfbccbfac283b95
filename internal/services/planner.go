package services

import (
	"context"
	"fmt"
	"log"

	"github.com/levi9999123/photoroute/internal/export"
	"github.com/levi9999123/photoroute/internal/lib/cluster"
	"github.com/levi9999123/photoroute/internal/lib/route"
	"github.com/levi9999123/photoroute/internal/waypoint"
)

// Plan is the outcome of one planning pass over the working set: the
// ordered route, duplicate groups and the encoded track for map display
type Plan struct {
	Route        route.Route
	Stats        route.Stats
	Groups       [][]*waypoint.Waypoint
	EncodedTrack string
}

// Planner orchestrates clustering, route building and document export over
// a waypoint set
type Planner struct {
	clusterer cluster.Clusterer
	builder   route.Builder
	exporter  export.Exporter
}

// NewPlanner creates a planner with the given proximity thresholds in
// meters
func NewPlanner(duplicateMeters, veryCloseMeters float64) *Planner {
	return &Planner{
		clusterer: cluster.NewClustererWithThresholds(duplicateMeters, veryCloseMeters),
		builder:   route.NewBuilder(),
		exporter:  export.NewExporter(),
	}
}

// BuildPlan recomputes duplicate groups and builds a route over the set.
// With optimize set, the order is the greedy nearest-neighbor path from
// startID; otherwise creation order.
func (p *Planner) BuildPlan(ctx context.Context, set *waypoint.Set, optimize bool, startID int64) (Plan, error) {
	if err := ctx.Err(); err != nil {
		return Plan{}, err
	}

	items := set.All()
	groups := p.clusterer.GroupDuplicates(items)
	if len(groups) > 0 {
		log.Printf("Duplicate grouping: %d groups among %d waypoints", len(groups), len(items))
	}

	var (
		built route.Route
		err   error
	)
	if optimize {
		built, err = p.builder.BuildNearestNeighbor(items, startID)
	} else {
		built, err = p.builder.BuildSequential(items)
	}
	if err != nil {
		return Plan{}, fmt.Errorf("build route: %w", err)
	}

	plan := Plan{
		Route:        built,
		Stats:        built.Stats(),
		Groups:       groups,
		EncodedTrack: p.exporter.EncodedTrack(built),
	}

	log.Printf("Route built: %d points, %.2f km total", len(built.Points), plan.Stats.TotalKm)
	return plan, nil
}

// Nearby returns waypoints within radiusKm of the reference waypoint,
// sorted by ascending distance
func (p *Planner) Nearby(set *waypoint.Set, referenceID int64, radiusKm float64) ([]*waypoint.Waypoint, error) {
	reference, ok := set.Get(referenceID)
	if !ok {
		return nil, fmt.Errorf("waypoint %d not found", referenceID)
	}
	if !reference.HasCoords() {
		return nil, fmt.Errorf("waypoint %d has no coordinates", referenceID)
	}
	return p.clusterer.FindNearby(set.All(), reference, radiusKm), nil
}

// Documents renders the plan's route in the requested formats ("gpx",
// "kml", "geojson"), keyed by format name
func (p *Planner) Documents(plan Plan, formats []string) (map[string][]byte, error) {
	documents := make(map[string][]byte, len(formats))

	for _, format := range formats {
		var (
			body []byte
			err  error
		)
		switch format {
		case "gpx":
			body, err = p.exporter.GPX(plan.Route)
		case "kml":
			body, err = p.exporter.KML(plan.Route)
		case "geojson":
			body, err = p.exporter.GeoJSON(plan.Route)
		default:
			return nil, fmt.Errorf("unknown export format %q", format)
		}
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", format, err)
		}
		documents[format] = body
	}

	return documents, nil
}
