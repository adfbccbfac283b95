package export

import (
	"github.com/levi9999123/photoroute/internal/lib/coord"
	"github.com/levi9999123/photoroute/internal/lib/route"
)

// Exporter renders a built route as interchange documents. Axis order
// differs per format (GPX is lat/lon attributes, KML and GeoJSON are
// lon,lat positions) and is handled here, never by the coordinate core.
type Exporter interface {
	// GPX document with one <trkpt lat=".." lon=".."> per route point
	GPX(r route.Route) ([]byte, error)

	// KML document with <coordinates>lon,lat,0</coordinates> placemarks
	// and the route path as a LineString
	KML(r route.Route) ([]byte, error)

	// GeoJSON FeatureCollection with [lon, lat] positions
	GeoJSON(r route.Route) ([]byte, error)

	// Google encoded polyline of the route path, for map collaborators
	EncodedTrack(r route.Route) string
}

// exporter implements the Exporter interface
type exporter struct {
	converter coord.Converter
}

// NewExporter creates a new route exporter
func NewExporter() Exporter {
	return &exporter{converter: coord.NewConverter()}
}
