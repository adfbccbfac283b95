package export

import (
	"encoding/json"
	"fmt"

	"github.com/levi9999123/photoroute/internal/lib/coord"
	"github.com/levi9999123/photoroute/internal/lib/route"
)

type geoJSONFeatureCollection struct {
	Type     string           `json:"type"`
	Features []geoJSONFeature `json:"features"`
}

type geoJSONFeature struct {
	Type       string          `json:"type"`
	Geometry   geoJSONGeometry `json:"geometry"`
	Properties map[string]any  `json:"properties"`
}

type geoJSONGeometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

// GeoJSON renders the route as a FeatureCollection: one Point feature per
// waypoint and a LineString feature for the path. GeoJSON positions are
// [lon, lat] arrays; each point's properties carry the four human-readable
// notations for display and export templating.
func (e *exporter) GeoJSON(r route.Route) ([]byte, error) {
	collection := geoJSONFeatureCollection{
		Type:     "FeatureCollection",
		Features: []geoJSONFeature{},
	}

	var path [][]float64
	for _, item := range r.Points {
		lat := item.Coords.Latitude
		lon := item.Coords.Longitude

		properties := map[string]any{
			"id":   item.ID,
			"name": item.Name,
		}
		for _, format := range []coord.Format{coord.FormatDecimal, coord.FormatDMS, coord.FormatDM, coord.FormatFormatted} {
			text, err := e.converter.FormatAs(lat, lon, format)
			if err != nil {
				return nil, fmt.Errorf("format waypoint %d: %w", item.ID, err)
			}
			properties[format.String()] = text
		}

		position := []float64{lon, lat}
		path = append(path, position)

		collection.Features = append(collection.Features, geoJSONFeature{
			Type: "Feature",
			Geometry: geoJSONGeometry{
				Type:        "Point",
				Coordinates: position,
			},
			Properties: properties,
		})
	}

	if len(path) >= 2 {
		collection.Features = append(collection.Features, geoJSONFeature{
			Type: "Feature",
			Geometry: geoJSONGeometry{
				Type:        "LineString",
				Coordinates: path,
			},
			Properties: map[string]any{
				"name":     "Photo route",
				"total_km": r.TotalKm(),
			},
		})
	}

	return json.MarshalIndent(collection, "", "  ")
}
