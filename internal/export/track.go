package export

import (
	"errors"

	"github.com/twpayne/go-polyline"

	"github.com/levi9999123/photoroute/internal/lib/geo"
	"github.com/levi9999123/photoroute/internal/lib/route"
)

// EncodedTrack encodes the route path as a Google polyline string. Map
// collaborators consume this directly; an empty route encodes to "".
func (e *exporter) EncodedTrack(r route.Route) string {
	if len(r.Points) == 0 {
		return ""
	}

	coords := make([][]float64, len(r.Points))
	for i, item := range r.Points {
		coords[i] = []float64{item.Coords.Latitude, item.Coords.Longitude}
	}
	return string(polyline.EncodeCoords(coords))
}

// DecodeTrack decodes a Google polyline string back to a point sequence
func DecodeTrack(encoded string) ([]geo.Point, error) {
	if encoded == "" {
		return nil, errors.New("encoded polyline string is empty")
	}

	coords, _, err := polyline.DecodeCoords([]byte(encoded))
	if err != nil {
		return nil, errors.New("failed to decode polyline: " + err.Error())
	}

	points := make([]geo.Point, len(coords))
	for i, c := range coords {
		points[i] = geo.Point{Latitude: c[0], Longitude: c[1]}

		// Validate decoded coordinates
		if !geo.IsValidCoordinate(points[i]) {
			return nil, errors.New("decoded polyline contains invalid coordinates")
		}
	}

	return points, nil
}
