package export

import (
	"bytes"
	"fmt"

	kml "github.com/twpayne/go-kml/v2"

	"github.com/levi9999123/photoroute/internal/lib/coord"
	"github.com/levi9999123/photoroute/internal/lib/route"
)

// KML renders the route as a KML document: one Placemark per waypoint plus a
// LineString for the path. KML positions are lon,lat,alt - the axis order
// reversal relative to GPX happens here.
func (e *exporter) KML(r route.Route) ([]byte, error) {
	documentChildren := []kml.Element{kml.Name("Photo route")}

	var path []kml.Coordinate
	for _, item := range r.Points {
		desc, err := e.converter.FormatAs(item.Coords.Latitude, item.Coords.Longitude, coord.FormatFormatted)
		if err != nil {
			return nil, fmt.Errorf("format waypoint %d: %w", item.ID, err)
		}

		position := kml.Coordinate{
			Lon: item.Coords.Longitude,
			Lat: item.Coords.Latitude,
		}
		path = append(path, position)

		documentChildren = append(documentChildren, kml.Placemark(
			kml.Name(item.Name),
			kml.Description(desc),
			kml.Point(kml.Coordinates(position)),
		))
	}

	if len(path) >= 2 {
		documentChildren = append(documentChildren, kml.Placemark(
			kml.Name("Path"),
			kml.LineString(
				kml.Tessellate(true),
				kml.Coordinates(path...),
			),
		))
	}

	doc := kml.KML(kml.Document(documentChildren...))

	var buf bytes.Buffer
	if err := doc.WriteIndent(&buf, "", "  "); err != nil {
		return nil, fmt.Errorf("marshal KML: %w", err)
	}
	return buf.Bytes(), nil
}
