package export

import (
	"encoding/xml"
	"fmt"

	"github.com/levi9999123/photoroute/internal/lib/coord"
	"github.com/levi9999123/photoroute/internal/lib/route"
)

const gpxNamespace = "http://www.topografix.com/GPX/1/1"

type gpxFile struct {
	XMLName xml.Name  `xml:"gpx"`
	Version string    `xml:"version,attr"`
	Creator string    `xml:"creator,attr"`
	Xmlns   string    `xml:"xmlns,attr"`
	Track   *gpxTrack `xml:"trk,omitempty"`
}

type gpxTrack struct {
	Name    string      `xml:"name"`
	Segment gpxTrackSeg `xml:"trkseg"`
}

type gpxTrackSeg struct {
	Points []gpxTrackPoint `xml:"trkpt"`
}

type gpxTrackPoint struct {
	Lat  float64 `xml:"lat,attr"`
	Lon  float64 `xml:"lon,attr"`
	Name string  `xml:"name,omitempty"`
	Desc string  `xml:"desc,omitempty"`
}

// GPX renders the route as a GPX 1.1 track. GPX carries latitude and
// longitude as separate attributes, so no axis reordering happens here.
func (e *exporter) GPX(r route.Route) ([]byte, error) {
	doc := gpxFile{
		Version: "1.1",
		Creator: "photoroute",
		Xmlns:   gpxNamespace,
	}

	if len(r.Points) > 0 {
		track := &gpxTrack{Name: "Photo route"}
		for _, item := range r.Points {
			desc, err := e.converter.FormatAs(item.Coords.Latitude, item.Coords.Longitude, coord.FormatDMS)
			if err != nil {
				return nil, fmt.Errorf("format waypoint %d: %w", item.ID, err)
			}
			track.Segment.Points = append(track.Segment.Points, gpxTrackPoint{
				Lat:  item.Coords.Latitude,
				Lon:  item.Coords.Longitude,
				Name: item.Name,
				Desc: desc,
			})
		}
		doc.Track = track
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal GPX: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}
