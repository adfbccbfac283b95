package waypoint

import (
	"fmt"
	"math"
	"strconv"

	"github.com/levi9999123/photoroute/internal/lib/geo"
)

// Waypoint is an application-level located item: an uploaded photo or a
// manually entered point. Coords is nil while no coordinates have been
// recovered; once set it is only ever replaced with a fresh Point, never
// mutated in place. DistanceKm, VeryClose and NearbyCount are derived
// annotations maintained by the clustering and search code.
type Waypoint struct {
	ID     int64      `json:"id"`
	Name   string     `json:"name"`
	Coords *geo.Point `json:"coords,omitempty"`

	DistanceKm  float64 `json:"distance_km,omitempty"`
	VeryClose   bool    `json:"very_close,omitempty"`
	NearbyCount int     `json:"nearby_count,omitempty"`
}

// HasCoords reports whether a coordinate pair has been recovered
func (w *Waypoint) HasCoords() bool {
	return w != nil && w.Coords != nil
}

// SetCoords replaces the waypoint's coordinates with a new validated Point.
// Waypoints registered in a Set must be edited through Set.Update instead,
// so the strict-duplicate index is rekeyed.
func (w *Waypoint) SetCoords(lat, lon float64) error {
	point, err := geo.NewPoint(lat, lon)
	if err != nil {
		return err
	}
	w.Coords = &point
	return nil
}

// keyPrecision is the number of decimal places coordinates are normalized to
// when constructing a strict-duplicate identity key. Six places is roughly
// 0.1m, well inside the duplicate-merge threshold.
const keyPrecision = 6

// Key returns a stable identity key for a coordinate pair, used to reject
// exact re-uploads of the same point
func Key(lat, lon float64) string {
	latStr := strconv.FormatFloat(roundTo(lat, keyPrecision), 'f', keyPrecision, 64)
	lonStr := strconv.FormatFloat(roundTo(lon, keyPrecision), 'f', keyPrecision, 64)
	return fmt.Sprintf("%s|%s", latStr, lonStr)
}

// roundTo rounds v to 'places' decimal digits using standard rounding
func roundTo(v float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(v*p) / p
}
