package coord

import (
	"errors"
	"fmt"
	"math"

	"github.com/levi9999123/photoroute/internal/lib/geo"
)

// FormatAs renders a decimal pair in the given notation. Each of the four
// parseable notations is an exact inverse of its parse function: parsing the
// output recovers the input within floating rounding.
func (c *converter) FormatAs(lat, lon float64, format Format) (string, error) {
	if !geo.IsValidLatLon(lat, lon) {
		return "", errors.New("invalid coordinates: latitude must be [-90, 90], longitude must be [-180, 180]")
	}

	switch format {
	case FormatDecimal:
		return fmt.Sprintf("%.6f, %.6f", lat, lon), nil
	case FormatDMS:
		return fmt.Sprintf("%s, %s", formatAxisDMS(lat, "N", "S"), formatAxisDMS(lon, "E", "W")), nil
	case FormatDM:
		return fmt.Sprintf("%s, %s", formatAxisDM(lat, "N", "S"), formatAxisDM(lon, "E", "W")), nil
	case FormatFormatted:
		return fmt.Sprintf("%.6f %s, %.6f %s",
			math.Abs(lat), hemisphere(lat, "N", "S"),
			math.Abs(lon), hemisphere(lon, "E", "W")), nil
	default:
		return "", fmt.Errorf("format %s is not supported for formatting", format)
	}
}

// formatAxisDMS renders one axis as degrees, minutes and seconds with a
// hemisphere letter, e.g. `55° 7' 24.4416" N`
func formatAxisDMS(value float64, positive, negative string) string {
	abs := math.Abs(value)
	degrees := math.Floor(abs)
	minutes := math.Floor((abs - degrees) * 60)
	seconds := ((abs-degrees)*60 - minutes) * 60

	return fmt.Sprintf("%d° %d' %.4f\" %s",
		int(degrees), int(minutes), seconds, hemisphere(value, positive, negative))
}

// formatAxisDM renders one axis as degrees and decimal minutes with a
// hemisphere letter, e.g. "55° 7.40736' N"
func formatAxisDM(value float64, positive, negative string) string {
	abs := math.Abs(value)
	degrees := math.Floor(abs)
	minutes := (abs - degrees) * 60

	return fmt.Sprintf("%d° %.5f' %s",
		int(degrees), minutes, hemisphere(value, positive, negative))
}

// hemisphere picks the hemisphere letter from the sign of the value
func hemisphere(value float64, positive, negative string) string {
	if value < 0 {
		return negative
	}
	return positive
}
