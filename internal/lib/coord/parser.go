package coord

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/levi9999123/photoroute/internal/lib/geo"
)

// Capture-group variants of the detection patterns, used for value recovery
var (
	decimalCaptureRe   = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)[,\s]+(-?\d+(?:\.\d+)?)$`)
	dmsLatCaptureRe    = regexp.MustCompile(`(\d+)°\s*(\d+)['′]\s*(\d+(?:\.\d+)?)["″]\s*([NS])`)
	dmsLonCaptureRe    = regexp.MustCompile(`(\d+)°\s*(\d+)['′]\s*(\d+(?:\.\d+)?)["″]\s*([EW])`)
	dmLatCaptureRe     = regexp.MustCompile(`(\d+)°\s*(\d+(?:\.\d+)?)['′]\s*([NS])`)
	dmLonCaptureRe     = regexp.MustCompile(`(\d+)°\s*(\d+(?:\.\d+)?)['′]\s*([EW])`)
	formattedCaptureRe = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*([NS])[,;\s]+(\d+(?:\.\d+)?)\s*([EW])$`)
)

// converter implements the Converter interface
type converter struct{}

// NewConverter creates a new coordinate notation converter
func NewConverter() Converter {
	return &converter{}
}

// Parse detects the notation of the string and decodes it. A string that
// matches no notation is not an error: it is free text the caller should
// hand to the extractor instead.
func (c *converter) Parse(text string) (float64, float64, bool) {
	return c.ParseAs(text, c.Detect(text))
}

// ParseAs decodes the string assuming a specific notation. Out-of-range
// decoded values are rejected, never clamped.
func (c *converter) ParseAs(text string, format Format) (float64, float64, bool) {
	text = strings.TrimSpace(text)

	switch format {
	case FormatDecimal:
		return parseDecimal(text)
	case FormatDMS:
		return parseDMS(text)
	case FormatDM:
		return parseDM(text)
	case FormatFormatted:
		return parseFormatted(text)
	default:
		// Plus Code, UTM and MGRS detect but do not parse yet
		return 0, 0, false
	}
}

func parseDecimal(text string) (float64, float64, bool) {
	match := decimalCaptureRe.FindStringSubmatch(text)
	if match == nil {
		return 0, 0, false
	}

	lat, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(match[2], 64)
	if err != nil {
		return 0, 0, false
	}

	return checkRange(lat, lon)
}

func parseDMS(text string) (float64, float64, bool) {
	latMatch := dmsLatCaptureRe.FindStringSubmatch(text)
	lonMatch := dmsLonCaptureRe.FindStringSubmatch(text)
	if latMatch == nil || lonMatch == nil {
		return 0, 0, false
	}

	lat, ok := dmsToDecimal(latMatch[1], latMatch[2], latMatch[3], latMatch[4])
	if !ok {
		return 0, 0, false
	}
	lon, ok := dmsToDecimal(lonMatch[1], lonMatch[2], lonMatch[3], lonMatch[4])
	if !ok {
		return 0, 0, false
	}

	return checkRange(lat, lon)
}

func parseDM(text string) (float64, float64, bool) {
	latMatch := dmLatCaptureRe.FindStringSubmatch(text)
	lonMatch := dmLonCaptureRe.FindStringSubmatch(text)
	if latMatch == nil || lonMatch == nil {
		return 0, 0, false
	}

	lat, ok := dmsToDecimal(latMatch[1], latMatch[2], "0", latMatch[3])
	if !ok {
		return 0, 0, false
	}
	lon, ok := dmsToDecimal(lonMatch[1], lonMatch[2], "0", lonMatch[3])
	if !ok {
		return 0, 0, false
	}

	return checkRange(lat, lon)
}

func parseFormatted(text string) (float64, float64, bool) {
	match := formattedCaptureRe.FindStringSubmatch(text)
	if match == nil {
		return 0, 0, false
	}

	lat, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(match[3], 64)
	if err != nil {
		return 0, 0, false
	}

	lat = applyHemisphere(lat, match[2])
	lon = applyHemisphere(lon, match[4])

	return checkRange(lat, lon)
}

// dmsToDecimal converts degree/minute/second strings to a signed decimal
// degree: degrees + minutes/60 + seconds/3600, sign flipped for the S and W
// hemispheres
func dmsToDecimal(degStr, minStr, secStr, hemisphere string) (float64, bool) {
	deg, err := strconv.ParseFloat(degStr, 64)
	if err != nil {
		return 0, false
	}
	min, err := strconv.ParseFloat(minStr, 64)
	if err != nil {
		return 0, false
	}
	sec, err := strconv.ParseFloat(secStr, 64)
	if err != nil {
		return 0, false
	}

	value := deg + min/60 + sec/3600
	return applyHemisphere(value, hemisphere), true
}

// applyHemisphere flips the sign for southern and western hemisphere letters
func applyHemisphere(value float64, hemisphere string) float64 {
	switch strings.ToUpper(hemisphere) {
	case "S", "W":
		return -value
	default:
		return value
	}
}

// checkRange rejects decoded values outside the valid lat/lon ranges
func checkRange(lat, lon float64) (float64, float64, bool) {
	if !geo.IsValidLatLon(lat, lon) {
		return 0, 0, false
	}
	return lat, lon, true
}
