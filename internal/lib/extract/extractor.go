package extract

import (
	"regexp"
	"strconv"

	"github.com/levi9999123/photoroute/internal/lib/coord"
	"github.com/levi9999123/photoroute/internal/lib/geo"
)

// Extraction patterns, unanchored: these search substrings of noisy OCR
// output rather than classifying whole strings. OCR text is inconsistent
// across providers and languages (Russian and English labels both occur), so
// the cascade runs from most specific to most speculative and a well-formed
// decimal pair is never mis-read as a DMS fragment.
var (
	decimalPairRe = regexp.MustCompile(`([+-]?\d+\.\d+)\s*[,;]\s*([+-]?\d+\.\d+)`)

	latLabelRe = regexp.MustCompile(`(?i)(?:широта|latitude|шир|lat)[^0-9+\-]*([+-]?\d+(?:\.\d+)?)`)
	lonLabelRe = regexp.MustCompile(`(?i)(?:долгота|longitude|долг|lon)[^0-9+\-]*([+-]?\d+(?:\.\d+)?)`)

	suffixedLatRe = regexp.MustCompile(`(\d+\.?\d*)\s*([NS])`)
	suffixedLonRe = regexp.MustCompile(`(\d+\.?\d*)\s*([EW])`)

	bareNumberRe = regexp.MustCompile(`\d{1,3}\.?\d{1,8}`)
)

// Extractor recovers a decimal coordinate pair from OCR engine output,
// either plain text or the vendor's nested response document. An absent
// result (ok false) is the expected outcome for images without embedded
// coordinate text, not an error.
type Extractor interface {
	// Scan free text for an embedded coordinate pair
	FromText(text string) (lat, lon float64, ok bool)

	// Scan a structured vendor response for an embedded coordinate pair
	FromDocument(doc Node) (lat, lon float64, ok bool)

	// Decode raw vendor JSON and scan it
	FromJSON(data []byte) (lat, lon float64, ok bool)
}

// extractor implements the Extractor interface
type extractor struct {
	converter coord.Converter
}

// NewExtractor creates a new text coordinate extractor
func NewExtractor() Extractor {
	return &extractor{converter: coord.NewConverter()}
}

// FromText runs the extraction cascade over free text, first match wins:
// decimal pair, labelled fields, DMS substring, DM substring,
// hemisphere-suffixed decimals, then the bare-number fallback.
func (e *extractor) FromText(text string) (float64, float64, bool) {
	if text == "" {
		return 0, 0, false
	}

	if lat, lon, ok := matchDecimalPair(text); ok {
		return lat, lon, true
	}
	if lat, lon, ok := matchLabelledFields(text); ok {
		return lat, lon, true
	}
	// The DMS and DM parsers already work on substrings, reuse them
	if lat, lon, ok := e.converter.ParseAs(text, coord.FormatDMS); ok {
		return lat, lon, true
	}
	if lat, lon, ok := e.converter.ParseAs(text, coord.FormatDM); ok {
		return lat, lon, true
	}
	if lat, lon, ok := matchSuffixedDecimals(text); ok {
		return lat, lon, true
	}
	return matchBareNumbers(text)
}

// FromJSON decodes a raw vendor payload and scans it
func (e *extractor) FromJSON(data []byte) (float64, float64, bool) {
	return e.FromDocument(ParseDocument(data))
}

// FromDocument scans a structured vendor response. The well-known
// "google"."text" path is tried first, then a "blocks" array, then every
// remaining field depth-first; fields of unexpected shape are skipped.
func (e *extractor) FromDocument(doc Node) (float64, float64, bool) {
	switch {
	case doc.IsString():
		return e.FromText(doc.Text())
	case doc.IsObject():
		// Vendor fast path: the aggregated text field
		if google, ok := doc.Field("google"); ok {
			if text, ok := google.Field("text"); ok && text.IsString() {
				if lat, lon, found := e.FromText(text.Text()); found {
					return lat, lon, true
				}
			} else if lat, lon, found := e.FromDocument(google); found {
				return lat, lon, true
			}
		}

		// Per-block text fragments
		if blocks, ok := doc.Field("blocks"); ok && blocks.IsArray() {
			for _, block := range blocks.Items() {
				if lat, lon, found := e.FromDocument(block); found {
					return lat, lon, true
				}
			}
		}

		// Generic depth-first scan over the remaining fields
		for _, name := range doc.FieldNames() {
			if name == "google" || name == "blocks" {
				continue
			}
			child, _ := doc.Field(name)
			if lat, lon, found := e.FromDocument(child); found {
				return lat, lon, true
			}
		}
	case doc.IsArray():
		for _, item := range doc.Items() {
			if lat, lon, found := e.FromDocument(item); found {
				return lat, lon, true
			}
		}
	}

	return 0, 0, false
}

// matchDecimalPair finds a signed decimal pair anywhere in the string
func matchDecimalPair(text string) (float64, float64, bool) {
	match := decimalPairRe.FindStringSubmatch(text)
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

	if !geo.IsValidLatLon(lat, lon) {
		return 0, 0, false
	}
	return lat, lon, true
}

// matchLabelledFields finds independently located latitude and longitude
// labels, each followed by a number
func matchLabelledFields(text string) (float64, float64, bool) {
	latMatch := latLabelRe.FindStringSubmatch(text)
	lonMatch := lonLabelRe.FindStringSubmatch(text)
	if latMatch == nil || lonMatch == nil {
		return 0, 0, false
	}

	lat, err := strconv.ParseFloat(latMatch[1], 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(lonMatch[1], 64)
	if err != nil {
		return 0, 0, false
	}

	if !geo.IsValidLatLon(lat, lon) {
		return 0, 0, false
	}
	return lat, lon, true
}

// matchSuffixedDecimals finds bare decimals with hemisphere letters, sign
// applied per letter
func matchSuffixedDecimals(text string) (float64, float64, bool) {
	latMatch := suffixedLatRe.FindStringSubmatch(text)
	lonMatch := suffixedLonRe.FindStringSubmatch(text)
	if latMatch == nil || lonMatch == nil {
		return 0, 0, false
	}

	lat, err := strconv.ParseFloat(latMatch[1], 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err := strconv.ParseFloat(lonMatch[1], 64)
	if err != nil {
		return 0, 0, false
	}

	if latMatch[2] == "S" {
		lat = -lat
	}
	if lonMatch[2] == "W" {
		lon = -lon
	}

	if !geo.IsValidLatLon(lat, lon) {
		return 0, 0, false
	}
	return lat, lon, true
}

// matchBareNumbers is the last-resort rule: the first two bare numeric
// substrings, assigned lat/lon if their ranges allow it, or swapped if the
// reverse assignment fits instead
func matchBareNumbers(text string) (float64, float64, bool) {
	matches := bareNumberRe.FindAllString(text, 2)
	if len(matches) < 2 {
		return 0, 0, false
	}

	first, err := strconv.ParseFloat(matches[0], 64)
	if err != nil {
		return 0, 0, false
	}
	second, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, 0, false
	}

	if fitsLatitude(first) && fitsLongitude(second) {
		return first, second, true
	}
	if fitsLatitude(second) && fitsLongitude(first) {
		return second, first, true
	}
	return 0, 0, false
}

func fitsLatitude(v float64) bool { return v >= -90 && v <= 90 }

func fitsLongitude(v float64) bool { return v >= -180 && v <= 180 }
