package coord

import (
	"regexp"
	"strings"
)

// Detection patterns, one per notation. The DMS/DM pair patterns tolerate
// whitespace between the degree/minute/second tokens so that this package's
// own formatter output detects back to the same notation.
var (
	// Two signed decimal numbers separated by comma and/or whitespace,
	// nothing else
	decimalPairRe = regexp.MustCompile(`^-?\d+(\.\d+)?[,\s]+-?\d+(\.\d+)?$`)

	// Degree-minute-second group with an explicit hemisphere letter for
	// each axis, latitude first
	dmsPairRe = regexp.MustCompile(`\d+°\s*\d+['′]\s*\d+(\.\d+)?["″]\s*[NS][,;\s]+\d+°\s*\d+['′]\s*\d+(\.\d+)?["″]\s*[EW]`)

	// Degrees plus decimal minutes (no seconds token) with hemisphere
	// letters
	dmPairRe = regexp.MustCompile(`\d+°\s*\d+(\.\d+)?['′]\s*[NS][,;\s]+\d+°\s*\d+(\.\d+)?['′]\s*[EW]`)

	// Bare decimal number plus hemisphere letter per axis, no
	// degree/minute punctuation
	formattedPairRe = regexp.MustCompile(`^\d+(\.\d+)?\s*[NS][,;\s]+\d+(\.\d+)?\s*[EW]$`)

	// Open Location Code: 2-8 leading digits from the base-20 alphabet,
	// a '+', then the precision suffix
	plusCodeRe = regexp.MustCompile(`(?i)^[23456789CFGHJMPQRVWX]{2,8}\+[23456789CFGHJMPQRVWX]{0,7}$`)

	// UTM: zone number, latitude band letter, easting and northing
	utmRe = regexp.MustCompile(`(?i)^\d{1,2}\s*[C-HJ-NP-X]\s+\d+(\.\d+)?\s+\d+(\.\d+)?$`)

	// MGRS: zone + band + 100km square identifier + even-length numeric
	// location
	mgrsRe = regexp.MustCompile(`(?i)^\d{1,2}[C-HJ-NP-X][A-HJ-NP-Z]{2}\d{2,10}$`)
)

// Detect classifies a free-form string into one of the known coordinate
// notations. Detectors run in a fixed priority order, first match wins; the
// three grid notations at the end are recognized but not parseable.
func (c *converter) Detect(text string) Format {
	text = strings.TrimSpace(text)
	if text == "" {
		return FormatUnknown
	}

	if decimalPairRe.MatchString(text) {
		return FormatDecimal
	}
	if dmsPairRe.MatchString(text) {
		return FormatDMS
	}
	if dmPairRe.MatchString(text) {
		return FormatDM
	}
	if formattedPairRe.MatchString(text) {
		return FormatFormatted
	}
	if plusCodeRe.MatchString(text) {
		return FormatPlusCode
	}
	if utmRe.MatchString(text) {
		return FormatUTM
	}
	if mgrsRe.MatchString(text) {
		return FormatMGRS
	}

	return FormatUnknown
}

// IsParseable reports whether the string detects as a notation this package
// can actually parse and decodes to in-range coordinates
func (c *converter) IsParseable(text string) bool {
	format := c.Detect(text)
	if !format.Parseable() {
		return false
	}
	_, _, ok := c.ParseAs(text, format)
	return ok
}
