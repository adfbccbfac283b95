package coord

// Format identifies a recognized coordinate notation
type Format int

const (
	FormatUnknown   Format = iota
	FormatDecimal          // "55.7558, 37.6173"
	FormatDMS              // `55° 7' 24.4416" N, 37° 7' 24.4416" E`
	FormatDM               // "55° 7.40736' N, 37° 7.40736' E"
	FormatFormatted        // "55.755800 N, 37.617300 E"
	FormatPlusCode         // "9G7VQJ44+9G" (detect-only)
	FormatUTM              // "37U 412000 6180000" (detect-only)
	FormatMGRS             // "37UCB1200080000" (detect-only)
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatDecimal:
		return "decimal"
	case FormatDMS:
		return "dms"
	case FormatDM:
		return "dm"
	case FormatFormatted:
		return "formatted"
	case FormatPlusCode:
		return "plus_code"
	case FormatUTM:
		return "utm"
	case FormatMGRS:
		return "mgrs"
	default:
		return "unknown"
	}
}

// Parseable reports whether the format has a parse and format function.
// Plus Code, UTM and MGRS are detected for future extension and currently
// yield a failed parse.
func (f Format) Parseable() bool {
	switch f {
	case FormatDecimal, FormatDMS, FormatDM, FormatFormatted:
		return true
	default:
		return false
	}
}

// Converter interface defines coordinate notation detection, parsing and
// formatting. Parse failures are an expected outcome (the ok result is
// false), never an error: most free-form strings carry no coordinates.
type Converter interface {
	// Classify a free-form string into one of the known notations
	Detect(text string) Format

	// Detect the notation, then parse; ok is false if undetectable,
	// unparseable or out of the valid lat/lon ranges
	Parse(text string) (lat, lon float64, ok bool)

	// Parse assuming a specific notation, skipping detection
	ParseAs(text string, format Format) (lat, lon float64, ok bool)

	// Render a decimal pair in the given notation; errors on invalid
	// coordinates or a detect-only format
	FormatAs(lat, lon float64, format Format) (string, error)

	// Report whether the string parses as coordinates in some supported
	// notation (used to enable/disable manual-entry submission)
	IsParseable(text string) bool
}

// NewConverter is implemented in parser.go
