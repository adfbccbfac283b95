package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/levi9999123/photoroute/internal/lib/coord"
	"github.com/levi9999123/photoroute/internal/lib/extract"
	"github.com/levi9999123/photoroute/internal/lib/geo"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	converter := coord.NewConverter()

	switch command {
	case "detect":
		handleDetect(converter)
	case "parse":
		handleParse(converter)
	case "format":
		handleFormat(converter)
	case "extract":
		handleExtract()
	case "distance":
		handleDistance(converter)
	case "help":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func handleDetect(converter coord.Converter) {
	fs := flag.NewFlagSet("detect", flag.ExitOnError)
	text := fs.String("text", "", "Coordinate string to classify")
	fs.Parse(os.Args[2:])

	if *text == "" {
		fmt.Println("Example usage:")
		fmt.Println(`  test-coord-formats detect --text "55.7558, 37.6173"`)
		os.Exit(1)
	}

	format := converter.Detect(*text)
	fmt.Printf("Format: %s (parseable: %v)\n", format, format.Parseable())
}

func handleParse(converter coord.Converter) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	text := fs.String("text", "", "Coordinate string to parse")
	fs.Parse(os.Args[2:])

	if *text == "" {
		fmt.Println("Example usage:")
		fmt.Println(`  test-coord-formats parse --text "55° 7' 24.4416\" N, 37° 7' 24.4416\" E"`)
		os.Exit(1)
	}

	lat, lon, ok := converter.Parse(*text)
	if !ok {
		fmt.Println("No coordinates recognized")
		os.Exit(1)
	}
	fmt.Printf("Latitude:  %.6f\nLongitude: %.6f\n", lat, lon)
}

func handleFormat(converter coord.Converter) {
	fs := flag.NewFlagSet("format", flag.ExitOnError)
	lat := fs.Float64("lat", 0, "Latitude in decimal degrees")
	lon := fs.Float64("lon", 0, "Longitude in decimal degrees")
	fs.Parse(os.Args[2:])

	formats := []coord.Format{coord.FormatDecimal, coord.FormatDMS, coord.FormatDM, coord.FormatFormatted}
	for _, format := range formats {
		text, err := converter.FormatAs(*lat, *lon, format)
		if err != nil {
			fmt.Printf("%-9s error: %v\n", format, err)
			continue
		}
		fmt.Printf("%-9s %s\n", format, text)
	}
}

func handleExtract() {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	text := fs.String("text", "", "Free text to scan for coordinates")
	jsonPath := fs.String("json", "", "Path to a vendor OCR response document")
	fs.Parse(os.Args[2:])

	extractor := extract.NewExtractor()

	switch {
	case *text != "":
		lat, lon, ok := extractor.FromText(*text)
		printExtraction(lat, lon, ok)
	case *jsonPath != "":
		body, err := os.ReadFile(*jsonPath)
		if err != nil {
			fmt.Printf("Failed to read %s: %v\n", *jsonPath, err)
			os.Exit(1)
		}
		lat, lon, ok := extractor.FromJSON(body)
		printExtraction(lat, lon, ok)
	default:
		fmt.Println("Example usage:")
		fmt.Println(`  test-coord-formats extract --text "Широта: 55.7558, Долгота: 37.6173"`)
		fmt.Println("  test-coord-formats extract --json response.json")
		os.Exit(1)
	}
}

func handleDistance(converter coord.Converter) {
	fs := flag.NewFlagSet("distance", flag.ExitOnError)
	from := fs.String("from", "", "First coordinate string")
	to := fs.String("to", "", "Second coordinate string")
	fs.Parse(os.Args[2:])

	if *from == "" || *to == "" {
		fmt.Println("Example usage:")
		fmt.Println(`  test-coord-formats distance --from "55.7558, 37.6173" --to "59.9343, 30.3351"`)
		os.Exit(1)
	}

	lat1, lon1, ok := converter.Parse(*from)
	if !ok {
		fmt.Printf("No coordinates recognized in %q\n", *from)
		os.Exit(1)
	}
	lat2, lon2, ok := converter.Parse(*to)
	if !ok {
		fmt.Printf("No coordinates recognized in %q\n", *to)
		os.Exit(1)
	}

	meters, err := geo.NewGeoUtils().DistanceFromCoords(lat1, lon1, lat2, lon2)
	if err != nil {
		fmt.Printf("Distance failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Distance: %.1f m (%.3f km)\n", meters, geo.Kilometers(meters))
}

func printExtraction(lat, lon float64, ok bool) {
	if !ok {
		fmt.Println("No coordinates found (expected outcome for most images)")
		return
	}
	fmt.Printf("Latitude:  %.6f\nLongitude: %.6f\n", lat, lon)
}

func printUsage() {
	fmt.Println("test-coord-formats - manual harness for the coordinate core")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  detect   Classify a string into a coordinate notation")
	fmt.Println("  parse    Parse a coordinate string to decimal degrees")
	fmt.Println("  format   Render a decimal pair in every supported notation")
	fmt.Println("  extract  Scan free text or a vendor document for coordinates")
	fmt.Println("  distance Great-circle distance between two coordinate strings")
	fmt.Println("  help     Show this message")
}
