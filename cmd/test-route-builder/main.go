package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/levi9999123/photoroute/internal/export"
	"github.com/levi9999123/photoroute/internal/lib/coord"
	"github.com/levi9999123/photoroute/internal/lib/geo"
	"github.com/levi9999123/photoroute/internal/lib/route"
	"github.com/levi9999123/photoroute/internal/waypoint"
)

func main() {
	fs := flag.NewFlagSet("test-route-builder", flag.ExitOnError)
	optimize := fs.Bool("optimize", false, "Use the nearest-neighbor heuristic instead of input order")
	start := fs.Int64("start", 0, "Waypoint ID to start the optimized route from")
	decode := fs.String("decode", "", "Decode an encoded track and print its points instead of building a route")
	fs.Parse(os.Args[1:])

	if *decode != "" {
		points, err := export.DecodeTrack(*decode)
		if err != nil {
			fmt.Printf("Decode failed: %v\n", err)
			os.Exit(1)
		}
		for i, point := range points {
			fmt.Printf("  %d: %.5f, %.5f\n", i+1, point.Latitude, point.Longitude)
		}
		return
	}

	if fs.NArg() == 0 {
		fmt.Println("Usage: test-route-builder [flags] <coordinate string>...")
		fmt.Println()
		fmt.Println("Examples:")
		fmt.Println(`  test-route-builder --optimize "55.7558, 37.6173" "59.9343, 30.3351" "56.8389, 60.6057"`)
		fmt.Println(`  test-route-builder --decode "_p~iF~ps|U_ulLnnqC"`)
		os.Exit(1)
	}

	converter := coord.NewConverter()
	set := waypoint.NewSet(waypoint.NewAllocator())

	for i, text := range fs.Args() {
		lat, lon, ok := converter.Parse(text)
		if !ok {
			fmt.Printf("Skipping %q: not a recognized coordinate string\n", text)
			continue
		}
		point, err := geo.NewPoint(lat, lon)
		if err != nil {
			fmt.Printf("Skipping %q: %v\n", text, err)
			continue
		}
		if _, added := set.Add(fmt.Sprintf("point-%d", i+1), &point); !added {
			fmt.Printf("Skipping %q: duplicate of an earlier point\n", text)
		}
	}

	builder := route.NewBuilder()

	var (
		built route.Route
		err   error
	)
	if *optimize {
		built, err = builder.BuildNearestNeighbor(set.All(), *start)
	} else {
		built, err = builder.BuildSequential(set.All())
	}
	if err != nil {
		fmt.Printf("Route build failed: %v\n", err)
		os.Exit(1)
	}

	order := make([]string, len(built.Points))
	for i, item := range built.Points {
		order[i] = item.Name
	}
	fmt.Printf("Order: %s\n", strings.Join(order, " -> "))

	for _, segment := range built.Segments {
		fmt.Printf("  %s -> %s: %.2f km\n", segment.From.Name, segment.To.Name, segment.Meters/1000)
	}

	stats := built.Stats()
	fmt.Printf("Total: %.2f km over %d segments (min %.2f, max %.2f, avg %.2f)\n",
		stats.TotalKm, stats.Segments, stats.MinSegmentKm, stats.MaxSegmentKm, stats.AvgSegmentKm)

	exporter := export.NewExporter()
	if encoded := exporter.EncodedTrack(built); encoded != "" {
		fmt.Printf("Encoded track: %s\n", encoded)
	}
}
