package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"

	"github.com/levi9999123/photoroute/internal/config"
	"github.com/levi9999123/photoroute/internal/logging"
	"github.com/levi9999123/photoroute/internal/services"
	"github.com/levi9999123/photoroute/internal/waypoint"
)

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file")
	optimize := flag.Bool("optimize", false, "Order the route with the nearest-neighbor heuristic instead of upload order")
	startID := flag.Int64("start", 0, "Waypoint ID to start the optimized route from")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Println("Usage: photoroute [flags] <input file>...")
		fmt.Println()
		fmt.Println("Each input file is either OCR/free text (one photo per file) or a")
		fmt.Println("vendor OCR response document (.json). Recovered coordinates are")
		fmt.Println("ordered into a route and exported as GPX/KML/GeoJSON.")
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Environment bootstrap; missing .env is fine
	_ = godotenv.Load()

	appConfig, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logging.Setup(appConfig.Logging.Level, appConfig.Logging.Format)

	set := waypoint.NewSet(waypoint.NewAllocator())
	pipeline := services.NewExtractionPipeline(set, appConfig.Pipeline.BatchSize)
	planner := services.NewPlanner(appConfig.Thresholds.DuplicateMeters, appConfig.Thresholds.VeryCloseMeters)

	inputs, err := readInputs(flag.Args())
	if err != nil {
		log.Fatalf("Failed to read inputs: %v", err)
	}

	ctx := context.Background()
	registered, err := pipeline.ProcessBatch(ctx, inputs)
	if err != nil {
		log.Fatalf("Extraction failed: %v", err)
	}

	for _, item := range registered {
		if item.HasCoords() {
			slog.Info("located", "id", item.ID, "name", item.Name,
				"lat", item.Coords.Latitude, "lon", item.Coords.Longitude)
		} else {
			slog.Info("no coordinates found", "id", item.ID, "name", item.Name)
		}
	}

	plan, err := planner.BuildPlan(ctx, set, *optimize, *startID)
	if err != nil {
		log.Fatalf("Planning failed: %v", err)
	}

	for _, group := range plan.Groups {
		names := make([]string, len(group))
		for i, member := range group {
			names[i] = member.Name
		}
		slog.Warn("possible duplicates", "base", group[0].Name, "members", strings.Join(names, ", "))
	}

	documents, err := planner.Documents(plan, appConfig.Export.Formats)
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	for format, body := range documents {
		path := filepath.Join(appConfig.Export.Directory, appConfig.Export.BaseName+"."+format)
		if err := os.WriteFile(path, body, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", path, err)
		}
		slog.Info("wrote export", "path", path, "bytes", len(body))
	}

	fmt.Printf("Route: %d points, %.2f km total\n", len(plan.Route.Points), plan.Stats.TotalKm)
	if plan.EncodedTrack != "" {
		fmt.Printf("Encoded track: %s\n", plan.EncodedTrack)
	}
}

// readInputs loads each file as a PhotoInput. Files with a .json extension
// are treated as vendor OCR response documents, everything else as plain
// text.
func readInputs(paths []string) ([]services.PhotoInput, error) {
	var inputs []services.PhotoInput

	for _, path := range paths {
		body, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}

		input := services.PhotoInput{Name: filepath.Base(path)}
		if strings.EqualFold(filepath.Ext(path), ".json") {
			input.Document = body
		} else {
			input.Text = string(body)
		}
		inputs = append(inputs, input)
	}

	return inputs, nil
}
