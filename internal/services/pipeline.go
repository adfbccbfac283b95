package services

import (
	"context"
	"log"
	"sync"

	"github.com/levi9999123/photoroute/internal/lib/coord"
	"github.com/levi9999123/photoroute/internal/lib/extract"
	"github.com/levi9999123/photoroute/internal/lib/geo"
	"github.com/levi9999123/photoroute/internal/waypoint"
)

// PhotoInput is one uploaded photo's extractable material: OCR text, a raw
// vendor response document, or both. Either field may be empty - photos
// without embedded coordinate text are the common case.
type PhotoInput struct {
	Name     string
	Text     string
	Document []byte
}

// ExtractionPipeline turns batches of photo inputs into registered
// waypoints. Extraction runs concurrently in bounded batches (the upload
// pipeline's throughput control); registration is sequential so waypoint IDs
// follow input order.
type ExtractionPipeline struct {
	extractor extract.Extractor
	converter coord.Converter
	set       *waypoint.Set
	batchSize int
}

// NewExtractionPipeline creates a pipeline registering into the given
// waypoint set, processing batchSize inputs concurrently
func NewExtractionPipeline(set *waypoint.Set, batchSize int) *ExtractionPipeline {
	if batchSize < 1 {
		batchSize = 1
	}
	return &ExtractionPipeline{
		extractor: extract.NewExtractor(),
		converter: coord.NewConverter(),
		set:       set,
		batchSize: batchSize,
	}
}

// ProcessBatch extracts coordinates from every input and registers the
// results. Inputs that yield no coordinates still become waypoints (with
// absent coordinates); strict duplicates of already-registered points are
// skipped.
func (p *ExtractionPipeline) ProcessBatch(ctx context.Context, inputs []PhotoInput) ([]*waypoint.Waypoint, error) {
	extracted := make([]*geo.Point, len(inputs))

	for start := 0; start < len(inputs); start += p.batchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		end := start + p.batchSize
		if end > len(inputs) {
			end = len(inputs)
		}

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				extracted[i] = p.extract(inputs[i])
			}(i)
		}
		wg.Wait()
	}

	var registered []*waypoint.Waypoint
	located := 0
	for i, input := range inputs {
		item, added := p.set.Add(input.Name, extracted[i])
		if !added {
			log.Printf("Skipping %s: exact duplicate of an existing point", input.Name)
			continue
		}
		if item.HasCoords() {
			located++
		}
		registered = append(registered, item)
	}

	log.Printf("Processed %d inputs: %d with coordinates, %d registered", len(inputs), located, len(registered))
	return registered, nil
}

// extract recovers coordinates from one input, most direct source first:
// a parseable coordinate string, then the free-text cascade, then the
// structured vendor document. A nil result means no coordinates were found,
// which is not an error.
func (p *ExtractionPipeline) extract(input PhotoInput) *geo.Point {
	if input.Text != "" {
		if lat, lon, ok := p.converter.Parse(input.Text); ok {
			return &geo.Point{Latitude: lat, Longitude: lon}
		}
		if lat, lon, ok := p.extractor.FromText(input.Text); ok {
			return &geo.Point{Latitude: lat, Longitude: lon}
		}
	}

	if len(input.Document) > 0 {
		if lat, lon, ok := p.extractor.FromJSON(input.Document); ok {
			return &geo.Point{Latitude: lat, Longitude: lon}
		}
	}

	return nil
}
