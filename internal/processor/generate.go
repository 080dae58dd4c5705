// Package processor builds random feature collections and writes them to disk.
package processor

import (
	"math/rand/v2"
	"sync"

	"github.com/woozymasta/randomgeojson/internal/geo"
	"github.com/woozymasta/randomgeojson/internal/properties"
	"github.com/woozymasta/randomgeojson/internal/random"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// chunkSize is the number of features drawn from one random source.
// It is fixed so the output for a seed does not depend on the worker count.
const chunkSize = 256

// Request describes a feature collection to generate.
type Request struct {
	Length        int
	NumProperties int
	Kind          geo.Kind
	System        geo.System
	Seed          uint64
	Workers       int
	// H3Resolution tags features with the H3 cell of their first
	// position. NoH3 disables tagging.
	H3Resolution int
}

// Validate checks the numeric fields of the request.
func (r Request) Validate() error {
	if r.Length < 0 {
		return geo.InvalidArgumentf("length must be zero or more, got %d", r.Length)
	}
	if r.NumProperties < 0 {
		return geo.InvalidArgumentf("number of properties must be zero or more, got %d", r.NumProperties)
	}
	if r.H3Resolution != NoH3 && (r.H3Resolution < 0 || r.H3Resolution > maxH3Resolution) {
		return geo.InvalidArgumentf("h3 resolution must be between 0 and %d, got %d", maxH3Resolution, r.H3Resolution)
	}

	return nil
}

type chunk struct {
	source     *rand.ChaCha8
	start, end int
	index      int
}

// Generate draws req.Length features. Chunks of features are spread over
// req.Workers goroutines, each chunk drawing from its own random source.
func Generate(req Request) (geo.GeoJSONFeatureCollection, error) {
	if err := req.Validate(); err != nil {
		return geo.GeoJSONFeatureCollection{}, err
	}

	chunkCount := (req.Length + chunkSize - 1) / chunkSize
	sources := random.Split(random.NewSource(req.Seed), chunkCount)

	workers := req.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > chunkCount {
		workers = chunkCount
	}

	log.Debug().
		Int("features", req.Length).
		Int("chunks", chunkCount).
		Int("workers", workers).
		Str("geometry", req.Kind.String()).
		Str("crs", req.System.String()).
		Msg("Generating features")

	features := make([]geo.GeoJSONFeature, req.Length)
	errs := make([]error, chunkCount)

	jobs := make(chan chunk, chunkCount)
	for i := 0; i < chunkCount; i++ {
		end := min((i+1)*chunkSize, req.Length)
		jobs <- chunk{index: i, start: i * chunkSize, end: end, source: sources[i]}
	}
	close(jobs)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for c := range jobs {
				errs[c.index] = generateChunk(req, c.source, features[c.start:c.end])
				log.Trace().
					Int("chunk", c.index).
					Int("features", c.end-c.start).
					Msg("Chunk generated")
			}
		}()
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return geo.GeoJSONFeatureCollection{}, err
		}
	}

	return geo.GeoJSONFeatureCollection{Type: "FeatureCollection", Features: features}, nil
}

// generateChunk fills out using only src.
func generateChunk(req Request, src *rand.ChaCha8, out []geo.GeoJSONFeature) error {
	gen := geo.NewGenerator(req.System, rand.New(src))
	props := properties.New(src)

	for i := range out {
		id, err := uuid.NewRandomFromReader(src)
		if err != nil {
			return geo.WrapInvalidArgument(err, "failed to generate feature id")
		}

		g := gen.Random(req.Kind)
		p := props.Properties(req.NumProperties)
		if req.H3Resolution != NoH3 {
			p[h3Property] = cellOf(g, req.H3Resolution)
		}

		out[i] = geo.NewFeature(id.String(), g, p)
	}

	return nil
}
