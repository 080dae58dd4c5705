package geo

import (
	"math"
	"math/rand/v2"
)

// Rand is the random source used by Generator. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// globalRand draws from the process-wide math/rand/v2 source.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

const (
	minLinePoints    = 2
	minPolygonPoints = 3
	// exclusive upper bound of drawn positions for lines and polygon rings
	maxDrawnPoints = 10
)

// Generator draws random geometries inside the bounds of one coordinate system.
// A Generator is not safe for concurrent use unless its Rand is.
type Generator struct {
	rng    Rand
	bounds Bounds
	system System
}

// NewGenerator returns a Generator for system. A nil rng uses the
// process-wide source.
func NewGenerator(system System, rng Rand) *Generator {
	if rng == nil {
		rng = globalRand{}
	}

	return &Generator{
		rng:    rng,
		bounds: system.Bounds(),
		system: system,
	}
}

// System returns the coordinate system the generator draws from.
func (g *Generator) System() System {
	return g.system
}

// Point draws a single position.
func (g *Generator) Point() Point {
	return Point(g.coordinate())
}

// LineString draws 2 to 9 positions.
func (g *Generator) LineString() LineString {
	return LineString(g.coordinates(g.count(minLinePoints)))
}

// Polygon draws a ring of 3 to 9 positions and closes it with a copy of the first.
func (g *Generator) Polygon() Polygon {
	ring := g.coordinates(g.count(minPolygonPoints))
	ring = append(ring, ring[0])

	return Polygon{ring}
}

// Random draws a geometry of the given kind. KindAll picks one of
// Point, LineString and Polygon uniformly.
func (g *Generator) Random(kind Kind) Geometry {
	if kind == KindAll {
		kind = KindPoint + Kind(g.rng.IntN(3))
	}

	switch kind {
	case KindLineString:
		return g.LineString()
	case KindPolygon:
		return g.Polygon()
	default:
		return g.Point()
	}
}

// count returns a value in [lo, maxDrawnPoints).
func (g *Generator) count(lo int) int {
	return lo + g.rng.IntN(maxDrawnPoints-lo)
}

func (g *Generator) coordinates(n int) []Coordinate {
	coords := make([]Coordinate, n, n+1)
	for i := range coords {
		coords[i] = g.coordinate()
	}

	return coords
}

func (g *Generator) coordinate() Coordinate {
	return Coordinate{
		uniform(g.rng, g.bounds.MinLon, g.bounds.MaxLon),
		uniform(g.rng, g.bounds.MinLat, g.bounds.MaxLat),
	}
}

// uniform returns a value in [lo, hi). lo+f*(hi-lo) can round up to hi
// for f close to 1, such values are pulled back below hi.
func uniform(rng Rand, lo, hi float64) float64 {
	if lo >= hi {
		return lo
	}

	v := lo + rng.Float64()*(hi-lo)
	if v >= hi {
		v = math.Nextafter(hi, lo)
	}

	return v
}
