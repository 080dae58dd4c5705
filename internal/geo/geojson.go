// Package geo handles coordinate systems, random geometry generation and
// GeoJSON data structures.
package geo

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// GeoJSONFeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type" yaml:"type"`
	Features []GeoJSONFeature `json:"features" yaml:"features"`
}

// NewFeatureCollection returns an empty collection with room for n features.
func NewFeatureCollection(n int) GeoJSONFeatureCollection {
	return GeoJSONFeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]GeoJSONFeature, 0, n),
	}
}

// GeoJSONFeature represents a single geographic feature with geometry and properties.
type GeoJSONFeature struct {
	Properties map[string]any  `json:"properties" yaml:"properties"`
	ID         string          `json:"id" yaml:"id"`
	Type       string          `json:"type" yaml:"type"`
	Geometry   GeoJSONGeometry `json:"geometry" yaml:"geometry"`
}

// NewFeature wraps g into a feature. A nil properties map is replaced
// with an empty one so the document always carries an object.
func NewFeature(id string, g Geometry, properties map[string]any) GeoJSONFeature {
	if properties == nil {
		properties = map[string]any{}
	}

	return GeoJSONFeature{
		Type:       "Feature",
		ID:         id,
		Geometry:   FromGeometry(g),
		Properties: properties,
	}
}

// GeoJSONGeometry represents the geometry of a feature.
//
// Coordinates holds []float64 for Point, [][]float64 for LineString and
// [][][]float64 for Polygon. Decoding restores these typed shapes.
type GeoJSONGeometry struct {
	Coordinates any    `json:"coordinates" yaml:"coordinates"`
	Type        string `json:"type" yaml:"type"`
}

// FromGeometry converts a generated geometry into its GeoJSON form.
func FromGeometry(g Geometry) GeoJSONGeometry {
	switch v := g.(type) {
	case Point:
		return GeoJSONGeometry{Type: "Point", Coordinates: position(Coordinate(v))}
	case LineString:
		return GeoJSONGeometry{Type: "LineString", Coordinates: positions(v)}
	case Polygon:
		rings := make([][][]float64, len(v))
		for i, ring := range v {
			rings[i] = positions(ring)
		}
		return GeoJSONGeometry{Type: "Polygon", Coordinates: rings}
	default:
		return GeoJSONGeometry{}
	}
}

// Geometry converts the GeoJSON form back into a Geometry.
func (g GeoJSONGeometry) Geometry() (Geometry, error) {
	switch g.Type {
	case "Point":
		pos, ok := g.Coordinates.([]float64)
		if !ok {
			return nil, InvalidArgumentf("malformed Point coordinates")
		}
		c, err := coordinate(pos)
		if err != nil {
			return nil, err
		}
		return Point(c), nil

	case "LineString":
		line, ok := g.Coordinates.([][]float64)
		if !ok || len(line) < minLinePoints {
			return nil, InvalidArgumentf("malformed LineString coordinates")
		}
		coords, err := coordinateList(line)
		if err != nil {
			return nil, err
		}
		return LineString(coords), nil

	case "Polygon":
		rings, ok := g.Coordinates.([][][]float64)
		if !ok || len(rings) != 1 || len(rings[0]) < minPolygonPoints+1 {
			return nil, InvalidArgumentf("malformed Polygon coordinates")
		}
		ring, err := coordinateList(rings[0])
		if err != nil {
			return nil, err
		}
		if ring[0] != ring[len(ring)-1] {
			return nil, InvalidArgumentf("polygon ring is not closed")
		}
		return Polygon{ring}, nil

	default:
		return nil, InvalidArgumentf("unsupported geometry type: %s", g.Type)
	}
}

// UnmarshalJSON decodes coordinates into the typed shape for the geometry type.
func (g *GeoJSONGeometry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	coords := coordinatesFor(raw.Type)
	if len(raw.Coordinates) > 0 {
		if err := json.Unmarshal(raw.Coordinates, coords); err != nil {
			return err
		}
	}

	g.Type = raw.Type
	g.Coordinates = deref(coords)
	return nil
}

// UnmarshalYAML decodes coordinates into the typed shape for the geometry type.
func (g *GeoJSONGeometry) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Type        string    `yaml:"type"`
		Coordinates yaml.Node `yaml:"coordinates"`
	}
	if err := node.Decode(&raw); err != nil {
		return err
	}

	coords := coordinatesFor(raw.Type)
	if raw.Coordinates.Kind != 0 {
		if err := raw.Coordinates.Decode(coords); err != nil {
			return err
		}
	}

	g.Type = raw.Type
	g.Coordinates = deref(coords)
	return nil
}

func coordinatesFor(geometryType string) any {
	switch geometryType {
	case "Point":
		return new([]float64)
	case "LineString":
		return new([][]float64)
	case "Polygon":
		return new([][][]float64)
	default:
		return new(any)
	}
}

func deref(v any) any {
	switch p := v.(type) {
	case *[]float64:
		return *p
	case *[][]float64:
		return *p
	case *[][][]float64:
		return *p
	case *any:
		return *p
	default:
		return v
	}
}

func position(c Coordinate) []float64 {
	return []float64{c[0], c[1]}
}

func positions(coords []Coordinate) [][]float64 {
	out := make([][]float64, len(coords))
	for i, c := range coords {
		out[i] = position(c)
	}

	return out
}

func coordinate(pos []float64) (Coordinate, error) {
	if len(pos) != 2 {
		return Coordinate{}, InvalidArgumentf("position must have 2 values, got %d", len(pos))
	}

	return Coordinate{pos[0], pos[1]}, nil
}

func coordinateList(list [][]float64) ([]Coordinate, error) {
	out := make([]Coordinate, len(list))
	for i, pos := range list {
		c, err := coordinate(pos)
		if err != nil {
			return nil, err
		}
		out[i] = c
	}

	return out, nil
}
