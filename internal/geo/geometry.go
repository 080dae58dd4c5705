package geo

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Coordinate is a [Lon, Lat] pair.
type Coordinate [2]float64

// Lon returns the longitude.
func (c Coordinate) Lon() float64 { return c[0] }

// Lat returns the latitude.
func (c Coordinate) Lat() float64 { return c[1] }

// Geometry is one of Point, LineString or Polygon.
type Geometry interface {
	Kind() Kind
	// First returns the first coordinate of the geometry.
	First() Coordinate
	isGeometry()
}

// Point is a single position.
type Point Coordinate

// LineString is an ordered sequence of at least two positions.
type LineString []Coordinate

// Polygon holds exactly one closed ring.
type Polygon [][]Coordinate

func (Point) Kind() Kind      { return KindPoint }
func (LineString) Kind() Kind { return KindLineString }
func (Polygon) Kind() Kind    { return KindPolygon }

func (p Point) First() Coordinate      { return Coordinate(p) }
func (l LineString) First() Coordinate { return l[0] }
func (p Polygon) First() Coordinate    { return p[0][0] }

func (Point) isGeometry()      {}
func (LineString) isGeometry() {}
func (Polygon) isGeometry()    {}

// Kind selects which geometry to generate. KindAll picks one of the
// three concrete kinds per feature.
type Kind int

const (
	KindAll Kind = iota
	KindPoint
	KindLineString
	KindPolygon
)

// ParseKind resolves a case-insensitive geometry type name.
func ParseKind(text string) (Kind, error) {
	switch strings.ToLower(text) {
	case "all":
		return KindAll, nil
	case "point":
		return KindPoint, nil
	case "linestring":
		return KindLineString, nil
	case "polygon":
		return KindPolygon, nil
	default:
		return 0, InvalidArgumentf("geometry type must be one of: Point, LineString, Polygon, All (got %q)", text)
	}
}

// String returns the GeoJSON type name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindLineString:
		return "LineString"
	case KindPolygon:
		return "Polygon"
	default:
		return "All"
	}
}

// UnmarshalFlag implements flags.Unmarshaler.
func (k *Kind) UnmarshalFlag(value string) error {
	parsed, err := ParseKind(value)
	if err != nil {
		return err
	}

	*k = parsed
	return nil
}

// MarshalFlag implements flags.Marshaler.
func (k Kind) MarshalFlag() (string, error) {
	return k.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var value string
	if err := node.Decode(&value); err != nil {
		return err
	}

	return k.UnmarshalFlag(value)
}
