package geo

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// Bounds is the valid coordinate range of a coordinate system in degrees.
type Bounds struct {
	MinLon float64 `json:"min_lon" yaml:"min_lon"`
	MaxLon float64 `json:"max_lon" yaml:"max_lon"`
	MinLat float64 `json:"min_lat" yaml:"min_lat"`
	MaxLat float64 `json:"max_lat" yaml:"max_lat"`
}

// WebMercatorMaxLat is the latitude beyond which the Web Mercator projection is undefined.
const WebMercatorMaxLat = 85.05112878

var (
	// WGS84Bounds covers the whole globe.
	WGS84Bounds = Bounds{MinLon: -180, MaxLon: 180, MinLat: -90, MaxLat: 90}

	// WebMercatorBounds clips the poles at WebMercatorMaxLat.
	WebMercatorBounds = Bounds{MinLon: -180, MaxLon: 180, MinLat: -WebMercatorMaxLat, MaxLat: WebMercatorMaxLat}
)

// System identifies a coordinate reference system.
type System int

const (
	WGS84 System = iota
	WebMercator
)

// Systems lists every supported coordinate system.
var Systems = []System{WGS84, WebMercator}

// ParseSystem resolves a case-insensitive alias to a System.
func ParseSystem(text string) (System, error) {
	switch strings.ToLower(text) {
	case "wgs84", "4326":
		return WGS84, nil
	case "webmercator", "web_mercator", "3857":
		return WebMercator, nil
	default:
		return 0, InvalidArgumentf("invalid coordinate system: %s", text)
	}
}

// Bounds returns the coordinate range of the system.
func (s System) Bounds() Bounds {
	switch s {
	case WebMercator:
		return WebMercatorBounds
	default:
		return WGS84Bounds
	}
}

// EPSG returns the EPSG registry code of the system.
func (s System) EPSG() int {
	switch s {
	case WebMercator:
		return 3857
	default:
		return 4326
	}
}

func (s System) String() string {
	switch s {
	case WebMercator:
		return "WebMercator"
	default:
		return "WGS84"
	}
}

// UnmarshalFlag implements flags.Unmarshaler.
func (s *System) UnmarshalFlag(value string) error {
	parsed, err := ParseSystem(value)
	if err != nil {
		return err
	}

	*s = parsed
	return nil
}

// MarshalFlag implements flags.Marshaler so defaults render in --help.
func (s System) MarshalFlag() (string, error) {
	return s.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *System) UnmarshalYAML(node *yaml.Node) error {
	var value string
	if err := node.Decode(&value); err != nil {
		return err
	}

	return s.UnmarshalFlag(value)
}
