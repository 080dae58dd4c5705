// Package config handles loading of generation profiles.
package config

import (
	"fmt"
	"os"

	"github.com/woozymasta/randomgeojson/internal/geo"

	"gopkg.in/yaml.v3"
)

// Profile represents a YAML generation profile. Unset fields are nil or
// empty and leave the corresponding command line option untouched.
type Profile struct {
	Length           *int        `yaml:"length,omitempty"`
	NumProperties    *int        `yaml:"num_properties,omitempty"`
	GeometryType     *geo.Kind   `yaml:"geometry_type,omitempty"`
	CoordinateSystem *geo.System `yaml:"coordinate_system,omitempty"`
	Pretty           *bool       `yaml:"pretty,omitempty"`
	Seed             *uint64     `yaml:"seed,omitempty"`
	Workers          *int        `yaml:"workers,omitempty"`
	H3Resolution     *int        `yaml:"h3_resolution,omitempty"`
	OutputFile       string      `yaml:"output_file,omitempty"`
	Format           string      `yaml:"format,omitempty"`
}

// Load reads and parses the YAML profile from the specified path.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse profile %s: %w", path, err)
	}

	if p.Format != "" && p.Format != "json" && p.Format != "yaml" {
		return nil, geo.InvalidArgumentf("format must be json or yaml, got %q", p.Format)
	}

	return &p, nil
}
