package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/woozymasta/randomgeojson/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeProfile(t, `
length: 25
num_properties: 3
geometry_type: polygon
coordinate_system: "3857"
pretty: true
seed: 1234
workers: 2
h3_resolution: 7
output_file: out/sample.geojson
format: yaml
`)

	p, err := Load(path)
	require.NoError(t, err)

	require.NotNil(t, p.Length)
	assert.Equal(t, 25, *p.Length)
	require.NotNil(t, p.NumProperties)
	assert.Equal(t, 3, *p.NumProperties)
	require.NotNil(t, p.GeometryType)
	assert.Equal(t, geo.KindPolygon, *p.GeometryType)
	require.NotNil(t, p.CoordinateSystem)
	assert.Equal(t, geo.WebMercator, *p.CoordinateSystem)
	require.NotNil(t, p.Pretty)
	assert.True(t, *p.Pretty)
	require.NotNil(t, p.Seed)
	assert.Equal(t, uint64(1234), *p.Seed)
	require.NotNil(t, p.Workers)
	assert.Equal(t, 2, *p.Workers)
	require.NotNil(t, p.H3Resolution)
	assert.Equal(t, 7, *p.H3Resolution)
	assert.Equal(t, "out/sample.geojson", p.OutputFile)
	assert.Equal(t, "yaml", p.Format)
}

func TestLoadPartial(t *testing.T) {
	p, err := Load(writeProfile(t, "length: 5\n"))
	require.NoError(t, err)

	require.NotNil(t, p.Length)
	assert.Equal(t, 5, *p.Length)
	assert.Nil(t, p.GeometryType)
	assert.Nil(t, p.CoordinateSystem)
	assert.Nil(t, p.Seed)
	assert.Empty(t, p.Format)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		invalid bool
	}{
		{name: "unknown coordinate system", body: "coordinate_system: mars\n", invalid: true},
		{name: "unknown geometry type", body: "geometry_type: circle\n", invalid: true},
		{name: "unknown format", body: "format: xml\n", invalid: true},
		{name: "malformed yaml", body: "length: [1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeProfile(t, tt.body))
			require.Error(t, err)

			var invalid *geo.InvalidArgumentError
			assert.Equal(t, tt.invalid, errors.As(err, &invalid), "error: %v", err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
