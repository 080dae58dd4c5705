package processor

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/woozymasta/randomgeojson/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample(t *testing.T) geo.GeoJSONFeatureCollection {
	t.Helper()

	fc, err := Generate(Request{
		Length:        40,
		NumProperties: 2,
		Kind:          geo.KindAll,
		System:        geo.WGS84,
		Seed:          1,
		Workers:       2,
		H3Resolution:  NoH3,
	})
	require.NoError(t, err)

	return fc
}

func assertSameGeometries(t *testing.T, want, got geo.GeoJSONFeatureCollection) {
	t.Helper()
	require.Len(t, got.Features, len(want.Features))

	for i := range want.Features {
		assert.Equal(t, want.Features[i].ID, got.Features[i].ID)

		wg, err := want.Features[i].Geometry.Geometry()
		require.NoError(t, err)
		gg, err := got.Features[i].Geometry.Geometry()
		require.NoError(t, err)

		assert.Equal(t, wg.Kind(), gg.Kind())
		assert.Equal(t, wg, gg)
	}
}

func TestSaveLoadJSON(t *testing.T) {
	fc := sample(t)

	for _, pretty := range []bool{false, true} {
		path := filepath.Join(t.TempDir(), "out", "random.geojson")
		require.NoError(t, Save(path, fc, FormatJSON, pretty))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, pretty, strings.Contains(string(data), "\n  "), "pretty=%v", pretty)

		loaded, err := Load(path, FormatJSON)
		require.NoError(t, err)
		assert.Equal(t, "FeatureCollection", loaded.Type)
		assertSameGeometries(t, fc, loaded)
	}
}

func TestSaveLoadYAML(t *testing.T) {
	fc := sample(t)
	path := filepath.Join(t.TempDir(), "random.yaml")

	require.NoError(t, Save(path, fc, FormatYAML, false))

	loaded, err := Load(path, FormatYAML)
	require.NoError(t, err)
	assertSameGeometries(t, fc, loaded)
}

func TestSaveErrors(t *testing.T) {
	fc := sample(t)
	dir := t.TempDir()

	// a regular file where a directory is expected
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	tests := []struct {
		name   string
		path   string
		format string
	}{
		{"unsupported format", filepath.Join(dir, "x.xml"), "xml"},
		{"parent is a file", filepath.Join(blocker, "x.geojson"), FormatJSON},
		{"path is a directory", dir, FormatJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Save(tt.path, fc, tt.format, false)
			var invalid *geo.InvalidArgumentError
			assert.True(t, errors.As(err, &invalid), "error: %v", err)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.geojson")
	require.NoError(t, os.WriteFile(broken, []byte("{not json"), 0644))

	for _, path := range []string{broken, filepath.Join(dir, "missing.geojson")} {
		_, err := Load(path, FormatJSON)
		var invalid *geo.InvalidArgumentError
		assert.True(t, errors.As(err, &invalid), "path %s: %v", path, err)
	}
}
