package processor

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/woozymasta/randomgeojson/internal/geo"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Marshal serializes fc in the given format. Pretty indents JSON output,
// YAML output is always block style.
func Marshal(fc geo.GeoJSONFeatureCollection, format string, pretty bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(fc)
	case FormatJSON, "":
		if pretty {
			data, err = json.MarshalIndent(fc, "", "  ")
		} else {
			data, err = json.Marshal(fc)
		}
	default:
		return nil, geo.InvalidArgumentf("unsupported output format: %s", format)
	}

	if err != nil {
		return nil, geo.WrapInvalidArgument(err, "failed to serialize GeoJSON")
	}

	return data, nil
}

// Save marshals the feature collection and writes it to path, creating
// missing parent directories.
func Save(path string, fc geo.GeoJSONFeatureCollection, format string, pretty bool) error {
	data, err := Marshal(fc, format, pretty)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return geo.WrapInvalidArgument(err, "failed to create output directory")
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return geo.WrapInvalidArgument(err, "failed to write file")
	}

	log.Debug().
		Str("path", path).
		Str("format", format).
		Int("bytes", len(data)).
		Msg("Feature collection written")

	return nil
}

// Load reads a feature collection previously written by Save.
func Load(path, format string) (geo.GeoJSONFeatureCollection, error) {
	var fc geo.GeoJSONFeatureCollection

	data, err := os.ReadFile(path)
	if err != nil {
		return fc, geo.WrapInvalidArgument(err, "failed to read file")
	}

	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &fc)
	case FormatJSON, "":
		err = json.Unmarshal(data, &fc)
	default:
		return fc, geo.InvalidArgumentf("unsupported input format: %s", format)
	}

	if err != nil {
		return fc, geo.WrapInvalidArgument(err, "failed to parse GeoJSON")
	}

	return fc, nil
}
