package blueprint

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
)

// Supported record file formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatTOML = "toml"
)

// FormatFromPath infers the record format from a file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported blueprint file %s: expected .yaml, .yml, .json or .toml", path)
	}
}

// LoadFile reads a blueprint record from path. Unknown keys are rejected.
func LoadFile(path string) (Options, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Options{}, err
	}

	data, err := readFile(path)
	if err != nil {
		return Options{}, err
	}

	opts, err := Parse(data, format)
	if err != nil {
		return Options{}, fmt.Errorf("parsing blueprint %s: %w", path, err)
	}
	return opts, nil
}

// Parse decodes a blueprint record in the given format.
func Parse(data []byte, format string) (Options, error) {
	var opts Options

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&opts); err != nil {
			return Options{}, err
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&opts); err != nil {
			return Options{}, err
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&opts); err != nil {
			return Options{}, err
		}
	default:
		return Options{}, fmt.Errorf("unknown blueprint format %q", format)
	}

	return opts, nil
}

// Marshal encodes a blueprint record in the given format.
func Marshal(opts Options, format string) ([]byte, error) {
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(opts); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatJSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(opts); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatTOML:
		return toml.Marshal(opts)
	default:
		return nil, fmt.Errorf("unknown blueprint format %q", format)
	}
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
