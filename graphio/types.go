package graphio

import (
	"errors"
	"path/filepath"
	"strings"
)

// Sentinel errors for decoding.
var (
	// ErrUnknownFormat indicates a Format value or file extension this package cannot decode.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrDecode wraps every syntax or shape error reported by the underlying decoder.
	ErrDecode = errors.New("graphio: decode failed")
)

// Format selects the document syntax.
type Format int

const (
	// FormatUnknown is the zero value; Decode rejects it.
	FormatUnknown Format = iota
	// FormatTOML decodes with github.com/BurntSushi/toml.
	FormatTOML
	// FormatYAML decodes with gopkg.in/yaml.v3.
	FormatYAML
	// FormatJSON decodes with encoding/json.
	FormatJSON
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// FormatFromPath maps a file name extension (.toml, .yaml, .yml, .json,
// case-insensitive) to a Format.
func FormatFromPath(name string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return FormatUnknown, ErrUnknownFormat
	}
}
