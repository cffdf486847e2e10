package graphio

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/katalvlaran/pathtree/core"
	"gopkg.in/yaml.v3"
)

// Decode reads one document of format f from r.
//
// Errors:
//   - ErrUnknownFormat if f is not TOML, YAML or JSON.
//   - ErrDecode (wrapping the decoder's error) on syntax errors, wrong
//     shapes, or unknown edge fields.
//
// An empty document decodes to an empty, non-nil graph.
func Decode(r io.Reader, f Format) (core.Graph, error) {
	switch f {
	case FormatTOML:
		return DecodeTOML(r)
	case FormatYAML:
		return DecodeYAML(r)
	case FormatJSON:
		return DecodeJSON(r)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, f)
	}
}

// DecodeTOML reads a TOML adjacency list.
func DecodeTOML(r io.Reader) (core.Graph, error) {
	g := core.NewGraph()
	md, err := toml.NewDecoder(r).Decode(&g)
	if err != nil {
		return nil, fmt.Errorf("%w: toml: %w", ErrDecode, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: toml: unknown keys %s", ErrDecode, strings.Join(keys, ", "))
	}

	return g, nil
}

// DecodeYAML reads a YAML adjacency list.
func DecodeYAML(r io.Reader) (core.Graph, error) {
	g := core.NewGraph()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&g); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: yaml: %w", ErrDecode, err)
	}

	return nonNil(g), nil
}

// DecodeJSON reads a JSON adjacency list.
func DecodeJSON(r io.Reader) (core.Graph, error) {
	g := core.NewGraph()
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&g); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: json: %w", ErrDecode, err)
	}

	return nonNil(g), nil
}

// nonNil turns a document that decoded to null into an empty graph.
func nonNil(g core.Graph) core.Graph {
	if g == nil {
		return core.NewGraph()
	}

	return g
}
