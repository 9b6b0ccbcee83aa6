package graphio

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpath/core"
)

//go:embed schema.json
var schemaSource string

var documentSchema = jsonschema.MustCompileString("schema.json", schemaSource)

// Decode reads a document in format f and builds the graph.
func Decode(r io.Reader, f Format, opts ...core.GraphOption) (*core.Graph, error) {
	doc, err := DecodeDocument(r, f)
	if err != nil {
		return nil, err
	}

	return doc.Graph(opts...)
}

// DecodeDocument reads a document in format f without building a graph.
func DecodeDocument(r io.Reader, f Format) (*Document, error) {
	switch f {
	case FormatEdgeList:
		return decodeEdgeList(r)
	case FormatJSON:
		return decodeJSON(r)
	case FormatYAML:
		return decodeYAML(r)
	case FormatTOML:
		return decodeTOML(r)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Encode writes every arc of g in format f.
func Encode(w io.Writer, g core.Adjacency, f Format) error {
	if core.IsNil(g) {
		return fmt.Errorf("graphio: encode: nil graph")
	}

	return EncodeDocument(w, FromAdjacency(g), f)
}

// EncodeDocument writes d in format f.
func EncodeDocument(w io.Writer, d *Document, f Format) error {
	switch f {
	case FormatEdgeList:
		return encodeEdgeList(w, d)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case FormatTOML:
		return toml.NewEncoder(w).Encode(d)
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

func decodeJSON(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	// 1) Structural check against the schema.
	var v interface{}
	if err = json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: json: %w", ErrMalformed, err)
	}
	if err = documentSchema.Validate(v); err != nil {
		return nil, fmt.Errorf("%w: json: %w", ErrMalformed, err)
	}

	// 2) Typed decode.
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err = dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: json: %w", ErrMalformed, err)
	}

	return &doc, nil
}

func decodeYAML(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var v interface{}
	if err = yaml.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", ErrMalformed, err)
	}
	if err = validateGeneric("yaml", v); err != nil {
		return nil, err
	}

	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err = dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: yaml: %w", ErrMalformed, err)
	}

	return &doc, nil
}

func decodeTOML(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var v map[string]interface{}
	if _, err = toml.Decode(string(raw), &v); err != nil {
		return nil, fmt.Errorf("%w: toml: %w", ErrMalformed, err)
	}
	if err = validateGeneric("toml", v); err != nil {
		return nil, err
	}

	var doc Document
	md, err := toml.Decode(string(raw), &doc)
	if err != nil {
		return nil, fmt.Errorf("%w: toml: %w", ErrMalformed, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: toml: unknown keys %v", ErrMalformed, undecoded)
	}

	return &doc, nil
}

// validateGeneric checks a YAML or TOML value tree against the document
// schema. The tree is normalised through encoding/json first so numbers and
// maps have the shapes the validator expects.
func validateGeneric(kind string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformed, kind, err)
	}
	var norm interface{}
	if err = json.Unmarshal(raw, &norm); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformed, kind, err)
	}
	if err = documentSchema.Validate(norm); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformed, kind, err)
	}

	return nil
}
