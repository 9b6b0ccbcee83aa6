package graphio

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnknownFormat indicates an unrecognised format name or file extension.
	ErrUnknownFormat = errors.New("graphio: unknown format")

	// ErrMalformed indicates input that does not parse as a graph document.
	ErrMalformed = errors.New("graphio: malformed input")
)

// Format names a document encoding.
type Format string

const (
	FormatEdgeList Format = "txt"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTOML     Format = "toml"

	// FormatAuto defers to the file extension (see FormatFromPath).
	FormatAuto Format = "auto"
)

// Formats lists the concrete formats in display order.
var Formats = []Format{FormatEdgeList, FormatJSON, FormatYAML, FormatTOML}

var extFormats = map[string]Format{
	".txt":   FormatEdgeList,
	".edges": FormatEdgeList,
	".json":  FormatJSON,
	".yaml":  FormatYAML,
	".yml":   FormatYAML,
	".toml":  FormatTOML,
}

// FormatFromPath picks a format from the file extension, case-insensitively.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extFormats[ext]; ok {
		return f, nil
	}

	return "", fmt.Errorf("%w: extension %q of %s", ErrUnknownFormat, ext, path)
}

// ParseFormat resolves a user-supplied name: a Format value, "edges", "yml",
// or "auto" (returned as FormatAuto).
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatEdgeList, FormatJSON, FormatYAML, FormatTOML, FormatAuto:
		return f, nil
	case "edges":
		return FormatEdgeList, nil
	case "yml":
		return FormatYAML, nil
	case "":
		return FormatAuto, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// resolve replaces FormatAuto with the format implied by path.
func resolve(f Format, path string) (Format, error) {
	if f == FormatAuto || f == "" {
		return FormatFromPath(path)
	}

	return f, nil
}
