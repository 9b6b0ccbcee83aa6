package graphio

import (
	"fmt"
	"os"

	"github.com/katalvlaran/lvpath/core"
)

// ReadFile decodes the graph stored at path. FormatAuto picks the format
// from the extension.
func ReadFile(path string, f Format, opts ...core.GraphOption) (*core.Graph, error) {
	f, err := resolve(f, path)
	if err != nil {
		return nil, err
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fh.Close()

	g, err := Decode(fh, f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// WriteFile encodes g to path, creating or truncating it.
func WriteFile(path string, g core.Adjacency, f Format) (err error) {
	if f, err = resolve(f, path); err != nil {
		return err
	}
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fh.Close(); err == nil {
			err = cerr
		}
	}()

	return Encode(fh, g, f)
}
