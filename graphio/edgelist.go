package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const commentPrefix = "#"

// decodeEdgeList parses the line-oriented text format.
func decodeEdgeList(r io.Reader) (*Document, error) {
	sc := bufio.NewScanner(r)
	doc := &Document{Nodes: -1}
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.Index(text, commentPrefix); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		// Header: node count.
		if doc.Nodes < 0 {
			if len(fields) != 1 {
				return nil, fmt.Errorf("%w: line %d: want node count, got %q", ErrMalformed, line, text)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, line, err)
			}
			if n < 0 {
				// Leave the sentinel to core.
				doc.Nodes = n
				return doc, nil
			}
			doc.Nodes = n
			continue
		}

		e, err := parseEdgeLine(fields)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, line, err)
		}
		doc.Edges = append(doc.Edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if doc.Nodes < 0 {
		return nil, fmt.Errorf("%w: missing node count", ErrMalformed)
	}

	return doc, nil
}

func parseEdgeLine(fields []string) (EdgeDoc, error) {
	if len(fields) != 3 {
		return EdgeDoc{}, fmt.Errorf("want \"from to weight\", got %d fields", len(fields))
	}
	from, err := strconv.Atoi(fields[0])
	if err != nil {
		return EdgeDoc{}, fmt.Errorf("from: %w", err)
	}
	to, err := strconv.Atoi(fields[1])
	if err != nil {
		return EdgeDoc{}, fmt.Errorf("to: %w", err)
	}
	w, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return EdgeDoc{}, fmt.Errorf("weight: %w", err)
	}

	return EdgeDoc{From: from, To: to, Weight: w}, nil
}

func encodeEdgeList(w io.Writer, d *Document) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# nodes\n%d\n", d.Nodes)
	if len(d.Edges) > 0 {
		fmt.Fprintln(bw, "# from to weight")
	}
	for _, e := range d.Edges {
		fmt.Fprintf(bw, "%d %d %s\n", e.From, e.To, strconv.FormatFloat(e.Weight, 'g', -1, 64))
	}

	return bw.Flush()
}
