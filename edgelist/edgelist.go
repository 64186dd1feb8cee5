package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/katalvlaran/spantree/core"
)

var (
	// ErrBadHeader indicates a missing or malformed "V E" header line.
	ErrBadHeader = errors.New("edgelist: bad header")

	// ErrBadEdge indicates an edge line that is not three integers, or a
	// line after the declared E edges.
	ErrBadEdge = errors.New("edgelist: bad edge line")

	// ErrMissingEdges indicates fewer edge lines than the header declares.
	ErrMissingEdges = errors.New("edgelist: missing edge lines")
)

// Header is the first line of an edge list.
type Header struct {
	Vertices int
	Edges    int
}

// ParseEdges reads an edge list and returns the header and the edges in
// input order, without building a graph.
func ParseEdges(r io.Reader) (Header, []core.Edge, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	next := func() ([]string, bool) {
		for sc.Scan() {
			lineNo++
			if f := strings.Fields(sc.Text()); len(f) > 0 {
				return f, true
			}
		}

		return nil, false
	}

	fields, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return Header{}, nil, fmt.Errorf("edgelist: read: %w", err)
		}
		return Header{}, nil, fmt.Errorf("%w: empty input", ErrBadHeader)
	}
	h, err := parseHeader(fields)
	if err != nil {
		return Header{}, nil, fmt.Errorf("line %d: %w", lineNo, err)
	}

	var result *multierror.Error
	edges := make([]core.Edge, 0, min(h.Edges, maxPrealloc))
	seen := 0
	for {
		fields, ok = next()
		if !ok {
			break
		}
		seen++
		if seen > h.Edges {
			result = multierror.Append(result, fmt.Errorf("line %d: %w: more than %d edges", lineNo, ErrBadEdge, h.Edges))
			continue
		}
		e, err := parseEdge(fields, h.Vertices)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("line %d: %w", lineNo, err))
			continue
		}
		edges = append(edges, e)
	}
	if err = sc.Err(); err != nil {
		result = multierror.Append(result, fmt.Errorf("edgelist: read: %w", err))
	}
	if seen < h.Edges {
		result = multierror.Append(result, fmt.Errorf("%w: got %d of %d", ErrMissingEdges, seen, h.Edges))
	}
	if err = result.ErrorOrNil(); err != nil {
		return h, nil, err
	}

	return h, edges, nil
}

// Parse reads an edge list and builds the graph.
func Parse(r io.Reader) (*core.Graph, error) {
	h, edges, err := ParseEdges(r)
	if err != nil {
		return nil, err
	}

	return core.NewGraph(h.Vertices, edges)
}

// Load opens path and parses it.
func Load(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edgelist: %w", err)
	}
	defer f.Close()

	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Write emits order and edges in the format Parse reads.
func Write(w io.Writer, order int, edges []core.Edge) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", order, len(edges))
	for _, e := range edges {
		fmt.Fprintf(bw, "%d %d %d\n", e.U, e.V, e.Weight)
	}

	return bw.Flush()
}

// maxPrealloc bounds the edge slice capacity taken from the header; the
// slice grows past it only as real lines arrive.
const maxPrealloc = 1 << 16

func parseHeader(fields []string) (Header, error) {
	if len(fields) != 2 {
		return Header{}, fmt.Errorf("%w: want 2 fields, got %d", ErrBadHeader, len(fields))
	}
	v, err := strconv.Atoi(fields[0])
	if err != nil {
		return Header{}, fmt.Errorf("%w: vertex count %q", ErrBadHeader, fields[0])
	}
	e, err := strconv.Atoi(fields[1])
	if err != nil {
		return Header{}, fmt.Errorf("%w: edge count %q", ErrBadHeader, fields[1])
	}
	if v < 1 || v > core.MaxVertices {
		return Header{}, fmt.Errorf("%w: %w: %d", ErrBadHeader, core.ErrBadVertexCount, v)
	}
	if e < 0 {
		return Header{}, fmt.Errorf("%w: negative edge count %d", ErrBadHeader, e)
	}

	return Header{Vertices: v, Edges: e}, nil
}

func parseEdge(fields []string, order int) (core.Edge, error) {
	if len(fields) != 3 {
		return core.Edge{}, fmt.Errorf("%w: want 3 fields, got %d", ErrBadEdge, len(fields))
	}
	var vals [3]int64
	for i, f := range fields {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return core.Edge{}, fmt.Errorf("%w: field %d %q is not an integer", ErrBadEdge, i+1, f)
		}
		vals[i] = n
	}
	u, v, w := vals[0], vals[1], vals[2]
	if u < 1 || u > int64(order) || v < 1 || v > int64(order) {
		return core.Edge{}, fmt.Errorf("%w: (%d,%d) with V=%d", core.ErrVertexOutOfRange, u, v, order)
	}
	if w < 0 {
		return core.Edge{}, fmt.Errorf("%w: (%d,%d) weight=%d", core.ErrNegativeWeight, u, v, w)
	}

	return core.Edge{U: int(u), V: int(v), Weight: w}, nil
}
