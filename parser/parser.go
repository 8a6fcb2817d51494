package parser

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstrace/core"
)

var (
	// ErrEmptyInput indicates an input with no non-blank line.
	ErrEmptyInput = errors.New("parser: empty input")

	// ErrBadHeader indicates a first line that is not "N M" with N >= 1, M >= 0.
	ErrBadHeader = errors.New("parser: header must be \"N M\" with N >= 1 and M >= 0")

	// ErrMissingEdges indicates fewer edge lines than announced by M.
	ErrMissingEdges = errors.New("parser: missing edge lines")

	// ErrBadEdgeLine indicates an edge line that is not "u v w".
	ErrBadEdgeLine = errors.New("parser: edge line must be \"u v w\" with integer endpoints and a finite weight")

	// ErrUnknownFormat indicates an unsupported Format value.
	ErrUnknownFormat = errors.New("parser: unknown format")

	// ErrTooLarge indicates a graph above the configured node or edge cap.
	ErrTooLarge = errors.New("parser: graph exceeds size limit")
)

// Limits caps the size of an accepted graph. Zero fields mean no cap.
type Limits struct {
	MaxNodes int
	MaxEdges int
}

// Check reports ErrTooLarge when n nodes or m edges exceed l.
func (l Limits) Check(n, m int) error {
	if l.MaxNodes > 0 && n > l.MaxNodes {
		return fmt.Errorf("%d nodes > max %d: %w", n, l.MaxNodes, ErrTooLarge)
	}
	if l.MaxEdges > 0 && m > l.MaxEdges {
		return fmt.Errorf("%d edges > max %d: %w", m, l.MaxEdges, ErrTooLarge)
	}

	return nil
}

// Option configures the size limits of a parse.
type Option func(*Limits)

// WithMaxNodes caps the node count; 0 removes the cap. Panics if n < 0.
func WithMaxNodes(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("parser: WithMaxNodes: n must be >= 0, got %d", n))
	}

	return func(l *Limits) {
		l.MaxNodes = n
	}
}

// WithMaxEdges caps the edge count; 0 removes the cap. Panics if m < 0.
func WithMaxEdges(m int) Option {
	if m < 0 {
		panic(fmt.Sprintf("parser: WithMaxEdges: m must be >= 0, got %d", m))
	}

	return func(l *Limits) {
		l.MaxEdges = m
	}
}

// WithLimits replaces both caps.
func WithLimits(base Limits) Option {
	return func(l *Limits) {
		*l = base
	}
}

func newLimits(opts []Option) Limits {
	var l Limits
	for _, fn := range opts {
		if fn != nil {
			fn(&l)
		}
	}

	return l
}

// Format selects a graph encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format by extension: .yaml/.yml, .json, anything
// else is text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".json":
		return FormatJSON
	default:
		return FormatText
	}
}

// ParseText reads the "N M" text format from r. Integer fields may be
// written in any float notation that denotes a whole number ("2.0", "1e1").
// The header is checked against the limits before any edge is read.
func ParseText(r io.Reader, opts ...Option) (core.Graph, error) {
	limits := newLimits(opts)

	type line struct {
		no     int
		fields []string
	}

	// 1. Collect non-blank lines with their 1-based numbers.
	var lines []line
	sc := bufio.NewScanner(r)
	for no := 1; sc.Scan(); no++ {
		if f := strings.Fields(sc.Text()); len(f) > 0 {
			lines = append(lines, line{no: no, fields: f})
		}
	}
	if err := sc.Err(); err != nil {
		return core.Graph{}, fmt.Errorf("parser: read: %w", err)
	}
	if len(lines) == 0 {
		return core.Graph{}, ErrEmptyInput
	}

	// 2. Header.
	head := lines[0]
	if len(head.fields) < 2 {
		return core.Graph{}, fmt.Errorf("line %d: %w", head.no, ErrBadHeader)
	}
	n, okN := parseWhole(head.fields[0])
	m, okM := parseWhole(head.fields[1])
	if !okN || !okM || n < 1 || m < 0 {
		return core.Graph{}, fmt.Errorf("line %d: %w", head.no, ErrBadHeader)
	}
	if err := limits.Check(n, m); err != nil {
		return core.Graph{}, fmt.Errorf("line %d: %w", head.no, err)
	}
	if len(lines)-1 < m {
		return core.Graph{}, fmt.Errorf("need %d edge lines, got %d: %w", m, len(lines)-1, ErrMissingEdges)
	}

	// 3. Edges.
	g := core.Graph{N: n, Edges: make([]core.Edge, 0, m)}
	for i := 0; i < m; i++ {
		ln := lines[i+1]
		e, err := parseEdge(ln.fields, i)
		if err != nil {
			return core.Graph{}, fmt.Errorf("line %d: %w", ln.no, err)
		}
		g.Edges = append(g.Edges, e)
	}

	if err := g.Validate(); err != nil {
		return core.Graph{}, fmt.Errorf("parser: %w", err)
	}

	return g, nil
}

func parseEdge(fields []string, i int) (core.Edge, error) {
	if len(fields) < 3 {
		return core.Edge{}, ErrBadEdgeLine
	}
	u, okU := parseWhole(fields[0])
	v, okV := parseWhole(fields[1])
	w, errW := strconv.ParseFloat(fields[2], 64)
	if !okU || !okV || errW != nil || math.IsNaN(w) || math.IsInf(w, 0) {
		return core.Edge{}, ErrBadEdgeLine
	}

	return core.Edge{ID: "e" + strconv.Itoa(i), U: u, V: v, Weight: w}, nil
}

// maxWhole keeps parsed integers exactly representable as float64.
const maxWhole = 1 << 53

// parseWhole accepts any numeric literal that is a whole number within
// ±2^53, so "3", "3.0" and "3e0" all read as 3.
func parseWhole(s string) (int, bool) {
	x, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(x) || math.IsInf(x, 0) || x != math.Trunc(x) || math.Abs(x) > maxWhole {
		return 0, false
	}

	return int(x), true
}

// ParseDocument decodes data in format f. Edges without an ID get "e<index>".
func ParseDocument(data []byte, f Format, opts ...Option) (core.Graph, error) {
	var g core.Graph
	switch f {
	case FormatText:
		return ParseText(bytes.NewReader(data), opts...)
	case FormatYAML:
		if err := yaml.Unmarshal(data, &g); err != nil {
			return core.Graph{}, fmt.Errorf("parser: yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &g); err != nil {
			return core.Graph{}, fmt.Errorf("parser: json: %w", err)
		}
	default:
		return core.Graph{}, fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}

	if err := newLimits(opts).Check(g.N, len(g.Edges)); err != nil {
		return core.Graph{}, err
	}
	for i := range g.Edges {
		if g.Edges[i].ID == "" {
			g.Edges[i].ID = "e" + strconv.Itoa(i)
		}
	}
	if err := g.Validate(); err != nil {
		return core.Graph{}, fmt.Errorf("parser: %w", err)
	}

	return g, nil
}

// Load reads the file at path, choosing the format by extension.
func Load(path string, opts ...Option) (core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return core.Graph{}, fmt.Errorf("parser: %w", err)
	}
	g, err := ParseDocument(data, FormatFromPath(path), opts...)
	if err != nil {
		return core.Graph{}, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// EncodeText writes g in the "N M" text format. Edge IDs are not kept.
func EncodeText(w io.Writer, g core.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.N, len(g.Edges))
	for _, e := range g.Edges {
		fmt.Fprintf(bw, "%d %d %s\n", e.U, e.V, strconv.FormatFloat(e.Weight, 'g', -1, 64))
	}

	return bw.Flush()
}

// EncodeDocument renders g as YAML or JSON (indented), or as text.
func EncodeDocument(g core.Graph, f Format) ([]byte, error) {
	switch f {
	case FormatYAML:
		return yaml.Marshal(g)
	case FormatJSON:
		return json.MarshalIndent(g, "", "  ")
	case FormatText:
		var buf bytes.Buffer
		err := EncodeText(&buf, g)

		return buf.Bytes(), err
	default:
		return nil, fmt.Errorf("%q: %w", f, ErrUnknownFormat)
	}
}
