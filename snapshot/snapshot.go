// Package snapshot reads and writes the {nodes, edges} document an editor session
// starts from. JSON and YAML are supported; documents are checked field by field
// and then by core.NewGraph.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/digraph/core"
	"github.com/katalvlaran/digraph/validation"
)

// Format selects the document encoding.
type Format string

// Supported formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrUnsupportedFormat indicates a format or file extension that is neither JSON nor YAML.
	ErrUnsupportedFormat = errors.New("snapshot: unsupported format")

	// ErrInvalidDocument wraps decoding, field validation and graph integrity failures.
	ErrInvalidDocument = errors.New("snapshot: invalid document")
)

// Document is the wire shape of a snapshot. Missing positions decode to 0 and a
// null or missing type to the empty tag.
type Document struct {
	Nodes []NodeRecord `json:"nodes" yaml:"nodes" validate:"dive"`
	Edges []EdgeRecord `json:"edges" yaml:"edges" validate:"dive"`
}

// NodeRecord is one node of a Document.
type NodeRecord struct {
	ID      string       `json:"id" yaml:"id" validate:"required"`
	Title   string       `json:"title" yaml:"title"`
	Type    core.TypeTag `json:"type" yaml:"type"`
	Subtype core.TypeTag `json:"subtype,omitempty" yaml:"subtype,omitempty"`
	X       float64      `json:"x" yaml:"x"`
	Y       float64      `json:"y" yaml:"y"`
}

// EdgeRecord is one edge of a Document.
type EdgeRecord struct {
	Source     string       `json:"source" yaml:"source" validate:"required"`
	Target     string       `json:"target" yaml:"target" validate:"required"`
	Type       core.TypeTag `json:"type" yaml:"type"`
	HandleText string       `json:"handleText,omitempty" yaml:"handleText,omitempty"`
}

// FromGraph converts a snapshot into its wire shape, preserving order.
func FromGraph(g core.Graph) Document {
	nodes := g.Nodes()
	edges := g.Edges()
	doc := Document{
		Nodes: make([]NodeRecord, len(nodes)),
		Edges: make([]EdgeRecord, len(edges)),
	}
	for i, n := range nodes {
		doc.Nodes[i] = NodeRecord(n)
	}
	for i, e := range edges {
		doc.Edges[i] = EdgeRecord(e)
	}

	return doc
}

// Graph validates the document and builds the snapshot.
func (d Document) Graph() (core.Graph, error) {
	if err := validation.ValidateStruct(d); err != nil {
		return core.Graph{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	nodes := make([]core.Node, len(d.Nodes))
	for i, n := range d.Nodes {
		nodes[i] = core.Node(n)
	}
	edges := make([]core.Edge, len(d.Edges))
	for i, e := range d.Edges {
		edges[i] = core.Edge(e)
	}

	g, err := core.NewGraph(nodes, edges)
	if err != nil {
		return core.Graph{}, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return g, nil
}

// Decode reads one document in format f from r.
func Decode(r io.Reader, f Format) (core.Graph, error) {
	var doc Document
	switch f {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return core.Graph{}, fmt.Errorf("%w: json: %w", ErrInvalidDocument, err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
			return core.Graph{}, fmt.Errorf("%w: yaml: %w", ErrInvalidDocument, err)
		}
	default:
		return core.Graph{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}

	return doc.Graph()
}

// DecodeBytes is Decode over an in-memory document.
func DecodeBytes(data []byte, f Format) (core.Graph, error) {
	return Decode(bytes.NewReader(data), f)
}

// FormatFromPath maps .json, .yaml and .yml (any case) to a Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: extension of %q", ErrUnsupportedFormat, path)
	}
}

// LoadFile decodes the snapshot at path, choosing the format by extension.
func LoadFile(path string) (core.Graph, error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return core.Graph{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return core.Graph{}, fmt.Errorf("snapshot: open: %w", err)
	}
	defer file.Close()

	g, err := Decode(file, f)
	if err != nil {
		return core.Graph{}, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Encode writes g to w in format f. JSON output is indented by two spaces.
func Encode(w io.Writer, g core.Graph, f Format) error {
	doc := FromGraph(g)
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}
