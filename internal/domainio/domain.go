// Package domainio reads domain documents and writes mesh documents for the
// meshgen command.
package domainio

import (
	"io"
	"strings"

	"github.com/femhub/meshgen"
	"github.com/femhub/meshgen/dbg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	FormatYAML   = "yaml"
	FormatJSON   = "json"
	FormatWKT    = "wkt"
	FormatPoints = "points"
)

// DomainDocument is the YAML (or JSON) form of a domain. Exactly one of the
// three boundary forms must be present: nodes with edges, a graph editor
// drawing, or a WKT polygon.
type DomainDocument struct {
	Name  string         `yaml:"name,omitempty" json:"name,omitempty"`
	Nodes [][]float64    `yaml:"nodes,omitempty,flow" json:"nodes,omitempty"`
	Edges [][]int        `yaml:"edges,omitempty,flow" json:"edges,omitempty"`
	Graph *GraphDocument `yaml:"graph,omitempty" json:"graph,omitempty"`
	WKT   string         `yaml:"wkt,omitempty" json:"wkt,omitempty"`
}

// GraphDocument is what the graph editor produces: vertex positions, and for
// each vertex the indexes of its neighbors.
type GraphDocument struct {
	Vertices  [][]float64 `yaml:"vertices,flow" json:"vertices"`
	Adjacency [][]int     `yaml:"adjacency,flow" json:"adjacency"`
}

// Input is a decoded domain along with the name it goes by.
type Input struct {
	Name   string
	Domain *meshgen.Domain
}

// Read decodes a domain in the given format. The source (usually a path) is
// used in error messages, and to make up a name when the document has none.
func Read(r io.Reader, source, format string, opts ...meshgen.Option) (*Input, error) {
	var (
		name   string
		domain *meshgen.Domain
		err    error
	)
	switch format {
	case FormatYAML, FormatJSON:
		name, domain, err = readDocument(r, opts)
	case FormatWKT:
		var data []byte
		data, err = io.ReadAll(r)
		if err == nil {
			domain, err = meshgen.DomainFromWKT(strings.TrimSpace(string(data)), opts...)
		}
	case FormatPoints:
		var rings [][]meshgen.Point
		rings, err = ReadPoints(r)
		if err == nil {
			nodes, edges := meshgen.RingsToBoundary(rings...)
			domain, err = meshgen.BuildDomain(nodes, edges, opts...)
		}
	default:
		return nil, errors.Errorf("unknown input format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", source)
	}

	if name == "" {
		name = dbg.Name(source)
	}
	return &Input{Name: name, Domain: domain}, nil
}

func readDocument(r io.Reader, opts []meshgen.Option) (string, *meshgen.Domain, error) {
	var doc DomainDocument
	// JSON is a subset of YAML as far as these documents go
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return "", nil, errors.Wrap(err, "decoding domain document")
	}
	domain, err := doc.Build(opts...)
	return doc.Name, domain, err
}

// Build validates the document's boundary and builds the Domain.
func (doc *DomainDocument) Build(opts ...meshgen.Option) (*meshgen.Domain, error) {
	forms := 0
	if doc.Nodes != nil || doc.Edges != nil {
		forms++
	}
	if doc.Graph != nil {
		forms++
	}
	if doc.WKT != "" {
		forms++
	}
	if forms != 1 {
		return nil, errors.Errorf("domain document needs exactly one of nodes/edges, graph or wkt, found %d", forms)
	}

	switch {
	case doc.Graph != nil:
		vertices, err := toPoints(doc.Graph.Vertices)
		if err != nil {
			return nil, err
		}
		return meshgen.FromGraph(vertices, doc.Graph.Adjacency, opts...)
	case doc.WKT != "":
		return meshgen.DomainFromWKT(doc.WKT, opts...)
	default:
		nodes, err := toPoints(doc.Nodes)
		if err != nil {
			return nil, err
		}
		edges := make([]meshgen.Edge, len(doc.Edges))
		for i, e := range doc.Edges {
			if len(e) != 2 {
				return nil, errors.Errorf("edge %d has %d indexes, expected 2", i, len(e))
			}
			edges[i] = meshgen.Edge{From: e[0], To: e[1]}
		}
		return meshgen.BuildDomain(nodes, edges, opts...)
	}
}

func toPoints(coords [][]float64) ([]meshgen.Point, error) {
	points := make([]meshgen.Point, len(coords))
	for i, c := range coords {
		if len(c) != 2 {
			return nil, errors.Errorf("point %d has %d coordinates, expected 2", i, len(c))
		}
		points[i] = meshgen.Point{X: c[0], Y: c[1]}
	}
	return points, nil
}

// DocumentOf is the inverse of Build, in nodes/edges form.
func DocumentOf(name string, d *meshgen.Domain) *DomainDocument {
	doc := &DomainDocument{Name: name}
	for _, p := range d.Nodes() {
		doc.Nodes = append(doc.Nodes, []float64{p.X, p.Y})
	}
	for _, e := range d.Edges() {
		doc.Edges = append(doc.Edges, []int{e.From, e.To})
	}
	return doc
}
