package advanced

import (
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/pkg/errors"
)

const DefaultBoundaryMarker = 1

// A Domain is a validated boundary: its edges form closed, regular,
// non-intersecting loops, oriented with the outer contour counterclockwise and
// holes clockwise. It is immutable once built; Normalize returns a new Domain.
type Domain struct {
	nodes    []Point
	edges    []Edge
	loops    []Loop
	boundary []Edge
	// Nodes that can become triangle vertices: every boundary vertex, plus the
	// unreferenced nodes lying strictly inside the domain.
	candidates []int
	interior   []int
	opts       options
}

type options struct {
	marker int
	logger *slog.Logger
}

type Option func(*options)

// Marker id attached to every boundary edge of the resulting mesh.
func WithBoundaryMarker(marker int) Option {
	return func(o *options) {
		o.marker = marker
	}
}

// Logger for debug output of the pipeline. Nothing is logged by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func newOptions(opts []Option) options {
	o := options{
		marker: DefaultBoundaryMarker,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// Build a Domain from raw nodes and boundary edges. Edge direction and order
// are irrelevant; loops are extracted and oriented here. Nodes that no edge
// references are kept (so indexes stay stable) and, if they lie inside the
// domain, used as interior mesh points.
func BuildDomain(nodes []Point, edges []Edge, opts ...Option) (*Domain, error) {
	return buildDomain(
		append([]Point(nil), nodes...),
		append([]Edge(nil), edges...),
		newOptions(opts),
	)
}

// Takes ownership of nodes and edges
func buildDomain(nodes []Point, edges []Edge, o options) (*Domain, error) {
	if len(edges) == 0 {
		return nil, errors.Wrap(ErrMalformedBoundary, "no boundary edges")
	}
	for i, p := range nodes {
		if !p.IsFinite() {
			return nil, errors.Wrapf(ErrDegenerateGeometry, "node %d has non-finite coordinates %v", i, p)
		}
	}

	referenced := make(map[int]bool)
	for _, e := range edges {
		for _, v := range []int{e.From, e.To} {
			if v < 0 || v >= len(nodes) {
				return nil, errors.Wrapf(ErrMalformedBoundary, "edge (%d, %d) references missing node %d", e.From, e.To, v)
			}
			referenced[v] = true
		}
	}

	loops, err := ExtractLoops(edges)
	if err != nil {
		return nil, err
	}
	// Crossings don't depend on winding, and a crossed loop can have zero area,
	// so this has to come before orientation.
	var walked []Edge
	for _, loop := range loops {
		walked = append(walked, loop...)
	}
	if err := CheckSelfIntersection(nodes, walked); err != nil {
		return nil, err
	}
	loops, boundary, err := OrientLoops(nodes, loops)
	if err != nil {
		return nil, err
	}
	if err := CheckNesting(nodes, loops); err != nil {
		return nil, err
	}

	d := &Domain{
		nodes:    nodes,
		edges:    edges,
		loops:    loops,
		boundary: boundary,
		opts:     o,
	}
	for i, p := range nodes {
		if referenced[i] {
			d.candidates = append(d.candidates, i)
			continue
		}
		if ContainsPointByEvenOdd(nodes, boundary, p) {
			d.interior = append(d.interior, i)
			d.candidates = append(d.candidates, i)
		} else {
			o.logger.Debug("ignoring node outside the domain", "node", i, "x", p.X, "y", p.Y)
		}
	}

	// Two mesh points in the same place can never both end up in the mesh
	seen := make(map[Point]int, len(d.candidates))
	for _, i := range d.candidates {
		if j, ok := seen[nodes[i]]; ok {
			return nil, errors.Wrapf(ErrDegenerateGeometry, "nodes %d and %d are both at %v", j, i, nodes[i])
		}
		seen[nodes[i]] = i
	}

	o.logger.Debug("built domain",
		"nodes", len(nodes),
		"edges", len(edges),
		"loops", len(loops),
		"interior_points", len(d.interior),
		"area", d.Area(),
	)
	return d, nil
}

// Re-run the full validation. A Domain returned by BuildDomain is always valid;
// this exists for callers who want to assert that explicitly.
func (d *Domain) Validate() error {
	_, err := buildDomain(d.nodes, d.edges, d.opts)
	return err
}

// Triangulate the domain with the advancing front method. Every input
// boundary edge is tagged with the domain's boundary marker.
func (d *Domain) Triangulate() (*Mesh, error) {
	triangles, err := TriangulateFront(d.nodes, d.candidates, d.boundary)
	if err != nil {
		d.opts.logger.Debug("triangulation failed", "error", err)
		return nil, err
	}

	markers := make([]BoundaryMarker, len(d.edges))
	for i, e := range d.edges {
		markers[i] = BoundaryMarker{Edge: e, Marker: d.opts.marker}
	}
	d.opts.logger.Debug("triangulated domain", "triangles", len(triangles))
	return NewMesh(d.nodes, triangles, markers), nil
}

// Fit the domain into the rectangle by scaling each axis independently, so
// the bounding box of the nodes becomes the rectangle. An axis with zero
// extent collapses onto the rectangle's lower edge. The vertical axis is not
// flipped.
func (d *Domain) Normalize(rect Rectangle) (*Domain, error) {
	if !(rect.Width > 0) || !(rect.Height > 0) || !(Point{rect.X, rect.Y}).IsFinite() ||
		math.IsInf(rect.Width, 0) || math.IsInf(rect.Height, 0) {
		return nil, errors.Wrapf(ErrInvalidRectangle, "cannot fit into %+v", rect)
	}

	bounds := d.Bounds()
	scale := func(v, lo, extent, origin, size float64) float64 {
		if extent == 0 {
			return origin
		}
		return origin + size/extent*(v-lo)
	}
	nodes := make([]Point, len(d.nodes))
	for i, p := range d.nodes {
		nodes[i] = Point{
			X: scale(p.X, bounds.X, bounds.Width, rect.X, rect.Width),
			Y: scale(p.Y, bounds.Y, bounds.Height, rect.Y, rect.Height),
		}
	}
	return buildDomain(nodes, append([]Edge(nil), d.edges...), d.opts)
}

// The oriented loops as a WKT POLYGON, outer ring first. DomainFromWKT reads
// it back.
func (d *Domain) AsWKT() string {
	var sb strings.Builder
	sb.WriteString("POLYGON(")
	for i, loop := range d.loops {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('(')
		for _, e := range loop {
			writeWKTPoint(&sb, d.nodes[e.From])
			sb.WriteByte(',')
		}
		writeWKTPoint(&sb, d.nodes[loop[0].From])
		sb.WriteByte(')')
	}
	sb.WriteByte(')')
	return sb.String()
}

// Area enclosed by the outer loop minus the holes.
func (d *Domain) Area() float64 {
	var area float64
	for _, loop := range d.loops {
		area += loop.SignedArea(d.nodes)
	}
	return area
}

// Does the oriented boundary form closed loops? Always true for a built Domain.
func (d *Domain) IsBoundaryClosed() bool {
	return IsClosedCurve(d.boundary)
}

func (d *Domain) Nodes() []Point {
	return append([]Point(nil), d.nodes...)
}

// The boundary edges as given to BuildDomain.
func (d *Domain) Edges() []Edge {
	return append([]Edge(nil), d.edges...)
}

// The oriented loops, outer contour first.
func (d *Domain) Loops() []Loop {
	loops := make([]Loop, len(d.loops))
	for i, loop := range d.loops {
		loops[i] = append(Loop(nil), loop...)
	}
	return loops
}

// The oriented loops concatenated, outer contour first.
func (d *Domain) Boundary() []Edge {
	return append([]Edge(nil), d.boundary...)
}

// Indexes of the unreferenced nodes lying inside the domain.
func (d *Domain) InteriorPoints() []int {
	return append([]int(nil), d.interior...)
}

func (d *Domain) BoundaryMarker() int {
	return d.opts.marker
}

// Bounding box of the nodes
func (d *Domain) Bounds() Rectangle {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range d.nodes {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rectangle{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
