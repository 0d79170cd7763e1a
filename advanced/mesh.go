package advanced

import (
	"strconv"
	"strings"
)

// Output of a triangulation. A Mesh never changes after it's built, and the
// accessors hand out copies, so it can be shared freely between consumers.
type Mesh struct {
	nodes     []Point
	triangles []Triangle
	markers   []BoundaryMarker
}

func NewMesh(nodes []Point, triangles []Triangle, markers []BoundaryMarker) *Mesh {
	return &Mesh{
		nodes:     append([]Point(nil), nodes...),
		triangles: append([]Triangle(nil), triangles...),
		markers:   append([]BoundaryMarker(nil), markers...),
	}
}

func (m *Mesh) Nodes() []Point {
	return append([]Point(nil), m.nodes...)
}

func (m *Mesh) Triangles() []Triangle {
	return append([]Triangle(nil), m.triangles...)
}

func (m *Mesh) BoundaryMarkers() []BoundaryMarker {
	return append([]BoundaryMarker(nil), m.markers...)
}

// Total area of the triangles
func (m *Mesh) Area() float64 {
	var area float64
	for _, t := range m.triangles {
		area += t.SignedArea(m.nodes)
	}
	return area
}

// Triangles in the shape FEM solvers take them: three node indexes followed
// by an element tag.
func (m *Mesh) Elements(tag int) [][4]int {
	elements := make([][4]int, len(m.triangles))
	for i, t := range m.triangles {
		elements[i] = [4]int{t.A, t.B, t.C, tag}
	}
	return elements
}

// Boundary markers as (from, to, marker) triples.
func (m *Mesh) Boundaries() [][3]int {
	boundaries := make([][3]int, len(m.markers))
	for i, b := range m.markers {
		boundaries[i] = [3]int{b.Edge.From, b.Edge.To, b.Marker}
	}
	return boundaries
}

// The triangles as a WKT GEOMETRYCOLLECTION of POLYGONs, one per triangle.
// A MULTIPOLYGON can't hold them, since neighbouring triangles share a side.
func (m *Mesh) AsWKT() string {
	if len(m.triangles) == 0 {
		return "GEOMETRYCOLLECTION EMPTY"
	}
	var sb strings.Builder
	sb.WriteString("GEOMETRYCOLLECTION(")
	for i, t := range m.triangles {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString("POLYGON((")
		for j, v := range []int{t.A, t.B, t.C, t.A} {
			if j > 0 {
				sb.WriteByte(',')
			}
			writeWKTPoint(&sb, m.nodes[v])
		}
		sb.WriteString("))")
	}
	sb.WriteByte(')')
	return sb.String()
}

func writeWKTPoint(sb *strings.Builder, p Point) {
	sb.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
	sb.WriteByte(' ')
	sb.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
}
