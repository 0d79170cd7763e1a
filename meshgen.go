// Advancing front triangulation of drawn 2D domains for finite element meshes.
//
// A domain is an outer contour plus any number of holes, given as nodes and
// boundary edges in no particular order or direction. The package validates the
// boundary, extracts and orients its loops, and fills it with counterclockwise
// triangles using only the given nodes. The result carries boundary markers so
// it can be handed to a FEM solver.
//
// The engine itself lives in the advanced package, for callers who need the
// individual steps.
package meshgen

import "github.com/femhub/meshgen/advanced"

type Point = advanced.Point
type Edge = advanced.Edge
type Triangle = advanced.Triangle
type BoundaryMarker = advanced.BoundaryMarker
type Rectangle = advanced.Rectangle
type Domain = advanced.Domain
type Mesh = advanced.Mesh
type Option = advanced.Option

const DefaultBoundaryMarker = advanced.DefaultBoundaryMarker

var (
	ErrMalformedBoundary        = advanced.ErrMalformedBoundary
	ErrSelfIntersectingBoundary = advanced.ErrSelfIntersectingBoundary
	ErrDegenerateGeometry       = advanced.ErrDegenerateGeometry
	ErrUnmeshableFront          = advanced.ErrUnmeshableFront
	ErrInvalidRectangle         = advanced.ErrInvalidRectangle
)

var (
	WithBoundaryMarker = advanced.WithBoundaryMarker
	WithLogger         = advanced.WithLogger
	ConvertGraph       = advanced.ConvertGraph
	RingsToBoundary    = advanced.RingsToBoundary
	DomainFromWKT      = advanced.DomainFromWKT
	KindOf             = advanced.KindOf
)

// Validate the boundary and build an immutable Domain. See advanced.BuildDomain.
func BuildDomain(nodes []Point, edges []Edge, opts ...Option) (*Domain, error) {
	return advanced.BuildDomain(nodes, edges, opts...)
}

// Convert a graph editor drawing (positions plus symmetric adjacency lists)
// into a Domain.
func FromGraph(vertices []Point, adjacency [][]int, opts ...Option) (*Domain, error) {
	nodes, edges, err := advanced.ConvertGraph(vertices, adjacency)
	if err != nil {
		return nil, err
	}
	return advanced.BuildDomain(nodes, edges, opts...)
}

// Take a set of nodes and boundary edges and convert them into a mesh.
//
// The edges must form closed loops where every vertex is shared by exactly two
// edges, and loops must not cross or touch. The loop with the largest area is
// the outer contour; all others are holes. Edge order and direction are
// irrelevant.
func Triangulate(nodes []Point, edges []Edge, opts ...Option) (*Mesh, error) {
	domain, err := advanced.BuildDomain(nodes, edges, opts...)
	if err != nil {
		return nil, err
	}
	return domain.Triangulate()
}
