package advanced

type Point struct {
	X float64
	Y float64
}

// Nodes are referenced by their index everywhere. Edges are directed, and the
// direction carries the traversal sense of the boundary: the outer loop runs
// counterclockwise and holes run clockwise, so the inside of the domain is
// always on the left.
type Edge struct {
	From, To int
}

// A closed walk of edges, where each edge starts where the previous one ended.
type Loop []Edge

// Triangles are always counterclockwise.
type Triangle struct {
	A, B, C int
}

type BoundaryMarker struct {
	Edge   Edge
	Marker int
}

// Target of Domain.Normalize. X and Y give the lower left corner.
type Rectangle struct {
	X, Y          float64
	Width, Height float64
}

type EdgeStack []Edge

type EdgeSet map[Edge]int
