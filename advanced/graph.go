package advanced

import "github.com/pkg/errors"

// Convert the graph editor's representation (vertex positions, plus each
// vertex's list of neighbors) into nodes and edges. The adjacency lists are
// symmetric, so each undirected edge is only kept from its lower endpoint,
// (i, n) with n > i.
func ConvertGraph(vertices []Point, adjacency [][]int) ([]Point, []Edge, error) {
	if len(adjacency) > len(vertices) {
		return nil, nil, errors.Wrapf(ErrMalformedBoundary,
			"adjacency lists %d vertices but only %d positions were given", len(adjacency), len(vertices))
	}

	nodes := append([]Point(nil), vertices...)
	var edges []Edge
	for i, neighbors := range adjacency {
		for _, n := range neighbors {
			if n < 0 || n >= len(vertices) {
				return nil, nil, errors.Wrapf(ErrMalformedBoundary, "vertex %d lists missing neighbor %d", i, n)
			}
			if n > i {
				edges = append(edges, Edge{i, n})
			}
		}
	}
	return nodes, edges, nil
}
