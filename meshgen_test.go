package meshgen

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke test. The internals are already tested.
func TestTriangulate(t *testing.T) {
	nodes := []Point{
		{X: 1, Y: -1},
		{X: 1, Y: 1},
		{X: -1, Y: 1},
		{X: -1, Y: -1},
	}
	edges := []Edge{{From: 0, To: 1}, {From: 1, To: 2}, {From: 2, To: 3}, {From: 3, To: 0}}

	mesh, err := Triangulate(nodes, edges)
	assert.NoError(t, err)
	assert.Len(t, mesh.Triangles(), 2)
	assert.InDelta(t, 4.0, mesh.Area(), 1e-9)
}

func TestTriangulate_Error(t *testing.T) {
	_, err := Triangulate([]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, []Edge{{From: 0, To: 1}, {From: 1, To: 2}})
	assert.True(t, errors.Is(err, ErrMalformedBoundary))
	assert.Equal(t, "MalformedBoundary", KindOf(err))
}

func TestFromGraph(t *testing.T) {
	domain, err := FromGraph(
		[]Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		[][]int{{1, 2}, {0, 2}, {0, 1}},
		WithBoundaryMarker(9),
	)
	require.NoError(t, err)
	mesh, err := domain.Triangulate()
	require.NoError(t, err)
	assert.Len(t, mesh.Triangles(), 1)
	for _, b := range mesh.BoundaryMarkers() {
		assert.Equal(t, 9, b.Marker)
	}
}
