package advanced

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertGraph(t *testing.T) {
	vertices := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	adjacency := [][]int{{1, 3}, {0, 2}, {1, 3}, {2, 0}}
	nodes, edges, err := ConvertGraph(vertices, adjacency)
	require.NoError(t, err)
	assert.Equal(t, vertices, nodes)
	assert.Equal(t, []Edge{{0, 1}, {0, 3}, {1, 2}, {2, 3}}, edges)

	domain, err := BuildDomain(nodes, edges)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, domain.Area(), Epsilon)
}

func TestConvertGraph_IsolatedVertex(t *testing.T) {
	// Vertices without neighbors become candidate interior points
	vertices := []Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}, {1, 1}}
	adjacency := [][]int{{1, 3}, {0, 2}, {1, 3}, {2, 0}}
	nodes, edges, err := ConvertGraph(vertices, adjacency)
	require.NoError(t, err)
	assert.Len(t, nodes, 5)
	assert.Len(t, edges, 4)

	domain, err := BuildDomain(nodes, edges)
	require.NoError(t, err)
	assert.Equal(t, []int{4}, domain.InteriorPoints())
}

func TestConvertGraph_Errors(t *testing.T) {
	_, _, err := ConvertGraph([]Point{{0, 0}, {1, 0}}, [][]int{{1}, {0, 5}})
	assert.True(t, errors.Is(err, ErrMalformedBoundary))

	_, _, err = ConvertGraph([]Point{{0, 0}}, [][]int{{}, {0}})
	assert.True(t, errors.Is(err, ErrMalformedBoundary))
}
