package advanced

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriangulateFront_UnitSquare(t *testing.T) {
	nodes := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	boundary := []Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	triangles, err := TriangulateFront(nodes, nil, boundary)
	require.NoError(t, err)
	require.Len(t, triangles, 2)

	var area float64
	for _, tri := range triangles {
		assert.Greater(t, tri.SignedArea(nodes), 0.0)
		area += tri.SignedArea(nodes)
	}
	assert.InDelta(t, 1.0, area, Epsilon)
}

func TestTriangulateFront_Deterministic(t *testing.T) {
	nodes, edges := SimpleStar()
	first, err := TriangulateFront(nodes, nil, edges)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := TriangulateFront(nodes, nil, edges)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestTriangulateFront_ConvexPolygons(t *testing.T) {
	for n := 3; n <= 12; n++ {
		t.Run(fmt.Sprintf("%d sides", n), func(t *testing.T) {
			nodes, edges := RingsToBoundary(RegularPolygon(n, 3))
			domain, err := BuildDomain(nodes, edges)
			require.NoError(t, err)
			mesh, err := domain.Triangulate()
			require.NoError(t, err)
			assert.Len(t, mesh.Triangles(), n-2)
			AssertValidTriangulation(t, domain, mesh)
		})
	}
}

func TestTriangulateFront_Shapes(t *testing.T) {
	shapes := []struct {
		name      string
		load      func() ([]Point, []Edge)
		triangles int
	}{
		{"star", SimpleStar, 8},
		{"square with hole", SquareWithHole, 8},
		{"star outline", StarOutline, 20},
		{"multiple holes", MultipleHoles, 39},
		{"l_shape", fixture("l_shape"), 4},
		{"chevron", fixture("chevron"), 2},
		{"frame", fixture("frame"), 8},
		{"bracket", fixture("bracket"), 18},
	}
	for _, shape := range shapes {
		t.Run(shape.name, func(t *testing.T) {
			nodes, edges := shape.load()
			domain, err := BuildDomain(nodes, edges)
			require.NoError(t, err)
			mesh, err := domain.Triangulate()
			require.NoError(t, err)
			// n vertices and h holes always give n + 2h - 2 triangles
			assert.Len(t, mesh.Triangles(), shape.triangles)
			assert.Equal(t, len(nodes)+2*(len(domain.Loops())-1)-2, shape.triangles)
			AssertValidTriangulation(t, domain, mesh)
		})
	}
}

func fixture(name string) func() ([]Point, []Edge) {
	return func() ([]Point, []Edge) {
		return LoadFixture(name)
	}
}

func TestTriangulateFront_InteriorPoints(t *testing.T) {
	// 3x3 grid: corners, edge midpoints, and the center
	nodes := []Point{
		{0, 0}, {2, 0}, {2, 2}, {0, 2},
		{1, 0}, {2, 1}, {1, 2}, {0, 1},
		{1, 1},
	}
	edges := []Edge{{0, 4}, {4, 1}, {1, 5}, {5, 2}, {2, 6}, {6, 3}, {3, 7}, {7, 0}}
	domain, err := BuildDomain(nodes, edges)
	require.NoError(t, err)
	assert.Equal(t, []int{8}, domain.InteriorPoints())

	mesh, err := domain.Triangulate()
	require.NoError(t, err)
	assert.Len(t, mesh.Triangles(), 8)
	AssertValidTriangulation(t, domain, mesh)

	usesCenter := false
	for _, tri := range mesh.Triangles() {
		if tri.A == 8 || tri.B == 8 || tri.C == 8 {
			usesCenter = true
		}
	}
	assert.True(t, usesCenter)
}

func TestTriangulateFront_Unmeshable(t *testing.T) {
	// A clockwise square has nothing on the left of its edges
	nodes := []Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	boundary := []Edge{{0, 3}, {3, 2}, {2, 1}, {1, 0}}
	_, err := TriangulateFront(nodes, nil, boundary)
	assert.True(t, errors.Is(err, ErrUnmeshableFront))
	assert.Equal(t, "UnmeshableFront", KindOf(err))
}

func TestFront(t *testing.T) {
	f := newFront([]Edge{{0, 1}, {1, 2}})
	f.advance(Edge{2, 1})
	assert.False(t, f.live.Contains(Edge{1, 2}), "meeting edges cancel out")
	assert.False(t, f.live.Contains(Edge{2, 1}))

	e, ok := f.pop()
	require.True(t, ok)
	assert.Equal(t, Edge{0, 1}, e, "stale entries are skipped")
	_, ok = f.pop()
	assert.False(t, ok)
}
