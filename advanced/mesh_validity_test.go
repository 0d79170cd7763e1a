package advanced

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

const Epsilon = 1e-9

// Helper to check that a mesh is a valid triangulation of a domain. The rules are:
// 1. Every triangle is counterclockwise, with nonzero area.
// 2. No directed edge is used by two triangles, so triangles don't overlap along a side.
// 3. Every boundary edge is a side of exactly one triangle, walked the same way.
// 4. Every boundary vertex is used by some triangle.
// 5. The sum of the areas of all triangles is equal to the area of the domain.
func AssertValidTriangulation(t *testing.T, domain *Domain, mesh *Mesh) {
	t.Helper()
	nodes := mesh.Nodes()
	sides := make(map[Edge]int)
	used := make(map[int]bool)
	var triangleArea float64
	for _, tri := range mesh.Triangles() {
		area := tri.SignedArea(nodes)
		require.Greater(t, area, 0.0, "triangle %v is not counterclockwise", tri)
		triangleArea += area
		for _, e := range []Edge{{tri.A, tri.B}, {tri.B, tri.C}, {tri.C, tri.A}} {
			sides[e]++
			require.Equal(t, 1, sides[e], "edge %v is used by two triangles", e)
		}
		used[tri.A] = true
		used[tri.B] = true
		used[tri.C] = true
	}

	for _, e := range domain.Boundary() {
		require.Equal(t, 1, sides[e], "boundary edge %v is not a triangle side", e)
		require.Zero(t, sides[e.Reverse()], "boundary edge %v is covered from outside", e)
		require.True(t, used[e.From], "boundary vertex %d is not in any triangle", e.From)
	}

	require.InDelta(t, domain.Area(), triangleArea, Epsilon*domain.Area(), "sum of the areas of all triangles must equal the area of the domain")

	// Interior sides must be shared by exactly two triangles, one per direction
	boundary := make(map[Edge]bool)
	for _, e := range domain.Boundary() {
		boundary[e] = true
	}
	for e := range sides {
		if boundary[e] {
			continue
		}
		require.Equal(t, 1, sides[e.Reverse()], "interior edge %v has no twin", e)
	}

	if os.Getenv("MESHGEN_DBG_DRAW") != "" {
		mesh.dbgDraw(40)
	}
}
