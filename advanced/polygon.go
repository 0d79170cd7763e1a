package advanced

// Even-odd point-in-domain test over every boundary edge, holes included. A
// point on a hole is outside, a point in a hole's hole is inside again.
// Points exactly on the boundary are not considered inside.
func ContainsPointByEvenOdd(nodes []Point, boundary []Edge, p Point) bool {
	for _, e := range boundary {
		if onSegment(p, nodes[e.From], nodes[e.To]) {
			return false
		}
	}
	return CrossingCount(nodes, boundary, p)%2 == 1
}

// Crossing count helper for the even odd rule: the number of boundary edges
// crossed by a ray from p towards +X. Edges are treated as half open in Y so a
// ray through a vertex is counted once.
func CrossingCount(nodes []Point, boundary []Edge, p Point) int {
	crossingCount := 0
	for _, e := range boundary {
		v, w := nodes[e.From], nodes[e.To]
		if (v.Y > p.Y) == (w.Y > p.Y) {
			continue
		}
		x := v.X + (p.Y-v.Y)*(w.X-v.X)/(w.Y-v.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}
