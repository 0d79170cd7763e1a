package advanced

import (
	"math"
	"sort"

	"github.com/pkg/errors"
)

// Pick the outer loop and orient every loop so the inside of the domain is on
// the left of each edge. The loop with the largest absolute area is the outer
// contour and is made counterclockwise; every other loop is a hole and is made
// clockwise. Returns the oriented loops (outer first), and the same edges
// concatenated into a single boundary, which is what the front consumes.
func OrientLoops(nodes []Point, loops []Loop) ([]Loop, []Edge, error) {
	if len(loops) == 0 {
		return nil, nil, errors.Wrap(ErrMalformedBoundary, "no boundary loops")
	}

	type areaLoop struct {
		area float64
		loop Loop
	}
	sorted := make([]areaLoop, len(loops))
	for i, loop := range loops {
		area := loop.SignedArea(nodes)
		if area == 0 {
			return nil, nil, errors.Wrapf(ErrDegenerateGeometry, "loop starting at vertex %d has zero area", loop[0].From)
		}
		sorted[i] = areaLoop{area, loop}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return math.Abs(sorted[i].area) > math.Abs(sorted[j].area)
	})

	oriented := make([]Loop, len(sorted))
	var boundary []Edge
	var outerSign float64
	for i, al := range sorted {
		var flip bool
		if i == 0 {
			flip = al.area < 0
			outerSign = math.Copysign(1, al.area)
			if flip {
				outerSign = -outerSign
			}
		} else {
			flip = math.Copysign(1, al.area) == outerSign
		}

		loop := al.loop
		if flip {
			loop = loop.Flip()
		}
		oriented[i] = loop
		boundary = append(boundary, loop...)
	}
	return oriented, boundary, nil
}

// Check that the oriented loops describe one region with holes: every hole
// lies inside the outer loop, and no hole lies inside another one. Loops don't
// cross by this point, so testing a single vertex of each hole is enough.
func CheckNesting(nodes []Point, loops []Loop) error {
	if len(loops) == 0 {
		return nil
	}
	outer := []Edge(loops[0])
	for i, hole := range loops[1:] {
		p := nodes[hole[0].From]
		if !ContainsPointByEvenOdd(nodes, outer, p) {
			return errors.Wrapf(ErrMalformedBoundary, "hole through vertex %d is outside the outer boundary", hole[0].From)
		}
		for j, other := range loops[1:] {
			if i != j && ContainsPointByEvenOdd(nodes, []Edge(other), p) {
				return errors.Wrapf(ErrMalformedBoundary, "hole through vertex %d is inside another hole", hole[0].From)
			}
		}
	}
	return nil
}
