package advanced

import "github.com/pkg/errors"

// Facilities for turning an unordered pile of boundary edges into closed loops.
// The edges may be given in any order and with any direction; the loops that
// come out are walked consistently, but their winding is arbitrary until they
// go through OrientLoops.

// Check that every vertex touched by the boundary has exactly two incident
// edges. Anything else means the boundary is open, or that curves touch at a
// vertex, and neither can be meshed.
func CheckRegularity(edges []Edge) error {
	degree := make(map[int]int)
	for _, e := range edges {
		if e.From == e.To {
			return errors.Wrapf(ErrMalformedBoundary, "edge (%d, %d) has zero length", e.From, e.To)
		}
		degree[e.From]++
		degree[e.To]++
	}

	for _, e := range edges {
		for _, v := range []int{e.From, e.To} {
			switch n := degree[v]; {
			case n == 1:
				return errors.Wrapf(ErrMalformedBoundary, "boundary is not closed at vertex %d", v)
			case n > 2:
				return errors.Wrapf(ErrMalformedBoundary, "vertex %d is shared by %d edges, more than two", v, n)
			}
		}
	}
	return nil
}

// Extract all loops from the edges. The walk is deterministic: each loop
// starts from the first unused edge in input order, and is extended by the
// first unused edge (again in input order) touching the loop's current head.
// Edges that point the wrong way are reversed as they're consumed.
func ExtractLoops(edges []Edge) ([]Loop, error) {
	if err := CheckRegularity(edges); err != nil {
		return nil, err
	}

	// Incident edge indexes per vertex, in input order
	incident := make(map[int][]int)
	for i, e := range edges {
		incident[e.From] = append(incident[e.From], i)
		incident[e.To] = append(incident[e.To], i)
	}
	used := make([]bool, len(edges))

	nextUnused := func(v int) (int, bool) {
		for _, i := range incident[v] {
			if !used[i] {
				return i, true
			}
		}
		return 0, false
	}

	var loops []Loop
	for start := range edges {
		if used[start] {
			continue
		}
		used[start] = true
		loop := Loop{edges[start]}
		first := edges[start].From
		head := edges[start].To

		for head != first {
			i, ok := nextUnused(head)
			if !ok {
				return nil, errors.Wrapf(ErrMalformedBoundary, "missing boundary edge after vertex %d", head)
			}
			used[i] = true
			e := edges[i]
			if e.From != head {
				e = e.Reverse()
			}
			loop = append(loop, e)
			head = e.To
		}

		if len(loop) < 3 {
			return nil, errors.Wrapf(ErrMalformedBoundary, "loop through vertex %d has only %d edges", first, len(loop))
		}
		loops = append(loops, loop)
	}
	return loops, nil
}

// Reports whether an already sequenced edge list is made of closed loops, one
// after another. Unlike ExtractLoops this does not reorder anything, so it is a
// cheap check on edges that have been through OrientLoops.
func IsClosedCurve(edges []Edge) bool {
	if len(edges) == 0 {
		return false
	}
	first := edges[0]
	prev := first
	for _, e := range edges[1:] {
		if prev.To != e.From {
			if prev.To != first.From {
				return false
			}
			// New loop
			first = e
		}
		prev = e
	}
	return prev.To == first.From
}

// Reverse the loop's traversal sense: the order of the edges and each edge.
func (loop Loop) Flip() Loop {
	flipped := make(Loop, 0, len(loop))
	for i := len(loop) - 1; i >= 0; i-- {
		flipped = append(flipped, loop[i].Reverse())
	}
	return flipped
}

// The loop's vertices in traversal order, without repeating the first one.
func (loop Loop) Ring(nodes []Point) []Point {
	ring := make([]Point, len(loop))
	for i, e := range loop {
		ring[i] = nodes[e.From]
	}
	return ring
}

func (loop Loop) SignedArea(nodes []Point) float64 {
	return SignedArea(loop.Ring(nodes))
}

// Turn point rings into one node list and the edges walking each ring, in
// ring order.
func RingsToBoundary(rings ...[]Point) ([]Point, []Edge) {
	var nodes []Point
	var edges []Edge
	for _, ring := range rings {
		start := len(nodes)
		for i, p := range ring {
			nodes = append(nodes, p)
			edges = append(edges, Edge{start + i, start + CircularIndex(i+1, len(ring))})
		}
	}
	return nodes, edges
}
