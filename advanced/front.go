package advanced

import (
	"sort"

	"github.com/pkg/errors"
)

// Advancing front triangulation.
//
// The front is the set of directed edges that still have unmeshed area on
// their left. It starts out as the oriented boundary (holes included, which is
// why their winding is reversed), and each step consumes one edge, builds a
// triangle on it, and replaces it with the triangle's two other sides. When a
// new side is the reverse of an edge already on the front, the two advances
// have met and both disappear. Meshing is complete when the front is empty.
//
// Processing order is LIFO so that the output is reproducible. The stack keeps
// the order and the EdgeSet answers membership; edges removed from the set are
// left on the stack and skipped when they surface.

type front struct {
	stack EdgeStack
	live  EdgeSet
}

func newFront(boundary []Edge) *front {
	f := &front{
		stack: make(EdgeStack, 0, len(boundary)),
		live:  make(EdgeSet, len(boundary)),
	}
	for _, e := range boundary {
		f.push(e)
	}
	return f
}

func (f *front) push(e Edge) {
	f.stack.Push(e)
	f.live.Add(e)
}

// Take the most recently added live edge off the front.
func (f *front) pop() (Edge, bool) {
	for {
		e, ok := f.stack.Pop()
		if !ok {
			return Edge{}, false
		}
		if f.live.Remove(e) {
			return e, true
		}
	}
}

// Add a new triangle side to the front, or close the gap if its reverse is
// already there.
func (f *front) advance(e Edge) {
	if f.live.Remove(e.Reverse()) {
		return
	}
	f.push(e)
}

// Would the segment e cross any live front edge? Front edges sharing an
// endpoint with e are skipped, since meeting at a vertex is not a crossing.
func (f *front) blocks(nodes []Point, e Edge) bool {
	p, q := nodes[e.From], nodes[e.To]
	for other := range f.live {
		if e.SharesEndpoint(other) {
			continue
		}
		if SegmentsProperlyIntersect(p, q, nodes[other.From], nodes[other.To]) {
			return true
		}
	}
	return false
}

type scoredPoint struct {
	index int
	score float64
}

// Find the third point for the front edge e: strictly on its left, with the
// largest angle, and with neither new side crossing the front. A triangle that
// would cover another candidate, inside or on one of its sides, is also
// rejected. The angle criterion alone prefers such a point over the apex, but
// a side passing exactly through a front vertex is not a proper crossing, so
// collinear input could otherwise leave hanging vertices.
func (f *front) findThirdPoint(nodes []Point, candidates []int, e Edge) (int, error) {
	a, b := nodes[e.From], nodes[e.To]

	var options []scoredPoint
	for _, c := range candidates {
		if c == e.From || c == e.To || !IsLeftOf(nodes[c], a, b) {
			continue
		}
		score, err := AngleScore(a, b, nodes[c])
		if err != nil {
			return 0, err
		}
		options = append(options, scoredPoint{c, score})
	}
	// Candidates come in ascending index order, so ties go to the lowest index
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].score < options[j].score
	})

	for _, option := range options {
		c := option.index
		if f.blocks(nodes, Edge{e.From, c}) || f.blocks(nodes, Edge{c, e.To}) {
			continue
		}
		if coversCandidate(nodes, candidates, Triangle{e.From, e.To, c}) {
			continue
		}
		return c, nil
	}
	return 0, errors.Wrapf(ErrUnmeshableFront, "no valid third point for front edge (%d, %d)", e.From, e.To)
}

func coversCandidate(nodes []Point, candidates []int, t Triangle) bool {
	a, b, c := nodes[t.A], nodes[t.B], nodes[t.C]
	for _, p := range candidates {
		if p == t.A || p == t.B || p == t.C {
			continue
		}
		if insideOrOnTriangle(nodes[p], a, b, c) {
			return true
		}
	}
	return false
}

// Triangulate the region bounded by the oriented boundary. Third points are
// drawn from candidates, which should hold the boundary vertices plus any
// interior points; nil means every node is a candidate.
//
// Well formed boundaries always close the front, and every step shrinks the
// unmeshed area, so the triangle count is bounded. If the bound is exceeded
// anyway, the input was not well formed and we fail rather than loop.
func TriangulateFront(nodes []Point, candidates []int, boundary []Edge) ([]Triangle, error) {
	if candidates == nil {
		candidates = make([]int, len(nodes))
		for i := range nodes {
			candidates[i] = i
		}
	} else {
		candidates = append([]int(nil), candidates...)
		sort.Ints(candidates)
	}

	f := newFront(boundary)
	limit := 2*len(nodes) + len(boundary)
	triangles := make([]Triangle, 0, len(boundary))
	for {
		e, ok := f.pop()
		if !ok {
			break
		}
		if len(triangles) >= limit {
			return nil, errors.Wrapf(ErrUnmeshableFront, "front still open after %d triangles", limit)
		}

		c, err := f.findThirdPoint(nodes, candidates, e)
		if err != nil {
			return nil, err
		}
		triangles = append(triangles, Triangle{e.From, e.To, c})
		f.advance(Edge{e.From, c})
		f.advance(Edge{c, e.To})
	}
	return triangles, nil
}
