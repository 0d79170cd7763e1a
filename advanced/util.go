package advanced

import "math"

func (e Edge) Reverse() Edge {
	return Edge{e.To, e.From}
}

// Two edges are adjacent when they share an endpoint, regardless of direction.
// Adjacent edges can never cross properly, so intersection tests skip them.
func (e Edge) SharesEndpoint(other Edge) bool {
	return e.From == other.From || e.From == other.To || e.To == other.From || e.To == other.To
}

func (p Point) Sub(other Point) Point {
	return Point{p.X - other.X, p.Y - other.Y}
}

func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Z component of the 3D cross product
func (p Point) Det(other Point) float64 {
	return p.X*other.Y - p.Y*other.X
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *EdgeStack) Push(e Edge) {
	*s = append(*s, e)
}

// Pop returns false if the stack is empty
func (s *EdgeStack) Pop() (Edge, bool) {
	if len(*s) == 0 {
		return Edge{}, false
	}
	e := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return e, true
}

func (s *EdgeStack) Peek() (Edge, bool) {
	if len(*s) == 0 {
		return Edge{}, false
	}
	return (*s)[len(*s)-1], true
}

func (s *EdgeStack) Empty() bool {
	return len(*s) == 0
}

// The set counts multiplicity, so an edge that was pushed twice has to be
// removed twice.
func (set EdgeSet) Add(e Edge) {
	set[e]++
}

// Remove returns false if the edge was not in the set.
func (set EdgeSet) Remove(e Edge) bool {
	n, ok := set[e]
	if !ok {
		return false
	}
	if n <= 1 {
		delete(set, e)
	} else {
		set[e] = n - 1
	}
	return true
}

func (set EdgeSet) Contains(e Edge) bool {
	_, ok := set[e]
	return ok
}

func (set EdgeSet) Len() int {
	var n int
	for _, count := range set {
		n += count
	}
	return n
}
