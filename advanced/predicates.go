package advanced

import (
	"math"

	"github.com/pkg/errors"
)

type Orientation int

const (
	Collinear Orientation = iota
	Left
	Right
)

func (o Orientation) String() string {
	switch o {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "collinear"
	}
}

// Which side of the directed line a->b the point c lies on. There is no
// tolerance here: only an exactly zero cross product counts as collinear.
func OrientationOf(a, b, c Point) Orientation {
	det := b.Sub(a).Det(c.Sub(a))
	switch {
	case det > 0:
		return Left
	case det < 0:
		return Right
	default:
		return Collinear
	}
}

// Is c strictly left of the directed edge a->b?
func IsLeftOf(c, a, b Point) bool {
	return OrientationOf(a, b, c) == Left
}

// Angle criterion for the advancing front. This is the cosine of the angle at
// c in the triangle abc, so minimizing it maximizes the angle, which favors
// well shaped triangles. If c coincides with a or b there is no angle, and we
// fail instead of producing NaN.
func AngleScore(a, b, c Point) (float64, error) {
	u := a.Sub(c)
	v := b.Sub(c)
	lenU := u.Length()
	lenV := v.Length()
	if lenU == 0 || lenV == 0 {
		return 0, errors.Wrapf(ErrDegenerateGeometry, "zero length vector in angle at %v", c)
	}
	score := u.Dot(v) / (lenU * lenV)
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return 0, errors.Wrapf(ErrDegenerateGeometry, "angle at %v is not finite", c)
	}
	return score, nil
}

// Do the open segments ab and cd cross? Touching at an endpoint, or any
// collinear overlap, is not a proper intersection. Callers are expected to skip
// segments that share an endpoint before calling this.
func SegmentsProperlyIntersect(a, b, c, d Point) bool {
	o1 := OrientationOf(a, b, c)
	o2 := OrientationOf(a, b, d)
	o3 := OrientationOf(c, d, a)
	o4 := OrientationOf(c, d, b)
	if o1 == Collinear || o2 == Collinear || o3 == Collinear || o4 == Collinear {
		return false
	}
	return o1 != o2 && o3 != o4
}

// Does an endpoint of one segment lie on the other one? This catches the
// T-junctions and collinear overlaps that SegmentsProperlyIntersect ignores.
func SegmentsTouch(a, b, c, d Point) bool {
	return onSegment(c, a, b) || onSegment(d, a, b) || onSegment(a, c, d) || onSegment(b, c, d)
}

// p lies on the closed segment ab
func onSegment(p, a, b Point) bool {
	if OrientationOf(a, b, p) != Collinear {
		return false
	}
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}

// Is p inside the counterclockwise triangle abc or on its boundary?
func insideOrOnTriangle(p, a, b, c Point) bool {
	return OrientationOf(a, b, p) != Right && OrientationOf(b, c, p) != Right && OrientationOf(c, a, p) != Right
}

// Shoelace formula over a closed ring of points. Counterclockwise rings have
// positive area.
func SignedArea(ring []Point) float64 {
	var sum float64
	for i, p := range ring {
		q := ring[CircularIndex(i+1, len(ring))]
		sum += p.Det(q)
	}
	return sum / 2
}

func (t Triangle) SignedArea(nodes []Point) float64 {
	return SignedArea([]Point{nodes[t.A], nodes[t.B], nodes[t.C]})
}
