package advanced

import (
	"math"

	"github.com/peterstace/simplefeatures/rtree"
	"github.com/pkg/errors"
)

func edgeBox(nodes []Point, e Edge) rtree.Box {
	p, q := nodes[e.From], nodes[e.To]
	return rtree.Box{
		MinX: math.Min(p.X, q.X),
		MinY: math.Min(p.Y, q.Y),
		MaxX: math.Max(p.X, q.X),
		MaxY: math.Max(p.Y, q.Y),
	}
}

// Check that no two boundary edges meet anywhere but at a shared endpoint.
// Only pairs with overlapping bounding boxes are tested exactly; the R-tree
// finds those without looking at every pair.
func CheckSelfIntersection(nodes []Point, boundary []Edge) error {
	items := make([]rtree.BulkItem, len(boundary))
	for i, e := range boundary {
		items[i] = rtree.BulkItem{Box: edgeBox(nodes, e), RecordID: i}
	}
	tree := rtree.BulkLoad(items)

	for i, e := range boundary {
		p, q := nodes[e.From], nodes[e.To]
		err := tree.RangeSearch(edgeBox(nodes, e), func(j int) error {
			// Each pair once
			if j <= i {
				return nil
			}
			other := boundary[j]
			r, s := nodes[other.From], nodes[other.To]
			var meets bool
			if e.SharesEndpoint(other) {
				meets = foldsBack(nodes, e, other)
			} else {
				meets = SegmentsProperlyIntersect(p, q, r, s) || SegmentsTouch(p, q, r, s)
			}
			if meets {
				return errors.Wrapf(ErrSelfIntersectingBoundary,
					"edge (%d, %d) meets edge (%d, %d)", e.From, e.To, other.From, other.To)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Adjacent edges may only meet at their shared vertex. If the far end of one
// lies on the other, the boundary doubles back on itself.
func foldsBack(nodes []Point, e, other Edge) bool {
	for _, pair := range [][2]Edge{{e, other}, {other, e}} {
		on, by := pair[0], pair[1]
		for _, v := range []int{by.From, by.To} {
			if v == on.From || v == on.To {
				continue
			}
			if onSegment(nodes[v], nodes[on.From], nodes[on.To]) {
				return true
			}
		}
	}
	return false
}
