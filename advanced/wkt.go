package advanced

import (
	"github.com/peterstace/simplefeatures/geom"
	"github.com/pkg/errors"
)

// Build a Domain from a WKT POLYGON. The exterior ring and every interior ring
// become loops; their winding in the WKT does not matter. The parser's own
// geometry checks are disabled so that crossing or touching rings are reported
// by BuildDomain, with the same errors as any other input.
func DomainFromWKT(wkt string, opts ...Option) (*Domain, error) {
	g, err := geom.UnmarshalWKT(wkt, geom.DisableAllValidations)
	if err != nil {
		return nil, errors.Wrap(err, "parsing domain WKT")
	}
	poly, ok := g.AsPolygon()
	if !ok {
		return nil, errors.Wrapf(ErrMalformedBoundary, "domain WKT must be a POLYGON, got %s", g.Type())
	}
	if poly.IsEmpty() {
		return nil, errors.Wrap(ErrMalformedBoundary, "domain WKT is an empty POLYGON")
	}

	lines := []geom.LineString{poly.ExteriorRing()}
	for i := 0; i < poly.NumInteriorRings(); i++ {
		lines = append(lines, poly.InteriorRingN(i))
	}

	rings := make([][]Point, len(lines))
	for i, line := range lines {
		seq := line.Coordinates()
		// Rings repeat their first point at the end
		for j := 0; j < seq.Length()-1; j++ {
			xy := seq.GetXY(j)
			rings[i] = append(rings[i], Point{xy.X, xy.Y})
		}
	}
	nodes, edges := RingsToBoundary(rings...)
	return BuildDomain(nodes, edges, opts...)
}
