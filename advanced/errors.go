package advanced

import "github.com/pkg/errors"

// Every failure of the engine wraps exactly one of these sentinels, so callers
// can tell them apart with errors.Is. None of them are retryable, and there is
// never a partial mesh.
var (
	// A boundary vertex has degree other than two, or a loop cannot be closed.
	ErrMalformedBoundary = errors.New("malformed boundary")
	// Two boundary edges that do not share an endpoint cross or touch.
	ErrSelfIntersectingBoundary = errors.New("boundary self-intersects")
	// Duplicate points, zero-area loops, or non-finite coordinates.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
	// The advancing front found no valid third point for some front edge.
	ErrUnmeshableFront = errors.New("unmeshable front")
	// Normalization target with non-positive width or height.
	ErrInvalidRectangle = errors.New("invalid rectangle")
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrMalformedBoundary, "MalformedBoundary"},
	{ErrSelfIntersectingBoundary, "SelfIntersectingBoundary"},
	{ErrDegenerateGeometry, "DegenerateGeometry"},
	{ErrUnmeshableFront, "UnmeshableFront"},
	{ErrInvalidRectangle, "InvalidRectangle"},
}

// KindOf gives a short label for the sentinel wrapped by err, or "" if err
// did not come from this package.
func KindOf(err error) string {
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return ""
}
