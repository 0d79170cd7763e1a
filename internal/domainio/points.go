package domainio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/femhub/meshgen"
	"github.com/pkg/errors"
)

// ReadPoints reads rings of points from newline separated lines in the form
// "x y", with each ring separated by an extra newline. Lines starting with #
// are ignored. Winding doesn't matter: the largest ring is the outer boundary
// and the others are holes.
func ReadPoints(in io.Reader) ([][]meshgen.Point, error) {
	var rings [][]meshgen.Point
	var points []meshgen.Point
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}

		// If it's empty, and we collected any points, this is the end of the ring
		if line == "" {
			if len(points) > 0 {
				rings = append(rings, points)
				points = nil
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	// Handle trailing ring if any
	if len(points) > 0 {
		rings = append(rings, points)
	}
	if len(rings) == 0 {
		return nil, errors.New("no points found")
	}
	return rings, nil
}

func parsePoint(line string) (meshgen.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return meshgen.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return meshgen.Point{}, errors.Wrap(err, "invalid x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return meshgen.Point{}, errors.Wrap(err, "invalid y")
	}
	return meshgen.Point{X: x, Y: y}, nil
}
