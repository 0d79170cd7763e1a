package advanced

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs nodes and boundary edges. This
// is not a full (or even correct) svg parser. Every <polygon> element becomes
// one loop; the first is meant to be the outer contour, but since the engine
// figures that out by area, the order and winding don't matter. If anything
// goes wrong, it bails out of the test binary.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) ([]Point, []Edge) {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}

	var rings [][]Point
	for _, polygonEl := range polygons {
		pointString := polygonEl.Attributes["points"]
		var ring []Point
		for _, pointString := range strings.Fields(pointString) {
			pointStrings := strings.Split(pointString, ",")
			if len(pointStrings) != 2 {
				log.Fatalf("Invalid point string %q", pointString)
			}
			x, err := strconv.ParseFloat(pointStrings[0], 64)
			if err != nil {
				log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
			}
			y, err := strconv.ParseFloat(pointStrings[1], 64)
			if err != nil {
				log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
			}
			ring = append(ring, Point{x, y})
		}
		rings = append(rings, ring)
	}
	return RingsToBoundary(rings...)
}

func reverseRing(ring []Point) []Point {
	reversed := make([]Point, 0, len(ring))
	for i := len(ring) - 1; i >= 0; i-- {
		reversed = append(reversed, ring[i])
	}
	return reversed
}

// Some ad hoc code specified fixtures

func RegularPolygon(n int, radius float64) []Point {
	var points []Point
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}

func starRing(x, y, outerRadius, innerRadius float64) []Point {
	var points []Point
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: x + radius*math.Cos(angle), Y: y + radius*math.Sin(angle)})
	}
	return points
}

func SimpleStar() ([]Point, []Edge) {
	return RingsToBoundary(starRing(0, 0, 5, 2))
}

func SquareWithHole() ([]Point, []Edge) {
	outer := []Point{
		{X: -5, Y: -5},
		{X: 5, Y: -5},
		{X: 5, Y: 5},
		{X: -5, Y: 5},
	}

	// Wound the same way as the outer square, on purpose
	hole := []Point{
		{X: -2, Y: -2},
		{X: 2, Y: -2},
		{X: 2, Y: 2},
		{X: -2, Y: 2},
	}
	return RingsToBoundary(outer, hole)
}

func StarOutline() ([]Point, []Edge) {
	const filledOuterRadius = 10
	const filledInnerRadius = 5
	const holeOuterRadius = filledOuterRadius - 2
	const holeInnerRadius = filledInnerRadius - 2
	return RingsToBoundary(
		starRing(0, 0, filledOuterRadius, filledInnerRadius),
		reverseRing(starRing(0, 0, holeOuterRadius, holeInnerRadius)),
	)
}

func MultipleHoles() ([]Point, []Edge) {
	// In this test, we want several holes of different shapes and windings
	return RingsToBoundary(
		// Outer star
		starRing(0, 0, 10, 7),
		// Top hole
		reverseRing(starRing(1.5, 4.5, 2, 1)),
		// Bottom hole
		starRing(1.8, -4.5, 2, 1),
		// Center hole
		reverseRing(RegularPolygon(5, 2)),
	)
}
