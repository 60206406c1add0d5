package advanced

import (
	"embed"
	"log"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs point sets. This is not a full
// (or even correct) svg parser. It finds whatever the first polygon is and
// returns its points in document order. If anything goes wrong, it panics.
//
// Fixtures are available by name in the fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, false)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) != 1 {
		log.Fatalf("Expected exactly one polygon in fixture %q, found %d", name, len(polygons))
	}

	var points []Point
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, Point{x, y})
	}
	return points
}

// Some ad hoc fixtures

// Ten points alternating between an outer and inner radius. The hull is the
// five outer points.
func SimpleStar() []Point {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		radius := float64(outerRadius)
		if i%2 == 1 {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{radius * math.Cos(angle), radius * math.Sin(angle)})
	}
	return points
}

func UnitSquareWithCenter() []Point {
	return []Point{
		{0, 0},
		{1, 0},
		{1, 1},
		{0, 1},
		{0.5, 0.5},
	}
}

// Points scattered uniformly in the square [-size, size]².
func RandomCloud(seed int64, n int, size float64) []Point {
	rng := rand.New(rand.NewSource(seed))
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{
			(rng.Float64()*2 - 1) * size,
			(rng.Float64()*2 - 1) * size,
		}
	}
	return points
}
