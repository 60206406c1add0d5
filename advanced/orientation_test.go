package advanced

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrientation2d(t *testing.T) {
	cases := []struct {
		a, b, c  Point
		expected Orientation
	}{
		{Point{0, 0}, Point{1, 0}, Point{1, 1}, Positive},
		{Point{0, 0}, Point{1, 0}, Point{1, -1}, Negative},
		{Point{0, 0}, Point{1, 0}, Point{2, 0}, Beyond},
		{Point{0, 0}, Point{1, 0}, Point{-1, 0}, Behind},
		{Point{0, 0}, Point{2, 0}, Point{1, 0}, InInterval},
		{Point{0, 0}, Point{1, 0}, Point{0, 0}, Origin},
		{Point{0, 0}, Point{1, 0}, Point{1, 0}, Destination},
		// Endpoint coincidence is tolerant and wins over the area check
		{Point{0, 0}, Point{1, 0}, Point{Tolerance / 2, Tolerance / 2}, Origin},
		{Point{0, 0}, Point{1, 0}, Point{1, -Tolerance / 2}, Destination},
		// Tiny areas count as collinear
		{Point{0, 0}, Point{1, 0}, Point{3, Tolerance / 10}, Beyond},
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%s %s %s is %s", c.a, c.b, c.c, c.expected), func(t *testing.T) {
			assert.Equal(t, c.expected, Orientation2d(c.a, c.b, c.c))
		})
	}
}

func TestOrientation2d_Antisymmetric(t *testing.T) {
	cloud := RandomCloud(6, 90, 10)
	for i := 0; i+2 < len(cloud); i += 3 {
		a, b, c := cloud[i], cloud[i+1], cloud[i+2]
		switch Orientation2d(a, b, c) {
		case Positive:
			assert.Equal(t, Negative, Orientation2d(b, a, c))
		case Negative:
			assert.Equal(t, Positive, Orientation2d(b, a, c))
		}
	}
}

func TestOrientationString(t *testing.T) {
	assert.Equal(t, "IN_INTERVAL", InInterval.String())
	assert.Equal(t, "DESTINATION", Destination.String())
	assert.Equal(t, "UNKNOWN", Orientation(42).String())
}

func TestLexicographicOrder(t *testing.T) {
	points := []Point{{1, 1}, {0, 5}, {1, 0}, {0, 2}, {1 + Tolerance/2, -1}}
	LexicographicOrder(points)
	assert.Equal(t, []Point{{0, 2}, {0, 5}, {1 + Tolerance/2, -1}, {1, 0}, {1, 1}}, points)
}
