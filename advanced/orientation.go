package advanced

import "sort"

// Orientation classifies a point c against the directed segment a→b.
type Orientation int

const (
	// c is strictly right of a→b (clockwise turn)
	Negative Orientation = iota
	// c is strictly left of a→b (counterclockwise turn)
	Positive
	// c is on the line, past b
	Beyond
	// c is on the line, before a
	Behind
	// c is on the segment strictly between a and b
	InInterval
	// c coincides with a
	Origin
	// c coincides with b
	Destination
)

var orientationLabels = [...]string{
	"NEGATIVE",
	"POSITIVE",
	"BEYOND",
	"BEHIND",
	"IN_INTERVAL",
	"ORIGIN",
	"DESTINATION",
}

func (o Orientation) String() string {
	if o < 0 || int(o) >= len(orientationLabels) {
		return "UNKNOWN"
	}
	return orientationLabels[o]
}

// Classify c relative to the directed segment from a to b. Endpoint
// coincidence is checked before the area sign, so a point on an endpoint never
// reaches the collinear distance comparison.
func Orientation2d(a, b, c Point) Orientation {
	if Equal(a, c) {
		return Origin
	}
	if Equal(b, c) {
		return Destination
	}

	ab := Sub(b, a)
	ac := Sub(c, a)

	area := snap(Area2d(ab, ac))
	if area < 0 {
		return Negative
	}
	if area > 0 {
		return Positive
	}

	// Collinear
	if Dot(ab, ac) < 0 {
		return Behind
	}
	if Norm(ab) < Norm(ac) {
		return Beyond
	}
	return InInterval
}

// Sort points by x, then y. X values within tolerance count as equal.
func LexicographicOrder(points []Point) {
	sort.Slice(points, func(i, j int) bool {
		a, b := points[i], points[j]
		if IsEqual(a.X(), b.X()) {
			return a.Y() < b.Y()
		}
		return a.X() < b.X()
	})
}
