package advanced

import "github.com/pkg/errors"

var ErrDegenerateLine = errors.New("require two unique points for a line")

// A line through two distinct points, directed from origin to dest. The 2-D
// segment predicates live on Segment, so they can't be called on 3-D lines.
type Line[V Vector] struct {
	origin, dest V
}

func NewLine[V Vector](origin, dest V) (Line[V], error) {
	if Equal(origin, dest) {
		return Line[V]{}, errors.Wrapf(ErrDegenerateLine, "origin %s equals destination %s", Format(origin), Format(dest))
	}
	return Line[V]{origin, dest}, nil
}

func (l Line[V]) Origin() V { return l.origin }
func (l Line[V]) Dest() V   { return l.dest }

// Direction from origin to dest. Not normalized.
func (l Line[V]) Dir() V {
	return Sub(l.dest, l.origin)
}

type Segment struct {
	Line[Vec2]
}

func NewSegment(origin, dest Point) (Segment, error) {
	line, err := NewLine(origin, dest)
	if err != nil {
		return Segment{}, err
	}
	return Segment{line}, nil
}

// Check if the point lies on the closed segment.
func (s Segment) Contains(p Point) bool {
	switch Orientation2d(s.origin, s.dest, p) {
	case Origin, Destination, InInterval:
		return true
	}
	return false
}

// Two segments intersect if either contains an endpoint of the other, or if
// each one's endpoints fall on opposite sides of the other.
func (s Segment) Intersects(other Segment) bool {
	if s.Contains(other.origin) ||
		s.Contains(other.dest) ||
		other.Contains(s.origin) ||
		other.Contains(s.dest) {
		return true
	}

	otherOrigin := Orientation2d(s.origin, s.dest, other.origin)
	otherDest := Orientation2d(s.origin, s.dest, other.dest)
	thisOrigin := Orientation2d(other.origin, other.dest, s.origin)
	thisDest := Orientation2d(other.origin, other.dest, s.dest)

	return xor(otherOrigin == Negative, otherDest == Negative) &&
		xor(thisOrigin == Negative, thisDest == Negative)
}

// Intersection of the infinite lines through a and b. This assumes the caller
// already knows they intersect (see Intersects). Parallel lines give a
// meaningless result.
func GetIntersection(a, b Segment) Point {
	dirB := b.Dir()
	normalB := Vec2{-dirB.Y(), dirB.X()}

	t := Dot(normalB, Sub(b.origin, a.origin)) / Dot(normalB, a.Dir())
	return Add(a.origin, Scale(a.Dir(), t))
}
