// A small computational geometry kernel for Go.
//
// This package exposes the common entry points: the convex hull of a point set
// and the intersection of two segments. The full kernel (vectors, the
// orientation predicate, lines, planes) lives in the advanced package.
package geom

import "github.com/osuushi/geom/advanced"

type Point = advanced.Point
type Point3 = advanced.Point3
type Vec2 = advanced.Vec2
type Vec3 = advanced.Vec3
type Segment = advanced.Segment
type Plane = advanced.Plane
type Orientation = advanced.Orientation

// Compute the convex hull of a point set.
//
// The hull lists each vertex once, counterclockwise, starting at the
// lexicographically smallest point. Fewer than two points is an error.
func ConvexHull(points []Point) (result []Point, err error) {
	defer func() {
		recoveredErr := advanced.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	return advanced.ConvexHull2D(points), nil
}

// Intersect the segments a1-a2 and b1-b2.
//
// If they don't intersect, ok is false. If they overlap along a line, the
// intersection is not a single point, and the first endpoint lying on the
// other segment is returned. A segment whose endpoints coincide is an error.
func SegmentIntersection(a1, a2, b1, b2 Point) (point Point, ok bool, err error) {
	a, err := advanced.NewSegment(a1, a2)
	if err != nil {
		return Point{}, false, err
	}
	b, err := advanced.NewSegment(b1, b2)
	if err != nil {
		return Point{}, false, err
	}

	if !a.Intersects(b) {
		return Point{}, false, nil
	}

	if advanced.Coincident2d(a.Dir(), b.Dir()) {
		for _, p := range []Point{a1, a2} {
			if b.Contains(p) {
				return p, true, nil
			}
		}
		for _, p := range []Point{b1, b2} {
			if a.Contains(p) {
				return p, true, nil
			}
		}
	}
	return advanced.GetIntersection(a, b), true, nil
}
