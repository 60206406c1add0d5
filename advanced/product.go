package advanced

import "math"

// 2-D cross product, i.e. twice the signed area of the triangle (0, a, b).
// Positive when b is counterclockwise from a.
func Cross2D(a, b Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

func Cross3D(a, b Vec3) Vec3 {
	return Vec3{
		a.Y()*b.Z() - a.Z()*b.Y(),
		a.Z()*b.X() - a.X()*b.Z(),
		a.X()*b.Y() - a.Y()*b.X(),
	}
}

// Signed area of the triangle spanned by a and b.
func Area2d(a, b Vec2) float64 {
	return Cross2D(a, b) / 2
}

// Unsigned area of the triangle spanned by a and b.
func Area3d(a, b Vec3) float64 {
	return Norm(Cross3D(a, b)) / 2
}

// Vectors are coincident (parallel or antiparallel) when the triangle they
// span has no area.
func Coincident2d(a, b Vec2) bool {
	return IsZero(Area2d(a, b))
}

func Coincident3d(a, b Vec3) bool {
	return IsZero(Area3d(a, b))
}

// Distance between two points.
func Distance[V Vector](a, b V) float64 {
	return Norm(Sub(a, b))
}

// Unsigned area of a simple polygon by the shoelace formula. Useful for
// checking hulls.
func PolygonArea(points []Point) float64 {
	var sum float64
	for i, p := range points {
		q := points[CircularIndex(i+1, len(points))]
		sum += Cross2D(p, q)
	}
	return math.Abs(sum) / 2
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
