package advanced

import "github.com/pkg/errors"

var ErrDegeneratePlane = errors.New("degenerate plane")

// Plane is the set of points p where Dot(normal, p) == d. The normal is not
// normalized.
type Plane struct {
	normal Vec3
	d      float64
}

func NewPlane(normal Vec3, d float64) (Plane, error) {
	if EqualScalar(normal, 0) {
		return Plane{}, errors.Wrap(ErrDegeneratePlane, "cannot create plane from zero normal vector")
	}
	return Plane{normal, d}, nil
}

// Build the plane through three points, with the normal given by the right
// hand rule over p1→p2, p1→p3.
func NewPlaneFromPoints(p1, p2, p3 Point3) (Plane, error) {
	if Equal(p1, p2) || Equal(p1, p3) || Equal(p2, p3) {
		return Plane{}, errors.Wrapf(ErrDegeneratePlane, "require three unique points, got %s, %s, %s", p1, p2, p3)
	}
	v12 := Sub(p2, p1)
	v13 := Sub(p3, p1)
	if Coincident3d(v12, v13) {
		return Plane{}, errors.Wrapf(ErrDegeneratePlane, "points %s, %s, %s are collinear", p1, p2, p3)
	}

	normal := Cross3D(v12, v13)
	return Plane{normal, Dot(normal, p1)}, nil
}

func (p Plane) Normal() Vec3 { return p.normal }
func (p Plane) D() float64   { return p.d }
