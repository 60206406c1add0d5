package advanced

import (
	"fmt"
	"math"
	"strings"

	"github.com/pkg/errors"
)

var ErrZeroNorm = errors.New("tried to normalize a vector with zero norm")

// Vector is the set of fixed-size coordinate arrays the package operates on.
// Dimensions are part of the type, so mixing a 2-D and a 3-D vector is a
// compile error rather than a runtime check.
type Vector interface {
	~[2]float64 | ~[3]float64
}

// Equality is component-wise under the package tolerance.
func Equal[V Vector](a, b V) bool {
	for i := 0; i < len(a); i++ {
		if !IsEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Check whether every coordinate equals the scalar s.
func EqualScalar[V Vector](v V, s float64) bool {
	for i := 0; i < len(v); i++ {
		if !IsEqual(v[i], s) {
			return false
		}
	}
	return true
}

func Add[V Vector](a, b V) V {
	var result V
	for i := 0; i < len(a); i++ {
		result[i] = snap(a[i] + b[i])
	}
	return result
}

// Add s to every coordinate.
func AddScalar[V Vector](v V, s float64) V {
	var result V
	for i := 0; i < len(v); i++ {
		result[i] = snap(v[i] + s)
	}
	return result
}

func Sub[V Vector](a, b V) V {
	var result V
	for i := 0; i < len(a); i++ {
		result[i] = snap(a[i] - b[i])
	}
	return result
}

// Subtract s from every coordinate.
func SubScalar[V Vector](v V, s float64) V {
	var result V
	for i := 0; i < len(v); i++ {
		result[i] = snap(v[i] - s)
	}
	return result
}

func Neg[V Vector](v V) V {
	var result V
	for i := 0; i < len(v); i++ {
		result[i] = snap(-v[i])
	}
	return result
}

func Scale[V Vector](v V, k float64) V {
	var result V
	for i := 0; i < len(v); i++ {
		result[i] = snap(v[i] * k)
	}
	return result
}

// Indexed read. An index past the dimension is a programming error and
// panics with a GeomError.
func At[V Vector](v V, i int) float64 {
	if i < 0 || i >= len(v) {
		fatalf("vector index %d out of range for dimension %d", i, len(v))
	}
	return v[i]
}

// Indexed write, with the same bounds as At.
func Set[V Vector](v *V, i int, value float64) {
	if i < 0 || i >= len(*v) {
		fatalf("vector index %d out of range for dimension %d", i, len(*v))
	}
	(*v)[i] = value
}

func Dot[V Vector](a, b V) float64 {
	var result float64
	for i := 0; i < len(a); i++ {
		result += a[i] * b[i]
	}
	return result
}

// Euclidean norm.
func Norm[V Vector](v V) float64 {
	return math.Sqrt(Dot(v, v))
}

// Convert v to a unit vector in place. Fails with ErrZeroNorm if the norm is
// within tolerance of zero, in which case v is left untouched.
func ToUnitVector[V Vector](v *V) error {
	magnitude := Norm(*v)
	if IsZero(magnitude) {
		return errors.Wrapf(ErrZeroNorm, "normalizing %s", Format(*v))
	}
	for i := 0; i < len(*v); i++ {
		(*v)[i] /= magnitude
	}
	return nil
}

// Return the unit vector pointing the same way as v.
func Normalize[V Vector](v V) (V, error) {
	if err := ToUnitVector(&v); err != nil {
		return v, err
	}
	return v, nil
}

// Format the vector as "{x, y[, z]}".
func Format[V Vector](v V) string {
	parts := make([]string, len(v))
	for i := 0; i < len(v); i++ {
		parts[i] = fmt.Sprint(v[i])
	}
	return fmt.Sprintf("{%s}", strings.Join(parts, ", "))
}
