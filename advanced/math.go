package advanced

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Tolerance is the fixed absolute epsilon used for every floating point
// equality in the package. It does not scale with magnitude.
const Tolerance = 1e-6

// To compensate for imprecision in floats, equality is tolerance based. Every
// "coincident", "zero" or "on the line" decision goes through here.
func IsEqual[T constraints.Float](x, y T) bool {
	return math.Abs(float64(x-y)) < Tolerance
}

func IsZero[T constraints.Float](x T) bool {
	return IsEqual(x, 0)
}

// Snap values within tolerance of zero to exactly zero, so that -0 and tiny
// residues don't leak through chained arithmetic.
func snap(x float64) float64 {
	if IsZero(x) {
		return 0
	}
	return x
}

func xor(a, b bool) bool {
	return a != b
}
