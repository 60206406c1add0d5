package advanced

import "github.com/pkg/errors"

// Out-of-range indexing and hulls over fewer than two points are contract
// violations rather than recoverable failures, so the kernel panics on them.
// The public API in the root package recovers and converts to an error.

// GeomError marks panics raised by this package, so that recovery doesn't
// swallow runtime errors.
type GeomError struct {
	error
}

// Panic with a GeomError.
func fatalf(format string, args ...interface{}) {
	panic(GeomError{errors.Errorf(format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if geomError, ok := r.(GeomError); ok {
			return geomError.error
		}
		panic(r)
	}
	return nil
}
