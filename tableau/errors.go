package tableau

import "errors"

var (
	// ErrInvalidDimensions is returned when m or n is non-positive, or m > n.
	ErrInvalidDimensions = errors.New("tableau: invalid dimensions")

	// ErrAllocationFailed is returned when a requested size would overflow
	// an int-sized buffer. Go's allocator does not surface out-of-memory as
	// a recoverable error the way a failing C++ `new` would; this sentinel
	// is raised at the point the size itself is unreasonable.
	ErrAllocationFailed = errors.New("tableau: allocation failed")

	// ErrInvalidEquationAddedToTableau is returned by AddEquation when the
	// equation's auxVariable does not equal the tableau's current n.
	ErrInvalidEquationAddedToTableau = errors.New("tableau: invalid equation added to tableau")

	// ErrOutOfRange is returned when a variable, row, or column index falls
	// outside the tableau's current dimensions.
	ErrOutOfRange = errors.New("tableau: index out of range")

	// ErrBoundsInvalid is returned by operations that require boundsValid
	// (PerformPivot, PerformDegeneratePivot) when it has been cleared by a
	// prior TightenLowerBound/TightenUpperBound/SetLowerBound/SetUpperBound
	// call.
	ErrBoundsInvalid = errors.New("tableau: bounds invalid, backtrack required")

	// ErrAssignmentNotValid is returned by StoreState when the caller has
	// not computed a valid assignment first.
	ErrAssignmentNotValid = errors.New("tableau: assignment not valid")

	// ErrNotNonBasic guards operations that require a variable to be
	// non-basic. ErrNotBasic is its counterpart for the basic side; no
	// operation in this package currently returns it.
	ErrNotBasic    = errors.New("tableau: variable is not basic")
	ErrNotNonBasic = errors.New("tableau: variable is not non-basic")

	// ErrDimensionMismatchTableau is returned when a caller-supplied slice
	// does not match the tableau's current dimensions.
	ErrDimensionMismatchTableau = errors.New("tableau: dimension mismatch")
)
