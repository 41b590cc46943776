package basis

import "errors"

// Sentinel errors for the basis package. Every message is prefixed with
// "basis: " for consistency and easy grepping across logs. Wrap with
// fmt.Errorf("...: %w", ErrX) at call boundaries when extra context is
// needed; callers should still match via errors.Is.
var (
	// ErrInvalidDimensions is returned when a requested basis size is <= 0.
	ErrInvalidDimensions = errors.New("basis: dimensions must be > 0")

	// ErrAllocationFailed is returned when a requested size would overflow
	// the backing slice length (the Go-idiomatic analogue of a failed
	// allocation: the size itself, not the allocator, is at fault).
	ErrAllocationFailed = errors.New("basis: allocation failed")

	// ErrNonSquare signals an operation that requires a square matrix
	// received one that is not.
	ErrNonSquare = errors.New("basis: matrix is not square")

	// ErrDimensionMismatch indicates incompatible vector/matrix sizes in
	// FTRAN, BTRAN, or SetB0.
	ErrDimensionMismatch = errors.New("basis: dimension mismatch")

	// ErrSingular is returned when Doolittle LU encounters a zero pivot.
	// The factorization deliberately does not pivot to remain
	// deterministic and simple; a singular B0 is treated as a fatal
	// configuration error rather than something to route around.
	ErrSingular = errors.New("basis: singular matrix")

	// ErrOutOfRange indicates a row or column index outside [0, size).
	ErrOutOfRange = errors.New("basis: index out of range")
)
