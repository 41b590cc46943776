package basis

import "fmt"

// luFactors holds a Doolittle LU decomposition of a square matrix: L is
// unit lower triangular, U is upper triangular, m = L*U.
//
// Adapted from the reference matrix/ops package's LU routine: no partial
// pivoting, so a zero pivot surfaces as ErrSingular rather than being
// routed around. That tradeoff is intentional here too — B0 is expected
// to be well-conditioned by construction (it is built from a caller-
// chosen basis of linearly independent columns), and pivoting would
// complicate the eta-update bookkeeping in C2 for no benefit at this
// scale.
type luFactors struct {
	n int
	l []float64 // n*n, row-major, unit lower triangular
	u []float64 // n*n, row-major, upper triangular
}

// decomposeLU performs Doolittle LU decomposition on m (n×n, row-major).
// Time: O(n^3). Memory: O(n^2) for L and U.
func decomposeLU(m *Dense) (*luFactors, error) {
	n := m.Size()
	l := make([]float64, n*n)
	u := make([]float64, n*n)
	for i := 0; i < n; i++ {
		l[i*n+i] = 1
	}

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				sum += l[i*n+k] * u[k*n+j]
			}
			aVal, _ := m.At(i, j)
			u[i*n+j] = aVal - sum
		}
		uDiag := u[i*n+i]
		if uDiag == 0 {
			return nil, fmt.Errorf("decomposeLU: pivot %d: %w", i, ErrSingular)
		}
		for j := i + 1; j < n; j++ {
			sum := 0.0
			for k := 0; k < i; k++ {
				sum += l[j*n+k] * u[k*n+i]
			}
			aVal, _ := m.At(j, i)
			l[j*n+i] = (aVal - sum) / uDiag
		}
	}

	return &luFactors{n: n, l: l, u: u}, nil
}

// solve solves L*U*x = y for x via forward then back substitution.
func (f *luFactors) solve(y []float64) ([]float64, error) {
	if len(y) != f.n {
		return nil, ErrDimensionMismatch
	}
	n := f.n

	// Forward substitution: L*z = y (L is unit lower triangular).
	z := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := y[i]
		for k := 0; k < i; k++ {
			sum -= f.l[i*n+k] * z[k]
		}
		z[i] = sum
	}

	// Back substitution: U*x = z.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := z[i]
		for k := i + 1; k < n; k++ {
			sum -= f.u[i*n+k] * x[k]
		}
		diag := f.u[i*n+i]
		if diag == 0 {
			return nil, fmt.Errorf("luFactors.solve: pivot %d: %w", i, ErrSingular)
		}
		x[i] = sum / diag
	}

	return x, nil
}

// solveTranspose solves (L*U)^T*x = y, i.e. U^T*L^T*x = y.
func (f *luFactors) solveTranspose(y []float64) ([]float64, error) {
	if len(y) != f.n {
		return nil, ErrDimensionMismatch
	}
	n := f.n

	// Forward substitution against U^T (lower triangular, non-unit diagonal).
	z := make([]float64, n)
	for i := 0; i < n; i++ {
		sum := y[i]
		for k := 0; k < i; k++ {
			sum -= f.u[k*n+i] * z[k]
		}
		diag := f.u[i*n+i]
		if diag == 0 {
			return nil, fmt.Errorf("luFactors.solveTranspose: pivot %d: %w", i, ErrSingular)
		}
		z[i] = sum / diag
	}

	// Back substitution against L^T (upper triangular, unit diagonal).
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := z[i]
		for k := i + 1; k < n; k++ {
			sum -= f.l[k*n+i] * x[k]
		}
		x[i] = sum
	}

	return x, nil
}
