package basis

import "fmt"

// Factorization is the concrete basis-factorization implementation
// consumed by package tableau through its own BasisFactorization
// interface. It carries an explicit base matrix B0 plus a replayable
// eta-update list (product form of the inverse), per the contract in
// spec §4.2.
type Factorization struct {
	m    int
	b0   *Dense
	lu   *luFactors
	etas []etaUpdate
}

// New constructs a Factorization for an m×m identity basis. Callers
// install the real basis via SetB0 once the outer solver has chosen an
// initial set of basic variables.
func New(m int) (*Factorization, error) {
	b0, err := NewDense(m)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m; i++ {
		_ = b0.Set(i, i, 1)
	}
	lu, err := decomposeLU(b0)
	if err != nil {
		return nil, err
	}

	return &Factorization{m: m, b0: b0, lu: lu}, nil
}

// Size returns m.
func (f *Factorization) Size() int { return f.m }

// FTRAN solves B*x = y and returns x as a fresh slice of length m.
func (f *Factorization) FTRAN(y []float64) ([]float64, error) {
	if len(y) != f.m {
		return nil, ErrDimensionMismatch
	}
	x, err := f.lu.solve(y)
	if err != nil {
		return nil, err
	}
	for i := range f.etas {
		x = f.etas[i].applyForward(x)
	}

	return x, nil
}

// BTRAN solves x^T*B = y^T (equivalently B^T*x = y).
func (f *Factorization) BTRAN(y []float64) ([]float64, error) {
	if len(y) != f.m {
		return nil, ErrDimensionMismatch
	}
	z := make([]float64, len(y))
	copy(z, y)
	for i := len(f.etas) - 1; i >= 0; i-- {
		z = f.etas[i].applyBackward(z)
	}

	return f.lu.solveTranspose(z)
}

// PushEta records a rank-1 update reflecting that column `leavingIndex`
// of the working basis has been replaced by the entering column, whose
// image under the current basis inverse is d.
func (f *Factorization) PushEta(leavingIndex int, d []float64) error {
	if leavingIndex < 0 || leavingIndex >= f.m {
		return fmt.Errorf("PushEta(%d): %w", leavingIndex, ErrOutOfRange)
	}
	if len(d) != f.m {
		return ErrDimensionMismatch
	}
	cp := make([]float64, len(d))
	copy(cp, d)
	f.etas = append(f.etas, etaUpdate{column: leavingIndex, d: cp})

	return nil
}

// CondenseEtas collapses all outstanding eta updates into an explicit
// new B0 (re-running LU on the result) and clears the eta list. A no-op
// when there are no outstanding etas.
func (f *Factorization) CondenseEtas() error {
	if len(f.etas) == 0 {
		return nil
	}

	return f.condenseByForwardMultiply()
}

// condenseByForwardMultiply rebuilds B0 by applying each eta (newest
// first) and then B0 to every identity column, which reconstructs the
// dense product B0*E1*...*Ek one column at a time.
func (f *Factorization) condenseByForwardMultiply() error {
	newB0, err := NewDense(f.m)
	if err != nil {
		return err
	}
	for col := 0; col < f.m; col++ {
		colVec := make([]float64, f.m)
		colVec[col] = 1
		for i := len(f.etas) - 1; i >= 0; i-- {
			colVec = applyEtaForwardMultiply(f.etas[i], colVec)
		}
		for row := 0; row < f.m; row++ {
			sum := 0.0
			for k := 0; k < f.m; k++ {
				v, err := f.b0.At(row, k)
				if err != nil {
					return err
				}
				sum += v * colVec[k]
			}
			if err := newB0.Set(row, col, sum); err != nil {
				return err
			}
		}
	}
	lu, err := decomposeLU(newB0)
	if err != nil {
		return err
	}
	f.b0 = newB0
	f.lu = lu
	f.etas = nil

	return nil
}

// applyEtaForwardMultiply computes Ei * col, where Ei is the identity
// except column e.column = e.d. Left-multiplying a vector v by Ei gives:
// (Ei*v)_j = v_j for j != e.column's row contributions aside from the
// e.column term... concretely Ei*v = v with the e.column-th component of
// v scaled into every row via d: (Ei*v)_row = v_row + d_row*v_col - ...
// Since Ei's only non-identity column is `column`, (Ei*v)_row =
// v_row (row != column contributions from other unit columns) plus
// d_row * v_column contributed by that one column, minus the unit-vector
// contribution it replaced (e_row at column==row). Concretely:
// Ei*v = v - v[column]*e_column + v[column]*d.
func applyEtaForwardMultiply(e etaUpdate, v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)
	vCol := v[e.column]
	out[e.column] = 0
	for i := range out {
		out[i] += vCol * e.d[i]
	}

	return out
}

// GetB0 returns a deep copy of the explicit base matrix. Callers must
// CondenseEtas first if they need B0 to reflect all applied pivots.
func (f *Factorization) GetB0() *Dense {
	return f.b0.Clone()
}

// SetB0 installs a new explicit base matrix, discarding any outstanding
// etas, and refreshes the cached LU decomposition.
func (f *Factorization) SetB0(m *Dense) error {
	if m.Size() != f.m {
		return ErrDimensionMismatch
	}
	lu, err := decomposeLU(m)
	if err != nil {
		return err
	}
	f.b0 = m.Clone()
	f.lu = lu
	f.etas = nil

	return nil
}

// Snapshot is a deep copy of a Factorization's state, for use in
// tableau's own snapshot/restore (C9).
type Snapshot struct {
	m    int
	b0   *Dense
	etas []etaUpdate
}

// Store returns a deep-copy snapshot of f.
func (f *Factorization) Store() *Snapshot {
	etasCopy := make([]etaUpdate, len(f.etas))
	for i, e := range f.etas {
		d := make([]float64, len(e.d))
		copy(d, e.d)
		etasCopy[i] = etaUpdate{column: e.column, d: d}
	}

	return &Snapshot{m: f.m, b0: f.b0.Clone(), etas: etasCopy}
}

// Restore replaces f's state with the deep-copied contents of snap.
func (f *Factorization) Restore(snap *Snapshot) error {
	lu, err := decomposeLU(snap.b0)
	if err != nil {
		return err
	}
	etasCopy := make([]etaUpdate, len(snap.etas))
	for i, e := range snap.etas {
		d := make([]float64, len(e.d))
		copy(d, e.d)
		etasCopy[i] = etaUpdate{column: e.column, d: d}
	}
	f.m = snap.m
	f.b0 = snap.b0.Clone()
	f.lu = lu
	f.etas = etasCopy

	return nil
}
