package tableau

import (
	"fmt"

	"github.com/nomos-verify/tableau/basis"
	"github.com/nomos-verify/tableau/numeric"
)

// New constructs an unconfigured Tableau. Call SetDimensions before any
// other operation.
func New(opts ...Option) *Tableau {
	return &Tableau{opts: gatherOptions(opts)}
}

// SetDimensions allocates every state vector for m equality rows and n
// total variables, and installs a fresh identity basis factorization.
// The caller is expected to mark m variables basic whose columns of A
// form an identity submatrix (e.g. slack/auxiliary variables); the
// factorization always starts from the identity, so a non-identity
// initial basis is a caller error.
func (t *Tableau) SetDimensions(m, n int) error {
	if m <= 0 || n < m {
		return fmt.Errorf("SetDimensions(%d,%d): %w", m, n, ErrInvalidDimensions)
	}
	if n > 0 && m > (1<<31)/n {
		return fmt.Errorf("SetDimensions(%d,%d): %w", m, n, ErrAllocationFailed)
	}

	fact, err := basis.New(m)
	if err != nil {
		return err
	}

	nm := n - m
	t.m, t.n = m, n
	t.a = make([]float64, n*m)
	t.b = make([]float64, m)
	t.lb = make([]float64, n)
	t.ub = make([]float64, n)
	for i := range t.lb {
		t.lb[i] = numeric.NegativeInfinity()
		t.ub[i] = numeric.PositiveInfinity()
	}
	t.basicIndexToVariable = make([]int, m)
	t.nonBasicIndexToVariable = make([]int, nm)
	t.variableToIndex = make([]int, n)
	t.isBasic = make([]bool, n)
	t.xN = make([]float64, nm)
	t.xB = make([]float64, m)
	t.status = make([]BasicStatus, m)
	t.boundsValid = true
	t.assignmentValid = false
	t.factorization = fact
	t.d = make([]float64, m)
	t.basicCosts = make([]float64, m)
	t.multipliers = make([]float64, m)
	t.reducedCost = make([]float64, nm)
	t.enteringIndex = -1
	t.leavingIndex = m
	t.globalWatchers = nil
	t.varWatchers = make(map[int][]Watcher)

	return nil
}

// GetM returns the current number of equality rows.
func (t *Tableau) GetM() int { return t.m }

// GetN returns the current number of variables.
func (t *Tableau) GetN() int { return t.n }

// SetEntryValue writes A[row, column] = value.
func (t *Tableau) SetEntryValue(row, column int, value float64) error {
	if row < 0 || row >= t.m || column < 0 || column >= t.n {
		return fmt.Errorf("SetEntryValue(%d,%d): %w", row, column, ErrOutOfRange)
	}
	t.a[column*t.m+row] = value

	return nil
}

// SetRightHandSide overwrites b in full; len(values) must equal m.
func (t *Tableau) SetRightHandSide(values []float64) error {
	if len(values) != t.m {
		return ErrDimensionMismatchTableau
	}
	copy(t.b, values)

	return nil
}

// SetRightHandSideValue overwrites a single entry of b.
func (t *Tableau) SetRightHandSideValue(index int, value float64) error {
	if index < 0 || index >= t.m {
		return fmt.Errorf("SetRightHandSideValue(%d): %w", index, ErrOutOfRange)
	}
	t.b[index] = value

	return nil
}

// MarkAsBasic records that variable is in the initial basis. Must be
// called before InitializeTableau, exactly m times, with distinct
// variables whose A-columns form the identity (see SetDimensions).
func (t *Tableau) MarkAsBasic(variable int) error {
	if variable < 0 || variable >= t.n {
		return fmt.Errorf("MarkAsBasic(%d): %w", variable, ErrOutOfRange)
	}
	t.isBasic[variable] = true

	return nil
}

// SetLowerBound installs a new lower bound, notifies watchers, and
// refreshes boundsValid.
func (t *Tableau) SetLowerBound(variable int, value float64) error {
	if variable < 0 || variable >= t.n {
		return fmt.Errorf("SetLowerBound(%d): %w", variable, ErrOutOfRange)
	}
	t.lb[variable] = value
	t.notifyLowerBound(variable, value)
	t.checkBoundsValidOne(variable)

	return nil
}

// SetUpperBound installs a new upper bound, notifies watchers, and
// refreshes boundsValid.
func (t *Tableau) SetUpperBound(variable int, value float64) error {
	if variable < 0 || variable >= t.n {
		return fmt.Errorf("SetUpperBound(%d): %w", variable, ErrOutOfRange)
	}
	t.ub[variable] = value
	t.notifyUpperBound(variable, value)
	t.checkBoundsValidOne(variable)

	return nil
}

// GetLowerBound returns variable's lower bound.
func (t *Tableau) GetLowerBound(variable int) float64 { return t.lb[variable] }

// GetUpperBound returns variable's upper bound.
func (t *Tableau) GetUpperBound(variable int) float64 { return t.ub[variable] }

// IsBasic reports whether variable currently belongs to the basis.
func (t *Tableau) IsBasic(variable int) bool { return t.isBasic[variable] }

// BasicIndexToVariable maps a basic index (0..m-1) to its variable.
func (t *Tableau) BasicIndexToVariable(index int) int { return t.basicIndexToVariable[index] }

// NonBasicIndexToVariable maps a non-basic index (0..n-m-1) to its variable.
func (t *Tableau) NonBasicIndexToVariable(index int) int { return t.nonBasicIndexToVariable[index] }

// VariableToIndex returns the position of variable within whichever of
// the two index maps currently contains it.
func (t *Tableau) VariableToIndex(variable int) int { return t.variableToIndex[variable] }

// GetA returns a read-only view of the full column-major coefficient
// matrix. The slice aliases internal storage and is invalidated by the
// next mutating call (SetEntryValue, AddEquation).
func (t *Tableau) GetA() []float64 { return t.a }

// GetAColumn returns a read-only view of variable's column of A, length m.
func (t *Tableau) GetAColumn(variable int) []float64 {
	return t.a[variable*t.m : variable*t.m+t.m]
}

// GetRightHandSide returns a read-only view of b.
func (t *Tableau) GetRightHandSide() []float64 { return t.b }

// InitializeTableau assigns non-basic indices to every variable not
// marked basic (in ascending variable order), sets every non-basic to
// its lower bound, and computes the initial assignment.
func (t *Tableau) InitializeTableau() error {
	nonBasicIndex := 0
	for v := 0; v < t.n; v++ {
		if !t.isBasic[v] {
			t.nonBasicIndexToVariable[nonBasicIndex] = v
			t.variableToIndex[v] = nonBasicIndex
			nonBasicIndex++
		}
	}
	assertf(nonBasicIndex == t.n-t.m, "InitializeTableau: expected %d non-basics, marked %d basic", t.n-t.m, t.n-nonBasicIndex)

	basicIndex := 0
	for v := 0; v < t.n; v++ {
		if t.isBasic[v] {
			t.basicIndexToVariable[basicIndex] = v
			t.variableToIndex[v] = basicIndex
			basicIndex++
		}
	}

	for i := 0; i < t.n-t.m; i++ {
		v := t.nonBasicIndexToVariable[i]
		if err := t.setNonBasicAssignment(v, t.lb[v]); err != nil {
			return err
		}
	}

	return t.ComputeAssignment()
}

func (t *Tableau) checkBoundsValidOne(variable int) {
	if !numeric.LTE(t.lb[variable], t.ub[variable], t.opts.epsilon) {
		t.boundsValid = false
	}
}

// AllBoundsValid reports whether no bound change since SetDimensions (or
// the last RestoreState) has left a variable with lb > ub. Once cleared,
// the flag stays false even if a later bound change restores lb <= ub.
func (t *Tableau) AllBoundsValid() bool { return t.boundsValid }
