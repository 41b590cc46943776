package tableau

import "github.com/nomos-verify/tableau/basis"

// TableauState is a deep-copy snapshot of every piece of state
// StoreState/RestoreState round-trip: dimensions, A, b, bounds, basis
// membership, both assignments, both index maps, the factorization's own
// snapshot, and boundsValid.
type TableauState struct {
	m, n int

	a  []float64
	b  []float64
	lb []float64
	ub []float64

	isBasic                 []bool
	basicIndexToVariable    []int
	nonBasicIndexToVariable []int
	variableToIndex         []int

	xB []float64
	xN []float64

	factorization *basis.Snapshot

	boundsValid bool
}

// StoreState returns a deep-copy snapshot of the tableau. The assignment
// must be valid at the time of the call.
func (t *Tableau) StoreState() (*TableauState, error) {
	if !t.assignmentValid {
		return nil, ErrAssignmentNotValid
	}

	s := &TableauState{
		m:                       t.m,
		n:                       t.n,
		a:                       append([]float64(nil), t.a...),
		b:                       append([]float64(nil), t.b...),
		lb:                      append([]float64(nil), t.lb...),
		ub:                      append([]float64(nil), t.ub...),
		isBasic:                 append([]bool(nil), t.isBasic...),
		basicIndexToVariable:    append([]int(nil), t.basicIndexToVariable...),
		nonBasicIndexToVariable: append([]int(nil), t.nonBasicIndexToVariable...),
		variableToIndex:         append([]int(nil), t.variableToIndex...),
		xB:                      append([]float64(nil), t.xB...),
		xN:                      append([]float64(nil), t.xN...),
		boundsValid:             t.boundsValid,
	}

	s.factorization = t.factorization.Store()

	return s, nil
}

// RestoreState replaces the tableau's state with the deep-copied contents
// of state, restores the factorization, recomputes status, and marks the
// assignment valid without an FTRAN (xB was restored verbatim).
func (t *Tableau) RestoreState(state *TableauState) error {
	t.m, t.n = state.m, state.n
	t.a = append([]float64(nil), state.a...)
	t.b = append([]float64(nil), state.b...)
	t.lb = append([]float64(nil), state.lb...)
	t.ub = append([]float64(nil), state.ub...)
	t.isBasic = append([]bool(nil), state.isBasic...)
	t.basicIndexToVariable = append([]int(nil), state.basicIndexToVariable...)
	t.nonBasicIndexToVariable = append([]int(nil), state.nonBasicIndexToVariable...)
	t.variableToIndex = append([]int(nil), state.variableToIndex...)
	t.xB = append([]float64(nil), state.xB...)
	t.xN = append([]float64(nil), state.xN...)
	t.boundsValid = state.boundsValid

	if err := t.factorization.Restore(state.factorization); err != nil {
		return err
	}

	t.status = make([]BasicStatus, t.m)
	t.computeBasicStatusAll()
	t.assignmentValid = true

	return nil
}
