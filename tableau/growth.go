package tableau

import (
	"fmt"

	"github.com/nomos-verify/tableau/basis"
	"github.com/nomos-verify/tableau/numeric"
)

// AddEquation appends a new equality row and its auxiliary basic variable
// to the tableau. equation.AuxVariable must equal the tableau's current n.
func (t *Tableau) AddEquation(equation Equation) error {
	if equation.AuxVariable != t.n {
		return ErrInvalidEquationAddedToTableau
	}

	if err := t.factorization.CondenseEtas(); err != nil {
		return err
	}
	oldB0 := t.factorization.GetB0()

	newM := t.m + 1
	newB0, err := basis.NewDense(newM)
	if err != nil {
		return err
	}
	for i := 0; i < t.m; i++ {
		for j := 0; j < t.m; j++ {
			v, err := oldB0.At(i, j)
			if err != nil {
				return err
			}
			if err := newB0.Set(i, j, v); err != nil {
				return err
			}
		}
	}
	if err := newB0.Set(newM-1, newM-1, 1); err != nil {
		return err
	}

	if err := t.addRow(); err != nil {
		return err
	}

	t.isBasic[equation.AuxVariable] = true
	t.basicIndexToVariable[t.m-1] = equation.AuxVariable
	t.variableToIndex[equation.AuxVariable] = t.m - 1

	if err := t.SetRightHandSideValue(t.m-1, equation.Scalar); err != nil {
		return err
	}
	for _, addend := range equation.Addends {
		if err := t.SetEntryValue(t.m-1, addend.Variable, addend.Coefficient); err != nil {
			return err
		}

		// The equation is expressed over the original non-basic set;
		// addends that have since become basic must be folded into the
		// last row of the grown B0 at their basic index.
		if t.isBasic[addend.Variable] {
			index := t.variableToIndex[addend.Variable]
			if err := newB0.Set(newM-1, index, addend.Coefficient); err != nil {
				return err
			}
		}
	}

	return t.factorization.SetB0(newB0)
}

// addRow grows every per-row and per-variable buffer by one, installs a
// fresh identity factorization of the new size (immediately overwritten
// by AddEquation's SetB0), and marks the new variable unbounded.
func (t *Tableau) addRow() error {
	newM := t.m + 1
	newN := t.n + 1

	newA := make([]float64, newN*newM)
	for v := 0; v < t.n; v++ {
		copy(newA[v*newM:v*newM+t.m], t.a[v*t.m:v*t.m+t.m])
	}
	t.a = newA

	newB := make([]float64, newM)
	copy(newB, t.b)
	t.b = newB

	newLB := make([]float64, newN)
	newUB := make([]float64, newN)
	copy(newLB, t.lb)
	copy(newUB, t.ub)
	newLB[t.n] = numeric.NegativeInfinity()
	newUB[t.n] = numeric.PositiveInfinity()
	t.lb, t.ub = newLB, newUB

	newIsBasic := make([]bool, newN)
	copy(newIsBasic, t.isBasic)
	t.isBasic = newIsBasic

	newBasicIndexToVariable := make([]int, newM)
	copy(newBasicIndexToVariable, t.basicIndexToVariable)
	t.basicIndexToVariable = newBasicIndexToVariable

	newVariableToIndex := make([]int, newN)
	copy(newVariableToIndex, t.variableToIndex)
	t.variableToIndex = newVariableToIndex

	// nonBasicIndexToVariable, xN, reducedCost keep their size: n-m is
	// unchanged by a simultaneous m+1, n+1 growth.

	t.xB = make([]float64, newM)
	t.status = make([]BasicStatus, newM)
	t.assignmentValid = false

	t.d = make([]float64, newM)
	t.basicCosts = make([]float64, newM)
	t.multipliers = make([]float64, newM)

	fact, err := basis.New(newM)
	if err != nil {
		return fmt.Errorf("addRow: %w", err)
	}
	t.factorization = fact

	t.m, t.n = newM, newN

	return nil
}
