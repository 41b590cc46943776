package tableau

import "github.com/nomos-verify/tableau/numeric"

// ComputeChangeColumn sets d = B^-1 * A[:,variable(enteringIndex)] via
// FTRAN. Must follow SetEnteringVariableIndex.
func (t *Tableau) ComputeChangeColumn() error {
	v := t.nonBasicIndexToVariable[t.enteringIndex]
	col := t.GetAColumn(v)

	d, err := t.factorization.FTRAN(col)
	if err != nil {
		return err
	}
	t.d = d

	return nil
}

// GetChangeColumn returns a read-only view of the current change column.
func (t *Tableau) GetChangeColumn() []float64 { return t.d }

func (t *Tableau) ratioConstraintPerBasic(basicIndex int, coefficient float64, decrease bool) float64 {
	basic := t.basicIndexToVariable[basicIndex]
	c := -coefficient
	tol := t.opts.pivotZeroTolerance

	assertf(!numeric.IsZero(c, tol), "ratioConstraintPerBasic: coefficient is zero")

	var maxChange float64
	if (numeric.IsPositive(c, tol) && decrease) || (numeric.IsNegative(c, tol) && !decrease) {
		// Basic is decreasing.
		switch t.status[basicIndex] {
		case AboveUB:
			maxChange = t.ub[basic] - t.xB[basicIndex]
		case Between, AtUB:
			maxChange = t.lb[basic] - t.xB[basicIndex]
		case AtLB:
			maxChange = 0
		default: // BelowLB
			maxChange = numeric.NegativeInfinity() - t.xB[basicIndex]
		}
	} else {
		// Basic is increasing.
		switch t.status[basicIndex] {
		case BelowLB:
			maxChange = t.lb[basic] - t.xB[basicIndex]
		case Between, AtLB:
			maxChange = t.ub[basic] - t.xB[basicIndex]
		case AtUB:
			maxChange = 0
		default: // AboveUB
			maxChange = numeric.PositiveInfinity() - t.xB[basicIndex]
		}
	}

	return maxChange / c
}

// PickLeavingVariable runs the bounded-simplex ratio test over the
// current change column, choosing which basic (if any) leaves the basis.
// leavingIndex == m signals a fake (bound-hop) pivot.
func (t *Tableau) PickLeavingVariable() {
	tol := t.opts.pivotZeroTolerance
	decrease := numeric.IsPositive(t.reducedCost[t.enteringIndex], t.opts.epsilon)

	v := t.nonBasicIndexToVariable[t.enteringIndex]
	currentValue := t.xN[t.enteringIndex]

	t.leavingIndex = t.m

	if decrease {
		t.changeRatio = t.lb[v] - currentValue
		for i := 0; i < t.m; i++ {
			if numeric.IsZero(t.d[i], tol) {
				continue
			}
			ratio := t.ratioConstraintPerBasic(i, t.d[i], true)
			if ratio > t.changeRatio {
				t.changeRatio = ratio
				t.leavingIndex = i
			}
		}
		if t.leavingIndex != t.m {
			t.leavingVariableIncreases = numeric.IsPositive(t.d[t.leavingIndex], t.opts.epsilon)
		}

		return
	}

	t.changeRatio = t.ub[v] - currentValue
	for i := 0; i < t.m; i++ {
		if numeric.IsZero(t.d[i], tol) {
			continue
		}
		ratio := t.ratioConstraintPerBasic(i, t.d[i], false)
		if ratio < t.changeRatio {
			t.changeRatio = ratio
			t.leavingIndex = i
		}
	}
	if t.leavingIndex != t.m {
		t.leavingVariableIncreases = numeric.IsNegative(t.d[t.leavingIndex], t.opts.epsilon)
	}
}

// PerformingFakePivot reports whether the last PickLeavingVariable call
// selected a bound-hop (no basis change).
func (t *Tableau) PerformingFakePivot() bool { return t.leavingIndex == t.m }

// GetChangeRatio returns the ratio recorded by the last PickLeavingVariable.
func (t *Tableau) GetChangeRatio() float64 { return t.changeRatio }

// EnteringVariable returns the variable at the current entering index.
func (t *Tableau) EnteringVariable() int { return t.nonBasicIndexToVariable[t.enteringIndex] }

// LeavingVariable returns the variable chosen to leave. On a fake pivot
// this resolves to the entering variable itself, per the original
// engine's getLeavingVariable() convenience accessor.
func (t *Tableau) LeavingVariable() int {
	if t.leavingIndex == t.m {
		return t.nonBasicIndexToVariable[t.enteringIndex]
	}

	return t.basicIndexToVariable[t.leavingIndex]
}

// PerformPivot executes the pivot selected by PickLeavingVariable: either
// a bound hop (fake pivot) or a real basis swap plus eta update. Returns
// ErrBoundsInvalid without changing anything while AllBoundsValid is false.
func (t *Tableau) PerformPivot() error {
	if !t.boundsValid {
		return ErrBoundsInvalid
	}
	t.assignmentValid = false

	if t.leavingIndex == t.m {
		t.opts.stats.IncBoundHops()

		decrease := numeric.IsPositive(t.reducedCost[t.enteringIndex], t.opts.epsilon)
		v := t.nonBasicIndexToVariable[t.enteringIndex]
		newValue := t.ub[v]
		if decrease {
			newValue = t.lb[v]
		}
		t.opts.logger.Debugf("fake pivot: variable %d jumping to %s bound", v, boundName(decrease))

		return t.setNonBasicAssignment(v, newValue)
	}

	t.opts.stats.IncPivots()

	currentBasic := t.basicIndexToVariable[t.leavingIndex]
	currentNonBasic := t.nonBasicIndexToVariable[t.enteringIndex]
	t.opts.logger.Debugf("pivot: entering %d, leaving %d", currentNonBasic, currentBasic)

	t.isBasic[currentBasic] = false
	t.isBasic[currentNonBasic] = true
	t.basicIndexToVariable[t.leavingIndex] = currentNonBasic
	t.nonBasicIndexToVariable[t.enteringIndex] = currentBasic
	t.variableToIndex[currentBasic] = t.enteringIndex
	t.variableToIndex[currentNonBasic] = t.leavingIndex

	var nonBasicAssignment float64
	if t.leavingVariableIncreases {
		if t.status[t.leavingIndex] == BelowLB {
			nonBasicAssignment = t.lb[currentBasic]
		} else {
			nonBasicAssignment = t.ub[currentBasic]
		}
	} else {
		if t.status[t.leavingIndex] == AboveUB {
			nonBasicAssignment = t.ub[currentBasic]
		} else {
			nonBasicAssignment = t.lb[currentBasic]
		}
	}

	if numeric.IsZero(t.changeRatio, t.opts.epsilon) {
		t.opts.stats.IncDegeneratePivots()
	}

	if err := t.setNonBasicAssignment(t.nonBasicIndexToVariable[t.enteringIndex], nonBasicAssignment); err != nil {
		return err
	}

	return t.factorization.PushEta(t.leavingIndex, t.d)
}

// PerformDegeneratePivot swaps membership and exchanges assignment values
// between the entering non-basic and a leaving basic that is strictly
// within bounds, without moving any value. The caller must have already
// set the entering/leaving indices (SetEnteringVariableIndex /
// SetLeavingVariableIndex) and computed d. Returns ErrBoundsInvalid
// without changing anything while AllBoundsValid is false.
func (t *Tableau) PerformDegeneratePivot() error {
	if !t.boundsValid {
		return ErrBoundsInvalid
	}
	assertf(t.enteringIndex >= 0 && t.enteringIndex < t.n-t.m, "PerformDegeneratePivot: entering index out of range")
	assertf(t.leavingIndex >= 0 && t.leavingIndex < t.m, "PerformDegeneratePivot: leaving index out of range")
	assertf(!t.basicOutOfBounds(t.leavingIndex), "PerformDegeneratePivot: leaving basic is out of bounds")

	t.opts.stats.IncDegeneratePivots()
	t.opts.stats.IncRequestedDegeneratePivots()

	currentBasic := t.basicIndexToVariable[t.leavingIndex]
	currentNonBasic := t.nonBasicIndexToVariable[t.enteringIndex]

	t.isBasic[currentBasic] = false
	t.isBasic[currentNonBasic] = true
	t.basicIndexToVariable[t.leavingIndex] = currentNonBasic
	t.nonBasicIndexToVariable[t.enteringIndex] = currentBasic
	t.variableToIndex[currentBasic] = t.enteringIndex
	t.variableToIndex[currentNonBasic] = t.leavingIndex

	if err := t.factorization.PushEta(t.leavingIndex, t.d); err != nil {
		return err
	}

	temp := t.xB[t.leavingIndex]
	t.xB[t.leavingIndex] = t.xN[t.enteringIndex]

	return t.setNonBasicAssignment(currentBasic, temp)
}

// SetLeavingVariableIndex records the basic index chosen to leave for a
// caller-requested degenerate pivot.
func (t *Tableau) SetLeavingVariableIndex(basicIndex int) { t.leavingIndex = basicIndex }

func boundName(decrease bool) string {
	if decrease {
		return "lower"
	}

	return "upper"
}
