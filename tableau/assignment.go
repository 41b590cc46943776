package tableau

import "github.com/nomos-verify/tableau/numeric"

// ComputeAssignment recomputes xB = B^-1*(b - AN*xN), refreshes status[],
// and notifies watchers of every basic variable's new value. Marks the
// assignment VALID.
func (t *Tableau) ComputeAssignment() error {
	y := make([]float64, t.m)
	copy(y, t.b)

	for i := 0; i < t.n-t.m; i++ {
		v := t.nonBasicIndexToVariable[i]
		value := t.xN[i]
		if value == 0 {
			continue
		}
		col := t.GetAColumn(v)
		for j := 0; j < t.m; j++ {
			y[j] -= col[j] * value
		}
	}

	xB, err := t.factorization.FTRAN(y)
	if err != nil {
		return err
	}
	t.xB = xB

	t.computeBasicStatusAll()
	t.assignmentValid = true

	for i := 0; i < t.m; i++ {
		t.notifyVariableValue(t.basicIndexToVariable[i], t.xB[i])
	}

	return nil
}

// GetValue returns variable's current value. Non-basics are read
// straight from xN regardless of assignment validity; basics trigger
// ComputeAssignment first if the cached xB is stale.
func (t *Tableau) GetValue(variable int) (float64, error) {
	if !t.isBasic[variable] {
		return t.xN[t.variableToIndex[variable]], nil
	}
	if !t.assignmentValid {
		if err := t.ComputeAssignment(); err != nil {
			return 0, err
		}
	}

	return t.xB[t.variableToIndex[variable]], nil
}

func (t *Tableau) computeBasicStatusAll() {
	for i := 0; i < t.m; i++ {
		t.computeBasicStatusOne(i)
	}
}

func (t *Tableau) computeBasicStatusOne(basicIndex int) {
	v := t.basicIndexToVariable[basicIndex]
	lb, ub := t.lb[v], t.ub[v]
	value := t.xB[basicIndex]
	tol := t.opts.boundTolerance

	switch {
	case numeric.GT(value, ub, tol):
		t.status[basicIndex] = AboveUB
	case numeric.LT(value, lb, tol):
		t.status[basicIndex] = BelowLB
	case numeric.AreEqual(ub, value, tol):
		t.status[basicIndex] = AtUB
	case numeric.AreEqual(lb, value, tol):
		t.status[basicIndex] = AtLB
	default:
		t.status[basicIndex] = Between
	}
}

// GetBasicStatus returns the status of the basic variable at basicIndex.
func (t *Tableau) GetBasicStatus(basicIndex int) BasicStatus { return t.status[basicIndex] }

func (t *Tableau) basicTooLow(basicIndex int) bool  { return t.status[basicIndex] == BelowLB }
func (t *Tableau) basicTooHigh(basicIndex int) bool { return t.status[basicIndex] == AboveUB }

func (t *Tableau) basicOutOfBounds(basicIndex int) bool {
	return t.basicTooLow(basicIndex) || t.basicTooHigh(basicIndex)
}

// ExistsBasicOutOfBounds reports whether any basic variable currently
// violates its bounds.
func (t *Tableau) ExistsBasicOutOfBounds() bool {
	for i := 0; i < t.m; i++ {
		if t.basicOutOfBounds(i) {
			return true
		}
	}

	return false
}

// GetSumOfInfeasibilities returns Σ|violation| over every out-of-bounds
// basic variable.
func (t *Tableau) GetSumOfInfeasibilities() float64 {
	sum := 0.0
	for i := 0; i < t.m; i++ {
		v := t.basicIndexToVariable[i]
		switch t.status[i] {
		case BelowLB:
			sum += t.lb[v] - t.xB[i]
		case AboveUB:
			sum += t.xB[i] - t.ub[v]
		}
	}

	return sum
}

// setNonBasicAssignment writes xN for variable (which must be non-basic),
// invalidates the assignment, and notifies watchers.
func (t *Tableau) setNonBasicAssignment(variable int, value float64) error {
	if t.isBasic[variable] {
		return ErrNotNonBasic
	}
	t.xN[t.variableToIndex[variable]] = value
	t.assignmentValid = false
	t.notifyVariableValue(variable, value)

	return nil
}
