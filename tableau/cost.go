package tableau

import "github.com/nomos-verify/tableau/numeric"

// ComputeCostFunction runs the three-step construction of the reduced-cost
// vector: basic costs from bound violations, multipliers via BTRAN, then
// reduced cost per non-basic.
func (t *Tableau) ComputeCostFunction() error {
	t.computeBasicCosts()
	if err := t.computeMultipliers(t.basicCosts); err != nil {
		return err
	}
	t.computeReducedCosts()

	return nil
}

func (t *Tableau) computeBasicCosts() {
	for i := 0; i < t.m; i++ {
		switch {
		case t.basicTooLow(i):
			t.basicCosts[i] = -1
		case t.basicTooHigh(i):
			t.basicCosts[i] = 1
		default:
			t.basicCosts[i] = 0
		}
	}
}

func (t *Tableau) computeMultipliers(rowCoefficients []float64) error {
	multipliers, err := t.factorization.BTRAN(rowCoefficients)
	if err != nil {
		return err
	}
	t.multipliers = multipliers

	return nil
}

// ComputeReducedCost refreshes reducedCost[nonBasicIndex] only, for
// pivot-strategy refinements that adjust a single coefficient at a time.
// Assumes multipliers are already current.
func (t *Tableau) ComputeReducedCost(nonBasicIndex int) {
	v := t.nonBasicIndexToVariable[nonBasicIndex]
	col := t.GetAColumn(v)
	sum := 0.0
	for j := 0; j < t.m; j++ {
		sum -= t.multipliers[j] * col[j]
	}
	t.reducedCost[nonBasicIndex] = sum
}

func (t *Tableau) computeReducedCosts() {
	for i := 0; i < t.n-t.m; i++ {
		t.ComputeReducedCost(i)
	}
}

// GetCostFunction returns a read-only view of the reduced-cost vector
// over non-basic indices.
func (t *Tableau) GetCostFunction() []float64 { return t.reducedCost }

// NonBasicCanIncrease reports whether the non-basic at nonBasicIndex is
// strictly below its upper bound.
func (t *Tableau) NonBasicCanIncrease(nonBasicIndex int) bool {
	v := t.nonBasicIndexToVariable[nonBasicIndex]

	return numeric.LT(t.xN[nonBasicIndex], t.ub[v], t.opts.epsilon)
}

// NonBasicCanDecrease reports whether the non-basic at nonBasicIndex is
// strictly above its lower bound.
func (t *Tableau) NonBasicCanDecrease(nonBasicIndex int) bool {
	v := t.nonBasicIndexToVariable[nonBasicIndex]

	return numeric.GT(t.xN[nonBasicIndex], t.lb[v], t.opts.epsilon)
}

func (t *Tableau) eligibleForEntry(nonBasicIndex int) bool {
	cost := t.reducedCost[nonBasicIndex]
	if numeric.IsZero(cost, t.opts.epsilon) {
		return false
	}
	positive := numeric.IsPositive(cost, t.opts.epsilon)

	return (positive && t.NonBasicCanDecrease(nonBasicIndex)) ||
		(!positive && t.NonBasicCanIncrease(nonBasicIndex))
}

// GetEntryCandidates returns every non-basic index eligible to enter the
// basis under the current reduced-cost vector. An empty result signals
// no improving direction exists.
func (t *Tableau) GetEntryCandidates() []int {
	var candidates []int
	for i := 0; i < t.n-t.m; i++ {
		if t.eligibleForEntry(i) {
			candidates = append(candidates, i)
		}
	}

	return candidates
}

// SetEnteringVariableIndex records the non-basic index chosen by an
// external entry-selection strategy.
func (t *Tableau) SetEnteringVariableIndex(nonBasicIndex int) { t.enteringIndex = nonBasicIndex }
