package tableau

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFakePivotBoundHop is the literal fake-pivot scenario: a manually
// overridden change column of all zeros means no basic imposes a tighter
// constraint than the entering variable's own bound, so the pivot
// degenerates into a bound hop. White-box (needs direct field access to
// force d and reducedCost without a real FTRAN).
func TestFakePivotBoundHop(t *testing.T) {
	tb := New()
	require.NoError(t, tb.SetDimensions(2, 4))
	require.NoError(t, tb.SetEntryValue(0, 0, 1))
	require.NoError(t, tb.SetEntryValue(0, 2, 1))
	require.NoError(t, tb.SetEntryValue(1, 1, 1))
	require.NoError(t, tb.SetEntryValue(1, 3, 1))
	require.NoError(t, tb.SetRightHandSide([]float64{3, 5}))
	require.NoError(t, tb.SetLowerBound(0, 0))
	require.NoError(t, tb.SetLowerBound(1, 0))
	require.NoError(t, tb.SetUpperBound(0, 10))
	require.NoError(t, tb.MarkAsBasic(2))
	require.NoError(t, tb.MarkAsBasic(3))
	require.NoError(t, tb.InitializeTableau())

	tb.reducedCost[0] = 1
	tb.SetEnteringVariableIndex(0)
	tb.d = []float64{0, 0}

	tb.PickLeavingVariable()
	require.True(t, tb.PerformingFakePivot())
	require.Equal(t, tb.m, tb.leavingIndex)

	require.NoError(t, tb.PerformPivot())

	// Variable 0 was already at its lower bound (0); the bound hop is a
	// no-op that still exercises the write path.
	v, err := tb.GetValue(0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

// pivotedFixture builds a 1-equation, 2-variable tableau (x0 - x1 = 0),
// forces the non-basic assignment out of the range that would keep the
// basic feasible, and drives one real pivot. Bounds are chosen so the
// arithmetic is self-consistent with computeAssignment's
// xB = B^-1*(b - AN*xN) rather than an arbitrary illustration.
func pivotedFixture(t *testing.T) *Tableau {
	t.Helper()

	tb := New()
	require.NoError(t, tb.SetDimensions(1, 2))
	require.NoError(t, tb.SetEntryValue(0, 0, 1))
	require.NoError(t, tb.SetEntryValue(0, 1, -1))
	require.NoError(t, tb.SetRightHandSide([]float64{0}))
	require.NoError(t, tb.SetLowerBound(0, 0))
	require.NoError(t, tb.SetUpperBound(0, 3))
	require.NoError(t, tb.SetLowerBound(1, 0))
	require.NoError(t, tb.SetUpperBound(1, 10))
	require.NoError(t, tb.MarkAsBasic(0))
	require.NoError(t, tb.InitializeTableau())

	// Force the non-basic (variable 1) to 5, out of the range that keeps
	// the basic within [0,3]; bypasses SetLowerBound/tighten so the
	// stated bounds stay exactly as configured above.
	tb.xN[0] = 5
	tb.assignmentValid = false
	require.NoError(t, tb.ComputeAssignment())
	require.Equal(t, 5.0, tb.xB[0])
	require.Equal(t, AboveUB, tb.GetBasicStatus(0))

	require.NoError(t, tb.ComputeCostFunction())
	require.Equal(t, 1.0, tb.reducedCost[0])
	require.True(t, tb.eligibleForEntry(0))

	tb.SetEnteringVariableIndex(0)
	require.NoError(t, tb.ComputeChangeColumn())
	require.Equal(t, []float64{-1}, tb.d)

	tb.PickLeavingVariable()
	require.False(t, tb.PerformingFakePivot())
	require.Equal(t, 0, tb.leavingIndex)
	require.Equal(t, -2.0, tb.changeRatio)

	require.NoError(t, tb.PerformPivot())
	require.True(t, tb.IsBasic(1))
	require.False(t, tb.IsBasic(0))

	require.NoError(t, tb.ComputeAssignment())

	return tb
}

// TestRealPivotWithStatusChange exercises the reduced-cost eligibility,
// change-column, ratio-test, and real-pivot swap path end to end.
func TestRealPivotWithStatusChange(t *testing.T) {
	tb := pivotedFixture(t)

	v0, err := tb.GetValue(0)
	require.NoError(t, err)
	require.Equal(t, 3.0, v0)
}

// TestSnapshotRestoreRoundTrip snapshots the fixture's post-pivot state,
// tightens a bound past it, then restores it, and checks that assignments,
// basis membership, and bounds match exactly.
func TestSnapshotRestoreRoundTrip(t *testing.T) {
	tb := pivotedFixture(t)

	snap, err := tb.StoreState()
	require.NoError(t, err)

	wantBasic := append([]int(nil), tb.basicIndexToVariable...)
	wantNonBasic := append([]int(nil), tb.nonBasicIndexToVariable...)
	wantXB := append([]float64(nil), tb.xB...)
	wantXN := append([]float64(nil), tb.xN...)
	wantLB := append([]float64(nil), tb.lb...)
	wantUB := append([]float64(nil), tb.ub...)

	// Mutate: tighten a bound, which by itself doesn't require a pivot.
	require.NoError(t, tb.TightenUpperBound(1, 1))

	require.NoError(t, tb.RestoreState(snap))

	require.Equal(t, wantBasic, tb.basicIndexToVariable)
	require.Equal(t, wantNonBasic, tb.nonBasicIndexToVariable)
	require.Equal(t, wantXB, tb.xB)
	require.Equal(t, wantXN, tb.xN)
	require.Equal(t, wantLB, tb.lb)
	require.Equal(t, wantUB, tb.ub)
	require.True(t, tb.assignmentValid)
}

// TestAddEquationMidSolve exercises C8's grow-by-one-row path after a
// pivot has already moved a variable's basis membership.
func TestAddEquationMidSolve(t *testing.T) {
	tb := pivotedFixture(t)

	require.NoError(t, tb.AddEquation(Equation{
		Addends: []Addend{
			{Coefficient: 1, Variable: 0},
			{Coefficient: 1, Variable: 1},
		},
		Scalar:      7,
		AuxVariable: 2,
	}))

	require.Equal(t, 3, tb.n)
	require.Equal(t, 2, tb.m)
	require.True(t, tb.IsBasic(2))
	require.Equal(t, 1, tb.variableToIndex[2])
	require.Equal(t, 7.0, tb.b[1])

	rowValues := []float64{tb.a[0*tb.m+1], tb.a[1*tb.m+1], tb.a[2*tb.m+1]}
	require.Equal(t, []float64{1, 1, 0}, rowValues)

	b0 := tb.factorization.GetB0()
	require.Equal(t, 2, b0.Size())
	// Variable 1 is basic at basic index 0 after the pivot; its
	// coefficient (1) must appear in B0's new last row at that column.
	v, err := b0.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
}
