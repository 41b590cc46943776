package tableau_test

import (
	"fmt"

	"github.com/nomos-verify/tableau/tableau"
)

// ExampleTableau_pivot builds a 2-variable, 1-equation tableau (x0+x1=8)
// whose starting basis {x0} puts x0 above its upper bound, then
// drives the pivot that repairs it.
func ExampleTableau_pivot() {
	tb := tableau.New()
	tb.SetDimensions(1, 2)
	tb.SetEntryValue(0, 0, 1)
	tb.SetEntryValue(0, 1, 1)
	tb.SetRightHandSide([]float64{8})
	tb.SetLowerBound(0, 0)
	tb.SetUpperBound(0, 5)
	tb.SetLowerBound(1, 0)
	tb.SetUpperBound(1, 5)
	tb.MarkAsBasic(0)
	tb.InitializeTableau()

	fmt.Println("x0 status before pivot:", tb.GetBasicStatus(0))

	tb.ComputeCostFunction()
	tb.SetEnteringVariableIndex(0)
	tb.ComputeChangeColumn()
	tb.PickLeavingVariable()
	tb.PerformPivot()

	v0, _ := tb.GetValue(0)
	fmt.Println("x0 after pivot (now non-basic):", v0)
	fmt.Println("variable 1 now basic:", tb.IsBasic(1))

	// Output:
	// x0 status before pivot: ABOVE_UB
	// x0 after pivot (now non-basic): 5
	// variable 1 now basic: true
}
