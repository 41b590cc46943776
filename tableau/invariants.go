package tableau

import (
	"fmt"

	"github.com/nomos-verify/tableau/numeric"
)

// VerifyInvariants checks that every non-basic variable's assignment is
// within its bounds, returning an error describing the first violation
// found instead of terminating the process.
func (t *Tableau) VerifyInvariants() error {
	for i := 0; i < t.n-t.m; i++ {
		v := t.nonBasicIndexToVariable[i]
		value := t.xN[i]
		if !(numeric.GTE(value, t.lb[v], t.opts.epsilon) && numeric.LTE(value, t.ub[v], t.opts.epsilon)) {
			return fmt.Errorf("tableau: invariant violation: variable %d (non-basic #%d) = %g, range [%g, %g]",
				v, i, value, t.lb[v], t.ub[v])
		}
	}

	return nil
}
