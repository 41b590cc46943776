package tableau

import "github.com/nomos-verify/tableau/numeric"

// RegisterToWatchVariable adds a per-variable watcher, notified after
// every global watcher, in registration order.
func (t *Tableau) RegisterToWatchVariable(w Watcher, variable int) {
	t.varWatchers[variable] = append(t.varWatchers[variable], w)
}

// UnregisterToWatchVariable removes the first matching per-variable
// watcher registration for variable.
func (t *Tableau) UnregisterToWatchVariable(w Watcher, variable int) {
	ws := t.varWatchers[variable]
	for i, existing := range ws {
		if existing == w {
			t.varWatchers[variable] = append(ws[:i], ws[i+1:]...)
			return
		}
	}
}

// RegisterToWatchAllVariables adds a global watcher, notified before any
// per-variable watcher, in registration order.
func (t *Tableau) RegisterToWatchAllVariables(w Watcher) {
	t.globalWatchers = append(t.globalWatchers, w)
}

func (t *Tableau) notifyVariableValue(variable int, value float64) {
	for _, w := range t.globalWatchers {
		w.NotifyVariableValue(variable, value)
	}
	for _, w := range t.varWatchers[variable] {
		w.NotifyVariableValue(variable, value)
	}
}

func (t *Tableau) notifyLowerBound(variable int, value float64) {
	for _, w := range t.globalWatchers {
		w.NotifyLowerBound(variable, value)
	}
	for _, w := range t.varWatchers[variable] {
		w.NotifyLowerBound(variable, value)
	}
}

func (t *Tableau) notifyUpperBound(variable int, value float64) {
	for _, w := range t.globalWatchers {
		w.NotifyUpperBound(variable, value)
	}
	for _, w := range t.varWatchers[variable] {
		w.NotifyUpperBound(variable, value)
	}
}

// TightenLowerBound raises variable's lower bound only if value is
// strictly greater than the current one, then clamps a non-basic
// assignment up to the new bound if it now falls below it.
func (t *Tableau) TightenLowerBound(variable int, value float64) error {
	if !numeric.GT(value, t.lb[variable], t.opts.epsilon) {
		return nil
	}
	t.opts.stats.IncTightenedBounds()

	if err := t.SetLowerBound(variable, value); err != nil {
		return err
	}

	if !t.isBasic[variable] {
		index := t.variableToIndex[variable]
		if numeric.GT(value, t.xN[index], t.opts.epsilon) {
			return t.setNonBasicAssignment(variable, value)
		}
	}

	return nil
}

// TightenUpperBound lowers variable's upper bound only if value is
// strictly less than the current one, then clamps a non-basic assignment
// down to the new bound if it now exceeds it.
func (t *Tableau) TightenUpperBound(variable int, value float64) error {
	if !numeric.LT(value, t.ub[variable], t.opts.epsilon) {
		return nil
	}
	t.opts.stats.IncTightenedBounds()

	if err := t.SetUpperBound(variable, value); err != nil {
		return err
	}

	if !t.isBasic[variable] {
		index := t.variableToIndex[variable]
		if numeric.LT(value, t.xN[index], t.opts.epsilon) {
			return t.setNonBasicAssignment(variable, value)
		}
	}

	return nil
}

// ForwardTransformation is a direct passthrough to the factorization's
// FTRAN, exposed for callers that need a raw solve outside a pivot.
func (t *Tableau) ForwardTransformation(y []float64) ([]float64, error) {
	return t.factorization.FTRAN(y)
}

// BackwardTransformation is a direct passthrough to the factorization's
// BTRAN.
func (t *Tableau) BackwardTransformation(y []float64) ([]float64, error) {
	return t.factorization.BTRAN(y)
}
