// Package tableau implements a bounded-variable revised-simplex tableau
// core: a system of linear equalities A*x = b, per-variable lower/upper
// bounds, and the pivot machinery that drives infeasible basic variables
// toward feasibility one bounded-simplex step at a time.
//
// The package is the numerical engine an outer branch-and-bound search
// repeatedly configures, pivots, snapshots, and restores. It never chooses
// which non-basic variable enters the basis — it exposes eligible
// candidates and lets the caller decide (SetEnteringVariableIndex) — and
// it never runs an outer search loop itself.
//
// The basis inverse is not held directly; Tableau consumes it through the
// BasisFactorization interface, so the concrete factorization (product
// form of the inverse, dense LU) lives in package basis and can be
// swapped without touching pivot logic.
package tableau
