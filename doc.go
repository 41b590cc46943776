// Package tableau is the module root for a bounded-variable revised-simplex
// tableau core, the kind of linear-arithmetic engine a neural-network
// verifier drives during branch-and-bound search.
//
// Three packages make up the module:
//
//	numeric/ — tolerance-aware float comparisons used by the tableau
//	basis/   — the basis-factorization contract: FTRAN, BTRAN, eta updates,
//	           snapshot/restore, backed by Doolittle LU without pivoting
//	tableau/ — the tableau itself: assignment, reduced costs, the bounded
//	           ratio test, pivoting, dynamic row growth, and watchers
//
// The tableau package never reaches into basis's internals; apart from
// constructing factorizations (basis.New) and the dense B0 it grows in
// AddEquation (basis.NewDense), it uses package basis only through the
// BasisFactorization interface it declares for itself, so a different
// factorization strategy (partial pivoting,
// periodic refactorization) can be substituted without touching pivot
// logic.
package tableau
