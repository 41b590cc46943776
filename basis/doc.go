// Package basis implements the basis-factorization contract consumed by
// package tableau (FTRAN, BTRAN, rank-1 eta updates, snapshot/restore).
//
// Factorization keeps an explicit square base matrix B0 (row-major
// Dense, refreshed by Doolittle LU with no partial pivoting — the same
// non-pivoting tradeoff the reference matrix package documents for
// determinism and simplicity) plus a replayable list of eta updates in
// product-form-of-inverse order. The tableau never inspects the etas; it
// calls FTRAN/BTRAN/PushEta/CondenseEtas, and reads and replaces B0 only
// through GetB0/SetB0 when AddEquation grows the basis.
package basis
