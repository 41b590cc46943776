// Package numeric provides tolerance-aware comparisons over float64.
//
// Every predicate takes its tolerance explicitly; the package holds no
// global epsilon. The tableau package threads its own configured
// tolerances through on each call, since a single fixed
// epsilon cannot serve both general arithmetic comparisons and the
// stricter bound-classification comparisons a bounded-simplex tableau
// needs.
package numeric
