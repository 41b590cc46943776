package tableau

import "fmt"

// Debug gates precondition assertions (the basic count at initialization,
// a zero ratio-test coefficient, out-of-range indices and an out-of-bounds
// leaving basic on a requested degenerate pivot). Production
// code leaves it false and trusts caller discipline, mirroring the
// original engine's debug-build-only ASSERT macros.
var Debug = false

// assertf panics with a formatted message when Debug is enabled and cond
// is false. A no-op otherwise.
func assertf(cond bool, format string, args ...any) {
	if Debug && !cond {
		panic(fmt.Sprintf("tableau: assertion failed: "+format, args...))
	}
}
