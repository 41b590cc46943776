package tableau

import "github.com/nomos-verify/tableau/basis"

// BasicStatus classifies a basic variable's assignment against its bounds
// under tolerance. Computed from xB, never set directly.
type BasicStatus int

const (
	BelowLB BasicStatus = iota
	AtLB
	Between
	AtUB
	AboveUB
)

func (s BasicStatus) String() string {
	switch s {
	case BelowLB:
		return "BELOW_LB"
	case AtLB:
		return "AT_LB"
	case Between:
		return "BETWEEN"
	case AtUB:
		return "AT_UB"
	case AboveUB:
		return "ABOVE_UB"
	default:
		return "UNKNOWN"
	}
}

// BasisFactorization is the abstract carrier of the basis matrix B that
// Tableau consumes. The concrete implementation (package basis) is never
// inspected directly; refactorization policy belongs entirely to it.
type BasisFactorization interface {
	Size() int
	FTRAN(y []float64) ([]float64, error)
	BTRAN(y []float64) ([]float64, error)
	PushEta(leavingIndex int, d []float64) error
	CondenseEtas() error
	GetB0() *basis.Dense
	SetB0(m *basis.Dense) error
	Store() *basis.Snapshot
	Restore(snap *basis.Snapshot) error
}

// Watcher receives notifications of every value and bound change the
// tableau makes. Watchers are borrowed, non-owning references: the
// tableau never de-registers one on its own.
type Watcher interface {
	NotifyVariableValue(variable int, value float64)
	NotifyLowerBound(variable int, value float64)
	NotifyUpperBound(variable int, value float64)
}

// Equation is a caller-supplied linear equality to append via AddEquation:
// Σ coefficient*variable = scalar, introducing auxVariable as a new basic
// variable. auxVariable must equal the tableau's current N.
type Equation struct {
	Addends     []Addend
	Scalar      float64
	AuxVariable int
}

// Addend is one (coefficient, variable) term of an Equation.
type Addend struct {
	Coefficient float64
	Variable    int
}

// Tableau is a bounded-variable revised-simplex tableau. Zero value is not
// usable; construct with New and configure via SetDimensions before use.
type Tableau struct {
	m, n int

	a  []float64 // column-major, length n*m; column j occupies a[j*m : j*m+m]
	b  []float64 // length m

	lb, ub []float64 // length n

	basicIndexToVariable    []int  // length m
	nonBasicIndexToVariable []int  // length n-m
	variableToIndex         []int  // length n
	isBasic                 []bool // length n

	xN []float64 // length n-m
	xB []float64 // length m

	assignmentValid bool
	status          []BasicStatus // length m

	boundsValid bool

	factorization BasisFactorization

	// Pivot scratch (C6).
	d             []float64 // change column, length m
	basicCosts    []float64 // length m
	multipliers   []float64 // length m
	reducedCost   []float64 // length n-m
	enteringIndex int       // non-basic index, or -1
	leavingIndex  int       // basic index, or m (sentinel: fake pivot)

	changeRatio              float64
	leavingVariableIncreases bool

	// Unused entry-selection hooks, carried for parity with the strategy
	// contract this core defers to an external collaborator.
	useSteepestEdge   bool
	steepestEdgeGamma []float64

	globalWatchers []Watcher
	varWatchers    map[int][]Watcher

	pivotRow *TableauRow

	opts Options
}

// RowEntry is one (variable, coefficient) term of a symbolic tableau row.
type RowEntry struct {
	Variable    int
	Coefficient float64
}

// TableauRow is the symbolic representation of a basic row:
// xB_i = Scalar + Σ Entries[j].Coefficient * x_{Entries[j].Variable}.
type TableauRow struct {
	Entries []RowEntry
	Scalar  float64
}
