package tableau

import "math"

// Default numeric tolerances. Epsilon is the general-purpose tolerance;
// BoundTolerance governs status[] classification specifically (kept
// slightly looser than epsilon since bound comparisons accumulate error
// across many pivots); PivotZeroTolerance gates which change-column
// entries are considered structurally zero during the ratio test.
const (
	DefaultEpsilon            = 1e-9
	DefaultBoundTolerance     = 1e-7
	DefaultPivotZeroTolerance = 1e-9
)

const (
	panicEpsilonInvalid            = "tableau: WithEpsilon: value must be finite and non-negative"
	panicBoundToleranceInvalid     = "tableau: WithBoundTolerance: value must be finite and non-negative"
	panicPivotZeroToleranceInvalid = "tableau: WithPivotZeroTolerance: value must be finite and non-negative"
)

// Option mutates a Tableau's configuration at construction time.
type Option func(*Options)

// Options holds the effective configuration after applying Option values.
// Its fields are unexported: callers only ever set them through
// New(...Option) and the WithX constructors.
type Options struct {
	epsilon            float64
	boundTolerance     float64
	pivotZeroTolerance float64
	logger             Logger
	stats              Statistics
}

func defaultOptions() Options {
	return Options{
		epsilon:            DefaultEpsilon,
		boundTolerance:     DefaultBoundTolerance,
		pivotZeroTolerance: DefaultPivotZeroTolerance,
		logger:             NopLogger{},
		stats:              NopStatistics{},
	}
}

func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// WithEpsilon sets the general-purpose numeric tolerance.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}
	return func(o *Options) { o.epsilon = eps }
}

// WithBoundTolerance sets the tolerance used exclusively by basic-status
// classification.
func WithBoundTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicBoundToleranceInvalid)
	}
	return func(o *Options) { o.boundTolerance = tol }
}

// WithPivotZeroTolerance sets the tolerance below which a change-column
// entry is treated as structurally zero during the ratio test.
func WithPivotZeroTolerance(tol float64) Option {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotZeroToleranceInvalid)
	}
	return func(o *Options) { o.pivotZeroTolerance = tol }
}

// WithLogger installs a debug-trace sink. Nil is rejected in favor of
// NopLogger — callers that want silence simply omit this option.
func WithLogger(l Logger) Option {
	if l == nil {
		panic("tableau: WithLogger: logger must not be nil")
	}
	return func(o *Options) { o.logger = l }
}

// WithStatistics installs a counters sink for pivots, bound hops,
// degenerate pivots, and tightened bounds.
func WithStatistics(s Statistics) Option {
	if s == nil {
		panic("tableau: WithStatistics: statistics must not be nil")
	}
	return func(o *Options) { o.stats = s }
}

func gatherOptions(opts []Option) Options {
	o := defaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
