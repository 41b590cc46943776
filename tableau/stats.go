package tableau

// Statistics is a borrowed, non-owning counters sink. The tableau reports
// into it but never reads it back or owns its lifecycle, the same
// contract Watcher carries.
type Statistics interface {
	IncPivots()
	IncBoundHops()
	IncDegeneratePivots()
	IncRequestedDegeneratePivots()
	IncTightenedBounds()
}

// NopStatistics discards every count. It is the default when no
// WithStatistics option is supplied.
type NopStatistics struct{}

func (NopStatistics) IncPivots()                    {}
func (NopStatistics) IncBoundHops()                 {}
func (NopStatistics) IncDegeneratePivots()           {}
func (NopStatistics) IncRequestedDegeneratePivots()  {}
func (NopStatistics) IncTightenedBounds()            {}
