package tableau_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nomos-verify/tableau/tableau"
)

// TestInitializeTableauSlackForm builds the canonical 2-equation slack
// tableau (x0 + s0 = 3, x1 + s1 = 5) and checks the assignment it produces
// with no explicit bound tightening beyond the defaults.
func TestInitializeTableauSlackForm(t *testing.T) {
	tb := tableau.New()
	require.NoError(t, tb.SetDimensions(2, 4))
	require.NoError(t, tb.SetEntryValue(0, 0, 1))
	require.NoError(t, tb.SetEntryValue(0, 2, 1))
	require.NoError(t, tb.SetEntryValue(1, 1, 1))
	require.NoError(t, tb.SetEntryValue(1, 3, 1))
	require.NoError(t, tb.SetRightHandSide([]float64{3, 5}))
	require.NoError(t, tb.SetLowerBound(0, 0))
	require.NoError(t, tb.SetLowerBound(1, 0))
	require.NoError(t, tb.SetUpperBound(0, 10))
	require.NoError(t, tb.SetUpperBound(1, 10))
	require.NoError(t, tb.MarkAsBasic(2))
	require.NoError(t, tb.MarkAsBasic(3))
	require.NoError(t, tb.InitializeTableau())

	v0, err := tb.GetValue(0)
	require.NoError(t, err)
	v1, err := tb.GetValue(1)
	require.NoError(t, err)
	require.Equal(t, 0.0, v0)
	require.Equal(t, 0.0, v1)

	v2, err := tb.GetValue(2)
	require.NoError(t, err)
	v3, err := tb.GetValue(3)
	require.NoError(t, err)
	require.Equal(t, 3.0, v2)
	require.Equal(t, 5.0, v3)

	require.Equal(t, tableau.Between, tb.GetBasicStatus(0))
	require.Equal(t, tableau.Between, tb.GetBasicStatus(1))
	require.False(t, tb.ExistsBasicOutOfBounds())
	require.NoError(t, tb.VerifyInvariants())
}

type recordingWatcher struct {
	name   string
	events *[]string
}

func (w *recordingWatcher) NotifyVariableValue(variable int, value float64) {}

func (w *recordingWatcher) NotifyLowerBound(variable int, value float64) {}

func (w *recordingWatcher) NotifyUpperBound(variable int, value float64) {
	*w.events = append(*w.events, w.name)
}

// TestWatcherDispatchOrder checks that a global watcher is notified before
// a per-variable watcher for the same event.
func TestWatcherDispatchOrder(t *testing.T) {
	tb := tableau.New()
	require.NoError(t, tb.SetDimensions(1, 5))

	var events []string
	global := &recordingWatcher{name: "global", events: &events}
	perVar := &recordingWatcher{name: "per-variable", events: &events}

	tb.RegisterToWatchAllVariables(global)
	tb.RegisterToWatchVariable(perVar, 4)

	require.NoError(t, tb.SetUpperBound(4, 2.0))

	require.Equal(t, []string{"global", "per-variable"}, events)
}
