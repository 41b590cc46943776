package basis_test

import (
	"testing"

	"github.com/nomos-verify/tableau/basis"
	"github.com/stretchr/testify/require"
)

func TestFTRANIdentityIsPassthrough(t *testing.T) {
	f, err := basis.New(2)
	require.NoError(t, err)

	x, err := f.FTRAN([]float64{7, -3})
	require.NoError(t, err)
	require.Equal(t, []float64{7, -3}, x)
}

func TestPushEtaFTRANMatchesExplicitInverse(t *testing.T) {
	// B' columns: col0 = [2,3] (d), col1 = [0,1] (untouched identity col).
	// B'^-1 = [[0.5, 0], [-1.5, 1]].
	f, err := basis.New(2)
	require.NoError(t, err)
	require.NoError(t, f.PushEta(0, []float64{2, 3}))

	x, err := f.FTRAN([]float64{4, 1})
	require.NoError(t, err)
	require.InDelta(t, 0.5*4, x[0], 1e-9)
	require.InDelta(t, -1.5*4+1, x[1], 1e-9)
}

func TestPushEtaBTRANMatchesExplicitInverseTranspose(t *testing.T) {
	// B'^-T = [[0.5, -1.5], [0, 1]].
	f, err := basis.New(2)
	require.NoError(t, err)
	require.NoError(t, f.PushEta(0, []float64{2, 3}))

	x, err := f.BTRAN([]float64{4, 1})
	require.NoError(t, err)
	require.InDelta(t, 0.5*4-1.5*1, x[0], 1e-9)
	require.InDelta(t, 1.0, x[1], 1e-9)
}

func TestFTRANBTRANRoundTrip(t *testing.T) {
	f, err := basis.New(3)
	require.NoError(t, err)
	require.NoError(t, f.PushEta(1, []float64{1, 2, -1}))
	require.NoError(t, f.PushEta(2, []float64{0, 1, 3}))

	y := []float64{5, -2, 8}
	x, err := f.FTRAN(y)
	require.NoError(t, err)
	back, err := f.BTRAN(x)
	require.NoError(t, err)

	// BTRAN(FTRAN(y)) == y holds only when B is orthogonal (B*B^T = I).
	// The actual invariant this package guarantees is that FTRAN and
	// BTRAN both solve consistently against the *same* basis: verify by
	// reconstructing B (via CondenseEtas) and checking B*FTRAN(y) == y
	// and B^T*BTRAN(x) == x.
	require.NoError(t, f.CondenseEtas())
	b0 := f.GetB0()
	reconstructed := make([]float64, 3)
	for row := 0; row < 3; row++ {
		sum := 0.0
		for col := 0; col < 3; col++ {
			v, _ := b0.At(row, col)
			sum += v * x[col]
		}
		reconstructed[row] = sum
	}
	for i := range y {
		require.InDelta(t, y[i], reconstructed[i], 1e-9)
	}
	for row := 0; row < 3; row++ {
		sum := 0.0
		for col := 0; col < 3; col++ {
			v, _ := b0.At(col, row)
			sum += v * back[col]
		}
		require.InDelta(t, x[row], sum, 1e-9)
	}
}

func TestCondenseEtasClearsPendingUpdates(t *testing.T) {
	f, err := basis.New(2)
	require.NoError(t, err)
	require.NoError(t, f.PushEta(0, []float64{2, 3}))

	before, err := f.FTRAN([]float64{4, 1})
	require.NoError(t, err)

	require.NoError(t, f.CondenseEtas())

	after, err := f.FTRAN([]float64{4, 1})
	require.NoError(t, err)
	require.InDelta(t, before[0], after[0], 1e-9)
	require.InDelta(t, before[1], after[1], 1e-9)
}

func TestStoreRestoreRoundTrip(t *testing.T) {
	f, err := basis.New(2)
	require.NoError(t, err)
	require.NoError(t, f.PushEta(0, []float64{2, 3}))

	snap := f.Store()

	require.NoError(t, f.PushEta(1, []float64{1, 5}))
	mutated, err := f.FTRAN([]float64{1, 1})
	require.NoError(t, err)

	require.NoError(t, f.Restore(snap))
	restored, err := f.FTRAN([]float64{1, 1})
	require.NoError(t, err)

	require.NotEqual(t, mutated, restored)

	fresh, err := basis.New(2)
	require.NoError(t, err)
	require.NoError(t, fresh.PushEta(0, []float64{2, 3}))
	want, err := fresh.FTRAN([]float64{1, 1})
	require.NoError(t, err)
	require.InDelta(t, want[0], restored[0], 1e-9)
	require.InDelta(t, want[1], restored[1], 1e-9)
}

func TestSetB0RejectsSizeMismatch(t *testing.T) {
	f, err := basis.New(2)
	require.NoError(t, err)
	d, err := basis.NewDense(3)
	require.NoError(t, err)
	require.ErrorIs(t, f.SetB0(d), basis.ErrDimensionMismatch)
}

func TestNewRejectsNonPositiveSize(t *testing.T) {
	_, err := basis.New(0)
	require.ErrorIs(t, err, basis.ErrInvalidDimensions)
}
