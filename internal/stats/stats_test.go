package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zoyakhan/covidfactors/internal/errors"
)

func TestPercentage(t *testing.T) {
	tests := []struct {
		name        string
		numerator   float64
		denominator float64
		want        float64
	}{
		{"whole", 90, 100, 90.0},
		{"fractional", 1, 3, 33.33},
		{"case rate", 589978, 38005238, 1.55},
		{"over hundred", 150, 100, 150.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Percentage(tt.numerator, tt.denominator))
		})
	}
}

func TestRounding(t *testing.T) {
	require.Equal(t, 107.02, Round2(107.0216666))
	require.Equal(t, 22.0, Round1(22.0))
	require.Equal(t, 21.5, Round1(100-78.5))
}

func TestMean(t *testing.T) {
	require.Equal(t, 2.0, Mean([]float64{1, 2, 3}))
	require.Equal(t, 0.0, Mean(nil))
}

func TestLeastSquares(t *testing.T) {
	// y = 2x + 1 exactly
	xs := []float64{0, 1, 2, 3}
	ys := []float64{1, 3, 5, 7}

	slope, intercept, err := LeastSquares(xs, ys)
	require.NoError(t, err)
	require.InDelta(t, 2.0, slope, 1e-9)
	require.InDelta(t, 1.0, intercept, 1e-9)
}

func TestLeastSquares_Errors(t *testing.T) {
	_, _, err := LeastSquares([]float64{1}, []float64{1, 2})
	require.ErrorIs(t, err, errors.ErrMalformedRow)

	_, _, err = LeastSquares([]float64{1}, []float64{1})
	require.ErrorIs(t, err, errors.ErrZeroDenominator)

	_, _, err = LeastSquares([]float64{2, 2, 2}, []float64{1, 2, 3})
	require.ErrorIs(t, err, errors.ErrZeroDenominator)
}
