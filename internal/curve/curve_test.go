package curve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adamryczkowski/bright/internal/curve"
)

func TestLinear(t *testing.T) {
	tests := []struct {
		name string
		xmin float64
		xmax float64
		n    int
	}{
		{
			name: "unit interval in 10 steps",
			xmin: 0.0,
			xmax: 1.0,
			n:    10,
		},
		{
			name: "dark brightness range",
			xmin: 0.1,
			xmax: 1.0,
			n:    10,
		},
		{
			name: "bright gamma range",
			xmin: 1.0,
			xmax: 2.0,
			n:    10,
		},
		{
			name: "single step",
			xmin: 3.0,
			xmax: 5.0,
			n:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := curve.Linear(tt.xmin, tt.xmax, tt.n)

			require.Len(t, points, tt.n+1)
			assert.Equal(t, tt.xmin, points[0], "first point must equal xmin")
			assert.Equal(t, tt.xmax, points[tt.n], "last point must equal xmax")

			// Differences must be constant
			want := (tt.xmax - tt.xmin) / float64(tt.n)
			for i := 1; i < len(points); i++ {
				assert.InDelta(t, want, points[i]-points[i-1], 1e-9, "step %d", i)
			}
		})
	}
}

func TestExp(t *testing.T) {
	tests := []struct {
		name  string
		xmin  float64
		xmax  float64
		n     int
		alpha float64
	}{
		{
			name:  "backlight step table",
			xmin:  0,
			xmax:  255,
			n:     9,
			alpha: 1.4,
		},
		{
			name:  "large maximum",
			xmin:  0,
			xmax:  19200,
			n:     9,
			alpha: 1.4,
		},
		{
			name:  "steep curve",
			xmin:  0,
			xmax:  100,
			n:     10,
			alpha: 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := curve.Exp(tt.xmin, tt.xmax, tt.n, tt.alpha)
			require.NoError(t, err)

			require.Len(t, points, tt.n+1)
			assert.Equal(t, tt.xmin, points[0], "first point must equal xmin")
			assert.Equal(t, tt.xmax, points[tt.n], "last point must equal xmax")

			for i := 1; i < len(points); i++ {
				assert.Greater(t, points[i], points[i-1], "curve must be strictly increasing")
			}
		})
	}
}

func TestExp_InvalidAlpha(t *testing.T) {
	tests := []struct {
		name  string
		alpha float64
	}{
		{
			name:  "alpha of exactly 1 collapses the exponent range",
			alpha: 1.0,
		},
		{
			name:  "alpha below 1",
			alpha: 0.5,
		},
		{
			name:  "zero alpha",
			alpha: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points, err := curve.Exp(0, 100, 9, tt.alpha)
			assert.Nil(t, points)
			assert.ErrorIs(t, err, curve.ErrInvalidAlpha)
		})
	}
}

func TestExp_LargerAlphaSkewsTowardMinimum(t *testing.T) {
	gentle, err := curve.Exp(0, 100, 10, 1.2)
	require.NoError(t, err)
	steep, err := curve.Exp(0, 100, 10, 2.0)
	require.NoError(t, err)

	linear := curve.Linear(0, 100, 10)

	// Midpoints of exponential curves sit below the linear midpoint,
	// and a larger alpha pushes them further down.
	assert.Less(t, gentle[5], linear[5])
	assert.Less(t, steep[5], gentle[5])
}

func TestNearestIndex(t *testing.T) {
	tests := []struct {
		name     string
		value    int
		expected int
	}{
		{
			name:     "minimum maps to first index",
			value:    0,
			expected: 0,
		},
		{
			name:     "maximum maps to last index",
			value:    255,
			expected: 9,
		},
		{
			name:     "value above maximum clamps to last index",
			value:    10000,
			expected: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := curve.NearestIndex(0, 255, 9, 1.4, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, idx)
		})
	}
}

func TestNearestIndex_RoundTrip(t *testing.T) {
	points, err := curve.Exp(0, 19200, 9, 1.4)
	require.NoError(t, err)

	for i, p := range points {
		idx, err := curve.NearestIndex(0, 19200, 9, 1.4, int(p))
		require.NoError(t, err)
		assert.Equal(t, i, idx, "curve entry %d must map back to its own index", i)
	}
}

func TestNearestIndex_TieBreaksLow(t *testing.T) {
	// Exp(0, 1, 2, 1.4) rounds to [0, 0, 1]: indices 0 and 1 are both an
	// exact match for 0, so the lowest index must win.
	idx, err := curve.NearestIndex(0, 1, 2, 1.4, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
}

func TestNearestIndex_InvalidAlpha(t *testing.T) {
	_, err := curve.NearestIndex(0, 100, 9, 1.0, 50)
	assert.ErrorIs(t, err, curve.ErrInvalidAlpha)
}
