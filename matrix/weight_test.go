// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/matrix"
)

func TestWeight_ZeroValueIsUnreachable(t *testing.T) {
	t.Parallel()

	var w matrix.Weight
	assert.False(t, w.IsFinite())
	assert.Equal(t, matrix.Unreachable(), w)
	assert.Equal(t, "∞", w.String())

	v, ok := w.Value()
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestWeight_Finite(t *testing.T) {
	t.Parallel()

	w := matrix.Finite(7)
	v, ok := w.Value()
	require.True(t, ok)
	assert.Equal(t, int64(7), v)
	assert.Equal(t, "7", w.String())
	assert.NotEqual(t, matrix.Finite(0), matrix.Unreachable())
}

func TestWeight_Less(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b matrix.Weight
		want bool
	}{
		{"finite<finite", f(1), f(2), true},
		{"finite=finite", f(2), f(2), false},
		{"finite>finite", f(3), f(2), false},
		{"finite<inf", f(math.MaxInt64), inf, true},
		{"inf<finite", inf, f(0), false},
		{"inf<inf", inf, inf, false},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.a.Less(tc.b))
		})
	}
}

func TestAddWeights(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		a, b    matrix.Weight
		want    matrix.Weight
		wantErr error
	}{
		{"finite+finite", f(2), f(3), f(5), nil},
		{"inf+finite", inf, f(3), inf, nil},
		{"finite+inf", f(3), inf, inf, nil},
		// Two sentinels never meet in arithmetic, so no wrap is possible.
		{"inf+inf", inf, inf, inf, nil},
		{"max+0", f(math.MaxInt64), f(0), f(math.MaxInt64), nil},
		{"max+1 overflows", f(math.MaxInt64), f(1), inf, matrix.ErrWeightOverflow},
		{"near max overflows", f(math.MaxInt64 - 5), f(6), inf, matrix.ErrWeightOverflow},
		{"near max fits", f(math.MaxInt64 - 5), f(5), f(math.MaxInt64), nil},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := matrix.AddWeights(tc.a, tc.b)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestWeight_MarshalYAML(t *testing.T) {
	t.Parallel()

	v, err := f(4).MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, int64(4), v)

	v, err = inf.MarshalYAML()
	require.NoError(t, err)
	assert.Equal(t, "∞", v)
}
