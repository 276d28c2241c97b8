// File: builder_impl_test.go
// Package builder_test contains functional tests for the constructors and the
// Random source, verifying topology, weights, determinism and error sentinels.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/builder"
	"github.com/katalvlaran/apsp/matrix"
)

// countEdges returns the number of finite off-diagonal cells.
func countEdges(t *testing.T, d *matrix.Distance) int {
	t.Helper()
	cnt := 0
	for i := 0; i < d.N(); i++ {
		for j := 0; j < d.N(); j++ {
			w, err := d.At(i, j)
			require.NoError(t, err)
			if i != j && w.IsFinite() {
				cnt++
			}
		}
	}

	return cnt
}

// assertDiagonalZero checks the self-loop invariant.
func assertDiagonalZero(t *testing.T, d *matrix.Distance) {
	t.Helper()
	for i := 0; i < d.N(); i++ {
		w, err := d.At(i, i)
		require.NoError(t, err)
		assert.Equal(t, matrix.Finite(0), w, "diag[%d]", i)
	}
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	_, err := builder.Build(0, nil)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(3, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)

	_, err = builder.Build(1, nil, builder.Path())
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(1, nil, builder.Cycle())
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Build(4, nil, builder.RandomDense(1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.Build(4, nil, builder.RandomDense(0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Build(2, nil, builder.FromEdges(builder.Edge{From: 0, To: 1, Weight: 0}))
	assert.ErrorIs(t, err, builder.ErrInvalidWeight)

	_, err = builder.Build(2, nil, builder.FromEdges(builder.Edge{From: 0, To: 2, Weight: 1}))
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	bad := builder.WithWeightFn(func(_ *rand.Rand) int64 { return 0 })
	_, err = builder.Build(3, []builder.BuilderOption{bad}, builder.Complete())
	assert.ErrorIs(t, err, builder.ErrInvalidWeight)
}

func TestBuild_Topologies(t *testing.T) {
	t.Parallel()

	const n = 5
	cases := []struct {
		name      string
		cons      []builder.Constructor
		wantEdges int
	}{
		{"empty", nil, 0},
		{"path", []builder.Constructor{builder.Path()}, n - 1},
		{"cycle", []builder.Constructor{builder.Cycle()}, n},
		{"complete", []builder.Constructor{builder.Complete()}, n * (n - 1)},
		{"dense p=0", []builder.Constructor{builder.RandomDense(0)}, 0},
		{"dense p=1", []builder.Constructor{builder.RandomDense(1)}, n * (n - 1)},
		// Path then cycle: the closing edge 4→0 is the only addition.
		{"path+cycle", []builder.Constructor{builder.Path(), builder.Cycle()}, n},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			d, err := builder.Build(n, []builder.BuilderOption{builder.WithConstantWeight(2)}, tc.cons...)
			require.NoError(t, err)
			assertDiagonalZero(t, d)
			assert.Equal(t, tc.wantEdges, countEdges(t, d))
		})
	}
}

func TestFromEdges_LastWriteWins(t *testing.T) {
	t.Parallel()

	d, err := builder.Build(3, nil, builder.FromEdges(
		builder.Edge{From: 0, To: 1, Weight: 2},
		builder.Edge{From: 1, To: 2, Weight: 3},
		builder.Edge{From: 0, To: 1, Weight: 9},
	))
	require.NoError(t, err)

	w, _ := d.At(0, 1)
	assert.Equal(t, matrix.Finite(9), w)
	w, _ = d.At(1, 2)
	assert.Equal(t, matrix.Finite(3), w)
	w, _ = d.At(0, 2)
	assert.Equal(t, matrix.Unreachable(), w)
}

func TestRandom_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := builder.NewRandom(builder.WithSeed(2024)).Generate(40)
	require.NoError(t, err)
	b, err := builder.NewRandom(builder.WithSeed(2024)).Generate(40)
	require.NoError(t, err)
	assert.True(t, a.Equal(b), "same seed must yield identical matrices")

	c, err := builder.NewRandom(builder.WithSeed(2025)).Generate(40)
	require.NoError(t, err)
	assert.False(t, a.Equal(c), "different seeds should differ on 40×40")
}

func TestRandom_SuccessiveCallsAdvance(t *testing.T) {
	t.Parallel()

	src := builder.NewRandom(builder.WithSeed(5))
	a, err := src.Generate(30)
	require.NoError(t, err)
	b, err := src.Generate(30)
	require.NoError(t, err)
	assert.False(t, a.Equal(b))
}

func TestRandom_Distribution(t *testing.T) {
	t.Parallel()

	const n = 120
	d, err := builder.NewRandom(builder.WithSeed(11)).Generate(n)
	require.NoError(t, err)
	assertDiagonalZero(t, d)

	// 80% of n(n-1)=14280 pairs ≈ 11424; allow a generous band.
	edges := countEdges(t, d)
	assert.InDelta(t, 0.8*float64(n*(n-1)), float64(edges), 0.03*float64(n*(n-1)))

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			w, _ := d.At(i, j)
			v, ok := w.Value()
			if i == j || !ok {
				continue
			}
			if v < builder.DefaultMinWeight || v >= builder.DefaultMaxWeight {
				t.Fatalf("weight[%d,%d]=%d outside [%d,%d)", i, j, v, builder.DefaultMinWeight, builder.DefaultMaxWeight)
			}
		}
	}
}

func TestRandom_GenerateErrors(t *testing.T) {
	t.Parallel()

	_, err := builder.NewRandom(builder.WithSeed(1)).Generate(0)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.NewRandom().Generate(3)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)
}
