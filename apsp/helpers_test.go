// SPDX-License-Identifier: MIT

package apsp_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/builder"
	"github.com/katalvlaran/apsp/matrix"
)

var inf = matrix.Unreachable()

func f(w int64) matrix.Weight { return matrix.Finite(w) }

// quietLogger drops all records so failing-path tests stay readable.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// randomGraph builds a seeded random dense graph with the default weights.
func randomGraph(t testing.TB, n int, seed int64, p float64) *matrix.Distance {
	t.Helper()
	d, err := builder.Build(n,
		[]builder.BuilderOption{builder.WithSeed(seed)},
		builder.RandomDense(p),
	)
	require.NoError(t, err)

	return d
}

// fromEdges builds an n×n matrix holding exactly the given edges.
func fromEdges(t testing.TB, n int, edges ...builder.Edge) *matrix.Distance {
	t.Helper()
	d, err := builder.Build(n, nil, builder.FromEdges(edges...))
	require.NoError(t, err)

	return d
}

// at reads a cell or fails the test.
func at(t testing.TB, d *matrix.Distance, i, j int) matrix.Weight {
	t.Helper()
	w, err := d.At(i, j)
	require.NoError(t, err)

	return w
}

// requireSame fails with both renderings when a and b differ.
func requireSame(t testing.TB, a, b *matrix.Distance, msgAndArgs ...interface{}) {
	t.Helper()
	if !a.Equal(b) {
		require.Failf(t, "matrices differ", "a:\n%s\nb:\n%s\n%v", a, b, msgAndArgs)
	}
}

// reachable returns the transitive closure of the finite off-diagonal cells
// of g, computed by BFS from every source.
func reachable(t testing.TB, g *matrix.Distance) [][]bool {
	t.Helper()
	n := g.N()
	out := make([][]bool, n)
	for s := 0; s < n; s++ {
		seen := make([]bool, n)
		seen[s] = true
		queue := []int{s}
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for v := 0; v < n; v++ {
				if !seen[v] && at(t, g, u, v).IsFinite() {
					seen[v] = true
					queue = append(queue, v)
				}
			}
		}
		out[s] = seen
	}

	return out
}
