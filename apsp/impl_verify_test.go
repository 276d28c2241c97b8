// SPDX-License-Identifier: MIT

package apsp_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/apsp/apsp"
	"github.com/katalvlaran/apsp/builder"
	"github.com/katalvlaran/apsp/matrix"
)

// TestVerify_ThreeNodeScenario: 0→1 (2), 1→2 (3) and no direct 0→2 edge.
func TestVerify_ThreeNodeScenario(t *testing.T) {
	t.Parallel()

	g := fromEdges(t, 3,
		builder.Edge{From: 0, To: 1, Weight: 2},
		builder.Edge{From: 1, To: 2, Weight: 3},
	)
	res, err := apsp.New(apsp.WithWorkers(2)).Verify(context.Background(), g)
	require.NoError(t, err)
	require.True(t, res.OK())
	assert.Equal(t, f(5), at(t, res.SequentialDist, 0, 2))
	assert.Equal(t, f(5), at(t, res.ParallelDist, 0, 2))
	assert.Equal(t, inf, at(t, res.ParallelDist, 2, 0))
}

// TestVerify_SingleVertex: N=1 yields [[0]] from both kernels.
func TestVerify_SingleVertex(t *testing.T) {
	t.Parallel()

	g, err := matrix.NewDistance(1)
	require.NoError(t, err)
	res, err := apsp.New().Verify(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, "[0]\n", res.SequentialDist.String())
	assert.Equal(t, "[0]\n", res.ParallelDist.String())
}

func TestVerify_Match(t *testing.T) {
	t.Parallel()

	g := randomGraph(t, 50, 12, 0.8)
	input := g.Clone()

	e := apsp.New(apsp.WithWorkers(4), apsp.WithPartition(apsp.PartitionBlocks), apsp.WithLogger(quietLogger()))
	res, err := e.Verify(context.Background(), g)
	require.NoError(t, err)

	assert.True(t, res.OK())
	assert.Nil(t, res.Mismatch)
	assert.Equal(t, 50, res.N)
	assert.Equal(t, 4, res.Workers)
	assert.Equal(t, "blocks", res.Partition)
	assert.GreaterOrEqual(t, res.Speedup(), 0.0)
	requireSame(t, res.SequentialDist, res.ParallelDist)
	requireSame(t, input, g, "Verify must not mutate its input")
}

func TestVerify_PreconditionError(t *testing.T) {
	t.Parallel()

	_, err := apsp.New().Verify(context.Background(), nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestVerify_Aborted(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := apsp.New(apsp.WithLogger(quietLogger())).Verify(ctx, randomGraph(t, 8, 1, 0.5))
	assert.ErrorIs(t, err, apsp.ErrAborted)
}

func TestResult_Speedup(t *testing.T) {
	t.Parallel()

	r := &apsp.Result{Sequential: 3 * time.Second, Parallel: time.Second}
	assert.InDelta(t, 3.0, r.Speedup(), 1e-9)

	r.Parallel = 0
	assert.Zero(t, r.Speedup())
}
