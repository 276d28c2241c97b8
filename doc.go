// Package apsp is a small all-pairs shortest-path workbench: a sequential
// and a row-parallel Floyd–Warshall kernel over a tagged integer distance
// matrix, plus the tooling to generate graphs and prove both kernels agree.
//
// Layout:
//
//	matrix/        - Weight (Finite | Unreachable) and the dense Distance matrix
//	apsp/          - Engine: Sequential, Parallel, Compare, Verify
//	builder/       - seeded graph sources and fixture constructors
//	report/        - text / YAML reporters and multi-run summaries
//	config/        - run configuration (defaults, YAML file, validation)
//	telemetry/     - OpenTelemetry provider setup
//	cmd/fwbench/   - the CLI tying it all together
//
// Quick example:
//
//	  0 ──2──▶ 1 ──3──▶ 2        d[0][2] = min(10, 2+3) = 5
//	  └────────10───────▶
//
//	d, _ := builder.Build(3, nil, builder.FromEdges(
//		builder.Edge{From: 0, To: 1, Weight: 2},
//		builder.Edge{From: 1, To: 2, Weight: 3},
//		builder.Edge{From: 0, To: 2, Weight: 10},
//	))
//	_ = apsp.New(apsp.WithWorkers(4)).Parallel(ctx, d)
//
//	go install github.com/katalvlaran/apsp/cmd/fwbench@latest
package apsp
