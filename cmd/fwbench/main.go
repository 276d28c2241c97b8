// SPDX-License-Identifier: MIT

// Command fwbench generates seeded random graphs, solves all-pairs shortest
// paths with both the sequential and the parallel Floyd–Warshall kernels,
// reports their timings and checks that the results are identical.
//
// Exit status is 0 when every run matched, 1 on a mismatch or any error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// version is overridden at link time (-ldflags "-X main.version=...").
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "fwbench:", err)
		os.Exit(1)
	}
}
