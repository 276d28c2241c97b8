// SPDX-License-Identifier: MIT

package apsp

import "errors"

var (
	// ErrAborted is returned when the caller's context is cancelled or times
	// out mid-run. It is always joined with the context error, so both
	// errors.Is(err, ErrAborted) and errors.Is(err, context.Canceled) hold.
	// The matrix contents are undefined after an abort.
	ErrAborted = errors.New("apsp: run aborted")

	// ErrWorkerPanic wraps a panic recovered inside a parallel row task.
	// The whole pivot pass, and the call, fail with it.
	ErrWorkerPanic = errors.New("apsp: worker panicked")
)
