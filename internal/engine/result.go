// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"time"

	"testctl/pkg/types"
)

// Result is the outcome of one engine invocation. Produced exactly once per
// dispatch and never mutated afterwards.
type Result struct {
	// ExitCode is the engine's exit status, propagated unchanged.
	ExitCode types.ExitCode
	// Error holds launch or infrastructure failures. A nonzero exit from a
	// successfully launched engine is not an Error.
	Error error
	// Output contains captured stdout when the profile captures output.
	Output string
	// ErrOutput contains captured stderr when the profile captures output.
	ErrOutput string
	// Elapsed is the wall-clock duration of the blocking wait.
	Elapsed time.Duration
}

// NewErrorResult creates a Result with the given exit code and error.
func NewErrorResult(code types.ExitCode, err error) *Result {
	return &Result{ExitCode: code, Error: err}
}

// NewExitCodeResult creates a Result with the given exit code and no error.
// Use this for nonzero exits that represent normal engine termination
// rather than infrastructure failures.
func NewExitCodeResult(code types.ExitCode) *Result {
	return &Result{ExitCode: code}
}
