// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"bytes"
	"errors"
	"io"
	"os/exec"

	"testctl/pkg/types"
)

type (
	// executeOutput configures where engine output is directed during
	// execution. It abstracts the difference between streaming (inherited
	// writers) and capturing (buffers) dispatch modes.
	executeOutput struct {
		stdout io.Writer
		stderr io.Writer
	}

	// capturedOutput holds the captured stdout and stderr buffers when
	// capture mode is used.
	capturedOutput struct {
		stdout bytes.Buffer
		stderr bytes.Buffer
	}
)

// newStreamingOutput creates an output configuration that streams to the
// provided writers.
func newStreamingOutput(stdout, stderr io.Writer) *executeOutput {
	return &executeOutput{stdout: stdout, stderr: stderr}
}

// newCapturingOutput creates an output configuration that captures to
// internal buffers, returning the buffer holder to retrieve results from.
func newCapturingOutput() (*executeOutput, *capturedOutput) {
	captured := &capturedOutput{}
	return &executeOutput{stdout: &captured.stdout, stderr: &captured.stderr}, captured
}

// extractResult determines the Result from a command execution error.
// A nil error is exit 0; an *exec.ExitError carries the engine's own status;
// anything else is a launch failure folded to exit 1.
func extractResult(err error, captured *capturedOutput) *Result {
	result := &Result{}

	if captured != nil {
		result.Output = captured.stdout.String()
		result.ErrOutput = captured.stderr.String()
	}

	if err == nil {
		return result
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code := types.ExitCode(exitErr.ExitCode())
		if validateErr := code.Validate(); validateErr != nil {
			// Signal-terminated engines report -1 here; fold to a plain
			// failure and keep the cause.
			result.ExitCode = types.ExitCodeFailure
			result.Error = validateErr
			return result
		}
		result.ExitCode = code
		return result
	}

	result.ExitCode = types.ExitCodeFailure
	result.Error = err
	return result
}
