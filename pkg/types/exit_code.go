// SPDX-License-Identifier: MPL-2.0

// Package types holds small value types shared across the CLI boundary.
package types

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidExitCode is the sentinel error wrapped by InvalidExitCodeError.
var ErrInvalidExitCode = errors.New("invalid exit code")

const (
	// ExitCodeFailure is the generic failure status: missing required
	// capabilities, launch failures, and dispatch errors all fold to it.
	ExitCodeFailure ExitCode = 1

	// ExitCodeInterrupted is returned when the run is cut short by a
	// user-initiated interrupt (SIGINT), following the 128+signal POSIX
	// convention.
	ExitCodeInterrupted ExitCode = 130
)

type (
	// ExitCode represents a process exit status code.
	// Exit codes are in the range 0-255 on POSIX systems.
	// The zero value (0) means success.
	ExitCode int

	// InvalidExitCodeError is returned when an ExitCode is outside the
	// valid range (0-255).
	InvalidExitCodeError struct {
		Value ExitCode
	}
)

// Error implements the error interface.
func (e *InvalidExitCodeError) Error() string {
	return fmt.Sprintf("invalid exit code %d (must be in range 0-255)", e.Value)
}

// Unwrap returns ErrInvalidExitCode so callers can use errors.Is for programmatic detection.
func (e *InvalidExitCodeError) Unwrap() error { return ErrInvalidExitCode }

// Validate returns an error if the ExitCode is outside the valid range (0-255).
func (c ExitCode) Validate() error {
	if c < 0 || c > 255 {
		return &InvalidExitCodeError{Value: c}
	}
	return nil
}

// IsSuccess returns true if the exit code indicates successful execution.
func (c ExitCode) IsSuccess() bool { return c == 0 }

// IsInterrupt returns true if the exit code indicates a user-initiated interrupt.
func (c ExitCode) IsInterrupt() bool { return c == ExitCodeInterrupted }

// String returns the decimal string representation of the ExitCode.
func (c ExitCode) String() string { return strconv.Itoa(int(c)) }
