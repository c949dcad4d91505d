// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"testing"
)

func TestExitCodeValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		value     ExitCode
		wantValid bool
	}{
		{name: "zero is valid", value: 0, wantValid: true},
		{name: "one is valid", value: 1, wantValid: true},
		{name: "interrupt code is valid", value: 130, wantValid: true},
		{name: "255 is valid", value: 255, wantValid: true},
		{name: "negative is invalid", value: -1, wantValid: false},
		{name: "256 is invalid", value: 256, wantValid: false},
		{name: "large positive is invalid", value: 1000, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.value.Validate()
			if (err == nil) != tt.wantValid {
				t.Errorf("ExitCode(%d).Validate() error = %v, wantValid %v", tt.value, err, tt.wantValid)
			}
			if !tt.wantValid && !errors.Is(err, ErrInvalidExitCode) {
				t.Errorf("error does not wrap ErrInvalidExitCode: %v", err)
			}
		})
	}
}

func TestExitCodeIsSuccess(t *testing.T) {
	t.Parallel()

	if !ExitCode(0).IsSuccess() {
		t.Error("ExitCode(0).IsSuccess() = false, want true")
	}
	if ExitCode(1).IsSuccess() {
		t.Error("ExitCode(1).IsSuccess() = true, want false")
	}
	if ExitCodeInterrupted.IsSuccess() {
		t.Error("ExitCodeInterrupted.IsSuccess() = true, want false")
	}
}

func TestExitCodeIsInterrupt(t *testing.T) {
	t.Parallel()

	if !ExitCodeInterrupted.IsInterrupt() {
		t.Error("ExitCodeInterrupted.IsInterrupt() = false, want true")
	}
	if ExitCode(1).IsInterrupt() {
		t.Error("ExitCode(1).IsInterrupt() = true, want false")
	}
}

func TestExitCodeString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value ExitCode
		want  string
	}{
		{value: 0, want: "0"},
		{value: 1, want: "1"},
		{value: 130, want: "130"},
		{value: 255, want: "255"},
	}

	for _, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("ExitCode(%d).String() = %q, want %q", tt.value, got, tt.want)
		}
	}
}
