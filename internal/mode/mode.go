// SPDX-License-Identifier: MPL-2.0

package mode

import (
	"errors"
	"fmt"
)

// Kind constants for the supported execution profiles.
const (
	// KindQuick runs the full suite minus tests marked slow, failing fast.
	KindQuick Kind = "quick"
	// KindFull runs the entire suite.
	KindFull Kind = "full"
	// KindStress runs the stress and performance test module.
	KindStress Kind = "stress"
	// KindEdgeCases runs the edge case test module.
	KindEdgeCases Kind = "edge-cases"
	// KindAdapters runs the adapter test module.
	KindAdapters Kind = "adapters"
	// KindIntegration runs the integration test module.
	KindIntegration Kind = "integration"
	// KindCoverage runs the full suite under coverage instrumentation.
	KindCoverage Kind = "coverage"
	// KindBenchmark runs the performance benchmark class only.
	KindBenchmark Kind = "benchmark"
	// KindPattern runs a caller-supplied test path or identifier.
	KindPattern Kind = "pattern"
)

// ErrInvalidKind is the sentinel error wrapped by InvalidKindError.
var ErrInvalidKind = errors.New("invalid execution mode")

type (
	// Kind identifies one of the predefined test-execution profiles.
	Kind string

	// InvalidKindError is returned when a Kind value is not recognized.
	// It wraps ErrInvalidKind for errors.Is() compatibility.
	InvalidKindError struct {
		Value Kind
	}

	// Mode is the single selected execution profile for one invocation.
	// Pattern is only meaningful when Kind is KindPattern.
	Mode struct {
		Kind    Kind
		Pattern string
	}

	// Flags mirrors the mutually exclusive mode flags of the CLI surface.
	// Multiple set fields are legal; FromFlags resolves them by priority.
	Flags struct {
		Quick       bool
		Full        bool
		Stress      bool
		EdgeCases   bool
		Adapters    bool
		Integration bool
		Coverage    bool
		Benchmark   bool
		Pattern     string
	}
)

// Error implements the error interface.
func (e *InvalidKindError) Error() string {
	return fmt.Sprintf("invalid execution mode %q", string(e.Value))
}

// Unwrap returns ErrInvalidKind so callers can use errors.Is for programmatic detection.
func (e *InvalidKindError) Unwrap() error { return ErrInvalidKind }

// Validate returns an error if the Kind is not one of the known profiles.
func (k Kind) Validate() error {
	switch k {
	case KindQuick, KindFull, KindStress, KindEdgeCases, KindAdapters,
		KindIntegration, KindCoverage, KindBenchmark, KindPattern:
		return nil
	}
	return &InvalidKindError{Value: k}
}

// String returns the flag-style name of the Kind.
func (k Kind) String() string { return string(k) }

// FromFlags resolves possibly-overlapping mode flags into exactly one Mode.
// The first matching flag wins, in the fixed order quick, stress, edge-cases,
// adapters, integration, coverage, benchmark, pattern, full. With no flag set
// the default is quick.
func FromFlags(f Flags) Mode {
	switch {
	case f.Quick:
		return Mode{Kind: KindQuick}
	case f.Stress:
		return Mode{Kind: KindStress}
	case f.EdgeCases:
		return Mode{Kind: KindEdgeCases}
	case f.Adapters:
		return Mode{Kind: KindAdapters}
	case f.Integration:
		return Mode{Kind: KindIntegration}
	case f.Coverage:
		return Mode{Kind: KindCoverage}
	case f.Benchmark:
		return Mode{Kind: KindBenchmark}
	case f.Pattern != "":
		return Mode{Kind: KindPattern, Pattern: f.Pattern}
	case f.Full:
		return Mode{Kind: KindFull}
	default:
		return Mode{Kind: KindQuick}
	}
}

// Description returns the human-readable phrase used when announcing the run.
func (m Mode) Description() string {
	switch m.Kind {
	case KindQuick:
		return "quick tests"
	case KindFull:
		return "full test suite"
	case KindStress:
		return "stress tests"
	case KindEdgeCases:
		return "edge case tests"
	case KindAdapters:
		return "adapter tests"
	case KindIntegration:
		return "integration tests"
	case KindCoverage:
		return "tests with coverage analysis"
	case KindBenchmark:
		return "performance benchmarks"
	case KindPattern:
		return fmt.Sprintf("specific test: %s", m.Pattern)
	}
	return string(m.Kind)
}

// CapturesOutput reports whether the engine's output streams are captured
// and re-emitted after completion instead of being inherited directly.
// Only coverage runs capture, so the artifact locations can be reported
// after the engine's own output.
func (m Mode) CapturesOutput() bool { return m.Kind == KindCoverage }
