// SPDX-License-Identifier: MPL-2.0

package mode

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// Kind validation tests
// ---------------------------------------------------------------------------

func TestKindValidate(t *testing.T) {
	t.Parallel()

	valid := []Kind{
		KindQuick, KindFull, KindStress, KindEdgeCases, KindAdapters,
		KindIntegration, KindCoverage, KindBenchmark, KindPattern,
	}
	for _, k := range valid {
		if err := k.Validate(); err != nil {
			t.Errorf("Kind(%q).Validate() = %v, want nil", k, err)
		}
	}

	invalid := []Kind{"", "Quick", "parallel", "quick "}
	for _, k := range invalid {
		err := k.Validate()
		if err == nil {
			t.Errorf("Kind(%q).Validate() = nil, want error", k)
			continue
		}
		if !errors.Is(err, ErrInvalidKind) {
			t.Errorf("Kind(%q).Validate() error does not wrap ErrInvalidKind: %v", k, err)
		}
	}
}

// ---------------------------------------------------------------------------
// Flag resolution tests
// ---------------------------------------------------------------------------

func TestFromFlagsSingleFlag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags Flags
		want  Mode
	}{
		{name: "quick", flags: Flags{Quick: true}, want: Mode{Kind: KindQuick}},
		{name: "full", flags: Flags{Full: true}, want: Mode{Kind: KindFull}},
		{name: "stress", flags: Flags{Stress: true}, want: Mode{Kind: KindStress}},
		{name: "edge cases", flags: Flags{EdgeCases: true}, want: Mode{Kind: KindEdgeCases}},
		{name: "adapters", flags: Flags{Adapters: true}, want: Mode{Kind: KindAdapters}},
		{name: "integration", flags: Flags{Integration: true}, want: Mode{Kind: KindIntegration}},
		{name: "coverage", flags: Flags{Coverage: true}, want: Mode{Kind: KindCoverage}},
		{name: "benchmark", flags: Flags{Benchmark: true}, want: Mode{Kind: KindBenchmark}},
		{name: "pattern", flags: Flags{Pattern: "test_basic"}, want: Mode{Kind: KindPattern, Pattern: "test_basic"}},
		{name: "no flag defaults to quick", flags: Flags{}, want: Mode{Kind: KindQuick}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FromFlags(tt.flags); got != tt.want {
				t.Errorf("FromFlags(%+v) = %+v, want %+v", tt.flags, got, tt.want)
			}
		})
	}
}

func TestFromFlagsPriorityOrder(t *testing.T) {
	t.Parallel()

	// When several flags are supplied simultaneously exactly one is honored,
	// following the fixed priority chain.
	tests := []struct {
		name  string
		flags Flags
		want  Kind
	}{
		{name: "quick beats everything", flags: Flags{Quick: true, Stress: true, Coverage: true, Full: true}, want: KindQuick},
		{name: "stress beats edge cases", flags: Flags{Stress: true, EdgeCases: true}, want: KindStress},
		{name: "edge cases beat adapters", flags: Flags{EdgeCases: true, Adapters: true}, want: KindEdgeCases},
		{name: "adapters beat integration", flags: Flags{Adapters: true, Integration: true}, want: KindAdapters},
		{name: "integration beats coverage", flags: Flags{Integration: true, Coverage: true}, want: KindIntegration},
		{name: "coverage beats benchmark", flags: Flags{Coverage: true, Benchmark: true}, want: KindCoverage},
		{name: "benchmark beats pattern", flags: Flags{Benchmark: true, Pattern: "x"}, want: KindBenchmark},
		{name: "pattern beats full", flags: Flags{Pattern: "x", Full: true}, want: KindPattern},
		{name: "full beats default", flags: Flags{Full: true}, want: KindFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FromFlags(tt.flags); got.Kind != tt.want {
				t.Errorf("FromFlags(%+v).Kind = %q, want %q", tt.flags, got.Kind, tt.want)
			}
		})
	}
}

func TestFromFlagsIsDeterministic(t *testing.T) {
	t.Parallel()

	flags := Flags{Stress: true, Coverage: true, Pattern: "p"}
	first := FromFlags(flags)
	for i := 0; i < 10; i++ {
		if got := FromFlags(flags); got != first {
			t.Fatalf("FromFlags() not deterministic: got %+v, want %+v", got, first)
		}
	}
}

// ---------------------------------------------------------------------------
// Description tests
// ---------------------------------------------------------------------------

func TestModeDescription(t *testing.T) {
	t.Parallel()

	if got := (Mode{Kind: KindQuick}).Description(); got != "quick tests" {
		t.Errorf("quick Description() = %q", got)
	}
	if got := (Mode{Kind: KindPattern, Pattern: "test_store"}).Description(); got != "specific test: test_store" {
		t.Errorf("pattern Description() = %q", got)
	}
}

func TestCapturesOutput(t *testing.T) {
	t.Parallel()

	all := []Kind{
		KindQuick, KindFull, KindStress, KindEdgeCases, KindAdapters,
		KindIntegration, KindCoverage, KindBenchmark, KindPattern,
	}
	for _, k := range all {
		m := Mode{Kind: k}
		want := k == KindCoverage
		if got := m.CapturesOutput(); got != want {
			t.Errorf("Mode{%q}.CapturesOutput() = %v, want %v", k, got, want)
		}
	}
}
