// SPDX-License-Identifier: MPL-2.0

package mode

// DefaultPython is the interpreter used when the engine config leaves it unset.
const DefaultPython = "python3"

// Fixed engine targets. These paths belong to the orchestrated project's
// suite layout and are deliberately not configurable.
const (
	suiteDir          = "tests/"
	stressModule      = "tests/test_stress_comprehensive.py"
	edgeCaseModule    = "tests/test_edge_cases.py"
	adapterModule     = "tests/test_adapters_comprehensive.py"
	integrationModule = "tests/test_integration_comprehensive.py"
	benchmarkClass    = "tests/test_stress_comprehensive.py::TestPerformanceBenchmarks"
	coverageTarget    = "--cov=context_store"
)

type (
	// Engine describes how to reach the external test-execution engine.
	// The engine itself (pytest) is an opaque collaborator; only its
	// command-line surface is known here.
	Engine struct {
		// Python is the interpreter the engine is launched through
		// ("<python> -m pytest ..."). Empty means DefaultPython.
		Python string
		// ExtraArgs are appended verbatim after the profile's own flags.
		ExtraArgs []string
	}

	// CommandSpec is the fully-resolved executable-plus-arguments
	// description built from a Mode before invocation. It is never
	// mutated after construction.
	CommandSpec struct {
		Executable string
		Args       []string
	}
)

// Command builds the CommandSpec for this Mode. Pure: the result depends
// only on the Mode and Engine values.
func (m Mode) Command(e Engine) CommandSpec {
	python := e.Python
	if python == "" {
		python = DefaultPython
	}

	args := []string{"-m", "pytest"}
	switch m.Kind {
	case KindQuick:
		args = append(args, suiteDir, "--quick", "-v", "--tb=short", "-x", "-m", "not slow")
	case KindFull:
		args = append(args, suiteDir, "-v", "--tb=short")
	case KindStress:
		args = append(args, stressModule, "-v", "--tb=short", "-s")
	case KindEdgeCases:
		args = append(args, edgeCaseModule, "-v", "--tb=short")
	case KindAdapters:
		args = append(args, adapterModule, "-v", "--tb=short")
	case KindIntegration:
		args = append(args, integrationModule, "-v", "--tb=short", "-s")
	case KindCoverage:
		args = append(args, suiteDir, coverageTarget,
			"--cov-report=html", "--cov-report=term-missing", "--cov-report=xml", "-v")
	case KindBenchmark:
		args = append(args, benchmarkClass, "--benchmark-only", "--benchmark-sort=mean", "-v")
	case KindPattern:
		args = append(args, m.Pattern, "-v", "--tb=short")
	}
	args = append(args, e.ExtraArgs...)

	return CommandSpec{Executable: python, Args: args}
}
