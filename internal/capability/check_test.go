// SPDX-License-Identifier: MPL-2.0

package capability

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"
	"testing"
)

var errProbeFailed = errors.New("probe failed")

// newTestChecker builds a Checker over the embedded table with fake probes.
// presentBinaries and presentModules name what the fake environment has.
func newTestChecker(t *testing.T, presentBinaries, presentModules []string) *Checker {
	t.Helper()

	c, err := NewChecker("python3")
	if err != nil {
		t.Fatalf("NewChecker() error = %v", err)
	}
	c.lookPath = func(name string) (string, error) {
		if slices.Contains(presentBinaries, name) {
			return "/usr/bin/" + name, nil
		}
		return "", fmt.Errorf("%s: %w", name, errProbeFailed)
	}
	c.importModule = func(python, module string) error {
		if slices.Contains(presentModules, module) {
			return nil
		}
		return errProbeFailed
	}
	return c
}

func allModuleTargets(t *testing.T) []string {
	t.Helper()

	table, err := DefaultTable()
	if err != nil {
		t.Fatalf("DefaultTable() error = %v", err)
	}
	var targets []string
	for _, entry := range append(slices.Clone(table.Required), table.Optional...) {
		if entry.Probe == ProbeModule {
			targets = append(targets, entry.Target)
		}
	}
	return targets
}

// ---------------------------------------------------------------------------
// Check tests
// ---------------------------------------------------------------------------

func TestCheckAllPresent(t *testing.T) {
	t.Parallel()

	c := newTestChecker(t, []string{"pytest"}, allModuleTargets(t))

	var out bytes.Buffer
	report := c.Check(&out)

	if report.HasMissingRequired() {
		t.Errorf("MissingRequired = %v, want empty", report.MissingRequired)
	}
	if report.HasMissingOptional() {
		t.Errorf("MissingOptional = %v, want empty", report.MissingOptional)
	}
	if strings.Contains(out.String(), "✗") {
		t.Errorf("output contains failure marks with everything present:\n%s", out.String())
	}
}

func TestCheckMissingRequired(t *testing.T) {
	t.Parallel()

	// No pytest binary and no pytest_cov module.
	c := newTestChecker(t, nil, nil)

	var out bytes.Buffer
	report := c.Check(&out)

	want := []string{"pytest", "pytest-cov"}
	if !reflect.DeepEqual(report.MissingRequired, want) {
		t.Errorf("MissingRequired = %v, want %v", report.MissingRequired, want)
	}
	// Required names must never leak into the optional set.
	for _, name := range want {
		if slices.Contains(report.MissingOptional, name) {
			t.Errorf("%s reported in MissingOptional", name)
		}
	}
	if !strings.Contains(out.String(), "✗ pytest (required)") {
		t.Errorf("output missing required failure line:\n%s", out.String())
	}
}

func TestCheckMissingOptionalIsAdvisory(t *testing.T) {
	t.Parallel()

	// Required satisfied, tiktoken absent.
	modules := allModuleTargets(t)
	modules = slices.DeleteFunc(modules, func(m string) bool { return m == "tiktoken" })
	c := newTestChecker(t, []string{"pytest"}, modules)

	var out bytes.Buffer
	report := c.Check(&out)

	if report.HasMissingRequired() {
		t.Errorf("MissingRequired = %v, want empty", report.MissingRequired)
	}
	if !slices.Contains(report.MissingOptional, "tiktoken") {
		t.Errorf("MissingOptional = %v, want tiktoken included", report.MissingOptional)
	}
	if !strings.Contains(out.String(), "✗ tiktoken (optional)") {
		t.Errorf("output missing optional failure line:\n%s", out.String())
	}
}

func TestCheckPluginFollowsHostTool(t *testing.T) {
	t.Parallel()

	// pytest-benchmark's own module never imports; its probe goes through
	// the pytest binary, so it reads as present whenever pytest does.
	c := newTestChecker(t, []string{"pytest"}, allModuleTargets(t))

	var out bytes.Buffer
	report := c.Check(&out)

	if slices.Contains(report.MissingOptional, "pytest-benchmark") {
		t.Errorf("pytest-benchmark reported missing despite host tool present: %v", report.MissingOptional)
	}

	// And absent when the host tool is gone.
	c = newTestChecker(t, nil, allModuleTargets(t))
	report = c.Check(&out)
	if !slices.Contains(report.MissingOptional, "pytest-benchmark") {
		t.Errorf("pytest-benchmark not reported missing without host tool: %v", report.MissingOptional)
	}
}

func TestCheckIsIdempotent(t *testing.T) {
	t.Parallel()

	c := newTestChecker(t, []string{"pytest"}, []string{"pytest_cov", "psutil"})

	first := c.Check(io.Discard)
	for i := 0; i < 5; i++ {
		got := c.Check(io.Discard)
		if !reflect.DeepEqual(got, first) {
			t.Fatalf("Check() run %d = %+v, want %+v", i, got, first)
		}
	}
}

func TestCheckPrintsOneLinePerCapability(t *testing.T) {
	t.Parallel()

	table, err := DefaultTable()
	if err != nil {
		t.Fatalf("DefaultTable() error = %v", err)
	}

	c := newTestChecker(t, nil, nil)
	var out bytes.Buffer
	c.Check(&out)

	lines := strings.Count(out.String(), "\n")
	want := len(table.Required) + len(table.Optional)
	if lines != want {
		t.Errorf("Check printed %d lines, want %d:\n%s", lines, want, out.String())
	}
}
