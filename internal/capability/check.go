// SPDX-License-Identifier: MPL-2.0

package capability

import (
	"fmt"
	"io"
	"os/exec"
)

// Checker probes the declared capability set against the host environment.
// Probe functions are fields so tests can substitute deterministic fakes.
type Checker struct {
	table  Table
	python string

	// lookPath resolves a binary name in PATH. Defaults to exec.LookPath.
	lookPath func(name string) (string, error)
	// importModule attempts to import a module through the Python
	// interpreter. Defaults to a "python -c 'import <module>'" probe.
	importModule func(python, module string) error
}

// NewChecker builds a Checker over the embedded table. The python argument
// is the interpreter used for module probes; empty falls back to "python3".
func NewChecker(python string) (*Checker, error) {
	table, err := DefaultTable()
	if err != nil {
		return nil, err
	}
	if python == "" {
		python = "python3"
	}
	return &Checker{
		table:        table,
		python:       python,
		lookPath:     exec.LookPath,
		importModule: importModuleProbe,
	}, nil
}

// Check probes every capability in table order, printing one line per
// capability to w. It never fails: absence is recorded in the Report.
// The report is computed fresh on every call, so repeated checks against
// an unchanged environment yield identical results.
func (c *Checker) Check(w io.Writer) Report {
	var report Report

	for _, entry := range c.table.Required {
		if c.probe(entry) {
			fmt.Fprintf(w, "  ✓ %s\n", entry.Name)
			continue
		}
		report.MissingRequired = append(report.MissingRequired, entry.Name)
		fmt.Fprintf(w, "  ✗ %s (required)\n", entry.Name)
	}

	for _, entry := range c.table.Optional {
		if c.probe(entry) {
			fmt.Fprintf(w, "  ✓ %s (optional)\n", entry.Name)
			continue
		}
		report.MissingOptional = append(report.MissingOptional, entry.Name)
		fmt.Fprintf(w, "  ✗ %s (optional)\n", entry.Name)
	}

	return report
}

// probe returns whether a single capability is present.
func (c *Checker) probe(entry Capability) bool {
	switch entry.Probe {
	case ProbeBinary, ProbeHost:
		_, err := c.lookPath(entry.Target)
		return err == nil
	case ProbeModule:
		return c.importModule(c.python, entry.Target) == nil
	}
	// Unknown kinds are rejected by Table.Validate before a Checker exists.
	return false
}

// importModuleProbe checks for a Python package by importing it through the
// interpreter. A nonzero exit (ImportError) or a missing interpreter both
// read as "absent".
func importModuleProbe(python, module string) error {
	cmd := exec.Command(python, "-c", "import "+module)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}
