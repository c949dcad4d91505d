// SPDX-License-Identifier: MPL-2.0

package engine

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"testctl/internal/mode"

	"mvdan.cc/sh/v3/syntax"
)

// VerbosityEnvVar is the engine-facing environment flag communicating
// verbosity. It is set on the child's environment only, with "true" or
// "false", and the engine reads it once.
const VerbosityEnvVar = "PYTEST_DEBUG"

// Dispatcher maps a selected execution profile to its external command and
// runs it synchronously. There is no timeout: the blocking wait lasts until
// the engine terminates, with the context serving interrupt delivery only.
type Dispatcher struct {
	// Engine describes how the external engine is reached.
	Engine mode.Engine
	// Verbose is forwarded to the engine through VerbosityEnvVar.
	Verbose bool

	// Stdout is where streamed engine output and the command echo go.
	Stdout io.Writer
	// Stderr is where streamed engine errors go.
	Stderr io.Writer
	// Stdin is the engine's standard input.
	Stdin io.Reader
}

// NewDispatcher creates a Dispatcher wired to the process's own streams.
func NewDispatcher(e mode.Engine, verbose bool) *Dispatcher {
	return &Dispatcher{
		Engine:  e,
		Verbose: verbose,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Stdin:   os.Stdin,
	}
}

// Dispatch resolves the profile's CommandSpec and runs it. The Result is
// returned unconditionally: missing executables and nonzero exits surface
// as ordinary exit codes, never as raised failures.
func (d *Dispatcher) Dispatch(ctx context.Context, m mode.Mode) *Result {
	spec := m.Command(d.Engine)
	if m.CapturesOutput() {
		return d.RunCapture(ctx, spec)
	}
	return d.Run(ctx, spec)
}

// Run executes a CommandSpec with the engine's output streams inherited
// from the Dispatcher's writers.
func (d *Dispatcher) Run(ctx context.Context, spec mode.CommandSpec) *Result {
	return d.run(ctx, spec, newStreamingOutput(d.Stdout, d.Stderr), nil)
}

// RunCapture executes a CommandSpec with stdout and stderr captured into
// the Result instead of reaching the terminal.
func (d *Dispatcher) RunCapture(ctx context.Context, spec mode.CommandSpec) *Result {
	out, captured := newCapturingOutput()
	return d.run(ctx, spec, out, captured)
}

func (d *Dispatcher) run(ctx context.Context, spec mode.CommandSpec, out *executeOutput, captured *capturedOutput) *Result {
	fmt.Fprintf(d.Stdout, "Running: %s\n", RenderCommandLine(spec))

	cmd := exec.CommandContext(ctx, spec.Executable, spec.Args...)
	cmd.Stdout = out.stdout
	cmd.Stderr = out.stderr
	cmd.Stdin = d.Stdin
	cmd.Env = append(os.Environ(), VerbosityEnvVar+"="+strconv.FormatBool(d.Verbose))

	start := time.Now()
	err := cmd.Run()
	result := extractResult(err, captured)
	result.Elapsed = time.Since(start)
	return result
}

// RenderCommandLine renders a CommandSpec as a copy-pasteable shell line,
// quoting each word that needs it.
func RenderCommandLine(spec mode.CommandSpec) string {
	words := append([]string{spec.Executable}, spec.Args...)
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		q, err := syntax.Quote(w, syntax.LangBash)
		if err != nil {
			q = w
		}
		quoted = append(quoted, q)
	}
	return strings.Join(quoted, " ")
}
