// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"testctl/internal/capability"
	"testctl/internal/config"
	"testctl/internal/engine"
	"testctl/internal/issue"
	"testctl/internal/mode"
	"testctl/pkg/types"

	"github.com/spf13/cobra"
)

// ruleWidth is the width of the "=" rules framing the banner and report.
const ruleWidth = 60

// runTests is the RunE handler for the root command: dependency check,
// profile selection, engine dispatch, exit code propagation.
func runTests(cobraCmd *cobra.Command, _ []string) error {
	ctx := cobraCmd.Context()
	out := cobraCmd.OutOrStdout()
	errOut := cobraCmd.ErrOrStderr()

	cfg := config.Get()
	extraArgs, err := cfg.Engine.ExtraArgsList()
	if err != nil {
		return issue.NewErrorContext().
			WithOperation("parse engine.extra_args").
			WithSuggestion("Check the quoting in your config file").
			Wrap(err).
			BuildError()
	}
	eng := mode.Engine{Python: cfg.Engine.Python, ExtraArgs: extraArgs}

	printBanner(out)

	fmt.Fprintln(out, CmdStyle.Render("🔍 Checking dependencies..."))
	checker, err := capability.NewChecker(eng.Python)
	if err != nil {
		return issue.WrapWithOperation(err, "load capability table")
	}
	report := checker.Check(out)

	if checkDeps {
		return reportDependencyCheck(out, errOut, report)
	}

	if report.HasMissingRequired() {
		fmt.Fprintf(errOut, "\n%s missing required dependencies: %s\n",
			ErrorStyle.Render("Error:"), strings.Join(report.MissingRequired, ", "))
		fmt.Fprintf(errOut, "Install with: %s\n", CmdStyle.Render(capability.InstallHint(report.MissingRequired)))
		renderIssue(errOut, issue.DependenciesNotSatisfiedId)
		return &ExitError{Code: types.ExitCodeFailure}
	}

	if report.HasMissingOptional() {
		fmt.Fprintf(out, "\n%s some tests may be skipped. Install with: %s\n",
			WarningStyle.Render("Warning:"), capability.InstallHint(report.MissingOptional))
	}

	m := mode.FromFlags(modeFlags)
	logger.Debug("resolved execution profile",
		"mode", m.Kind, "python", eng.Python, "extra_args", eng.ExtraArgs)

	fmt.Fprintf(out, "\n%s\n", CmdStyle.Render(fmt.Sprintf("🚀 Running %s...", m.Description())))

	d := engine.NewDispatcher(eng, verbose)
	d.Stdout = out
	d.Stderr = errOut
	result := d.Dispatch(ctx, m)

	// An interrupt cancels the context and kills the engine; the run is
	// reported as interrupted regardless of what the dying engine exited with.
	if ctx.Err() != nil {
		fmt.Fprintf(errOut, "\n%s test run interrupted\n", WarningStyle.Render("!"))
		renderIssue(errOut, issue.TestsInterruptedId)
		return &ExitError{Code: types.ExitCodeInterrupted}
	}

	if result.Error != nil {
		renderIssue(errOut, issue.EngineLaunchFailedId)
		fmt.Fprintf(errOut, "\n%s %v\n", ErrorStyle.Render("Error:"), result.Error)
		return &ExitError{Code: result.ExitCode, Err: result.Error}
	}

	if m.CapturesOutput() {
		emitCapturedOutput(out, errOut, result)
	}

	printReport(out, result)

	if result.ExitCode != 0 {
		return &ExitError{Code: result.ExitCode}
	}
	return nil
}

// printBanner frames the run with the suite title.
func printBanner(w io.Writer) {
	fmt.Fprintln(w, TitleStyle.Render(strings.Repeat("=", ruleWidth)))
	fmt.Fprintln(w, TitleStyle.Render("Context Reference Store Test Runner"))
	fmt.Fprintln(w, TitleStyle.Render(strings.Repeat("=", ruleWidth)))
}

// printReport frames the outcome of a completed (non-interrupted) run.
func printReport(w io.Writer, result *engine.Result) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, SubtitleStyle.Render(strings.Repeat("=", ruleWidth)))
	if result.ExitCode.IsSuccess() {
		fmt.Fprintln(w, SuccessStyle.Render(
			fmt.Sprintf("✅ Tests completed successfully in %.2fs", result.Elapsed.Seconds())))
	} else {
		fmt.Fprintln(w, ErrorStyle.Render(
			fmt.Sprintf("❌ Tests failed with exit code %d after %.2fs", result.ExitCode, result.Elapsed.Seconds())))
	}
	fmt.Fprintln(w, SubtitleStyle.Render(strings.Repeat("=", ruleWidth)))
}

// reportDependencyCheck finishes a --check-deps run. The dependency lines
// themselves were already printed by the checker.
func reportDependencyCheck(out, errOut io.Writer, report capability.Report) error {
	if report.HasMissingRequired() {
		fmt.Fprintf(errOut, "\n%s missing required dependencies: %s\n",
			ErrorStyle.Render("Error:"), strings.Join(report.MissingRequired, ", "))
		fmt.Fprintf(errOut, "Install with: %s\n", CmdStyle.Render(capability.InstallHint(report.MissingRequired)))
		return &ExitError{Code: types.ExitCodeFailure}
	}

	fmt.Fprintf(out, "\n%s\n", SuccessStyle.Render("All required dependencies are available!"))
	if report.HasMissingOptional() {
		fmt.Fprintf(out, "%s optional dependencies missing: %s\n",
			WarningStyle.Render("Note:"), strings.Join(report.MissingOptional, ", "))
		fmt.Fprintf(out, "Install with: %s\n", CmdStyle.Render(capability.InstallHint(report.MissingOptional)))
	}
	return nil
}

// emitCapturedOutput re-emits engine output that a capturing profile held
// back, then points at the artifacts the profile produced.
func emitCapturedOutput(out, errOut io.Writer, result *engine.Result) {
	if result.Output != "" {
		fmt.Fprint(out, result.Output)
	}
	if result.ErrOutput != "" {
		fmt.Fprint(errOut, result.ErrOutput)
	}

	if result.ExitCode.IsSuccess() {
		fmt.Fprintf(out, "\n%s\n", CmdStyle.Render("📊 Coverage report generated:"))
		fmt.Fprintln(out, "  HTML: htmlcov/index.html")
		fmt.Fprintln(out, "  XML:  coverage.xml")
	}
}

// renderIssue writes the rendered markdown guidance for an issue to w.
func renderIssue(w io.Writer, id issue.Id) {
	rendered, _ := issue.Get(id).Render("dark")
	fmt.Fprint(w, rendered)
}
