// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"testctl/internal/config"
	"testctl/internal/issue"
	"testctl/internal/mode"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// checkDeps makes the run stop after the dependency check
	checkDeps bool
	// modeFlags collects the execution profile selection flags
	modeFlags mode.Flags

	// logger carries verbose diagnostics that are not part of the
	// orchestration output proper.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix:          "testctl",
		ReportTimestamp: false,
	})

	// rootCmd is the whole CLI surface: testctl has no subcommands.
	rootCmd = &cobra.Command{
		Use:   "testctl",
		Short: "Test suite runner for the context reference store",
		Long: TitleStyle.Render("testctl") + SubtitleStyle.Render(" - Test suite runner for the context reference store") + `

testctl selects one of several test execution profiles, verifies that
the tools the suite depends on are available, and launches the test
engine with the flags the profile calls for. The engine's exit code is
propagated as testctl's own.

` + SubtitleStyle.Render("Examples:") + `
  testctl                        Run the quick profile (default)
  testctl --full                 Run the complete test suite
  testctl --coverage             Run with coverage analysis and reports
  testctl --test tests/foo.py    Run a specific test file or pattern
  testctl --check-deps           Verify dependencies and exit`,
		RunE: runTests,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Profile selection flags. More than one may be set; the priority
	// order in mode.FromFlags resolves the selection deterministically.
	rootCmd.Flags().BoolVar(&modeFlags.Quick, "quick", false, "run quick tests, excluding slow ones, stopping on first failure")
	rootCmd.Flags().BoolVar(&modeFlags.Full, "full", false, "run the complete test suite")
	rootCmd.Flags().BoolVar(&modeFlags.Stress, "stress", false, "run stress and robustness tests")
	rootCmd.Flags().BoolVar(&modeFlags.EdgeCases, "edge-cases", false, "run edge case tests")
	rootCmd.Flags().BoolVar(&modeFlags.Adapters, "adapters", false, "run framework adapter tests")
	rootCmd.Flags().BoolVar(&modeFlags.Integration, "integration", false, "run integration tests")
	rootCmd.Flags().BoolVar(&modeFlags.Coverage, "coverage", false, "run tests with coverage analysis")
	rootCmd.Flags().BoolVar(&modeFlags.Benchmark, "benchmark", false, "run performance benchmarks")
	rootCmd.Flags().StringVar(&modeFlags.Pattern, "test", "", "run a specific test file or pattern")
	rootCmd.Flags().BoolVar(&checkDeps, "check-deps", false, "check dependencies and exit")

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/testctl/config.cue)")
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	// Use fang.Execute for enhanced Cobra styling.
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version.
	// fang.WithNotifySignal cancels the command context on SIGINT, which is
	// how an interrupted run surfaces as exit code 130.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig reads in the config file if present.
func initRootConfig() {
	// Set custom config file path if provided via --config flag
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// Always surface config loading errors; the run continues on defaults.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		renderIssue(os.Stderr, issue.ConfigLoadFailedId)
	}

	// Apply verbose from config if not set via flag
	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}

	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
