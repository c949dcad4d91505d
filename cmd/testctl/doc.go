// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI surface for testctl.
//
// This package implements the Cobra root command for the testctl CLI:
// flag parsing for the execution profiles, the dependency check surface,
// and the orchestration flow that launches the external test engine and
// propagates its exit code.
package cmd
