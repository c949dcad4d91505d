// SPDX-License-Identifier: MPL-2.0

// Package engine launches the external test-execution engine for a selected
// profile and reports its outcome. The engine is opaque: it is reached only
// through its command line, and its exit code is the sole signal consumed.
// Dispatch is synchronous and never fails — launch errors and nonzero exits
// alike surface inside the Result.
package engine
