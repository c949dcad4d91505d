// SPDX-License-Identifier: MPL-2.0

// Package capability inspects the host environment for the fixed set of
// required and optional packages the test suite depends on. The set is
// declared once in an embedded table and probed uniformly; absence is
// reported, never raised, and nothing in the environment is mutated.
package capability
