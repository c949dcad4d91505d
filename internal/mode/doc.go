// SPDX-License-Identifier: MPL-2.0

// Package mode defines the closed set of test-execution profiles and the
// deterministic mapping from a selected profile to the external engine
// command line. Selection from CLI flags and command construction are both
// pure: the same inputs always produce the same CommandSpec.
package mode
