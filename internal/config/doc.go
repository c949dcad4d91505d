// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates testctl's configuration. Configuration
// is optional: with no file present the defaults apply. When a config.cue
// exists it is validated against the embedded schema before its values are
// merged over the defaults.
package config
