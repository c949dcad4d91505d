// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/shell"
)

var (
	// ErrInvalidEngineConfig is the sentinel error wrapped by InvalidEngineConfigError.
	ErrInvalidEngineConfig = errors.New("invalid engine config")
)

type (
	// EngineConfig describes how the external test engine is reached.
	EngineConfig struct {
		// Python is the interpreter the engine runs under. Empty means
		// the bundled default (python3).
		Python string `mapstructure:"python"`
		// ExtraArgs is a shell-style string of additional engine
		// arguments appended to every invocation.
		ExtraArgs string `mapstructure:"extra_args"`
	}

	// UIConfig holds user interface preferences.
	UIConfig struct {
		// Verbose enables verbose output by default, as if --verbose
		// was passed.
		Verbose bool `mapstructure:"verbose"`
	}

	// Config is the root configuration.
	Config struct {
		Engine EngineConfig `mapstructure:"engine"`
		UI     UIConfig     `mapstructure:"ui"`
	}

	// InvalidEngineConfigError is returned when an EngineConfig value is
	// malformed. It wraps ErrInvalidEngineConfig for errors.Is() compatibility.
	InvalidEngineConfigError struct {
		Reason string
	}
)

// Error implements the error interface.
func (e *InvalidEngineConfigError) Error() string {
	return fmt.Sprintf("invalid engine config: %s", e.Reason)
}

// Unwrap returns ErrInvalidEngineConfig so callers can use errors.Is for programmatic detection.
func (e *InvalidEngineConfigError) Unwrap() error { return ErrInvalidEngineConfig }

// Validate checks constraints the CUE schema cannot express.
func (c *Config) Validate() error {
	if c.Engine.Python != "" && strings.TrimSpace(c.Engine.Python) == "" {
		return &InvalidEngineConfigError{Reason: "python must not be whitespace-only"}
	}
	if _, err := c.Engine.ExtraArgsList(); err != nil {
		return &InvalidEngineConfigError{Reason: err.Error()}
	}
	return nil
}

// ExtraArgsList splits ExtraArgs into words following shell field-splitting
// rules, so quoted arguments with spaces survive intact.
func (e EngineConfig) ExtraArgsList() ([]string, error) {
	if strings.TrimSpace(e.ExtraArgs) == "" {
		return nil, nil
	}
	fields, err := shell.Fields(e.ExtraArgs, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to split extra_args: %w", err)
	}
	return fields, nil
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Engine: EngineConfig{
			Python:    "python3",
			ExtraArgs: "",
		},
		UI: UIConfig{
			Verbose: false,
		},
	}
}
