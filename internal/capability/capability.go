// SPDX-License-Identifier: MPL-2.0

package capability

import (
	"errors"
	"fmt"
	"strings"
)

// Probe kinds for capability detection.
const (
	// ProbeBinary resolves the target as an executable in PATH.
	ProbeBinary ProbeKind = "binary"
	// ProbeModule imports the target module through the Python interpreter.
	ProbeModule ProbeKind = "module"
	// ProbeHost detects a plugin through its host tool: the capability is
	// present when the host binary resolves, regardless of the plugin's
	// own name. Used where install name and probe name diverge.
	ProbeHost ProbeKind = "host"
)

// Tier constants for capability requirement levels.
const (
	// TierRequired capabilities abort the run when absent.
	TierRequired Tier = "required"
	// TierOptional capabilities are advisory; gaps only skip tests.
	TierOptional Tier = "optional"
)

var (
	// ErrInvalidProbeKind is the sentinel error wrapped by InvalidProbeKindError.
	ErrInvalidProbeKind = errors.New("invalid probe kind")
	// ErrInvalidCapability is the sentinel error wrapped by InvalidCapabilityError.
	ErrInvalidCapability = errors.New("invalid capability")
)

type (
	// ProbeKind selects how a capability's presence is detected.
	ProbeKind string

	// Tier is the requirement level of a capability.
	Tier string

	// InvalidProbeKindError is returned when a ProbeKind value is not recognized.
	// It wraps ErrInvalidProbeKind for errors.Is() compatibility.
	InvalidProbeKindError struct {
		Value ProbeKind
	}

	// InvalidCapabilityError is returned when a table entry is malformed.
	// It wraps ErrInvalidCapability for errors.Is() compatibility.
	InvalidCapabilityError struct {
		Name   string
		Reason string
	}

	// Capability is one named package with its probe strategy. Entries are
	// immutable and enumerated up front; nothing is discovered at runtime.
	Capability struct {
		// Name is the package's install name, as shown to the user and in
		// install hints.
		Name string `toml:"name"`
		// Probe selects the detection strategy.
		Probe ProbeKind `toml:"probe"`
		// Target is what the probe inspects: a binary name, an importable
		// module name, or the host tool's binary name.
		Target string `toml:"target"`
	}

	// Table is the full declared capability set, split by tier.
	Table struct {
		Required []Capability `toml:"required"`
		Optional []Capability `toml:"optional"`
	}

	// Report is the outcome of one Check pass. Computed fresh on each run
	// and never persisted.
	Report struct {
		MissingRequired []string
		MissingOptional []string
	}
)

// Error implements the error interface.
func (e *InvalidProbeKindError) Error() string {
	return fmt.Sprintf("invalid probe kind %q", string(e.Value))
}

// Unwrap returns ErrInvalidProbeKind so callers can use errors.Is for programmatic detection.
func (e *InvalidProbeKindError) Unwrap() error { return ErrInvalidProbeKind }

// Error implements the error interface.
func (e *InvalidCapabilityError) Error() string {
	return fmt.Sprintf("invalid capability %q: %s", e.Name, e.Reason)
}

// Unwrap returns ErrInvalidCapability so callers can use errors.Is for programmatic detection.
func (e *InvalidCapabilityError) Unwrap() error { return ErrInvalidCapability }

// Validate returns an error if the ProbeKind is not one of the known kinds.
func (k ProbeKind) Validate() error {
	switch k {
	case ProbeBinary, ProbeModule, ProbeHost:
		return nil
	}
	return &InvalidProbeKindError{Value: k}
}

// Validate checks a single table entry for structural problems.
func (c Capability) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return &InvalidCapabilityError{Name: c.Name, Reason: "name must not be empty"}
	}
	if err := c.Probe.Validate(); err != nil {
		return &InvalidCapabilityError{Name: c.Name, Reason: err.Error()}
	}
	if strings.TrimSpace(c.Target) == "" {
		return &InvalidCapabilityError{Name: c.Name, Reason: "probe target must not be empty"}
	}
	return nil
}

// Validate checks every entry in both tiers.
func (t Table) Validate() error {
	for _, c := range t.Required {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	for _, c := range t.Optional {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// HasMissingRequired reports whether the run must not proceed to execution.
func (r Report) HasMissingRequired() bool { return len(r.MissingRequired) > 0 }

// HasMissingOptional reports whether any advisory gaps were found.
func (r Report) HasMissingOptional() bool { return len(r.MissingOptional) > 0 }

// InstallHint renders the pip invocation that would install the given packages.
func InstallHint(names []string) string {
	return "pip install " + strings.Join(names, " ")
}
