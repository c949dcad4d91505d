// SPDX-License-Identifier: MPL-2.0

package capability

import (
	_ "embed"
	"fmt"

	"github.com/pelletier/go-toml/v2"
)

//go:embed capabilities.toml
var capabilitiesTOML []byte

// DefaultTable decodes the embedded capability table. The embedded document
// is part of the binary, so a decode or validation failure is an internal
// error, not a user problem.
func DefaultTable() (Table, error) {
	var t Table
	if err := toml.Unmarshal(capabilitiesTOML, &t); err != nil {
		return Table{}, fmt.Errorf("internal error: failed to decode capability table: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Table{}, fmt.Errorf("internal error: capability table invalid: %w", err)
	}
	return t, nil
}
