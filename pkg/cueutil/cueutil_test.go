// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"strings"
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

func TestFormatErrorNil(t *testing.T) {
	t.Parallel()

	if got := FormatError(nil, "config.cue"); got != nil {
		t.Errorf("FormatError(nil) = %v, want nil", got)
	}
}

func TestFormatErrorIncludesFileAndPath(t *testing.T) {
	t.Parallel()

	ctx := cuecontext.New()
	schema := ctx.CompileString(`#Config: { engine: { python: string } }`)
	user := ctx.CompileString(`engine: python: 42`)

	unified := schema.LookupPath(cue.ParsePath("#Config")).Unify(user)
	err := unified.Validate(cue.Concrete(false))
	if err == nil {
		t.Fatal("expected validation error for mistyped field")
	}

	formatted := FormatError(err, "config.cue")
	if !strings.Contains(formatted.Error(), "config.cue") {
		t.Errorf("formatted error missing file path: %v", formatted)
	}
	if !strings.Contains(formatted.Error(), "engine.python") {
		t.Errorf("formatted error missing JSON path: %v", formatted)
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	data := make([]byte, 100)
	if err := CheckFileSize(data, 100, "f.cue"); err != nil {
		t.Errorf("CheckFileSize at limit = %v, want nil", err)
	}
	if err := CheckFileSize(data, 99, "f.cue"); err == nil {
		t.Error("CheckFileSize over limit = nil, want error")
	}
}
