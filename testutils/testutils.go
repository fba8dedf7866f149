// Package testutils provides helpers for testing woflang ops in Go.
package testutils

import (
	"errors"
	"io"
	"testing"

	"github.com/wofl/woflang"
	"github.com/wofl/woflang/ops/dateops"
	"github.com/wofl/woflang/ops/mathops"
	"github.com/wofl/woflang/ops/stackops"
	"github.com/wofl/woflang/ops/strops"
	"github.com/wofl/woflang/ops/sysops"
	"github.com/wofl/woflang/ops/unitops"
)

// NewInterp returns a fresh interpreter with every builtin op package
// registered and output discarded.
func NewInterp() *woflang.Interp {
	it := woflang.New()
	it.Out = io.Discard
	stackops.Register(it)
	mathops.Register(it)
	strops.Register(it)
	dateops.Register(it)
	sysops.Register(it)
	unitops.Register(it)
	return it
}

// A LineTestCase executes source on a fresh interpreter and checks the
// result.
type LineTestCase struct {
	// Source is the woflang line to execute.
	Source string
	// Want is the expected final stack, bottom to top. Ignored when nil.
	Want []woflang.Value
	// WantErr, when non-nil, is the sentinel the execution error must
	// match.
	WantErr error
}

// TestFunc returns a test function for the case.
func (c LineTestCase) TestFunc() func(*testing.T) {
	return func(t *testing.T) {
		it := NewInterp()
		defer it.Close()
		err := it.ExecLine(c.Source)
		if c.WantErr != nil {
			if !errors.Is(err, c.WantErr) {
				t.Fatalf("ExecLine(%q) error = %v, want %v", c.Source, err, c.WantErr)
			}
		} else if err != nil {
			t.Fatalf("ExecLine(%q) failed: %v", c.Source, err)
		}
		if c.Want != nil {
			CheckStack(t, it, c.Want)
		}
	}
}

// CheckStack compares the interpreter's stack, bottom to top, to want.
func CheckStack(t *testing.T, it *woflang.Interp, want []woflang.Value) {
	t.Helper()
	got := it.Stack()
	if len(got) != len(want) {
		t.Fatalf("stack depth = %d, want %d (stack: %v)", len(got), len(want), got)
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("stack[%d] = %v (kind %v), want %v (kind %v)",
				i, got[i], got[i].Kind, want[i], want[i].Kind)
		}
	}
}
