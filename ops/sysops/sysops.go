// Package sysops provides host-system ops: platform identification,
// environment access, and process information. Platform-specific words live
// in the GOOS-split files.
package sysops

import (
	"fmt"
	"os"
	"runtime"

	"github.com/wofl/woflang"
)

// Register adds the system ops to an interpreter.
func Register(it *woflang.Interp) {
	it.Register("sys.platform", func(it *woflang.Interp) error {
		it.Push(woflang.MakeString(runtime.GOOS))
		return nil
	})
	it.Register("sys.pid", func(it *woflang.Interp) error {
		it.Push(woflang.MakeInteger(int64(os.Getpid())))
		return nil
	})
	it.Register("sys.hostname", hostname)
	it.Register("sys.getenv", getenv)
	it.Register("sys.setenv", setenv)
	registerPlatform(it)
}

func hostname(it *woflang.Interp) error {
	h, err := os.Hostname()
	if err != nil {
		return fmt.Errorf("sys.hostname: %v", err)
	}
	it.Push(woflang.MakeString(h))
	return nil
}

// getenv pops a variable name and pushes its value, or the empty string
// when unset.
func getenv(it *woflang.Interp) error {
	name, err := it.PopString()
	if err != nil {
		return fmt.Errorf("sys.getenv: %w", err)
	}
	it.Push(woflang.MakeString(os.Getenv(name)))
	return nil
}

// setenv pops a value and then a variable name: NAME "value" sys.setenv.
func setenv(it *woflang.Interp) error {
	if !it.StackHas(2) {
		return fmt.Errorf("sys.setenv: %w", woflang.ErrStackUnderflow)
	}
	value, _ := it.PopString()
	name, _ := it.PopString()
	if err := os.Setenv(name, value); err != nil {
		return fmt.Errorf("sys.setenv: %v", err)
	}
	return nil
}
