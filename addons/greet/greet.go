// The greet addon demonstrates the direct entry-point generation: a module
// exporting RegisterPlugin, built with
//
//	go build -buildmode=plugin ./addons/greet
package main

import (
	"fmt"

	"github.com/wofl/woflang"
)

// RegisterPlugin is looked up and called by the interpreter at load time.
func RegisterPlugin(it *woflang.Interp) {
	it.Register("greet", func(it *woflang.Interp) error {
		name, err := it.PopString()
		if err != nil {
			return fmt.Errorf("greet: %w", err)
		}
		it.Push(woflang.MakeString("hello, " + name))
		return nil
	})
}

// main is required to build as a plugin; it is never called.
func main() {}
