// The chem addon demonstrates the older factory generation: a module
// exporting CreatePlugin, whose returned object registers the ops and lives
// on the interpreter afterwards. Build with
//
//	go build -buildmode=plugin ./addons/chem
package main

import (
	"fmt"

	"github.com/wofl/woflang"
)

// chemPlugin carries the element table. The interpreter owns it after
// CreatePlugin returns and closes it at teardown.
type chemPlugin struct {
	masses map[string]float64
}

// CreatePlugin is looked up and called by the interpreter at load time.
func CreatePlugin() woflang.Plugin {
	return &chemPlugin{
		masses: map[string]float64{
			"H":  1.008,
			"He": 4.0026,
			"C":  12.011,
			"N":  14.007,
			"O":  15.999,
			"Na": 22.990,
			"Cl": 35.45,
			"Fe": 55.845,
		},
	}
}

// RegisterOps installs the chemistry words.
func (p *chemPlugin) RegisterOps(it *woflang.Interp) {
	it.Register("chem.mass", func(it *woflang.Interp) error {
		elem, err := it.PopSymbol()
		if err != nil {
			return fmt.Errorf("chem.mass: %w", err)
		}
		m, ok := p.masses[elem]
		if !ok {
			return fmt.Errorf("chem.mass: unknown element %s: %w", elem, woflang.ErrTypeMismatch)
		}
		it.Push(woflang.MakeDouble(m).WithUnit(woflang.Unit{Name: "g", Scale: 0.001}))
		return nil
	})
}

// Close releases the element table when the interpreter tears down.
func (p *chemPlugin) Close() error {
	p.masses = nil
	return nil
}

// main is required to build as a plugin; it is never called.
func main() {}
