// Package unitops provides the unit-of-measure vocabulary over the Unit
// metadata on stack values. Unit names arrive as bare Symbols, so the usual
// shape is:
//
//	5 km unit.attach
//	m unit.convert
//
// which leaves Double 5000 tagged with unit m.
package unitops

import (
	"fmt"

	"github.com/wofl/woflang"
)

// dimension groups the convertible units; Scale on the attached Unit is the
// factor to the dimension's base unit.
type unitDef struct {
	dim   string
	scale float64
}

var units = map[string]unitDef{
	"m":   {"length", 1},
	"km":  {"length", 1000},
	"cm":  {"length", 0.01},
	"mm":  {"length", 0.001},
	"kg":  {"mass", 1},
	"g":   {"mass", 0.001},
	"mg":  {"mass", 1e-6},
	"s":   {"time", 1},
	"min": {"time", 60},
	"h":   {"time", 3600},
	"l":   {"volume", 1},
	"ml":  {"volume", 0.001},
	"mol": {"amount", 1},
}

// Register adds the unit ops to an interpreter.
func Register(it *woflang.Interp) {
	it.Register("unit.attach", attach)
	it.Register("unit.strip", strip)
	it.Register("unit.name", name)
	it.Register("unit.convert", convert)
}

// attach pops a unit Symbol and a value and pushes the value tagged with
// that unit.
func attach(it *woflang.Interp) error {
	uname, err := it.PopSymbol()
	if err != nil {
		return fmt.Errorf("unit.attach: %w", err)
	}
	def, ok := units[uname]
	if !ok {
		return fmt.Errorf("unit.attach: unknown unit %s: %w", uname, woflang.ErrTypeMismatch)
	}
	v, err := it.Pop()
	if err != nil {
		return fmt.Errorf("unit.attach: %w", err)
	}
	it.Push(v.WithUnit(woflang.Unit{Name: uname, Scale: def.scale}))
	return nil
}

// strip pops a value and pushes it without its unit tag.
func strip(it *woflang.Interp) error {
	v, err := it.Pop()
	if err != nil {
		return fmt.Errorf("unit.strip: %w", err)
	}
	v.Unit = nil
	it.Push(v)
	return nil
}

// name pops a tagged value and pushes its unit name as a Symbol.
func name(it *woflang.Interp) error {
	v, err := it.Pop()
	if err != nil {
		return fmt.Errorf("unit.name: %w", err)
	}
	if v.Unit == nil {
		return fmt.Errorf("unit.name: value has no unit: %w", woflang.ErrTypeMismatch)
	}
	it.Push(woflang.MakeSymbol(v.Unit.Name))
	return nil
}

// convert pops a target unit Symbol and a tagged value and pushes a Double
// in the target unit. Both units must belong to the same dimension.
func convert(it *woflang.Interp) error {
	target, err := it.PopSymbol()
	if err != nil {
		return fmt.Errorf("unit.convert: %w", err)
	}
	tdef, ok := units[target]
	if !ok {
		return fmt.Errorf("unit.convert: unknown unit %s: %w", target, woflang.ErrTypeMismatch)
	}
	v, err := it.Pop()
	if err != nil {
		return fmt.Errorf("unit.convert: %w", err)
	}
	if v.Unit == nil {
		return fmt.Errorf("unit.convert: value has no unit: %w", woflang.ErrTypeMismatch)
	}
	sdef, ok := units[v.Unit.Name]
	if !ok {
		return fmt.Errorf("unit.convert: unknown source unit %s: %w", v.Unit.Name, woflang.ErrTypeMismatch)
	}
	if sdef.dim != tdef.dim {
		return fmt.Errorf("unit.convert: cannot convert %s to %s: %w", v.Unit.Name, target, woflang.ErrTypeMismatch)
	}
	out := v.AsNumeric() * v.Unit.Scale / tdef.scale
	it.Push(woflang.MakeDouble(out).WithUnit(woflang.Unit{Name: target, Scale: tdef.scale}))
	return nil
}
