// Package mathops provides the scientific math vocabulary on top of the
// core arithmetic ops. Every op coerces with AsNumeric and pushes a Double;
// domain faults follow IEEE semantics (sqrt of a negative is NaN) rather
// than raising, matching the behavior of the core arithmetic.
package mathops

import (
	"fmt"
	"math"

	"github.com/wofl/woflang"
)

// Register adds the math ops to an interpreter.
func Register(it *woflang.Interp) {
	unary := func(name string, f func(float64) float64) {
		it.Register(name, func(it *woflang.Interp) error {
			x, err := it.PopDouble()
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			it.Push(woflang.MakeDouble(f(x)))
			return nil
		})
	}
	binary := func(name string, f func(a, b float64) float64) {
		it.Register(name, func(it *woflang.Interp) error {
			if !it.StackHas(2) {
				return fmt.Errorf("%s: %w", name, woflang.ErrStackUnderflow)
			}
			b, _ := it.PopDouble()
			a, _ := it.PopDouble()
			it.Push(woflang.MakeDouble(f(a, b)))
			return nil
		})
	}
	constant := func(name string, x float64) {
		it.Register(name, func(it *woflang.Interp) error {
			it.Push(woflang.MakeDouble(x))
			return nil
		})
	}

	unary("sqrt", math.Sqrt)
	unary("abs", math.Abs)
	unary("neg", func(x float64) float64 { return -x })
	unary("floor", math.Floor)
	unary("ceil", math.Ceil)
	unary("sin", math.Sin)
	unary("cos", math.Cos)
	unary("tan", math.Tan)
	unary("ln", math.Log)
	unary("log", math.Log10)
	unary("exp", math.Exp)
	binary("pow", math.Pow)
	binary("mod", math.Mod)
	constant("pi", math.Pi)
	constant("e", math.E)
}
