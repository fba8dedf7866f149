package woflang

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
)

// An Op is a named operation. It runs with full read/write access to the
// interpreter's stack; stack effects are its only sanctioned interaction
// with the rest of the system. An error returned from an Op aborts the rest
// of the line being dispatched.
type Op func(*Interp) error

// Interp is a woflang interpreter. It owns the operand stack, the operation
// registry, and every loaded plugin, and it is the single owner of all
// mutable state: independent Interp instances never share anything, so any
// number may coexist in one process. An Interp is not safe for concurrent
// use; execution is synchronous and single-threaded.
type Interp struct {
	// Out receives output from ops that print, such as .s. It defaults to
	// standard output.
	Out io.Writer
	// StrictPlugins makes LoadPluginsFromDir fail on the first bad module
	// instead of skipping it.
	StrictPlugins bool

	stack      []Value
	ops        map[string]Op
	plugins    []pluginHandle
	pluginObjs []Plugin
	closed     bool
}

// New creates an interpreter with the core arithmetic ops and the .s stack
// printer registered. All further vocabulary comes from Register calls,
// whether made by builtin op packages or by loaded plugins; the two are
// indistinguishable to the dispatcher.
func New() *Interp {
	it := &Interp{
		Out: os.Stdout,
		ops: make(map[string]Op),
	}
	it.registerCoreOps()
	return it
}

// Register adds or replaces an operation. Re-registering a name silently
// replaces the prior op, so the last loaded plugin wins.
func (it *Interp) Register(name string, op Op) {
	it.ops[name] = op
}

// Lookup returns the op registered under name, if any.
func (it *Interp) Lookup(name string) (Op, bool) {
	op, ok := it.ops[name]
	return op, ok
}

// OpNames returns the names of all registered operations, sorted for
// stable display. Registration order is not preserved.
func (it *Interp) OpNames() []string {
	names := make([]string, 0, len(it.ops))
	for name := range it.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DispatchToken classifies a single token and performs its effect. The
// checks run in a fixed order: quoted string literal, then integer literal,
// then floating literal, then registry lookup, and finally the bare-symbol
// fallback. A token that parses as a number therefore shadows any op
// registered under the same spelling, and the floating check accepts
// everything strconv.ParseFloat does, including inf, nan, and hex floats.
func (it *Interp) DispatchToken(token string) error {
	if isStringLiteral(token) {
		it.Push(MakeString(token[1 : len(token)-1]))
		return nil
	}
	if isIntegerLiteral(token) {
		if i, err := strconv.ParseInt(token, 10, 64); err == nil {
			it.Push(MakeInteger(i))
			return nil
		}
		// Out of int64 range; the digits still parse as a Double below.
	}
	if d, err := strconv.ParseFloat(token, 64); err == nil {
		it.Push(MakeDouble(d))
		return nil
	}
	if op, ok := it.ops[token]; ok {
		return op(it)
	}
	it.Push(MakeSymbol(token))
	return nil
}

// ExecLine tokenizes a line and dispatches every token left to right. The
// first token to fail aborts the rest of the line; the stack keeps whatever
// state the completed tokens left behind.
func (it *Interp) ExecLine(line string) error {
	for _, token := range Tokenize(line) {
		if err := it.DispatchToken(token); err != nil {
			return err
		}
	}
	return nil
}

// ExecScript runs a file through ExecLine a line at a time, in file order.
// It fails with ErrScriptUnreadable if the file cannot be read, and stops at
// the first line whose dispatch fails, reporting the line number.
func (it *Interp) ExecScript(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrScriptUnreadable, err)
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	n := 0
	for sc.Scan() {
		n++
		if err := it.ExecLine(sc.Text()); err != nil {
			return fmt.Errorf("%s:%d: %w", path, n, err)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrScriptUnreadable, err)
	}
	return nil
}

// registerCoreOps installs the arithmetic vocabulary. The numeric ops pop
// two values, coerce with AsNumeric, and push a Double; + falls back to
// concatenating display forms when either operand is non-numeric.
func (it *Interp) registerCoreOps() {
	it.Register("+", func(it *Interp) error {
		a, b, err := popTwo(it, "+")
		if err != nil {
			return err
		}
		if a.IsNumeric() && b.IsNumeric() {
			it.Push(MakeDouble(a.AsNumeric() + b.AsNumeric()))
		} else {
			it.Push(MakeString(a.String() + b.String()))
		}
		return nil
	})
	it.Register("-", func(it *Interp) error {
		a, b, err := popTwo(it, "-")
		if err != nil {
			return err
		}
		it.Push(MakeDouble(a.AsNumeric() - b.AsNumeric()))
		return nil
	})
	it.Register("*", func(it *Interp) error {
		a, b, err := popTwo(it, "*")
		if err != nil {
			return err
		}
		it.Push(MakeDouble(a.AsNumeric() * b.AsNumeric()))
		return nil
	})
	it.Register("/", func(it *Interp) error {
		// Both operands come off the stack before the divisor is checked,
		// so they are lost when the division fails.
		a, b, err := popTwo(it, "/")
		if err != nil {
			return err
		}
		denom := b.AsNumeric()
		if denom == 0 {
			return fmt.Errorf("/: %w", ErrDivisionByZero)
		}
		it.Push(MakeDouble(a.AsNumeric() / denom))
		return nil
	})
	it.Register(".s", func(it *Interp) error {
		it.PrintStack(it.Out)
		return nil
	})
}

// popTwo pops b then a for a binary op, failing without touching the stack
// when fewer than two values are present.
func popTwo(it *Interp, name string) (a, b Value, err error) {
	if !it.StackHas(2) {
		return Value{}, Value{}, fmt.Errorf("%s: %w", name, ErrStackUnderflow)
	}
	b, _ = it.Pop()
	a, _ = it.Pop()
	return a, b, nil
}
