package woflang

import (
	"fmt"
	"io"
)

// Push appends a value to the top of the stack.
func (it *Interp) Push(v Value) {
	it.stack = append(it.stack, v)
}

// Pop removes and returns the top of the stack. It fails with
// ErrStackUnderflow when the stack is empty, leaving the stack untouched.
func (it *Interp) Pop() (Value, error) {
	if len(it.stack) == 0 {
		return Value{}, ErrStackUnderflow
	}
	v := it.stack[len(it.stack)-1]
	it.stack = it.stack[:len(it.stack)-1]
	return v, nil
}

// Peek returns the top of the stack without removing it. It fails with
// ErrStackUnderflow when the stack is empty.
func (it *Interp) Peek() (Value, error) {
	if len(it.stack) == 0 {
		return Value{}, ErrStackUnderflow
	}
	return it.stack[len(it.stack)-1], nil
}

// Depth returns the number of values on the stack.
func (it *Interp) Depth() int { return len(it.stack) }

// StackHas reports whether the stack holds at least n values.
func (it *Interp) StackHas(n int) bool { return len(it.stack) >= n }

// Stack returns the stack from bottom to top. The slice aliases the
// interpreter's storage and is invalidated by the next push or pop.
func (it *Interp) Stack() []Value { return it.stack }

// Clear drops every value from the stack.
func (it *Interp) Clear() { it.stack = it.stack[:0] }

// PopInteger pops and coerces to an integer, truncating toward zero. Like
// AsNumeric it is total: non-numeric values coerce to 0.
func (it *Interp) PopInteger() (int64, error) {
	v, err := it.Pop()
	if err != nil {
		return 0, err
	}
	if v.Kind == Integer {
		return v.Int(), nil
	}
	return int64(v.AsNumeric()), nil
}

// PopDouble pops and coerces to a float64. Non-numeric values coerce to 0.
func (it *Interp) PopDouble() (float64, error) {
	v, err := it.Pop()
	if err != nil {
		return 0, err
	}
	return v.AsNumeric(), nil
}

// PopString pops and returns text. String and Symbol values yield their
// payload; any other kind falls back to its display form.
func (it *Interp) PopString() (string, error) {
	v, err := it.Pop()
	if err != nil {
		return "", err
	}
	if v.Kind == String || v.Kind == Symbol {
		return v.Text(), nil
	}
	return v.String(), nil
}

// PopSymbol pops a Symbol's text. It fails with ErrTypeMismatch for any
// other kind; the popped value is not restored.
func (it *Interp) PopSymbol() (string, error) {
	v, err := it.Pop()
	if err != nil {
		return "", err
	}
	if v.Kind != Symbol {
		return "", fmt.Errorf("%w: have %v, want Symbol", ErrTypeMismatch, v.Kind)
	}
	return v.Text(), nil
}

// PrintStack writes the stack to w from top to bottom.
func (it *Interp) PrintStack(w io.Writer) {
	if len(it.stack) == 0 {
		fmt.Fprintln(w, "[stack is empty]")
		return
	}
	fmt.Fprintln(w, "Stack (top to bottom):")
	for i := len(it.stack) - 1; i >= 0; i-- {
		fmt.Fprintf(w, "  - %v\n", it.stack[i])
	}
}
