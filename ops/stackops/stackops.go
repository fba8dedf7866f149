// Package stackops provides the stack-shuffling vocabulary: the words that
// rearrange or inspect the operand stack without computing anything.
package stackops

import (
	"fmt"

	"github.com/wofl/woflang"
)

// Register adds the stack ops to an interpreter.
func Register(it *woflang.Interp) {
	it.Register("dup", dup)
	it.Register("drop", drop)
	it.Register("swap", swap)
	it.Register("over", over)
	it.Register("rot", rot)
	it.Register("depth", depth)
	it.Register("clear", clear)
	it.Register("print", print)
}

// dup duplicates the top of the stack.
func dup(it *woflang.Interp) error {
	v, err := it.Peek()
	if err != nil {
		return fmt.Errorf("dup: %w", err)
	}
	it.Push(v)
	return nil
}

// drop discards the top of the stack.
func drop(it *woflang.Interp) error {
	if _, err := it.Pop(); err != nil {
		return fmt.Errorf("drop: %w", err)
	}
	return nil
}

// swap exchanges the top two values.
func swap(it *woflang.Interp) error {
	if !it.StackHas(2) {
		return fmt.Errorf("swap: %w", woflang.ErrStackUnderflow)
	}
	b, _ := it.Pop()
	a, _ := it.Pop()
	it.Push(b)
	it.Push(a)
	return nil
}

// over copies the second value to the top: a b -- a b a.
func over(it *woflang.Interp) error {
	if !it.StackHas(2) {
		return fmt.Errorf("over: %w", woflang.ErrStackUnderflow)
	}
	s := it.Stack()
	it.Push(s[len(s)-2])
	return nil
}

// rot rotates the third value to the top: a b c -- b c a.
func rot(it *woflang.Interp) error {
	if !it.StackHas(3) {
		return fmt.Errorf("rot: %w", woflang.ErrStackUnderflow)
	}
	c, _ := it.Pop()
	b, _ := it.Pop()
	a, _ := it.Pop()
	it.Push(b)
	it.Push(c)
	it.Push(a)
	return nil
}

// depth pushes the stack depth as an Integer, not counting itself.
func depth(it *woflang.Interp) error {
	it.Push(woflang.MakeInteger(int64(it.Depth())))
	return nil
}

// clear empties the stack.
func clear(it *woflang.Interp) error {
	it.Clear()
	return nil
}

// print pops the top value and writes its display form.
func print(it *woflang.Interp) error {
	v, err := it.Pop()
	if err != nil {
		return fmt.Errorf("print: %w", err)
	}
	fmt.Fprintln(it.Out, v)
	return nil
}
