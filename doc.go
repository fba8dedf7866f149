/*
Package woflang implements the woflang stack language.

Woflang is a dynamically typed, stack-based scripting language in the
concatenative tradition. A program is a sequence of whitespace-separated
tokens; each token either pushes a value onto the operand stack or invokes a
named operation that pops and pushes values. There is no other syntax: no
AST, no bytecode, no control-flow keywords in the core.

	wof> 3 4 +
	wof> .s
	Stack (top to bottom):
	  - 7

Values are tagged: an Integer, a Double, a String, or a Symbol, plus an
Unknown default that normal execution never produces. Literal tokens map
directly onto the first three kinds; a token that is neither a literal nor a
registered operation is pushed as a Symbol carrying its own spelling, which
is how ops like unit conversion receive their arguments:

	wof> 5 km m unit.convert

The classification order is fixed: string literal, integer literal, floating
literal, registered operation, bare symbol. Numeric literals therefore always
shadow operations with numeric names.

The interpreter's vocabulary is open. Register attaches a new operation to a
live interpreter, and the packages under ops/ provide builtin sets (stack
shuffling, math, strings, dates, system access, units) that a host program
wires in as needed. Independently compiled modules built with
-buildmode=plugin extend the vocabulary the same way at runtime; see
LoadPlugin for the two supported entry-point generations.

Errors are values: every fault an operation can raise wraps one of the
sentinel errors in this package (ErrStackUnderflow, ErrDivisionByZero, and
so on) and aborts only the rest of the current line. The REPL and script
runner print the diagnostic and continue, so a session survives its
mistakes.
*/
package woflang
