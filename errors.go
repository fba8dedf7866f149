package woflang

import "errors"

// Interpreter fault conditions. Operations and the plugin loader wrap these
// with context using fmt.Errorf and %w; callers match them with errors.Is.
// An error raised while dispatching a token aborts the rest of that line and
// propagates to the caller, which recovers at line granularity.
var (
	// ErrStackUnderflow reports an operation that required more values than
	// the stack held.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrTypeMismatch reports a value whose kind did not satisfy an
	// operation's precondition.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrDivisionByZero reports an arithmetic division by a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrPluginLoadFailed reports a dynamic module that could not be opened.
	ErrPluginLoadFailed = errors.New("plugin load failed")
	// ErrPluginEntryPoint reports a module that opened but exports neither
	// RegisterPlugin nor CreatePlugin.
	ErrPluginEntryPoint = errors.New("plugin entry point missing")
	// ErrScriptUnreadable reports a script file that could not be read.
	ErrScriptUnreadable = errors.New("script unreadable")
)
