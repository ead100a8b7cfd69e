package runtime

import (
	"errors"
	"fmt"

	"github.com/ampell-lang/ampell/decl"
)

// Sentinel errors for every runtime failure kind. Evaluation wraps them in
// *RuntimeError so callers can match with errors.Is while still getting the
// offending node's position.
var (
	ErrStackUnderflow    = errors.New("stack underflow")
	ErrUndefinedVariable = errors.New("undefined variable")
	ErrUndefinedFunction = errors.New("undefined function")
	ErrTypeMismatch      = errors.New("type mismatch")
	ErrDivisionByZero    = errors.New("division by zero")
	ErrRecursionLimit    = errors.New("recursion limit exceeded")
)

// RuntimeError is the single structured failure surfaced to the embedding
// caller. None of these are recoverable inside the language: the first one
// aborts the whole run, unwinding all pending call frames.
type RuntimeError struct {
	Kind error  // one of the sentinel errors above
	Msg  string // operation-specific detail
	Pos  int    // byte offset of the offending node, -1 if unknown
}

func (e *RuntimeError) Error() string {
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), e.Msg)
}

func (e *RuntimeError) Unwrap() error {
	return e.Kind
}

// errf builds a RuntimeError positioned at the given node.
func errf(kind error, node decl.Node, format string, args ...any) *RuntimeError {
	pos := -1
	if node != nil {
		pos = node.Pos()
	}
	return &RuntimeError{Kind: kind, Msg: fmt.Sprintf(format, args...), Pos: pos}
}
