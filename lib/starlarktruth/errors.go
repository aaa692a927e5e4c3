package starlarktruth

import (
	"fmt"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/gotruth/truth"
)

// AssertionError is a failed assertion. Pos is the assert.that(...) call
// the assertion was made on, which for a stored subject may be far from
// the failing line.
type AssertionError struct {
	Pos     syntax.Position
	Failure *truth.Failure
}

var _ error = (*AssertionError)(nil)

func (e *AssertionError) Error() string { return e.Failure.Error() }
func (e *AssertionError) Unwrap() error { return e.Failure }

// InvalidAssertion signifies an invalid assertion was attempted
// such as comparing with None.
type InvalidAssertion string

var _ error = InvalidAssertion("")

func newInvalidAssertion(prop string) InvalidAssertion { return InvalidAssertion(prop) }
func (e InvalidAssertion) Error() string               { return string(e) }

// unhandled internal & public errors

const errUnhandled = unhandledError(0)

type unhandledError int

var _ error = errUnhandled

func (e unhandledError) Error() string { return "unhandled" }

// UnhandledError appears when an operation on an incompatible type is attempted.
type UnhandledError struct {
	name   string
	actual starlark.Value
	args   starlark.Tuple
}

var _ error = (*UnhandledError)(nil)

func (t *T) unhandled(name string, args ...starlark.Value) *UnhandledError {
	return &UnhandledError{
		name:   name,
		actual: t.actual,
		args:   args,
	}
}

func (e *UnhandledError) Error() string {
	var b strings.Builder
	b.WriteString("Invalid assertion .")
	b.WriteString(e.name)
	b.WriteByte('(')
	for i, arg := range e.args {
		if i != 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.String())
	}
	b.WriteString(") on value of type ")
	b.WriteString(e.actual.Type())
	return b.String()
}

// UnresolvedError describes that an `assert.that(actual)` was called but never
// any of its assertion methods. `.named(name)`, `.is_within(tolerance)` and
// `.is_not_within(tolerance)` do not count as they each still require one.
type UnresolvedError string

var _ error = UnresolvedError("")

func (e UnresolvedError) Error() string {
	return fmt.Sprintf("%s: %s.that(...) is missing an assertion", string(e), Default)
}

var errNoneComparison = newInvalidAssertion("It is illegal to compare using None")

func errMustBeNonNegative(what string, v starlark.Value) InvalidAssertion {
	return newInvalidAssertion(fmt.Sprintf("%s must be a non-negative integer, got %s", what, v))
}
