package starlarktruth

import (
	"regexp"

	"go.starlark.net/starlark"

	"github.com/gotruth/truth"
)

func (t *T) str(arg starlark.Value, assert func(s *truth.StringSubject, arg string)) (starlark.Value, error) {
	actual, ok := t.actual.(starlark.String)
	if !ok {
		return nil, errUnhandled
	}
	a, ok := arg.(starlark.String)
	if !ok {
		return nil, errUnhandled
	}
	return t.run(func(b *truth.SubjectBuilder) { assert(b.ThatString(actual.GoString()), a.GoString()) })
}

// regex is like str for arguments that must compile as a regular expression.
func (t *T) regex(arg starlark.Value, assert func(s *truth.StringSubject, regex string)) (starlark.Value, error) {
	if re, ok := arg.(starlark.String); ok {
		if _, err := regexp.Compile(re.GoString()); err != nil {
			return nil, newInvalidAssertion(err.Error())
		}
	}
	return t.str(arg, assert)
}

func hasLength(t *T, args ...starlark.Value) (starlark.Value, error) {
	actual, ok := t.actual.(starlark.String)
	if !ok {
		return nil, errUnhandled
	}
	n, ok := args[0].(starlark.Int)
	if !ok {
		return nil, errUnhandled
	}
	length, ok := n.Int64()
	if !ok || length < 0 {
		return nil, errMustBeNonNegative("length", n)
	}
	return t.run(func(b *truth.SubjectBuilder) { b.ThatString(actual.GoString()).HasLength(int(length)) })
}

func startsWith(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.str(args[0], (*truth.StringSubject).StartsWith)
}

func endsWith(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.str(args[0], (*truth.StringSubject).EndsWith)
}

// Regular expressions use Go's RE2 syntax. matches and does_not_match
// consider the whole string.

func matches(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.regex(args[0], (*truth.StringSubject).Matches)
}

func doesNotMatch(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.regex(args[0], (*truth.StringSubject).DoesNotMatch)
}

func containsMatch(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.regex(args[0], (*truth.StringSubject).ContainsMatch)
}

func doesNotContainMatch(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.regex(args[0], (*truth.StringSubject).DoesNotContainMatch)
}
