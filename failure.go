package truth

import (
	"fmt"
	"runtime"
	"strings"
)

// Failure is the error produced by a failed assertion. It carries the
// user-supplied messages and the ordered facts describing the failure.
type Failure struct {
	Messages []string
	Facts    []Fact

	comparison       bool
	expected, actual string
	cause            error
	stack            []runtime.Frame
}

var _ error = (*Failure)(nil)

func (f *Failure) Error() string { return MakeMessage(f.Messages, f.Facts) }

// Unwrap returns the error, if any, that caused the failure.
func (f *Failure) Unwrap() error { return f.cause }

// Comparison returns the expected and actual strings of a failed string
// comparison. ok is false for other kinds of failures.
func (f *Failure) Comparison() (expected, actual string, ok bool) {
	return f.expected, f.actual, f.comparison
}

// FactKeys returns the keys of the failure's facts, in order.
func (f *Failure) FactKeys() []string {
	keys := make([]string, len(f.Facts))
	for i, fact := range f.Facts {
		keys[i] = fact.Key
	}
	return keys
}

// FactValue returns the value of the first fact with the given key.
func (f *Failure) FactValue(key string) (string, bool) {
	for _, fact := range f.Facts {
		if fact.Key == key && fact.hasValue {
			return fact.Value, true
		}
	}
	return "", false
}

// Stack returns the user frames active when the failure was created.
func (f *Failure) Stack() []runtime.Frame { return f.stack }

// Location returns "file:line" of the innermost user frame, or "" if
// the stack is unknown.
func (f *Failure) Location() string {
	if len(f.stack) == 0 {
		return ""
	}
	return fmt.Sprintf("%s:%d", f.stack[0].File, f.stack[0].Line)
}

// TestingT is the subset of testing.TB used to report failures.
type TestingT interface {
	Helper()
	Errorf(format string, args ...any)
	FailNow()
}

// A FailureStrategy decides what happens to a failure: report it to a test,
// record it, or ignore it.
type FailureStrategy interface {
	Fail(f *Failure)
}

// FailureStrategyFunc adapts a function to a FailureStrategy.
type FailureStrategyFunc func(f *Failure)

func (fn FailureStrategyFunc) Fail(f *Failure) { fn(f) }

type helper interface{ Helper() }

type nopHelper struct{}

func (nopHelper) Helper() {}

// testStrategy reports failures to a test, optionally stopping it.
type testStrategy struct {
	t     TestingT
	fatal bool
}

func (s testStrategy) Fail(f *Failure) {
	s.t.Helper()
	s.t.Errorf("\n%s", f.Error())
	if s.fatal {
		s.t.FailNow()
	}
}

type ignoreStrategy struct{}

func (ignoreStrategy) Fail(*Failure) {}

// captureStrategy records failures instead of reporting them.
type captureStrategy struct {
	failures []*Failure
}

func (s *captureStrategy) Fail(f *Failure) { s.failures = append(s.failures, f) }

func (s *captureStrategy) summary() string {
	msgs := make([]string, len(s.failures))
	for i, f := range s.failures {
		msgs[i] = f.Error()
	}
	return strings.Join(msgs, "\n\n")
}
