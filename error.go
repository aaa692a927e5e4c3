package truth

import (
	"errors"
	"reflect"
)

// ErrorSubject asserts on errors and their chains.
type ErrorSubject struct {
	*Subject
	actual error
}

// HasMessageThat returns a subject for the error's message.
func (s *ErrorSubject) HasMessageThat() *StringSubject {
	s.m.h.Helper()
	if s.actual == nil {
		s.FailWithActual(SimpleFact("expected an error"))
		return s.ignoreCheck().ThatString("")
	}
	return s.Check("Error()").ThatString(s.actual.Error())
}

// HasCauseThat returns a subject for the error wrapped by this one.
func (s *ErrorSubject) HasCauseThat() *ErrorSubject {
	s.m.h.Helper()
	if s.actual == nil {
		s.FailWithActual(SimpleFact("expected an error"))
		return s.ignoreCheck().ThatError(nil)
	}
	cause := errors.Unwrap(s.actual)
	if cause == nil {
		s.FailWithActual(SimpleFact("expected to have a cause"))
		return s.ignoreCheck().ThatError(nil)
	}
	return s.checkWrapped("errors.Unwrap(%s)").ThatError(cause)
}

// Is fails unless target is in the error's chain, as errors.Is reports.
func (s *ErrorSubject) Is(target error) {
	s.m.h.Helper()
	if !errors.Is(s.actual, target) {
		s.FailWithActual(NewFact("expected error chain to contain", target))
	}
}

func (s *ErrorSubject) IsNot(target error) {
	s.m.h.Helper()
	if errors.Is(s.actual, target) {
		s.FailWithActual(NewFact("expected error chain not to contain", target))
	}
}

// As fails unless the error's chain has an error assignable to the value
// target points to, which is then set as errors.As does. It panics if
// target is not a non-nil pointer.
func (s *ErrorSubject) As(target any) {
	s.m.h.Helper()
	if !errors.As(s.actual, target) {
		s.FailWithActual(NewFact("expected error chain to contain an error of type",
			reflect.TypeOf(target).Elem().String()))
	}
}
