package truth

import (
	"fmt"
	"reflect"

	"github.com/gotruth/truth/internal/platform"
)

// Subject holds an actual value and offers the assertions that apply to
// every value. Specialized subjects embed it.
type Subject struct {
	m        *FailureMetadata
	actual   any
	stringer func() string
}

// NewSubject returns a plain subject for actual. Custom subjects embed the
// result to inherit its assertions and failure helpers.
func NewSubject(m *FailureMetadata, actual any) *Subject {
	return newSubject(m, actual, "value", nil)
}

func newSubject(m *FailureMetadata, actual any, label string, stringer func() string) *Subject {
	s := &Subject{actual: actual, stringer: stringer}
	s.m = m.forSubject(label, s.actualString)
	return s
}

// Actual returns the value under test.
func (s *Subject) Actual() any { return s.actual }

func (s *Subject) actualString() string {
	if s.stringer != nil {
		return s.stringer()
	}
	return platform.Format(s.actual)
}

// Check returns a builder for a subject derived from this one, such as a
// field or the result of a method. The access is described by format and
// args: Check("Len()") describes "values" as "values.Len()".
func (s *Subject) Check(format string, args ...any) *SubjectBuilder {
	return &SubjectBuilder{s.m.withStep(accessStep(fmt.Sprintf(format, args...)))}
}

// checkWrapped derives a subject reached by passing this one to a function,
// like len.
func (s *Subject) checkWrapped(template string) *SubjectBuilder {
	return &SubjectBuilder{s.m.withStep(wrapStep(template))}
}

// checkSame derives a subject for another view of the same value, with no
// extra description.
func (s *Subject) checkSame() *SubjectBuilder { return &SubjectBuilder{s.m} }

func (s *Subject) ignoreCheck() *SubjectBuilder { return &SubjectBuilder{s.m.ignoring()} }

// FailWithActual fails with facts followed by the actual value.
func (s *Subject) FailWithActual(facts ...Fact) {
	s.m.h.Helper()
	all := append(append([]Fact(nil), facts...), NewFact("but was", s.actualString()))
	s.m.fail(all, nil, nil)
}

// FailWithoutActual fails with exactly the given facts.
func (s *Subject) FailWithoutActual(facts ...Fact) {
	s.m.h.Helper()
	s.m.fail(facts, nil, nil)
}

func (s *Subject) failComparison(expected, actual string) {
	s.m.h.Helper()
	s.m.fail(comparisonFacts(expected, actual), &comparison{expected: expected, actual: actual}, nil)
}

// IsEqualTo fails unless the actual value equals expected.
//
// Integers of different types are compared by value, as are floats, where
// NaN equals NaN. Other values are compared field by field, including
// unexported fields.
func (s *Subject) IsEqualTo(expected any) {
	s.m.h.Helper()
	if valuesEqual(s.actual, expected) {
		return
	}
	s.failEqualityCheck(expected)
}

func (s *Subject) failEqualityCheck(expected any) {
	s.m.h.Helper()
	actual := s.actualString()
	want := platform.Format(expected)
	if a, ok := s.actual.(string); ok {
		if e, ok := expected.(string); ok {
			s.failComparison(e, a)
			return
		}
	}
	if actual == want {
		actualType, expectedType := platform.TypeName(s.actual), platform.TypeName(expected)
		if actualType != expectedType {
			s.FailWithoutActual(
				NewFact("expected", want), NewFact("an instance of", expectedType),
				NewFact("but was", actual), NewFact("an instance of", actualType))
			return
		}
		s.FailWithoutActual(
			NewFact("expected", want),
			NewFact("but was (non-equal value with same string representation)", actual))
		return
	}
	facts := []Fact{NewFact("expected", want), NewFact("but was", actual)}
	if d := structuralDiff(expected, s.actual); d != "" {
		facts = append(facts, NewFact("diff (-expected +actual)", d))
	}
	s.FailWithoutActual(facts...)
}

// IsNotEqualTo fails if the actual value equals unexpected.
func (s *Subject) IsNotEqualTo(unexpected any) {
	s.m.h.Helper()
	if !valuesEqual(s.actual, unexpected) {
		return
	}
	want := platform.Format(unexpected)
	if actual := s.actualString(); actual != want {
		s.FailWithoutActual(
			NewFact("expected not to be", want),
			NewFact("but was; string representation of actual value", actual))
		return
	}
	s.FailWithoutActual(NewFact("expected not to be", want))
}

// IsNil fails unless the actual value is nil or a nil pointer, map, slice,
// channel, function or interface.
func (s *Subject) IsNil() {
	s.m.h.Helper()
	if isNil(s.actual) {
		return
	}
	s.FailWithActual(NewFact("expected", "nil"))
}

func (s *Subject) IsNotNil() {
	s.m.h.Helper()
	if !isNil(s.actual) {
		return
	}
	s.FailWithoutActual(SimpleFact("expected not to be nil"))
}

// IsSameInstanceAs fails unless the actual value and expected refer to the
// same object. Values without identity, such as ints, are compared with ==.
func (s *Subject) IsSameInstanceAs(expected any) {
	s.m.h.Helper()
	if sameInstance(s.actual, expected) {
		return
	}
	actual := s.actualString()
	if actual == platform.Format(expected) {
		actual = "(different but equal instance)"
	}
	s.FailWithoutActual(NewFact("expected specific instance", expected), NewFact("but was", actual))
}

func (s *Subject) IsNotSameInstanceAs(unexpected any) {
	s.m.h.Helper()
	if !sameInstance(s.actual, unexpected) {
		return
	}
	s.FailWithActual(SimpleFact("expected not to be specific instance"))
}

// IsInstanceOf fails unless the actual value's dynamic type is the type of
// sample, or implements it when sample is a pointer to an interface:
//
//	truth.AssertThat(t, err).IsInstanceOf((*fs.PathError)(nil))
//	truth.AssertThat(t, w).IsInstanceOf((*io.Writer)(nil))
func (s *Subject) IsInstanceOf(sample any) {
	s.m.h.Helper()
	want := sampleType(sample)
	if s.actual == nil {
		s.FailWithoutActual(NewFact("expected instance of", want.String()), NewFact("but was", "nil"))
		return
	}
	if isInstance(s.actual, want) {
		return
	}
	s.FailWithoutActual(
		NewFact("expected instance of", want.String()),
		NewFact("but was instance of", platform.TypeName(s.actual)),
		NewFact("with value", s.actualString()))
}

func (s *Subject) IsNotInstanceOf(sample any) {
	s.m.h.Helper()
	want := sampleType(sample)
	if s.actual == nil || !isInstance(s.actual, want) {
		return
	}
	s.FailWithoutActual(
		NewFact("expected not to be an instance of", want.String()),
		NewFact("but was", s.actualString()))
}

// IsIn fails unless the actual value equals an element of collection, which
// must be a slice or array.
func (s *Subject) IsIn(collection any) {
	s.m.h.Helper()
	if indexOf(mustElements(collection), s.actual) >= 0 {
		return
	}
	s.FailWithActual(NewFact("expected any of", collection))
}

func (s *Subject) IsAnyOf(first, second any, rest ...any) {
	s.m.h.Helper()
	s.IsIn(append([]any{first, second}, rest...))
}

// IsNotIn fails if the actual value equals an element of collection.
func (s *Subject) IsNotIn(collection any) {
	s.m.h.Helper()
	if indexOf(mustElements(collection), s.actual) < 0 {
		return
	}
	s.FailWithActual(NewFact("expected not to be any of", collection))
}

func (s *Subject) IsNoneOf(first, second any, rest ...any) {
	s.m.h.Helper()
	s.IsNotIn(append([]any{first, second}, rest...))
}

func sampleType(sample any) reflect.Type {
	t := reflect.TypeOf(sample)
	if t == nil {
		panic("truth: IsInstanceOf needs a typed sample, such as (*T)(nil)")
	}
	if t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Interface {
		return t.Elem()
	}
	return t
}

func isInstance(v any, t reflect.Type) bool {
	vt := reflect.TypeOf(v)
	if t.Kind() == reflect.Interface {
		return vt.Implements(t)
	}
	return vt == t
}
