package truth

import (
	"github.com/gotruth/truth/internal/platform"
)

// Optional is a value that may be absent. The zero Optional is empty.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] { return Optional[T]{value: v, present: true} }

// None returns an empty Optional.
func None[T any]() Optional[T] { return Optional[T]{} }

// OptionalOf adapts the comma-ok idiom: OptionalOf(m[k]) is not valid Go,
// but v, ok := m[k]; OptionalOf(v, ok) is.
func OptionalOf[T any](v T, ok bool) Optional[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPointer returns an Optional holding *p, or an empty one if p is nil.
func FromPointer[T any](p *T) Optional[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) { return o.value, o.present }

func (o Optional[T]) IsPresent() bool { return o.present }

func (o Optional[T]) String() string {
	if !o.present {
		return "Optional.empty"
	}
	return "Optional[" + platform.Format(o.value) + "]"
}

// OptionalSubject asserts on an Optional.
type OptionalSubject[T any] struct {
	*Subject
	actual Optional[T]
}

// ThatOptional returns a subject for an Optional.
func ThatOptional[T any](b *SubjectBuilder, actual Optional[T]) *OptionalSubject[T] {
	return &OptionalSubject[T]{newSubject(b.m, actual, "optional", actual.String), actual}
}

func (s *OptionalSubject[T]) IsPresent() {
	s.m.h.Helper()
	if !s.actual.present {
		s.FailWithoutActual(SimpleFact("expected to be present"))
	}
}

func (s *OptionalSubject[T]) IsEmpty() {
	s.m.h.Helper()
	if s.actual.present {
		s.FailWithoutActual(
			SimpleFact("expected to be empty"),
			NewFact("but was present with value", s.actual.value))
	}
}

// HasValue fails unless the Optional holds a value equal to expected.
func (s *OptionalSubject[T]) HasValue(expected any) {
	s.m.h.Helper()
	if !s.actual.present {
		s.FailWithoutActual(NewFact("expected to have value", expected), SimpleFact("but was absent"))
		return
	}
	s.Check("Value()").That(s.actual.value).IsEqualTo(expected)
}
