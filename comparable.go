package truth

import (
	"cmp"
	"fmt"
)

// ComparableSubject adds ordering assertions for values of an ordered type.
// Floats are ordered with NaN below every other value.
type ComparableSubject[T cmp.Ordered] struct {
	*Subject
	actual T
}

func newComparable[T cmp.Ordered](m *FailureMetadata, actual T, label string, stringer func() string) *ComparableSubject[T] {
	return &ComparableSubject[T]{newSubject(m, actual, label, stringer), actual}
}

func (s *ComparableSubject[T]) IsAtLeast(other T) {
	s.m.h.Helper()
	if cmp.Compare(s.actual, other) < 0 {
		s.FailWithActual(NewFact("expected to be at least", other))
	}
}

func (s *ComparableSubject[T]) IsAtMost(other T) {
	s.m.h.Helper()
	if cmp.Compare(s.actual, other) > 0 {
		s.FailWithActual(NewFact("expected to be at most", other))
	}
}

func (s *ComparableSubject[T]) IsGreaterThan(other T) {
	s.m.h.Helper()
	if cmp.Compare(s.actual, other) <= 0 {
		s.FailWithActual(NewFact("expected to be greater than", other))
	}
}

func (s *ComparableSubject[T]) IsLessThan(other T) {
	s.m.h.Helper()
	if cmp.Compare(s.actual, other) >= 0 {
		s.FailWithActual(NewFact("expected to be less than", other))
	}
}

// IsInRange fails unless lower <= actual <= upper.
func (s *ComparableSubject[T]) IsInRange(lower, upper T) {
	s.m.h.Helper()
	if cmp.Compare(s.actual, lower) < 0 || cmp.Compare(s.actual, upper) > 0 {
		s.FailWithActual(NewFact("expected to be in range", formatRange(lower, upper)))
	}
}

func (s *ComparableSubject[T]) IsNotInRange(lower, upper T) {
	s.m.h.Helper()
	if cmp.Compare(s.actual, lower) >= 0 && cmp.Compare(s.actual, upper) <= 0 {
		s.FailWithActual(NewFact("expected not to be in range", formatRange(lower, upper)))
	}
}

// IsEquivalentAccordingToCompareTo fails unless actual and expected are
// neither less nor greater than each other.
func (s *ComparableSubject[T]) IsEquivalentAccordingToCompareTo(expected T) {
	s.m.h.Helper()
	if cmp.Compare(s.actual, expected) != 0 {
		s.FailWithActual(NewFact("expected value that sorts equal to", expected))
	}
}

func formatRange[T any](lower, upper T) string {
	return fmt.Sprintf("[%v, %v]", lower, upper)
}

// BoolSubject asserts on bool values.
type BoolSubject struct {
	*Subject
	actual bool
}

func (s *BoolSubject) IsTrue() {
	s.m.h.Helper()
	if !s.actual {
		s.FailWithoutActual(SimpleFact("expected to be true"))
	}
}

func (s *BoolSubject) IsFalse() {
	s.m.h.Helper()
	if s.actual {
		s.FailWithoutActual(SimpleFact("expected to be false"))
	}
}
