package truth

import (
	"iter"
	"slices"

	"github.com/gotruth/truth/internal/platform"
)

// StreamSubject asserts on the values produced by an iterator. The iterator
// is drained once when the subject is created, so single-use sequences can
// be checked with several assertions.
type StreamSubject[T any] struct {
	*Subject
	list []T
	seq  iter.Seq[T]
}

// ThatSeq returns a subject for the values of seq. A nil seq is treated as
// a nil actual value.
func ThatSeq[T any](b *SubjectBuilder, seq iter.Seq[T]) *StreamSubject[T] {
	s := &StreamSubject[T]{seq: seq}
	if seq != nil {
		s.list = slices.Collect(seq)
		if s.list == nil {
			s.list = []T{}
		}
	}
	s.Subject = newSubject(b.m, seq, "seq", s.listString)
	return s
}

func (s *StreamSubject[T]) listString() string {
	if s.seq == nil {
		return "nil"
	}
	return platform.Format(s.list)
}

// elements views the drained values as a slice subject with the same
// description as the stream.
func (s *StreamSubject[T]) elements() *IterableSubject {
	var actual any
	if s.seq != nil {
		actual = s.list
	}
	is := s.checkSame().ThatSlice(actual)
	is.stringer = s.listString
	return is
}

// IsEqualTo compares the stream by identity, as iterators have no useful
// notion of equality. Use ContainsExactly to compare the values.
func (s *StreamSubject[T]) IsEqualTo(expected any) {
	s.m.h.Helper()
	if sameInstance(s.actual, expected) {
		return
	}
	s.FailWithoutActual(
		NewFact("expected", expected),
		NewFact("but was", s.actualString()),
		SimpleFact("warning: iterators are compared by identity; did you mean ContainsExactly?"))
}

func (s *StreamSubject[T]) IsNotEqualTo(unexpected any) {
	s.m.h.Helper()
	if sameInstance(s.actual, unexpected) {
		s.FailWithoutActual(NewFact("expected not to be", unexpected))
	}
}

func (s *StreamSubject[T]) IsEmpty() {
	s.m.h.Helper()
	s.elements().IsEmpty()
}

func (s *StreamSubject[T]) IsNotEmpty() {
	s.m.h.Helper()
	s.elements().IsNotEmpty()
}

func (s *StreamSubject[T]) HasSize(n int) {
	s.m.h.Helper()
	s.elements().HasSize(n)
}

func (s *StreamSubject[T]) Contains(element any) {
	s.m.h.Helper()
	s.elements().Contains(element)
}

func (s *StreamSubject[T]) DoesNotContain(element any) {
	s.m.h.Helper()
	s.elements().DoesNotContain(element)
}

func (s *StreamSubject[T]) ContainsNoDuplicates() {
	s.m.h.Helper()
	s.elements().ContainsNoDuplicates()
}

func (s *StreamSubject[T]) ContainsAnyOf(first, second any, rest ...any) {
	s.m.h.Helper()
	s.elements().ContainsAnyOf(first, second, rest...)
}

func (s *StreamSubject[T]) ContainsAnyIn(expected any) {
	s.m.h.Helper()
	s.elements().ContainsAnyIn(expected)
}

func (s *StreamSubject[T]) ContainsAtLeast(first, second any, rest ...any) Ordered {
	s.m.h.Helper()
	return s.elements().ContainsAtLeast(first, second, rest...)
}

func (s *StreamSubject[T]) ContainsAtLeastElementsIn(expected any) Ordered {
	s.m.h.Helper()
	return s.elements().ContainsAtLeastElementsIn(expected)
}

func (s *StreamSubject[T]) ContainsExactly(expected ...any) Ordered {
	s.m.h.Helper()
	return s.elements().ContainsExactly(expected...)
}

func (s *StreamSubject[T]) ContainsExactlyElementsIn(expected any) Ordered {
	s.m.h.Helper()
	return s.elements().ContainsExactlyElementsIn(expected)
}

func (s *StreamSubject[T]) ContainsNoneOf(first, second any, rest ...any) {
	s.m.h.Helper()
	s.elements().ContainsNoneOf(first, second, rest...)
}

func (s *StreamSubject[T]) ContainsNoneIn(excluded any) {
	s.m.h.Helper()
	s.elements().ContainsNoneIn(excluded)
}

func (s *StreamSubject[T]) IsInOrder() {
	s.m.h.Helper()
	s.elements().IsInOrder()
}

func (s *StreamSubject[T]) IsInStrictOrder() {
	s.m.h.Helper()
	s.elements().IsInStrictOrder()
}

func (s *StreamSubject[T]) IsInOrderAccordingTo(less func(a, b any) bool) {
	s.m.h.Helper()
	s.elements().IsInOrderAccordingTo(less)
}

func (s *StreamSubject[T]) IsInStrictOrderAccordingTo(less func(a, b any) bool) {
	s.m.h.Helper()
	s.elements().IsInStrictOrderAccordingTo(less)
}
