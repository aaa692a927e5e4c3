package truth

import (
	"fmt"

	"github.com/gotruth/truth/internal/platform"
)

const warnContainsExactlySingleIterable = "Passing a single slice to ContainsExactly(...) is often" +
	" not the correct thing to do. Did you mean to call ContainsExactlyElementsIn(...) instead?"

// IterableSubject asserts on the elements of a slice or array.
type IterableSubject struct {
	*Subject
	elems []any
	isNil bool
}

func newIterableSubject(m *FailureMetadata, actual any, label string) *IterableSubject {
	if actual == nil {
		return &IterableSubject{Subject: newSubject(m, nil, label, nil), isNil: true}
	}
	return &IterableSubject{Subject: newSubject(m, actual, label, nil), elems: mustElements(actual)}
}

// Ordered is returned by the containment assertions that can also check
// the order of the elements.
type Ordered interface {
	// InOrder fails unless the elements appeared in the order given.
	InOrder()
}

type inOrder struct{}

func (inOrder) InOrder() {}

// orderFailure reports its facts when InOrder is called.
type orderFailure struct {
	s     *IterableSubject
	facts []Fact
}

func (o orderFailure) InOrder() {
	o.s.m.h.Helper()
	o.s.FailWithActual(o.facts...)
}

// alreadyFailed is returned after a containment failure so that a chained
// InOrder adds nothing.
type alreadyFailed struct{}

func (alreadyFailed) InOrder() {}

// present fails when the actual value is nil, which no containment
// assertion can meaningfully check.
func (s *IterableSubject) present() bool {
	s.m.h.Helper()
	if s.isNil {
		s.FailWithActual(SimpleFact("expected a collection"))
		return false
	}
	return true
}

func (s *IterableSubject) IsEmpty() {
	s.m.h.Helper()
	if s.present() && len(s.elems) != 0 {
		s.FailWithActual(SimpleFact("expected to be empty"))
	}
}

func (s *IterableSubject) IsNotEmpty() {
	s.m.h.Helper()
	if s.present() && len(s.elems) == 0 {
		s.FailWithoutActual(SimpleFact("expected not to be empty"))
	}
}

// HasSize fails unless there are exactly n elements. It panics if n is
// negative.
func (s *IterableSubject) HasSize(n int) {
	s.m.h.Helper()
	if n < 0 {
		panic(fmt.Sprintf("truth: expected size (%d) must be >= 0", n))
	}
	if s.present() {
		s.checkWrapped("len(%s)").ThatInt(int64(len(s.elems))).IsEqualTo(n)
	}
}

func (s *IterableSubject) Contains(element any) {
	s.m.h.Helper()
	if !s.present() || indexOf(s.elems, element) >= 0 {
		return
	}
	facts := []Fact{NewFact("expected to contain", element)}
	if hint := typeHint(s.elems, element); hint != nil {
		facts = append(facts, hint...)
	}
	s.FailWithActual(facts...)
}

// typeHint explains a failed lookup of a value whose string form matches an
// element of a different type.
func typeHint(elems []any, element any) []Fact {
	want := platform.Format(element)
	for _, e := range elems {
		if platform.Format(e) == want && platform.TypeName(e) != platform.TypeName(element) {
			return []Fact{
				NewFact("an instance of", platform.TypeName(element)),
				SimpleFact("though it did contain"),
				NewFact("an instance of", platform.TypeName(e)),
			}
		}
	}
	return nil
}

func (s *IterableSubject) DoesNotContain(element any) {
	s.m.h.Helper()
	if s.present() && indexOf(s.elems, element) >= 0 {
		s.FailWithActual(NewFact("expected not to contain", element))
	}
}

func (s *IterableSubject) ContainsNoDuplicates() {
	s.m.h.Helper()
	if !s.present() {
		return
	}
	dc := newDuplicateCounter(s.elems...)
	if dc.HasDupes() {
		s.FailWithoutActual(
			SimpleFact("expected not to contain duplicates"),
			NewFact("but contained", dc.Dupes()),
			NewFact("full contents", s.actualString()))
	}
}

func (s *IterableSubject) ContainsAnyOf(first, second any, rest ...any) {
	s.m.h.Helper()
	s.ContainsAnyIn(append([]any{first, second}, rest...))
}

// ContainsAnyIn fails unless some element of expected, a slice or array,
// is present.
func (s *IterableSubject) ContainsAnyIn(expected any) {
	s.m.h.Helper()
	want := mustElements(expected)
	if !s.present() {
		return
	}
	for _, w := range want {
		if indexOf(s.elems, w) >= 0 {
			return
		}
	}
	s.FailWithActual(NewFact("expected to contain any of", expected))
}

func (s *IterableSubject) ContainsAtLeast(first, second any, rest ...any) Ordered {
	s.m.h.Helper()
	return s.ContainsAtLeastElementsIn(append([]any{first, second}, rest...))
}

// ContainsAtLeastElementsIn fails unless every element of expected is
// present, with duplicates needing as many occurrences. Call InOrder on
// the result to also require them in the same relative order.
func (s *IterableSubject) ContainsAtLeastElementsIn(expected any) Ordered {
	s.m.h.Helper()
	want := mustElements(expected)
	if !s.present() {
		return alreadyFailed{}
	}
	remaining := append([]any(nil), s.elems...)
	var skipped []any
	missing := newDuplicateCounter()
	ordered := true
	for _, w := range want {
		if i := indexOf(remaining, w); i >= 0 {
			// Elements before the match can only satisfy later expectations
			// out of order.
			skipped = append(skipped, remaining[:i]...)
			remaining = remaining[i+1:]
			continue
		}
		if i := indexOf(skipped, w); i >= 0 {
			skipped = append(skipped[:i:i], skipped[i+1:]...)
			ordered = false
			continue
		}
		missing.Increment(w)
	}
	if !missing.Empty() {
		s.FailWithActual(
			NewFact(fmt.Sprintf("missing (%d)", missing.Total()), missing.String()),
			SimpleFact("---"),
			NewFact("expected to contain at least", expected))
		return alreadyFailed{}
	}
	if ordered {
		return inOrder{}
	}
	return orderFailure{s, []Fact{
		SimpleFact("required elements were all found, but order was wrong"),
		NewFact("expected order for required elements", expected),
	}}
}

// ContainsExactly fails unless the elements are exactly the given ones,
// with duplicates counted. Call InOrder on the result to also require the
// same order.
func (s *IterableSubject) ContainsExactly(expected ...any) Ordered {
	s.m.h.Helper()
	warn := false
	if len(expected) == 1 {
		_, warn = elementsOf(expected[0])
	}
	return s.containsExactly(expected, expected, warn)
}

// ContainsExactlyElementsIn is ContainsExactly with the expected elements
// given as a slice or array.
func (s *IterableSubject) ContainsExactlyElementsIn(expected any) Ordered {
	s.m.h.Helper()
	return s.containsExactly(expected, mustElements(expected), false)
}

func (s *IterableSubject) containsExactly(expected any, want []any, warn bool) Ordered {
	s.m.h.Helper()
	if !s.present() {
		return alreadyFailed{}
	}

	// Step through both slices comparing elements pairwise. At the first
	// mismatch InOrder can no longer succeed, so the rest is counted.
	i := 0
	for i < len(s.elems) && i < len(want) && valuesEqual(s.elems[i], want[i]) {
		i++
	}
	if i == len(s.elems) && i == len(want) {
		return inOrder{}
	}

	missing := newDuplicateCounter(want[i:]...)
	extra := newDuplicateCounter()
	for _, a := range s.elems[i:] {
		if !missing.Decrement(a) {
			extra.Increment(a)
		}
	}
	if missing.Empty() && extra.Empty() {
		return orderFailure{s, []Fact{
			SimpleFact("contents match, but order was wrong"),
			NewFact("expected", expected),
		}}
	}

	var facts []Fact
	if !missing.Empty() {
		facts = append(facts, NewFact(fmt.Sprintf("missing (%d)", missing.Total()), missing.String()))
	}
	if !extra.Empty() {
		facts = append(facts, NewFact(fmt.Sprintf("unexpected (%d)", extra.Total()), extra.String()))
	}
	facts = append(facts,
		SimpleFact("---"),
		NewFact("expected", expected),
		NewFact("but was", s.actualString()))
	if warn {
		facts = append(facts, SimpleFact(warnContainsExactlySingleIterable))
	}
	s.FailWithoutActual(facts...)
	return alreadyFailed{}
}

func (s *IterableSubject) ContainsNoneOf(first, second any, rest ...any) {
	s.m.h.Helper()
	s.ContainsNoneIn(append([]any{first, second}, rest...))
}

// ContainsNoneIn fails if any element of excluded, a slice or array, is
// present.
func (s *IterableSubject) ContainsNoneIn(excluded any) {
	s.m.h.Helper()
	unwanted := mustElements(excluded)
	if !s.present() {
		return
	}
	present := newDuplicateCounter()
	for _, u := range unwanted {
		if indexOf(s.elems, u) >= 0 && !present.Contains(u) {
			present.Increment(u)
		}
	}
	if present.Empty() {
		return
	}
	s.FailWithoutActual(
		NewFact("expected not to contain any of", excluded),
		NewFact("but contained", present.String()),
		NewFact("full contents", s.actualString()))
}

// IsInOrder fails unless each element is less than or equal to the next.
// Elements must be numbers or strings.
func (s *IterableSubject) IsInOrder() {
	s.m.h.Helper()
	s.pairwiseCheck("expected to be in order", func(a, b any) bool { return compareNatural(a, b) <= 0 })
}

// IsInStrictOrder fails unless each element is less than the next.
func (s *IterableSubject) IsInStrictOrder() {
	s.m.h.Helper()
	s.pairwiseCheck("expected to be in strict order", func(a, b any) bool { return compareNatural(a, b) < 0 })
}

// IsInOrderAccordingTo fails unless less(next, prev) is false for every
// consecutive pair.
func (s *IterableSubject) IsInOrderAccordingTo(less func(a, b any) bool) {
	s.m.h.Helper()
	s.pairwiseCheck("expected to be in order", func(a, b any) bool { return !less(b, a) })
}

// IsInStrictOrderAccordingTo fails unless less(prev, next) holds for every
// consecutive pair.
func (s *IterableSubject) IsInStrictOrderAccordingTo(less func(a, b any) bool) {
	s.m.h.Helper()
	s.pairwiseCheck("expected to be in strict order", less)
}

func (s *IterableSubject) pairwiseCheck(key string, ok func(a, b any) bool) {
	s.m.h.Helper()
	if !s.present() {
		return
	}
	for i := 1; i < len(s.elems); i++ {
		prev, next := s.elems[i-1], s.elems[i]
		if !ok(prev, next) {
			s.FailWithoutActual(
				SimpleFact(key),
				NewFact("but contained", prev),
				NewFact("followed by", next),
				NewFact("full contents", s.actualString()))
			return
		}
	}
}
