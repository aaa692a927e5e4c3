package truth

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/gotruth/truth/internal/platform"
)

// MapSubject asserts on the entries of a map.
type MapSubject struct {
	*Subject
	entries []mapEntry
	isNil   bool
}

type mapEntry struct {
	key, value any
}

func (e mapEntry) String() string {
	return platform.Format(e.key) + ": " + platform.Format(e.value)
}

func newMapSubject(m *FailureMetadata, actual any) *MapSubject {
	if actual == nil {
		return &MapSubject{Subject: newSubject(m, nil, "map", nil), isNil: true}
	}
	return &MapSubject{Subject: newSubject(m, actual, "map", nil), entries: mustEntries(actual)}
}

// mustEntries returns the entries of a map sorted by their rendering, so
// that failure messages are stable.
func mustEntries(v any) []mapEntry {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		panic(fmt.Sprintf("truth: want a map, got %T", v))
	}
	entries := make([]mapEntry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, mapEntry{iter.Key().Interface(), iter.Value().Interface()})
	}
	sort.Slice(entries, func(i, j int) bool {
		return platform.Format(entries[i].key) < platform.Format(entries[j].key)
	})
	return entries
}

func (s *MapSubject) lookup(key any) (any, bool) {
	for _, e := range s.entries {
		if valuesEqual(e.key, key) {
			return e.value, true
		}
	}
	return nil, false
}

func (s *MapSubject) present() bool {
	s.m.h.Helper()
	if s.isNil {
		s.FailWithActual(SimpleFact("expected a map"))
		return false
	}
	return true
}

func (s *MapSubject) IsEmpty() {
	s.m.h.Helper()
	if s.present() && len(s.entries) != 0 {
		s.FailWithActual(SimpleFact("expected to be empty"))
	}
}

func (s *MapSubject) IsNotEmpty() {
	s.m.h.Helper()
	if s.present() && len(s.entries) == 0 {
		s.FailWithoutActual(SimpleFact("expected not to be empty"))
	}
}

// HasSize fails unless the map has n entries. It panics if n is negative.
func (s *MapSubject) HasSize(n int) {
	s.m.h.Helper()
	if n < 0 {
		panic(fmt.Sprintf("truth: expected size (%d) must be >= 0", n))
	}
	if s.present() {
		s.checkWrapped("len(%s)").ThatInt(int64(len(s.entries))).IsEqualTo(n)
	}
}

func (s *MapSubject) ContainsKey(key any) {
	s.m.h.Helper()
	if !s.present() {
		return
	}
	if _, ok := s.lookup(key); !ok {
		s.FailWithActual(NewFact("expected to contain key", key))
	}
}

func (s *MapSubject) DoesNotContainKey(key any) {
	s.m.h.Helper()
	if !s.present() {
		return
	}
	if _, ok := s.lookup(key); ok {
		s.FailWithActual(NewFact("expected not to contain key", key))
	}
}

func (s *MapSubject) ContainsEntry(key, value any) {
	s.m.h.Helper()
	if !s.present() {
		return
	}
	got, ok := s.lookup(key)
	if ok && valuesEqual(got, value) {
		return
	}
	want := mapEntry{key, value}.String()
	if ok {
		s.FailWithActual(NewFact("expected to contain entry", want), NewFact("but key was mapped to", got))
		return
	}
	s.FailWithActual(NewFact("expected to contain entry", want))
}

func (s *MapSubject) DoesNotContainEntry(key, value any) {
	s.m.h.Helper()
	if !s.present() {
		return
	}
	if got, ok := s.lookup(key); ok && valuesEqual(got, value) {
		s.FailWithActual(NewFact("expected not to contain entry", mapEntry{key, value}.String()))
	}
}

// ContainsExactlyEntriesIn fails unless the map has exactly the entries of
// expected, which must be a map.
func (s *MapSubject) ContainsExactlyEntriesIn(expected any) {
	s.m.h.Helper()
	want := mustEntries(expected)
	if !s.present() {
		return
	}
	var missing, unexpected []any
	var facts []Fact
	wrong := 0
	for _, w := range want {
		got, ok := s.lookup(w.key)
		switch {
		case !ok:
			missing = append(missing, w.key)
		case !valuesEqual(got, w.value):
			wrong++
			facts = append(facts,
				NewFact("for key", w.key),
				NewFact("expected value", w.value),
				NewFact("but got value", got))
		}
	}
	for _, e := range s.entries {
		found := false
		for _, w := range want {
			if valuesEqual(e.key, w.key) {
				found = true
				break
			}
		}
		if !found {
			unexpected = append(unexpected, e.key)
		}
	}
	if len(missing) == 0 && len(unexpected) == 0 && wrong == 0 {
		return
	}

	var head []Fact
	if len(missing) > 0 {
		head = append(head, NewFact(fmt.Sprintf("missing keys (%d)", len(missing)), missing))
	}
	if len(unexpected) > 0 {
		head = append(head, NewFact(fmt.Sprintf("unexpected keys (%d)", len(unexpected)), unexpected))
	}
	if wrong > 0 {
		head = append(head, SimpleFact(fmt.Sprintf("keys with wrong values (%d)", wrong)))
	}
	head = append(head, facts...)
	head = append(head, SimpleFact("---"), NewFact("expected", expected))
	s.FailWithActual(head...)
}

// ContainsExactly is ContainsExactlyEntriesIn with the entries given as
// alternating keys and values. It panics on an odd number of arguments.
func (s *MapSubject) ContainsExactly(keysAndValues ...any) {
	s.m.h.Helper()
	if len(keysAndValues)%2 != 0 {
		panic("truth: ContainsExactly needs an even number of arguments")
	}
	expected := make(map[any]any, len(keysAndValues)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		expected[keysAndValues[i]] = keysAndValues[i+1]
	}
	s.ContainsExactlyEntriesIn(expected)
}
