package starlarktruth

import (
	"go.starlark.net/starlark"

	"github.com/gotruth/truth"
)

// Collections are lists, tuples, sets, dicts (through their keys) and any
// other iterable. Strings are collections of characters only where no
// string assertion of the same name exists.

func (t *T) iterable(chars bool, assert func(s *truth.IterableSubject)) (starlark.Value, error) {
	elems, ok := elements(t.actual, chars)
	if !ok {
		return nil, errUnhandled
	}
	return t.run(func(b *truth.SubjectBuilder) { assert(b.ThatSlice(elems)) })
}

// ordering is like iterable for the assertions that .in_order() may follow.
func (t *T) ordering(assert func(s *truth.IterableSubject) truth.Ordered) (starlark.Value, error) {
	t.ordered = nil
	if _, ok := t.actual.(*starlark.Dict); ok {
		// Dicts are compared as a whole by contains_exactly.
		return nil, errUnhandled
	}
	elems, ok := elements(t.actual, true)
	if !ok {
		return nil, errUnhandled
	}
	t.failure = nil
	t.ordered = assert(t.builder().ThatSlice(elems))
	if err := t.result(); err != nil {
		return nil, err
	}
	return t, nil
}

func inOrder(t *T, args ...starlark.Value) (starlark.Value, error) {
	ordered := t.ordered
	if ordered == nil {
		return nil, newInvalidAssertion(".in_order() must follow .contains_exactly() or .contains_all_of() and the like")
	}
	t.ordered = nil
	return t.run(func(*truth.SubjectBuilder) { ordered.InOrder() })
}

func (t *T) dict() (any, bool) {
	if d, ok := t.actual.(*starlark.Dict); ok {
		return toGo(d), true
	}
	return nil, false
}

func hasSize(t *T, args ...starlark.Value) (starlark.Value, error) {
	n, ok := args[0].(starlark.Int)
	if !ok {
		return nil, errUnhandled
	}
	size, ok := n.Int64()
	if !ok || size < 0 {
		return nil, errMustBeNonNegative("size", n)
	}
	if s, ok := t.actual.(starlark.String); ok {
		return t.run(func(b *truth.SubjectBuilder) { b.ThatString(s.GoString()).HasLength(int(size)) })
	}
	if m, ok := t.dict(); ok {
		return t.run(func(b *truth.SubjectBuilder) { b.ThatMap(m).HasSize(int(size)) })
	}
	return t.iterable(false, func(s *truth.IterableSubject) { s.HasSize(int(size)) })
}

func isEmpty(t *T, args ...starlark.Value) (starlark.Value, error) {
	if s, ok := t.actual.(starlark.String); ok {
		return t.run(func(b *truth.SubjectBuilder) { b.ThatString(s.GoString()).IsEmpty() })
	}
	if m, ok := t.dict(); ok {
		return t.run(func(b *truth.SubjectBuilder) { b.ThatMap(m).IsEmpty() })
	}
	return t.iterable(false, (*truth.IterableSubject).IsEmpty)
}

func isNotEmpty(t *T, args ...starlark.Value) (starlark.Value, error) {
	if s, ok := t.actual.(starlark.String); ok {
		return t.run(func(b *truth.SubjectBuilder) { b.ThatString(s.GoString()).IsNotEmpty() })
	}
	if m, ok := t.dict(); ok {
		return t.run(func(b *truth.SubjectBuilder) { b.ThatMap(m).IsNotEmpty() })
	}
	return t.iterable(false, (*truth.IterableSubject).IsNotEmpty)
}

func contains(t *T, args ...starlark.Value) (starlark.Value, error) {
	if s, ok := t.actual.(starlark.String); ok {
		sub, ok := args[0].(starlark.String)
		if !ok {
			return nil, errUnhandled
		}
		return t.run(func(b *truth.SubjectBuilder) { b.ThatString(s.GoString()).Contains(sub.GoString()) })
	}
	return t.iterable(false, func(s *truth.IterableSubject) { s.Contains(toGo(args[0])) })
}

func doesNotContain(t *T, args ...starlark.Value) (starlark.Value, error) {
	if s, ok := t.actual.(starlark.String); ok {
		sub, ok := args[0].(starlark.String)
		if !ok {
			return nil, errUnhandled
		}
		return t.run(func(b *truth.SubjectBuilder) { b.ThatString(s.GoString()).DoesNotContain(sub.GoString()) })
	}
	return t.iterable(false, func(s *truth.IterableSubject) { s.DoesNotContain(toGo(args[0])) })
}

func containsNoDuplicates(t *T, args ...starlark.Value) (starlark.Value, error) {
	switch t.actual.(type) {
	case *starlark.Dict, *starlark.Set:
		// Members are unique by definition.
		return starlark.None, nil
	}
	return t.iterable(true, (*truth.IterableSubject).ContainsNoDuplicates)
}

func isOrdered(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.iterable(true, (*truth.IterableSubject).IsInOrder)
}

func isStrictlyOrdered(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.iterable(true, (*truth.IterableSubject).IsInStrictOrder)
}

// expected converts the argument of a *_in assertion.
func expected(v starlark.Value) (any, error) {
	elems, ok := elements(v, true)
	if !ok {
		return nil, newInvalidAssertion("expected an iterable, got " + v.Type())
	}
	return elems, nil
}

func containsAllOf(t *T, args ...starlark.Value) (starlark.Value, error) {
	return containsAllIn(t, starlark.Tuple(args))
}

func containsAllIn(t *T, args ...starlark.Value) (starlark.Value, error) {
	want, err := expected(args[0])
	if err != nil {
		return nil, err
	}
	return t.ordering(func(s *truth.IterableSubject) truth.Ordered {
		return s.ContainsAtLeastElementsIn(want)
	})
}

func containsAnyOf(t *T, args ...starlark.Value) (starlark.Value, error) {
	return containsAnyIn(t, starlark.Tuple(args))
}

func containsAnyIn(t *T, args ...starlark.Value) (starlark.Value, error) {
	want, err := expected(args[0])
	if err != nil {
		return nil, err
	}
	return t.iterable(true, func(s *truth.IterableSubject) { s.ContainsAnyIn(want) })
}

func containsNoneOf(t *T, args ...starlark.Value) (starlark.Value, error) {
	return containsNoneIn(t, starlark.Tuple(args))
}

func containsNoneIn(t *T, args ...starlark.Value) (starlark.Value, error) {
	want, err := expected(args[0])
	if err != nil {
		return nil, err
	}
	return t.iterable(true, func(s *truth.IterableSubject) { s.ContainsNoneIn(want) })
}

// On a dict, contains_exactly takes alternating keys and values.
func containsExactly(t *T, args ...starlark.Value) (starlark.Value, error) {
	if m, ok := t.dict(); ok {
		if len(args)%2 != 0 {
			return nil, newInvalidAssertion("There must be an equal number of key/value pairs, i.e., the number of key/value parameters must be even.")
		}
		t.ordered = nil
		if _, err := t.run(func(b *truth.SubjectBuilder) { b.ThatMap(m).ContainsExactly(pairs(args)...) }); err != nil {
			return nil, err
		}
		return t, nil
	}
	return containsExactlyElementsIn(t, starlark.Tuple(args))
}

func containsExactlyElementsIn(t *T, args ...starlark.Value) (starlark.Value, error) {
	want, err := expected(args[0])
	if err != nil {
		return nil, err
	}
	return t.ordering(func(s *truth.IterableSubject) truth.Ordered {
		return s.ContainsExactlyElementsIn(want)
	})
}

// Dicts

func (t *T) mapping(assert func(s *truth.MapSubject)) (starlark.Value, error) {
	m, ok := t.dict()
	if !ok {
		return nil, errUnhandled
	}
	return t.run(func(b *truth.SubjectBuilder) { assert(b.ThatMap(m)) })
}

func containsExactlyItemsIn(t *T, args ...starlark.Value) (starlark.Value, error) {
	want, ok := args[0].(*starlark.Dict)
	if !ok {
		return nil, errUnhandled
	}
	return t.mapping(func(s *truth.MapSubject) { s.ContainsExactlyEntriesIn(toGo(want)) })
}

func containsKey(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.mapping(func(s *truth.MapSubject) { s.ContainsKey(toGoKey(args[0])) })
}

func doesNotContainKey(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.mapping(func(s *truth.MapSubject) { s.DoesNotContainKey(toGoKey(args[0])) })
}

func containsItem(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.mapping(func(s *truth.MapSubject) { s.ContainsEntry(toGoKey(args[0]), toGo(args[1])) })
}

func doesNotContainItem(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.mapping(func(s *truth.MapSubject) { s.DoesNotContainEntry(toGoKey(args[0]), toGo(args[1])) })
}
