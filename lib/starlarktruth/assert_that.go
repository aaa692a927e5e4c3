package starlarktruth

import (
	"fmt"
	"math"
	"strings"

	"go.starlark.net/starlark"

	"github.com/gotruth/truth"
)

func named(t *T, args ...starlark.Value) (starlark.Value, error) {
	str, ok := args[0].(starlark.String)
	if !ok {
		return nil, errUnhandled
	}
	t.name = str.GoString()
	return t, nil
}

// Equality is decided the Starlark way; the library only renders the
// failure.

func isEqualTo(t *T, args ...starlark.Value) (starlark.Value, error) {
	other := args[0]
	eq, err := starlark.Equal(t.actual, other)
	if err != nil {
		return nil, err
	}
	if eq {
		return starlark.None, nil
	}
	return t.fail(func(b *truth.SubjectBuilder) {
		t.subject(b).IsEqualTo(toGo(other))
	}, truth.NewFact("expected", toGo(other)))
}

func isNotEqualTo(t *T, args ...starlark.Value) (starlark.Value, error) {
	other := args[0]
	eq, err := starlark.Equal(t.actual, other)
	if err != nil {
		return nil, err
	}
	if !eq {
		return starlark.None, nil
	}
	return t.fail(func(b *truth.SubjectBuilder) {
		t.subject(b).IsNotEqualTo(toGo(other))
	}, truth.NewFact("expected not to be", toGo(other)))
}

// Truthiness
// `.is_true()` and `.is_false()` match only True and False.
// `.is_truthy()` and `.is_falsy()` use the value's truth.

func isTrue(t *T, args ...starlark.Value) (starlark.Value, error) {
	if t.actual == starlark.True {
		return starlark.None, nil
	}
	facts := []truth.Fact{truth.SimpleFact("expected to be True")}
	if t.actual.Truth() {
		facts = append(facts, truth.SimpleFact("it is truthy; did you mean .is_truthy()?"))
	}
	return t.failWithActual(facts...)
}

func isFalse(t *T, args ...starlark.Value) (starlark.Value, error) {
	if t.actual == starlark.False {
		return starlark.None, nil
	}
	facts := []truth.Fact{truth.SimpleFact("expected to be False")}
	if !t.actual.Truth() {
		facts = append(facts, truth.SimpleFact("it is falsy; did you mean .is_falsy()?"))
	}
	return t.failWithActual(facts...)
}

func isTruthy(t *T, args ...starlark.Value) (starlark.Value, error) {
	if t.actual.Truth() {
		return starlark.None, nil
	}
	return t.failWithActual(truth.SimpleFact("expected to be truthy"))
}

func isFalsy(t *T, args ...starlark.Value) (starlark.Value, error) {
	if !t.actual.Truth() {
		return starlark.None, nil
	}
	return t.failWithActual(truth.SimpleFact("expected to be falsy"))
}

func isNone(t *T, args ...starlark.Value) (starlark.Value, error) {
	if t.actual == starlark.None {
		return starlark.None, nil
	}
	return t.failWithActual(truth.SimpleFact("expected to be None"))
}

func isNotNone(t *T, args ...starlark.Value) (starlark.Value, error) {
	if t.actual != starlark.None {
		return starlark.None, nil
	}
	return t.failWithActual(truth.SimpleFact("expected not to be None"))
}

func (t *T) failWithActual(facts ...truth.Fact) (starlark.Value, error) {
	return t.fail(func(*truth.SubjectBuilder) {}, facts...)
}

func isCallable(t *T, args ...starlark.Value) (starlark.Value, error) {
	if _, ok := t.actual.(starlark.Callable); ok {
		return starlark.None, nil
	}
	return t.failWithActual(truth.SimpleFact("expected to be callable"))
}

func isNotCallable(t *T, args ...starlark.Value) (starlark.Value, error) {
	if _, ok := t.actual.(starlark.Callable); !ok {
		return starlark.None, nil
	}
	return t.failWithActual(truth.SimpleFact("expected not to be callable"))
}

// Types are named the way Starlark's type() does.

func isOfType(t *T, args ...starlark.Value) (starlark.Value, error) {
	want, ok := args[0].(starlark.String)
	if !ok {
		return nil, errUnhandled
	}
	if got := t.actual.Type(); got != want.GoString() {
		return t.failWithActual(
			truth.NewFact("expected instance of", want.GoString()),
			truth.NewFact("but was instance of", got))
	}
	return starlark.None, nil
}

func isNotOfType(t *T, args ...starlark.Value) (starlark.Value, error) {
	want, ok := args[0].(starlark.String)
	if !ok {
		return nil, errUnhandled
	}
	if t.actual.Type() == want.GoString() {
		return t.failWithActual(truth.NewFact("expected not to be an instance of", want.GoString()))
	}
	return starlark.None, nil
}

func isIn(t *T, args ...starlark.Value) (starlark.Value, error) {
	if haystack, ok := args[0].(starlark.String); ok {
		return t.substringOf(haystack, true)
	}
	elems, ok := elements(args[0], false)
	if !ok {
		return nil, errUnhandled
	}
	return t.run(func(b *truth.SubjectBuilder) {
		t.subject(b).IsIn(elems)
	})
}

func isNotIn(t *T, args ...starlark.Value) (starlark.Value, error) {
	if haystack, ok := args[0].(starlark.String); ok {
		return t.substringOf(haystack, false)
	}
	elems, ok := elements(args[0], false)
	if !ok {
		return nil, errUnhandled
	}
	return t.run(func(b *truth.SubjectBuilder) {
		t.subject(b).IsNotIn(elems)
	})
}

// substringOf follows Starlark's `in` for strings, which tests substrings.
func (t *T) substringOf(haystack starlark.String, in bool) (starlark.Value, error) {
	needle, ok := t.actual.(starlark.String)
	if !ok {
		return nil, errUnhandled
	}
	found := strings.Contains(haystack.GoString(), needle.GoString())
	switch {
	case found == in:
		return starlark.None, nil
	case in:
		return t.failWithActual(truth.NewFact("expected to be in", haystack))
	default:
		return t.failWithActual(truth.NewFact("expected not to be in", haystack))
	}
}

func isAnyOf(t *T, args ...starlark.Value) (starlark.Value, error) {
	return isIn(t, starlark.Tuple(args))
}

func isNoneOf(t *T, args ...starlark.Value) (starlark.Value, error) {
	return isNotIn(t, starlark.Tuple(args))
}

// Comparisons pick the library's integer, float or string subject
// depending on both operands.

type comparison struct {
	ints   func(*truth.ComparableSubject[int64], int64)
	floats func(*truth.ComparableSubject[float64], float64)
	strs   func(*truth.ComparableSubject[string], string)
}

var (
	atLeast = comparison{
		(*truth.ComparableSubject[int64]).IsAtLeast,
		(*truth.ComparableSubject[float64]).IsAtLeast,
		(*truth.ComparableSubject[string]).IsAtLeast,
	}
	atMost = comparison{
		(*truth.ComparableSubject[int64]).IsAtMost,
		(*truth.ComparableSubject[float64]).IsAtMost,
		(*truth.ComparableSubject[string]).IsAtMost,
	}
	greaterThan = comparison{
		(*truth.ComparableSubject[int64]).IsGreaterThan,
		(*truth.ComparableSubject[float64]).IsGreaterThan,
		(*truth.ComparableSubject[string]).IsGreaterThan,
	}
	lessThan = comparison{
		(*truth.ComparableSubject[int64]).IsLessThan,
		(*truth.ComparableSubject[float64]).IsLessThan,
		(*truth.ComparableSubject[string]).IsLessThan,
	}
)

func isAtLeast(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.compare(atLeast, args[0])
}

func isAtMost(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.compare(atMost, args[0])
}

func isGreaterThan(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.compare(greaterThan, args[0])
}

func isLessThan(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.compare(lessThan, args[0])
}

func (t *T) compare(c comparison, other starlark.Value) (starlark.Value, error) {
	if t.actual == starlark.None || other == starlark.None {
		return nil, errNoneComparison
	}
	if a, ok := t.actual.(starlark.String); ok {
		o, ok := other.(starlark.String)
		if !ok {
			return nil, errUnhandled
		}
		return t.run(func(b *truth.SubjectBuilder) {
			c.strs(b.ThatString(a.GoString()).ComparableSubject, o.GoString())
		})
	}
	if a, o, ok := int64s(t.actual, other); ok {
		return t.run(func(b *truth.SubjectBuilder) {
			c.ints(b.ThatInt(a).ComparableSubject, o)
		})
	}
	a, aok := starlark.AsFloat(t.actual)
	o, ook := starlark.AsFloat(other)
	if !aok || !ook {
		return nil, errUnhandled
	}
	return t.run(func(b *truth.SubjectBuilder) {
		c.floats(b.ThatFloat(a).ComparableSubject, o)
	})
}

// int64s returns x and y when both are Starlark ints that fit an int64.
func int64s(x, y starlark.Value) (int64, int64, bool) {
	xi, ok := x.(starlark.Int)
	if !ok {
		return 0, 0, false
	}
	yi, ok := y.(starlark.Int)
	if !ok {
		return 0, 0, false
	}
	a, aok := xi.Int64()
	b, bok := yi.Int64()
	return a, b, aok && bok
}

// Tolerance

func isWithin(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.setTolerance(true, args[0])
}

func isNotWithin(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.setTolerance(false, args[0])
}

func (t *T) setTolerance(within bool, tol starlark.Value) (starlark.Value, error) {
	f, ok := starlark.AsFloat(tol)
	if !ok {
		return nil, errUnhandled
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return nil, newInvalidAssertion(fmt.Sprintf("tolerance (%s) must be finite and non-negative", tol))
	}
	t.tolerance = &tolerance{within: within, value: tol}
	return t, nil
}

func of(t *T, args ...starlark.Value) (starlark.Value, error) {
	tol := t.tolerance
	if tol == nil {
		return nil, newInvalidAssertion(".of() must follow .is_within() or .is_not_within()")
	}
	t.tolerance = nil
	expected := args[0]

	if a, e, ok := int64s(t.actual, expected); ok {
		if d, ok := tol.value.(starlark.Int); ok {
			if d, ok := d.Int64(); ok {
				return t.run(func(b *truth.SubjectBuilder) {
					s := b.ThatInt(a)
					if tol.within {
						s.IsWithin(d).Of(e)
					} else {
						s.IsNotWithin(d).Of(e)
					}
				})
			}
		}
	}

	a, aok := starlark.AsFloat(t.actual)
	e, eok := starlark.AsFloat(expected)
	if !aok || !eok {
		return nil, errUnhandled
	}
	d, _ := starlark.AsFloat(tol.value)
	return t.run(func(b *truth.SubjectBuilder) {
		s := b.ThatFloat(a)
		if tol.within {
			s.IsWithin(d).Of(e)
		} else {
			s.IsNotWithin(d).Of(e)
		}
	})
}

// Numbers

func (t *T) float(assert func(s *truth.FloatSubject)) (starlark.Value, error) {
	f, ok := starlark.AsFloat(t.actual)
	if !ok {
		return nil, errUnhandled
	}
	return t.run(func(b *truth.SubjectBuilder) { assert(b.ThatFloat(f)) })
}

func isZero(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.float((*truth.FloatSubject).IsZero)
}

func isNonZero(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.float((*truth.FloatSubject).IsNonZero)
}

func isFinite(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.float((*truth.FloatSubject).IsFinite)
}

func isNaN(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.float((*truth.FloatSubject).IsNaN)
}

func isNotNaN(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.float((*truth.FloatSubject).IsNotNaN)
}

func isPositiveInfinity(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.float((*truth.FloatSubject).IsPositiveInfinity)
}

func isNegativeInfinity(t *T, args ...starlark.Value) (starlark.Value, error) {
	return t.float((*truth.FloatSubject).IsNegativeInfinity)
}
