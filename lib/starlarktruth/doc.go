// Package starlarktruth exposes the truth assertions to Starlark programs.
//
// The Starlark:
//
//      assert.that(a).is_equal_to(b)
//      assert.that(c).named("my value").is_true()
//      assert.that(d).contains(a)
//      assert.that(d).contains_all_of(a, b).in_order()
//      assert.that(d).contains_any_of(a, b, c)
//
// is equivalent to the following Go:
//
//      truth.AssertThat(t, a).IsEqualTo(b)
//      truth.Assert(t).Named("my value").ThatBool(c).IsTrue()
//      truth.Assert(t).ThatSlice(d).Contains(a)
//      truth.Assert(t).ThatSlice(d).ContainsAtLeast(a, b).InOrder()
//      truth.Assert(t).ThatSlice(d).ContainsAnyOf(a, b, c)
//
// A failed assertion is returned to the Starlark interpreter as an
// *AssertionError. It wraps the *truth.Failure, whose message lists the
// same facts a Go test would print, and records where assert.that was called:
//
//      expected: 2
//      but was : 1
//
// Equality follows Starlark: 1 == 1.0 and (1, 2) != [1, 2].
//
// Some assertions
//
//      assert.that(a).is_equal_to(b)
//      assert.that(a).is_not_equal_to(b)
//      assert.that(a).is_truthy()
//      assert.that(a).is_falsy()
//      assert.that(a).is_true()
//      assert.that(a).is_false()
//      assert.that(a).is_none()
//      assert.that(a).is_not_none()
//      assert.that(a).is_in(b)
//      assert.that(a).is_any_of(b, c, d)
//      assert.that(a).is_not_in(b)
//      assert.that(a).is_none_of(b, c, d)
//      assert.that(a).is_of_type(type(b))
//      assert.that(a).is_not_of_type(type(b))
//      assert.that(a).is_callable()
//      assert.that(a).is_not_callable()
//      assert.that(a).is_less_than(b)
//      assert.that(a).is_greater_than(b)
//      assert.that(a).is_at_most(b)
//      assert.that(a).is_at_least(b)
//
// Truthiness
//   Predicates `.is_true()` and `.is_false()` match *only* `True` and `False`.
//   For `.is_truthy()` and `.is_falsy()`, `(starlark.Value).Truth() bool` is used.
//
//      assert.that(True).is_true()
//      assert.that(1).is_true()      # fails
//      assert.that(1).is_truthy()
//      assert.that(None).is_falsy()
//
// Numbers
//
//      assert.that(0.1).is_within(0.01).of(0.105)
//      assert.that(10).is_not_within(1).of(12)
//      assert.that(float("nan")).is_nan()
//      assert.that(-0.0).is_zero()
//
// Strings
//
//      assert.that("abc").has_length(3)
//      assert.that("abc").starts_with("a")
//      assert.that("abc").ends_with("c")
//      assert.that("abc").matches("a.+")                # whole string, RE2 syntax
//      assert.that("abc").contains_match("b")
//
// Collections and dicts
//
//      assert.that([1, 2, 2]).has_size(3)
//      assert.that((3, 1)).contains_exactly(1, 3)
//      assert.that([1, 2, 3]).contains_all_in([3, 1]).in_order()  # fails
//      assert.that([1, 2, 3]).is_strictly_ordered()
//      assert.that({"a": 1}).contains_item("a", 1)
//      assert.that({"a": 1, "b": 2}).contains_exactly("b", 2, "a", 1)
//
// Every assert.that(x) must be completed by an assertion: Close reports
// the first one that was not.
package starlarktruth
