// Package truth provides fluent test assertions in the fashion of https://truth.dev
//
// An assertion picks a subject for the actual value and calls one of its
// methods:
//
//      truth.AssertThat(t, got).IsEqualTo(want)
//      truth.Assert(t).ThatString(name).StartsWith("gopher")
//      truth.Assert(t).ThatSlice(ids).ContainsExactly(1, 2, 3).InOrder()
//      truth.Expect(t).ThatFloat(ratio).IsWithin(1e-9).Of(0.5)
//      truth.ThatOptional(truth.Assert(t), cached).HasValue(42)
//
// Assert stops the test at the first failure, like t.Fatalf.
// Expect records the failure and lets the test continue, like t.Errorf.
//
// It is strongly recommended that the actual value is made the subject of
// the assertion:
//
//      truth.AssertThat(t, actual).IsEqualTo(expected)     // Recommended.
//      truth.AssertThat(t, expected).IsEqualTo(actual)     // Not recommended.
//      truth.AssertThat(t, actual).IsIn(possibilities)      // Recommended.
//      truth.Assert(t).ThatSlice(possibilities).Contains(actual) // Not recommended.
//
// Failure messages
//
// A failure is a list of facts, printed with aligned keys:
//
//      value of    : len(users)
//      expected    : 3
//      but was     : 2
//
// The "value of" line names the expression that produced the actual value.
// It is read from the test's source file and only shown when the expression
// contains a call, since a plain variable name adds nothing. Set
// TRUTH_DISABLE_INFER_DESCRIPTION=true to turn this off, or use Named to
// describe the value explicitly:
//
//      truth.Assert(t).Named("user count").ThatInt(n).IsEqualTo(3)
//
// Messages added with WithMessage are printed before the facts. Only %s
// placeholders are substituted; extra arguments are appended in brackets.
//
// Equality
//
//   IsEqualTo compares integers of any width by value, so a subject for an
//  int64 accepts an untyped constant. Floats are compared by value with NaN
//  equal to itself. Protocol buffer messages use proto.Equal. Anything else
//  is compared structurally with github.com/google/go-cmp, unexported fields
//  included; structural mismatches come with a diff.
//
//   Multi-line strings that differ are reported as a unified diff of their
//  lines.
//
// Order
//
//   ContainsAtLeast and ContainsExactly return an Ordered whose InOrder
//  additionally checks element order:
//
//      truth.Assert(t).ThatSlice([]int{2, 4, 6}).ContainsAtLeast(6, 2)
//      truth.Assert(t).ThatSlice([]int{2, 4, 6}).ContainsAtLeast(6, 2).InOrder()    // fails
//      truth.Assert(t).ThatSlice([]int{2, 4, 6}).ContainsExactly(2, 4, 6).InOrder()
//
// Testing assertions
//
//   ExpectFailure captures the failure of an assertion so that its facts can
//  be checked in turn:
//
//      f := truth.ExpectFailure(t, func(whenTesting *truth.SubjectBuilder) {
//              whenTesting.ThatInt(4).IsEqualTo(5)
//      })
//      truth.AssertThatFailure(t, f).FactKeys().ContainsExactly("expected", "but was").InOrder()
//
// Notes (in no particular order):
//
//   Tolerance checks never succeed for NaN or infinite values, in either
//  direction. A NaN, negative or +Inf tolerance is a programming error and
//  panics, as does asking for a negative size or length.
//
//   Stack traces of failures are trimmed to the test's own frames. Set
//  TRUTH_DISABLE_STACK_TRACE_CLEANING=true to keep every frame.
//
//   Every assertion calls t.Helper, so failures are reported at the line of
//  the test that made the assertion.
//
package truth // import "github.com/gotruth/truth"
