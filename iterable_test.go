package truth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSliceBasics(t *testing.T) {
	expectPass(t, func(b *SubjectBuilder) {
		b.ThatSlice([]int{}).IsEmpty()
		b.ThatSlice([]string{"a"}).IsNotEmpty()
		b.ThatSlice([2]int{1, 2}).HasSize(2)
		b.ThatSlice([]any{1, "a", nil}).Contains(nil)
		b.ThatSlice([]int64{1, 2}).Contains(2)
		b.ThatSlice([]int{1, 2}).DoesNotContain(3)
		b.ThatSlice([]int{1, 2, 3}).ContainsNoDuplicates()
		b.ThatSlice([]point{{1, 2}}).Contains(point{1, 2})
	})
	require.Panics(t, func() { NewBuilder(ignoreStrategy{}).ThatSlice(3) })
	require.Panics(t, func() { NewBuilder(ignoreStrategy{}).ThatSlice([]int{}).HasSize(-1) })
}

func TestSliceIsEmptyFailure(t *testing.T) {
	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatSlice([]int{1}).IsEmpty()
	})
	require.Equal(t, "expected to be empty\nbut was: [1]", f.Error())

	f = ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatSlice([]int{}).IsNotEmpty()
	})
	require.Equal(t, "expected not to be empty", f.Error())
}

func TestSliceHasSizeFailure(t *testing.T) {
	values := []int{42}
	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatSlice(values).HasSize(2)
	})
	require.Equal(t, "value of  : len(values)\nexpected  : 2\nbut was   : 1\nvalues was: [42]", f.Error())
}

func TestNilSlice(t *testing.T) {
	expectPass(t, func(b *SubjectBuilder) {
		b.ThatSlice(nil).IsNil()
		b.ThatSlice([]int(nil)).IsEmpty()
	})
	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatSlice(nil).Contains(1)
	})
	require.Equal(t, "expected a collection\nbut was: nil", f.Error())
}

func TestSliceContainsFailure(t *testing.T) {
	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatSlice([]int{1, 2}).Contains(3)
	})
	require.Equal(t, "expected to contain: 3\nbut was            : [1, 2]", f.Error())

	f = ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatSlice([]string{"1", "2"}).Contains(1)
	})
	require.Equal(t, []string{"expected to contain", "an instance of", "though it did contain", "an instance of", "but was"}, f.FactKeys())

	f = ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatSlice([]int{1, 2}).DoesNotContain(2)
	})
	require.Equal(t, []string{"expected not to contain", "but was"}, f.FactKeys())
}

func TestSliceContainsNoDuplicatesFailure(t *testing.T) {
	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatSlice([]string{"a", "b", "a", "c", "b", "a"}).ContainsNoDuplicates()
	})
	require.Equal(t, `expected not to contain duplicates
but contained: a [3 copies], b [2 copies]
full contents: ["a", "b", "a", "c", "b", "a"]`, f.Error())
}

func TestSliceContainsAnyOf(t *testing.T) {
	expectPass(t, func(b *SubjectBuilder) {
		b.ThatSlice([]int{1, 2}).ContainsAnyOf(5, 2)
		b.ThatSlice([]int{1, 2}).ContainsAnyIn([]int64{9, 1})
	})
	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatSlice([]int{1, 2}).ContainsAnyOf(3, 4)
	})
	require.Equal(t, "expected to contain any of: [3, 4]\nbut was                   : [1, 2]", f.Error())
}

func TestSliceContainsAtLeast(t *testing.T) {
	expectPass(t, func(b *SubjectBuilder) {
		b.ThatSlice([]int{2, 4, 6}).ContainsAtLeast(6, 2)
		b.ThatSlice([]int{2, 4, 6}).ContainsAtLeast(2, 6).InOrder()
		b.ThatSlice([]int{1, 2, 3}).ContainsAtLeastElementsIn([]int{1, 3}).InOrder()
		b.ThatSlice([]int{1, 1, 2}).ContainsAtLeast(1, 1)
		b.ThatSlice([]int{3, 1, 2, 3}).ContainsAtLeast(1, 2, 3).InOrder()
	})

	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatSlice([]int{1, 2}).ContainsAtLeast(1, 3, 3).InOrder()
	})
	require.Equal(t, `missing (2)                 : 3 [2 copies]
---
expected to contain at least: [1, 3, 3]
but was                     : [1, 2]`, f.Error())

	f = ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatSlice([]int{1, 2}).ContainsAtLeast(1, 1)
	})
	require.Equal(t, []string{"missing (1)", "---", "expected to contain at least", "but was"}, f.FactKeys())
}

func TestSliceContainsExactly(t *testing.T) {
	expectPass(t, func(b *SubjectBuilder) {
		b.ThatSlice([]int{}).ContainsExactly()
		b.ThatSlice([]int{2, 4, 6}).ContainsExactly(2, 6, 4)
		b.ThatSlice([]int{2, 4, 6}).ContainsExactly(2, 4, 6).InOrder()
		b.ThatSlice([]int{1, 2, 1}).ContainsExactly(1, 1, 2)
		b.ThatSlice([]int{1, 2, 3}).ContainsExactlyElementsIn([3]int{1, 2, 3}).InOrder()
	})

	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatSlice([]int{1, 2, 2, 4}).ContainsExactly(1, 2, 3, 3)
	})
	require.Equal(t, `missing (2)   : 3 [2 copies]
unexpected (2): 2, 4
---
expected      : [1, 2, 3, 3]
but was       : [1, 2, 2, 4]`, f.Error())

	f = ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatSlice([]int{2, 4, 6}).ContainsExactly(2, 6, 4).InOrder()
	})
	require.Equal(t, "contents match, but order was wrong\nexpected: [2, 6, 4]\nbut was : [2, 4, 6]", f.Error())

	f = ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatSlice([]int{1, 2}).ContainsExactly()
	})
	require.Equal(t, []string{"unexpected (2)", "---", "expected", "but was"}, f.FactKeys())
}

func TestSliceContainsExactlySingleSliceWarning(t *testing.T) {
	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatSlice([]int{1, 2}).ContainsExactly([]int{1, 2})
	})
	AssertThatFailure(t, f).FactKeys().Contains(warnContainsExactlySingleIterable)
}

func TestSliceContainsNoneOf(t *testing.T) {
	expectPass(t, func(b *SubjectBuilder) {
		b.ThatSlice([]int{1, 2}).ContainsNoneOf(3, 4)
		b.ThatSlice([]int{1, 2}).ContainsNoneIn([]int{})
	})
	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatSlice([]int{1, 2, 3}).ContainsNoneOf(3, 1, 3, 5)
	})
	require.Equal(t, `expected not to contain any of: [3, 1, 3, 5]
but contained                 : 3, 1
full contents                 : [1, 2, 3]`, f.Error())
}

func TestSliceOrder(t *testing.T) {
	expectPass(t, func(b *SubjectBuilder) {
		b.ThatSlice([]int{}).IsInOrder()
		b.ThatSlice([]string{"a", "a", "b"}).IsInOrder()
		b.ThatSlice([]float64{-1, 0.5, 2}).IsInStrictOrder()
		b.ThatSlice([]int{3, 2, 1}).IsInOrderAccordingTo(func(a, b any) bool { return a.(int) > b.(int) })
	})

	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatSlice([]int{1, 2, 2}).IsInStrictOrder()
	})
	require.Equal(t, "expected to be in strict order\nbut contained: 2\nfollowed by  : 2\nfull contents: [1, 2, 2]", f.Error())

	require.Panics(t, func() {
		NewBuilder(ignoreStrategy{}).ThatSlice([]any{1, "a"}).IsInOrder()
	})
}

func TestSliceOrderAccordingTo(t *testing.T) {
	byLength := func(a, b any) bool { return len(a.(string)) < len(b.(string)) }
	expectPass(t, func(b *SubjectBuilder) {
		b.ThatSlice([]string{"a", "b", "cc"}).IsInOrderAccordingTo(byLength)
		b.ThatSlice([]string{"a", "bb", "ccc"}).IsInStrictOrderAccordingTo(byLength)
		b.ThatSlice([]string{}).IsInStrictOrderAccordingTo(byLength)
	})

	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatSlice([]string{"a", "b", "cc"}).IsInStrictOrderAccordingTo(byLength)
	})
	require.Equal(t, `expected to be in strict order
but contained: a
followed by  : b
full contents: ["a", "b", "cc"]`, f.Error())

	f = ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatSlice([]string{"bb", "a"}).IsInOrderAccordingTo(byLength)
	})
	require.Equal(t, []string{"expected to be in order", "but contained", "followed by", "full contents"}, f.FactKeys())
}

func TestDupeCounterContains(t *testing.T) {
	d := newDuplicateCounter() // {}
	require.False(t, d.Contains("a"))
	require.False(t, d.Contains("b"))

	d.Increment("a") // {'a': 1}
	require.True(t, d.Contains("a"))
	require.False(t, d.Contains("b"))

	d.Decrement("a") // {}
	require.False(t, d.Contains("a"))
	require.False(t, d.Contains("b"))
}

func TestDupeCounterLen(t *testing.T) {
	d := newDuplicateCounter()
	require.True(t, d.Empty())
	d.Increment("a")
	require.Equal(t, 1, d.Len())
	d.Increment([]string{"a"})
	require.Equal(t, 2, d.Len())
	d.Increment([]string{"a"})
	require.Equal(t, 2, d.Len())
	require.Equal(t, 3, d.Total())
}

func TestDupeCounterEverything(t *testing.T) {
	d := newDuplicateCounter() // {}
	require.True(t, d.Empty())
	require.Equal(t, ``, d.String())

	d.Increment("a") // {'a': 1}
	require.Equal(t, 1, d.Len())
	require.Equal(t, `a`, d.String())

	d.Increment("a") // {'a': 2}
	require.Equal(t, 1, d.Len())
	require.Equal(t, `a [2 copies]`, d.String())
	require.True(t, d.HasDupes())

	d.Increment("b") // {'a': 2, 'b': 1}
	require.Equal(t, 2, d.Len())
	require.Equal(t, `a [2 copies], b`, d.String())
	require.Equal(t, `a [2 copies]`, d.Dupes())

	d.Decrement("a") // {'a': 1, 'b': 1}
	require.Equal(t, 2, d.Len())
	require.Equal(t, `a, b`, d.String())
	require.False(t, d.HasDupes())

	d.Decrement("a") // {'b': 1}
	require.Equal(t, 1, d.Len())
	require.Equal(t, `b`, d.String())

	d.Increment("a") // {'b': 1, 'a': 1}
	require.Equal(t, 2, d.Len())
	require.Equal(t, `b, a`, d.String())

	require.False(t, d.Decrement("c"))
	require.Equal(t, `b, a`, d.String())
}

func TestDupeCounterNumbers(t *testing.T) {
	d := newDuplicateCounter(1, int64(1), uint8(1), 2.0)
	require.Equal(t, `1 [3 copies], 2`, d.String())
	require.True(t, d.Decrement(int32(2)))
}
