package truth

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gotruth/truth/internal/platform"
)

// fakeT records what a failing assertion reports.
type fakeT struct {
	errors  []string
	stopped bool
}

func (f *fakeT) Helper() {}

func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, strings.TrimPrefix(fmt.Sprintf(format, args...), "\n"))
}

func (f *fakeT) FailNow() { f.stopped = true }

// expectPass fails t if any assertion made by fn fails.
func expectPass(t *testing.T, fn func(b *SubjectBuilder)) {
	t.Helper()
	c := &captureStrategy{}
	fn(NewBuilder(c))
	require.Empty(t, c.failures, c.summary())
}

func noInference(t *testing.T) {
	t.Setenv(platform.EnvDisableInferDescription, "true")
}

type point struct {
	X, Y int
}

type celsius int

func TestIsEqualTo(t *testing.T) {
	expectPass(t, func(b *SubjectBuilder) {
		b.That(1).IsEqualTo(1)
		b.That(int8(1)).IsEqualTo(uint64(1))
		b.That(celsius(20)).IsEqualTo(20)
		b.That(2.0).IsEqualTo(2)
		b.That("a").IsEqualTo("a")
		b.That(nil).IsEqualTo(nil)
		b.That((*point)(nil)).IsEqualTo(nil)
		b.That(point{1, 2}).IsEqualTo(point{1, 2})
		b.That(&point{1, 2}).IsEqualTo(&point{1, 2})
		b.That([]int{1, 2}).IsEqualTo([]int{1, 2})
		b.That(map[string]int{"a": 1}).IsEqualTo(map[string]int{"a": 1})
	})

	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.That(4).IsEqualTo(5)
	})
	require.Equal(t, []string{"expected", "but was"}, f.FactKeys())
	require.Equal(t, "expected: 5\nbut was : 4", f.Error())
}

func TestIsEqualToNegativeIntegers(t *testing.T) {
	ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.That(-1).IsEqualTo(uint64(18446744073709551615))
	})
}

func TestIsEqualToSameStringDifferentTypes(t *testing.T) {
	noInference(t)
	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.That(celsius(20)).IsEqualTo("20")
	})
	require.Equal(t, []string{"expected", "an instance of", "but was", "an instance of"}, f.FactKeys())
	require.Equal(t, "expected      : 20\nan instance of: string\nbut was       : 20\nan instance of: truth.celsius", f.Error())
}

func TestIsEqualToStructDiff(t *testing.T) {
	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.That(point{1, 2}).IsEqualTo(point{1, 3})
	})
	require.Equal(t, []string{"expected", "but was", "diff (-expected +actual)"}, f.FactKeys())
	d, _ := f.FactValue("diff (-expected +actual)")
	require.Contains(t, d, "Y:")
}

func TestIsEqualToPointers(t *testing.T) {
	noInference(t)
	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.That(&point{1, 2}).IsEqualTo(&point{1, 3})
	})
	require.Equal(t, []string{"expected", "but was", "diff (-expected +actual)"}, f.FactKeys())
	v, _ := f.FactValue("but was")
	require.Equal(t, "&{X:1 Y:2}", v)
	require.NotContains(t, f.Error(), "0x")
	require.False(t, strings.HasSuffix(f.Error(), "\n"))
	require.False(t, strings.HasSuffix(f.Error(), " "))
	d, _ := f.FactValue("diff (-expected +actual)")
	require.NotEmpty(t, d)
	require.False(t, strings.HasSuffix(d, "\n"))
}

func TestIsEqualToPlainCollectionsHaveNoGoDiff(t *testing.T) {
	noInference(t)
	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.That([]any{int64(1), int64(2)}).IsEqualTo([]any{int64(1)})
	})
	require.Equal(t, "expected: [1]\nbut was : [1, 2]", f.Error())

	f = ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.That(map[string]int{"a": 1}).IsEqualTo(map[string]int{"a": 2})
	})
	require.Equal(t, []string{"expected", "but was"}, f.FactKeys())

	f = ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.That([]point{{1, 2}}).IsEqualTo([]point{{1, 3}})
	})
	require.Equal(t, []string{"expected", "but was", "diff (-expected +actual)"}, f.FactKeys())
}

func TestIsEqualToStrings(t *testing.T) {
	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.That("abc").IsEqualTo("abd")
	})
	expected, actual, ok := f.Comparison()
	require.True(t, ok)
	require.Equal(t, "abd", expected)
	require.Equal(t, "abc", actual)
}

func TestIsNotEqualTo(t *testing.T) {
	expectPass(t, func(b *SubjectBuilder) {
		b.That(1).IsNotEqualTo(2)
		b.That("a").IsNotEqualTo(1)
	})

	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.That(3).IsNotEqualTo(3)
	})
	require.Equal(t, "expected not to be: 3", f.Error())

	f = ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.That(3).IsNotEqualTo(3.0)
	})
	require.Equal(t, []string{"expected not to be"}, f.FactKeys())
}

func TestIsNil(t *testing.T) {
	var err error
	var m map[string]int
	expectPass(t, func(b *SubjectBuilder) {
		b.That(nil).IsNil()
		b.That(err).IsNil()
		b.That(m).IsNil()
		b.That((*point)(nil)).IsNil()
		b.That(0).IsNotNil()
		b.That(&point{}).IsNotNil()
	})

	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.That(0).IsNil()
	})
	require.Equal(t, "expected: nil\nbut was : 0", f.Error())

	f = ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.That(nil).IsNotNil()
	})
	require.Equal(t, "expected not to be nil", f.Error())
}

func TestIsSameInstanceAs(t *testing.T) {
	p := &point{1, 2}
	q := &point{1, 2}
	s := []int{1}
	expectPass(t, func(b *SubjectBuilder) {
		b.That(p).IsSameInstanceAs(p)
		b.That(p).IsNotSameInstanceAs(q)
		b.That(s).IsSameInstanceAs(s)
		b.That(s[:0]).IsNotSameInstanceAs(s)
		b.That(nil).IsSameInstanceAs(nil)
	})

	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.That(p).IsSameInstanceAs(q)
	})
	require.Equal(t, []string{"expected specific instance", "but was"}, f.FactKeys())
	v, _ := f.FactValue("but was")
	require.Equal(t, "(different but equal instance)", v)

	f = ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.That(p).IsNotSameInstanceAs(p)
	})
	require.Equal(t, []string{"expected not to be specific instance", "but was"}, f.FactKeys())
}

func TestIsInstanceOf(t *testing.T) {
	var w io.Writer = &strings.Builder{}
	pathErr := &fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}
	expectPass(t, func(b *SubjectBuilder) {
		b.That(pathErr).IsInstanceOf((*fs.PathError)(nil))
		b.That(w).IsInstanceOf((*io.Writer)(nil))
		b.That(3).IsInstanceOf(0)
		b.That(3).IsNotInstanceOf("")
		b.That(nil).IsNotInstanceOf(0)
	})

	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.That(3).IsInstanceOf("")
	})
	require.Equal(t, "expected instance of: string\nbut was instance of : int\nwith value          : 3", f.Error())

	f = ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.That(nil).IsInstanceOf((*io.Reader)(nil))
	})
	require.Equal(t, "expected instance of: io.Reader\nbut was             : nil", f.Error())

	f = ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.That(3).IsNotInstanceOf(0)
	})
	require.Equal(t, []string{"expected not to be an instance of", "but was"}, f.FactKeys())

	require.Panics(t, func() { NewBuilder(ignoreStrategy{}).That(1).IsInstanceOf(nil) })
}

func TestIsIn(t *testing.T) {
	expectPass(t, func(b *SubjectBuilder) {
		b.That(2).IsIn([]int{1, 2, 3})
		b.That("b").IsAnyOf("a", "b")
		b.That(4).IsNotIn([]int{1, 2, 3})
		b.That("c").IsNoneOf("a", "b")
	})

	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.That(4).IsIn([]int{1, 2, 3})
	})
	require.Equal(t, "expected any of: [1, 2, 3]\nbut was        : 4", f.Error())

	f = ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.That("b").IsNoneOf("a", "b", "c")
	})
	require.Equal(t, `expected not to be any of: ["a", "b", "c"]`+"\nbut was                  : b", f.Error())

	require.Panics(t, func() { NewBuilder(ignoreStrategy{}).That(1).IsIn(1) })
}

func TestFuncEquality(t *testing.T) {
	fn := func() {}
	expectPass(t, func(b *SubjectBuilder) {
		b.That(fn).IsEqualTo(fn)
		b.That(errors.New).IsEqualTo(errors.New)
	})
}
