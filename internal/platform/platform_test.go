package platform

import (
	"errors"
	"math"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestLenientFormat(t *testing.T) {
	for _, test := range []struct {
		template string
		args     []any
		want     string
	}{
		{"", nil, ""},
		{"plain", nil, "plain"},
		{"%s", []any{"a"}, "a"},
		{"%s and %s", []any{1, 2}, "1 and 2"},
		{"%s", []any{1, 2, 3}, "1 [2, 3]"},
		{"%s and %s", []any{1}, "1 and %s"},
		{"no placeholder", []any{"x"}, "no placeholder [x]"},
		{"%d stays", []any{7}, "%d stays [7]"},
		{"value %s", []any{nil}, "value nil"},
		{"list %s", []any{[]string{"a", "b"}}, `list ["a", "b"]`},
	} {
		require.Equal(t, test.want, LenientFormat(test.template, test.args...), "template %q", test.template)
	}
}

type point struct {
	X, Y int
}

type stringer struct{}

func (stringer) String() string { return "stringer!" }

func TestFormat(t *testing.T) {
	var nilPtr *point
	var nilErr *myErr
	for _, test := range []struct {
		v    any
		want string
	}{
		{nil, "nil"},
		{"abc", "abc"},
		{42, "42"},
		{int64(-7), "-7"},
		{true, "true"},
		{1.5, "1.5"},
		{float32(0.1), "0.1"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "+Inf"},
		{math.Inf(-1), "-Inf"},
		{[]int{1, 2, 3}, "[1, 2, 3]"},
		{[]string{"a b", "c"}, `["a b", "c"]`},
		{[2]float64{1, 0.25}, "[1, 0.25]"},
		{[]int(nil), "[]"},
		{map[string]int{"b": 2, "a": 1}, `{"a": 1, "b": 2}`},
		{map[string]int(nil), "{}"},
		{errors.New("boom"), "boom"},
		{stringer{}, "stringer!"},
		{nilPtr, "nil"},
		{nilErr, "nil"},
		{(func())(nil), "nil"},
		{func(int) bool { return true }, "func(int) bool"},
	} {
		require.Equal(t, test.want, Format(test.v), "%#v", test.v)
	}
}

func TestFormatStructs(t *testing.T) {
	for _, v := range []any{point{1, 2}, &point{1, 2}} {
		got := Format(v)
		require.Contains(t, got, "X:1")
		require.Contains(t, got, "Y:2")
		require.NotContains(t, got, "0x")
	}
	require.Equal(t, "&{X:1 Y:2}", Format(&point{1, 2}))
	require.Equal(t, "[&{X:1 Y:2}]", Format([]*point{{1, 2}}))
}

type segment struct {
	From, To *point
}

func TestFormatNestedPointers(t *testing.T) {
	got := Format(&segment{&point{1, 2}, nil})
	require.True(t, strings.HasPrefix(got, "&{From:"), got)
	require.Contains(t, got, "X:1")
	require.NotContains(t, got, "0x")
	require.Equal(t, got, Format(&segment{&point{1, 2}, nil}))
}

type myErr struct{}

func (*myErr) Error() string { return "my error" }

func TestFormatProto(t *testing.T) {
	got := Format(wrapperspb.String("hello"))
	require.True(t, strings.HasPrefix(got, "google.protobuf.StringValue{"), got)
	require.Contains(t, got, `"hello"`)

	var nilMsg *wrapperspb.StringValue
	require.Equal(t, "nil", Format(nilMsg))
}

func TestTypeName(t *testing.T) {
	require.Equal(t, "nil", TypeName(nil))
	require.Equal(t, "int", TypeName(3))
	require.Equal(t, "*platform.point", TypeName(&point{}))
}

func TestContainsMatch(t *testing.T) {
	ok, err := ContainsMatch("abcdef", "c.e")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = ContainsMatch("abcdef", "^c")
	require.NoError(t, err)
	require.False(t, ok)

	_, err = ContainsMatch("abc", "(")
	require.Error(t, err)
}

func TestEnvFlags(t *testing.T) {
	t.Setenv(EnvDisableInferDescription, "true")
	require.True(t, InferDescriptionDisabled())
	t.Setenv(EnvDisableInferDescription, "0")
	require.False(t, InferDescriptionDisabled())
	t.Setenv(EnvDisableStackCleaning, "yes please")
	require.False(t, StackCleaningDisabled())
	t.Setenv(EnvDisableStackCleaning, "1")
	require.True(t, StackCleaningDisabled())
}

func TestMalformedFlagIsLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	t.Setenv(EnvDisableInferDescription, "maybe")
	require.False(t, InferDescriptionDisabled())
	require.Equal(t, 1, logs.FilterMessage("ignoring malformed boolean environment variable").Len())
}

func TestCleanStack(t *testing.T) {
	frames := CleanStack(0)
	require.NotEmpty(t, frames)
	require.Equal(t, "github.com/gotruth/truth/internal/platform.TestCleanStack", frames[0].Function)
	for _, f := range frames {
		require.NotEqual(t, "testing.tRunner", f.Function)
	}
}

func TestCleanStackDisabled(t *testing.T) {
	t.Setenv(EnvDisableStackCleaning, "true")
	frames := CleanStack(0)
	var sawRunner bool
	for _, f := range frames {
		if f.Function == "testing.tRunner" {
			sawRunner = true
		}
	}
	require.True(t, sawRunner)
}

func sampleFrame(t *testing.T, line int) []runtime.Frame {
	t.Helper()
	file, err := filepath.Abs(filepath.Join("testdata", "sample.go"))
	require.NoError(t, err)
	return []runtime.Frame{{File: file, Line: line}}
}

func TestInferDescription(t *testing.T) {
	for _, test := range []struct {
		line int
		want Description
	}{
		{6, Description{Expr: "len(values)", HasCall: true}},
		{7, Description{Expr: "opt"}},
		{9, Description{Expr: "values"}},
		{10, Description{Expr: "values"}},
		{11, Description{Expr: "seq(values)", HasCall: true}},
		{12, Description{}},
		{13, Description{}},
		{15, Description{}},
		{16, Description{}},
	} {
		require.Equal(t, test.want, InferDescription(sampleFrame(t, test.line)), "line %d", test.line)
	}
}

func TestInferDescriptionDisabled(t *testing.T) {
	t.Setenv(EnvDisableInferDescription, "true")
	require.Equal(t, Description{}, InferDescription(sampleFrame(t, 6)))
}

func TestInferDescriptionMissingSource(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	frames := []runtime.Frame{{File: filepath.Join(t.TempDir(), "gone.go"), Line: 3}}
	require.Equal(t, Description{}, InferDescription(frames))
	require.Equal(t, 1, logs.FilterMessage("cannot infer description").Len())
}
