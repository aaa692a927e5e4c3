package truth

import (
	"cmp"

	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"

	"github.com/gotruth/truth/internal/platform"
)

// A SubjectBuilder creates subjects that share a failure strategy,
// messages and description.
type SubjectBuilder struct {
	m *FailureMetadata
}

// Assert returns a builder whose failures are reported to t and stop the
// test immediately.
func Assert(t TestingT) *SubjectBuilder {
	return &SubjectBuilder{newMetadata(testStrategy{t: t, fatal: true}, t)}
}

// Expect returns a builder whose failures are reported to t while the test
// keeps running.
func Expect(t TestingT) *SubjectBuilder {
	return &SubjectBuilder{newMetadata(testStrategy{t: t}, t)}
}

// NewBuilder returns a builder that hands failures to strategy.
func NewBuilder(strategy FailureStrategy) *SubjectBuilder {
	h, _ := strategy.(helper)
	return &SubjectBuilder{newMetadata(strategy, h)}
}

// AssertThat is shorthand for Assert(t).That(actual).
func AssertThat(t TestingT, actual any) *Subject { return Assert(t).That(actual) }

// ExpectThat is shorthand for Expect(t).That(actual).
func ExpectThat(t TestingT, actual any) *Subject { return Expect(t).That(actual) }

// AssertWithMessage is shorthand for Assert(t).WithMessage(format, args...).
func AssertWithMessage(t TestingT, format string, args ...any) *SubjectBuilder {
	return Assert(t).WithMessage(format, args...)
}

// SetLogger installs the logger used for diagnostics such as failed source
// inference. Passing nil restores the default no-op logger.
func SetLogger(l *zap.Logger) { platform.SetLogger(l) }

// Metadata returns the builder's metadata, for use by custom subject
// factories.
func (b *SubjectBuilder) Metadata() *FailureMetadata { return b.m }

// WithMessage returns a builder whose failures start with the given
// message. Only %s placeholders are substituted; extra arguments are
// appended in brackets. Calls accumulate.
func (b *SubjectBuilder) WithMessage(format string, args ...any) *SubjectBuilder {
	return &SubjectBuilder{b.m.withMessage(platform.LenientFormat(format, args...))}
}

// Named returns a builder whose subjects are described as name instead of
// by the expression found in the source.
func (b *SubjectBuilder) Named(name string) *SubjectBuilder {
	return &SubjectBuilder{b.m.withDescription(name)}
}

func (b *SubjectBuilder) That(actual any) *Subject {
	return newSubject(b.m, actual, "value", nil)
}

func (b *SubjectBuilder) ThatBool(actual bool) *BoolSubject {
	return &BoolSubject{newSubject(b.m, actual, "bool", nil), actual}
}

func (b *SubjectBuilder) ThatString(actual string) *StringSubject {
	return &StringSubject{newComparable(b.m, actual, "string", nil)}
}

func (b *SubjectBuilder) ThatInt(actual int64) *IntegerSubject {
	return &IntegerSubject{newComparable(b.m, actual, "int", nil)}
}

func (b *SubjectBuilder) ThatFloat(actual float64) *FloatSubject {
	return newFloatSubject(b.m, actual, 64)
}

func (b *SubjectBuilder) ThatFloat32(actual float32) *FloatSubject {
	return newFloatSubject(b.m, actual, 32)
}

// ThatSlice returns a subject for a slice or array. It panics if actual
// is neither nil nor a slice or array.
func (b *SubjectBuilder) ThatSlice(actual any) *IterableSubject {
	return newIterableSubject(b.m, actual, "slice")
}

// ThatMap returns a subject for a map. It panics if actual is neither nil
// nor a map.
func (b *SubjectBuilder) ThatMap(actual any) *MapSubject {
	return newMapSubject(b.m, actual)
}

func (b *SubjectBuilder) ThatError(actual error) *ErrorSubject {
	return &ErrorSubject{newSubject(b.m, actual, "err", nil), actual}
}

// ThatPath returns a subject for a file system path.
func (b *SubjectBuilder) ThatPath(actual string) *PathSubject {
	return &PathSubject{newSubject(b.m, actual, "path", nil), actual}
}

func (b *SubjectBuilder) ThatProto(actual proto.Message) *ProtoSubject {
	return &ProtoSubject{newSubject(b.m, actual, "message", nil), actual}
}

// ThatFailure returns a subject for a failure captured by ExpectFailure.
func (b *SubjectBuilder) ThatFailure(actual *Failure) *FailureSubject {
	return &FailureSubject{newSubject(b.m, actual, "failure", nil), actual}
}

// ThatComparable returns a subject for any ordered value.
func ThatComparable[T cmp.Ordered](b *SubjectBuilder, actual T) *ComparableSubject[T] {
	return newComparable(b.m, actual, "value", nil)
}

// A Factory creates a custom subject for an actual value.
type Factory[S, A any] func(m *FailureMetadata, actual A) S

// About returns the subject that factory creates for actual, wired to the
// builder's failure strategy and messages.
func About[S, A any](b *SubjectBuilder, factory Factory[S, A], actual A) S {
	return factory(b.m, actual)
}
