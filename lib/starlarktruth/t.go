package starlarktruth

import (
	"fmt"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/gotruth/truth"
)

// T is the value of assert.that(target). Its attributes are the
// assertions that apply to target.
type T struct {
	// Target in assert.that(target)
	actual starlark.Value

	// pos is where assert.that was called.
	pos syntax.Position

	// Readable optional prefix with .named(name)
	name string

	// ordered is what .in_order() checks, set by the contains_* methods
	// that support it.
	ordered truth.Ordered

	// tolerance is set by .is_within() and .is_not_within() until .of().
	tolerance *tolerance

	// failure is the first failure reported by the current assertion.
	failure *truth.Failure
}

type tolerance struct {
	within bool
	value  starlark.Value
}

// builder starts a Go assertion whose failures are captured on t.
func (t *T) builder() *truth.SubjectBuilder {
	b := truth.NewBuilder(truth.FailureStrategyFunc(t.record))
	if t.name != "" {
		b = b.Named(t.name)
	}
	return b
}

func (t *T) record(f *truth.Failure) {
	if t.failure == nil {
		t.failure = f
	}
}

func (t *T) result() error {
	f := t.failure
	t.failure = nil
	if f == nil {
		return nil
	}
	return &AssertionError{Pos: t.pos, Failure: f}
}

// run performs assert and returns its failure, if any.
func (t *T) run(assert func(b *truth.SubjectBuilder)) (starlark.Value, error) {
	t.failure = nil
	assert(t.builder())
	if err := t.result(); err != nil {
		return nil, err
	}
	return starlark.None, nil
}

// fail performs an assertion already known to fail. When the library
// accepts the Go values anyway, facts are reported with the actual value.
func (t *T) fail(assert func(b *truth.SubjectBuilder), facts ...truth.Fact) (starlark.Value, error) {
	t.failure = nil
	b := t.builder()
	assert(b)
	if t.failure == nil {
		truth.NewSubject(b.Metadata(), toGo(t.actual)).FailWithActual(facts...)
	}
	return nil, t.result()
}

// subject returns a generic subject for the actual value.
func (t *T) subject(b *truth.SubjectBuilder) *truth.Subject {
	return b.That(toGo(t.actual))
}

var (
	_ starlark.Value    = (*T)(nil)
	_ starlark.HasAttrs = (*T)(nil)
)

func (t *T) String() string        { return fmt.Sprintf("%s.that(%s)", Default, t.actual) }
func (t *T) Type() string          { return "assert.that" }
func (t *T) Freeze()               { t.actual.Freeze() }
func (t *T) Truth() starlark.Bool  { return true }
func (t *T) Hash() (uint32, error) { return 0, fmt.Errorf("unhashable type: %s", t.Type()) }

func (t *T) Attr(name string) (starlark.Value, error) { return builtinAttr(t, name) }
func (t *T) AttrNames() []string                      { return attrNames }
