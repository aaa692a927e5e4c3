package truth

import (
	"runtime"
	"strings"

	"go.uber.org/zap"

	"github.com/gotruth/truth/internal/platform"
)

// rootSubject is the first subject created from a builder chain. Derived
// subjects report its value alongside their own.
type rootSubject struct {
	label  string
	actual func() string
}

// FailureMetadata is what a subject knows about the assertion it belongs
// to: where failures go, the messages to print, and how the value under
// test was reached from the value the user passed in.
//
// FailureMetadata is immutable; every refinement returns a copy.
type FailureMetadata struct {
	strategy    FailureStrategy
	h           helper
	messages    []string
	description string
	steps       []func(string) string
	root        *rootSubject
}

func newMetadata(strategy FailureStrategy, h helper) *FailureMetadata {
	if h == nil {
		h = nopHelper{}
	}
	return &FailureMetadata{strategy: strategy, h: h}
}

func (m *FailureMetadata) clone() *FailureMetadata {
	c := *m
	c.messages = append([]string(nil), m.messages...)
	c.steps = append([]func(string) string(nil), m.steps...)
	return &c
}

func (m *FailureMetadata) withMessage(msg string) *FailureMetadata {
	c := m.clone()
	c.messages = append(c.messages, msg)
	return c
}

func (m *FailureMetadata) withDescription(desc string) *FailureMetadata {
	c := m.clone()
	c.description = desc
	return c
}

func (m *FailureMetadata) withStep(step func(string) string) *FailureMetadata {
	c := m.clone()
	c.steps = append(c.steps, step)
	return c
}

func (m *FailureMetadata) ignoring() *FailureMetadata {
	c := m.clone()
	c.strategy = ignoreStrategy{}
	return c
}

// forSubject records s as the root if the chain has none yet.
func (m *FailureMetadata) forSubject(label string, actual func() string) *FailureMetadata {
	if m.root != nil {
		return m
	}
	c := m.clone()
	c.root = &rootSubject{label: label, actual: actual}
	return c
}

// fail decorates facts with the description of the value under test and
// hands the resulting failure to the strategy.
func (m *FailureMetadata) fail(facts []Fact, cmp *comparison, cause error) {
	m.h.Helper()
	stack := platform.CleanStack(1)

	var all []Fact
	label := m.rootLabel()
	var inferred platform.Description
	if m.description == "" && inTestSource(stack) {
		inferred = platform.InferDescription(stack)
		if inferred.Expr != "" {
			label = inferred.Expr
		}
	}
	switch {
	case len(m.steps) > 0:
		desc := label
		for _, step := range m.steps {
			desc = step(desc)
		}
		all = append(all, NewFact("value of", desc))
	case m.description != "":
		all = append(all, NewFact("value of", m.description))
	case inferred.HasCall:
		all = append(all, NewFact("value of", inferred.Expr))
	}
	all = append(all, facts...)
	if len(m.steps) > 0 && m.root != nil {
		all = append(all, NewFact(label+" was", m.root.actual()))
	}

	f := &Failure{
		Messages: append([]string(nil), m.messages...),
		Facts:    all,
		cause:    cause,
		stack:    stack,
	}
	if cmp != nil {
		f.comparison, f.expected, f.actual = true, cmp.expected, cmp.actual
	}
	platform.Logger().Debug("assertion failed",
		zap.Strings("facts", f.FactKeys()), zap.String("location", f.Location()))
	m.strategy.Fail(f)
}

// inTestSource reports whether the assertion was made from a test file.
// Only those have a description inferred from their source.
func inTestSource(stack []runtime.Frame) bool {
	return len(stack) > 0 && strings.HasSuffix(stack[0].File, "_test.go")
}

func (m *FailureMetadata) rootLabel() string {
	if m.description != "" {
		return m.description
	}
	if m.root != nil {
		return m.root.label
	}
	return "value"
}

type comparison struct {
	expected, actual string
}

// accessStep describes reaching a value through a method or field of its
// parent: "opt" becomes "opt.Value()".
func accessStep(access string) func(string) string {
	return func(parent string) string { return parent + "." + access }
}

// wrapStep describes passing the parent to a function: "len(%s)" turns
// "values" into "len(values)".
func wrapStep(template string) func(string) string {
	return func(parent string) string { return strings.Replace(template, "%s", parent, 1) }
}
