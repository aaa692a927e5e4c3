package truth

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"

	"github.com/gotruth/truth/internal/platform"
)

// StringSubject asserts on strings.
type StringSubject struct {
	*ComparableSubject[string]
}

// IsEqualTo fails unless actual equals expected. A string mismatch is
// reported as a comparison, with a line diff for multi-line strings.
func (s *StringSubject) IsEqualTo(expected any) {
	s.m.h.Helper()
	e, ok := expected.(string)
	if !ok {
		s.Subject.IsEqualTo(expected)
		return
	}
	if s.actual != e {
		s.failComparison(e, s.actual)
	}
}

// HasLength fails unless the string is n bytes long. It panics if n is
// negative.
func (s *StringSubject) HasLength(n int) {
	s.m.h.Helper()
	if n < 0 {
		panic(fmt.Sprintf("truth: expected length (%d) must be >= 0", n))
	}
	s.checkWrapped("len(%s)").ThatInt(int64(len(s.actual))).IsEqualTo(n)
}

func (s *StringSubject) IsEmpty() {
	s.m.h.Helper()
	if s.actual != "" {
		s.FailWithActual(SimpleFact("expected to be empty"))
	}
}

func (s *StringSubject) IsNotEmpty() {
	s.m.h.Helper()
	if s.actual == "" {
		s.FailWithoutActual(SimpleFact("expected not to be empty"))
	}
}

func (s *StringSubject) Contains(substr string) {
	s.m.h.Helper()
	if !strings.Contains(s.actual, substr) {
		s.FailWithActual(NewFact("expected to contain", substr))
	}
}

func (s *StringSubject) DoesNotContain(substr string) {
	s.m.h.Helper()
	if strings.Contains(s.actual, substr) {
		s.FailWithActual(NewFact("expected not to contain", substr))
	}
}

func (s *StringSubject) StartsWith(prefix string) {
	s.m.h.Helper()
	if !strings.HasPrefix(s.actual, prefix) {
		s.FailWithActual(NewFact("expected to start with", prefix))
	}
}

func (s *StringSubject) EndsWith(suffix string) {
	s.m.h.Helper()
	if !strings.HasSuffix(s.actual, suffix) {
		s.FailWithActual(NewFact("expected to end with", suffix))
	}
}

// Matches fails unless the whole string matches the regular expression.
// It panics if regex does not compile.
func (s *StringSubject) Matches(regex string) {
	s.m.h.Helper()
	if fullMatch(regex).MatchString(s.actual) {
		return
	}
	if regexp.MustCompile(regex).MatchString(s.actual) {
		s.FailWithActual(
			NewFact("expected to match", regex),
			SimpleFact("Did you mean to call ContainsMatch() instead of Matches()?"))
		return
	}
	s.FailWithActual(NewFact("expected to match", regex))
}

func (s *StringSubject) DoesNotMatch(regex string) {
	s.m.h.Helper()
	if fullMatch(regex).MatchString(s.actual) {
		s.FailWithActual(NewFact("expected not to match", regex))
	}
}

// ContainsMatch fails unless some substring matches the regular
// expression. It panics if regex does not compile.
func (s *StringSubject) ContainsMatch(regex string) {
	s.m.h.Helper()
	ok, err := platform.ContainsMatch(s.actual, regex)
	if err != nil {
		panic(err)
	}
	if !ok {
		s.FailWithActual(NewFact("expected to contain a match for", regex))
	}
}

func (s *StringSubject) DoesNotContainMatch(regex string) {
	s.m.h.Helper()
	loc := regexp.MustCompile(regex).FindStringIndex(s.actual)
	if loc == nil {
		return
	}
	s.FailWithoutActual(
		NewFact("expected not to contain a match for", regex),
		NewFact("but contained", s.actual[loc[0]:loc[1]]),
		NewFact("full string", s.actual))
}

// IgnoringCase returns comparisons that treat letters case-insensitively,
// using full Unicode case folding.
func (s *StringSubject) IgnoringCase() *CaseInsensitiveComparison {
	return &CaseInsensitiveComparison{s}
}

// CaseInsensitiveComparison performs case-insensitive string assertions.
type CaseInsensitiveComparison struct {
	s *StringSubject
}

func (c *CaseInsensitiveComparison) IsEqualTo(expected string) {
	c.s.m.h.Helper()
	if fold(c.s.actual) != fold(expected) {
		c.s.FailWithActual(NewFact("expected", expected), SimpleFact("(case is ignored)"))
	}
}

func (c *CaseInsensitiveComparison) IsNotEqualTo(unexpected string) {
	c.s.m.h.Helper()
	if fold(c.s.actual) == fold(unexpected) {
		c.s.FailWithActual(NewFact("expected not to be", unexpected), SimpleFact("(case is ignored)"))
	}
}

func (c *CaseInsensitiveComparison) Contains(substr string) {
	c.s.m.h.Helper()
	if !containsFold(c.s.actual, substr) {
		c.s.FailWithActual(NewFact("expected to contain", substr), SimpleFact("(case is ignored)"))
	}
}

func (c *CaseInsensitiveComparison) DoesNotContain(substr string) {
	c.s.m.h.Helper()
	if containsFold(c.s.actual, substr) {
		c.s.FailWithActual(NewFact("expected not to contain", substr), SimpleFact("(case is ignored)"))
	}
}

// fold applies full Unicode case folding, so "ß" matches "SS".
func fold(s string) string { return cases.Fold().String(s) }

func containsFold(s, substr string) bool {
	return strings.Contains(fold(s), fold(substr))
}

func fullMatch(regex string) *regexp.Regexp {
	return regexp.MustCompile(`^(?:` + regex + `)$`)
}
