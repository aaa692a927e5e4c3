package truth

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pmezard/go-difflib/difflib"
)

const (
	diffContext = 3

	// Characters of common prefix or suffix kept around a difference.
	elideContext = 20
	// Minimum number of characters worth eliding.
	elideWorthHiding = 60
)

var lineBreak = regexp.MustCompile(`\r?\n`)

// MakeDiff returns facts describing a unified line diff between expected
// and actual. It returns nil when the diff would be longer than both
// strings, in which case printing them whole is clearer.
func MakeDiff(expected, actual string) []Fact {
	a := lineBreak.Split(expected, -1)
	b := lineBreak.Split(actual, -1)
	groups := difflib.NewMatcher(a, b).GetGroupedOpCodes(diffContext)
	if len(groups) == 0 {
		return []Fact{SimpleFact("(line contents match, but line-break characters differ)")}
	}
	d := unifiedDiff(a, b, groups)
	n := utf8.RuneCountInString(d)
	if n > utf8.RuneCountInString(expected) && n > utf8.RuneCountInString(actual) {
		return nil
	}
	return []Fact{NewFact("diff (-expected +actual)", d)}
}

func unifiedDiff(a, b []string, groups [][]difflib.OpCode) string {
	var lines []string
	for _, group := range groups {
		first, last := group[0], group[len(group)-1]
		lines = append(lines, fmt.Sprintf("@@ -%s +%s @@",
			hunkRange(first.I1, last.I2), hunkRange(first.J1, last.J2)))
		for _, op := range group {
			switch op.Tag {
			case 'e':
				lines = appendPrefixed(lines, " ", a[op.I1:op.I2])
			case 'd':
				lines = appendPrefixed(lines, "-", a[op.I1:op.I2])
			case 'i':
				lines = appendPrefixed(lines, "+", b[op.J1:op.J2])
			case 'r':
				lines = appendPrefixed(lines, "-", a[op.I1:op.I2])
				lines = appendPrefixed(lines, "+", b[op.J1:op.J2])
			}
		}
	}
	return strings.Join(lines, "\n")
}

func hunkRange(from, to int) string {
	switch n := to - from; n {
	case 0:
		return fmt.Sprintf("%d,0", from)
	case 1:
		return fmt.Sprint(from + 1)
	default:
		return fmt.Sprintf("%d,%d", from+1, n)
	}
}

func appendPrefixed(lines []string, prefix string, src []string) []string {
	for _, l := range src {
		lines = append(lines, prefix+l)
	}
	return lines
}

// comparisonFacts describes two unequal strings: as a diff when that is
// shorter, with long common affixes elided when those dominate, or else
// side by side.
func comparisonFacts(expected, actual string) []Fact {
	if facts := MakeDiff(expected, actual); facts != nil {
		return facts
	}
	if facts := elideCommonAffixes(expected, actual); facts != nil {
		return facts
	}
	return []Fact{NewFact("expected", expected), NewFact("but was", actual)}
}

func elideCommonAffixes(expected, actual string) []Fact {
	e, a := []rune(expected), []rune(actual)
	originalLen := len(e)

	prefix := max(0, commonPrefix(e, a)-elideContext)
	if prefix > 3 {
		e = append([]rune("…"), e[prefix:]...)
		a = append([]rune("…"), a[prefix:]...)
	}
	suffix := max(0, commonSuffix(e, a)-elideContext)
	if suffix > 3 {
		e = append(e[:len(e)-suffix:len(e)-suffix], '…')
		a = append(a[:len(a)-suffix:len(a)-suffix], '…')
	}
	if originalLen-len(e) < elideWorthHiding {
		return nil
	}
	return []Fact{NewFact("expected", string(e)), NewFact("but was", string(a))}
}

func commonPrefix(a, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

func commonSuffix(a, b []rune) int {
	n := 0
	for n < len(a) && n < len(b) && a[len(a)-1-n] == b[len(b)-1-n] {
		n++
	}
	return n
}
