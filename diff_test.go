package truth

import (
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func document(changed map[int]string) string {
	lines := make([]string, 10)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %02d of a document long enough to diff", i+1)
		if s, ok := changed[i+1]; ok {
			lines[i] = s
		}
	}
	return strings.Join(lines, "\n")
}

func TestMakeDiff(t *testing.T) {
	expected := document(nil)
	actual := document(map[int]string{9: "a different ninth line"})

	facts := MakeDiff(expected, actual)
	require.Len(t, facts, 1)
	require.Equal(t, "diff (-expected +actual)", facts[0].Key)
	require.Equal(t, strings.Join([]string{
		"@@ -6,5 +6,5 @@",
		" line 06 of a document long enough to diff",
		" line 07 of a document long enough to diff",
		" line 08 of a document long enough to diff",
		"-line 09 of a document long enough to diff",
		"+a different ninth line",
		" line 10 of a document long enough to diff",
	}, "\n"), facts[0].Value)
}

func TestMakeDiffTwoHunks(t *testing.T) {
	expected := document(nil)
	actual := document(map[int]string{1: "first", 10: "last"})

	facts := MakeDiff(expected, actual)
	require.Len(t, facts, 1)
	lines := strings.Split(facts[0].Value, "\n")
	require.Equal(t, "@@ -1,4 +1,4 @@", lines[0])
	require.Equal(t, "+first", lines[2])
	require.Contains(t, lines, "@@ -7,4 +7,4 @@")
	require.Equal(t, "+last", lines[len(lines)-1])
}

func TestMakeDiffLineBreaksOnly(t *testing.T) {
	expected := document(nil)
	facts := MakeDiff(expected, strings.ReplaceAll(expected, "\n", "\r\n"))
	require.Equal(t, []Fact{SimpleFact("(line contents match, but line-break characters differ)")}, facts)
}

func TestMakeDiffTooLong(t *testing.T) {
	require.Nil(t, MakeDiff("abc", "abd"))
	require.Nil(t, MakeDiff("a\nb", "a\nc"))

	// The diff leaves out the first line. Thirty ASCII characters there
	// make the diff worth it; ten wide characters of the same byte length
	// do not.
	tail := "\na\nb\nc\nd\ne\n"
	ascii := strings.Repeat("w", 30)
	require.NotNil(t, MakeDiff(ascii+tail+"x", ascii+tail+"y"))
	wide := strings.Repeat("日", 10)
	require.Len(t, wide, 30)
	require.Nil(t, MakeDiff(wide+tail+"x", wide+tail+"y"))
}

func TestComparisonFacts(t *testing.T) {
	require.Equal(t, []Fact{NewFact("expected", "abc"), NewFact("but was", "abd")},
		comparisonFacts("abc", "abd"))

	prefix := strings.Repeat("p", 100)
	suffix := strings.Repeat("s", 100)
	facts := comparisonFacts(prefix+"X"+suffix, prefix+"Y"+suffix)
	require.Equal(t, []Fact{
		NewFact("expected", "…"+strings.Repeat("p", 20)+"X"+strings.Repeat("s", 20)+"…"),
		NewFact("but was", "…"+strings.Repeat("p", 20)+"Y"+strings.Repeat("s", 20)+"…"),
	}, facts)
}

func TestMakeDiffProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("identical text has no line differences", prop.ForAll(
		func(lines []string) bool {
			s := strings.Join(lines, "\n")
			facts := MakeDiff(s, s)
			return len(facts) == 1 && !facts[0].HasValue()
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("a diff is never longer than both inputs", prop.ForAll(
		func(a, b []string) bool {
			e, x := strings.Join(a, "\n"), strings.Join(b, "\n")
			facts := MakeDiff(e, x)
			if facts == nil || !facts[0].HasValue() {
				return true
			}
			n := utf8.RuneCountInString(facts[0].Value)
			return len(facts) == 1 && (n <= utf8.RuneCountInString(e) || n <= utf8.RuneCountInString(x))
		},
		gen.SliceOf(gen.AlphaString()),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
