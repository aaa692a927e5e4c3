package truth

import (
	"strings"
	"unicode/utf8"

	"github.com/gotruth/truth/internal/platform"
)

// A Fact is a labeled piece of diagnostic information shown when an
// assertion fails. A fact either has a key and a value ("expected: 3") or
// only a key ("expected to be empty").
type Fact struct {
	Key   string
	Value string

	hasValue bool
}

// NewFact returns a fact with the given key and the failure-message
// rendering of value.
func NewFact(key string, value any) Fact {
	return Fact{Key: key, Value: platform.Format(value), hasValue: true}
}

// SimpleFact returns a fact that has a key but no value.
func SimpleFact(key string) Fact { return Fact{Key: key} }

// HasValue reports whether the fact carries a value.
func (f Fact) HasValue() bool { return f.hasValue }

func (f Fact) String() string {
	if !f.hasValue {
		return f.Key
	}
	return f.Key + ": " + f.Value
}

// MakeMessage renders messages, one per line, followed by facts.
//
// When no value contains a newline, keys are padded so that values line
// up. Otherwise each value is printed on the lines following its key,
// indented by four spaces.
func MakeMessage(messages []string, facts []Fact) string {
	longestKey := 0
	seenNewline := false
	for _, f := range facts {
		if f.hasValue {
			if n := utf8.RuneCountInString(f.Key); n > longestKey {
				longestKey = n
			}
			seenNewline = seenNewline || strings.Contains(f.Value, "\n")
		}
	}

	var b strings.Builder
	for _, m := range messages {
		b.WriteString(m)
		b.WriteByte('\n')
	}
	for _, f := range facts {
		switch {
		case !f.hasValue:
			b.WriteString(f.Key)
		case seenNewline:
			b.WriteString(f.Key)
			b.WriteString(":\n")
			b.WriteString(indent(f.Value))
		default:
			b.WriteString(f.Key)
			b.WriteString(strings.Repeat(" ", longestKey-utf8.RuneCountInString(f.Key)))
			b.WriteString(": ")
			b.WriteString(f.Value)
		}
		b.WriteByte('\n')
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func indent(value string) string {
	return "    " + strings.ReplaceAll(value, "\n", "\n    ")
}
