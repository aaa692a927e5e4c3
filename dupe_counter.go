package truth

import (
	"fmt"
	"strings"

	"github.com/gotruth/truth/internal/platform"
)

var _ fmt.Stringer = (*duplicateCounter)(nil)

// duplicateCounter is an ordered multiset of values, compared with the same
// equality as IsEqualTo.
//
// Counts can never be negative; decrementing an absent value has no effect.
// Insertion order is preserved so that failure messages list values in the
// order the caller gave them.
type duplicateCounter struct {
	entries []counted
	dupes   int
}

type counted struct {
	value any
	count int
}

func newDuplicateCounter(values ...any) *duplicateCounter {
	dc := &duplicateCounter{}
	for _, v := range values {
		dc.Increment(v)
	}
	return dc
}

// HasDupes indicates whether some value appears more than once.
func (dc *duplicateCounter) HasDupes() bool { return dc.dupes != 0 }

func (dc *duplicateCounter) Empty() bool { return len(dc.entries) == 0 }

// Len returns the number of distinct values.
func (dc *duplicateCounter) Len() int { return len(dc.entries) }

// Total returns the number of values, counting duplicates.
func (dc *duplicateCounter) Total() int {
	n := 0
	for _, e := range dc.entries {
		n += e.count
	}
	return n
}

func (dc *duplicateCounter) Contains(v any) bool { return dc.index(v) >= 0 }

func (dc *duplicateCounter) index(v any) int {
	for i, e := range dc.entries {
		if valuesEqual(e.value, v) {
			return i
		}
	}
	return -1
}

// Increment increments a count by 1. Inserts the value if not present.
func (dc *duplicateCounter) Increment(v any) {
	i := dc.index(v)
	if i < 0 {
		dc.entries = append(dc.entries, counted{value: v})
		i = len(dc.entries) - 1
	}
	dc.entries[i].count++
	if dc.entries[i].count == 2 {
		dc.dupes++
	}
}

// Decrement decrements a count by 1, removing the value when it reaches 0.
// It reports whether the value was present.
func (dc *duplicateCounter) Decrement(v any) bool {
	i := dc.index(v)
	if i < 0 {
		return false
	}
	switch dc.entries[i].count {
	case 1:
		dc.entries = append(dc.entries[:i:i], dc.entries[i+1:]...)
	case 2:
		dc.dupes--
		fallthrough
	default:
		dc.entries[i].count--
	}
	return true
}

// String renders the values with their counts. Values occurring once are
// shown bare, e.g. `2, 3 [4 copies], abc`.
func (dc *duplicateCounter) String() string {
	return dc.render(false)
}

// Dupes shows only values whose count is more than 1.
func (dc *duplicateCounter) Dupes() string {
	return dc.render(true)
}

func (dc *duplicateCounter) render(onlyDupes bool) string {
	var b strings.Builder
	first := true
	for _, e := range dc.entries {
		if onlyDupes && e.count == 1 {
			continue
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(platform.Format(e.value))
		if e.count != 1 {
			fmt.Fprintf(&b, " [%d copies]", e.count)
		}
	}
	return b.String()
}
