package truth

import (
	"fmt"
	"math"

	"github.com/gotruth/truth/internal/mathutil"
	"github.com/gotruth/truth/internal/platform"
)

// IntegerSubject asserts on integers, widened to int64.
type IntegerSubject struct {
	*ComparableSubject[int64]
}

// IsWithin starts a tolerance check. It panics if tolerance is negative.
func (s *IntegerSubject) IsWithin(tolerance int64) *IntegerTolerance {
	if tolerance < 0 {
		panic(fmt.Sprintf("truth: tolerance (%d) cannot be negative", tolerance))
	}
	return &IntegerTolerance{s, tolerance, true}
}

// IsNotWithin starts an inverted tolerance check. It panics if tolerance is
// negative.
func (s *IntegerSubject) IsNotWithin(tolerance int64) *IntegerTolerance {
	if tolerance < 0 {
		panic(fmt.Sprintf("truth: tolerance (%d) cannot be negative", tolerance))
	}
	return &IntegerTolerance{s, tolerance, false}
}

// IntegerTolerance completes an IsWithin or IsNotWithin check.
type IntegerTolerance struct {
	s         *IntegerSubject
	tolerance int64
	within    bool
}

func (c *IntegerTolerance) Of(expected int64) {
	c.s.m.h.Helper()
	actual := c.s.actual
	if mathutil.IntWithinTolerance(actual, expected, c.tolerance) == c.within {
		return
	}
	if c.within {
		c.s.FailWithoutActual(
			NewFact("expected", expected),
			NewFact("but was", actual),
			NewFact("outside tolerance", c.tolerance))
		return
	}
	c.s.FailWithoutActual(
		NewFact("expected not to be", expected),
		NewFact("but was", actual),
		NewFact("within tolerance", c.tolerance))
}

// FloatSubject asserts on floating-point values. A float32 keeps its type
// for IsEqualTo and Actual; ordering and tolerance checks widen it to
// float64 and print it at 32-bit precision.
type FloatSubject struct {
	*ComparableSubject[float64]
	bits int
}

func newFloatSubject[F float32 | float64](m *FailureMetadata, actual F, bits int) *FloatSubject {
	wide := float64(actual)
	str := func() string { return platform.FormatFloat(wide, bits) }
	return &FloatSubject{
		ComparableSubject: &ComparableSubject[float64]{newSubject(m, actual, "float", str), wide},
		bits:              bits,
	}
}

func (s *FloatSubject) format(f float64) string { return platform.FormatFloat(f, s.bits) }

// IsWithin starts a tolerance check. It panics if tolerance is NaN,
// negative or infinite.
func (s *FloatSubject) IsWithin(tolerance float64) *FloatTolerance {
	checkTolerance(tolerance)
	return &FloatTolerance{s, tolerance, true}
}

// IsNotWithin starts an inverted tolerance check. Like IsWithin, it never
// succeeds for non-finite values.
func (s *FloatSubject) IsNotWithin(tolerance float64) *FloatTolerance {
	checkTolerance(tolerance)
	return &FloatTolerance{s, tolerance, false}
}

func checkTolerance(tolerance float64) {
	switch {
	case math.IsNaN(tolerance):
		panic("truth: tolerance cannot be NaN")
	case tolerance < 0:
		panic(fmt.Sprintf("truth: tolerance (%g) cannot be negative", tolerance))
	case math.IsInf(tolerance, 1):
		panic("truth: tolerance cannot be +Inf")
	}
}

// FloatTolerance completes an IsWithin or IsNotWithin check.
type FloatTolerance struct {
	s         *FloatSubject
	tolerance float64
	within    bool
}

func (c *FloatTolerance) Of(expected float64) {
	c.s.m.h.Helper()
	actual := c.s.actual
	if c.within {
		if mathutil.EqualWithinTolerance(actual, expected, c.tolerance) {
			return
		}
		c.s.FailWithoutActual(
			NewFact("expected", c.s.format(expected)),
			NewFact("but was", c.s.format(actual)),
			NewFact("outside tolerance", c.s.format(c.tolerance)))
		return
	}
	if mathutil.NotEqualWithinTolerance(actual, expected, c.tolerance) {
		return
	}
	c.s.FailWithoutActual(
		NewFact("expected not to be", c.s.format(expected)),
		NewFact("but was", c.s.format(actual)),
		NewFact("within tolerance", c.s.format(c.tolerance)))
}

// IsZero fails unless actual is 0.0 or -0.0.
func (s *FloatSubject) IsZero() {
	s.m.h.Helper()
	if s.actual != 0 {
		s.FailWithActual(SimpleFact("expected zero"))
	}
}

// IsNonZero fails if actual is 0.0 or -0.0. NaN is non-zero.
func (s *FloatSubject) IsNonZero() {
	s.m.h.Helper()
	if s.actual == 0 {
		s.FailWithActual(SimpleFact("expected not to be zero"))
	}
}

func (s *FloatSubject) IsPositiveInfinity() {
	s.m.h.Helper()
	s.IsEqualTo(math.Inf(1))
}

func (s *FloatSubject) IsNegativeInfinity() {
	s.m.h.Helper()
	s.IsEqualTo(math.Inf(-1))
}

func (s *FloatSubject) IsNaN() {
	s.m.h.Helper()
	s.IsEqualTo(math.NaN())
}

func (s *FloatSubject) IsNotNaN() {
	s.m.h.Helper()
	if math.IsNaN(s.actual) {
		s.FailWithoutActual(SimpleFact("expected not to be NaN"))
	}
}

// IsFinite fails for NaN and infinities.
func (s *FloatSubject) IsFinite() {
	s.m.h.Helper()
	if math.IsNaN(s.actual) || math.IsInf(s.actual, 0) {
		s.FailWithActual(SimpleFact("expected to be finite"))
	}
}
