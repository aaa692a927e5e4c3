package truth

// ExpectFailure runs fn with a builder whose failures are captured rather
// than reported, and returns the single failure fn produced. t fails if fn
// produced no failure or more than one.
//
//	f := truth.ExpectFailure(t, func(whenTesting *truth.SubjectBuilder) {
//		whenTesting.ThatInt(4).IsEqualTo(5)
//	})
//	truth.AssertThatFailure(t, f).FactValue("expected").IsEqualTo("5")
func ExpectFailure(t TestingT, fn func(whenTesting *SubjectBuilder)) *Failure {
	t.Helper()
	capture := &captureStrategy{}
	fn(NewBuilder(capture))
	switch len(capture.failures) {
	case 0:
		t.Errorf("ExpectFailure: expected a failure, but the assertions in the callback passed")
		t.FailNow()
		return nil
	case 1:
		return capture.failures[0]
	default:
		t.Errorf("ExpectFailure: expected exactly one failure, but caught %d:\n%s",
			len(capture.failures), capture.summary())
		t.FailNow()
		return nil
	}
}

// FailureSubject asserts on a captured Failure.
type FailureSubject struct {
	*Subject
	actual *Failure
}

// AssertThatFailure is shorthand for Assert(t).ThatFailure(f).
func AssertThatFailure(t TestingT, f *Failure) *FailureSubject {
	return Assert(t).ThatFailure(f)
}

func (s *FailureSubject) present() bool {
	s.m.h.Helper()
	if s.actual == nil {
		s.FailWithoutActual(SimpleFact("expected a failure"), NewFact("but was", "nil"))
		return false
	}
	return true
}

// FactKeys returns a subject for the keys of the failure's facts, in order.
func (s *FailureSubject) FactKeys() *IterableSubject {
	s.m.h.Helper()
	if !s.present() {
		return s.ignoreCheck().ThatSlice([]string{})
	}
	return s.Check("FactKeys()").ThatSlice(s.actual.FactKeys())
}

// FactValue returns a subject for the value of the first fact with key.
// It fails if there is no such fact.
func (s *FailureSubject) FactValue(key string) *StringSubject {
	s.m.h.Helper()
	if !s.present() {
		return s.ignoreCheck().ThatString("")
	}
	v, ok := s.actual.FactValue(key)
	if !ok {
		s.FailWithoutActual(
			NewFact("expected to contain fact", key),
			NewFact("but contained only", s.actual.FactKeys()))
		return s.ignoreCheck().ThatString("")
	}
	return s.Check("FactValue(%q)", key).ThatString(v)
}

// HasMessageThat returns a subject for the failure's full message.
func (s *FailureSubject) HasMessageThat() *StringSubject {
	s.m.h.Helper()
	if !s.present() {
		return s.ignoreCheck().ThatString("")
	}
	return s.Check("Error()").ThatString(s.actual.Error())
}

// IsComparison fails unless the failure came from comparing two strings.
func (s *FailureSubject) IsComparison() {
	s.m.h.Helper()
	if s.present() && !s.actual.comparison {
		s.FailWithActual(SimpleFact("expected a comparison failure"))
	}
}
