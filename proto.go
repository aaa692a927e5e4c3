package truth

import (
	gocmp "github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/testing/protocmp"
)

// ProtoSubject asserts on protocol buffer messages.
type ProtoSubject struct {
	*Subject
	actual proto.Message
}

// IsEqualTo fails unless proto.Equal reports the messages equal. A failure
// includes a field diff.
func (s *ProtoSubject) IsEqualTo(expected any) {
	s.m.h.Helper()
	e, ok := expected.(proto.Message)
	if !ok || s.actual == nil {
		s.Subject.IsEqualTo(expected)
		return
	}
	if proto.Equal(s.actual, e) {
		return
	}
	s.FailWithActual(
		NewFact("expected", e),
		NewFact("diff (-expected +actual)", gocmp.Diff(e, s.actual, protocmp.Transform())))
}

// IsEqualToDefaultInstance fails unless no field is set.
func (s *ProtoSubject) IsEqualToDefaultInstance() {
	s.m.h.Helper()
	if s.actual == nil || proto.Size(s.actual) != 0 {
		s.FailWithActual(SimpleFact("expected to be a default instance"))
	}
}

func (s *ProtoSubject) IsNotEqualToDefaultInstance() {
	s.m.h.Helper()
	if s.actual != nil && proto.Size(s.actual) == 0 {
		s.FailWithActual(SimpleFact("expected not to be a default instance"))
	}
}

// HasAllRequiredFields fails if a required field is unset anywhere in the
// message.
func (s *ProtoSubject) HasAllRequiredFields() {
	s.m.h.Helper()
	if s.actual == nil {
		s.FailWithActual(SimpleFact("expected a message"))
		return
	}
	if err := proto.CheckInitialized(s.actual); err != nil {
		s.FailWithActual(SimpleFact("expected to have all required fields set"), NewFact("but was missing", err))
	}
}
