package truth

import (
	"os"
	"path/filepath"
)

// PathSubject asserts on a file system path.
type PathSubject struct {
	*Subject
	actual string
}

func (s *PathSubject) Exists() {
	s.m.h.Helper()
	if _, err := os.Stat(s.actual); err != nil {
		s.FailWithActual(SimpleFact("expected to exist"), NewFact("stat failed", err))
	}
}

func (s *PathSubject) DoesNotExist() {
	s.m.h.Helper()
	if _, err := os.Lstat(s.actual); err == nil {
		s.FailWithActual(SimpleFact("expected not to exist"))
	}
}

func (s *PathSubject) IsDirectory() {
	s.m.h.Helper()
	fi, err := os.Stat(s.actual)
	switch {
	case err != nil:
		s.FailWithActual(SimpleFact("expected to be a directory"), NewFact("stat failed", err))
	case !fi.IsDir():
		s.FailWithActual(SimpleFact("expected to be a directory"), NewFact("file mode", fi.Mode().String()))
	}
}

func (s *PathSubject) IsRegularFile() {
	s.m.h.Helper()
	fi, err := os.Stat(s.actual)
	switch {
	case err != nil:
		s.FailWithActual(SimpleFact("expected to be a regular file"), NewFact("stat failed", err))
	case !fi.Mode().IsRegular():
		s.FailWithActual(SimpleFact("expected to be a regular file"), NewFact("file mode", fi.Mode().String()))
	}
}

// HasFileName checks the last element of the path.
func (s *PathSubject) HasFileName(name string) {
	s.m.h.Helper()
	s.checkWrapped("filepath.Base(%s)").ThatString(filepath.Base(s.actual)).IsEqualTo(name)
}

// HasExtension checks the extension, including its leading dot.
func (s *PathSubject) HasExtension(ext string) {
	s.m.h.Helper()
	s.checkWrapped("filepath.Ext(%s)").ThatString(filepath.Ext(s.actual)).IsEqualTo(ext)
}

func (s *PathSubject) IsAbsolute() {
	s.m.h.Helper()
	if !filepath.IsAbs(s.actual) {
		s.FailWithActual(SimpleFact("expected to be an absolute path"))
	}
}

func (s *PathSubject) IsRelative() {
	s.m.h.Helper()
	if filepath.IsAbs(s.actual) {
		s.FailWithActual(SimpleFact("expected to be a relative path"))
	}
}
