// Copyright 2017 The Bazel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
package chunkedfile

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testReporter struct {
	reported []string
}

func (r *testReporter) Errorf(format string, args ...interface{}) {
	formatted := fmt.Sprintf(format, args...)
	r.reported = append(r.reported, formatted)
}

func (r *testReporter) reset() {
	r.reported = nil
}

func TestChunkedFile(t *testing.T) {
	data := []byte(`assert.that(1).is_equal_to(2) ### "expected: 2"
---
x = 1
assert.that(x).is_equal_to(1)
`)

	reporter := &testReporter{}
	chunks := readBytes("test_file", data, reporter, "\n")
	require.Empty(t, reporter.reported)
	require.Len(t, chunks, 2)

	chunk := chunks[0]
	require.Equal(t, `assert.that(1).is_equal_to(2) ### "expected: 2"`, chunk.Source)
	require.Equal(t, "test_file", chunk.filename)
	require.Len(t, chunk.wantErrs, 1)
	for _, re := range chunk.wantErrs {
		require.Equal(t, "expected: 2", re.String())
	}

	// An expected failure is consumed.
	chunk.GotError(1, "expected: 2\nbut was : 1")
	require.Empty(t, reporter.reported)
	require.Empty(t, chunk.wantErrs)

	// The same failure again is unexpected.
	chunk.GotError(1, "expected: 2")
	require.Equal(t, []string{"\ntest_file:1: unexpected error: expected: 2"}, reporter.reported)

	// Line numbers of later chunks match the original file.
	chunk = chunks[1]
	require.Equal(t, "\n\nx = 1\nassert.that(x).is_equal_to(1)\n", chunk.Source)
	require.Empty(t, chunk.wantErrs)

	reporter.reset()
	chunk.GotError(123, "foobar")
	require.Equal(t, []string{"\ntest_file:123: unexpected error: foobar"}, reporter.reported)
}

func TestMismatchAndMissing(t *testing.T) {
	reporter := &testReporter{}
	chunks := Parse("m.star", []byte("a ### `one`\nb ### \"two\"\n"), reporter)
	require.Empty(t, reporter.reported)
	require.Len(t, chunks, 1)

	chunk := chunks[0]
	chunk.GotError(1, "three")
	require.Equal(t, []string{"\nm.star:1: error \"three\" does not match pattern \"one\""}, reporter.reported)

	reporter.reset()
	chunk.Done()
	require.Equal(t, []string{"\nm.star:2: expected error matching \"two\""}, reporter.reported)
}

func TestBadExpectations(t *testing.T) {
	reporter := &testReporter{}
	chunks := Parse("bad.star", []byte("a ### unquoted\nb ### \"(\"\n"), reporter)
	require.Len(t, chunks, 1)
	require.Empty(t, chunks[0].wantErrs)
	require.Len(t, reporter.reported, 2)
	require.Equal(t, "\nbad.star:1: not a quoted regexp: unquoted", reporter.reported[0])
	require.Contains(t, reporter.reported[1], "bad.star:2: ")
}

func TestWindowsLineEndings(t *testing.T) {
	reporter := &testReporter{}
	chunks := Parse("w.star", []byte("a\r\n---\r\nb ### \"x\"\r\n"), reporter)
	require.Empty(t, reporter.reported)
	require.Len(t, chunks, 2)
	require.Equal(t, "\n\nb ### \"x\"\n", chunks[1].Source)
	chunks[1].GotError(3, "x")
	chunks[1].Done()
	require.Empty(t, reporter.reported)
}

func TestRead(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "read.star")
	require.NoError(t, os.WriteFile(filename, []byte("a\n---\nb\n"), 0o644))

	reporter := &testReporter{}
	require.Len(t, Read(filename, reporter), 2)
	require.Empty(t, reporter.reported)

	require.Nil(t, Read(filepath.Join(t.TempDir(), "missing.star"), reporter))
	require.Len(t, reporter.reported, 1)
}
