package truth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(file, []byte("hi"), 0o644))
	missing := filepath.Join(dir, "missing")

	expectPass(t, func(b *SubjectBuilder) {
		b.ThatPath(dir).Exists()
		b.ThatPath(dir).IsDirectory()
		b.ThatPath(file).IsRegularFile()
		b.ThatPath(file).HasFileName("notes.txt")
		b.ThatPath(file).HasExtension(".txt")
		b.ThatPath(missing).DoesNotExist()
		b.ThatPath(file).IsAbsolute()
		b.ThatPath("a/b").IsRelative()
	})

	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatPath(missing).Exists()
	})
	require.Equal(t, []string{"expected to exist", "stat failed", "but was"}, f.FactKeys())

	f = ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatPath(file).IsDirectory()
	})
	require.Equal(t, []string{"expected to be a directory", "file mode", "but was"}, f.FactKeys())
	v, _ := f.FactValue("file mode")
	require.True(t, v[0] == '-', v)

	f = ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatPath(dir).IsRegularFile()
	})
	v, _ = f.FactValue("file mode")
	require.True(t, v[0] == 'd', v)

	f = ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatPath(file).DoesNotExist()
	})
	require.Equal(t, []string{"expected not to exist", "but was"}, f.FactKeys())

	f = ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatPath("a/b").IsAbsolute()
	})
	require.Equal(t, "expected to be an absolute path\nbut was: a/b", f.Error())
}

func TestPathNameFailures(t *testing.T) {
	report := "build/report.html"
	f := ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatPath(report).HasExtension(".txt")
	})
	require.Equal(t, `value of  : filepath.Ext(report)
expected  : .txt
but was   : .html
report was: build/report.html`, f.Error())

	noInference(t)
	f = ExpectFailure(t, func(whenTesting *SubjectBuilder) {
		whenTesting.ThatPath(report).HasFileName("index.html")
	})
	v, _ := f.FactValue("value of")
	require.Equal(t, "filepath.Base(path)", v)
}
