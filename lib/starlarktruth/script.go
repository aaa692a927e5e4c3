package starlarktruth

import (
	"errors"

	"go.starlark.net/resolve"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/gotruth/truth/internal/chunkedfile"
)

// Reporter is implemented by *testing.T.
type Reporter interface {
	Errorf(format string, args ...interface{})
}

// ExecFile runs an assertion script in thread with assert predeclared
// next to predeclared. It returns the first failure, or an UnresolvedError
// for an assert.that(...) that was never completed.
func ExecFile(thread *starlark.Thread, filename string, src interface{}, predeclared starlark.StringDict) (starlark.StringDict, error) {
	globals, err := starlark.ExecFile(thread, filename, src, withModule(predeclared))
	if err != nil {
		return nil, err
	}
	if err := Close(thread); err != nil {
		return nil, err
	}
	return globals, nil
}

// ExecScript runs each "---" separated chunk of a script in a fresh thread
// and checks the failures against the `### "regexp"` expectations of the
// chunk. Discrepancies are sent to report. It returns the number of chunks.
func ExecScript(filename string, data []byte, report Reporter, predeclared starlark.StringDict) int {
	chunks := chunkedfile.Parse(filename, data, report)
	for i := range chunks {
		chunk := &chunks[i]
		thread := &starlark.Thread{
			Name: filename,
			Load: func(*starlark.Thread, string) (starlark.StringDict, error) {
				return nil, errors.New("load() disabled")
			},
		}

		_, err := starlark.ExecFile(thread, filename, chunk.Source, withModule(predeclared))
		switch err := err.(type) {
		case nil:
			if c, ok := unresolved(thread); ok {
				chunk.GotError(int(c.Pos.Line), UnresolvedError(c.Pos.String()).Error())
			}
		case *starlark.EvalError:
			// The outermost frame in this file is the statement
			// that carries the expectation.
			found := false
			for i := len(err.CallStack) - 1; i >= 0; i-- {
				posn := err.CallStack.At(i).Pos
				if posn.Filename() == filename {
					chunk.GotError(int(posn.Line), err.Error())
					found = true
					break
				}
			}
			if !found {
				report.Errorf("%s", err.Backtrace())
			}
		case syntax.Error:
			chunk.GotError(int(err.Pos.Line), err.Msg)
		case resolve.ErrorList:
			for _, e := range err {
				chunk.GotError(int(e.Pos.Line), e.Msg)
			}
		default:
			report.Errorf("%s", err)
		}
		chunk.Done()
	}
	return len(chunks)
}

func withModule(predeclared starlark.StringDict) starlark.StringDict {
	d := make(starlark.StringDict, len(predeclared)+1)
	for k, v := range predeclared {
		d[k] = v
	}
	if _, ok := d[Default]; !ok {
		NewModule(d)
	}
	return d
}
