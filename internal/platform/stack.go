package platform

import (
	"runtime"
	"strings"
)

const modulePath = "github.com/gotruth/truth"

// CleanStack returns the frames of the calling goroutine's stack, starting
// skip frames above the caller of CleanStack.
//
// Unless cleaning is disabled through the environment, frames belonging to
// this module (other than its tests) are dropped, and the stack is cut at
// the test runner so that only the user's frames remain.
func CleanStack(skip int) []runtime.Frame {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(skip+2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	clean := !StackCleaningDisabled()

	var out []runtime.Frame
	for {
		f, more := frames.Next()
		if clean {
			if isRunnerFrame(f) {
				break
			}
			if !isLibraryFrame(f) {
				out = append(out, f)
			}
		} else {
			out = append(out, f)
		}
		if !more {
			break
		}
	}
	return out
}

func isLibraryFrame(f runtime.Frame) bool {
	if strings.HasSuffix(f.File, "_test.go") {
		return false
	}
	fn := f.Function
	return strings.HasPrefix(fn, modulePath+".") || strings.HasPrefix(fn, modulePath+"/")
}

func isRunnerFrame(f runtime.Frame) bool {
	switch f.Function {
	case "testing.tRunner", "testing.runExample", "testing.runFuzzing",
		"runtime.goexit", "runtime.main":
		return true
	}
	return false
}
