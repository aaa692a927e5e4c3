// Package platform isolates the environment-dependent parts of the
// assertion library: reading configuration from the process environment,
// rendering values for failure messages, cleaning call stacks and inferring
// a description of the actual value from the caller's source.
package platform // import "github.com/gotruth/truth/internal/platform"

import (
	"os"
	"regexp"
	"strconv"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
)

// Environment variables consulted by the library.
const (
	EnvDisableInferDescription = "TRUTH_DISABLE_INFER_DESCRIPTION"
	EnvDisableStackCleaning    = "TRUTH_DISABLE_STACK_TRACE_CLEANING"
)

var logger atomic.Pointer[zap.Logger]

func init() { logger.Store(zap.NewNop()) }

// SetLogger installs the logger used for diagnostics. A nil logger
// restores the no-op default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

// Logger returns the current diagnostics logger.
func Logger() *zap.Logger { return logger.Load() }

func envFlag(name string) bool {
	v, ok := os.LookupEnv(name)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v))
	if err != nil {
		Logger().Debug("ignoring malformed boolean environment variable",
			zap.String("name", name), zap.String("value", v))
		return false
	}
	return b
}

// InferDescriptionDisabled reports whether description inference was
// turned off through the environment.
func InferDescriptionDisabled() bool { return envFlag(EnvDisableInferDescription) }

// StackCleaningDisabled reports whether stack cleaning was turned off
// through the environment.
func StackCleaningDisabled() bool { return envFlag(EnvDisableStackCleaning) }

// ContainsMatch reports whether actual contains a match for regex.
func ContainsMatch(actual, regex string) (bool, error) {
	rx, err := regexp.Compile(regex)
	if err != nil {
		return false, err
	}
	return rx.MatchString(actual), nil
}

// LenientFormat substitutes each %s in template with the next argument.
// It never fails: surplus arguments are appended in square brackets and
// surplus placeholders are left as they are.
func LenientFormat(template string, args ...any) string {
	var b strings.Builder
	rest := template
	i := 0
	for i < len(args) {
		at := strings.Index(rest, "%s")
		if at < 0 {
			break
		}
		b.WriteString(rest[:at])
		b.WriteString(Format(args[i]))
		rest = rest[at+2:]
		i++
	}
	b.WriteString(rest)
	if i < len(args) {
		b.WriteString(" [")
		for j, arg := range args[i:] {
			if j != 0 {
				b.WriteString(", ")
			}
			b.WriteString(Format(arg))
		}
		b.WriteByte(']')
	}
	return b.String()
}
