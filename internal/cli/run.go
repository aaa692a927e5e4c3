package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.starlark.net/starlark"
	"go.uber.org/zap"

	"github.com/gotruth/truth/lib/starlarktruth"
	"github.com/gotruth/truth/repl"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Expect bool // check ### expectations chunk by chunk
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <file>...",
		Short: "Run Starlark assertion scripts",
		Long: `Run Starlark scripts with the assert module predeclared.

A script passes when all its assertions hold and every assert.that(...)
is completed by an assertion. With --expect, scripts are split into
chunks at "---" lines, each run on its own, and a trailing
### "regexp" comment declares the failure expected on its line.

Exit codes:
  0 - All scripts passed
  1 - One or more scripts failed
  2 - Command error (unreadable files, bad configuration)

Examples:
  truthrun run checks.star
  truthrun run --expect testdata/*.star`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScripts(opts, args, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&opts.Expect, "expect", false, "check ### failure expectations in chunked scripts")

	return cmd
}

func runScripts(opts *RunOptions, filenames []string, w io.Writer) error {
	p := newPainter(opts.config.Color, w)
	failed := 0
	for _, filename := range filenames {
		data, err := os.ReadFile(filename)
		if err != nil {
			return WrapExitError(ExitCommandError, "cannot read script", err)
		}
		opts.logger.Debug("running script", zap.String("file", filename), zap.Bool("expect", opts.Expect))

		problems := runScript(opts, filename, data, w)
		if len(problems) == 0 {
			fmt.Fprintf(w, "%s %s\n", p.pass("PASS"), filename)
			continue
		}
		failed++
		opts.logger.Debug("script failed", zap.String("file", filename), zap.Int("problems", len(problems)))
		fmt.Fprintf(w, "%s %s\n", p.fail("FAIL"), filename)
		for _, msg := range problems {
			fmt.Fprintln(w, indent(strings.TrimPrefix(msg, "\n")))
		}
	}
	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d of %d scripts failed", failed, len(filenames)))
	}
	return nil
}

// runScript returns the problems found in one script.
func runScript(opts *RunOptions, filename string, data []byte, w io.Writer) []string {
	var c collector
	if opts.Expect {
		starlarktruth.ExecScript(filename, data, &c, predeclared())
		return c
	}

	thread := &starlark.Thread{
		Name: "exec " + filename,
		Load: repl.MakeLoad(predeclared()),
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(w, msg)
		},
	}
	if _, err := starlarktruth.ExecFile(thread, filename, data, predeclared()); err != nil {
		var failed *starlarktruth.AssertionError
		if errors.As(err, &failed) {
			c.Errorf("%s: %s", failed.Pos, failed)
		} else if evalErr, ok := err.(*starlark.EvalError); ok {
			c.Errorf("%s", evalErr.Backtrace())
		} else {
			c.Errorf("%s", err)
		}
	}
	return c
}

// collector gathers the discrepancies of a script.
type collector []string

func (c *collector) Errorf(format string, args ...interface{}) {
	*c = append(*c, fmt.Sprintf(format, args...))
}

func indent(s string) string {
	return "    " + strings.ReplaceAll(s, "\n", "\n    ")
}
