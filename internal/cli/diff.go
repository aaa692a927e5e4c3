package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gotruth/truth"
)

// NewDiffCommand creates the diff command.
func NewDiffCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <expected> <actual>",
		Short: "Show how truth reports two differing texts",
		Long: `Print the facts a failed string equality assertion reports for the
contents of two files: a unified diff when it is shorter than the texts,
and the texts themselves otherwise.

Exit codes:
  0 - The files are identical
  1 - The files differ
  2 - Command error`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return diffFiles(rootOpts, args[0], args[1], cmd.OutOrStdout())
		},
	}
}

func diffFiles(opts *RootOptions, expectedPath, actualPath string, w io.Writer) error {
	expected, err := os.ReadFile(expectedPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot read expected", err)
	}
	actual, err := os.ReadFile(actualPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot read actual", err)
	}
	if string(expected) == string(actual) {
		return nil
	}

	facts := truth.MakeDiff(string(expected), string(actual))
	if facts == nil {
		opts.logger.Debug("diff longer than inputs", zap.String("expected", expectedPath), zap.String("actual", actualPath))
		facts = []truth.Fact{
			truth.NewFact("expected", string(expected)),
			truth.NewFact("but was", string(actual)),
		}
	}

	p := newPainter(opts.config.Color, w)
	for _, line := range strings.Split(truth.MakeMessage(nil, facts), "\n") {
		switch {
		case strings.HasPrefix(line, "    -"):
			line = p.fail(line)
		case strings.HasPrefix(line, "    +"):
			line = p.pass(line)
		}
		fmt.Fprintln(w, line)
	}
	return NewExitError(ExitFailure, "files differ")
}
