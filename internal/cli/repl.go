package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.starlark.net/starlark"

	"github.com/gotruth/truth/repl"
)

// NewReplCommand creates the repl command.
func NewReplCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Try out assertions interactively",
		Long: `Start a read-eval-print loop with the assert module predeclared.

A failed assertion is printed and the session goes on.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Welcome to truthrun. Try: assert.that([1, 2]).contains(3)")
			thread := &starlark.Thread{Name: "REPL", Load: repl.MakeLoad(predeclared())}
			repl.REPL(thread, predeclared())
			return nil
		},
	}
}
