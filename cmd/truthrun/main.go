// The truthrun command runs Starlark assertion scripts, starts an
// assertion REPL, and shows the diffs truth reports for texts.
package main

import (
	"fmt"
	"os"

	"github.com/gotruth/truth/internal/cli"
)

func main() {
	os.Exit(doMain())
}

func doMain() int {
	err := cli.NewRootCommand().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "truthrun: %v\n", err)
	}
	return cli.GetExitCode(err)
}
