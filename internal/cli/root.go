// Package cli implements the truthrun command line.
package cli

import (
	"github.com/spf13/cobra"
	"go.starlark.net/resolve"
	"go.uber.org/zap"

	"github.com/gotruth/truth"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath string
	Verbose    bool
	Color      string

	Set            bool
	Recursion      bool
	GlobalReassign bool

	config *Config
	logger *zap.Logger
}

// NewRootCommand creates the root command for truthrun.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "truthrun",
		Short: "Run fluent assertions outside of go test",
		Long: `truthrun runs Starlark scripts that make assertions with the
predeclared assert module, offers a REPL to try them out, and prints the
unified diff truth reports for mismatched multi-line strings.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log debug diagnostics")
	cmd.PersistentFlags().StringVar(&opts.Color, "color", "auto", "colour output (auto|always|never)")

	// non-standard dialect flags
	cmd.PersistentFlags().BoolVar(&opts.Set, "set", true, "allow set data type")
	cmd.PersistentFlags().BoolVar(&opts.Recursion, "recursion", false, "allow while statements and recursive functions")
	cmd.PersistentFlags().BoolVar(&opts.GlobalReassign, "globalreassign", false, "allow reassignment of globals, and if/for/while statements at top level")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewReplCommand(opts))
	cmd.AddCommand(NewDiffCommand(opts))

	return cmd
}

// setup merges the configuration file and the flags, then applies them.
func (o *RootOptions) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(o.ConfigPath)
	if err != nil {
		return WrapExitError(ExitCommandError, "bad configuration", err)
	}

	flags := cmd.Flags()
	if flags.Changed("color") || o.ConfigPath == "" {
		cfg.Color = o.Color
	}
	if flags.Changed("set") {
		cfg.Dialect.Set = o.Set
	}
	if flags.Changed("recursion") {
		cfg.Dialect.Recursion = o.Recursion
	}
	if flags.Changed("globalreassign") {
		cfg.Dialect.GlobalReassign = o.GlobalReassign
	}
	if o.Verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.validate(); err != nil {
		return NewExitError(ExitCommandError, err.Error())
	}

	resolve.AllowSet = cfg.Dialect.Set
	resolve.AllowRecursion = cfg.Dialect.Recursion
	resolve.AllowGlobalReassign = cfg.Dialect.GlobalReassign

	logger, err := cfg.Log.Logger()
	if err != nil {
		return WrapExitError(ExitCommandError, "cannot build logger", err)
	}
	truth.SetLogger(logger)

	o.config = cfg
	o.logger = logger
	logger.Debug("configured",
		zap.String("config", o.ConfigPath),
		zap.String("color", cfg.Color),
		zap.Bool("set", cfg.Dialect.Set),
		zap.Bool("recursion", cfg.Dialect.Recursion),
		zap.Bool("globalreassign", cfg.Dialect.GlobalReassign),
	)
	return nil
}
