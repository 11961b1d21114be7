// Package commands implements the command line interface for rscript.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/rscript/internal/app"
	"go.trai.ch/rscript/internal/build"
	"go.trai.ch/rscript/internal/core/ports"
)

// CLI represents the command line interface for rscript.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
	opts    app.RunOptions
	verbose bool
	code    int
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) (int, error)
}

// New creates a new CLI instance with the given app. The logger, if any,
// is switched to verbose output by --verbose.
func New(a Application, log ports.Logger) *CLI {
	c := &CLI{app: a, logger: log}

	rootCmd := &cobra.Command{
		Use:   "rscript [flags] <script> [args...]",
		Short: "Compile and run Rust scripts and expressions",
		Long: "rscript wraps a Rust script or expression in a Cargo package, builds it\n" +
			"when the cached binary is stale, and runs it with the given arguments.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.run,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	// Everything after the script belongs to the script.
	rootCmd.Flags().SetInterspersed(false)

	c.rootCmd = rootCmd
	c.bindFlags()

	return c
}

func (c *CLI) bindFlags() {
	f := c.rootCmd.Flags()
	o := &c.opts

	f.BoolVarP(&o.Expr, "expr", "e", false, "Evaluate an expression instead of a script file")
	f.StringVarP(&o.Template, "template", "t", "", "Wrap the expression in the named template")
	f.BoolVarP(&o.Loop, "loop", "l", false, "Run the script as a closure once for each line of stdin")
	f.BoolVar(&o.Count, "count", false, "Pass the line number to the loop closure as a second argument")
	f.StringArrayVarP(&o.UnstableFeatures, "unstable-feature", "u", nil, "Add a #![feature] declaration to the crate")
	f.StringVar(&o.PkgPath, "pkg-path", "", "Write the package to this directory instead of the cache")
	f.BoolVar(&o.GenPkgOnly, "gen-pkg-only", false, "Generate the Cargo package and print its path without building")
	f.BoolVar(&o.ClearCache, "clear-cache", false, "Remove all cached packages and binaries")
	f.BoolVar(&o.ListTemplates, "list-templates", false, "List the available templates")
	f.BoolVar(&o.Force, "force", false, "Rebuild even if the cached binary is up to date")
	f.BoolVarP(&o.Release, "release", "r", false, "Build with optimizations")
	f.BoolVar(&o.Test, "test", false, "Build and run the script tests")
	f.BoolVar(&o.Bench, "bench", false, "Build and run the script benchmarks")
	f.StringVarP(&o.Toolchain, "toolchain-version", "c", "", "Build with this rustup toolchain, e.g. nightly")
	f.StringSliceVarP(&o.Features, "features", "F", nil, "Cargo features to enable")
	f.BoolVarP(&o.CargoOutput, "cargo-output", "o", false, "Show the output of cargo")
	f.BoolVar(&c.verbose, "verbose", false, "Print diagnostic messages")
}

func (c *CLI) run(cmd *cobra.Command, args []string) error {
	if c.verbose {
		c.setVerbose()
	}

	opts := c.opts
	if len(args) > 0 {
		opts.Script = args[0]
		opts.Args = args[1:]
	} else if !opts.ClearCache && !opts.ListTemplates {
		return cmd.Help()
	}

	code, err := c.app.Run(cmd.Context(), opts)
	c.code = code
	return err
}

func (c *CLI) setVerbose() {
	type verboser interface{ SetVerbose(enable bool) }

	if v, ok := c.logger.(verboser); ok {
		v.SetVerbose(true)
	}
}

// Execute runs the root command with the given context and returns the
// exit code the process should finish with.
func (c *CLI) Execute(ctx context.Context) (int, error) {
	c.rootCmd.SetContext(ctx)
	if err := c.rootCmd.Execute(); err != nil {
		if c.code == 0 {
			c.code = 1
		}
		return c.code, err
	}
	return c.code, nil
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
