// Package main is the entry point for rscript.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/rscript/cmd/rscript/commands"
	"go.trai.ch/rscript/internal/app"
	"go.trai.ch/rscript/internal/core/domain"
	_ "go.trai.ch/rscript/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, provideComponents))
}

func provideComponents(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	return c, func() {}, err
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	// 2. Interface - CLI
	cli := commands.New(components.App, components.Logger)
	cli.SetArgs(args)
	cli.SetOutput(os.Stdout, stderr)

	// 3. Execution
	code, err := cli.Execute(ctx)
	if err != nil && !errors.Is(err, domain.ErrToolchainFailed) {
		// cargo has already reported its own failure
		components.Logger.Error(err)
	}
	return code
}
