// Package main is the entry point for the dcell tool.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/dcell/cmd/dcell/commands"
	"go.trai.ch/dcell/internal/app"
	"go.trai.ch/dcell/internal/core/ports"
	_ "go.trai.ch/dcell/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Components are built lazily, once --config is known
	cleanup := func() {}
	defer func() { cleanup() }()

	cli := commands.New(func(ctx context.Context) (commands.Application, ports.Logger, error) {
		components, done, err := provider(ctx)
		if err != nil {
			return nil, nil, err
		}
		if done != nil {
			cleanup = done
		}
		return components.App, components.Logger, nil
	})
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	// 2. Execution
	if err := cli.Execute(ctx); err != nil {
		if log := cli.Logger(); log != nil {
			log.Error(err)
			return 1
		}
		// Logger is not available if initialization failed
		_, _ = fmt.Fprintf(stderr, "Error: %+v\n", err)
		return 1
	}
	return 0
}
