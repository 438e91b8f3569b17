// Package commands implements the CLI commands for dcell.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/dcell/internal/adapters/config"
	"go.trai.ch/dcell/internal/app"
	"go.trai.ch/dcell/internal/build"
	"go.trai.ch/dcell/internal/core/ports"
	"go.trai.ch/dcell/internal/engine/pipeline"
)

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, files []string) ([]app.CellResult, error)
	Inspect(ctx context.Context, file string) (pipeline.Plan, error)
	Modules() ([]app.ModuleStatus, error)
	Close() error
}

// Provider builds the application. The settings file chosen with --config is
// available to it through config.PathFromContext.
type Provider func(ctx context.Context) (Application, ports.Logger, error)

// CLI represents the command line interface for dcell.
type CLI struct {
	provider   Provider
	configPath string

	app    Application
	logger ports.Logger

	rootCmd *cobra.Command
}

// New creates a new CLI instance. The application is only built once a command needs it.
func New(provider Provider) *CLI {
	rootCmd := &cobra.Command{
		Use:           "dcell",
		Short:         "Compile inline D cells into Python extension modules",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
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

	c := &CLI{
		provider: provider,
		rootCmd:  rootCmd,
	}

	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", "", "Settings file (default is the user config dir)")

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newInspectCmd())
	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context and closes the application afterwards.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	if c.app != nil {
		err = errors.Join(err, c.app.Close())
	}
	return err
}

// Logger returns the application logger, or nil if the application was never built.
func (c *CLI) Logger() ports.Logger {
	return c.logger
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

func (c *CLI) application(cmd *cobra.Command) (Application, error) {
	if c.app != nil {
		return c.app, nil
	}

	a, log, err := c.provider(config.WithPath(cmd.Context(), c.configPath))
	if err != nil {
		return nil, err
	}
	c.app, c.logger = a, log
	return a, nil
}
