package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <cell file>",
		Short: "Show where a cell's module lives and whether it is already built",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.application(cmd)
			if err != nil {
				return err
			}

			plan, err := a.Inspect(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "fingerprint: %s\n", plan.Fingerprint)
			_, _ = fmt.Fprintf(out, "module:      %s\n", plan.ModuleName)
			_, _ = fmt.Fprintf(out, "build dir:   %s\n", plan.BuildDir)
			_, _ = fmt.Fprintf(out, "artifact:    %s\n", plan.ArtifactPath)
			_, _ = fmt.Fprintf(out, "cached:      %t\n", plan.Cached)
			_, _ = fmt.Fprintf(out, "python:      %s (%s)\n", plan.Interpreter.Version(), plan.Interpreter.Executable)
			return nil
		},
	}
}
