package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cache",
		Short: "List the module build directories in the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.application(cmd)
			if err != nil {
				return err
			}

			modules, err := a.Modules()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, m := range modules {
				state := "empty"
				if m.Artifact {
					state = "built"
				}
				_, _ = fmt.Fprintf(out, "%-6s %s\t%s\n", state, m.Name, m.Dir)
			}
			return nil
		},
	}
}
