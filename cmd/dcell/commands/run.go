package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/dcell/internal/core/domain"
)

func (c *CLI) newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [cell files...]",
		Short: "Build and load cells in order in one interpreter session",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			a, err := c.application(cmd)
			if err != nil {
				return err
			}

			results, err := a.Run(cmd.Context(), args)
			out := cmd.OutOrStdout()
			for _, res := range results {
				_, _ = fmt.Fprintf(out, "%s: %s %s [%s]\n",
					res.File, res.Outcome, res.ModuleName, strings.Join(domain.SymbolNames(res.Symbols), " "))
			}
			return err
		},
	}
}
