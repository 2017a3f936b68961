package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/stamp/internal/core/domain"
)

func (c *CLI) newRewriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewrite <path>",
		Short: "Print the rewritten form of a single document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modeFlag, err := cmd.Flags().GetString("mode")
			if err != nil {
				return err
			}

			body, err := c.app.Rewrite(cmd.Context(), args[0], domain.ParseRewriteMode(modeFlag))
			if err != nil {
				return err
			}

			_, err = cmd.OutOrStdout().Write(body)
			return err
		},
	}
	cmd.Flags().StringP("mode", "m", "", "Rewrite mode, \"true\" or \"false\" (default behaves like \"true\")")
	return cmd
}
