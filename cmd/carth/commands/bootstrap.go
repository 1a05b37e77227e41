package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/carth/internal/core/domain"
)

func (c *CLI) newBootstrapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bootstrap [-- carthage-args...]",
		Short: "Check out and build the dependencies pinned in Cartfile.resolved",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			return c.app.Run(cmd.Context(), projectDir(cmd), domain.ActionBootstrap, args, force)
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Run carthage even if the previous bootstrap is up to date")
	return cmd
}
