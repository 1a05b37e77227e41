package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/carth/internal/core/domain"
)

func (c *CLI) newUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update [-- carthage-args...]",
		Short: "Update dependencies to the latest allowed versions and rebuild",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Run(cmd.Context(), projectDir(cmd), domain.ActionUpdate, args, false)
		},
	}
}
