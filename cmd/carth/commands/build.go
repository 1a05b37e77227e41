package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/carth/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build [-- carthage-args...]",
		Short: "Rebuild the already checked-out dependencies",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Run(cmd.Context(), projectDir(cmd), domain.ActionBuild, args, false)
		},
	}
}
