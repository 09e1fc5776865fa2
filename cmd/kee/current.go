package kee

import (
	"github.com/spf13/cobra"
)

func CurrentCmd(deps KeeDependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "current",
		Short: "Show current active account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return deps.Client.CurrentAccount()
		},
	}
}
