package kee

import (
	"github.com/spf13/cobra"
)

func ListCmd(deps KeeDependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configured accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return deps.Client.ListAccounts()
		},
	}
}
