package kee

import (
	"github.com/spf13/cobra"
)

func RemoveCmd(deps KeeDependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <account_name>",
		Short: "Remove an account configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, err := deps.Client.RemoveAccount(args[0])
			return err
		},
	}
}
