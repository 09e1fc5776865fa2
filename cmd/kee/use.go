package kee

import (
	"github.com/spf13/cobra"
)

func UseCmd(deps KeeDependencies) *cobra.Command {
	return &cobra.Command{
		Use:     "use <account_name>",
		Short:   "Use an account (starts sub-shell)",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireAWSCLI(deps),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := deps.Client.UseAccount(args[0])
			return err
		},
	}
}
