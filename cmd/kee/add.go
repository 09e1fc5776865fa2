package kee

import (
	"github.com/spf13/cobra"
)

func AddCmd(deps KeeDependencies) *cobra.Command {
	return &cobra.Command{
		Use:     "add <account_name>",
		Short:   "Add a new AWS account",
		Args:    cobra.ExactArgs(1),
		PreRunE: requireAWSCLI(deps),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := deps.Client.AddAccount(args[0])
			return err
		},
	}
}
