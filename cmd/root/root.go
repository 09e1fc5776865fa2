package root

import (
	"fmt"

	"github.com/spf13/cobra"

	cmdKee "github.com/keetool/kee/cmd/kee"
	clientKee "github.com/keetool/kee/internal/kee"
)

var RootCmd = &cobra.Command{
	Use:   "kee",
	Short: "AWS CLI profile manager",
	Long: clientKee.Banner + `

A simple tool to manage multiple AWS accounts with SSO and easy account switching.

Examples:
  kee add myaccount          Add a new AWS account
  kee use myaccount          Use an account (starts sub-shell)
  kee list                   List all configured accounts
  kee current                Show current active account
  kee remove myaccount       Remove an account configuration`,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	deps, err := cmdKee.NewDefaultDependencies()
	if err != nil {
		fmt.Printf("Error initializing kee: %v\n", err)
		return
	}

	for _, cmd := range cmdKee.NewKeeCommands(deps) {
		RootCmd.AddCommand(cmd)
	}
}
