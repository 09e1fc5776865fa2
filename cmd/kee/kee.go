package kee

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/keetool/kee/internal/awsconfig"
	"github.com/keetool/kee/internal/config"
	clientKee "github.com/keetool/kee/internal/kee"
	"github.com/keetool/kee/internal/registry"
	"github.com/keetool/kee/utils/common"
	generalutils "github.com/keetool/kee/utils/general"
	promptutils "github.com/keetool/kee/utils/prompt"
)

type KeeDependencies struct {
	Client         clientKee.KeeClient
	GeneralManager generalutils.GeneralUtilsInterface
	AWSBinary      string
}

// NewDefaultDependencies wires the production client: real filesystem, real
// subprocess executor, promptui prompts, and the session environment read
// once from the current process.
func NewDefaultDependencies() (KeeDependencies, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return KeeDependencies{}, fmt.Errorf("failed to get user home directory: %w", err)
	}

	fs := afero.NewOsFs()
	settings, err := config.Load(fs, homeDir)
	if err != nil {
		return KeeDependencies{}, err
	}

	environ := os.Environ()
	client := clientKee.NewKeeClient(
		registry.NewStore(fs, homeDir),
		awsconfig.NewManager(fs, homeDir),
		&common.RealCommandExecutor{},
		promptutils.NewPrompt(),
		settings,
		clientKee.SessionEnvFromEnviron(environ),
		environ,
	)

	return KeeDependencies{
		Client:         client,
		GeneralManager: generalutils.NewGeneralUtilsManager(),
		AWSBinary:      settings.AWSBinary,
	}, nil
}

// NewKeeCommands returns the account subcommands in the order they appear in
// the help output.
func NewKeeCommands(deps KeeDependencies) []*cobra.Command {
	return []*cobra.Command{
		AddCmd(deps),
		UseCmd(deps),
		ListCmd(deps),
		CurrentCmd(deps),
		RemoveCmd(deps),
	}
}

// requireAWSCLI is the PreRunE for commands that spawn the external CLI.
func requireAWSCLI(deps KeeDependencies) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if err := deps.GeneralManager.CheckAWSCLI(deps.AWSBinary); err != nil {
			cmd.Println("Please install AWS CLI first: https://docs.aws.amazon.com/cli/latest/userguide/getting-started-install.html")
			return err
		}
		return nil
	}
}
