package kee

import (
	"strings"

	"github.com/fatih/color"
	"github.com/keetool/kee/internal/config"
	"github.com/keetool/kee/utils/common"
	promptutils "github.com/keetool/kee/utils/prompt"
)

// hlt renders user-facing names and commands in bold white.
var hlt = color.New(color.FgWhite, color.Bold).SprintFunc()

// Banner is the kee ASCII art shown on the root help and when a sub-shell
// starts.
const Banner = `
    ██╗  ██╗███████╗███████╗
    ██║ ██╔╝██╔════╝██╔════╝
    █████╔╝ █████╗  █████╗
    ██╔═██╗ ██╔══╝  ██╔══╝
    ██║  ██╗███████╗███████╗
    ╚═╝  ╚═╝╚══════╝╚══════╝

    AWS CLI profile manager`

type RealKeeClient struct {
	Registry  RegistryStore
	AWSConfig ConfigFileManager
	Executor  common.CommandExecutor
	Prompter  promptutils.Prompter
	Settings  *config.Settings
	Session   SessionEnv
	Environ   []string
}

func NewKeeClient(
	registry RegistryStore,
	awsConfig ConfigFileManager,
	executor common.CommandExecutor,
	prompter promptutils.Prompter,
	settings *config.Settings,
	session SessionEnv,
	environ []string,
) *RealKeeClient {
	return &RealKeeClient{
		Registry:  registry,
		AWSConfig: awsConfig,
		Executor:  executor,
		Prompter:  prompter,
		Settings:  settings,
		Session:   session,
		Environ:   environ,
	}
}

// setEnv replaces key in an os.Environ()-style slice, appending when absent.
func setEnv(environ []string, key, value string) []string {
	prefix := key + "="
	for i, entry := range environ {
		if strings.HasPrefix(entry, prefix) {
			environ[i] = prefix + value
			return environ
		}
	}
	return append(environ, prefix+value)
}

// getEnv reads key from an os.Environ()-style slice.
func getEnv(environ []string, key string) (string, bool) {
	prefix := key + "="
	for _, entry := range environ {
		if strings.HasPrefix(entry, prefix) {
			return entry[len(prefix):], true
		}
	}
	return "", false
}
