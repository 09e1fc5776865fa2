package kee

import (
	"strings"

	"github.com/keetool/kee/models"
)

// KeeClient is the account-management surface the commands call into.
// Expected outcomes (unknown account, declined prompt, failed login) come
// back as a false flag with a message already printed; errors are reserved
// for unexpected failures such as an unwritable registry.
type KeeClient interface {
	AddAccount(accountName string) (bool, error)
	UseAccount(accountName string) (bool, error)
	ListAccounts() error
	CurrentAccount() error
	RemoveAccount(accountName string) (bool, error)
	CheckCredentials(profileName string) bool
	SSOLogin(profileName string) bool
}

// RegistryStore persists the account registry.
type RegistryStore interface {
	Load() models.RegistryState
	Save(state models.RegistryState) error
	Path() string
}

// ConfigFileManager maintains the AWS shared config file.
type ConfigFileManager interface {
	Normalize() error
	RemoveProfile(profileName string) error
	ReadProfile(profileName string) (models.AccountRecord, error)
	Path() string
}

// Environment variables marking an active kee session. They exist only in
// the spawned sub-shell's environment, never in the parent's.
const (
	EnvActiveProfile  = "KEE_ACTIVE_PROFILE"
	EnvCurrentAccount = "KEE_CURRENT_ACCOUNT"
	EnvAWSProfile     = "AWS_PROFILE"
)

// SessionEnv is the session state inherited through the environment. It is
// captured once at startup and injected; while a session is active it is the
// sole source of truth, the registry file only reflects the parent's intent.
type SessionEnv struct {
	Active  bool
	Account string
}

// SessionEnvFromEnviron extracts the session markers from an environment in
// the os.Environ() "KEY=value" form.
func SessionEnvFromEnviron(environ []string) SessionEnv {
	var session SessionEnv
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		switch key {
		case EnvActiveProfile:
			session.Active = value != ""
		case EnvCurrentAccount:
			session.Account = value
		}
	}
	return session
}
