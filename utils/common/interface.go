package common

import (
	"context"
)

// CommandExecutor is the boundary to the external aws CLI and the user's
// shell. Tests swap it for a mock returning canned exit codes instead of
// spawning processes.
type CommandExecutor interface {
	// RunInteractiveCommand runs a command wired to the caller's terminal,
	// bounded by ctx. Used for browser-based SSO flows.
	RunInteractiveCommand(ctx context.Context, name string, args ...string) error
	// RunSilentCommand runs a command with all output discarded, bounded by
	// ctx. env, when non-nil, replaces the child environment. Used for
	// identity probes.
	RunSilentCommand(ctx context.Context, env []string, name string, args ...string) error
	// RunShell starts an interactive shell with the given environment and
	// blocks until it exits. Interrupt signals are swallowed for the
	// duration of the wait.
	RunShell(env []string, shell string) error
	LookPath(file string) (string, error)
}
