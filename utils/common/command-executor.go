package common

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"os/signal"
)

type RealCommandExecutor struct{}

func (e *RealCommandExecutor) RunInteractiveCommand(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func (e *RealCommandExecutor) RunSilentCommand(ctx context.Context, env []string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	if env != nil {
		cmd.Env = env
	}
	return cmd.Run()
}

func (e *RealCommandExecutor) RunShell(env []string, shell string) error {
	cmd := exec.Command(shell)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = env

	// Ctrl-C belongs to the sub-shell; the parent just keeps waiting.
	signal.Ignore(os.Interrupt)
	defer signal.Reset(os.Interrupt)

	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// a non-zero shell exit is a normal way to leave a session
		return nil
	}
	return err
}

func (e *RealCommandExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}
