package kee

import (
	"context"
)

// CheckCredentials runs a non-interactive identity probe for the profile.
// Non-zero exit, timeout, and launch failure are all treated as "no valid
// credentials"; this never errors.
func (c *RealKeeClient) CheckCredentials(profileName string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), c.Settings.CheckTimeoutDuration())
	defer cancel()

	env := append([]string{}, c.Environ...)
	env = setEnv(env, "AWS_CLI_AUTO_PROMPT", "off")
	env = setEnv(env, "AWS_PAGER", "")

	err := c.Executor.RunSilentCommand(ctx, env, c.Settings.AWSBinary,
		"sts", "get-caller-identity", "--profile", profileName)
	return err == nil
}

// SSOLogin runs the interactive SSO login flow for the profile. Success is
// exit code zero within the login timeout.
func (c *RealKeeClient) SSOLogin(profileName string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), c.Settings.LoginTimeoutDuration())
	defer cancel()

	err := c.Executor.RunInteractiveCommand(ctx, c.Settings.AWSBinary,
		"sso", "login", "--profile", profileName)
	return err == nil
}
