package kee

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestCheckCredentials(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		client, mocks := newTestClient(t, SessionEnv{})

		var probeEnv []string
		mocks.executor.EXPECT().
			RunSilentCommand(gomock.Any(), gomock.Any(), "aws", "sts", "get-caller-identity", "--profile", "acct").
			DoAndReturn(func(ctx context.Context, env []string, name string, args ...string) error {
				probeEnv = env
				return nil
			})

		assert.True(t, client.CheckCredentials("acct"))
		assert.Contains(t, probeEnv, "AWS_CLI_AUTO_PROMPT=off")
		assert.Contains(t, probeEnv, "AWS_PAGER=")
		assert.Contains(t, probeEnv, "PATH=/usr/bin", "parent environment is preserved")
	})

	t.Run("any failure is not valid", func(t *testing.T) {
		client, mocks := newTestClient(t, SessionEnv{})
		mocks.executor.EXPECT().
			RunSilentCommand(gomock.Any(), gomock.Any(), "aws", "sts", "get-caller-identity", "--profile", "acct").
			Return(errors.New("signal: killed"))

		assert.False(t, client.CheckCredentials("acct"))
	})
}

func TestSSOLogin(t *testing.T) {
	t.Run("exit zero succeeds", func(t *testing.T) {
		client, mocks := newTestClient(t, SessionEnv{})
		mocks.executor.EXPECT().
			RunInteractiveCommand(gomock.Any(), "aws", "sso", "login", "--profile", "acct").
			Return(nil)

		assert.True(t, client.SSOLogin("acct"))
	})

	t.Run("failure or timeout is false", func(t *testing.T) {
		client, mocks := newTestClient(t, SessionEnv{})
		mocks.executor.EXPECT().
			RunInteractiveCommand(gomock.Any(), "aws", "sso", "login", "--profile", "acct").
			Return(context.DeadlineExceeded)

		assert.False(t, client.SSOLogin("acct"))
	})
}
