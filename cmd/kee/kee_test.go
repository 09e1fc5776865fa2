package kee

import (
	"bytes"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mock_kee "github.com/keetool/kee/tests/mock"
)

func newTestDeps(t *testing.T) (KeeDependencies, *mock_kee.MockKeeClient, *mock_kee.MockGeneralUtilsInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)

	client := mock_kee.NewMockKeeClient(ctrl)
	general := mock_kee.NewMockGeneralUtilsInterface(ctrl)

	return KeeDependencies{
		Client:         client,
		GeneralManager: general,
		AWSBinary:      "aws",
	}, client, general
}

func TestNewKeeCommands(t *testing.T) {
	deps, _, _ := newTestDeps(t)

	commands := NewKeeCommands(deps)
	require.Len(t, commands, 5)

	names := make([]string, len(commands))
	for i, c := range commands {
		names[i] = c.Name()
	}
	assert.Equal(t, []string{"add", "use", "list", "current", "remove"}, names)
}

func TestAddCmd(t *testing.T) {
	t.Run("delegates to client", func(t *testing.T) {
		deps, client, general := newTestDeps(t)
		general.EXPECT().CheckAWSCLI("aws").Return(nil)
		client.EXPECT().AddAccount("myaccount").Return(true, nil)

		cmd := AddCmd(deps)
		require.NoError(t, cmd.PreRunE(cmd, []string{"myaccount"}))
		assert.NoError(t, cmd.RunE(cmd, []string{"myaccount"}))
	})

	t.Run("missing AWS CLI blocks the command", func(t *testing.T) {
		deps, _, general := newTestDeps(t)
		general.EXPECT().CheckAWSCLI("aws").Return(errors.New("AWS CLI not found"))

		cmd := AddCmd(deps)
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&out)

		err := cmd.PreRunE(cmd, []string{"myaccount"})
		assert.Error(t, err)
		assert.Contains(t, out.String(), "Please install AWS CLI first")
		assert.True(t, cmd.SilenceUsage)
	})

	t.Run("requires exactly one argument", func(t *testing.T) {
		deps, _, _ := newTestDeps(t)
		cmd := AddCmd(deps)
		assert.Error(t, cmd.Args(cmd, []string{}))
		assert.Error(t, cmd.Args(cmd, []string{"a", "b"}))
		assert.NoError(t, cmd.Args(cmd, []string{"a"}))
	})
}

func TestUseCmd(t *testing.T) {
	deps, client, general := newTestDeps(t)
	general.EXPECT().CheckAWSCLI("aws").Return(nil)
	client.EXPECT().UseAccount("myaccount").Return(true, nil)

	cmd := UseCmd(deps)
	require.NoError(t, cmd.PreRunE(cmd, []string{"myaccount"}))
	assert.NoError(t, cmd.RunE(cmd, []string{"myaccount"}))
}

func TestUseCmdPropagatesUnexpectedError(t *testing.T) {
	deps, client, _ := newTestDeps(t)
	boom := errors.New("failed to write registry file")
	client.EXPECT().UseAccount("myaccount").Return(false, boom)

	cmd := UseCmd(deps)
	assert.ErrorIs(t, cmd.RunE(cmd, []string{"myaccount"}), boom)
}

func TestListCmd(t *testing.T) {
	deps, client, _ := newTestDeps(t)
	client.EXPECT().ListAccounts().Return(nil)

	cmd := ListCmd(deps)
	assert.NoError(t, cmd.RunE(cmd, nil))
}

func TestCurrentCmd(t *testing.T) {
	deps, client, _ := newTestDeps(t)
	client.EXPECT().CurrentAccount().Return(nil)

	cmd := CurrentCmd(deps)
	assert.NoError(t, cmd.RunE(cmd, nil))
}

func TestRemoveCmd(t *testing.T) {
	t.Run("delegates to client", func(t *testing.T) {
		deps, client, _ := newTestDeps(t)
		client.EXPECT().RemoveAccount("myaccount").Return(true, nil)

		cmd := RemoveCmd(deps)
		assert.NoError(t, cmd.RunE(cmd, []string{"myaccount"}))
	})

	t.Run("expected failure is not a command error", func(t *testing.T) {
		deps, client, _ := newTestDeps(t)
		client.EXPECT().RemoveAccount("ghost").Return(false, nil)

		cmd := RemoveCmd(deps)
		assert.NoError(t, cmd.RunE(cmd, []string{"ghost"}))
	})
}
