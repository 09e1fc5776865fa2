package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const home = "/home/tester"

func TestLoadDefaultsWhenNoFile(t *testing.T) {
	settings, err := Load(afero.NewMemMapFs(), home)
	require.NoError(t, err)

	assert.Equal(t, "aws", settings.AWSBinary)
	assert.NotEmpty(t, settings.Shell)
	assert.Equal(t, 10*time.Second, settings.CheckTimeoutDuration())
	assert.Equal(t, 300*time.Second, settings.LoginTimeoutDuration())
	assert.Equal(t, 300*time.Second, settings.ConfigureTimeoutDuration())
}

func TestLoadOverridesFromFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join(home, ".config", "kee", "config.yaml")
	content := "aws_binary: /opt/aws/bin/aws\nshell: /bin/zsh\ncheck_timeout_seconds: 5\n"
	require.NoError(t, afero.WriteFile(fs, path, []byte(content), 0o644))

	settings, err := Load(fs, home)
	require.NoError(t, err)

	assert.Equal(t, "/opt/aws/bin/aws", settings.AWSBinary)
	assert.Equal(t, "/bin/zsh", settings.Shell)
	assert.Equal(t, 5*time.Second, settings.CheckTimeoutDuration())
	// unspecified values keep their defaults
	assert.Equal(t, 300*time.Second, settings.LoginTimeoutDuration())
}

func TestLoadMalformedFileErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join(home, ".config", "kee", "config.yaml")
	require.NoError(t, afero.WriteFile(fs, path, []byte("shell: [unclosed"), 0o644))

	_, err := Load(fs, home)
	assert.Error(t, err)
}
