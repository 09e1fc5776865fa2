package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Settings holds the optional kee tuning knobs. Everything has a sensible
// default; the file under ~/.config/kee/config.yaml only needs the values
// the user wants to override.
type Settings struct {
	AWSBinary        string `yaml:"aws_binary"`
	Shell            string `yaml:"shell"`
	CheckTimeout     int    `yaml:"check_timeout_seconds"`
	LoginTimeout     int    `yaml:"login_timeout_seconds"`
	ConfigureTimeout int    `yaml:"configure_timeout_seconds"`
}

const (
	defaultCheckTimeout     = 10
	defaultLoginTimeout     = 300
	defaultConfigureTimeout = 300
)

// Load reads the settings file if present and fills in defaults. A missing
// file is not an error; a malformed one is.
func Load(fs afero.Fs, homeDir string) (*Settings, error) {
	settings := &Settings{}

	path := filepath.Join(homeDir, ".config", "kee", "config.yaml")
	data, err := afero.ReadFile(fs, path)
	if err == nil {
		if err := yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	settings.applyDefaults()
	return settings, nil
}

func (s *Settings) applyDefaults() {
	if s.AWSBinary == "" {
		s.AWSBinary = "aws"
	}
	if s.Shell == "" {
		s.Shell = defaultShell()
	}
	if s.CheckTimeout <= 0 {
		s.CheckTimeout = defaultCheckTimeout
	}
	if s.LoginTimeout <= 0 {
		s.LoginTimeout = defaultLoginTimeout
	}
	if s.ConfigureTimeout <= 0 {
		s.ConfigureTimeout = defaultConfigureTimeout
	}
}

func defaultShell() string {
	if runtime.GOOS == "windows" {
		if comspec := os.Getenv("COMSPEC"); comspec != "" {
			return comspec
		}
		return "cmd.exe"
	}
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}
	return "/bin/bash"
}

// CheckTimeoutDuration is the identity-probe timeout.
func (s *Settings) CheckTimeoutDuration() time.Duration {
	return time.Duration(s.CheckTimeout) * time.Second
}

// LoginTimeoutDuration bounds the interactive SSO login.
func (s *Settings) LoginTimeoutDuration() time.Duration {
	return time.Duration(s.LoginTimeout) * time.Second
}

// ConfigureTimeoutDuration bounds the interactive SSO profile configuration.
func (s *Settings) ConfigureTimeoutDuration() time.Duration {
	return time.Duration(s.ConfigureTimeout) * time.Second
}
