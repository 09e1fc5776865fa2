package awsconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/keetool/kee/models"
	"github.com/spf13/afero"
	"gopkg.in/ini.v1"
)

// ErrProfileNotFound is returned when the requested profile section does not
// exist in the AWS config file.
var ErrProfileNotFound = errors.New("profile not found in AWS config")

// Manager reads and rewrites the AWS shared config file (~/.aws/config).
// Parsing is delegated to ini.v1; writing is done by hand so the output
// format is deterministic: one "key = value" line per entry and exactly one
// blank line after every section, in the section order already present.
type Manager struct {
	fs   afero.Fs
	path string
}

func NewManager(fs afero.Fs, homeDir string) *Manager {
	return &Manager{
		fs:   fs,
		path: filepath.Join(homeDir, ".aws", "config"),
	}
}

// Path returns the AWS config file location.
func (m *Manager) Path() string {
	return m.path
}

func (m *Manager) load() (*ini.File, error) {
	data, err := afero.ReadFile(m.fs, m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", m.path, err)
	}

	cfg, err := ini.Load(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", m.path, err)
	}
	return cfg, nil
}

func (m *Manager) write(cfg *ini.File) error {
	var out strings.Builder
	for _, section := range cfg.Sections() {
		if section.Name() == ini.DefaultSection {
			// ini.v1's pseudo-section for keys above the first header;
			// the AWS config grammar has no such keys.
			continue
		}
		out.WriteString(fmt.Sprintf("[%s]\n", section.Name()))
		for _, key := range section.Keys() {
			out.WriteString(fmt.Sprintf("%s = %s\n", key.Name(), key.Value()))
		}
		out.WriteString("\n")
	}
	if err := afero.WriteFile(m.fs, m.path, []byte(out.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", m.path, err)
	}
	return nil
}

// Normalize rewrites the whole config file in the canonical format. A missing
// file is a no-op. Applying it twice yields byte-identical output.
func (m *Manager) Normalize() error {
	cfg, err := m.load()
	if err != nil || cfg == nil {
		return err
	}
	return m.write(cfg)
}

// sectionName maps a profile name to its config section header. The default
// profile lives in a bare [default] section, everything else under
// [profile <name>].
func sectionName(profileName string) string {
	if profileName == "default" {
		return "default"
	}
	return "profile " + profileName
}

// RemoveProfile deletes the section for the named profile and rewrites the
// file normalized. Missing file or missing section are no-ops.
func (m *Manager) RemoveProfile(profileName string) error {
	cfg, err := m.load()
	if err != nil || cfg == nil {
		return err
	}

	name := sectionName(profileName)
	if _, err := cfg.GetSection(name); err != nil {
		return nil
	}
	cfg.DeleteSection(name)
	return m.write(cfg)
}

// ReadProfile extracts SSO metadata for the named profile. Two shapes are
// supported: the modern one, where the profile references a separate
// [sso-session <name>] section holding the start URL and region, and the
// legacy one with all sso_* fields inline. Unresolvable fields fall back to
// "" for URL/region and "unknown" for account id and role.
func (m *Manager) ReadProfile(profileName string) (models.AccountRecord, error) {
	rec := models.AccountRecord{
		ProfileName:  profileName,
		SSOAccountID: "unknown",
		SSORoleName:  "unknown",
	}

	cfg, err := m.load()
	if err != nil {
		return rec, err
	}
	if cfg == nil {
		return rec, ErrProfileNotFound
	}

	section, err := cfg.GetSection(sectionName(profileName))
	if err != nil {
		return rec, ErrProfileNotFound
	}

	if section.HasKey("sso_account_id") {
		rec.SSOAccountID = section.Key("sso_account_id").String()
	}
	if section.HasKey("sso_role_name") {
		rec.SSORoleName = section.Key("sso_role_name").String()
	}

	if section.HasKey("sso_session") {
		rec.SessionName = section.Key("sso_session").String()
		if ssoSection, err := cfg.GetSection("sso-session " + rec.SessionName); err == nil {
			rec.SSOStartURL = ssoSection.Key("sso_start_url").String()
			rec.SSORegion = ssoSection.Key("sso_region").String()
		}
		return rec, nil
	}

	// legacy shape: sso fields inline in the profile section
	rec.SSOStartURL = section.Key("sso_start_url").String()
	rec.SSORegion = section.Key("sso_region").String()
	return rec, nil
}
