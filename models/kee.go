package models

// AccountRecord describes one managed AWS account profile as stored in the
// kee registry. Field names match the on-disk JSON format.
type AccountRecord struct {
	ProfileName  string `json:"profile_name"`
	SSOStartURL  string `json:"sso_start_url"`
	SSORegion    string `json:"sso_region"`
	SSOAccountID string `json:"sso_account_id"`
	SSORoleName  string `json:"sso_role_name"`
	SessionName  string `json:"session_name"`
}

// RegistryState is the full contents of the kee registry file. CurrentAccount
// is nil when no session intent is recorded.
type RegistryState struct {
	Accounts       Accounts `json:"accounts"`
	CurrentAccount *string  `json:"current_account"`
}

// NewRegistryState returns the empty default state.
func NewRegistryState() RegistryState {
	return RegistryState{Accounts: NewAccounts()}
}

// SetCurrent points CurrentAccount at the given account name.
func (s *RegistryState) SetCurrent(name string) {
	s.CurrentAccount = &name
}

// ClearCurrent resets CurrentAccount to nil.
func (s *RegistryState) ClearCurrent() {
	s.CurrentAccount = nil
}

// CurrentName returns the current account name, or "" when unset.
func (s *RegistryState) CurrentName() string {
	if s.CurrentAccount == nil {
		return ""
	}
	return *s.CurrentAccount
}
