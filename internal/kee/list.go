package kee

import (
	"fmt"
)

// ListAccounts prints all configured accounts in the order they were added,
// marking the one with an active session intent. An empty registry is a
// valid state, not an error.
func (c *RealKeeClient) ListAccounts() error {
	state := c.Registry.Load()

	if state.Accounts.Len() == 0 {
		fmt.Printf("\n No accounts configured.\n Use '%s' to add an account.\n", hlt("kee add <account_name>"))
		return nil
	}

	fmt.Println()
	for _, name := range state.Accounts.Names() {
		record, _ := state.Accounts.Get(name)

		status := ""
		if name == state.CurrentName() {
			status = " (Current profile)"
		}
		fmt.Printf(" %s%s\n", hlt(name), status)
		fmt.Printf(" • %s %s\n", hlt("Account:"), record.SSOAccountID)
		fmt.Printf(" • %s %s\n", hlt("Role:"), record.SSORoleName)
	}
	return nil
}
