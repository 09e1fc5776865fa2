package kee

import (
	"fmt"
)

// RemoveAccount deletes an account after interactive confirmation. The
// registry is authoritative: once it is updated the removal counts as a
// success, even if the AWS config section could not be cleaned up.
func (c *RealKeeClient) RemoveAccount(accountName string) (bool, error) {
	state := c.Registry.Load()

	record, found := state.Accounts.Get(accountName)
	if !found {
		fmt.Printf("\n Account '%s' not found.\n", hlt(accountName))
		return false, nil
	}

	confirmed, err := c.Prompter.PromptForConfirmation(
		fmt.Sprintf("Are you sure you want to remove account '%s'", accountName))
	if err != nil {
		return false, err
	}
	if !confirmed {
		return false, nil
	}

	state.Accounts.Delete(accountName)
	if state.CurrentName() == accountName {
		state.ClearCurrent()
	}
	if err := c.Registry.Save(state); err != nil {
		return false, err
	}

	if err := c.AWSConfig.RemoveProfile(record.ProfileName); err != nil {
		fmt.Printf(" [✓] Profile '%s' removed from %s.\n", hlt(accountName), hlt("Kee"))
		fmt.Printf(" [!] %s Could not remove AWS profile '%s': %v\n", hlt("Warning:"), hlt(record.ProfileName), err)
		fmt.Printf(" You may want to remove it manually from %s\n", c.AWSConfig.Path())
		return true, nil
	}

	fmt.Printf(" [✓] Profile '%s' has been removed.\n", hlt(accountName))
	return true, nil
}
