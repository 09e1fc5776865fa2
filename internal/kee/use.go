package kee

import (
	"fmt"
	"runtime"
)

// UseAccount activates an account and blocks inside an interactive sub-shell
// until the user exits it. Sessions do not nest: an inherited session marker
// refuses immediately. Unknown accounts can be added on the spot and then
// either used right away or left for later.
func (c *RealKeeClient) UseAccount(accountName string) (bool, error) {
	if c.Session.Active {
		current := c.Session.Account
		if current == "" {
			current = "unknown"
		}
		fmt.Printf("\n You are using a %s profile: %s\n", hlt("Kee"), hlt(current))
		fmt.Printf(" Exit the current session first by typing '%s'\n", hlt("exit"))
		return false, nil
	}

	state := c.Registry.Load()
	if _, found := state.Accounts.Get(accountName); !found {
		fmt.Printf("\n Account '%s' not found.\n", hlt(accountName))

		if state.Accounts.Len() > 0 {
			fmt.Println(" Available accounts:")
			for _, name := range state.Accounts.Names() {
				fmt.Printf(" • %s\n", hlt(name))
			}
		}

		addNow, err := c.Prompter.PromptForConfirmation(
			fmt.Sprintf("Would you like to add account '%s' now", accountName))
		if err != nil {
			return false, err
		}
		if !addNow {
			return false, nil
		}

		added, err := c.AddAccount(accountName)
		if err != nil {
			return false, err
		}
		if !added {
			fmt.Printf(" Failed to add account '%s'.\n", hlt(accountName))
			return false, nil
		}

		useNow, err := c.Prompter.PromptForConfirmation(
			fmt.Sprintf("Would you like to use account '%s' now", accountName))
		if err != nil {
			return false, err
		}
		if !useNow {
			command := fmt.Sprintf("kee use %s", accountName)
			fmt.Printf("\n Account '%s' is ready to use. Run '%s' when needed.\n",
				hlt(accountName), hlt(command))
			return true, nil
		}

		// pick up the freshly added account
		state = c.Registry.Load()
	}

	record, found := state.Accounts.Get(accountName)
	if !found {
		fmt.Printf("\n Account '%s' not found.\n", hlt(accountName))
		return false, nil
	}

	if !c.CheckCredentials(record.ProfileName) {
		fmt.Println("\n Credentials expired or not available. Attempting SSO login...")
		if !c.SSOLogin(record.ProfileName) {
			fmt.Printf(" Failed to authenticate. Please run '%s' manually.\n", hlt("aws sso login"))
			return false, nil
		}
	}

	state.SetCurrent(accountName)
	if err := c.Registry.Save(state); err != nil {
		return false, err
	}

	c.startSubShell(accountName, record.ProfileName)

	state.ClearCurrent()
	if err := c.Registry.Save(state); err != nil {
		return false, err
	}

	return true, nil
}

func (c *RealKeeClient) startSubShell(accountName, profileName string) {
	env := append([]string{}, c.Environ...)
	env = setEnv(env, EnvAWSProfile, profileName)
	env = setEnv(env, EnvCurrentAccount, accountName)
	env = setEnv(env, EnvActiveProfile, "1")

	if runtime.GOOS != "windows" {
		if ps1, ok := getEnv(env, "PS1"); ok {
			env = setEnv(env, "PS1", fmt.Sprintf("aws:%s %s", accountName, ps1))
		} else {
			env = setEnv(env, "PS1", fmt.Sprintf("aws:%s $ ", accountName))
		}
	}

	fmt.Println(Banner)
	fmt.Printf("    Profile: %s\n", hlt(accountName))
	fmt.Println("\n    Starting a sub-shell...")
	fmt.Printf("    Type '%s' to return to your main shell.\n", hlt("exit"))

	if err := c.Executor.RunShell(env, c.Settings.Shell); err != nil {
		fmt.Printf("\n [!] %s Could not start the shell: %v\n", hlt("Warning:"), err)
	}

	fmt.Printf("\n %s — Session ended.\n", hlt(accountName))
}
