package kee

import (
	"fmt"
)

// CurrentAccount reports the active account. Inside a session the inherited
// environment marker is authoritative; the registry's pointer was already
// cleared in the parent's flow and only means something outside a session.
func (c *RealKeeClient) CurrentAccount() error {
	if c.Session.Active {
		if c.Session.Account != "" {
			fmt.Printf("\n Current profile: %s\n", hlt(c.Session.Account))
			fmt.Printf(" Type '%s' to return to your main shell.\n", hlt("exit"))
		} else {
			fmt.Printf("\n Active %s profile but account name not found.\n", hlt("Kee"))
		}
		return nil
	}

	state := c.Registry.Load()
	if current := state.CurrentName(); current != "" {
		fmt.Printf("\n Current profile: %s\n", hlt(current))
	} else {
		fmt.Println("\n No profile is currently active.")
	}
	return nil
}
