package kee

import (
	"context"
	"errors"
	"fmt"

	"github.com/keetool/kee/internal/awsconfig"
)

// AddAccount configures a new AWS account through the external CLI's SSO
// flow and records it in the registry. Returns false with a message on
// expected failures (CLI exit, timeout, unreadable profile); the account is
// considered added once the registry is persisted, regardless of the
// post-add credential check.
func (c *RealKeeClient) AddAccount(accountName string) (bool, error) {
	profileName := accountName

	fmt.Println("\n Starting SSO configuration...")
	fmt.Println(" (This will open your browser to complete authentication.)")
	fmt.Println("\n Follow the prompts:")
	fmt.Printf("  %s Enter your SSO start URL\n", hlt("1."))
	fmt.Printf("  %s Enter your SSO region\n", hlt("2."))
	fmt.Printf("  %s Authenticate in your browser\n", hlt("3."))
	fmt.Printf("  %s Select your AWS account\n", hlt("4."))
	fmt.Printf("  %s Select your role\n", hlt("5."))
	fmt.Printf("  %s Choose your output format (recommend: json)\n", hlt("6."))
	fmt.Printf("\n  %s A session can be linked to multiple profiles.\n  When prompted for a 'session name', use something generic, like your company name.\n\n", hlt("Tip:"))

	ctx, cancel := context.WithTimeout(context.Background(), c.Settings.ConfigureTimeoutDuration())
	defer cancel()

	err := c.Executor.RunInteractiveCommand(ctx, c.Settings.AWSBinary,
		"configure", "sso", "--profile", profileName)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			fmt.Println(" [X] The SSO configuration timed out.")
		} else {
			fmt.Println(" [X] SSO configuration failed.")
		}
		return false, nil
	}

	fmt.Printf("\n %s You can ignore the AWS CLI example above.\n %s will handle profiles for you.\n", hlt("Note:"), hlt("Kee"))

	if err := c.AWSConfig.Normalize(); err != nil {
		return false, fmt.Errorf("failed to reformat AWS config: %w", err)
	}

	record, err := c.AWSConfig.ReadProfile(profileName)
	if err != nil {
		if errors.Is(err, awsconfig.ErrProfileNotFound) {
			fmt.Println(" [X] Could not read profile information.")
			return false, nil
		}
		return false, err
	}

	state := c.Registry.Load()
	state.Accounts.Set(accountName, record)
	if err := c.Registry.Save(state); err != nil {
		return false, err
	}

	// feedback only; the account is already persisted
	if c.CheckCredentials(profileName) {
		fmt.Println("\n [✓] The profile was added and it's working!")
	} else {
		fmt.Println("\n [X] I created the profile but credentials may need a refresh...")
		fmt.Printf(" %s aws sso login --profile %s\n", hlt("Try:"), profileName)
	}

	return true, nil
}
