package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitprofile/git-profile/internal/profile"
	"github.com/gitprofile/git-profile/internal/ui"
)

var (
	addFlagUsername string
	addFlagRemote   string
)

var addCmd = &cobra.Command{
	Use:     "add <name> [<author> <email>]",
	Aliases: []string{"new"},
	Short:   "Create a new profile",
	Long: `Create a new identity profile. Author and email can be given as
arguments or entered interactively. The profile name must be unique;
remove an existing profile first to replace it.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 && len(args) != 3 {
			return fmt.Errorf("expects <name> or <name> <author> <email>")
		}
		return nil
	},
	Example: `  # All fields as arguments
  git-profile add work "John Doe" john@work.com --username john-work

  # Interactive mode
  git-profile add personal

  # With a custom remote URL template
  git-profile add oss "John Doe" john@example.org -u johnd -r "git@gitlab.com:{{username}}/{{project}}.git"`,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addFlagUsername, "username", "u", "", "Hosting username for URL templates")
	addCmd.Flags().StringVarP(&addFlagRemote, "remote", "r", "", "Remote URL template (tokens: {{username}}, {{project}})")
}

func runAdd(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	name := args[0]
	var author, email, username, url string

	if len(args) == 3 {
		author = args[1]
		email = args[2]
		username = addFlagUsername
		url = addFlagRemote
	} else {
		fmt.Printf("Adding profile '%s'\n\n", name)

		author, email, username, url, err = ui.PromptProfileInfo()
		if err != nil {
			return fmt.Errorf("failed to get profile info: %w", err)
		}
		if addFlagUsername != "" {
			username = addFlagUsername
		}
		if addFlagRemote != "" {
			url = addFlagRemote
		}
	}

	p := profile.Profile{
		Name:     name,
		Author:   author,
		Email:    email,
		Username: username,
		URL:      url,
	}

	if err := store.Add(p); err != nil {
		return fmt.Errorf("failed to add profile: %w", err)
	}

	if err := store.Save(); err != nil {
		return fmt.Errorf("failed to save profiles: %w", err)
	}

	ui.Success(fmt.Sprintf("Profile '%s' created", name))
	fmt.Printf("\nNext: git-profile use %s\n", name)

	return nil
}
