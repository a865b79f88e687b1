package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitprofile/git-profile/internal/git"
	"github.com/gitprofile/git-profile/internal/ui"
)

var useCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Switch to a profile",
	Long: `Write the profile's author and email into the repository-local git
configuration (user.name and user.email). The name must match an
existing profile exactly; there is no default fallback here.`,
	Args: cobra.ExactArgs(1),
	Example: `  git-profile use work
  git-profile use personal`,
	RunE: runUse,
}

func init() {
	rootCmd.AddCommand(useCmd)
}

func runUse(cmd *cobra.Command, args []string) error {
	name := args[0]

	if !git.IsInstalled() {
		return fmt.Errorf("git is not installed")
	}

	store, err := loadStore()
	if err != nil {
		return err
	}

	p, err := store.Get(name)
	if err != nil {
		return err
	}

	if err := git.NewClient().SetIdentity(git.Identity{Name: p.Author, Email: p.Email}); err != nil {
		return fmt.Errorf("failed to update git config: %w", err)
	}

	ui.Success(fmt.Sprintf("Switched to '%s' (%s <%s>)", p.Name, p.Author, p.Email))

	return nil
}
