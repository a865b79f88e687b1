package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitprofile/git-profile/internal/ui"
)

var removeFlagForce bool

var removeCmd = &cobra.Command{
	Use:     "remove <name>",
	Aliases: []string{"delete", "rm"},
	Short:   "Remove a profile",
	Long:    `Remove a profile from the profile file. The git configuration is left untouched.`,
	Args:    cobra.ExactArgs(1),
	Example: `  git-profile remove work
  git-profile remove old-job --force`,
	RunE: runRemove,
}

func init() {
	rootCmd.AddCommand(removeCmd)
	removeCmd.Flags().BoolVarP(&removeFlagForce, "force", "f", false, "Skip the confirmation prompt")
}

func runRemove(cmd *cobra.Command, args []string) error {
	name := args[0]

	store, err := loadStore()
	if err != nil {
		return err
	}

	p, err := store.Get(name)
	if err != nil {
		return err
	}

	if !removeFlagForce {
		confirmed, err := ui.PromptConfirmation(fmt.Sprintf("Remove profile '%s' (%s)?", p.Name, p.Email))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := store.Remove(name); err != nil {
		return err
	}

	if err := store.Save(); err != nil {
		return fmt.Errorf("failed to save profiles: %w", err)
	}

	ui.Success(fmt.Sprintf("Profile '%s' removed", name))

	if len(store.Profiles) == 0 {
		fmt.Println("\nNo profiles remaining. Add one with: git-profile add")
	}

	return nil
}
