package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitprofile/git-profile/internal/git"
)

var activeCmd = &cobra.Command{
	Use:   "active",
	Short: "Show the currently active profile",
	Long: `Display the profile whose author and email match the current git
identity. When several profiles share the same author and email the
first one in the profile file is shown.`,
	RunE: runActive,
}

func init() {
	rootCmd.AddCommand(activeCmd)
}

func runActive(cmd *cobra.Command, args []string) error {
	if !git.IsInstalled() {
		return fmt.Errorf("git is not installed")
	}

	store, err := loadStore()
	if err != nil {
		return err
	}

	id, err := git.NewClient().Identity()
	if err != nil {
		return fmt.Errorf("failed to read git identity: %w", err)
	}

	p := store.FindActive(id.Name, id.Email)
	if p == nil {
		fmt.Println("No active profile")
		if id.Name != "" || id.Email != "" {
			fmt.Printf("\nCurrent git identity: %s <%s>\n", id.Name, id.Email)
		}
		fmt.Println("\nSwitch with: git-profile use <name>")
		return nil
	}

	fmt.Printf("Active profile: %s\n", p.Name)
	fmt.Printf("  Author: %s\n", p.Author)
	fmt.Printf("  Email:  %s\n", p.Email)
	if p.Username != "" {
		fmt.Printf("  Username: %s\n", p.Username)
	}
	if p.URL != "" {
		fmt.Printf("  Remote template: %s\n", p.URL)
	}

	return nil
}
