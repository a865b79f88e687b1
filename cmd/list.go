package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gitprofile/git-profile/internal/git"
	"github.com/gitprofile/git-profile/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List profiles",
	Long: `List all profiles. The profile matching the current git identity is
marked with '*'. Profiles sharing the same author and email are all
marked.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	// The active marker is derived from the ambient identity at query
	// time, never stored. A missing git binary just means no marker.
	var id git.Identity
	if git.IsInstalled() {
		id, _ = git.NewClient().Identity()
	}

	ui.PrintProfileList(store.List(id.Name, id.Email))

	return nil
}
