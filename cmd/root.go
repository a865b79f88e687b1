// Package cmd implements the git-profile subcommands.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "git-profile",
	Short: "Easy multi-identity profiles for git",
	Long: `git-profile stores named identity profiles (author, email, optional
username and remote URL template) in ~/.git_profiles and switches the
git user.name/user.email configuration between them.

Profiles live in a single human-editable TOML file. There is no locking:
two simultaneous invocations that both modify profiles race with
last-writer-wins semantics.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
