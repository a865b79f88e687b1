package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var authorFlagProfile string

var authorCmd = &cobra.Command{
	Use:   "author",
	Short: "Print the profile's author string in git format",
	Long: `Print "Author Name <email>" for a profile to stdout. Without --profile
the profile matching the current git identity is used, falling back to
the first profile.`,
	Example: `  git-profile author
  git-profile author -p work`,
	RunE: runAuthor,
}

func init() {
	rootCmd.AddCommand(authorCmd)
	authorCmd.Flags().StringVarP(&authorFlagProfile, "profile", "p", "", "Profile to use")
}

func runAuthor(cmd *cobra.Command, args []string) error {
	store, err := loadStore()
	if err != nil {
		return err
	}

	p, err := resolveProfile(store, authorFlagProfile)
	if err != nil {
		return err
	}

	fmt.Printf("%s <%s>\n", p.Author, p.Email)

	return nil
}
