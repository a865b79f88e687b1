package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitprofile/git-profile/internal/render"
)

var urlFlagProfile string

var urlCmd = &cobra.Command{
	Use:   "url <project>",
	Short: "Generate a remote URL for a project",
	Long: `Render the profile's remote URL template with the given project name
and print it to stdout. Without --profile the profile matching the
current git identity is used, falling back to the first profile.

Only the URL is written to stdout, so the output is safe to capture:

  git remote add origin "$(git-profile url myproject)"`,
	Args: cobra.ExactArgs(1),
	RunE: runURL,
}

func init() {
	rootCmd.AddCommand(urlCmd)
	urlCmd.Flags().StringVarP(&urlFlagProfile, "profile", "p", "", "Profile to use")
}

func runURL(cmd *cobra.Command, args []string) error {
	project := args[0]

	store, err := loadStore()
	if err != nil {
		return err
	}

	p, err := resolveProfile(store, urlFlagProfile)
	if err != nil {
		return err
	}

	fmt.Println(render.URL(p.URL, p.Username, project))

	return nil
}
