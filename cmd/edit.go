package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/gitprofile/git-profile/internal/profile"
)

var editFlagEditor string

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the profile file in an editor",
	Long: `Open ~/.git_profiles in a text editor. The editor is taken from
--editor, then $VISUAL, then $EDITOR, then falls back to vim. The
value may include arguments, e.g. EDITOR="code --wait".`,
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVar(&editFlagEditor, "editor", "", "Editor command to use")
}

func runEdit(cmd *cobra.Command, args []string) error {
	path, err := profile.DefaultPath()
	if err != nil {
		return err
	}

	// Make sure the file exists so editors that refuse to create files
	// still work.
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.WriteFile(path, nil, 0600); err != nil {
			return fmt.Errorf("failed to create profile file: %w", err)
		}
	}

	editor := editFlagEditor
	if editor == "" {
		editor = os.Getenv("VISUAL")
	}
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vim"
	}

	words, err := shellquote.Split(editor)
	if err != nil {
		return fmt.Errorf("invalid editor command %q: %w", editor, err)
	}
	if len(words) == 0 {
		return fmt.Errorf("empty editor command")
	}

	editorCmd := exec.Command(words[0], append(words[1:], path)...)
	editorCmd.Stdin = os.Stdin
	editorCmd.Stdout = os.Stdout
	editorCmd.Stderr = os.Stderr

	if err := editorCmd.Run(); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}

	return nil
}
