package ui

import (
	"fmt"
	"regexp"

	"github.com/AlecAivazis/survey/v2"
)

// PromptProfileInfo prompts for the profile fields interactively.
// Username and URL template may be left empty.
func PromptProfileInfo() (author, email, username, url string, err error) {
	authorPrompt := &survey.Input{
		Message: "Author name:",
		Help:    "Display name for git commits (e.g., John Doe)",
	}
	if err := survey.AskOne(authorPrompt, &author, survey.WithValidator(survey.Required)); err != nil {
		return "", "", "", "", err
	}

	emailPrompt := &survey.Input{
		Message: "Email address:",
		Help:    "Email for git commits (e.g., john@example.com)",
	}
	emailValidator := func(val interface{}) error {
		if str, ok := val.(string); ok {
			if !isValidEmail(str) {
				return fmt.Errorf("invalid email format")
			}
		}
		return nil
	}
	if err := survey.AskOne(emailPrompt, &email, survey.WithValidator(survey.Required), survey.WithValidator(emailValidator)); err != nil {
		return "", "", "", "", err
	}

	usernamePrompt := &survey.Input{
		Message: "Username (optional):",
		Help:    "Hosting username, substituted for {{username}} in URL templates",
	}
	if err := survey.AskOne(usernamePrompt, &username); err != nil {
		return "", "", "", "", err
	}

	urlPrompt := &survey.Input{
		Message: "Remote URL template (optional):",
		Help:    "e.g. git@gitlab.com:{{username}}/{{project}}.git - leave empty for the default",
	}
	if err := survey.AskOne(urlPrompt, &url); err != nil {
		return "", "", "", "", err
	}

	return author, email, username, url, nil
}

// PromptConfirmation prompts for yes/no confirmation.
func PromptConfirmation(message string) (bool, error) {
	var confirmed bool
	prompt := &survey.Confirm{
		Message: message,
		Default: false,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}

// isValidEmail checks if email format is valid
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}
