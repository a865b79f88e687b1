// Package git reads and writes the git identity configuration keys.
package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// Identity is the author/email pair configured for the ambient repository
// context.
type Identity struct {
	Name  string
	Email string
}

// runFunc executes git with the given arguments and returns its trimmed
// stdout. It exists so tests can stub out the subprocess call.
type runFunc func(args ...string) (string, error)

// Client provides access to the git identity keys.
type Client struct {
	run runFunc
}

// NewClient returns a Client backed by the git binary.
func NewClient() *Client {
	return &Client{run: runGit}
}

// Identity returns the effective user.name and user.email for the current
// directory. Unset keys come back as empty strings.
func (c *Client) Identity() (Identity, error) {
	name, err := c.getConfig("user.name")
	if err != nil {
		return Identity{}, fmt.Errorf("failed to get git user.name: %w", err)
	}
	email, err := c.getConfig("user.email")
	if err != nil {
		return Identity{}, fmt.Errorf("failed to get git user.email: %w", err)
	}
	return Identity{Name: name, Email: email}, nil
}

// SetIdentity writes user.name and user.email into the repository-local
// git config.
func (c *Client) SetIdentity(id Identity) error {
	if _, err := c.run("config", "user.name", id.Name); err != nil {
		return fmt.Errorf("failed to set git user.name: %w", err)
	}
	if _, err := c.run("config", "user.email", id.Email); err != nil {
		return fmt.Errorf("failed to set git user.email: %w", err)
	}
	return nil
}

// getConfig reads a single config key. git exits 1 when the key is unset,
// which is not an error here.
func (c *Client) getConfig(key string) (string, error) {
	out, err := c.run("config", "--get", key)
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return "", nil
		}
		return "", err
	}
	return out, nil
}

// IsInstalled checks if git is available.
func IsInstalled() bool {
	cmd := exec.Command("git", "--version")
	return cmd.Run() == nil
}

// runGit executes the git binary.
func runGit(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(output)), nil
}
