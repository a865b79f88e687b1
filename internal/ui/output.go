// Package ui handles terminal output and interactive prompts.
//
// Status messages go to stderr so that commands with machine-consumable
// output (url, author) keep stdout clean.
package ui

import (
	"fmt"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"

	"github.com/gitprofile/git-profile/internal/profile"
)

var stderr = colorable.NewColorableStderr()

var (
	green  = ansi.ColorFunc("green")
	red    = ansi.ColorFunc("red")
	yellow = ansi.ColorFunc("yellow")
	cyan   = ansi.ColorFunc("cyan")
)

// colorize applies the color function only when stderr is a terminal.
func colorize(color func(string) string, s string) string {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return s
	}
	return color(s)
}

// PrintProfileList prints each profile name with an active marker.
func PrintProfileList(entries []profile.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "No profiles defined")
		fmt.Fprintln(os.Stderr, "\nAdd one with: git-profile add <name> <author> <email>")
		return
	}

	for _, e := range entries {
		if e.Active {
			fmt.Printf("%s *\n", e.Profile.Name)
		} else {
			fmt.Println(e.Profile.Name)
		}
	}
}

// Success prints a success message with checkmark.
func Success(message string) {
	fmt.Fprintf(stderr, "%s %s\n", colorize(green, "✓"), message)
}

// Error prints an error message.
func Error(message string) {
	fmt.Fprintf(stderr, "%s %s\n", colorize(red, "✗"), message)
}

// Info prints an info message.
func Info(message string) {
	fmt.Fprintf(stderr, "%s %s\n", colorize(cyan, "ℹ"), message)
}

// Warning prints a warning message.
func Warning(message string) {
	fmt.Fprintf(stderr, "%s %s\n", colorize(yellow, "⚠"), message)
}
