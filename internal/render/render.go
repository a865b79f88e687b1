// Package render produces remote URLs from profile URL templates.
package render

import "strings"

// DefaultTemplate is used when a profile carries no URL template.
const DefaultTemplate = "git@github.com:{{username}}/{{project}}"

// URL substitutes {{username}} and {{project}} in template. An empty
// template falls back to DefaultTemplate. Every occurrence of each token
// is replaced in a single left-to-right pass; substituted values are never
// re-scanned, so a value containing a token cannot recurse. Any other
// {{...}} token passes through verbatim.
func URL(template, username, project string) string {
	if template == "" {
		template = DefaultTemplate
	}
	r := strings.NewReplacer(
		"{{username}}", username,
		"{{project}}", project,
	)
	return r.Replace(template)
}
