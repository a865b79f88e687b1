// Package profile implements the profile store: named git identities
// persisted in a single TOML file, keyed by profile name.
package profile

// Profile represents one git identity.
type Profile struct {
	// Name is the lookup key. It is the TOML table name on disk,
	// not a field inside the record body.
	Name     string `toml:"-"`
	Author   string `toml:"author"`
	Email    string `toml:"email"`
	Username string `toml:"username,omitempty"` // used only for URL templates
	URL      string `toml:"url,omitempty"`      // remote URL template
}

// Matches reports whether the given author/email identity pair matches
// this profile. Both fields must match exactly.
func (p Profile) Matches(author, email string) bool {
	return p.Author == author && p.Email == email
}
