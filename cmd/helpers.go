package cmd

import (
	"fmt"

	"github.com/gitprofile/git-profile/internal/git"
	"github.com/gitprofile/git-profile/internal/profile"
)

// loadStore loads the profile store from its default location.
func loadStore() (*profile.Store, error) {
	store, err := profile.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	return store, nil
}

// resolveProfile returns the profile to operate on: the named one when name
// is non-empty, otherwise the profile matching the ambient git identity,
// otherwise the first profile in the store. When several profiles share the
// ambient author/email the first match wins.
func resolveProfile(store *profile.Store, name string) (*profile.Profile, error) {
	if name != "" {
		return store.Get(name)
	}

	if len(store.Profiles) == 0 {
		return nil, fmt.Errorf("no profiles defined\nAdd one with: git-profile add <name> <author> <email>")
	}

	id, err := git.NewClient().Identity()
	if err == nil {
		if p := store.FindActive(id.Name, id.Email); p != nil {
			return p, nil
		}
	}

	return &store.Profiles[0], nil
}
