package profile

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// ProfileFileName is the dotfile in the user's home directory.
	ProfileFileName = ".git_profiles"

	// ProfileFileEnv overrides the profile file location when set.
	ProfileFileEnv = "GIT_PROFILE_FILE"
)

var (
	// ErrNotFound indicates the named profile does not exist in the store.
	ErrNotFound = errors.New("profile not found")

	// ErrDuplicate indicates a profile with the same name already exists.
	ErrDuplicate = errors.New("profile already exists")
)

// Store holds the full set of profiles loaded from the profile file.
// Profiles keep their file order across a load-modify-save round trip.
type Store struct {
	Profiles []Profile

	path string
}

// Entry pairs a profile with its active marker for listing.
type Entry struct {
	Profile Profile
	Active  bool
}

// DefaultPath returns the path to the profile file, honoring the
// GIT_PROFILE_FILE override.
func DefaultPath() (string, error) {
	if path := os.Getenv(ProfileFileEnv); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ProfileFileName), nil
}

// Load loads the store from the default path.
func Load() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads the store from a specific path. A missing file yields an
// empty store so the first run needs no init step.
func LoadFrom(path string) (*Store, error) {
	store := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return store, nil
		}
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var tables map[string]Profile
	md, err := toml.Decode(string(data), &tables)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// md.Keys() reports keys in file order; top-level keys are the
	// profile names.
	for _, key := range md.Keys() {
		if len(key) != 1 {
			continue
		}
		name := key[0]
		p, ok := tables[name]
		if !ok {
			continue
		}
		p.Name = name
		store.Profiles = append(store.Profiles, p)
	}

	return store, nil
}

// Save rewrites the profile file. The data is written to a temporary file
// in the same directory and renamed into place so a partial write never
// corrupts the existing file.
func (s *Store) Save() error {
	if s.path == "" {
		return errors.New("profile file path not set")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	for i, p := range s.Profiles {
		if i > 0 {
			buf.WriteByte('\n')
		}
		if err := enc.Encode(map[string]Profile{p.Name: p}); err != nil {
			return fmt.Errorf("failed to encode profile '%s': %w", p.Name, err)
		}
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ProfileFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write profile file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write profile file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace profile file: %w", err)
	}
	return nil
}

// Path returns the file path this store was loaded from.
func (s *Store) Path() string {
	return s.path
}

// Get returns the profile with the given name.
func (s *Store) Get(name string) (*Profile, error) {
	for i := range s.Profiles {
		if s.Profiles[i].Name == name {
			return &s.Profiles[i], nil
		}
	}
	return nil, fmt.Errorf("profile '%s': %w", name, ErrNotFound)
}

// Add appends a new profile. The name must be unique and name, author and
// email must be non-empty.
func (s *Store) Add(p Profile) error {
	if p.Name == "" {
		return errors.New("profile name is required")
	}
	if p.Author == "" {
		return errors.New("author is required")
	}
	if p.Email == "" {
		return errors.New("email is required")
	}
	for _, existing := range s.Profiles {
		if existing.Name == p.Name {
			return fmt.Errorf("profile '%s': %w", p.Name, ErrDuplicate)
		}
	}
	s.Profiles = append(s.Profiles, p)
	return nil
}

// Remove deletes the profile with the given name.
func (s *Store) Remove(name string) error {
	for i := range s.Profiles {
		if s.Profiles[i].Name == name {
			s.Profiles = append(s.Profiles[:i], s.Profiles[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("profile '%s': %w", name, ErrNotFound)
}

// List returns the profiles in store order, each marked active when both
// the author and email match the ambient identity. Profiles sharing an
// identical author/email pair are all marked active.
func (s *Store) List(author, email string) []Entry {
	entries := make([]Entry, 0, len(s.Profiles))
	for _, p := range s.Profiles {
		entries = append(entries, Entry{
			Profile: p,
			Active:  p.Matches(author, email),
		})
	}
	return entries
}

// FindActive returns the first profile matching the ambient identity, or
// nil when none matches.
func (s *Store) FindActive(author, email string) *Profile {
	for i := range s.Profiles {
		if s.Profiles[i].Matches(author, email) {
			return &s.Profiles[i]
		}
	}
	return nil
}
