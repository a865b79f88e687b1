package profile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), ProfileFileName)
	store, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}
	return store
}

func TestLoadMissingFile(t *testing.T) {
	store := tempStore(t)

	if len(store.Profiles) != 0 {
		t.Errorf("expected empty store, got %d profiles", len(store.Profiles))
	}
}

func TestLoadParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), ProfileFileName)
	if err := os.WriteFile(path, []byte("[work\nauthor = "), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("LoadFrom() should fail on malformed TOML")
	}
	if !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("LoadFrom() error = %v, should contain 'failed to parse'", err)
	}
}

func TestRoundTrip(t *testing.T) {
	store := tempStore(t)

	profiles := []Profile{
		{Name: "zeta", Author: "Zed Zero", Email: "zed@example.com", Username: "zzero", URL: "git@gitlab.com:{{username}}/{{project}}.git"},
		{Name: "alpha", Author: "Al Pha", Email: "al@example.com"},
		{Name: "mid", Author: "Mid Dle", Email: "mid@example.com", Username: "middle"},
	}
	for _, p := range profiles {
		if err := store.Add(p); err != nil {
			t.Fatalf("Add(%s) failed: %v", p.Name, err)
		}
	}

	if err := store.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := LoadFrom(store.Path())
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	if len(loaded.Profiles) != len(profiles) {
		t.Fatalf("expected %d profiles, got %d", len(profiles), len(loaded.Profiles))
	}
	for i, want := range profiles {
		got := loaded.Profiles[i]
		if got != want {
			t.Errorf("profile %d mismatch:\n got  %+v\n want %+v", i, got, want)
		}
	}
}

func TestSaveOmitsEmptyOptionalFields(t *testing.T) {
	store := tempStore(t)
	if err := store.Add(Profile{Name: "work", Author: "John Doe", Email: "john@work.com"}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if err := store.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("failed to read saved file: %v", err)
	}
	content := string(data)

	if strings.Contains(content, "username") {
		t.Errorf("saved file should not contain 'username':\n%s", content)
	}
	if strings.Contains(content, "url") {
		t.Errorf("saved file should not contain 'url':\n%s", content)
	}
}

func TestLoadPreservesFileOrder(t *testing.T) {
	// Hand-edited file: comments, uneven whitespace, non-alphabetical
	// table order.
	content := `# personal profiles
[zulu]
author  = "Zed Zero"
email   = "zed@example.com"

[alpha]
  author = "Al Pha"
  email = "al@example.com"
  username = "alpha"

# work
[mike]
author = "Mid Dle"
email = "mid@example.com"
`
	path := filepath.Join(t.TempDir(), ProfileFileName)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	store, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() failed: %v", err)
	}

	wantOrder := []string{"zulu", "alpha", "mike"}
	if len(store.Profiles) != len(wantOrder) {
		t.Fatalf("expected %d profiles, got %d", len(wantOrder), len(store.Profiles))
	}
	for i, name := range wantOrder {
		if store.Profiles[i].Name != name {
			t.Errorf("profile %d: expected %q, got %q", i, name, store.Profiles[i].Name)
		}
	}

	// Order must survive a modify-save-load cycle.
	if err := store.Add(Profile{Name: "extra", Author: "Ex Tra", Email: "ex@example.com"}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if err := store.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	reloaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() after save failed: %v", err)
	}
	wantOrder = append(wantOrder, "extra")
	for i, name := range wantOrder {
		if reloaded.Profiles[i].Name != name {
			t.Errorf("after round trip, profile %d: expected %q, got %q", i, name, reloaded.Profiles[i].Name)
		}
	}
}

func TestAddDuplicate(t *testing.T) {
	store := tempStore(t)
	p := Profile{Name: "work", Author: "John Doe", Email: "john@work.com"}
	if err := store.Add(p); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	err := store.Add(Profile{Name: "work", Author: "Other", Email: "other@work.com"})
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("Add() error = %v, want ErrDuplicate", err)
	}

	// The store must be unchanged.
	if len(store.Profiles) != 1 {
		t.Fatalf("expected 1 profile after failed add, got %d", len(store.Profiles))
	}
	if store.Profiles[0].Author != "John Doe" {
		t.Errorf("original profile was modified: %+v", store.Profiles[0])
	}
}

func TestAddValidation(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		wantErr bool
	}{
		{
			name:    "missing name",
			profile: Profile{Author: "John Doe", Email: "john@example.com"},
			wantErr: true,
		},
		{
			name:    "missing author",
			profile: Profile{Name: "work", Email: "john@example.com"},
			wantErr: true,
		},
		{
			name:    "missing email",
			profile: Profile{Name: "work", Author: "John Doe"},
			wantErr: true,
		},
		{
			name:    "valid minimal profile",
			profile: Profile{Name: "work", Author: "John Doe", Email: "john@example.com"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := tempStore(t)
			err := store.Add(tt.profile)
			if (err != nil) != tt.wantErr {
				t.Errorf("Add() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRemoveThenGet(t *testing.T) {
	store := tempStore(t)
	if err := store.Add(Profile{Name: "x", Author: "X", Email: "x@example.com"}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}

	if err := store.Remove("x"); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}

	_, err := store.Get("x")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Remove() error = %v, want ErrNotFound", err)
	}
}

func TestRemoveNotFound(t *testing.T) {
	store := tempStore(t)
	err := store.Remove("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove() error = %v, want ErrNotFound", err)
	}
}

func TestListActiveMarker(t *testing.T) {
	store := tempStore(t)
	store.Profiles = []Profile{
		{Name: "a", Author: "A", Email: "a@x"},
		{Name: "b", Author: "B", Email: "b@x"},
	}

	entries := store.List("A", "a@x")
	if !entries[0].Active {
		t.Error("profile 'a' should be active")
	}
	if entries[1].Active {
		t.Error("profile 'b' should not be active")
	}
}

func TestListActiveRequiresBothFields(t *testing.T) {
	store := tempStore(t)
	store.Profiles = []Profile{
		{Name: "a", Author: "A", Email: "a@x"},
	}

	tests := []struct {
		name   string
		author string
		email  string
		active bool
	}{
		{"both match", "A", "a@x", true},
		{"author only", "A", "other@x", false},
		{"email only", "Other", "a@x", false},
		{"neither", "Other", "other@x", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := store.List(tt.author, tt.email)
			if entries[0].Active != tt.active {
				t.Errorf("Active = %v, want %v", entries[0].Active, tt.active)
			}
		})
	}
}

func TestListDuplicateIdentityMarksAll(t *testing.T) {
	store := tempStore(t)
	store.Profiles = []Profile{
		{Name: "work", Author: "John Doe", Email: "john@example.com"},
		{Name: "oss", Author: "John Doe", Email: "john@example.com"},
	}

	entries := store.List("John Doe", "john@example.com")
	if !entries[0].Active || !entries[1].Active {
		t.Error("profiles sharing author/email should both be marked active")
	}
}

func TestFindActiveFirstMatch(t *testing.T) {
	store := tempStore(t)
	store.Profiles = []Profile{
		{Name: "other", Author: "B", Email: "b@x"},
		{Name: "first", Author: "A", Email: "a@x"},
		{Name: "second", Author: "A", Email: "a@x"},
	}

	p := store.FindActive("A", "a@x")
	if p == nil {
		t.Fatal("FindActive() returned nil")
	}
	if p.Name != "first" {
		t.Errorf("FindActive() = %q, want %q", p.Name, "first")
	}

	if store.FindActive("A", "missing@x") != nil {
		t.Error("FindActive() should return nil when nothing matches")
	}
}

func TestDefaultPathEnvOverride(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "profiles.toml")
	t.Setenv(ProfileFileEnv, custom)

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() failed: %v", err)
	}
	if path != custom {
		t.Errorf("DefaultPath() = %q, want %q", path, custom)
	}
}

func TestDefaultPathHome(t *testing.T) {
	t.Setenv(ProfileFileEnv, "")

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath() failed: %v", err)
	}
	if filepath.Base(path) != ProfileFileName {
		t.Errorf("DefaultPath() = %q, want a %s file", path, ProfileFileName)
	}
}

func TestSavePermissions(t *testing.T) {
	store := tempStore(t)
	if err := store.Add(Profile{Name: "work", Author: "John Doe", Email: "john@work.com"}); err != nil {
		t.Fatalf("Add() failed: %v", err)
	}
	if err := store.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	info, err := os.Stat(store.Path())
	if err != nil {
		t.Fatalf("Stat() failed: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("profile file permissions = %o, want 0600", perm)
	}
}
