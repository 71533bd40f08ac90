package promptflow

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// fixHome points userHomeDir at dir for the duration of the test.
func fixHome(t *testing.T, dir string) {
	t.Helper()
	orig := userHomeDir
	userHomeDir = func() (string, error) { return dir, nil }
	t.Cleanup(func() { userHomeDir = orig })
}

func staticRoot(dir string) func() (string, error) {
	return func() (string, error) { return dir, nil }
}

func TestResolveStorageRootDefault(t *testing.T) {
	def := filepath.Join(t.TempDir(), "Documents", AppDir)
	for _, override := range []string{"", "   ", "\t\n"} {
		got, err := ResolveStorageRoot(override, staticRoot(def))
		if err != nil {
			t.Fatalf("ResolveStorageRoot(%q): %v", override, err)
		}
		if got != def {
			t.Errorf("ResolveStorageRoot(%q) = %q, want %q", override, got, def)
		}
	}
	if info, err := os.Stat(def); err != nil || !info.IsDir() {
		t.Errorf("default root not created: %v", err)
	}
}

func TestResolveStorageRootAbsolute(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "custom")
	got, err := ResolveStorageRoot(dir+string(filepath.Separator)+string(filepath.Separator), nil)
	if err != nil {
		t.Fatalf("ResolveStorageRoot: %v", err)
	}
	if got != dir {
		t.Errorf("ResolveStorageRoot = %q, want %q", got, dir)
	}
}

func TestResolveStorageRootHome(t *testing.T) {
	home := t.TempDir()
	fixHome(t, home)

	tests := []struct{ in, want string }{
		{"~", home},
		{"~/prompts", filepath.Join(home, "prompts")},
		{"~/a/b/", filepath.Join(home, "a", "b")},
	}
	for _, tt := range tests {
		got, err := ResolveStorageRoot(tt.in, nil)
		if err != nil {
			t.Fatalf("ResolveStorageRoot(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ResolveStorageRoot(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResolveStorageRootRejectsRelative(t *testing.T) {
	fixHome(t, t.TempDir())
	for _, in := range []string{"relative/path", "./here", "..", "~user/x", "prompts"} {
		_, err := ResolveStorageRoot(in, nil)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("ResolveStorageRoot(%q) err = %v, want ErrValidation", in, err)
		}
	}
}

func TestResolveStorageRootRejectsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := ResolveStorageRoot(file, nil); !errors.Is(err, ErrValidation) {
		t.Errorf("override file: err = %v, want ErrValidation", err)
	}
	if _, err := ResolveStorageRoot("", staticRoot(file)); !errors.Is(err, ErrValidation) {
		t.Errorf("default file: err = %v, want ErrValidation", err)
	}
}

func TestResolveStorageRootDefaultError(t *testing.T) {
	boom := errors.New("boom")
	_, err := ResolveStorageRoot("", func() (string, error) { return "", boom })
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want boom", err)
	}
}

func TestDefaultRoot(t *testing.T) {
	home := t.TempDir()
	fixHome(t, home)
	t.Setenv("XDG_DOCUMENTS_DIR", "")

	got, err := DefaultRoot()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(home, "Documents", AppDir); got != want {
		t.Errorf("DefaultRoot = %q, want %q", got, want)
	}

	docs := t.TempDir()
	t.Setenv("XDG_DOCUMENTS_DIR", docs)
	got, _ = DefaultRoot()
	if want := filepath.Join(docs, AppDir); got != want {
		t.Errorf("DefaultRoot with XDG = %q, want %q", got, want)
	}
}

func TestEnsureCollections(t *testing.T) {
	root := filepath.Join(t.TempDir(), "new", "root")
	for range 2 {
		got, err := EnsureCollections(root)
		if err != nil {
			t.Fatalf("EnsureCollections: %v", err)
		}
		if got != root {
			t.Errorf("EnsureCollections = %q, want %q", got, root)
		}
	}
	for _, c := range Collections() {
		if info, err := os.Stat(CollectionPath(root, c)); err != nil || !info.IsDir() {
			t.Errorf("%s not created: %v", c, err)
		}
	}
}

func TestEnsureCollectionsIOError(t *testing.T) {
	root := t.TempDir()
	// a file where the favorites directory should go
	if err := os.WriteFile(filepath.Join(root, string(Favorites)), nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := EnsureCollections(root); !errors.Is(err, ErrIO) {
		t.Errorf("err = %v, want ErrIO", err)
	}
}
