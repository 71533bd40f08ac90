// Storage root resolution.
//
// The storage root is either the user's override path or a per-user
// documents directory. Overrides must be absolute after "~" expansion;
// relative input is rejected instead of being resolved against the working
// directory, because the same configuration is read by processes started
// from anywhere. The root and its collection directories are created
// lazily and idempotently.
package promptflow

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// AppDir is the directory name of the default storage root.
const AppDir = "PromptFlow"

var userHomeDir = os.UserHomeDir // replaced in tests

// DefaultRoot returns the platform documents directory joined with AppDir.
// $XDG_DOCUMENTS_DIR wins when set; otherwise ~/Documents is used.
func DefaultRoot() (string, error) {
	if dir := os.Getenv("XDG_DOCUMENTS_DIR"); filepath.IsAbs(dir) {
		return filepath.Join(dir, AppDir), nil
	}
	home, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: home directory: %w", ErrIO, err)
	}
	return filepath.Join(home, "Documents", AppDir), nil
}

// ResolveStorageRoot computes the effective storage root. A blank override
// selects defaultRoot (DefaultRoot when nil), which is created on demand.
// Otherwise override is "~"-expanded and must be absolute. In both cases
// a path that exists as a non-directory is rejected with ErrValidation.
// The returned path is cleaned, so it never carries a trailing separator.
func ResolveStorageRoot(override string, defaultRoot func() (string, error)) (string, error) {
	override = strings.TrimSpace(override)

	if override == "" {
		if defaultRoot == nil {
			defaultRoot = DefaultRoot
		}
		dir, err := defaultRoot()
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(dir) == "" {
			return "", fmt.Errorf("%w: default storage root is empty", ErrValidation)
		}
		dir = filepath.Clean(dir)
		if err := checkDir(dir); err != nil {
			return "", err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("%w: mkdir %s: %w", ErrIO, dir, err)
		}
		return dir, nil
	}

	dir, err := expandHome(override)
	if err != nil {
		return "", err
	}
	if !filepath.IsAbs(dir) {
		return "", fmt.Errorf("%w: storage path must be absolute: %q", ErrValidation, override)
	}
	dir = filepath.Clean(dir)
	if err := checkDir(dir); err != nil {
		return "", err
	}
	return dir, nil
}

// expandHome replaces a leading "~" (alone, or followed by a separator)
// with the home directory. Other input is returned unchanged; "~user" is
// not supported and stays relative.
func expandHome(p string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, `~\`) {
		return p, nil
	}
	home, err := userHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: home directory: %w", ErrIO, err)
	}
	if p == "~" {
		return home, nil
	}
	return filepath.Join(home, p[2:]), nil
}

// checkDir rejects a path that exists but is not a directory. A missing
// path is fine; it is created later.
func checkDir(dir string) error {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil
	case err != nil:
		return fmt.Errorf("%w: stat %s: %w", ErrIO, dir, err)
	case !info.IsDir():
		return fmt.Errorf("%w: storage path is a file, not a directory: %s", ErrValidation, dir)
	}
	return nil
}

// EnsureCollections creates root and one subdirectory per collection if
// they are missing and returns root unchanged.
func EnsureCollections(root string) (string, error) {
	for _, c := range Collections() {
		dir := filepath.Join(root, string(c))
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("%w: mkdir %s: %w", ErrIO, dir, err)
		}
	}
	return root, nil
}

// CollectionPath returns the directory of c under root. It does not touch
// the filesystem.
func CollectionPath(root string, c Collection) string {
	return filepath.Join(root, string(c))
}
