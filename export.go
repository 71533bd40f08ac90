// Archive export.
//
// ExportArchive packs the whole storage root into one deflate-compressed
// zip named PromptFlow-Export-<timestamp>.zip. Entry names are relative to
// the root and use forward slashes. Every directory below the root gets its
// own entry, so empty collections survive a round trip. Files are stored
// with mode 0644 and directories with 0755, whatever their mode on disk.
//
// An existing archive is never overwritten: a second export within the
// same second gets a "-1" suffix, and so on. The walk is not atomic with
// respect to concurrent writers, and an archive left behind by a failed
// walk is not removed. When the
// destination lies inside the root the archive being written is skipped.
package promptflow

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zip"
)

// ArchivePrefix starts every export filename.
const ArchivePrefix = "PromptFlow-Export-"

// ExportArchive writes an archive of root into dest (created if missing)
// at the default compression level and returns the archive path.
func ExportArchive(root, dest string) (string, error) {
	return exportArchive(root, dest, flate.DefaultCompression, slog.Default())
}

// Export resolves the storage root and archives it into dest.
func (s *Store) Export(dest string) (string, error) {
	root, err := s.Root()
	if err != nil {
		return "", err
	}
	return exportArchive(root, dest, s.config.CompressionLevel, s.log)
}

// archiveName is the export filename for the current time. ':' is not
// portable in filenames so the timestamp uses '-'. n > 0 adds a "-n"
// suffix for exports made within the same second.
func archiveName(n int) string {
	name := ArchivePrefix + strings.ReplaceAll(timestamp(timeNow()), ":", "-")
	if n > 0 {
		name += "-" + strconv.Itoa(n)
	}
	return name + ".zip"
}

// maxArchiveSuffix bounds the search for a free archive name.
const maxArchiveSuffix = 1000

// createArchive creates a new archive file in dest without ever replacing
// an existing one.
func createArchive(dest string) (*os.File, string, error) {
	for n := range maxArchiveSuffix {
		path := filepath.Join(dest, archiveName(n))
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return nil, "", fmt.Errorf("%w: create %s: %w", ErrIO, path, err)
		}
		return f, path, nil
	}
	return nil, "", fmt.Errorf("%w: no free archive name in %s", ErrIO, dest)
}

func exportArchive(root, dest string, level int, log *slog.Logger) (string, error) {
	if strings.TrimSpace(dest) == "" {
		return "", fmt.Errorf("%w: export destination is empty", ErrValidation)
	}
	comp, err := compressor(level)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return "", fmt.Errorf("%w: mkdir %s: %w", ErrIO, dest, err)
	}

	f, path, err := createArchive(dest)
	if err != nil {
		return "", err
	}
	defer f.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: abs %s: %w", ErrIO, path, err)
	}

	zw := zip.NewWriter(f)
	zw.RegisterCompressor(zip.Deflate, comp)

	n := 0
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p == root {
			return nil
		}
		if pa, _ := filepath.Abs(p); pa == abs {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)

		if d.IsDir() {
			hdr := &zip.FileHeader{Name: name + "/", Method: zip.Store}
			hdr.SetMode(fs.ModeDir | 0o755)
			_, err := zw.CreateHeader(hdr)
			return err
		}
		if !d.Type().IsRegular() {
			log.Debug("promptflow: export skipping non-regular file", "path", p)
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		hdr := &zip.FileHeader{Name: name, Method: zip.Deflate, Modified: info.ModTime()}
		hdr.SetMode(0o644)
		w, err := zw.CreateHeader(hdr)
		if err != nil {
			return err
		}
		if err := copyFile(w, p); err != nil {
			return err
		}
		n++
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("%w: export %s: %w", ErrIO, root, err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("%w: finish %s: %w", ErrIO, path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("%w: close %s: %w", ErrIO, path, err)
	}

	log.Debug("promptflow: exported archive", "path", path, "files", n)
	return path, nil
}

func copyFile(w io.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = io.Copy(w, f)
	return err
}
