// Content fingerprints and archive digests.
//
// fingerprint is a fast non-cryptographic hash (xxh3, 16 hex characters)
// that gives titles without any id characters a stable fallback id. ArchiveDigest is
// BLAKE2b-256 over a whole export, suitable for publishing alongside it.
package promptflow

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/xxh3"
	"golang.org/x/crypto/blake2b"
)

// fingerprint returns the 16 hex character xxh3 hash of s.
func fingerprint(s string) string {
	return fmt.Sprintf("%016x", xxh3.HashString(s))
}

// ArchiveDigest returns the hex BLAKE2b-256 digest of the file at path.
func ArchiveDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: open %s: %w", ErrIO, path, err)
	}
	defer f.Close()

	h, _ := blake2b.New256(nil) // only fails for an oversized key
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("%w: read %s: %w", ErrIO, path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
