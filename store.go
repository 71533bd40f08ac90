// Store type and storage root handling.
//
// Store holds no open handles. Every operation resolves the storage root
// from the injected StorageConfig, makes sure both collection directories
// exist, and opens the collection through os.Root for the duration of the
// call. A storage path changed between two calls therefore takes effect on
// the second call without reopening anything.
//
// There is no locking. Two concurrent writers of the same document race at
// the filesystem level and the last rename wins.
package promptflow

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/klauspost/compress/flate"
)

// StorageConfig is the read side of the configuration service. Only the
// storage override path is consulted.
type StorageConfig interface {
	StoragePath() string
}

// Path is a fixed StorageConfig, handy for tests and one-off tools.
type Path string

func (p Path) StoragePath() string { return string(p) }

// Config holds store options.
type Config struct {
	Storage          StorageConfig          // nil means the default root
	DefaultRoot      func() (string, error) // default DefaultRoot
	Logger           *slog.Logger           // default slog.Default()
	SyncWrites       bool                   // fsync document files before the rename
	CompressionLevel int                    // archive deflate level, 0 means flate.DefaultCompression
}

// Store provides document operations over the two collections.
type Store struct {
	config Config
	log    *slog.Logger
}

// New returns a Store. It touches nothing on disk.
func New(config Config) *Store {
	if config.DefaultRoot == nil {
		config.DefaultRoot = DefaultRoot
	}
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	if config.CompressionLevel == 0 {
		config.CompressionLevel = flate.DefaultCompression
	}
	return &Store{config: config, log: config.Logger}
}

// Root resolves the storage root and ensures the collection directories.
func (s *Store) Root() (string, error) {
	var override string
	if s.config.Storage != nil {
		override = s.config.Storage.StoragePath()
	}
	root, err := ResolveStorageRoot(override, s.config.DefaultRoot)
	if err != nil {
		return "", err
	}
	return EnsureCollections(root)
}

// open returns a sandboxed handle on the directory of c together with the
// canonical collection name.
func (s *Store) open(c Collection) (*os.Root, Collection, error) {
	name, err := ParseCollection(string(c))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %q", err, c)
	}
	root, err := s.Root()
	if err != nil {
		return nil, "", err
	}
	dir := CollectionPath(root, name)
	r, err := os.OpenRoot(dir)
	if err != nil {
		return nil, "", fmt.Errorf("%w: open %s: %w", ErrIO, dir, err)
	}
	return r, name, nil
}

// target validates a single-document address and opens its collection.
func (s *Store) target(c Collection, id string) (*os.Root, Collection, error) {
	if !validID(id) {
		return nil, "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return s.open(c)
}
