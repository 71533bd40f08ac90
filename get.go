// Document retrieval.
package promptflow

import (
	"errors"
	"fmt"
	"io/fs"
)

// Get reads one document. It fails with ErrNotFound when the file is
// missing.
func (s *Store) Get(c Collection, id string) (*Document, error) {
	r, c, err := s.target(c, id)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return readDocument(r, c, id)
}

// Exists reports whether a document file is present.
func (s *Store) Exists(c Collection, id string) (bool, error) {
	r, _, err := s.target(c, id)
	if err != nil {
		return false, err
	}
	defer r.Close()

	_, err = r.Stat(id + Ext)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("%w: stat %s: %w", ErrIO, id+Ext, err)
}
