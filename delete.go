// Document deletion.
//
// Deletion removes the file. There is no soft delete and no history, and
// deleting a document that does not exist succeeds.
package promptflow

import (
	"errors"
	"fmt"
	"io/fs"
)

// Delete removes a document. A missing file is not an error.
func (s *Store) Delete(c Collection, id string) error {
	r, c, err := s.target(c, id)
	if err != nil {
		return err
	}
	defer r.Close()

	name := id + Ext
	if err := r.Remove(name); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: remove %s: %w", ErrIO, name, err)
	}
	s.log.Debug("promptflow: deleted document", "collection", c, "id", id)
	return nil
}
