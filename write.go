// Write primitives for document files.
//
// A document is written to <id>.md.tmp and renamed over <id>.md, so a
// reader sees either the old file or the new one, never a torn write. With
// SyncWrites the temp file is fsynced before the rename. The temp name does
// not end in Ext and is therefore never listed.
package promptflow

import (
	"fmt"
	"os"
)

const tmpSuffix = ".tmp"

// writeDocument encodes d and replaces <d.ID>.md in r.
func (s *Store) writeDocument(r *os.Root, d *Document) error {
	name := d.ID + Ext
	tmp := name + tmpSuffix

	f, err := r.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrIO, tmp, err)
	}
	if _, err := f.WriteString(EncodeDocument(d)); err != nil {
		f.Close()
		r.Remove(tmp)
		return fmt.Errorf("%w: write %s: %w", ErrIO, tmp, err)
	}
	if s.config.SyncWrites {
		if err := f.Sync(); err != nil {
			f.Close()
			r.Remove(tmp)
			return fmt.Errorf("%w: sync %s: %w", ErrIO, tmp, err)
		}
	}
	if err := f.Close(); err != nil {
		r.Remove(tmp)
		return fmt.Errorf("%w: close %s: %w", ErrIO, tmp, err)
	}
	if err := r.Rename(tmp, name); err != nil {
		r.Remove(tmp)
		return fmt.Errorf("%w: rename %s: %w", ErrIO, name, err)
	}

	s.log.Debug("promptflow: wrote document", "collection", d.Collection, "id", d.ID)
	return nil
}
