// Read primitives over a collection directory.
//
// Both functions take an *os.Root opened on one collection, so a name can
// never resolve outside it. Directory entries come back in the order the
// filesystem returns them; nothing is sorted.
package promptflow

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// readDocument loads and decodes <id>.md.
func readDocument(r *os.Root, c Collection, id string) (*Document, error) {
	name := id + Ext
	data, err := r.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, c, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, name, err)
	}
	return DecodeDocument(string(data), filepath.Join(r.Name(), name), c), nil
}

// documentNames lists the document filenames of a collection directory.
// Subdirectories, temp files and anything without the Ext suffix are
// ignored, as is a bare ".md" which has no usable id.
func documentNames(r *os.Root) ([]string, error) {
	dir, err := r.Open(".")
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrIO, r.Name(), err)
	}
	defer dir.Close()

	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("%w: readdir %s: %w", ErrIO, r.Name(), err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, Ext) || name == Ext {
			continue
		}
		names = append(names, name)
	}
	return names, nil
}
