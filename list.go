// Collection enumeration.
//
// Listing reads every *.md file of a collection in directory order. A file
// that cannot be read is logged at debug level and skipped, so one bad
// file never hides the rest. Decoding itself cannot fail. Only a failure
// to open or read the directory is reported to the caller.
package promptflow

import (
	"iter"
	"path/filepath"
	"strings"
)

// Documents yields the documents of c lazily. Break from the range loop
// to stop early.
func (s *Store) Documents(c Collection) iter.Seq2[*Document, error] {
	return func(yield func(*Document, error) bool) {
		r, c, err := s.open(c)
		if err != nil {
			yield(nil, err)
			return
		}
		defer r.Close()

		names, err := documentNames(r)
		if err != nil {
			yield(nil, err)
			return
		}

		for _, name := range names {
			d, err := readDocument(r, c, strings.TrimSuffix(name, Ext))
			if err != nil {
				s.log.Debug("promptflow: skipping unreadable document",
					"collection", c, "path", filepath.Join(r.Name(), name), "err", err)
				continue
			}
			if !yield(d, nil) {
				return
			}
		}
	}
}

// ListCollection returns every readable document of c.
func (s *Store) ListCollection(c Collection) ([]*Document, error) {
	return collect(s.Documents(c))
}

func collect(seq iter.Seq2[*Document, error]) ([]*Document, error) {
	docs := []*Document{}
	for d, err := range seq {
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, nil
}
