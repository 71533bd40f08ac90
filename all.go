// Enumeration across both collections.
//
// All walks favorites first, then templates, with the same skip-unreadable
// policy as Documents. The storage root is resolved once per collection,
// so a config change in the middle of a long iteration only affects the
// collections not yet started.
package promptflow

import "iter"

// All yields every readable document of every collection. Callers consume
// results lazily via range and can break early.
func (s *Store) All() iter.Seq2[*Document, error] {
	return func(yield func(*Document, error) bool) {
		for _, c := range Collections() {
			for d, err := range s.Documents(c) {
				if !yield(d, err) {
					return
				}
				if err != nil {
					return
				}
			}
		}
	}
}

// ListAll returns every readable document, favorites first.
func (s *Store) ListAll() ([]*Document, error) {
	return collect(s.All())
}
