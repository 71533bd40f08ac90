// Usage tracking.
//
// Each use bumps use_count by one and stamps last_used and updated_at with
// the same instant. The count only ever grows; nothing resets it.
package promptflow

// RecordUse marks a document as used and returns it as stored. It fails
// with ErrNotFound when the file is missing.
func (s *Store) RecordUse(c Collection, id string) (*Document, error) {
	r, c, err := s.target(c, id)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	d, err := readDocument(r, c, id)
	if err != nil {
		return nil, err
	}

	now := timestamp(timeNow())
	d.UseCount++
	d.LastUsedAt = &now
	d.UpdatedAt = now
	normalize(d)

	if err := s.writeDocument(r, d); err != nil {
		return nil, err
	}
	return d, nil
}
