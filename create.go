// Document creation and update.
//
// Create derives the id from the title and writes a fresh file. A title
// that derives to an existing id replaces that document: there is no
// duplicate check and no suffixing. Update reads the current file, applies
// only the fields present in the patch and writes it back with a new
// updated_at. Neither operation compares versions, so the last write wins.
//
// Batch validates every input before writing any of them.
package promptflow

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CreateInput is the content of a new document.
type CreateInput struct {
	Title       string
	Content     string
	Tags        []string
	Description *string
	Collection  Collection
}

// Patch lists the fields an Update changes. Nil fields are left alone;
// an empty non-nil Tags slice clears the tags.
type Patch struct {
	Title       *string
	Content     *string
	Tags        []string
	Description *string
}

// Create writes a new document and returns it as stored.
func (s *Store) Create(in CreateInput) (*Document, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	r, c, err := s.open(in.Collection)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	in.Collection = c
	return s.createOne(r, in)
}

// Batch creates several documents. All inputs are validated before any
// write begins; a failed write stops the batch and earlier documents stay
// written. Inputs are processed in slice order.
func (s *Store) Batch(inputs ...CreateInput) ([]*Document, error) {
	for _, in := range inputs {
		if err := validateInput(in); err != nil {
			return nil, err
		}
	}
	out := make([]*Document, 0, len(inputs))
	for _, in := range inputs {
		d, err := s.Create(in)
		if err != nil {
			return out, err
		}
		out = append(out, d)
	}
	return out, nil
}

func (s *Store) createOne(r *os.Root, in CreateInput) (*Document, error) {
	now := timestamp(timeNow())
	d := &Document{
		ID:          idForTitle(in.Title),
		Title:       in.Title,
		Content:     in.Content,
		Tags:        in.Tags,
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Collection:  in.Collection,
	}
	normalize(d)
	d.FilePath = filepath.Join(r.Name(), d.ID+Ext)

	if err := s.writeDocument(r, d); err != nil {
		return nil, err
	}
	return d, nil
}

// Update applies p to an existing document. It fails with ErrNotFound when
// the file is missing.
func (s *Store) Update(c Collection, id string, p Patch) (*Document, error) {
	if p.Title != nil && strings.TrimSpace(*p.Title) == "" {
		return nil, fmt.Errorf("%w: title is empty", ErrValidation)
	}
	r, c, err := s.target(c, id)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	d, err := readDocument(r, c, id)
	if err != nil {
		return nil, err
	}
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Content != nil {
		d.Content = *p.Content
	}
	if p.Tags != nil {
		d.Tags = p.Tags
	}
	if p.Description != nil {
		desc := *p.Description
		d.Description = &desc
	}
	d.UpdatedAt = timestamp(timeNow())
	normalize(d)

	if err := s.writeDocument(r, d); err != nil {
		return nil, err
	}
	return d, nil
}

func validateInput(in CreateInput) error {
	if strings.TrimSpace(in.Title) == "" {
		return fmt.Errorf("%w: title is empty", ErrValidation)
	}
	if _, err := ParseCollection(string(in.Collection)); err != nil {
		return fmt.Errorf("%w: %q", err, in.Collection)
	}
	return nil
}

// normalize puts d into the shape it has after a write and re-read: header
// values on one line, tags trimmed with empties dropped, and the body
// trimmed the way the decoder trims it.
func normalize(d *Document) {
	d.Title = oneLine(d.Title)
	tags := make([]string, 0, len(d.Tags))
	for _, t := range d.Tags {
		if t = strings.TrimSpace(oneLine(t)); t != "" {
			tags = append(tags, t)
		}
	}
	d.Tags = tags
	if d.Description != nil {
		desc := oneLine(*d.Description)
		d.Description = &desc
	}
	d.Content = trimBlankLines(d.Content)
}
