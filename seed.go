// Starter document seeding.
//
// Seeding writes the built-in starter templates into a collection
// directory, skipping any whose file already exists. An existing file is
// never rewritten, even when it differs from the built-in version; the
// report only says whether the body still matches (SeedUnchanged) or the
// user has changed it (SeedEdited). Running the seed twice is therefore a
// no-op on disk the second time.
package promptflow

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SeedStatus describes what seeding did with one starter.
type SeedStatus string

const (
	SeedWritten   SeedStatus = "written"   // file was missing and has been written
	SeedUnchanged SeedStatus = "unchanged" // file exists with the built-in body
	SeedEdited    SeedStatus = "edited"    // file exists with a different body, left alone
)

// SeedResult is the outcome for one starter.
type SeedResult struct {
	ID     string     `json:"id" yaml:"id"`
	Status SeedStatus `json:"status" yaml:"status"`
}

type starter struct {
	ID          string
	Title       string
	Description string
	Tags        []string
	Content     string
}

func (st starter) document(collectionPath string, now string) *Document {
	desc := st.Description
	d := &Document{
		ID:          st.ID,
		Title:       st.Title,
		Content:     st.Content,
		Tags:        append([]string(nil), st.Tags...),
		Description: &desc,
		CreatedAt:   now,
		UpdatedAt:   now,
		FilePath:    filepath.Join(collectionPath, st.ID+Ext),
		Collection:  Templates,
	}
	normalize(d)
	return d
}

// StarterIDs returns the ids of the built-in starters in seeding order.
func StarterIDs() []string {
	ids := make([]string, len(starters))
	for i, st := range starters {
		ids[i] = st.ID
	}
	return ids
}

// SeedStarterDocuments writes every built-in starter that is missing from
// collectionPath. The directory is created if needed.
func SeedStarterDocuments(collectionPath string) ([]SeedResult, error) {
	return New(Config{}).seed(collectionPath)
}

func (s *Store) seed(collectionPath string) ([]SeedResult, error) {
	if err := os.MkdirAll(collectionPath, 0o755); err != nil {
		return nil, fmt.Errorf("%w: mkdir %s: %w", ErrIO, collectionPath, err)
	}
	r, err := os.OpenRoot(collectionPath)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrIO, collectionPath, err)
	}
	defer r.Close()

	now := timestamp(timeNow())
	results := make([]SeedResult, 0, len(starters))

	for _, st := range starters {
		d := st.document(collectionPath, now)
		data, err := r.ReadFile(st.ID + Ext)
		switch {
		case err == nil:
			status := SeedUnchanged
			existing := DecodeDocument(string(data), d.FilePath, d.Collection)
			if existing.Content != d.Content {
				status = SeedEdited
			}
			s.log.Debug("promptflow: starter exists", "id", st.ID, "status", status)
			results = append(results, SeedResult{ID: st.ID, Status: status})
			continue
		case !errors.Is(err, fs.ErrNotExist):
			return results, fmt.Errorf("%w: read %s: %w", ErrIO, st.ID+Ext, err)
		}

		if err := s.writeDocument(r, d); err != nil {
			return results, err
		}
		results = append(results, SeedResult{ID: st.ID, Status: SeedWritten})
	}
	return results, nil
}
