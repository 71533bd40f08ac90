// Document type and file codec.
//
// A document file is:
//
//	---
//	<header lines>
//	---
//
//	<body>
//
// The first non-blank line must be the "---" delimiter and the header ends
// at the next line that is exactly "---" (surrounding whitespace ignored).
// The body is everything after that, with leading blank lines and trailing
// whitespace removed. Files without this shape are still valid documents:
// the whole text, trimmed of surrounding whitespace, becomes the body and
// the title falls back to the filename stem. Decoding therefore never fails.
//
// The body is not escaped against the delimiter. A body containing a "---"
// line round-trips fine because only the first closing delimiter counts,
// but a header value can never contain a line break (EncodeHeader folds
// them into spaces).
package promptflow

import (
	"path/filepath"
	"strings"
	"time"
	"unicode"
)

// Ext is the filename extension of document files.
const Ext = ".md"

// TimeLayout is the on-disk timestamp format (always UTC).
const TimeLayout = "2006-01-02T15:04:05Z"

const delimiter = "---"

// untitled is the title of last resort when a file has neither a header
// title nor a usable filename stem.
const untitled = "untitled"

var timeNow = time.Now // replaced in tests

// timestamp formats t in TimeLayout.
func timestamp(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}

// Collection names one of the two fixed document directories.
type Collection string

const (
	Favorites Collection = "favorites"
	Templates Collection = "templates"
)

// Collections returns every collection in listing order.
func Collections() []Collection {
	return []Collection{Favorites, Templates}
}

// ParseCollection validates a collection name.
func ParseCollection(s string) (Collection, error) {
	switch c := Collection(strings.TrimSpace(s)); c {
	case Favorites, Templates:
		return c, nil
	}
	return "", ErrInvalidCollection
}

// Document is one stored prompt. FilePath and Collection describe where the
// file lives and are never written into it.
type Document struct {
	ID          string     `json:"id" yaml:"id"`
	Title       string     `json:"title" yaml:"title"`
	Content     string     `json:"content" yaml:"content"`
	Tags        []string   `json:"tags" yaml:"tags"`
	Description *string    `json:"description,omitempty" yaml:"description,omitempty"`
	UseCount    int        `json:"useCount" yaml:"use_count"`
	LastUsedAt  *string    `json:"lastUsed,omitempty" yaml:"last_used,omitempty"`
	CreatedAt   string     `json:"createdAt" yaml:"created_at"`
	UpdatedAt   string     `json:"updatedAt" yaml:"updated_at"`
	FilePath    string     `json:"filePath" yaml:"file_path"`
	Collection  Collection `json:"collection" yaml:"collection"`
}

func (d *Document) header() Header {
	return Header{
		Title:       d.Title,
		Tags:        d.Tags,
		Description: d.Description,
		UseCount:    d.UseCount,
		LastUsedAt:  d.LastUsedAt,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

// EncodeDocument renders d in the on-disk format. The id, file path and
// collection are implied by the file location and are not encoded.
func EncodeDocument(d *Document) string {
	return delimiter + "\n" + EncodeHeader(d.header()) + "\n" + delimiter + "\n\n" + d.Content
}

// DecodeDocument parses raw file content. filePath supplies the id (its
// stem) and the fallback title; collection is recorded as given.
func DecodeDocument(raw, filePath string, collection Collection) *Document {
	stem := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
	fallback := stem
	if fallback == "" || fallback == "." {
		fallback = untitled
	}

	d := &Document{
		ID:         stem,
		FilePath:   filePath,
		Collection: collection,
	}

	header, body, ok := splitDocument(raw)
	if !ok {
		now := timestamp(timeNow())
		d.Title = fallback
		d.Content = strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff"))
		d.Tags = []string{}
		d.CreatedAt = now
		d.UpdatedAt = now
		return d
	}

	h := DecodeHeader(header)
	d.Title = h.Title
	if strings.TrimSpace(d.Title) == "" {
		d.Title = fallback
	}
	d.Content = body
	d.Tags = h.Tags
	d.Description = h.Description
	d.UseCount = h.UseCount
	d.LastUsedAt = h.LastUsedAt
	d.CreatedAt = h.CreatedAt
	d.UpdatedAt = h.UpdatedAt
	return d
}

// splitDocument separates the header block from the body. ok is false when
// the opening or closing delimiter line is missing.
func splitDocument(raw string) (header, body string, ok bool) {
	rest := strings.TrimLeft(raw, "\ufeff \t\r\n")
	open, rest, found := strings.Cut(rest, "\n")
	if !found || strings.TrimSpace(open) != delimiter {
		return "", "", false
	}

	pos := 0
	for {
		i := strings.IndexByte(rest[pos:], '\n')
		end := len(rest)
		ln := rest[pos:]
		if i >= 0 {
			end = pos + i + 1
			ln = rest[pos : pos+i]
		}
		if strings.TrimSpace(ln) == delimiter {
			return rest[:pos], trimBlankLines(rest[end:]), true
		}
		if i < 0 {
			return "", "", false
		}
		pos = end
	}
}

// trimBlankLines drops leading blank lines and trailing whitespace while
// keeping the indentation of the first non-blank line.
func trimBlankLines(s string) string {
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	for {
		ln, rest, found := strings.Cut(s, "\n")
		if !found || strings.TrimSpace(ln) != "" {
			return s
		}
		s = rest
	}
}
