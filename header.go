// Header block codec.
//
// The header is a restricted key: value subset of YAML. Each non-empty line
// not starting with '#' is split at its first colon; the value is either a
// scalar, optionally wrapped in double quotes, or a flat list written as
// [a, b, c]. There is no nesting, no multi-line value and no escape
// processing: quotes are stripped verbatim.
//
// Decoding is two steps. scanHeader turns the text into a key/value map and
// never fails (lines without a colon are skipped), then DecodeHeader picks
// the known keys out of that map and applies defaults for the rest. Unknown
// keys are dropped, so files written by newer versions still load.
//
// Encoding is deterministic: title, tags, description, use_count,
// last_used, created_at, updated_at, always in that order, with absent
// optional fields omitted.
package promptflow

import (
	"strconv"
	"strings"
)

// Header keys as they appear on disk.
const (
	keyTitle       = "title"
	keyTags        = "tags"
	keyDescription = "description"
	keyUseCount    = "use_count"
	keyLastUsed    = "last_used"
	keyCreatedAt   = "created_at"
	keyUpdatedAt   = "updated_at"
)

// Header is the metadata block of a document file.
type Header struct {
	Title       string
	Tags        []string
	Description *string // nil when the key is absent
	UseCount    int
	LastUsedAt  *string // nil until the document is first used
	CreatedAt   string
	UpdatedAt   string
}

// scanHeader splits header text into trimmed key/value pairs. A repeated
// key keeps its last value.
func scanHeader(text string) map[string]string {
	fields := make(map[string]string)
	for ln := range strings.Lines(text) {
		ln = strings.TrimSpace(ln)
		if ln == "" || ln[0] == '#' {
			continue
		}
		key, value, ok := strings.Cut(ln, ":")
		if !ok {
			continue
		}
		fields[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return fields
}

// DecodeHeader parses header text. It never fails: missing numbers decode
// as 0, missing strings as "", missing lists as an empty slice and missing
// optional fields as nil.
func DecodeHeader(text string) Header {
	fields := scanHeader(text)

	h := Header{
		Title:     unquote(fields[keyTitle], '"'),
		Tags:      []string{},
		CreatedAt: unquote(fields[keyCreatedAt], '"'),
		UpdatedAt: unquote(fields[keyUpdatedAt], '"'),
	}
	if v, ok := fields[keyTags]; ok {
		h.Tags = parseList(v)
	}
	if v, ok := fields[keyDescription]; ok {
		d := unquote(v, '"')
		h.Description = &d
	}
	if v, ok := fields[keyUseCount]; ok {
		if n, err := strconv.Atoi(unquote(v, '"')); err == nil && n >= 0 {
			h.UseCount = n
		}
	}
	if v, ok := fields[keyLastUsed]; ok {
		s := unquote(v, '"')
		h.LastUsedAt = &s
	}
	return h
}

// EncodeHeader renders h as header lines, without delimiters or a trailing
// newline. Line breaks inside scalar values are folded into spaces so a
// value can never spill into the next key.
func EncodeHeader(h Header) string {
	var b strings.Builder

	b.WriteString(keyTitle + `: "` + oneLine(h.Title) + "\"\n")

	b.WriteString(keyTags + ": [")
	for i, tag := range h.Tags {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(`"` + oneLine(tag) + `"`)
	}
	b.WriteString("]\n")

	if h.Description != nil {
		b.WriteString(keyDescription + `: "` + oneLine(*h.Description) + "\"\n")
	}

	b.WriteString(keyUseCount + ": " + strconv.Itoa(h.UseCount) + "\n")

	if h.LastUsedAt != nil {
		b.WriteString(keyLastUsed + ": " + oneLine(*h.LastUsedAt) + "\n")
	}

	b.WriteString(keyCreatedAt + ": " + oneLine(h.CreatedAt) + "\n")
	b.WriteString(keyUpdatedAt + ": " + oneLine(h.UpdatedAt))

	return b.String()
}

// parseList decodes "[a, 'b', "c"]". Anything not wrapped in brackets is
// treated as an empty list. Elements are trimmed, lose one layer of single
// or double quotes, and are dropped when empty.
func parseList(v string) []string {
	out := []string{}
	if len(v) < 2 || v[0] != '[' || v[len(v)-1] != ']' {
		return out
	}
	for item := range strings.SplitSeq(v[1:len(v)-1], ",") {
		item = unquote(strings.TrimSpace(item), '"', '\'')
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// unquote strips one layer of matching quotes from s.
func unquote(s string, quotes ...byte) string {
	if len(s) < 2 {
		return s
	}
	for _, q := range quotes {
		if s[0] == q && s[len(s)-1] == q {
			return s[1 : len(s)-1]
		}
	}
	return s
}

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

func oneLine(s string) string {
	return lineBreaks.Replace(s)
}
