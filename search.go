// Search over documents.
//
// A query is matched against the title, every tag, the description and
// the body. Queries without regex metacharacters take a literal path
// (strings.Contains on lowered text unless CaseSensitive); Regex forces
// compilation, with a "(?i)" prefix unless CaseSensitive. An empty query
// matches everything, which makes Search with only Match set a plain id
// filter.
//
// Match is a glob over ids ("starter-*", "*bug*"). It is compiled with
// gobwas/glob without separators, so '*' spans any run of id characters.
//
// Results are ranked by use_count (most used first), then by title.
package promptflow

import (
	"cmp"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/gobwas/glob"
)

// SearchOptions configures Search.
type SearchOptions struct {
	Regex         bool       // treat the query as a regular expression
	CaseSensitive bool       // default is case-insensitive
	Match         string     // glob over document ids, empty matches all
	Collection    Collection // restrict to one collection, empty searches both
}

// Search returns every readable document matching query and opts.
func (s *Store) Search(query string, opts SearchOptions) ([]*Document, error) {
	match, err := matcher(query, opts)
	if err != nil {
		return nil, err
	}

	var ids glob.Glob
	if opts.Match != "" {
		ids, err = glob.Compile(opts.Match)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid id pattern %q: %w", ErrValidation, opts.Match, err)
		}
	}

	seq := s.All()
	if opts.Collection != "" {
		seq = s.Documents(opts.Collection)
	}

	out := []*Document{}
	for d, err := range seq {
		if err != nil {
			return nil, err
		}
		if ids != nil && !ids.Match(d.ID) {
			continue
		}
		if match(d) {
			out = append(out, d)
		}
	}

	slices.SortStableFunc(out, func(a, b *Document) int {
		if c := cmp.Compare(b.UseCount, a.UseCount); c != 0 {
			return c
		}
		return cmp.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
	})
	return out, nil
}

// matcher builds the per-document predicate for query.
func matcher(query string, opts SearchOptions) (func(*Document) bool, error) {
	if query == "" {
		return func(*Document) bool { return true }, nil
	}

	if !opts.Regex || regexp.QuoteMeta(query) == query {
		needle := query
		fold := strings.ToLower
		if opts.CaseSensitive {
			fold = func(s string) string { return s }
		}
		needle = fold(needle)
		return func(d *Document) bool {
			return anyField(d, func(s string) bool {
				return strings.Contains(fold(s), needle)
			})
		}, nil
	}

	pattern := query
	if !opts.CaseSensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid pattern %q: %w", ErrValidation, query, err)
	}
	return func(d *Document) bool {
		return anyField(d, re.MatchString)
	}, nil
}

func anyField(d *Document, match func(string) bool) bool {
	if match(d.Title) || match(d.Content) {
		return true
	}
	if d.Description != nil && match(*d.Description) {
		return true
	}
	return slices.ContainsFunc(d.Tags, match)
}
