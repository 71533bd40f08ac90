package promptflow

import (
	"reflect"
	"strings"
	"testing"
	"time"
)

// fixTime pins timeNow for the duration of the test.
func fixTime(t testing.TB, ts string) time.Time {
	t.Helper()
	at, err := time.Parse(TimeLayout, ts)
	if err != nil {
		t.Fatalf("parse %q: %v", ts, err)
	}
	orig := timeNow
	timeNow = func() time.Time { return at }
	t.Cleanup(func() { timeNow = orig })
	return at
}

func TestEncodeDocumentFormat(t *testing.T) {
	d := &Document{
		Title:     "My Prompt",
		Content:   "Hello",
		Tags:      []string{"a", "b"},
		CreatedAt: "2024-01-01T00:00:00Z",
		UpdatedAt: "2024-01-01T00:00:00Z",
	}
	want := `---
title: "My Prompt"
tags: ["a", "b"]
use_count: 0
created_at: 2024-01-01T00:00:00Z
updated_at: 2024-01-01T00:00:00Z
---

Hello`
	if got := EncodeDocument(d); got != want {
		t.Errorf("EncodeDocument =\n%s\nwant\n%s", got, want)
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	tests := []*Document{
		{
			ID: "simple", Title: "Simple", Content: "body", Tags: []string{},
			CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-02T00:00:00Z",
		},
		{
			ID: "full", Title: "Full", Content: "line 1\n\n  indented\n---\nafter a delimiter line",
			Tags: []string{"x", "y"}, Description: strp("desc"), UseCount: 3,
			LastUsedAt: strp("2024-03-03T03:03:03Z"),
			CreatedAt:  "2024-01-01T00:00:00Z", UpdatedAt: "2024-03-03T03:03:03Z",
		},
		{
			ID: "empty-body", Title: "Empty", Content: "", Tags: []string{"t"},
			CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z",
		},
		{
			ID: "unicode", Title: "提示词 – prompt", Content: "你好\n世界", Tags: []string{"中文"},
			CreatedAt: "2024-01-01T00:00:00Z", UpdatedAt: "2024-01-01T00:00:00Z",
		},
	}
	for _, want := range tests {
		t.Run(want.ID, func(t *testing.T) {
			got := DecodeDocument(EncodeDocument(want), "/x/"+want.ID+Ext, Templates)
			want := *want
			want.FilePath = "/x/" + want.ID + Ext
			want.Collection = Templates
			if !reflect.DeepEqual(got, &want) {
				t.Errorf("round trip\n got %+v\nwant %+v", got, &want)
			}
		})
	}
}

func TestDecodeDocumentFallback(t *testing.T) {
	fixTime(t, "2025-06-01T12:00:00Z")

	raw := "\n\nJust some text\nwith two lines\n\n"
	d := DecodeDocument(raw, "/root/favorites/notes.md", Favorites)

	if d.ID != "notes" {
		t.Errorf("ID = %q, want notes", d.ID)
	}
	if d.Title != "notes" {
		t.Errorf("Title = %q, want notes", d.Title)
	}
	if d.Content != "Just some text\nwith two lines" {
		t.Errorf("Content = %q", d.Content)
	}
	if len(d.Tags) != 0 || d.UseCount != 0 || d.Description != nil || d.LastUsedAt != nil {
		t.Errorf("metadata not defaulted: %+v", d)
	}
	if d.CreatedAt != "2025-06-01T12:00:00Z" || d.UpdatedAt != d.CreatedAt {
		t.Errorf("timestamps = %q/%q, want decode time", d.CreatedAt, d.UpdatedAt)
	}
	if d.Collection != Favorites || d.FilePath != "/root/favorites/notes.md" {
		t.Errorf("location = %q %q", d.Collection, d.FilePath)
	}
}

func TestDecodeDocumentFallbackTrimsInput(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"   indented text   \n", "indented text"},
		{"\ufeff  after bom\r\n", "after bom"},
		{"\t\n  first\n  second  \n\n", "first\n  second"},
		{"", ""},
	}
	for _, tt := range tests {
		d := DecodeDocument(tt.raw, "plain.md", Templates)
		if d.Content != tt.want {
			t.Errorf("DecodeDocument(%q).Content = %q, want %q", tt.raw, d.Content, tt.want)
		}
	}
}

func TestDecodeDocumentUnclosedHeader(t *testing.T) {
	raw := "---\ntitle: \"Never closed\"\nbody"
	d := DecodeDocument(raw, "open.md", Favorites)
	if d.Title != "open" {
		t.Errorf("Title = %q, want filename fallback", d.Title)
	}
	if d.Content != raw {
		t.Errorf("Content = %q, want whole file", d.Content)
	}
}

func TestDecodeDocumentBlankTitle(t *testing.T) {
	raw := "---\ntitle: \"   \"\ntags: [a]\n---\n\nbody"
	d := DecodeDocument(raw, "dir/blank-title.md", Templates)
	if d.Title != "blank-title" {
		t.Errorf("Title = %q, want blank-title", d.Title)
	}
	if d.Content != "body" || len(d.Tags) != 1 {
		t.Errorf("decoded %+v", d)
	}
}

func TestDecodeDocumentTolerance(t *testing.T) {
	tests := []struct {
		name, raw, title, content string
	}{
		{"bom and leading blank lines", "\ufeff\n\n---\ntitle: x\n---\nbody", "x", "body"},
		{"crlf", "---\r\ntitle: \"y\"\r\n---\r\n\r\nbody\r\n", "y", "body"},
		{"delimiter with spaces", "---  \ntitle: z\n  ---\n\nbody", "z", "body"},
		{"empty header", "---\n---\n\nonly body", "f", "only body"},
		{"no body", "---\ntitle: t\n---", "t", ""},
		{"missing timestamps", "---\ntitle: t\n---\n\nb", "t", "b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DecodeDocument(tt.raw, "f.md", Favorites)
			if d.Title != tt.title {
				t.Errorf("Title = %q, want %q", d.Title, tt.title)
			}
			if d.Content != tt.content {
				t.Errorf("Content = %q, want %q", d.Content, tt.content)
			}
		})
	}
}

func TestDecodeDocumentMissingTimestamps(t *testing.T) {
	d := DecodeDocument("---\ntitle: t\n---\n\nb", "f.md", Favorites)
	if d.CreatedAt != "" || d.UpdatedAt != "" {
		t.Errorf("timestamps = %q/%q, want empty", d.CreatedAt, d.UpdatedAt)
	}
}

func TestDecodeDocumentUntitled(t *testing.T) {
	d := DecodeDocument("text", Ext, Favorites)
	if d.Title != untitled {
		t.Errorf("Title = %q, want %q", d.Title, untitled)
	}
}

func TestTrimBlankLines(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"\n\n", ""},
		{"  \n\t\n  keep indent\n\n", "  keep indent"},
		{"a\n\nb  \n", "a\n\nb"},
	}
	for _, tt := range tests {
		if got := trimBlankLines(tt.in); got != tt.want {
			t.Errorf("trimBlankLines(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseCollection(t *testing.T) {
	for _, c := range Collections() {
		got, err := ParseCollection(" " + string(c) + " ")
		if err != nil || got != c {
			t.Errorf("ParseCollection(%q) = %q, %v", c, got, err)
		}
	}
	for _, bad := range []string{"", "Favorites", "archive", "../favorites"} {
		if _, err := ParseCollection(bad); err != ErrInvalidCollection {
			t.Errorf("ParseCollection(%q) err = %v, want ErrInvalidCollection", bad, err)
		}
	}
	if !strings.Contains(ErrInvalidCollection.Error(), "collection") {
		t.Errorf("ErrInvalidCollection = %q", ErrInvalidCollection)
	}
}
