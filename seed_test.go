package promptflow

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func TestSeedStarterDocuments(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "templates")

	results, err := SeedStarterDocuments(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(starters) {
		t.Fatalf("got %d results, want %d", len(results), len(starters))
	}
	for _, r := range results {
		if r.Status != SeedWritten {
			t.Errorf("%s: status %q, want %q", r.ID, r.Status, SeedWritten)
		}
	}

	s := New(Config{Storage: Path(filepath.Dir(dir))})
	for _, st := range starters {
		d, err := s.Get(Templates, st.ID)
		if err != nil {
			t.Fatalf("Get(%s): %v", st.ID, err)
		}
		if d.Title != st.Title || !slices.Equal(d.Tags, st.Tags) {
			t.Errorf("%s: title/tags = %q %q", st.ID, d.Title, d.Tags)
		}
		if d.Description == nil || *d.Description != st.Description {
			t.Errorf("%s: description = %v", st.ID, d.Description)
		}
		if d.Content != strings.TrimRight(st.Content, "\n") {
			t.Errorf("%s: content differs", st.ID)
		}
	}
}

func TestSeedNeverOverwrites(t *testing.T) {
	dir := t.TempDir()
	if _, err := SeedStarterDocuments(dir); err != nil {
		t.Fatal(err)
	}

	edited := filepath.Join(dir, starters[0].ID+Ext)
	custom := []byte("---\ntitle: \"Mine now\"\n---\n\nmy own words")
	if err := os.WriteFile(edited, custom, 0o644); err != nil {
		t.Fatal(err)
	}
	removed := filepath.Join(dir, starters[1].ID+Ext)
	if err := os.Remove(removed); err != nil {
		t.Fatal(err)
	}

	before := snapshot(t, dir)
	results, err := SeedStarterDocuments(dir)
	if err != nil {
		t.Fatal(err)
	}

	want := map[string]SeedStatus{starters[0].ID: SeedEdited, starters[1].ID: SeedWritten}
	for _, r := range results {
		status, ok := want[r.ID]
		if !ok {
			status = SeedUnchanged
		}
		if r.Status != status {
			t.Errorf("%s: status %q, want %q", r.ID, r.Status, status)
		}
	}

	got, _ := os.ReadFile(edited)
	if string(got) != string(custom) {
		t.Errorf("edited starter was rewritten:\n%s", got)
	}
	after := snapshot(t, dir)
	for name, data := range before {
		if after[name] != data {
			t.Errorf("%s changed on reseed", name)
		}
	}
	if _, ok := after[starters[1].ID+Ext]; !ok {
		t.Error("removed starter not restored")
	}
}

func snapshot(t *testing.T, dir string) map[string]string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	out := make(map[string]string)
	for _, e := range entries {
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			t.Fatal(err)
		}
		out[e.Name()] = string(data)
	}
	return out
}

func TestStarterIDs(t *testing.T) {
	got := StarterIDs()
	if len(got) != 6 {
		t.Fatalf("StarterIDs = %d, want 6", len(got))
	}
	for _, id := range got {
		if DeriveID(id) != id {
			t.Errorf("starter id %q is not a derived id", id)
		}
	}
}

func TestInitRepository(t *testing.T) {
	root := filepath.Join(t.TempDir(), "repo")
	res, err := InitRepository(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Root != root {
		t.Errorf("Root = %q, want %q", res.Root, root)
	}
	if len(res.Seeds) != len(starters) {
		t.Errorf("Seeds = %d, want %d", len(res.Seeds), len(starters))
	}
	for _, c := range Collections() {
		if _, err := os.Stat(CollectionPath(root, c)); err != nil {
			t.Errorf("%s: %v", c, err)
		}
	}

	res, err = InitRepository(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range res.Seeds {
		if r.Status != SeedUnchanged {
			t.Errorf("second init %s: %q", r.ID, r.Status)
		}
	}

	if _, err := InitRepository("relative", nil); err == nil {
		t.Error("relative path accepted")
	}
}

func TestInitRepositoryDefaultRoot(t *testing.T) {
	def := filepath.Join(t.TempDir(), AppDir)
	res, err := InitRepository("", staticRoot(def))
	if err != nil {
		t.Fatal(err)
	}
	if res.Root != def {
		t.Errorf("Root = %q, want %q", res.Root, def)
	}
}
