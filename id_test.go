package promptflow

import (
	"strings"
	"testing"
)

func TestDeriveID(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"My Prompt", "my-prompt"},
		{"Hello, World!", "hello_-world"},
		{"", ""},
		{"!!!", ""},
		{"---", ""},
		{"  padded  ", "padded"},
		{"snake_case-kebab", "snake_case-kebab"},
		{"Tab\tand\u00a0nbsp", "tab-and-nbsp"},
		{"ideographic\u3000space", "ideographic-space"},
		{"v1.2.3", "v1_2_3"},
		{"Café", "caf"},
		{"中文标题", ""},
		{"a/b\\c", "a_b_c"},
		{"UPPER lower 123", "upper-lower-123"},
	}
	for _, tt := range tests {
		if got := DeriveID(tt.title); got != tt.want {
			t.Errorf("DeriveID(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestDeriveIDIdempotent(t *testing.T) {
	for _, title := range []string{"My Prompt", "Hello, World!", "x__y--z", "Ünïcödé títle", "a b c"} {
		id := DeriveID(title)
		if again := DeriveID(id); again != id {
			t.Errorf("DeriveID(DeriveID(%q)) = %q, want %q", title, again, id)
		}
	}
}

func TestDeriveIDCharset(t *testing.T) {
	id := DeriveID("Ω mixed: 🚀 Title (draft) #3")
	for _, r := range id {
		if !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '_') {
			t.Fatalf("DeriveID produced %q in %q", r, id)
		}
	}
	if strings.Trim(id, "-_") != id {
		t.Errorf("DeriveID left separators at the ends: %q", id)
	}
}

func TestIDForTitleFallback(t *testing.T) {
	id := idForTitle("中文标题")
	if !strings.HasPrefix(id, "prompt-") || len(id) != len("prompt-")+8 {
		t.Fatalf("idForTitle = %q, want prompt-<8 hex>", id)
	}
	if idForTitle("中文标题") != id {
		t.Error("fallback id is not deterministic")
	}
	if idForTitle("其他标题") == id {
		t.Error("different titles share a fallback id")
	}
	if got := idForTitle("My Prompt"); got != "my-prompt" {
		t.Errorf("idForTitle = %q, want my-prompt", got)
	}
}

func TestValidID(t *testing.T) {
	for _, id := range []string{"my-prompt", "Mixed Case", "starter-x", "a.b"} {
		if !validID(id) {
			t.Errorf("validID(%q) = false", id)
		}
	}
	for _, id := range []string{"", ".", "..", "a/b", `a\b`, "../x", "nul\x00"} {
		if validID(id) {
			t.Errorf("validID(%q) = true", id)
		}
	}
}
