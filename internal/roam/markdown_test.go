package roam

import (
	"testing"
	"time"
)

func TestRenderBlockText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "just text", "just text"},
		{"single link", "see [[My Page]]", "see [My Page](My Page)"},
		{"multiple links", "[[A]] and [[B]]", "[A](A) and [B](B)"},
		{"no closing bracket", "broken [[link", "broken [[link"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := renderBlockText(tt.input)
			if result != tt.expected {
				t.Errorf("renderBlockText(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestRenderBlockTree(t *testing.T) {
	block := pulledBlock{
		String: "parent",
		Children: []pulledBlock{
			{
				String: "child one",
				Children: []pulledBlock{
					{String: "grandchild"},
				},
			},
			{String: "child two"},
		},
	}

	expected := "parent\n  child one\n    grandchild\n  child two"
	result := renderBlockTree(block)
	if result != expected {
		t.Errorf("renderBlockTree() = %q, want %q", result, expected)
	}
}

func TestRenderBlockTreeSkipsBlankChildLines(t *testing.T) {
	block := pulledBlock{
		String: "parent",
		Children: []pulledBlock{
			{String: ""},
			{String: "kept"},
		},
	}

	expected := "parent\n  kept"
	result := renderBlockTree(block)
	if result != expected {
		t.Errorf("renderBlockTree() = %q, want %q", result, expected)
	}
}

func TestDailyPageNaming(t *testing.T) {
	day := time.Date(2025, time.January, 3, 23, 59, 0, 0, time.UTC)

	if title := dailyPageTitle(day); title != "January 03, 2025" {
		t.Errorf("dailyPageTitle() = %q, want %q", title, "January 03, 2025")
	}
	if uid := dailyPageUID(day); uid != "01-03-2025" {
		t.Errorf("dailyPageUID() = %q, want %q", uid, "01-03-2025")
	}

	// Any instant on the same calendar day resolves to the same page.
	morning := time.Date(2025, time.January, 3, 0, 1, 0, 0, time.UTC)
	if dailyPageUID(day) != dailyPageUID(morning) {
		t.Error("same-day instants must produce the same daily page UID")
	}
}

func TestNewBlockUID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		uid := newBlockUID()
		if len(uid) != 13 {
			t.Fatalf("newBlockUID() length = %d, want 13", len(uid))
		}
		if seen[uid] {
			t.Fatalf("newBlockUID() produced duplicate %q", uid)
		}
		seen[uid] = true
	}
}
