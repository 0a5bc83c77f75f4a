package markdown_test

import (
	"testing"

	"github.com/mushikui/mushikui-quiz/internal/markdown"
)

func TestIsBlankMarker(t *testing.T) {
	cases := []struct {
		content string
		want    bool
	}{
		{"____", true},
		{"__ __", true},
		{"ABC", false},
		{"_ABC_", false}, // underscores around letters are emphasis, not a blank
		{"_あ_", false},
		{"_漢_", false},
		{"_カナ_", false},
		{"", false}, // no underscore at all
	}
	for _, c := range cases {
		if got := markdown.IsBlankMarker(c.content); got != c.want {
			t.Errorf("IsBlankMarker(%q) = %v, want %v", c.content, got, c.want)
		}
	}
}

func TestSplitForInputs(t *testing.T) {
	parts := markdown.SplitForInputs("正解は**____**である")
	want := []markdown.Part{
		{Type: markdown.PartText, Content: "正解は"},
		{Type: markdown.PartInput, BlankIndex: 0},
		{Type: markdown.PartText, Content: "である"},
	}
	if len(parts) != len(want) {
		t.Fatalf("got %d parts, want %d: %+v", len(parts), len(want), parts)
	}
	for i := range want {
		if parts[i] != want[i] {
			t.Errorf("part %d: got %+v, want %+v", i, parts[i], want[i])
		}
	}
}

// A bold span containing letters is answer text, not a blank; it stays in
// the text with its markers intact.
func TestSplitForInputsBoldPassthrough(t *testing.T) {
	parts := markdown.SplitForInputs("この語は**ABC**を指す")
	if len(parts) != 1 {
		t.Fatalf("got %d parts, want 1: %+v", len(parts), parts)
	}
	if parts[0].Type != markdown.PartText || parts[0].Content != "この語は**ABC**を指す" {
		t.Errorf("bold span was not passed through: %+v", parts[0])
	}
}

func TestSplitForInputsMultipleBlanks(t *testing.T) {
	parts := markdown.SplitForInputs("**____**と**____**")
	indices := []int{}
	for _, p := range parts {
		if p.Type == markdown.PartInput {
			indices = append(indices, p.BlankIndex)
		}
	}
	if len(indices) != 2 || indices[0] != 0 || indices[1] != 1 {
		t.Errorf("blank indices = %v, want [0 1]", indices)
	}
}

func TestScanBlanksPositions(t *testing.T) {
	text := "Aは**____**、Bは**____**"
	spans := markdown.ScanBlanks(text)
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(spans))
	}
	if spans[0].Start >= spans[1].Start {
		t.Errorf("spans out of order: %+v", spans)
	}
}

func TestFormatPlaceholders(t *testing.T) {
	got := markdown.FormatPlaceholders("Aは**___**でBは**__**である")
	want := "Aは[1]でBは[2]である"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestExtractBoldSpans(t *testing.T) {
	got := markdown.ExtractBoldSpans("1. **GABA|グリシン**、**H₂O**")
	if len(got) != 2 || got[0] != "GABA|グリシン" || got[1] != "H₂O" {
		t.Errorf("got %v", got)
	}
}
