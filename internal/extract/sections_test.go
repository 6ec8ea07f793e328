package extract

import (
	"strings"
	"testing"

	"github.com/niyamr/actscan/internal/model"
)

func TestSectionExtractor_AllCategoriesPresent(t *testing.T) {
	extractor := NewSectionExtractor()

	// Every category must appear in the result, even for empty input
	sections := extractor.Extract("")

	if len(sections) != len(model.Categories) {
		t.Fatalf("Expected %d categories, got %d", len(model.Categories), len(sections))
	}

	for _, cat := range model.Categories {
		snippet, ok := sections[cat]
		if !ok {
			t.Errorf("Missing category %s", cat)
			continue
		}
		if snippet != model.SectionNotFound {
			t.Errorf("Expected sentinel for %s on empty input, got %q", cat, snippet)
		}
	}
}

func TestSectionExtractor_KeywordMatch(t *testing.T) {
	extractor := NewSectionExtractor()

	text := "In this Act, \"claimant\" means a person who has made a claim for universal credit under the provisions set out below."
	sections := extractor.Extract(text)

	snippet := sections[model.CategoryDefinitions]
	if snippet == model.SectionNotFound {
		t.Fatal("Expected definitions section to be found")
	}
	if !strings.Contains(snippet, "means") {
		t.Errorf("Expected snippet to contain the matched keyword context, got %q", snippet)
	}
}

func TestSectionExtractor_CaseInsensitive(t *testing.T) {
	extractor := NewSectionExtractor()

	sections := extractor.Extract("PENALTY provisions apply to any person who fails to comply with this Act.")

	if sections[model.CategoryPenalties] == model.SectionNotFound {
		t.Error("Expected case-insensitive keyword match")
	}
}

func TestSectionExtractor_WindowBounds(t *testing.T) {
	extractor := NewSectionExtractor()

	// Keyword at the very start of the document: window clamps to text bounds
	text := "penalty for late filing"
	sections := extractor.Extract(text)

	snippet := sections[model.CategoryPenalties]
	if snippet != text {
		t.Errorf("Expected full short text as snippet, got %q", snippet)
	}
}

func TestSectionExtractor_WindowSize(t *testing.T) {
	extractor := NewSectionExtractor()

	pad := strings.Repeat("x", 500)
	text := pad + " penalty " + pad
	sections := extractor.Extract(text)

	snippet := sections[model.CategoryPenalties]
	// 200 before + match position + 200 after
	if len(snippet) != 2*windowHalfSize {
		t.Errorf("Expected %d-char window, got %d", 2*windowHalfSize, len(snippet))
	}
}

func TestSectionExtractor_TwoWindowCap(t *testing.T) {
	extractor := NewSectionExtractor()

	// All three record_keeping keywords present; only the first two windows
	// are kept, joined with the separator.
	text := "record " + strings.Repeat("a", 300) + " report " + strings.Repeat("b", 300) + " maintain"
	sections := extractor.Extract(text)

	snippet := sections[model.CategoryRecordKeeping]
	if count := strings.Count(snippet, windowSeparator); count != 1 {
		t.Errorf("Expected exactly one separator (two windows), got %d in %q", count, snippet)
	}
	if strings.Contains(snippet, "maintain") {
		t.Error("Expected third keyword window to be dropped")
	}
}

func TestSectionExtractor_KeywordOrderWins(t *testing.T) {
	extractor := NewSectionExtractor()

	// "means" appears before "definition" in the text, but "definition" is
	// first in the keyword list, so its window leads the snippet.
	text := strings.Repeat("z", 250) + " means " + strings.Repeat("z", 250) + " definition " + strings.Repeat("z", 250)
	sections := extractor.Extract(text)

	snippet := sections[model.CategoryDefinitions]
	parts := strings.Split(snippet, windowSeparator)
	if len(parts) != 2 {
		t.Fatalf("Expected two windows, got %d", len(parts))
	}
	if !strings.Contains(parts[0], "definition") {
		t.Errorf("Expected first window to come from the first keyword, got %q", parts[0])
	}
}
