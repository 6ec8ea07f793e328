package extract

import (
	"strings"

	"github.com/niyamr/actscan/internal/model"
)

// Windowing constants. Tune here, not in control flow.
const (
	// windowHalfSize is the number of characters captured on each side of
	// a keyword match.
	windowHalfSize = 200

	// maxWindowsPerCategory caps how many keyword windows a category keeps.
	maxWindowsPerCategory = 2

	// windowSeparator joins the kept windows of a category.
	windowSeparator = " ... "
)

// SectionExtractor locates topic sections in a normalized document by
// keyword search.
type SectionExtractor struct {
	keywords map[model.Category][]string
}

// NewSectionExtractor creates a section extractor using the fixed
// category keyword table.
func NewSectionExtractor() *SectionExtractor {
	return &SectionExtractor{keywords: model.CategoryKeywords}
}

// Extract returns a snippet for every category. A category with no keyword
// match anywhere in the document maps to the "Not found" sentinel, so the
// result always has exactly one entry per category.
func (e *SectionExtractor) Extract(text string) model.Sections {
	lower := strings.ToLower(text)

	sections := make(model.Sections, len(model.Categories))
	for _, cat := range model.Categories {
		sections[cat] = e.findSection(text, lower, e.keywords[cat])
	}
	return sections
}

// findSection captures a bounded context window around the first occurrence
// of each keyword, in keyword-list order, and joins the first two non-empty
// windows. First occurrence is a recall-over-precision heuristic: the goal
// is "does the document discuss this topic at all", not the best mention.
func (e *SectionExtractor) findSection(text, lower string, keywords []string) string {
	var windows []string

	for _, keyword := range keywords {
		pos := strings.Index(lower, keyword)
		if pos < 0 {
			continue
		}

		start := pos - windowHalfSize
		if start < 0 {
			start = 0
		}
		end := pos + windowHalfSize
		if end > len(text) {
			end = len(text)
		}

		windows = append(windows, text[start:end])
		if len(windows) == maxWindowsPerCategory {
			break
		}
	}

	if len(windows) == 0 {
		return model.SectionNotFound
	}
	return strings.Join(windows, windowSeparator)
}
