package extract

import (
	"regexp"
	"strings"

	"github.com/niyamr/actscan/internal/model"
)

// Fallback evidence strings. These are user-visible and part of the
// report contract.
const (
	NoEvidenceFound  = "No evidence found"
	EvidenceInferred = "Evidence found in document"
)

// citationPattern matches an in-text citation like "Section 12" or
// "Article 4".
var citationPattern = regexp.MustCompile(`(?i)(Section|Part|Article)\s+\d+`)

// categoryHeaders maps a category to the header name alternation used when
// scanning the full document for a labeled heading. obligations has no
// entry: the category is extracted but never evaluated, so its header
// lookup never runs.
var categoryHeaders = map[model.Category]string{
	model.CategoryDefinitions:      "Definitions",
	model.CategoryEligibility:      "Eligibility",
	model.CategoryResponsibilities: "Responsibilities",
	model.CategoryPenalties:        "Penalties|Enforcement",
	model.CategoryPayments:         "Payments|Benefits",
	model.CategoryRecordKeeping:    "Records|Reporting",
}

// EvidenceLocator finds a human-citable reference supporting a rule verdict.
type EvidenceLocator struct {
	// document is the full normalized text, used as the tier-3 fallback
	// search space when the snippet itself carries no citation.
	document string

	headerPatterns map[model.Category]*regexp.Regexp
}

// NewEvidenceLocator creates a locator over the given normalized document.
func NewEvidenceLocator(document string) *EvidenceLocator {
	patterns := make(map[model.Category]*regexp.Regexp, len(categoryHeaders))
	for cat, alternation := range categoryHeaders {
		patterns[cat] = regexp.MustCompile(`(?i)(Section|Part)\s+\d+\s*[-–]\s*(` + alternation + `)`)
	}

	return &EvidenceLocator{
		document:       document,
		headerPatterns: patterns,
	}
}

// Locate returns a citation string for the given snippet. The three-tier
// fallback order is fixed:
//  1. empty or sentinel snippet -> "No evidence found"
//  2. citation inside the snippet -> the exact matched text
//  3. labeled heading anywhere in the document -> the trimmed matched text
//
// Anything else falls through to "Evidence found in document", asserting
// that evidence exists (the snippet is non-empty) even though no parseable
// citation was located.
func (l *EvidenceLocator) Locate(snippet string, category model.Category) string {
	if snippet == "" || strings.Contains(strings.ToLower(snippet), strings.ToLower(model.SectionNotFound)) {
		return NoEvidenceFound
	}

	if match := citationPattern.FindString(snippet); match != "" {
		return match
	}

	if pattern, ok := l.headerPatterns[category]; ok {
		if match := pattern.FindString(l.document); match != "" {
			return strings.TrimSpace(match)
		}
	}

	return EvidenceInferred
}
