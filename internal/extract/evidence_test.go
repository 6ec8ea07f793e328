package extract

import (
	"strings"
	"testing"

	"github.com/niyamr/actscan/internal/model"
)

func TestEvidenceLocator_SentinelSnippet(t *testing.T) {
	locator := NewEvidenceLocator("Section 1 - Definitions. In this Act...")

	for _, cat := range model.Categories {
		if got := locator.Locate(model.SectionNotFound, cat); got != NoEvidenceFound {
			t.Errorf("Expected %q for sentinel snippet (%s), got %q", NoEvidenceFound, cat, got)
		}
	}
}

func TestEvidenceLocator_EmptySnippet(t *testing.T) {
	locator := NewEvidenceLocator("anything")

	if got := locator.Locate("", model.CategoryDefinitions); got != NoEvidenceFound {
		t.Errorf("Expected %q for empty snippet, got %q", NoEvidenceFound, got)
	}
}

func TestEvidenceLocator_SentinelEmbeddedInSnippet(t *testing.T) {
	locator := NewEvidenceLocator("anything")

	// Sentinel matching is case-insensitive and substring-based
	snippet := "prefix NOT FOUND suffix with Section 3 nearby"
	if got := locator.Locate(snippet, model.CategoryDefinitions); got != NoEvidenceFound {
		t.Errorf("Expected embedded sentinel to win, got %q", got)
	}
}

func TestEvidenceLocator_CitationInSnippet(t *testing.T) {
	locator := NewEvidenceLocator("irrelevant document text")

	tests := []struct {
		snippet  string
		expected string
	}{
		{"the eligibility criteria under Section 9 require that", "Section 9"},
		{"as provided in Part 12 of this Act", "Part 12"},
		{"pursuant to Article 4 the authority may", "Article 4"},
		{"see SECTION 33 for details", "SECTION 33"},
	}

	for _, tt := range tests {
		if got := locator.Locate(tt.snippet, model.CategoryEligibility); got != tt.expected {
			t.Errorf("Locate(%q) = %q, expected %q", tt.snippet, got, tt.expected)
		}
	}
}

func TestEvidenceLocator_TierOrdering(t *testing.T) {
	// Tier 2 (citation in snippet) wins even when the full document has a
	// matching labeled header for tier 3.
	locator := NewEvidenceLocator("Section 40 - Eligibility\nfull document body")

	snippet := "applicants must satisfy Section 9 of the conditions"
	if got := locator.Locate(snippet, model.CategoryEligibility); got != "Section 9" {
		t.Errorf("Expected tier 2 to win, got %q", got)
	}
}

func TestEvidenceLocator_HeaderFallback(t *testing.T) {
	document := "Preamble text.\nSection 7 - Penalties\nA person who contravenes..."
	locator := NewEvidenceLocator(document)

	// Snippet has no citation, so the locator falls back to the document's
	// labeled header for the category.
	snippet := strings.Repeat("relevant excerpt with no citation ", 3)
	if got := locator.Locate(snippet, model.CategoryPenalties); got != "Section 7 - Penalties" {
		t.Errorf("Expected header fallback, got %q", got)
	}
}

func TestEvidenceLocator_HeaderAlternation(t *testing.T) {
	document := "Part 3 - Enforcement\nThe authority may impose..."
	locator := NewEvidenceLocator(document)

	// penalties maps to "Penalties|Enforcement"
	if got := locator.Locate("snippet without citation", model.CategoryPenalties); got != "Part 3 - Enforcement" {
		t.Errorf("Expected alternation header match, got %q", got)
	}
}

func TestEvidenceLocator_EnDashHeader(t *testing.T) {
	document := "Section 12 – Records\nEvery employer shall keep..."
	locator := NewEvidenceLocator(document)

	got := locator.Locate("snippet without citation", model.CategoryRecordKeeping)
	if got != "Section 12 – Records" {
		t.Errorf("Expected en-dash header match, got %q", got)
	}
}

func TestEvidenceLocator_GenericFallback(t *testing.T) {
	locator := NewEvidenceLocator("document with no labeled headers at all")

	got := locator.Locate("a snippet with content but no citation", model.CategoryDefinitions)
	if got != EvidenceInferred {
		t.Errorf("Expected %q, got %q", EvidenceInferred, got)
	}
}

func TestEvidenceLocator_ObligationsHasNoHeaderLookup(t *testing.T) {
	// obligations is extracted but never evaluated; it has no header
	// alternation, so tier 3 is skipped entirely.
	document := "Section 2 - Obligations\nEvery claimant shall..."
	locator := NewEvidenceLocator(document)

	got := locator.Locate("a snippet with content but no citation", model.CategoryObligations)
	if got != EvidenceInferred {
		t.Errorf("Expected generic fallback for obligations, got %q", got)
	}
}
