// Package rules applies the fixed structural checklist to extracted sections.
package rules

import (
	"strings"

	"github.com/niyamr/actscan/internal/extract"
	"github.com/niyamr/actscan/internal/model"
)

// minContentLength is the snippet length a section must exceed to count
// as present.
const minContentLength = 50

// Evaluator checks the fixed rule list against extracted sections.
type Evaluator struct {
	rules   []model.RuleSpec
	locator *extract.EvidenceLocator
}

// NewEvaluator creates an evaluator backed by the given evidence locator.
func NewEvaluator(locator *extract.EvidenceLocator) *Evaluator {
	return &Evaluator{
		rules:   model.Rules,
		locator: locator,
	}
}

// Evaluate produces one RuleResult per rule, in rule order. A category
// missing from sections is treated as absent content (fail closed), never
// an error. Evidence is located for every rule regardless of verdict.
func (e *Evaluator) Evaluate(sections model.Sections) []model.RuleResult {
	results := make([]model.RuleResult, 0, len(e.rules))

	for _, rule := range e.rules {
		snippet := sections[rule.Category]

		hasContent := len(snippet) > minContentLength &&
			!strings.Contains(strings.ToLower(snippet), "not found")

		status := model.StatusFail
		confidence := model.ConfidenceFail
		if hasContent {
			status = model.StatusPass
			confidence = model.ConfidencePass
		}

		results = append(results, model.RuleResult{
			Rule:       rule.Rule,
			Status:     status,
			Evidence:   e.locator.Locate(snippet, rule.Category),
			Confidence: confidence,
		})
	}

	return results
}
