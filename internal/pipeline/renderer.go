package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/niyamr/actscan/internal/model"
)

// Renderer writes reports to their delivery formats. It never recomputes
// anything; the Report value is the single source of truth.
type Renderer struct{}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderJSON writes the report as indented JSON.
func (r *Renderer) RenderJSON(report *model.Report, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// RenderText writes a human-readable plain-text summary of the report.
func (r *Renderer) RenderText(report *model.Report, path string) error {
	var b strings.Builder
	rule := strings.Repeat("=", 60)
	thin := strings.Repeat("-", 60)

	b.WriteString(rule + "\n")
	fmt.Fprintf(&b, "%s - DOCUMENT ANALYSIS: %s\n", report.Metadata.Analyzer, report.Metadata.Document)
	b.WriteString(rule + "\n\n")

	fmt.Fprintf(&b, "Model: %s\n", report.Metadata.Model)
	fmt.Fprintf(&b, "Generated: %s\n", report.Metadata.Timestamp)
	fmt.Fprintf(&b, "Characters Extracted: %d\n\n", report.Extraction.CharactersExtracted)

	b.WriteString(thin + "\nSUMMARY\n" + thin + "\n")
	for _, bullet := range report.Summary {
		b.WriteString(bullet + "\n")
	}
	b.WriteString("\n")

	b.WriteString(thin + "\nEXTRACTED SECTIONS\n" + thin + "\n")
	for _, cat := range model.Categories {
		fmt.Fprintf(&b, "\n[%s]\n", strings.ToUpper(strings.ReplaceAll(string(cat), "_", " ")))
		b.WriteString(report.Sections[cat] + "\n")
	}
	b.WriteString("\n")

	b.WriteString(thin + "\nRULE COMPLIANCE CHECKS\n" + thin + "\n\n")
	for i, check := range report.RuleChecks {
		fmt.Fprintf(&b, "%d. %s\n", i+1, check.Rule)
		fmt.Fprintf(&b, "   Status: %s\n", strings.ToUpper(string(check.Status)))
		fmt.Fprintf(&b, "   Evidence: %s\n", check.Evidence)
		fmt.Fprintf(&b, "   Confidence: %d%%\n\n", check.Confidence)
	}

	b.WriteString(rule + "\nEND OF REPORT\n" + rule + "\n")

	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}

	return nil
}

// RenderSummary prints the rule-check digest to stdout.
func (r *Renderer) RenderSummary(report *model.Report) {
	passed := report.PassCount()
	failed := len(report.RuleChecks) - passed

	fmt.Printf("\n%s\n", report.Metadata.Document)
	fmt.Printf("  Characters: %d | Bullets: %d | Rules: %d passed, %d failed\n\n",
		report.Extraction.CharactersExtracted, len(report.Summary), passed, failed)

	for _, check := range report.RuleChecks {
		mark := "✗"
		if check.Status == model.StatusPass {
			mark = "✓"
		}
		fmt.Printf("  %s %s\n", mark, check.Rule)
		fmt.Printf("      Evidence: %s (confidence %d%%)\n", check.Evidence, check.Confidence)
	}
	fmt.Println()
}
