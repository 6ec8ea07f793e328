package model

// Report is the complete analysis artifact. Field names and nesting are
// part of the external contract and must not change.
type Report struct {
	Metadata   Metadata        `json:"metadata"`
	Extraction ExtractionStats `json:"task1_extraction"`
	Summary    []string        `json:"task2_summary"`
	Sections   Sections        `json:"task3_sections"`
	RuleChecks []RuleResult    `json:"task4_rule_checks"`
}

// Metadata identifies the analyzed document and the analysis run.
type Metadata struct {
	Document  string `json:"document"`
	Analyzer  string `json:"analyzer"`
	Model     string `json:"model"`
	Timestamp string `json:"timestamp"`
}

// ExtractionStats summarizes the text extraction stage.
type ExtractionStats struct {
	Status              string `json:"status"`
	CharactersExtracted int    `json:"characters_extracted"`
}

// AnalyzerName is the fixed analyzer identifier stamped into report metadata.
const AnalyzerName = "NIYAMR AI Agent"

// TimestampLayout is the report timestamp format.
const TimestampLayout = "2006-01-02 15:04:05"

// PassCount returns how many rule checks passed.
func (r *Report) PassCount() int {
	n := 0
	for _, check := range r.RuleChecks {
		if check.Status == StatusPass {
			n++
		}
	}
	return n
}
