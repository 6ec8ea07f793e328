package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/niyamr/actscan/internal/extract"
	"github.com/niyamr/actscan/internal/llm"
	"github.com/niyamr/actscan/internal/model"
	"github.com/niyamr/actscan/internal/rules"
)

// Pipeline orchestrates a complete document analysis. Each stage completes
// before the next begins; only the summarization call leaves the process.
type Pipeline struct {
	extractor  *extract.SectionExtractor
	summarizer *llm.Summarizer // nil or disabled when no provider configured
	config     *model.Config
	clock      func() time.Time
}

// NewPipeline creates a pipeline with the given configuration.
func NewPipeline(cfg *model.Config, summarizer *llm.Summarizer) *Pipeline {
	return &Pipeline{
		extractor:  extract.NewSectionExtractor(),
		summarizer: summarizer,
		config:     cfg,
		clock:      time.Now,
	}
}

// Analyze runs the full pipeline over one document. The raw text may be
// empty: every category then resolves to "Not found" and every rule fails.
// A summarization failure degrades the summary to zero bullets and never
// aborts section extraction or rule evaluation.
func (p *Pipeline) Analyze(ctx context.Context, rawText, documentName string) (*model.Report, error) {
	text := extract.Normalize(rawText)

	summary := []string{}
	if p.summarizer != nil && p.summarizer.IsEnabled() {
		bullets, err := p.summarizer.Summarize(ctx, text)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: summary unavailable: %v\n", err)
		} else if bullets != nil {
			summary = bullets
		}
	}

	sections := p.extractor.Extract(text)

	locator := extract.NewEvidenceLocator(text)
	ruleChecks := rules.NewEvaluator(locator).Evaluate(sections)

	modelName := p.config.LLM.Model
	if modelName == "" {
		modelName = "none"
	}

	return &model.Report{
		Metadata: model.Metadata{
			Document:  documentName,
			Analyzer:  model.AnalyzerName,
			Model:     modelName,
			Timestamp: p.clock().Format(model.TimestampLayout),
		},
		Extraction: model.ExtractionStats{
			Status:              "completed",
			CharactersExtracted: len(text),
		},
		Summary:    summary,
		Sections:   sections,
		RuleChecks: ruleChecks,
	}, nil
}
