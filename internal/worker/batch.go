package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/niyamr/actscan/internal/ingest"
	"github.com/niyamr/actscan/internal/model"
)

// Analyzer runs the analysis pipeline over one document.
// Each invocation owns its own report; no analysis state is shared.
type Analyzer interface {
	Analyze(ctx context.Context, rawText, documentName string) (*model.Report, error)
}

// AnalyzeJob loads one document source and analyzes it.
type AnalyzeJob struct {
	Input    string // path or URL, for error reporting
	Source   ingest.Source
	Analyzer Analyzer
}

// Execute executes the analyze job
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	doc, err := j.Source.Load(ctx)
	if err != nil {
		return &AnalyzeResult{Input: j.Input, Error: err}
	}

	report, err := j.Analyzer.Analyze(ctx, doc.Text, doc.Name)
	if err != nil {
		return &AnalyzeResult{Input: j.Input, Error: err}
	}

	return &AnalyzeResult{Input: j.Input, Report: report}
}

// AnalyzeResult represents the result of an analyze job
type AnalyzeResult struct {
	Input  string
	Report *model.Report
	Error  error
}

// GetError returns the error from the analyze result
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// SourceFactory builds an ingest source for one input line.
type SourceFactory func(input string) ingest.Source

// BatchProcessor analyzes multiple documents concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	sources     SourceFactory
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(analyzer Analyzer, sources SourceFactory, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		sources:     sources,
		concurrency: concurrency,
	}
}

// Process analyzes the given inputs concurrently
func (b *BatchProcessor) Process(ctx context.Context, inputs []string) []*AnalyzeResult {
	if len(inputs) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, input := range inputs {
		pool.Submit(&AnalyzeJob{
			Input:    input,
			Source:   b.sources(input),
			Analyzer: b.analyzer,
		})
	}

	results := pool.Wait()

	analyzeResults := make([]*AnalyzeResult, len(results))
	for i, result := range results {
		analyzeResults[i] = result.(*AnalyzeResult)
	}

	return analyzeResults
}

// ProcessFile reads inputs from a list file and analyzes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*AnalyzeResult, error) {
	inputs, err := ReadInputsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read inputs: %w", err)
	}

	return b.Process(ctx, inputs), nil
}

// ReadInputsFromFile reads document paths or URLs from a file (one per line)
func ReadInputsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var inputs []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !seen[line] {
			seen[line] = true
			inputs = append(inputs, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return inputs, nil
}
