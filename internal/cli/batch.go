package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/niyamr/actscan/internal/ingest"
	"github.com/niyamr/actscan/internal/pipeline"
	"github.com/niyamr/actscan/internal/worker"
	"github.com/spf13/cobra"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple documents from a list file in parallel",
	Long: `Batch processes multiple documents concurrently:
- Read document paths or URLs from the input file (one per line)
- Analyze documents in parallel with a configurable worker count
- Each run owns its own report; no analysis state is shared
- Generate an individual JSON report per document

Example:
  actscan batch documents.txt
  actscan batch documents.txt --concurrency 8 --output-dir ./reports
  actscan batch documents.txt --no-llm --timeout 5m`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./actscan-reports", "output directory for reports")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 30*time.Minute, "total timeout for batch processing")

	// Shared flags (variables defined in analyze.go)
	batchCmd.Flags().StringVar(&userAgent, "ua", "Actscan/0.1 (+https://github.com/niyamr/actscan)", "HTTP User-Agent for URL inputs")
	batchCmd.Flags().Int64Var(&maxBytes, "max-bytes", 4_000_000, "max response bytes to read for URL inputs")
	batchCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks for URL inputs")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the summary cache")

	// LLM flags
	batchCmd.Flags().BoolVar(&llmDisabled, "no-llm", false, "disable LLM summarization")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "ollama", "LLM provider (openai, anthropic, ollama)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "llama3.2", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	timeout = batchTimeout
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.Workers = concurrency

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Input file:   %s\n", file)
	fmt.Fprintf(os.Stderr, "  Workers:      %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "  Output dir:   %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "  Timeout:      %v\n", batchTimeout)
	if cfg.LLM.Provider != "" {
		fmt.Fprintf(os.Stderr, "  LLM:          %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
	}
	fmt.Fprintf(os.Stderr, "\n")

	// Create output directory
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	// One limiter and robots cache shared across all workers; everything
	// else is per-run.
	var robots *ingest.RobotsChecker
	if cfg.HTTP.RespectRobots {
		robots = ingest.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
	}
	limiter := worker.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	fetcher := ingest.NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes, robots, limiter)

	sources := func(input string) ingest.Source {
		if isURL(input) {
			return &ingest.URLSource{URL: input, Fetcher: fetcher}
		}
		return &ingest.FileSource{Path: input}
	}

	processor := worker.NewBatchProcessor(p, sources, concurrency)

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "⚙️  Processed %d documents with %d workers\n\n", len(results), concurrency)

	renderer := pipeline.NewRenderer()
	successCount := 0
	failureCount := 0

	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Input, result.Error)
			continue
		}

		successCount++

		slug := sanitizeFilename(result.Report.Metadata.Document)
		jsonPath := filepath.Join(outputDir, slug+".json")

		if err := renderer.RenderJSON(result.Report, jsonPath); err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: failed to write JSON: %v\n", result.Input, err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s (%d/%d rules passed)\n",
			result.Report.Metadata.Document, result.Report.PassCount(), len(result.Report.RuleChecks))
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Total:     %d documents\n", len(results))
	fmt.Fprintf(os.Stderr, "  Success:   %d\n", successCount)
	fmt.Fprintf(os.Stderr, "  Failures:  %d\n", failureCount)
	fmt.Fprintf(os.Stderr, "  Output:    %s\n", outputDir)
	fmt.Fprintf(os.Stderr, "\n")

	return nil
}

// sanitizeFilename sanitizes a document label for use as a filename
func sanitizeFilename(s string) string {
	replacer := strings.NewReplacer(
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
		" ", "-",
	)
	s = replacer.Replace(s)

	// Limit length
	if len(s) > 100 {
		s = s[:100]
	}

	return s
}
