package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/niyamr/actscan/internal/cache"
	"github.com/niyamr/actscan/internal/ingest"
	"github.com/niyamr/actscan/internal/llm"
	"github.com/niyamr/actscan/internal/model"
	"github.com/niyamr/actscan/internal/pipeline"
	"github.com/niyamr/actscan/internal/worker"
	"github.com/spf13/cobra"
)

var (
	outJSON     string
	outText     string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	noRobots    bool
	llmDisabled bool
	llmProvider string
	llmModel    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <file|url>",
	Short: "Analyze a single document and generate a compliance report",
	Long: `Analyze runs the full pipeline over one document:
- Normalize the extracted text
- Summarize it into bullet points (via the configured LLM provider)
- Extract the seven structural sections by keyword search
- Check the six-rule compliance checklist with evidence citations
- Generate a structured JSON report

Example:
  actscan analyze act.txt
  actscan analyze https://www.legislation.gov.uk/ukpga/2025/22 --json report.json
  actscan analyze act.txt --llm-provider openai --llm-model gpt-4o-mini
  actscan analyze act.txt --no-llm --text summary.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outText, "text", "", "output plain-text summary path (optional)")

	// HTTP flags
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall analysis timeout (includes the LLM call)")
	analyzeCmd.Flags().StringVar(&userAgent, "ua", "Actscan/0.1 (+https://github.com/niyamr/actscan)", "HTTP User-Agent for URL inputs")
	analyzeCmd.Flags().Int64Var(&maxBytes, "max-bytes", 4_000_000, "max response bytes to read for URL inputs")
	analyzeCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks for URL inputs")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the summary cache (force a fresh LLM call)")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmDisabled, "no-llm", false, "disable LLM summarization (summary will be empty)")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "ollama", "LLM provider (openai, anthropic, ollama)")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "llama3.2", "LLM model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing: %s\n", input)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		if cfg.LLM.Provider != "" {
			fmt.Fprintf(os.Stderr, "LLM: %s/%s\n", cfg.LLM.Provider, cfg.LLM.Model)
		}
		fmt.Fprintln(os.Stderr)
	}

	p, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	source := newSource(input, cfg)

	doc, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load document: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Loaded %d characters\n", len(doc.Text))
	}

	report, err := p.Analyze(ctx, doc.Text, doc.Name)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Generated %d summary bullets\n", len(report.Summary))
		fmt.Fprintf(os.Stderr, "✓ Extracted %d sections\n", len(report.Sections))
		fmt.Fprintf(os.Stderr, "✓ Completed %d rule checks (%d passed)\n", len(report.RuleChecks), report.PassCount())
		fmt.Fprintln(os.Stderr)
	}

	renderer := pipeline.NewRenderer()
	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}
	if outText != "" {
		if err := renderer.RenderText(report, outText); err != nil {
			return fmt.Errorf("render text: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote summary: %s\n", outText)
		}
	}

	renderer.RenderSummary(report)

	return nil
}

// buildConfig assembles configuration from defaults, flags, and environment.
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.RespectRobots = !noRobots
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose

	if llmDisabled {
		cfg.LLM.Provider = ""
		return cfg, nil
	}

	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel

	// Get API key from environment
	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	return cfg, nil
}

// newPipeline wires the summarizer (with its cache) into a pipeline.
func newPipeline(cfg *model.Config) (*pipeline.Pipeline, error) {
	summarizer, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, fmt.Errorf("initialize LLM provider: %w", err)
	}

	if cfg.Cache.Enabled && summarizer.IsEnabled() {
		dir := cfg.Cache.Dir
		if dir == "" {
			if home, err := os.UserHomeDir(); err == nil {
				dir = filepath.Join(home, ".actscan", "cache")
			}
		}
		if dir != "" {
			summarizer.SetCache(cache.NewLayeredCache(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL))
		}
	}

	return pipeline.NewPipeline(cfg, summarizer), nil
}

// newSource picks a document source for the input: URL or local file.
func newSource(input string, cfg *model.Config) ingest.Source {
	if isURL(input) {
		var robots *ingest.RobotsChecker
		if cfg.HTTP.RespectRobots {
			robots = ingest.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout)
		}
		limiter := worker.NewLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		fetcher := ingest.NewFetcher(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, cfg.HTTP.MaxBodyBytes, robots, limiter)
		return &ingest.URLSource{URL: input, Fetcher: fetcher}
	}
	return &ingest.FileSource{Path: input}
}

func isURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}
