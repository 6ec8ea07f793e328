package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// WaitLimiter gates outbound requests. Satisfied by worker.Limiter.
type WaitLimiter interface {
	Wait(ctx context.Context, rawURL string) error
}

// Fetcher retrieves remote documents politely: capped redirects, capped
// body size, robots.txt compliance, and rate limiting.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *RobotsChecker // nil disables robots.txt checks
	limiter    WaitLimiter    // nil disables rate limiting
}

// NewFetcher creates a fetcher with the given limits. robots and limiter
// may be nil.
func NewFetcher(timeout time.Duration, userAgent string, maxBytes int64, robots *RobotsChecker, limiter WaitLimiter) *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: userAgent,
		maxBytes:  maxBytes,
		robots:    robots,
		limiter:   limiter,
	}
}

// URLSource loads a document over HTTP.
type URLSource struct {
	URL     string
	Fetcher *Fetcher
}

// Load fetches the URL and extracts visible text when the response is HTML.
func (s *URLSource) Load(ctx context.Context) (*Document, error) {
	if s.Fetcher.limiter != nil {
		if err := s.Fetcher.limiter.Wait(ctx, s.URL); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	if s.Fetcher.robots != nil {
		allowed, crawlDelay, err := s.Fetcher.robots.CanFetch(ctx, s.URL)
		if err != nil {
			return nil, fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return nil, fmt.Errorf("fetch disallowed by robots.txt: %s", s.URL)
		}
		if crawlDelay > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(crawlDelay):
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", s.Fetcher.userAgent)
	req.Header.Set("Accept", "text/html,text/plain;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := s.Fetcher.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, s.Fetcher.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	text := string(body)
	contentType := resp.Header.Get("Content-Type")
	if strings.Contains(contentType, "html") || looksLikeHTML(text) {
		text, err = VisibleText(text)
		if err != nil {
			return nil, fmt.Errorf("extract text: %w", err)
		}
	}

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("document text unavailable: %s returned no text", s.URL)
	}

	finalURL := resp.Request.URL.String()

	return &Document{
		Name: subjectFromURL(finalURL),
		Text: text,
	}, nil
}

// subjectFromURL extracts a human-readable document label from the URL.
func subjectFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	path := strings.Trim(parsed.Path, "/")
	if path == "" {
		return parsed.Host
	}

	segments := strings.Split(path, "/")
	last := segments[len(segments)-1]

	// De-slugify: replace underscores and hyphens with spaces
	last = strings.ReplaceAll(last, "_", " ")
	last = strings.ReplaceAll(last, "-", " ")

	if idx := strings.LastIndex(last, "."); idx > 0 {
		last = last[:idx]
	}

	return last
}
