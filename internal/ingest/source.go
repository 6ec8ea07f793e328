// Package ingest supplies raw document text to the analysis pipeline.
// The pipeline itself consumes a single string and takes no dependency on
// any of these sources.
package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Document is a named raw text ready for analysis.
type Document struct {
	// Name is a human-readable document label for report metadata.
	Name string

	// Text is the raw extracted text, not yet normalized.
	Text string
}

// Source produces the raw text of one document.
type Source interface {
	// Load reads the document. An empty document is an error here:
	// analysis cannot proceed past normalization without text.
	Load(ctx context.Context) (*Document, error)
}

// FileSource reads a plain-text or HTML document from disk.
type FileSource struct {
	Path string
}

// Load reads the file, extracting visible text when it looks like HTML.
func (s *FileSource) Load(ctx context.Context) (*Document, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	text := string(data)
	if isHTMLPath(s.Path) || looksLikeHTML(text) {
		text, err = VisibleText(text)
		if err != nil {
			return nil, fmt.Errorf("extract text from %s: %w", s.Path, err)
		}
	}

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("document text unavailable: %s is empty", s.Path)
	}

	return &Document{
		Name: documentName(s.Path),
		Text: text,
	}, nil
}

// documentName derives a readable label from the file path.
func documentName(path string) string {
	base := filepath.Base(path)
	if idx := strings.LastIndex(base, "."); idx > 0 {
		base = base[:idx]
	}
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")
	return base
}

func isHTMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm", ".xhtml":
		return true
	}
	return false
}

func looksLikeHTML(text string) bool {
	head := strings.ToLower(strings.TrimSpace(text))
	if len(head) > 256 {
		head = head[:256]
	}
	return strings.HasPrefix(head, "<!doctype html") || strings.HasPrefix(head, "<html")
}
