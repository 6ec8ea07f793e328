package ingest

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Write fixture failed: %v", err)
	}
	return path
}

func TestFileSource_PlainText(t *testing.T) {
	path := writeFixture(t, "universal_credit_act.txt", "Section 1 - Definitions\nIn this Act, claimant means a person.")

	source := &FileSource{Path: path}
	doc, err := source.Load(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if doc.Name != "universal credit act" {
		t.Errorf("Unexpected document name: %q", doc.Name)
	}
	if !strings.Contains(doc.Text, "claimant means a person") {
		t.Errorf("Expected file content, got %q", doc.Text)
	}
}

func TestFileSource_HTMLByExtension(t *testing.T) {
	content := `<html><head><style>body { color: red; }</style></head>
<body><h1>Universal Credit Act</h1><p>Section 1 applies.</p>
<script>alert("hidden");</script></body></html>`
	path := writeFixture(t, "act.html", content)

	source := &FileSource{Path: path}
	doc, err := source.Load(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(doc.Text, "Section 1 applies.") {
		t.Errorf("Expected visible text, got %q", doc.Text)
	}
	if strings.Contains(doc.Text, "alert") || strings.Contains(doc.Text, "color: red") {
		t.Errorf("Expected script and style content to be dropped, got %q", doc.Text)
	}
}

func TestFileSource_HTMLSniffedFromContent(t *testing.T) {
	content := "<!DOCTYPE html><html><body><p>Sniffed body text.</p></body></html>"
	path := writeFixture(t, "act.txt", content)

	source := &FileSource{Path: path}
	doc, err := source.Load(context.Background())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if strings.Contains(doc.Text, "<p>") {
		t.Errorf("Expected markup to be stripped, got %q", doc.Text)
	}
	if !strings.Contains(doc.Text, "Sniffed body text.") {
		t.Errorf("Expected body text, got %q", doc.Text)
	}
}

func TestFileSource_EmptyFile(t *testing.T) {
	path := writeFixture(t, "empty.txt", "   \n\n  ")

	source := &FileSource{Path: path}
	if _, err := source.Load(context.Background()); err == nil {
		t.Error("Expected error for whitespace-only document")
	}
}

func TestFileSource_MissingFile(t *testing.T) {
	source := &FileSource{Path: filepath.Join(t.TempDir(), "absent.txt")}
	if _, err := source.Load(context.Background()); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestDocumentName(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/tmp/universal_credit_act.txt", "universal credit act"},
		{"welfare-reform-act.html", "welfare reform act"},
		{"plain", "plain"},
		{"/docs/act.v2.txt", "act.v2"},
	}

	for _, tt := range tests {
		if got := documentName(tt.path); got != tt.expected {
			t.Errorf("documentName(%q): expected %q, got %q", tt.path, tt.expected, got)
		}
	}
}

func TestVisibleText_BlockStructure(t *testing.T) {
	content := "<html><body><p>First paragraph.</p><p>Second paragraph.</p></body></html>"

	text, err := VisibleText(content)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if !strings.Contains(text, "First paragraph.") || !strings.Contains(text, "Second paragraph.") {
		t.Fatalf("Expected both paragraphs, got %q", text)
	}
	if !strings.Contains(text, "\n\n") {
		t.Error("Expected block elements to contribute paragraph breaks")
	}
}
