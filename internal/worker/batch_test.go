package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/niyamr/actscan/internal/ingest"
	"github.com/niyamr/actscan/internal/model"
)

// stubAnalyzer returns a minimal report naming the document it saw.
type stubAnalyzer struct{}

func (a *stubAnalyzer) Analyze(ctx context.Context, rawText, documentName string) (*model.Report, error) {
	return &model.Report{
		Metadata: model.Metadata{Document: documentName},
	}, nil
}

// stubSource returns fixed text, or an error for inputs marked bad.
type stubSource struct {
	input string
}

func (s *stubSource) Load(ctx context.Context) (*ingest.Document, error) {
	if s.input == "bad-input" {
		return nil, errors.New("load failed")
	}
	return &ingest.Document{Name: s.input, Text: "document body"}, nil
}

func stubFactory(input string) ingest.Source {
	return &stubSource{input: input}
}

func TestBatchProcessor_Process(t *testing.T) {
	b := NewBatchProcessor(&stubAnalyzer{}, stubFactory, 2)

	inputs := []string{"act-one.txt", "act-two.txt", "act-three.txt"}
	results := b.Process(context.Background(), inputs)

	if len(results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(results))
	}

	seen := make(map[string]bool)
	for _, r := range results {
		if r.Error != nil {
			t.Errorf("Input %s: unexpected error: %v", r.Input, r.Error)
			continue
		}
		if r.Report == nil {
			t.Errorf("Input %s: missing report", r.Input)
			continue
		}
		seen[r.Report.Metadata.Document] = true
	}
	for _, input := range inputs {
		if !seen[input] {
			t.Errorf("No report for input %s", input)
		}
	}
}

func TestBatchProcessor_LoadFailureIsolated(t *testing.T) {
	b := NewBatchProcessor(&stubAnalyzer{}, stubFactory, 2)

	results := b.Process(context.Background(), []string{"good.txt", "bad-input"})

	var failures, successes int
	for _, r := range results {
		if r.GetError() != nil {
			failures++
			if r.Input != "bad-input" {
				t.Errorf("Wrong input failed: %s", r.Input)
			}
		} else {
			successes++
		}
	}
	if failures != 1 || successes != 1 {
		t.Errorf("Expected 1 failure and 1 success, got %d/%d", failures, successes)
	}
}

func TestBatchProcessor_EmptyInputs(t *testing.T) {
	b := NewBatchProcessor(&stubAnalyzer{}, stubFactory, 2)

	results := b.Process(context.Background(), nil)
	if len(results) != 0 {
		t.Errorf("Expected no results for empty inputs, got %d", len(results))
	}
}

func TestReadInputsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.txt")
	content := `# document list
act-one.txt

act-two.txt
act-one.txt
  act-three.txt
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	inputs, err := ReadInputsFromFile(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	expected := []string{"act-one.txt", "act-two.txt", "act-three.txt"}
	if len(inputs) != len(expected) {
		t.Fatalf("Expected %d inputs, got %d: %v", len(expected), len(inputs), inputs)
	}
	for i, want := range expected {
		if inputs[i] != want {
			t.Errorf("Input %d: expected %q, got %q", i, want, inputs[i])
		}
	}
}

func TestReadInputsFromFile_Missing(t *testing.T) {
	if _, err := ReadInputsFromFile(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("Expected error for missing file")
	}
}
