package extract

import "testing"

func TestNormalize_CollapsesNewlines(t *testing.T) {
	input := "Section 1\n\n\n\nSection 2\n\n\nSection 3"
	expected := "Section 1\n\nSection 2\n\nSection 3"

	if got := Normalize(input); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestNormalize_CollapsesSpaces(t *testing.T) {
	input := "the  Secretary   of    State"
	expected := "the Secretary of State"

	if got := Normalize(input); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestNormalize_PreservesDoubleNewlines(t *testing.T) {
	input := "paragraph one\n\nparagraph two"

	if got := Normalize(input); got != input {
		t.Errorf("Expected double newlines preserved, got %q", got)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"plain text",
		"a  b\n\n\nc   d",
		"\n\n\n\n\n",
		"   ",
	}

	for _, input := range inputs {
		once := Normalize(input)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	if got := Normalize(""); got != "" {
		t.Errorf("Expected empty output for empty input, got %q", got)
	}
}
