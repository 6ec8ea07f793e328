package extract

import "regexp"

var (
	runsOfNewlines = regexp.MustCompile(`\n{3,}`)
	runsOfSpaces   = regexp.MustCompile(` {2,}`)
)

// Normalize collapses the irregular whitespace left behind by multi-page
// text extraction: 3+ consecutive newlines become 2, 2+ consecutive spaces
// become 1. It is idempotent and never fails.
func Normalize(text string) string {
	text = runsOfNewlines.ReplaceAllString(text, "\n\n")
	text = runsOfSpaces.ReplaceAllString(text, " ")
	return text
}
