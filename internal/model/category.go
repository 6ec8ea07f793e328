package model

// Category identifies one of the fixed structural topics a legislative
// document is checked against.
type Category string

const (
	CategoryDefinitions      Category = "definitions"
	CategoryObligations      Category = "obligations"
	CategoryResponsibilities Category = "responsibilities"
	CategoryEligibility      Category = "eligibility"
	CategoryPayments         Category = "payments"
	CategoryPenalties        Category = "penalties"
	CategoryRecordKeeping    Category = "record_keeping"
)

// SectionNotFound is the sentinel value for a category with no keyword match.
// Downstream checks match it case-insensitively.
const SectionNotFound = "Not found"

// Categories lists all categories in their canonical report order.
var Categories = []Category{
	CategoryDefinitions,
	CategoryObligations,
	CategoryResponsibilities,
	CategoryEligibility,
	CategoryPayments,
	CategoryPenalties,
	CategoryRecordKeeping,
}

// CategoryKeywords maps each category to its ordered keyword list.
// Order matters: the first keyword that matches wins the evidence window.
// The lists are static configuration and must not be mutated at runtime.
var CategoryKeywords = map[Category][]string{
	CategoryDefinitions:      {"definition", "means", "interpret"},
	CategoryObligations:      {"obligation", "must", "shall"},
	CategoryResponsibilities: {"responsibility", "duty", "authority"},
	CategoryEligibility:      {"eligible", "qualify", "entitle"},
	CategoryPayments:         {"payment", "amount", "calculate", "benefit"},
	CategoryPenalties:        {"penalty", "fine", "enforce", "offence"},
	CategoryRecordKeeping:    {"record", "report", "maintain"},
}

// Sections maps each category to its extracted snippet or the
// SectionNotFound sentinel. One instance is produced per analysis run.
type Sections map[Category]string
