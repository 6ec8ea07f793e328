package model

// RuleStatus is the verdict of a single rule check.
type RuleStatus string

const (
	StatusPass RuleStatus = "pass"
	StatusFail RuleStatus = "fail"
)

// Confidence is a fixed two-valued signal, not a calibrated probability.
const (
	ConfidencePass = 85
	ConfidenceFail = 40
)

// RuleSpec pairs a human-readable rule with the category it depends on.
type RuleSpec struct {
	Rule     string
	Category Category
}

// Rules is the fixed checklist, evaluated in order.
var Rules = []RuleSpec{
	{"Act must define key terms", CategoryDefinitions},
	{"Act must specify eligibility criteria", CategoryEligibility},
	{"Act must specify responsibilities of the administering authority", CategoryResponsibilities},
	{"Act must include enforcement or penalties", CategoryPenalties},
	{"Act must include payment calculation or entitlement structure", CategoryPayments},
	{"Act must include record-keeping or reporting requirements", CategoryRecordKeeping},
}

// RuleResult is the outcome of checking one rule against the document.
type RuleResult struct {
	Rule       string     `json:"rule"`
	Status     RuleStatus `json:"status"`
	Evidence   string     `json:"evidence"`
	Confidence int        `json:"confidence"`
}
