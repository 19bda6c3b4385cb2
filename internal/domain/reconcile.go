package domain

// DiscrepancyType classifies a cross-bureau field comparison result.
type DiscrepancyType string

const (
	DiscrepancyMissing      DiscrepancyType = "missing"
	DiscrepancyConflicting  DiscrepancyType = "conflicting"
	DiscrepancyInconsistent DiscrepancyType = "inconsistent"
)

// FieldDiscrepancy is one field's cross-snapshot comparison result.
type FieldDiscrepancy struct {
	Field string `json:"field"`

	// Values maps bureau name to the reported value; absent fields map to "".
	Values map[string]string `json:"values"`

	Type     DiscrepancyType `json:"type"`
	Severity Severity        `json:"severity"`

	// Violation names the statutory violation implied, if any.
	Violation      string `json:"violation,omitempty"`
	Citation       string `json:"citation,omitempty"`
	Recommendation string `json:"recommendation"`
}

// Dispute priority tiers.
const (
	PriorityImmediate = "immediate"
	PriorityHigh      = "high"
	PriorityStandard  = "standard"
	PriorityLow       = "low"
)

// ComparisonResult is the output of cross-bureau reconciliation.
// With fewer than two snapshots it reports Comparable=false rather than
// erroring.
type ComparisonResult struct {
	Comparable bool     `json:"comparable"`
	Bureaus    []string `json:"bureaus,omitempty"`

	FieldsCompared int `json:"fieldsCompared"`
	MatchedFields  int `json:"matchedFields"`

	Discrepancies []FieldDiscrepancy `json:"discrepancies,omitempty"`

	// ViolationOpportunities are free-text dispute angles, including XB
	// rule flags folded in by the evaluator, deduplicated.
	ViolationOpportunities []string `json:"violationOpportunities,omitempty"`

	DisputePriority int    `json:"disputePriority"`
	PriorityTier    string `json:"priorityTier"`
}
