package domain

// Severity classifies how serious a violation or discrepancy is.
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// SeverityRank orders severities for sorting: critical highest.
func SeverityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityHigh:
		return 2
	case SeverityMedium:
		return 1
	default:
		return 0
	}
}

// RuleCategory groups rules by the concern they police.
type RuleCategory string

const (
	CategoryReAging       RuleCategory = "re-aging"
	CategoryBalance       RuleCategory = "balance-forensics"
	CategoryMedical       RuleCategory = "medical-debt"
	CategoryStudentLoan   RuleCategory = "student-loan"
	CategoryChainOfTitle  RuleCategory = "chain-of-title"
	CategoryVerification  RuleCategory = "verification"
	CategoryFurnisherDuty RuleCategory = "furnisher-duty"
	CategoryCollection    RuleCategory = "collection-practice"
	CategoryStatus        RuleCategory = "status-inconsistency"
	CategoryCrossBureau   RuleCategory = "cross-bureau"
	CategoryStateLaw      RuleCategory = "state-law"
	CategoryCustom        RuleCategory = "custom"
)

// MoneyRange is an inclusive dollar range.
type MoneyRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// RuleDefinition is a static catalog entry describing one violation rule.
// Definitions are loaded once and never mutated; RelatedRules is an
// adjacency list of rule ids resolved by catalog lookup at read time.
type RuleDefinition struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Category RuleCategory `json:"category"`
	Severity Severity     `json:"severity"`

	// SuccessProbability estimates litigation success, 0-100.
	SuccessProbability int `json:"successProbability"`

	// WillfulnessScore estimates intentional/reckless conduct, 0-100.
	// A score >= 60 on any matched flag gates punitive-damages
	// eligibility downstream.
	WillfulnessScore int `json:"willfulnessScore"`

	Statutory   MoneyRange `json:"statutory"`
	Rationale   string     `json:"rationale"`
	Evidence    []string   `json:"evidence,omitempty"`
	Citations   []string   `json:"citations,omitempty"`
	Remediation string     `json:"remediation,omitempty"`

	RelatedRules []string `json:"relatedRules,omitempty"`
}

// RuleFlag is one match of a RuleDefinition against a specific tradeline.
// It is a pure value: the definition's static data copied out, plus the
// call-specific evidence. Never mutated after creation.
type RuleFlag struct {
	RuleID   string       `json:"ruleId"`
	Name     string       `json:"name"`
	Category RuleCategory `json:"category"`
	Severity Severity     `json:"severity"`

	SuccessProbability int `json:"successProbability"`
	WillfulnessScore   int `json:"willfulnessScore"`

	Statutory   MoneyRange `json:"statutory"`
	Rationale   string     `json:"rationale"`
	Citations   []string   `json:"citations,omitempty"`
	Remediation string     `json:"remediation,omitempty"`

	RelatedRules []string `json:"relatedRules,omitempty"`

	// Call-specific
	Explanation    string            `json:"explanation"`
	EvidenceValues map[string]string `json:"evidenceValues,omitempty"`

	// ForensicConfidence is 0-100; objectively provable conditions score
	// near 98, inferential ones lower.
	ForensicConfidence int `json:"forensicConfidence"`

	CrossBureau         bool `json:"crossBureau,omitempty"`
	ChainOfCustodyIssue bool `json:"chainOfCustodyIssue,omitempty"`
}

// CustomRuleConfig is an operator-defined violation rule expressed as a CEL
// expression over the normalized tradeline variables. Stored per tenant and
// hot-reloadable; matches emit RuleFlags with a "CUSTOM-" prefixed id.
type CustomRuleConfig struct {
	ID          string `json:"id"`
	TenantID    string `json:"tenantId"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version"`

	// Expression must evaluate to bool (matched) or a numeric confidence.
	Expression string `json:"expression"`

	Severity         Severity   `json:"severity"`
	WillfulnessScore int        `json:"willfulnessScore"`
	Statutory        MoneyRange `json:"statutory"`
	Citation         string     `json:"citation,omitempty"`
	Remediation      string     `json:"remediation,omitempty"`

	Enabled bool `json:"enabled"`
}
