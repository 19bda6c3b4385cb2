package domain

// Anomaly is one free-text finding from a forensic scoring pass.
// RuleID links the anomaly to the catalog rule that covers the same
// condition, so a finding is never duplicated between the anomaly and
// rule-flag views.
type Anomaly struct {
	Type        string   `json:"type"` // date-manipulation, balance, chain-of-title, furnisher
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	RuleID      string   `json:"ruleId,omitempty"`
}

// ForensicPass is one scoring pass's result: a 0-100 risk subscore plus
// its anomalies.
type ForensicPass struct {
	Score     int       `json:"score"`
	Anomalies []Anomaly `json:"anomalies,omitempty"`
}

// ForensicRecommendation is generated when a pass score crosses its
// trigger threshold.
type ForensicRecommendation struct {
	Priority   string `json:"priority"` // immediate, high, standard
	Action     string `json:"action"`
	Rationale  string `json:"rationale"`
	LegalBasis string `json:"legalBasis,omitempty"`
}

// Overall forensic risk tiers, derived from the four-pass average.
const (
	ForensicRiskMinimal  = "minimal"
	ForensicRiskLow      = "low"
	ForensicRiskModerate = "moderate"
	ForensicRiskHigh     = "high"
	ForensicRiskCritical = "critical"
)

// ForensicSummary bundles the four independent passes.
type ForensicSummary struct {
	DateManipulation  ForensicPass `json:"dateManipulation"`
	BalanceForensics  ForensicPass `json:"balanceForensics"`
	ChainOfTitle      ForensicPass `json:"chainOfTitle"`
	FurnisherBehavior ForensicPass `json:"furnisherBehavior"`

	OverallRisk     string                   `json:"overallRisk"`
	Recommendations []ForensicRecommendation `json:"recommendations,omitempty"`
}
