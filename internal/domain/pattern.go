package domain

// PatternDefinition is a static catalog entry describing a named
// multi-signal pattern of misconduct (e.g. classic re-aging, zombie debt
// resurrection). A pattern matches when at least half of its required
// signals are present and the combined confidence clears MinConfidence.
type PatternDefinition struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Severity Severity `json:"severity"`

	RequiredSignals []Signal `json:"requiredSignals"`
	OptionalSignals []Signal `json:"optionalSignals,omitempty"`

	// MinConfidence is the catalog threshold, 0-100.
	MinConfidence int `json:"minConfidence"`

	LegalBasis []string `json:"legalBasis,omitempty"`

	// Damages profile
	Statutory              MoneyRange `json:"statutory"`
	ActualDamageCategories []string   `json:"actualDamageCategories,omitempty"`
	PunitiveEligible       bool       `json:"punitiveEligible"`
	ClassActionEligible    bool       `json:"classActionEligible"`

	Recommendations []string `json:"recommendations,omitempty"`
	Narrative       string   `json:"narrative"`
}

// DetectedPattern is a PatternDefinition match with its computed evidence.
type DetectedPattern struct {
	PatternID string   `json:"patternId"`
	Name      string   `json:"name"`
	Severity  Severity `json:"severity"`

	// Confidence is 70*(matchedRequired/totalRequired) +
	// 30*(matchedOptional/totalOptional), rounded.
	Confidence int `json:"confidence"`

	MatchedSignals []Signal `json:"matchedSignals"`
	MissingSignals []Signal `json:"missingSignals,omitempty"`
	Evidence       []string `json:"evidence,omitempty"`

	// RiskScore is confidence scaled by severity plus eligibility bonuses,
	// capped at 100.
	RiskScore int `json:"riskScore"`

	EstimatedValue MoneyRange `json:"estimatedValue"`
	Urgency        string     `json:"urgency"` // immediate, high, standard

	Narrative string `json:"narrative"`

	PunitiveEligible    bool `json:"punitiveEligible"`
	ClassActionEligible bool `json:"classActionEligible"`

	Recommendations []string `json:"recommendations,omitempty"`
}

// PatternAnalysisResult aggregates all detected patterns for one call.
type PatternAnalysisResult struct {
	Patterns []DetectedPattern `json:"patterns"`

	// OverallRisk applies diminishing weight across patterns so many
	// overlapping matches do not inflate risk by naive summation.
	OverallRisk int `json:"overallRisk"`

	LitigationValue MoneyRange `json:"litigationValue"`

	// PriorityActions is deduplicated across patterns, best-first, top 10.
	PriorityActions []string `json:"priorityActions,omitempty"`
}
