package domain

// HarmFacts are caller-supplied facts about concrete consumer harm, used by
// the actual-damages estimate. All fields optional; zero values mean the
// harm was not asserted.
type HarmFacts struct {
	CreditDenials     int     `json:"creditDenials,omitempty"`
	MonthsOfHarm      int     `json:"monthsOfHarm,omitempty"`
	EmotionalDistress string  `json:"emotionalDistress,omitempty"` // "", "mild", "moderate", "severe"
	EmploymentImpact  bool    `json:"employmentImpact,omitempty"`
	HousingImpact     bool    `json:"housingImpact,omitempty"`
	OutOfPocket       float64 `json:"outOfPocket,omitempty"`
	HoursSpent        float64 `json:"hoursSpent,omitempty"`
}

// JurisdictionProfile is the damages environment of a judicial circuit.
// Resolved from a two-letter state code; unmapped states get a default
// profile, never an error.
type JurisdictionProfile struct {
	Circuit            string     `json:"circuit"`
	AvgStatutoryAward  float64    `json:"avgStatutoryAward"`
	AvgActualDamages   float64    `json:"avgActualDamages"`
	PunitiveMultiplier float64    `json:"punitiveMultiplier"`
	HourlyRate         MoneyRange `json:"hourlyRate"`
	FilingFee          float64    `json:"filingFee"`
	ConsumerFriendly   bool       `json:"consumerFriendly"`
}

// StatutoryDamages splits flags into FCRA and FDCPA families.
// FCRA damages scale per violation; FDCPA is a capped aggregate regardless
// of count. The asymmetry is statutory, not a modeling choice.
type StatutoryDamages struct {
	FCRACount  int        `json:"fcraCount"`
	FCRA       MoneyRange `json:"fcra"`
	FDCPACount int        `json:"fdcpaCount"`
	FDCPA      MoneyRange `json:"fdcpa"`
	Total      MoneyRange `json:"total"`
}

// EvidenceStrength tiers for actual damages.
const (
	EvidenceStrong   = "strong"
	EvidenceModerate = "moderate"
	EvidenceWeak     = "weak"
)

// ActualDamages itemizes harm-fact derived amounts.
type ActualDamages struct {
	CreditDenials     float64 `json:"creditDenials"`
	InterestImpact    float64 `json:"interestImpact"`
	EmotionalDistress float64 `json:"emotionalDistress"`
	EmploymentImpact  float64 `json:"employmentImpact"`
	HousingImpact     float64 `json:"housingImpact"`
	OutOfPocket       float64 `json:"outOfPocket"`
	TimeSpent         float64 `json:"timeSpent"`
	Total             float64 `json:"total"`
	EvidenceStrength  string  `json:"evidenceStrength"`
}

// DamageMultipliers are the enhancement factors applied to the base award.
type DamageMultipliers struct {
	Willfulness        float64 `json:"willfulness"`
	PatternOfConduct   float64 `json:"patternOfConduct"`
	VulnerableConsumer float64 `json:"vulnerableConsumer"`
	Recidivism         float64 `json:"recidivism"`
	FinancialHarm      float64 `json:"financialHarm"`
	Combined           float64 `json:"combined"`
}

// PunitiveDamages estimates the punitive exposure when the strongest flag's
// willfulness clears the eligibility bar. The average is reported as a
// descriptive datum; eligibility keys on the peak.
type PunitiveDamages struct {
	Eligible       bool       `json:"eligible"`
	AvgWillfulness float64    `json:"avgWillfulness"`
	MaxWillfulness float64    `json:"maxWillfulness"`
	Range          MoneyRange `json:"range"`
}

// AttorneyFees estimates fee-shifting recovery.
type AttorneyFees struct {
	EstimatedHours float64    `json:"estimatedHours"`
	HourlyRate     MoneyRange `json:"hourlyRate"`
	Range          MoneyRange `json:"range"`
}

// TotalDamages blends three scenarios into an expected value.
type TotalDamages struct {
	Conservative float64 `json:"conservative"`
	Moderate     float64 `json:"moderate"`
	Aggressive   float64 `json:"aggressive"`
	Expected     float64 `json:"expected"`
	Confidence   string  `json:"confidence"` // high, medium, low
}

// ClassActionAssessment scores Rule 23-style certification factors.
type ClassActionAssessment struct {
	Commonality int    `json:"commonality"`
	Typicality  int    `json:"typicality"`
	Adequacy    int    `json:"adequacy"`
	Superiority bool   `json:"superiority"`
	Potential   bool   `json:"potential"`
	Narrative   string `json:"narrative,omitempty"`
}

// SettlementProjection estimates settlement bands per litigation stage.
type SettlementProjection struct {
	PreDiscovery  MoneyRange `json:"preDiscovery"`
	PostDiscovery MoneyRange `json:"postDiscovery"`
	PreTrial      MoneyRange `json:"preTrial"`
	Likelihood    int        `json:"likelihood"` // percent, capped at 95
}

// CaseRisk is the qualitative strength assessment.
type CaseRisk struct {
	Strength        int      `json:"strength"` // 0-100
	Strengths       []string `json:"strengths,omitempty"`
	Weaknesses      []string `json:"weaknesses,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// DamagesCalculation is the full aggregate output tree. Every numeric
// sub-result is derived and safe to recompute on every call.
type DamagesCalculation struct {
	Jurisdiction JurisdictionProfile   `json:"jurisdiction"`
	Statutory    StatutoryDamages      `json:"statutory"`
	Actual       ActualDamages         `json:"actual"`
	Multipliers  DamageMultipliers     `json:"multipliers"`
	Punitive     PunitiveDamages       `json:"punitive"`
	AttorneyFees AttorneyFees          `json:"attorneyFees"`
	FilingCosts  float64               `json:"filingCosts"`
	Total        TotalDamages          `json:"total"`
	ClassAction  ClassActionAssessment `json:"classAction"`
	Settlement   SettlementProjection  `json:"settlement"`
	Risk         CaseRisk              `json:"risk"`
}
