package domain

// Culpability classifies the furnisher's overall conduct.
type Culpability string

const (
	CulpabilityNegligent Culpability = "negligent"
	CulpabilityWillful   Culpability = "willful"
	CulpabilitySystemic  Culpability = "systemic"
)

// Litigation viability tiers.
const (
	ViabilityStrong   = "strong"
	ViabilityModerate = "moderate"
	ViabilityLimited  = "limited"
)

// ImpactAssessment is the monetary-figure-free sibling of
// DamagesCalculation, for contexts where dollar amounts must not be
// surfaced. No field of this struct, nor any text rendered from it, may
// contain a currency figure; FormatReport enforces this as an output
// contract.
type ImpactAssessment struct {
	Culpability         Culpability `json:"culpability"`
	RiskScore           int         `json:"riskScore"` // 0-100
	LitigationViability string      `json:"litigationViability"`
	KeyFindings         []string    `json:"keyFindings,omitempty"`
	Summary             string      `json:"summary"`
}
