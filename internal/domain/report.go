package domain

import (
	"time"
)

// AnalysisReport is the complete pipeline output for one tradeline: flags,
// signals, forensics, patterns, cross-bureau comparison, damages, and the
// currency-free impact overlay. Plain serializable data with no live
// references, so it can cross a process or rendering boundary unchanged.
type AnalysisReport struct {
	ID        string    `json:"id"`
	TenantID  string    `json:"tenantId"`
	Timestamp time.Time `json:"timestamp"`

	Fields Tradeline `json:"fields"`

	Signals  []Signal              `json:"signals,omitempty"`
	Flags    []RuleFlag            `json:"flags"`
	Forensic ForensicSummary       `json:"forensic"`
	Patterns PatternAnalysisResult `json:"patterns"`

	// Comparison is nil when fewer than two bureau snapshots were supplied.
	Comparison *ComparisonResult `json:"comparison,omitempty"`

	Damages DamagesCalculation `json:"damages"`
	Impact  ImpactAssessment   `json:"impact"`

	Metadata ReportMetadata `json:"metadata"`
}

// ReportMetadata carries processing information.
type ReportMetadata struct {
	TraceID        string `json:"traceId,omitempty"`
	SignalsMs      int64  `json:"signalsMs"`
	RulesMs        int64  `json:"rulesMs"`
	PatternsMs     int64  `json:"patternsMs"`
	ReconcileMs    int64  `json:"reconcileMs"`
	DamagesMs      int64  `json:"damagesMs"`
	TotalMs        int64  `json:"totalMs"`
	RulesEvaluated int    `json:"rulesEvaluated"`
	EngineVersion  string `json:"engineVersion"`
	CacheHit       bool   `json:"cacheHit,omitempty"`
}

// HasCriticalFlag reports whether any flag is critical severity.
func (r *AnalysisReport) HasCriticalFlag() bool {
	for _, f := range r.Flags {
		if f.Severity == SeverityCritical {
			return true
		}
	}
	return false
}

// ShouldAlert reports whether the report warrants an alert event: any
// critical flag or any high/critical detected pattern.
func (r *AnalysisReport) ShouldAlert() bool {
	if r.HasCriticalFlag() {
		return true
	}
	for _, p := range r.Patterns.Patterns {
		if p.Severity == SeverityHigh || p.Severity == SeverityCritical {
			return true
		}
	}
	return false
}
