// Package impact produces the qualitative assessment of furnisher conduct.
// Its output is the monetary-figure-free counterpart to the damages
// calculation: nothing this package renders may contain a currency amount,
// so its reports are safe for contexts where dollar figures must not
// appear.
package impact

import (
	"fmt"
	"strings"

	"github.com/opensource-credit/harrier/internal/domain"
)

const maxKeyFindings = 8

// Assess classifies culpability and scores overall risk from flags and
// detected patterns.
func Assess(flags []domain.RuleFlag, patterns []domain.DetectedPattern) domain.ImpactAssessment {
	high, medium := 0, 0
	reAging, structural := false, false
	for _, f := range flags {
		switch f.Severity {
		case domain.SeverityCritical, domain.SeverityHigh:
			high++
		case domain.SeverityMedium:
			medium++
		}
		if f.Category == domain.CategoryReAging {
			reAging = true
		}
		if f.Category == domain.CategoryCrossBureau || f.Category == domain.CategoryStateLaw {
			structural = true
		}
	}

	var culpability domain.Culpability
	switch {
	case len(patterns) > 0 || structural:
		culpability = domain.CulpabilitySystemic
	case high >= 3 || reAging:
		culpability = domain.CulpabilityWillful
	default:
		culpability = domain.CulpabilityNegligent
	}

	risk := high*25 + medium*10 + len(patterns)*15
	if risk > 100 {
		risk = 100
	}

	a := domain.ImpactAssessment{
		Culpability:         culpability,
		RiskScore:           risk,
		LitigationViability: viability(risk, culpability),
		KeyFindings:         keyFindings(flags, patterns),
	}
	a.Summary = summary(a, high, len(patterns))
	return a
}

func viability(risk int, c domain.Culpability) string {
	switch {
	case risk >= 70 && c != domain.CulpabilityNegligent:
		return domain.ViabilityStrong
	case risk >= 40:
		return domain.ViabilityModerate
	default:
		return domain.ViabilityLimited
	}
}

func keyFindings(flags []domain.RuleFlag, patterns []domain.DetectedPattern) []string {
	var out []string
	for _, p := range patterns {
		out = append(out, fmt.Sprintf("Pattern detected: %s (%s severity)", p.Name, p.Severity))
		if len(out) == maxKeyFindings {
			return out
		}
	}
	for _, f := range flags {
		if f.Severity != domain.SeverityCritical && f.Severity != domain.SeverityHigh {
			continue
		}
		out = append(out, fmt.Sprintf("%s: %s", f.RuleID, f.Name))
		if len(out) == maxKeyFindings {
			return out
		}
	}
	return out
}

func summary(a domain.ImpactAssessment, serious, patternCount int) string {
	var b strings.Builder
	switch a.Culpability {
	case domain.CulpabilitySystemic:
		b.WriteString("The reporting conduct shows systemic practices rather than isolated errors")
	case domain.CulpabilityWillful:
		b.WriteString("The reporting conduct shows willful disregard of accuracy duties")
	default:
		b.WriteString("The reporting conduct is consistent with negligence rather than intent")
	}
	fmt.Fprintf(&b, ", with %d serious violations", serious)
	if patternCount > 0 {
		fmt.Fprintf(&b, " across %d recognized misconduct patterns", patternCount)
	}
	fmt.Fprintf(&b, ". Litigation viability is %s.", a.LitigationViability)
	return b.String()
}

// FormatReport renders the assessment as plain text. The output carries no
// currency figures; Assess produces none and this renderer adds none.
func FormatReport(a domain.ImpactAssessment) string {
	var b strings.Builder
	b.WriteString("IMPACT ASSESSMENT\n")
	fmt.Fprintf(&b, "Culpability: %s\n", a.Culpability)
	fmt.Fprintf(&b, "Risk score: %d/100\n", a.RiskScore)
	fmt.Fprintf(&b, "Litigation viability: %s\n", a.LitigationViability)
	if len(a.KeyFindings) > 0 {
		b.WriteString("Key findings:\n")
		for _, k := range a.KeyFindings {
			fmt.Fprintf(&b, "  - %s\n", k)
		}
	}
	fmt.Fprintf(&b, "%s\n", a.Summary)
	return b.String()
}
