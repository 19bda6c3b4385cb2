package patterns

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/opensource-credit/harrier/internal/domain"
)

// severityWeight scales a pattern's confidence into its risk score.
var severityWeight = map[domain.Severity]float64{
	domain.SeverityCritical: 1.0,
	domain.SeverityHigh:     0.8,
	domain.SeverityMedium:   0.6,
	domain.SeverityLow:      0.4,
}

// diminishingWeight discounts each additional pattern's contribution to the
// overall risk score, so heavily overlapping matches do not stack linearly.
const diminishingWeight = 0.7

const maxPriorityActions = 10

// categoryEstimates are coarse mid-range dollar figures for the actual-harm
// categories a pattern's damages profile names.
var categoryEstimates = map[string]float64{
	"credit denial":         1500,
	"emotional distress":    2500,
	"overpayment":           1000,
	"time and expense":      500,
	"program ineligibility": 2000,
}

const (
	// perViolationValue increments the estimate for each rule flag the
	// caller's evaluation produced, at the statutory per-violation floor.
	perViolationValue = 100
	punitiveShare     = 0.5
	feeShare          = 0.33
)

// Matcher matches signal sets against a pattern catalog. Like the rule
// evaluator, the catalog can be swapped at runtime under a write lock.
type Matcher struct {
	mu    sync.RWMutex
	defs  map[string]domain.PatternDefinition
	order []string
}

// NewMatcher returns a matcher loaded with the given definitions.
func NewMatcher(defs []domain.PatternDefinition) *Matcher {
	m := &Matcher{}
	m.Reload(defs)
	return m
}

// Reload replaces the loaded catalog.
func (m *Matcher) Reload(defs []domain.PatternDefinition) {
	byID := make(map[string]domain.PatternDefinition, len(defs))
	order := make([]string, 0, len(defs))
	for _, d := range defs {
		if _, dup := byID[d.ID]; !dup {
			order = append(order, d.ID)
		}
		byID[d.ID] = d
	}
	m.mu.Lock()
	m.defs = byID
	m.order = order
	m.mu.Unlock()
}

// Count returns the number of loaded definitions.
func (m *Matcher) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.defs)
}

// Definitions returns all loaded definitions in catalog order.
func (m *Matcher) Definitions() []domain.PatternDefinition {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.PatternDefinition, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.defs[id])
	}
	return out
}

// Match evaluates every catalog pattern against the signal set and
// aggregates overall risk, litigation value, and priority actions. The
// caller's rule flags feed the per-violation component of each pattern's
// estimated value. Detected patterns come back ordered by risk score,
// then id.
func (m *Matcher) Match(sigs domain.SignalSet, flags []domain.RuleFlag) domain.PatternAnalysisResult {
	m.mu.RLock()
	order := m.order
	defs := m.defs
	m.mu.RUnlock()

	var res domain.PatternAnalysisResult
	for _, id := range order {
		if p, ok := matchOne(defs[id], sigs, len(flags)); ok {
			res.Patterns = append(res.Patterns, p)
		}
	}

	sort.SliceStable(res.Patterns, func(i, j int) bool {
		if res.Patterns[i].RiskScore != res.Patterns[j].RiskScore {
			return res.Patterns[i].RiskScore > res.Patterns[j].RiskScore
		}
		return res.Patterns[i].PatternID < res.Patterns[j].PatternID
	})

	res.OverallRisk = overallRisk(res.Patterns)
	for _, p := range res.Patterns {
		res.LitigationValue.Min += p.EstimatedValue.Min
		res.LitigationValue.Max += p.EstimatedValue.Max
	}
	res.PriorityActions = priorityActions(res.Patterns)
	return res
}

// matchOne applies the matching gate and confidence formula to a single
// definition. A pattern is considered only when at least half its required
// signals are present; confidence then weighs required matches at 70 and
// optional matches at 30, and the pattern is included when confidence
// clears the definition's threshold.
func matchOne(def domain.PatternDefinition, sigs domain.SignalSet, flagCount int) (domain.DetectedPattern, bool) {
	if len(def.RequiredSignals) == 0 {
		return domain.DetectedPattern{}, false
	}

	var matched, missing []domain.Signal
	for _, s := range def.RequiredSignals {
		if sigs.Has(s) {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	if len(matched)*2 < len(def.RequiredSignals) {
		return domain.DetectedPattern{}, false
	}

	var optMatched []domain.Signal
	for _, s := range def.OptionalSignals {
		if sigs.Has(s) {
			optMatched = append(optMatched, s)
		}
	}

	reqFrac := float64(len(matched)) / float64(len(def.RequiredSignals))
	var confidence int
	if len(def.OptionalSignals) == 0 {
		confidence = int(math.Round(100 * reqFrac))
	} else {
		optFrac := float64(len(optMatched)) / float64(len(def.OptionalSignals))
		confidence = int(math.Round(70*reqFrac + 30*optFrac))
	}
	if confidence < def.MinConfidence {
		return domain.DetectedPattern{}, false
	}

	all := append(append([]domain.Signal{}, matched...), optMatched...)
	evidence := make([]string, 0, len(all))
	for _, s := range all {
		evidence = append(evidence, fmt.Sprintf("signal %s present", s))
	}

	risk := int(math.Round(float64(confidence) * severityWeight[def.Severity]))
	if def.PunitiveEligible {
		risk += 10
	}
	if def.ClassActionEligible {
		risk += 5
	}
	if risk > 100 {
		risk = 100
	}

	return domain.DetectedPattern{
		PatternID:           def.ID,
		Name:                def.Name,
		Severity:            def.Severity,
		Confidence:          confidence,
		MatchedSignals:      all,
		MissingSignals:      missing,
		Evidence:            evidence,
		RiskScore:           risk,
		EstimatedValue:      litigationValue(def, confidence, flagCount),
		Urgency:             urgency(def.Severity),
		Narrative:           def.Narrative,
		PunitiveEligible:    def.PunitiveEligible,
		ClassActionEligible: def.ClassActionEligible,
		Recommendations:     def.Recommendations,
	}, true
}

// litigationValue estimates what the pattern is worth to litigate: the
// statutory midpoint scaled by confidence, the damages profile's harm
// categories, and a per-violation increment form the floor; punitive
// exposure and a one-third fee estimate stack on top for the ceiling.
func litigationValue(def domain.PatternDefinition, confidence, flagCount int) domain.MoneyRange {
	statMid := (def.Statutory.Min + def.Statutory.Max) / 2 * float64(confidence) / 100
	var actual float64
	for _, cat := range def.ActualDamageCategories {
		actual += categoryEstimates[cat]
	}
	base := statMid + actual + perViolationValue*float64(flagCount)

	subtotal := base
	if def.PunitiveEligible {
		subtotal += punitiveShare * (statMid + actual)
	}
	subtotal += feeShare * subtotal

	return domain.MoneyRange{Min: round2(base), Max: round2(subtotal)}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }

func urgency(sev domain.Severity) string {
	switch sev {
	case domain.SeverityCritical:
		return "immediate"
	case domain.SeverityHigh:
		return "high"
	default:
		return "standard"
	}
}

// overallRisk sums risk scores best-first with geometrically diminishing
// weight, capped at 100. Patterns must already be sorted by risk.
func overallRisk(ps []domain.DetectedPattern) int {
	var total, weight float64 = 0, 1
	for _, p := range ps {
		total += float64(p.RiskScore) * weight
		weight *= diminishingWeight
	}
	if total > 100 {
		total = 100
	}
	return int(math.Round(total))
}

// priorityActions collects recommendations from patterns best-first,
// deduplicated, capped at maxPriorityActions.
func priorityActions(ps []domain.DetectedPattern) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, p := range ps {
		for _, rec := range p.Recommendations {
			if _, dup := seen[rec]; dup {
				continue
			}
			seen[rec] = struct{}{}
			out = append(out, rec)
			if len(out) == maxPriorityActions {
				return out
			}
		}
	}
	return out
}
