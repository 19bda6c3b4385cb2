// Package reconcile compares the same tradeline as reported to multiple
// bureaus and turns the differences into dispute material.
package reconcile

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/opensource-credit/harrier/internal/domain"
	"github.com/opensource-credit/harrier/internal/fields"
	"github.com/opensource-credit/harrier/internal/rules"
)

// balanceTolerance is the spread, in currency units, below which differing
// balances are flagged as inconsistent rather than conflicting.
const balanceTolerance = 100.0

// fieldSpec describes how one canonical field is compared and what a
// conflict on it means.
type fieldSpec struct {
	key            string
	kind           string // date, amount, text
	severity       domain.Severity
	violation      string
	citation       string
	recommendation string
}

// compareFields is ordered: output discrepancies follow this order before
// severity sorting, which keeps results stable across runs.
var compareFields = []fieldSpec{
	{"dofd", "date", domain.SeverityCritical,
		"Inconsistent dates of first delinquency extend the reporting window at the bureau carrying the later date",
		"15 U.S.C. § 1681c(a)(4)",
		"Dispute at every bureau citing the earliest reported DOFD"},
	{"currentBalance", "amount", domain.SeverityCritical,
		"Materially different balances mean at least one bureau reports an inaccurate amount",
		"15 U.S.C. § 1681e(b)",
		"Dispute the balance at each bureau with the competing figures"},
	{"chargeOffDate", "date", domain.SeverityCritical,
		"Conflicting charge-off dates undermine the account's reported timeline",
		"15 U.S.C. § 1681e(b)",
		"Dispute the charge-off date with the furnisher's records"},
	{"accountStatus", "text", domain.SeverityCritical,
		"A single account has one status; conflicting statuses are inaccurate by construction",
		"15 U.S.C. § 1681e(b)",
		"Dispute the inconsistent statuses at every bureau"},
	{"dateOpened", "date", domain.SeverityHigh,
		"Conflicting open dates break every downstream date check on the tradeline",
		"15 U.S.C. § 1681e(b)",
		"Dispute the open date with account-opening documentation"},
	{"estimatedRemovalDate", "date", domain.SeverityHigh,
		"Different removal dates mean the bureaus computed the window from different delinquency dates",
		"15 U.S.C. § 1681c(a)(4)",
		"Dispute with the earliest supported removal date"},
	{"originalAmount", "amount", domain.SeverityHigh,
		"Conflicting original amounts obscure how much of the balance is principal",
		"15 U.S.C. § 1692g",
		"Demand an itemized accounting from the furnisher"},
	{"accountType", "text", domain.SeverityHigh,
		"The account is categorized differently at different bureaus",
		"15 U.S.C. § 1681e(b)",
		"Dispute the account classification"},
	{"lastPaymentDate", "date", domain.SeverityMedium,
		"Conflicting last-payment dates distort the account's activity timeline",
		"15 U.S.C. § 1681e(b)",
		"Dispute with payment records"},
	{"lastReportedDate", "date", domain.SeverityMedium, "", "",
		"Note the update gap between bureaus in any dispute"},
	{"creditLimit", "amount", domain.SeverityMedium,
		"Conflicting credit limits distort reported utilization",
		"15 U.S.C. § 1681e(b)",
		"Dispute the limit with account statements"},
	{"originalCreditor", "text", domain.SeverityMedium,
		"The bureaus attribute the debt to different original creditors",
		"15 U.S.C. § 1692g(a)(2)",
		"Demand the original creditor's identity from each bureau"},
	{"furnisher", "text", domain.SeverityMedium,
		"Different entities claim to furnish the same debt",
		"15 U.S.C. § 1692e",
		"Demand chain-of-title documentation"},
	{"remarks", "text", domain.SeverityLow, "", "",
		"Compare remark text across bureaus for dispute framing"},
}

// Reconciler compares bureau snapshots and folds in the cross-bureau rule
// flags the evaluator raises over the same snapshots.
type Reconciler struct {
	eval *rules.Evaluator
}

// New returns a reconciler backed by the given evaluator.
func New(eval *rules.Evaluator) *Reconciler {
	return &Reconciler{eval: eval}
}

// Compare reconciles the bureau snapshots for one tradeline. With fewer
// than two usable snapshots the result reports Comparable=false and
// nothing else.
func (r *Reconciler) Compare(f domain.Tradeline, bureaus []domain.BureauSnapshot, opt rules.Options) domain.ComparisonResult {
	var usable []domain.BureauSnapshot
	for _, b := range bureaus {
		if b.Bureau != "" && !b.Fields.Empty() {
			usable = append(usable, b)
		}
	}
	if len(usable) < 2 {
		return domain.ComparisonResult{Comparable: false}
	}
	sort.SliceStable(usable, func(i, j int) bool { return usable[i].Bureau < usable[j].Bureau })

	maps := make([]map[string]string, len(usable))
	for i, b := range usable {
		maps[i] = b.Fields.FieldMap()
	}

	res := domain.ComparisonResult{Comparable: true}
	for _, b := range usable {
		res.Bureaus = append(res.Bureaus, b.Bureau)
	}

	var opportunities []string
	for _, spec := range compareFields {
		values := make(map[string]string, len(usable))
		present, absent := 0, 0
		for i, b := range usable {
			v := strings.TrimSpace(maps[i][spec.key])
			values[b.Bureau] = v
			if v == "" {
				absent++
			} else {
				present++
			}
		}
		if present == 0 {
			continue
		}
		res.FieldsCompared++

		if absent > 0 {
			res.Discrepancies = append(res.Discrepancies, domain.FieldDiscrepancy{
				Field:          spec.key,
				Values:         values,
				Type:           domain.DiscrepancyMissing,
				Severity:       missingSeverity(spec.severity),
				Violation:      fmt.Sprintf("The %s field is furnished to some bureaus and withheld from others", spec.key),
				Citation:       "15 U.S.C. § 1681s-2(a)",
				Recommendation: fmt.Sprintf("Demand the %s field be furnished completely to every bureau", spec.key),
			})
			continue
		}

		switch classify(spec, values) {
		case "match":
			res.MatchedFields++
		case "inconsistent":
			res.Discrepancies = append(res.Discrepancies, domain.FieldDiscrepancy{
				Field:          spec.key,
				Values:         values,
				Type:           domain.DiscrepancyInconsistent,
				Severity:       domain.SeverityLow,
				Recommendation: spec.recommendation,
			})
		case "conflict":
			d := domain.FieldDiscrepancy{
				Field:          spec.key,
				Values:         values,
				Type:           domain.DiscrepancyConflicting,
				Severity:       spec.severity,
				Violation:      spec.violation,
				Citation:       spec.citation,
				Recommendation: spec.recommendation,
			}
			res.Discrepancies = append(res.Discrepancies, d)
			if spec.violation != "" {
				opportunities = append(opportunities, spec.violation)
			}
		}
	}

	sort.SliceStable(res.Discrepancies, func(i, j int) bool {
		ri, rj := domain.SeverityRank(res.Discrepancies[i].Severity), domain.SeverityRank(res.Discrepancies[j].Severity)
		if ri != rj {
			return ri > rj
		}
		return res.Discrepancies[i].Field < res.Discrepancies[j].Field
	})

	// Fold in the cross-bureau rule flags for the same snapshots.
	if r.eval != nil {
		opt.Bureaus = usable
		for _, fl := range r.eval.Evaluate(f, opt) {
			if fl.CrossBureau {
				opportunities = append(opportunities, fmt.Sprintf("%s: %s", fl.RuleID, fl.Name))
			}
		}
	}
	res.ViolationOpportunities = dedupe(opportunities)

	res.DisputePriority = disputePriority(res.Discrepancies, len(res.ViolationOpportunities))
	res.PriorityTier = priorityTier(res.DisputePriority)
	return res
}

// classify compares present values of one field across bureaus.
func classify(spec fieldSpec, values map[string]string) string {
	vals := make([]string, 0, len(values))
	for _, v := range values {
		vals = append(vals, v)
	}

	switch spec.kind {
	case "date":
		var ts []int64
		for _, v := range vals {
			t, ok := fields.ParseDate(v)
			if !ok {
				return classifyText(vals)
			}
			ts = append(ts, t.Unix())
		}
		for _, t := range ts[1:] {
			if t != ts[0] {
				return "conflict"
			}
		}
		return "match"
	case "amount":
		var lo, hi float64
		for i, v := range vals {
			a, ok := fields.ParseAmount(v)
			if !ok {
				return classifyText(vals)
			}
			if i == 0 || a < lo {
				lo = a
			}
			if i == 0 || a > hi {
				hi = a
			}
		}
		switch {
		case math.Abs(hi-lo) < 0.01:
			return "match"
		case hi-lo <= balanceTolerance:
			return "inconsistent"
		default:
			return "conflict"
		}
	default:
		return classifyText(vals)
	}
}

func classifyText(vals []string) string {
	norm := strings.ToLower(strings.TrimSpace(vals[0]))
	for _, v := range vals[1:] {
		if strings.ToLower(strings.TrimSpace(v)) != norm {
			return "conflict"
		}
	}
	return "match"
}

// missingSeverity steps a field's conflict severity down one tier for
// missing-versus-conflicting values.
func missingSeverity(s domain.Severity) domain.Severity {
	switch s {
	case domain.SeverityCritical:
		return domain.SeverityHigh
	case domain.SeverityHigh:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

// disputePriority weighs discrepancies by severity plus the distinct
// violation angles available.
func disputePriority(ds []domain.FieldDiscrepancy, opportunities int) int {
	score := 0
	for _, d := range ds {
		switch d.Severity {
		case domain.SeverityCritical:
			score += 30
		case domain.SeverityHigh:
			score += 15
		case domain.SeverityMedium:
			score += 5
		}
	}
	score += opportunities * 10
	if score > 100 {
		score = 100
	}
	return score
}

func priorityTier(score int) string {
	switch {
	case score >= 90:
		return domain.PriorityImmediate
	case score >= 50:
		return domain.PriorityHigh
	case score >= 20:
		return domain.PriorityStandard
	default:
		return domain.PriorityLow
	}
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	var out []string
	for _, s := range in {
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
