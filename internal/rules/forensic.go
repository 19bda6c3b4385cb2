package rules

import (
	"fmt"

	"github.com/opensource-credit/harrier/internal/domain"
	"github.com/opensource-credit/harrier/internal/fields"
)

// Forensic runs the four forensic passes over a tradeline: date
// manipulation, balance forensics, chain of title, and furnisher behavior.
// Each pass accumulates a 0-100 score from weighted anomalies; the overall
// tier follows the average across the four passes.
func Forensic(f domain.Tradeline, opt Options) domain.ForensicSummary {
	c := newEvalCtx(f, opt)

	sum := domain.ForensicSummary{
		DateManipulation:  datePass(c),
		BalanceForensics:  balancePass(c),
		ChainOfTitle:      chainPass(c),
		FurnisherBehavior: furnisherPass(c),
	}
	sum.OverallRisk = forensicTier(avgScore(
		sum.DateManipulation.Score,
		sum.BalanceForensics.Score,
		sum.ChainOfTitle.Score,
		sum.FurnisherBehavior.Score,
	))
	sum.Recommendations = forensicRecommendations(sum)
	return sum
}

func datePass(c *evalCtx) domain.ForensicPass {
	var p domain.ForensicPass

	if c.hasOpened && c.hasDOFD && c.dofd.Before(c.opened) {
		addAnomaly(&p, 40, "impossible-chronology", domain.SeverityCritical, "RA1",
			fmt.Sprintf("DOFD %s predates the open date %s", c.raw.DOFD, c.raw.DateOpened))
	}
	if c.hasDOFD && c.hasRemoval {
		if drift := days(c.removal.Sub(c.windowEnd())); drift > 30 {
			addAnomaly(&p, 30, "removal-date-drift", domain.SeverityHigh, "RA4",
				fmt.Sprintf("removal date drifts %d days past the statutory window", drift))
		}
	}
	if c.beyondWindow() {
		addAnomaly(&p, 40, "expired-reporting", domain.SeverityCritical, "RA3",
			fmt.Sprintf("item is %d days past its reporting deadline", days(c.now.Sub(c.windowEnd()))))
	}
	if c.hasOpened && c.hasDOFD && c.hasCO && c.opened.Equal(c.dofd) && c.dofd.Equal(c.chargeOff) {
		addAnomaly(&p, 20, "identical-dates", domain.SeverityMedium, "RA7",
			"open date, DOFD, and charge-off date are identical")
	}
	return p
}

func balancePass(c *evalCtx) domain.ForensicPass {
	var p domain.ForensicPass

	if statusSatisfied(c.status) && c.hasBalance && c.balance > 0 {
		addAnomaly(&p, 35, "satisfied-with-balance", domain.SeverityCritical, "BF1",
			fmt.Sprintf("status %q with a balance of %s", c.status, money(c.balance)))
	}
	if r, ok := balanceRatio(c); ok && r > 2.0 {
		addAnomaly(&p, 25, "excessive-growth", domain.SeverityHigh, "BF2",
			fmt.Sprintf("balance is %.1fx the original amount", r))
	}
	if rate, ok := impliedAnnualRate(c); ok && rate > defaultRateCap {
		addAnomaly(&p, 15, "excessive-rate", domain.SeverityHigh, "BF4",
			fmt.Sprintf("implied annual rate of roughly %.0f%%", rate*100))
	}
	return p
}

func chainPass(c *evalCtx) domain.ForensicPass {
	var p domain.ForensicPass

	if fields.ContainsAny(c.status+" "+c.remarks, "sold", "transferred") && c.hasBalance && c.balance > 0 {
		addAnomaly(&p, 30, "sold-with-balance", domain.SeverityHigh, "BF5",
			fmt.Sprintf("sold or transferred debt still carries a balance of %s", money(c.balance)))
	}
	if c.isCollection() && c.raw.OriginalCreditor == "" {
		addAnomaly(&p, 25, "missing-original-creditor", domain.SeverityHigh, "CT2",
			"collection does not identify the original creditor")
	}
	if c.isCollection() && c.hasOpened && c.hasDOFD && c.opened.After(c.dofd.AddDate(3, 0, 0)) {
		addAnomaly(&p, 20, "late-acquisition", domain.SeverityHigh, "CT1",
			fmt.Sprintf("collection opened %.1f years after first delinquency", fields.YearsBetween(c.dofd, c.opened)))
	}
	if isDebtBuyer(c.raw.Furnisher) && c.beyondWindow() {
		// Weight grows with how long the debt has been dead: 15 points
		// just past the window, +3 per year beyond it, capped at 40.
		pts := 15 + 3*int(fields.YearsBetween(c.windowEnd(), c.now))
		if pts > 40 {
			pts = 40
		}
		addAnomaly(&p, pts, "zombie-portfolio", domain.SeverityCritical, "CT6",
			fmt.Sprintf("debt buyer %q reporting an expired debt", c.raw.Furnisher))
	}
	return p
}

func furnisherPass(c *evalCtx) domain.ForensicPass {
	var p domain.ForensicPass

	if c.hasLastRep {
		if stale := days(c.now.Sub(c.lastReported)); stale > 90 {
			addAnomaly(&p, 20, "stale-reporting", domain.SeverityMedium, "FD1",
				fmt.Sprintf("tradeline last updated %d days ago", stale))
		}
	}
	if c.isCollection() && !c.hasDOFD {
		addAnomaly(&p, 25, "dofd-withheld", domain.SeverityHigh, "FD2",
			"collection furnished without a date of first delinquency")
	}
	if c.raw.Furnisher == "" {
		addAnomaly(&p, 15, "anonymous-furnisher", domain.SeverityMedium, "FD7",
			"no furnishing entity identified")
	}
	if c.hasRemoval && c.hasLastRep && c.lastReported.After(c.removal) {
		addAnomaly(&p, 25, "post-removal-reporting", domain.SeverityHigh, "FD5",
			"activity reported after the estimated removal date")
	}
	return p
}

func addAnomaly(p *domain.ForensicPass, points int, typ string, sev domain.Severity, ruleID, desc string) {
	p.Score += points
	if p.Score > 100 {
		p.Score = 100
	}
	p.Anomalies = append(p.Anomalies, domain.Anomaly{
		Type:        typ,
		Description: desc,
		Severity:    sev,
		RuleID:      ruleID,
	})
}

func avgScore(scores ...int) int {
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return sum / len(scores)
}

// forensicTier buckets the four-pass average. Thresholds sit lower than the
// per-pass trigger levels because a single saturated pass averages out to 25;
// critical demands corroboration across passes, not one loud one.
func forensicTier(score int) string {
	switch {
	case score >= 50:
		return domain.ForensicRiskCritical
	case score >= 35:
		return domain.ForensicRiskHigh
	case score >= 20:
		return domain.ForensicRiskModerate
	case score >= 8:
		return domain.ForensicRiskLow
	default:
		return domain.ForensicRiskMinimal
	}
}

func forensicRecommendations(sum domain.ForensicSummary) []domain.ForensicRecommendation {
	var out []domain.ForensicRecommendation
	if sum.DateManipulation.Score > 50 {
		out = append(out, domain.ForensicRecommendation{
			Priority:   domain.PriorityImmediate,
			Action:     "Dispute all reported dates and demand the furnisher's original delinquency records",
			Rationale:  "Multiple date anomalies indicate the reporting timeline was altered",
			LegalBasis: "15 U.S.C. § 1681c(a)(4); 15 U.S.C. § 1681e(b)",
		})
	}
	if sum.BalanceForensics.Score > 40 {
		out = append(out, domain.ForensicRecommendation{
			Priority:   domain.PriorityHigh,
			Action:     "Demand a complete itemization of principal, interest, and fees",
			Rationale:  "Balance anomalies indicate amounts beyond the original obligation",
			LegalBasis: "15 U.S.C. § 1692f(1); 15 U.S.C. § 1692g",
		})
	}
	if sum.ChainOfTitle.Score > 40 {
		out = append(out, domain.ForensicRecommendation{
			Priority:   domain.PriorityHigh,
			Action:     "Demand the complete chain of assignment from the original creditor",
			Rationale:  "Ownership of the debt cannot be established from the tradeline",
			LegalBasis: "15 U.S.C. § 1692g(a)(2)",
		})
	}
	if sum.FurnisherBehavior.Score > 40 {
		out = append(out, domain.ForensicRecommendation{
			Priority:   domain.PriorityStandard,
			Action:     "Dispute the currency and completeness of the furnished data",
			Rationale:  "The furnisher's reporting practices fall short of its accuracy duties",
			LegalBasis: "15 U.S.C. § 1681s-2(a)",
		})
	}
	return out
}
