package damages

import (
	"fmt"
	"math"
	"strings"

	"github.com/opensource-credit/harrier/internal/domain"
)

// Input collects everything the calculator weighs.
type Input struct {
	Flags    []domain.RuleFlag
	Patterns []domain.DetectedPattern
	Harm     *domain.HarmFacts
	State    string

	VulnerableConsumer bool
	KnownRecidivist    bool
}

// Scenario blend weights for the expected total.
const (
	weightConservative = 0.30
	weightModerate     = 0.50
	weightAggressive   = 0.20
)

const punitiveWillfulnessBar = 60

const (
	attorneyBaseHours     = 20
	attorneyHoursPerFlag  = 2
	attorneyPunitiveHours = 20
	attorneyHoursCap      = 150
)

// Calculate produces the full damages tree. With no flags the result is a
// zeroed calculation under the resolved jurisdiction profile; it never
// errors.
func Calculate(in Input) domain.DamagesCalculation {
	profile := Jurisdiction(in.State)

	calc := domain.DamagesCalculation{
		Jurisdiction: profile,
		Statutory:    statutory(in.Flags),
		Actual:       actual(in.Harm),
		FilingCosts:  profile.FilingFee,
	}
	calc.Multipliers = multipliers(in)
	calc.Punitive = punitive(in.Flags, calc, profile)
	calc.AttorneyFees = attorneyFees(len(in.Flags), calc.Punitive.Eligible, profile)
	calc.Total = total(calc, len(in.Flags))
	calc.ClassAction = classAction(in.Flags, in.Patterns)
	calc.Settlement = settlement(in.Flags, calc.Total)
	calc.Risk = caseRisk(in, calc)
	return calc
}

// statutory splits flags into the FCRA and FDCPA families by citation.
// FCRA exposure scales per violation ($100-$1,000 each); FDCPA is a capped
// aggregate regardless of violation count.
func statutory(flags []domain.RuleFlag) domain.StatutoryDamages {
	var s domain.StatutoryDamages
	for _, f := range flags {
		if isFCRA(f) {
			s.FCRACount++
		} else if isFDCPA(f) {
			s.FDCPACount++
		}
	}
	s.FCRA = domain.MoneyRange{
		Min: float64(s.FCRACount) * 100,
		Max: float64(s.FCRACount) * 1000,
	}
	if s.FDCPACount > 0 {
		s.FDCPA = domain.MoneyRange{Min: 500, Max: 1000}
	}
	s.Total = domain.MoneyRange{
		Min: s.FCRA.Min + s.FDCPA.Min,
		Max: s.FCRA.Max + s.FDCPA.Max,
	}
	return s
}

func isFCRA(f domain.RuleFlag) bool { return citesTitle(f, "1681") }

func isFDCPA(f domain.RuleFlag) bool { return citesTitle(f, "1692") }

func citesTitle(f domain.RuleFlag, section string) bool {
	for _, c := range f.Citations {
		if strings.Contains(c, section) {
			return true
		}
	}
	return false
}

// Itemization constants for harm facts. Coarse per-event figures in line
// with reported consumer-case awards.
const (
	perCreditDenial      = 500
	perMonthInterest     = 50
	employmentImpactBase = 5000
	housingImpactBase    = 7500
	perHourTimeSpent     = 25
)

var distressAwards = map[string]float64{
	"mild":     1000,
	"moderate": 5000,
	"severe":   15000,
}

func actual(h *domain.HarmFacts) domain.ActualDamages {
	var a domain.ActualDamages
	if h == nil {
		a.EvidenceStrength = domain.EvidenceWeak
		return a
	}
	a.CreditDenials = float64(h.CreditDenials) * perCreditDenial
	a.InterestImpact = float64(h.MonthsOfHarm) * perMonthInterest
	a.EmotionalDistress = distressAwards[strings.ToLower(strings.TrimSpace(h.EmotionalDistress))]
	if h.EmploymentImpact {
		a.EmploymentImpact = employmentImpactBase
	}
	if h.HousingImpact {
		a.HousingImpact = housingImpactBase
	}
	a.OutOfPocket = h.OutOfPocket
	a.TimeSpent = h.HoursSpent * perHourTimeSpent
	a.Total = a.CreditDenials + a.InterestImpact + a.EmotionalDistress +
		a.EmploymentImpact + a.HousingImpact + a.OutOfPocket + a.TimeSpent

	// Strength tiers by how documentable the harm is: denials and
	// employment or housing impact leave a paper trail; distress and
	// duration-based harm rest on testimony.
	switch {
	case h.CreditDenials > 0 || h.EmploymentImpact || h.HousingImpact:
		a.EvidenceStrength = domain.EvidenceStrong
	case a.EmotionalDistress >= distressAwards["severe"] || h.MonthsOfHarm > 0:
		a.EvidenceStrength = domain.EvidenceModerate
	default:
		a.EvidenceStrength = domain.EvidenceWeak
	}
	return a
}

func multipliers(in Input) domain.DamageMultipliers {
	m := domain.DamageMultipliers{
		Willfulness:        1 + avgWillfulness(in.Flags)/100,
		PatternOfConduct:   1,
		VulnerableConsumer: 1,
		Recidivism:         1,
		FinancialHarm:      1,
	}

	severe := 0
	for _, p := range in.Patterns {
		if p.Severity == domain.SeverityCritical || p.Severity == domain.SeverityHigh {
			severe++
		}
	}
	m.PatternOfConduct = 1 + 0.2*float64(severe)

	if in.VulnerableConsumer {
		m.VulnerableConsumer = 1.3
	}
	if in.KnownRecidivist {
		m.Recidivism = 1.5
	}
	for _, f := range in.Flags {
		if f.Severity == domain.SeverityCritical {
			m.FinancialHarm = 1.25
			break
		}
	}

	m.Combined = m.Willfulness * m.PatternOfConduct * m.VulnerableConsumer * m.Recidivism * m.FinancialHarm
	return m
}

func avgWillfulness(flags []domain.RuleFlag) float64 {
	if len(flags) == 0 {
		return 0
	}
	sum := 0
	for _, f := range flags {
		sum += f.WillfulnessScore
	}
	return float64(sum) / float64(len(flags))
}

// punitive estimates exposure when the strongest flag's willfulness clears
// the eligibility bar. Eligibility and the enhancement factor key on the
// peak score, not the average, so one more minor flag cannot dilute an
// otherwise willful record out of punitive range.
func punitive(flags []domain.RuleFlag, calc domain.DamagesCalculation, profile domain.JurisdictionProfile) domain.PunitiveDamages {
	p := domain.PunitiveDamages{
		AvgWillfulness: avgWillfulness(flags),
		MaxWillfulness: maxWillfulness(flags),
	}
	if p.MaxWillfulness < punitiveWillfulnessBar {
		return p
	}
	p.Eligible = true
	base := calc.Statutory.Total.Max + calc.Actual.Total
	p.Range = domain.MoneyRange{
		Min: base * 0.5,
		Max: base * profile.PunitiveMultiplier * (1 + p.MaxWillfulness/100),
	}
	return p
}

func maxWillfulness(flags []domain.RuleFlag) float64 {
	out := 0
	for _, f := range flags {
		if f.WillfulnessScore > out {
			out = f.WillfulnessScore
		}
	}
	return float64(out)
}

func attorneyFees(flagCount int, punitiveEligible bool, profile domain.JurisdictionProfile) domain.AttorneyFees {
	if flagCount == 0 {
		return domain.AttorneyFees{HourlyRate: profile.HourlyRate}
	}
	hours := float64(attorneyBaseHours + attorneyHoursPerFlag*flagCount)
	if punitiveEligible {
		hours += attorneyPunitiveHours
	}
	if hours > attorneyHoursCap {
		hours = attorneyHoursCap
	}
	return domain.AttorneyFees{
		EstimatedHours: hours,
		HourlyRate:     profile.HourlyRate,
		Range: domain.MoneyRange{
			Min: hours * profile.HourlyRate.Min,
			Max: hours * profile.HourlyRate.Max,
		},
	}
}

// total builds the three recovery scenarios and blends them 30/50/20.
// Conservative assumes statutory minimums and half the actuals survive;
// moderate takes the statutory midpoint, full actuals, and half the
// punitive floor; aggressive stacks the maximums plus fee-shifting and
// filing costs.
func total(calc domain.DamagesCalculation, flagCount int) domain.TotalDamages {
	if flagCount == 0 {
		// Harm facts without a violation recover nothing.
		return domain.TotalDamages{Confidence: "low"}
	}
	stat := calc.Statutory.Total
	act := calc.Actual.Total

	t := domain.TotalDamages{
		Conservative: round2(stat.Min + 0.5*act),
		Moderate:     round2((stat.Min+stat.Max)/2 + act + 0.5*calc.Punitive.Range.Min),
		Aggressive:   round2(stat.Max + act + calc.Punitive.Range.Max + calc.AttorneyFees.Range.Max + calc.FilingCosts),
	}
	t.Expected = round2(weightConservative*t.Conservative +
		weightModerate*t.Moderate +
		weightAggressive*t.Aggressive)

	switch {
	case calc.Statutory.FCRACount+calc.Statutory.FDCPACount >= 3 && calc.Actual.EvidenceStrength == domain.EvidenceStrong:
		t.Confidence = "high"
	case calc.Statutory.FCRACount+calc.Statutory.FDCPACount > 0:
		t.Confidence = "medium"
	default:
		t.Confidence = "low"
	}
	return t
}

// classAction scores certification factors. Commonality accrues 25 points
// per class-action-eligible pattern because each shared scheme is a question
// common to the class; typicality follows how many violations the named
// plaintiff carries; superiority needs at least two systemic patterns.
func classAction(flags []domain.RuleFlag, ps []domain.DetectedPattern) domain.ClassActionAssessment {
	a := domain.ClassActionAssessment{Adequacy: 70}

	systemic := 0
	for _, p := range ps {
		if p.ClassActionEligible {
			systemic++
		}
	}
	a.Commonality = 25 * systemic
	if a.Commonality > 100 {
		a.Commonality = 100
	}
	switch {
	case len(flags) >= 3:
		a.Typicality = 80
	case len(flags) == 2:
		a.Typicality = 60
	default:
		a.Typicality = 40
	}

	a.Superiority = systemic >= 2
	a.Potential = a.Commonality >= 50 && a.Typicality >= 60 && a.Superiority

	if a.Potential {
		a.Narrative = fmt.Sprintf("%d detected patterns, %d of them systemic practices, support pursuing class treatment.", len(ps), systemic)
	} else {
		a.Narrative = "The detected conduct reads as individual rather than class-wide; pursue individual claims."
	}
	return a
}

// settlement projects bands per litigation stage: early offers band off the
// conservative total, post-discovery off the moderate total once the record
// is developed, and the courthouse-steps band off the expected value.
func settlement(flags []domain.RuleFlag, t domain.TotalDamages) domain.SettlementProjection {
	serious := 0
	for _, f := range flags {
		if f.Severity == domain.SeverityCritical || f.Severity == domain.SeverityHigh {
			serious++
		}
	}
	likelihood := 60 + 5*serious
	if likelihood > 95 {
		likelihood = 95
	}
	if len(flags) == 0 {
		likelihood = 0
	}
	return domain.SettlementProjection{
		PreDiscovery:  domain.MoneyRange{Min: round2(t.Conservative * 0.25), Max: round2(t.Conservative * 0.50)},
		PostDiscovery: domain.MoneyRange{Min: round2(t.Moderate * 0.50), Max: round2(t.Moderate * 0.80)},
		PreTrial:      domain.MoneyRange{Min: round2(t.Expected * 0.70), Max: round2(t.Expected)},
		Likelihood:    likelihood,
	}
}

// caseRisk runs a strength score from a neutral base of 50: each recognized
// strength or weakness moves it by a fixed amount alongside its narrative
// line, keeping the score and the prose in lockstep. Clamped to [0,100].
func caseRisk(in Input, calc domain.DamagesCalculation) domain.CaseRisk {
	r := domain.CaseRisk{}
	if len(in.Flags) == 0 {
		r.Recommendations = append(r.Recommendations, "No violations detected; continue monitoring the tradeline")
		return r
	}

	critical := 0
	for _, f := range in.Flags {
		if f.Severity == domain.SeverityCritical {
			critical++
		}
	}

	strength := 50
	if critical > 0 {
		strength += 15
		r.Strengths = append(r.Strengths, fmt.Sprintf("%d critical violations with objective documentary proof", critical))
	}
	for _, p := range in.Patterns {
		strength += 5
		r.Strengths = append(r.Strengths, fmt.Sprintf("Recognized misconduct pattern: %s", p.Name))
	}
	if calc.Punitive.Eligible {
		strength += 10
		r.Strengths = append(r.Strengths, "Willfulness evidence supports a punitive claim")
	} else {
		strength -= 5
		r.Weaknesses = append(r.Weaknesses, "Willfulness evidence is below the punitive threshold")
	}
	if calc.Actual.EvidenceStrength == domain.EvidenceStrong {
		strength += 10
		r.Strengths = append(r.Strengths, "Harm is documented by records rather than testimony alone")
	}

	if calc.Actual.Total == 0 {
		strength -= 10
		r.Weaknesses = append(r.Weaknesses, "No documented actual damages; recovery rests on statutory awards")
		r.Recommendations = append(r.Recommendations, "Document credit denials, out-of-pocket costs, and time spent")
	}
	if calc.Actual.EvidenceStrength == domain.EvidenceModerate {
		strength -= 5
		r.Weaknesses = append(r.Weaknesses, "Actual damages rest partly on testimony rather than records")
		r.Recommendations = append(r.Recommendations, "Gather denial letters and statements corroborating each harm item")
	}

	if strength > 100 {
		strength = 100
	}
	if strength < 0 {
		strength = 0
	}
	r.Strength = strength
	r.Recommendations = append(r.Recommendations, "Send written disputes before filing to complete the statutory predicate")
	return r
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
