package impact

import (
	"strings"
	"testing"
	"time"

	"github.com/opensource-credit/harrier/internal/domain"
	"github.com/opensource-credit/harrier/internal/rules"
)

func flag(id string, cat domain.RuleCategory, sev domain.Severity) domain.RuleFlag {
	return domain.RuleFlag{RuleID: id, Name: "flag " + id, Category: cat, Severity: sev}
}

func TestCulpabilityLadder(t *testing.T) {
	// Patterns always mean systemic.
	a := Assess(nil, []domain.DetectedPattern{{PatternID: "PT-A", Name: "p", Severity: domain.SeverityHigh}})
	if a.Culpability != domain.CulpabilitySystemic {
		t.Errorf("patterns: culpability = %s, want systemic", a.Culpability)
	}

	// Cross-bureau flags mean systemic even without patterns.
	a = Assess([]domain.RuleFlag{flag("XB1", domain.CategoryCrossBureau, domain.SeverityCritical)}, nil)
	if a.Culpability != domain.CulpabilitySystemic {
		t.Errorf("cross-bureau: culpability = %s, want systemic", a.Culpability)
	}

	// Re-aging without patterns is willful.
	a = Assess([]domain.RuleFlag{flag("RA1", domain.CategoryReAging, domain.SeverityCritical)}, nil)
	if a.Culpability != domain.CulpabilityWillful {
		t.Errorf("re-aging: culpability = %s, want willful", a.Culpability)
	}

	// Three serious flags are willful regardless of category.
	a = Assess([]domain.RuleFlag{
		flag("BF1", domain.CategoryBalance, domain.SeverityCritical),
		flag("CT2", domain.CategoryChainOfTitle, domain.SeverityHigh),
		flag("FD2", domain.CategoryFurnisherDuty, domain.SeverityHigh),
	}, nil)
	if a.Culpability != domain.CulpabilityWillful {
		t.Errorf("three serious: culpability = %s, want willful", a.Culpability)
	}

	// A couple of medium findings are negligent.
	a = Assess([]domain.RuleFlag{
		flag("SI2", domain.CategoryStatus, domain.SeverityMedium),
		flag("FD1", domain.CategoryFurnisherDuty, domain.SeverityMedium),
	}, nil)
	if a.Culpability != domain.CulpabilityNegligent {
		t.Errorf("medium only: culpability = %s, want negligent", a.Culpability)
	}
}

func TestRiskScore(t *testing.T) {
	a := Assess([]domain.RuleFlag{
		flag("RA1", domain.CategoryReAging, domain.SeverityCritical), // 25
		flag("BF1", domain.CategoryBalance, domain.SeverityHigh),     // 25
		flag("SI2", domain.CategoryStatus, domain.SeverityMedium),    // 10
	}, []domain.DetectedPattern{
		{PatternID: "PT-A", Name: "p", Severity: domain.SeverityCritical}, // 15
	})
	if a.RiskScore != 75 {
		t.Errorf("risk = %d, want 75", a.RiskScore)
	}

	var many []domain.RuleFlag
	for i := 0; i < 10; i++ {
		many = append(many, flag("RA1", domain.CategoryReAging, domain.SeverityCritical))
	}
	if got := Assess(many, nil).RiskScore; got != 100 {
		t.Errorf("risk = %d, want capped 100", got)
	}
}

func TestViabilityTiers(t *testing.T) {
	strong := Assess([]domain.RuleFlag{
		flag("RA1", domain.CategoryReAging, domain.SeverityCritical),
		flag("RA3", domain.CategoryReAging, domain.SeverityCritical),
		flag("BF1", domain.CategoryBalance, domain.SeverityCritical),
	}, nil)
	if strong.LitigationViability != domain.ViabilityStrong {
		t.Errorf("viability = %s, want strong", strong.LitigationViability)
	}

	limited := Assess([]domain.RuleFlag{
		flag("SI7", domain.CategoryStatus, domain.SeverityLow),
	}, nil)
	if limited.LitigationViability != domain.ViabilityLimited {
		t.Errorf("viability = %s, want limited", limited.LitigationViability)
	}
}

func TestNoCurrencyFiguresInReport(t *testing.T) {
	// Real catalog flags from a tradeline chosen to fire amount-driven
	// rules, including the small-balance medical exclusion, so any dollar
	// figure in catalog text would surface in the rendered report.
	flags := rules.NewEvaluator(rules.Catalog()).Evaluate(domain.Tradeline{
		AccountType:    "Medical collection",
		AccountStatus:  "Paid collection",
		CurrentBalance: "450",
		DateOpened:     "2020-02-01",
		DOFD:           "2015-06-01",
	}, rules.Options{Now: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)})
	if len(flags) == 0 {
		t.Fatal("expected catalog flags for the medical collection fixture")
	}

	a := Assess(flags, []domain.DetectedPattern{
		{PatternID: "PT-ZOMBIE", Name: "Zombie Debt Resurrection", Severity: domain.SeverityCritical},
	})

	report := FormatReport(a)
	if strings.Contains(report, "$") {
		t.Fatalf("impact report contains a currency figure:\n%s", report)
	}
	for _, k := range a.KeyFindings {
		if strings.Contains(k, "$") {
			t.Errorf("key finding contains a currency figure: %q", k)
		}
	}
	if strings.Contains(a.Summary, "$") {
		t.Errorf("summary contains a currency figure: %q", a.Summary)
	}
}

func TestCatalogNamesCarryNoCurrency(t *testing.T) {
	// Rule names flow verbatim into key findings, so the catalog itself
	// must keep dollar figures out of them.
	for _, def := range rules.Catalog() {
		if strings.Contains(def.Name, "$") {
			t.Errorf("rule %s name contains a currency figure: %q", def.ID, def.Name)
		}
	}
}

func TestEmptyAssessment(t *testing.T) {
	a := Assess(nil, nil)
	if a.Culpability != domain.CulpabilityNegligent || a.RiskScore != 0 {
		t.Errorf("empty input: %+v", a)
	}
	if a.LitigationViability != domain.ViabilityLimited {
		t.Errorf("viability = %s, want limited", a.LitigationViability)
	}
	if a.Summary == "" {
		t.Error("summary should still render")
	}
}
