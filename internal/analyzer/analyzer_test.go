package analyzer

import (
	"context"
	"testing"
	"time"

	"github.com/opensource-credit/harrier/internal/domain"
)

var testNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func newTestAnalyzer(t *testing.T, mode domain.ReportMode) *Analyzer {
	t.Helper()
	a, err := New(mode, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return a
}

// reAgedInput is a tradeline with a DOFD after its charge-off and a
// balance that grew past double the original amount.
func reAgedInput() domain.AnalysisInput {
	return domain.AnalysisInput{
		Fields: domain.Tradeline{
			DateOpened:     "2018-03-01",
			DOFD:           "2021-06-01",
			ChargeOffDate:  "2019-02-01",
			CurrentBalance: "5200",
			OriginalAmount: "2000",
			AccountType:    "collection",
			AccountStatus:  "collection",
			Furnisher:      "Midland Credit Management",
		},
	}
}

func TestAnalyze(t *testing.T) {
	a := newTestAnalyzer(t, domain.ModeFull)
	ctx := context.Background()

	t.Run("FullReport", func(t *testing.T) {
		rep := a.Analyze(ctx, &Input{
			TenantID: "tenant-001",
			TraceID:  "trace-001",
			Analysis: reAgedInput(),
			Now:      testNow,
		})

		if rep.ID == "" {
			t.Error("report missing id")
		}
		if rep.TenantID != "tenant-001" {
			t.Errorf("tenantID = %q", rep.TenantID)
		}
		if rep.Metadata.TraceID != "trace-001" {
			t.Errorf("traceID = %q", rep.Metadata.TraceID)
		}
		if len(rep.Flags) == 0 {
			t.Fatal("expected flags for a re-aged tradeline")
		}
		if !rep.HasCriticalFlag() {
			t.Error("DOFD after charge-off should produce a critical flag")
		}
		if len(rep.Signals) == 0 {
			t.Error("expected extracted signals")
		}
		if rep.Forensic.OverallRisk == "" || rep.Forensic.OverallRisk == domain.ForensicRiskMinimal {
			t.Errorf("forensic analysis found nothing on a re-aged tradeline: %+v", rep.Forensic)
		}
		if rep.Damages.Statutory.FCRACount+rep.Damages.Statutory.FDCPACount == 0 {
			t.Error("full mode should populate the damages tree")
		}
		if rep.Impact.Culpability == "" {
			t.Error("impact assessment missing")
		}
		if rep.Metadata.RulesEvaluated == 0 || rep.Metadata.EngineVersion != EngineVersion {
			t.Errorf("metadata incomplete: %+v", rep.Metadata)
		}
	})

	t.Run("CleanTradeline", func(t *testing.T) {
		rep := a.Analyze(ctx, &Input{
			TenantID: "tenant-001",
			Analysis: domain.AnalysisInput{Fields: domain.Tradeline{
				DateOpened:     "2024-01-01",
				AccountType:    "credit card",
				AccountStatus:  "current",
				CurrentBalance: "500",
				CreditLimit:    "5000",
			}},
			Now: testNow,
		})
		if rep.HasCriticalFlag() {
			t.Errorf("clean tradeline produced critical flags: %+v", rep.Flags)
		}
		if len(rep.Patterns.Patterns) != 0 {
			t.Errorf("clean tradeline matched patterns: %+v", rep.Patterns.Patterns)
		}
	})

	t.Run("MissingDataNeverErrors", func(t *testing.T) {
		rep := a.Analyze(ctx, &Input{TenantID: "t", Analysis: domain.AnalysisInput{}, Now: testNow})
		if rep == nil || rep.ID == "" {
			t.Fatal("empty input must still produce a report")
		}
	})
}

func TestComplianceModeOmitsDamages(t *testing.T) {
	a := newTestAnalyzer(t, domain.ModeCompliance)
	rep := a.Analyze(context.Background(), &Input{
		TenantID: "tenant-001",
		Analysis: reAgedInput(),
		Now:      testNow,
	})

	if rep.Damages.Statutory.FCRACount+rep.Damages.Statutory.FDCPACount != 0 || rep.Damages.Total.Expected != 0 {
		t.Errorf("compliance mode leaked damages: %+v", rep.Damages)
	}
	if rep.Impact.Culpability == "" || rep.Impact.Summary == "" {
		t.Error("compliance mode must still produce the impact overlay")
	}
}

func TestComparisonRequiresTwoBureaus(t *testing.T) {
	a := newTestAnalyzer(t, domain.ModeFull)
	in := reAgedInput()
	in.Bureaus = []domain.BureauSnapshot{
		{Bureau: "experian", Fields: domain.Tradeline{DOFD: "2021-06-01"}},
	}
	rep := a.Analyze(context.Background(), &Input{TenantID: "t", Analysis: in, Now: testNow})
	if rep.Comparison != nil {
		t.Error("single bureau snapshot should not produce a comparison")
	}

	in.Bureaus = append(in.Bureaus, domain.BureauSnapshot{
		Bureau: "equifax", Fields: domain.Tradeline{DOFD: "2020-01-01"},
	})
	rep = a.Analyze(context.Background(), &Input{TenantID: "t", Analysis: in, Now: testNow})
	if rep.Comparison == nil || !rep.Comparison.Comparable {
		t.Fatal("two bureau snapshots should produce a comparison")
	}
	if rep.Comparison.DisputePriority == 0 {
		t.Error("conflicting DOFDs should raise the dispute priority")
	}
}

func TestCustomRuleFlagsMerged(t *testing.T) {
	a := newTestAnalyzer(t, domain.ModeFull)
	err := a.Custom().Load(&domain.CustomRuleConfig{
		ID:         "tenant-balance-cap",
		TenantID:   "tenant-001",
		Name:       "Balance over internal cap",
		Version:    "1",
		Expression: `balance > 5000.0`,
		Severity:   domain.SeverityHigh,
		Enabled:    true,
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	rep := a.Analyze(context.Background(), &Input{
		TenantID: "tenant-001",
		Analysis: reAgedInput(),
		Now:      testNow,
	})

	found := false
	for _, f := range rep.Flags {
		if f.RuleID == "tenant-balance-cap" {
			found = true
			if f.Category != domain.CategoryCustom {
				t.Errorf("custom flag category = %s", f.Category)
			}
		}
	}
	if !found {
		t.Fatalf("custom rule flag not merged into report: %+v", rep.Flags)
	}

	// Merged flags keep the severity ordering.
	for i := 1; i < len(rep.Flags); i++ {
		if domain.SeverityRank(rep.Flags[i-1].Severity) < domain.SeverityRank(rep.Flags[i].Severity) {
			t.Fatalf("flags out of severity order after merge: %s before %s",
				rep.Flags[i-1].RuleID, rep.Flags[i].RuleID)
		}
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	a := newTestAnalyzer(t, domain.ModeFull)
	base := a.Analyze(context.Background(), &Input{TenantID: "t", Analysis: reAgedInput(), Now: testNow})
	for i := 0; i < 5; i++ {
		rep := a.Analyze(context.Background(), &Input{TenantID: "t", Analysis: reAgedInput(), Now: testNow})
		if len(rep.Flags) != len(base.Flags) {
			t.Fatalf("run %d: flag count %d != %d", i, len(rep.Flags), len(base.Flags))
		}
		for j := range rep.Flags {
			if rep.Flags[j].RuleID != base.Flags[j].RuleID {
				t.Fatalf("run %d: flag order diverged at %d", i, j)
			}
		}
		if rep.Patterns.OverallRisk != base.Patterns.OverallRisk {
			t.Fatalf("run %d: overall risk %d != %d", i, rep.Patterns.OverallRisk, base.Patterns.OverallRisk)
		}
		if rep.Damages.Total.Expected != base.Damages.Total.Expected {
			t.Fatalf("run %d: expected value diverged", i)
		}
	}
}

func TestInputHash(t *testing.T) {
	a := reAgedInput()
	b := reAgedInput()
	if InputHash(a) != InputHash(b) {
		t.Error("identical inputs must hash identically")
	}
	b.Fields.CurrentBalance = "5201"
	if InputHash(a) == InputHash(b) {
		t.Error("different inputs must hash differently")
	}
	if InputHash(domain.AnalysisInput{}) == "" {
		t.Error("empty input must still hash")
	}
}
