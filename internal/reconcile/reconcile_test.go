package reconcile

import (
	"testing"
	"time"

	"github.com/opensource-credit/harrier/internal/domain"
	"github.com/opensource-credit/harrier/internal/rules"
)

var testNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func newTestReconciler() *Reconciler {
	return New(rules.NewEvaluator(rules.Catalog()))
}

func snapshot(bureau string, kv map[string]string) domain.BureauSnapshot {
	var tl domain.Tradeline
	for k, v := range kv {
		switch k {
		case "dofd":
			tl.DOFD = v
		case "dateOpened":
			tl.DateOpened = v
		case "chargeOffDate":
			tl.ChargeOffDate = v
		case "lastPaymentDate":
			tl.LastPaymentDate = v
		case "lastReportedDate":
			tl.LastReportedDate = v
		case "estimatedRemovalDate":
			tl.EstimatedRemovalDate = v
		case "currentBalance":
			tl.CurrentBalance = v
		case "originalAmount":
			tl.OriginalAmount = v
		case "creditLimit":
			tl.CreditLimit = v
		case "accountType":
			tl.AccountType = v
		case "accountStatus":
			tl.AccountStatus = v
		case "remarks":
			tl.Remarks = v
		case "originalCreditor":
			tl.OriginalCreditor = v
		case "furnisher":
			tl.Furnisher = v
		case "state":
			tl.State = v
		}
	}
	return domain.BureauSnapshot{Bureau: bureau, Fields: tl}
}

func TestNotComparableBelowTwoSnapshots(t *testing.T) {
	r := newTestReconciler()

	res := r.Compare(domain.Tradeline{}, nil, rules.Options{Now: testNow})
	if res.Comparable {
		t.Fatal("no snapshots should not be comparable")
	}

	res = r.Compare(domain.Tradeline{}, []domain.BureauSnapshot{
		snapshot("experian", map[string]string{"dofd": "2020-01-01"}),
	}, rules.Options{Now: testNow})
	if res.Comparable {
		t.Fatal("one snapshot should not be comparable")
	}
	if len(res.Discrepancies) != 0 || res.DisputePriority != 0 {
		t.Error("non-comparable result must be empty")
	}
}

func TestMatchingFieldsCounted(t *testing.T) {
	r := newTestReconciler()
	res := r.Compare(domain.Tradeline{}, []domain.BureauSnapshot{
		snapshot("experian", map[string]string{"dofd": "2020-01-01", "currentBalance": "1000"}),
		snapshot("equifax", map[string]string{"dofd": "2020-01-01", "currentBalance": "1000.00"}),
	}, rules.Options{Now: testNow})

	if !res.Comparable {
		t.Fatal("expected comparable result")
	}
	if res.FieldsCompared != 2 || res.MatchedFields != 2 {
		t.Errorf("compared=%d matched=%d, want 2/2", res.FieldsCompared, res.MatchedFields)
	}
	if len(res.Discrepancies) != 0 {
		t.Errorf("unexpected discrepancies: %+v", res.Discrepancies)
	}
}

func TestConflictingDOFDIsCritical(t *testing.T) {
	r := newTestReconciler()
	res := r.Compare(domain.Tradeline{DOFD: "2020-01-01"}, []domain.BureauSnapshot{
		snapshot("experian", map[string]string{"dofd": "2020-01-01"}),
		snapshot("equifax", map[string]string{"dofd": "2021-06-01"}),
	}, rules.Options{Now: testNow})

	if len(res.Discrepancies) != 1 {
		t.Fatalf("expected 1 discrepancy, got %d", len(res.Discrepancies))
	}
	d := res.Discrepancies[0]
	if d.Field != "dofd" || d.Type != domain.DiscrepancyConflicting || d.Severity != domain.SeverityCritical {
		t.Errorf("unexpected discrepancy %+v", d)
	}
	if d.Citation == "" || d.Recommendation == "" {
		t.Error("conflicting DOFD must carry citation and recommendation")
	}

	// The evaluator's XB1 flag should be folded into opportunities.
	foundXB := false
	for _, v := range res.ViolationOpportunities {
		if v == "XB1: DOFD differs across bureaus" {
			foundXB = true
		}
	}
	if !foundXB {
		t.Errorf("XB1 not folded into opportunities: %v", res.ViolationOpportunities)
	}
}

func TestBalanceToleranceBands(t *testing.T) {
	r := newTestReconciler()

	// Spread of 50: inconsistent, not conflicting.
	res := r.Compare(domain.Tradeline{}, []domain.BureauSnapshot{
		snapshot("experian", map[string]string{"currentBalance": "1000"}),
		snapshot("equifax", map[string]string{"currentBalance": "1050"}),
	}, rules.Options{Now: testNow})
	if len(res.Discrepancies) != 1 || res.Discrepancies[0].Type != domain.DiscrepancyInconsistent {
		t.Fatalf("50 spread: got %+v", res.Discrepancies)
	}

	// Spread of 500: conflicting.
	res = r.Compare(domain.Tradeline{}, []domain.BureauSnapshot{
		snapshot("experian", map[string]string{"currentBalance": "1000"}),
		snapshot("equifax", map[string]string{"currentBalance": "1500"}),
	}, rules.Options{Now: testNow})
	if len(res.Discrepancies) != 1 || res.Discrepancies[0].Type != domain.DiscrepancyConflicting {
		t.Fatalf("500 spread: got %+v", res.Discrepancies)
	}
}

func TestMissingFieldStepsSeverityDown(t *testing.T) {
	r := newTestReconciler()
	res := r.Compare(domain.Tradeline{}, []domain.BureauSnapshot{
		snapshot("experian", map[string]string{"dofd": "2020-01-01", "accountStatus": "Collection"}),
		snapshot("equifax", map[string]string{"accountStatus": "Collection"}),
	}, rules.Options{Now: testNow})

	var dofd *domain.FieldDiscrepancy
	for i := range res.Discrepancies {
		if res.Discrepancies[i].Field == "dofd" {
			dofd = &res.Discrepancies[i]
		}
	}
	if dofd == nil {
		t.Fatal("expected a missing-dofd discrepancy")
	}
	if dofd.Type != domain.DiscrepancyMissing || dofd.Severity != domain.SeverityHigh {
		t.Errorf("missing dofd classified as %s/%s, want missing/high", dofd.Type, dofd.Severity)
	}
}

func TestDisputePriorityTiers(t *testing.T) {
	r := newTestReconciler()

	// Three critical conflicts plus folded opportunities push into immediate.
	res := r.Compare(domain.Tradeline{DOFD: "2020-01-01"}, []domain.BureauSnapshot{
		snapshot("experian", map[string]string{
			"dofd": "2020-01-01", "currentBalance": "1000", "accountStatus": "Collection", "chargeOffDate": "2020-06-01",
		}),
		snapshot("equifax", map[string]string{
			"dofd": "2021-01-01", "currentBalance": "2000", "accountStatus": "Paid", "chargeOffDate": "2021-06-01",
		}),
	}, rules.Options{Now: testNow})

	if res.PriorityTier != domain.PriorityImmediate {
		t.Errorf("tier = %s (score %d), want immediate", res.PriorityTier, res.DisputePriority)
	}
	if res.DisputePriority > 100 {
		t.Errorf("priority %d exceeds cap", res.DisputePriority)
	}

	// Identical snapshots: nothing to dispute.
	same := map[string]string{"dofd": "2020-01-01", "currentBalance": "1000"}
	res = r.Compare(domain.Tradeline{}, []domain.BureauSnapshot{
		snapshot("experian", same), snapshot("equifax", same),
	}, rules.Options{Now: testNow})
	if res.PriorityTier != domain.PriorityLow || res.DisputePriority != 0 {
		t.Errorf("clean comparison: tier=%s score=%d, want low/0", res.PriorityTier, res.DisputePriority)
	}
}

func TestDiscrepancyOrdering(t *testing.T) {
	r := newTestReconciler()
	res := r.Compare(domain.Tradeline{}, []domain.BureauSnapshot{
		snapshot("experian", map[string]string{
			"remarks": "sold", "dofd": "2020-01-01", "originalCreditor": "Bank A",
		}),
		snapshot("equifax", map[string]string{
			"remarks": "transferred", "dofd": "2021-01-01", "originalCreditor": "Bank B",
		}),
	}, rules.Options{Now: testNow})

	for i := 1; i < len(res.Discrepancies); i++ {
		if domain.SeverityRank(res.Discrepancies[i-1].Severity) < domain.SeverityRank(res.Discrepancies[i].Severity) {
			t.Fatalf("discrepancies out of severity order: %s before %s",
				res.Discrepancies[i-1].Field, res.Discrepancies[i].Field)
		}
	}
}
