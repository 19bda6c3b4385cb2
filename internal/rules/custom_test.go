package rules

import (
	"testing"

	"github.com/opensource-credit/harrier/internal/domain"
)

func newTestCustomEngine(t *testing.T) *CustomEngine {
	t.Helper()
	e, err := NewCustomEngine()
	if err != nil {
		t.Fatalf("NewCustomEngine: %v", err)
	}
	return e
}

func TestCustomRuleCompileAndFire(t *testing.T) {
	e := newTestCustomEngine(t)
	cfg := &domain.CustomRuleConfig{
		ID:         "CUSTOM-HIGH-BAL",
		Name:       "Balance over ten thousand",
		Expression: `balance > 10000.0 && account_type.contains("Collection")`,
		Severity:   domain.SeverityHigh,
		Enabled:    true,
	}
	if err := e.Load(cfg); err != nil {
		t.Fatalf("Load: %v", err)
	}

	flags := e.Evaluate(domain.Tradeline{
		AccountType:    "Collection",
		CurrentBalance: "12500",
	}, nil, Options{Now: testNow})
	if len(flags) != 1 {
		t.Fatalf("expected 1 flag, got %d", len(flags))
	}
	if flags[0].RuleID != "CUSTOM-HIGH-BAL" || flags[0].Category != domain.CategoryCustom {
		t.Errorf("unexpected flag %+v", flags[0])
	}

	flags = e.Evaluate(domain.Tradeline{
		AccountType:    "Collection",
		CurrentBalance: "500",
	}, nil, Options{Now: testNow})
	if len(flags) != 0 {
		t.Fatalf("expected no flags below threshold, got %d", len(flags))
	}
}

func TestCustomRuleSignalsVariable(t *testing.T) {
	e := newTestCustomEngine(t)
	err := e.Load(&domain.CustomRuleConfig{
		ID:         "CUSTOM-SIG",
		Name:       "Fires on extracted signal",
		Expression: `"DOFD_BEFORE_OPENED" in signals`,
		Severity:   domain.SeverityMedium,
		Enabled:    true,
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	sigs := domain.NewSignalSet()
	sigs.Add(domain.SignalDOFDBeforeOpened)
	flags := e.Evaluate(domain.Tradeline{}, sigs, Options{Now: testNow})
	if len(flags) != 1 {
		t.Fatalf("expected the signal-driven rule to fire, got %d flags", len(flags))
	}
}

func TestCustomRuleValidateRejectsBadExpression(t *testing.T) {
	e := newTestCustomEngine(t)
	err := e.Validate(&domain.CustomRuleConfig{
		ID:         "CUSTOM-BAD",
		Expression: `balance >>> nonsense(`,
	})
	if err == nil {
		t.Fatal("expected a compile error for malformed expression")
	}
	if e.Count() != 0 {
		t.Errorf("Validate must not load rules, count = %d", e.Count())
	}
}

func TestCustomRuleRuntimeErrorSuppressed(t *testing.T) {
	e := newTestCustomEngine(t)
	// Compiles, but errors at runtime on a missing map key.
	if err := e.Load(&domain.CustomRuleConfig{
		ID:         "CUSTOM-ERR",
		Expression: `tl["noSuchKey"].contains("x")`,
		Enabled:    true,
	}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := e.Load(&domain.CustomRuleConfig{
		ID:         "CUSTOM-OK",
		Expression: `dispute_count >= 0`,
		Enabled:    true,
	}); err != nil {
		t.Fatalf("Load: %v", err)
	}

	flags := e.Evaluate(domain.Tradeline{}, nil, Options{Now: testNow})
	if len(flags) != 1 || flags[0].RuleID != "CUSTOM-OK" {
		t.Fatalf("expected only CUSTOM-OK to fire, got %+v", flags)
	}
}

func TestCustomRuleRemove(t *testing.T) {
	e := newTestCustomEngine(t)
	if err := e.Load(&domain.CustomRuleConfig{
		ID: "CUSTOM-X", Expression: `true`, Enabled: true,
	}); err != nil {
		t.Fatalf("Load: %v", err)
	}
	e.Remove("CUSTOM-X")
	if e.Count() != 0 {
		t.Errorf("count after remove = %d, want 0", e.Count())
	}
}
