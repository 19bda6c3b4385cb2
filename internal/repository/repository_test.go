package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/opensource-credit/harrier/internal/domain"
)

func TestSQLiteRepository(t *testing.T) {
	// Create temp database file
	tmpFile, err := os.CreateTemp("", "harrier-test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpPath)

	cfg := domain.RepositoryConfig{
		Driver:     "sqlite",
		SQLitePath: tmpPath,
	}

	repo, err := New(cfg)
	if err != nil {
		t.Fatalf("failed to create repository: %v", err)
	}
	defer repo.Close()

	ctx := context.Background()
	tenantID := "tenant-001"

	t.Run("Ping", func(t *testing.T) {
		if err := repo.Ping(ctx); err != nil {
			t.Errorf("Ping failed: %v", err)
		}
	})

	t.Run("SaveAndGetTradeline", func(t *testing.T) {
		input := &domain.AnalysisInput{
			Fields: domain.Tradeline{
				DateOpened:     "2019-03-01",
				DOFD:           "2019-09-01",
				CurrentBalance: "2400",
				AccountType:    "collection",
				Furnisher:      "Midland Credit Management",
			},
			Disputes: []domain.DisputeRecord{
				{Date: "2024-01-15", Result: "verified"},
			},
		}

		if err := repo.SaveTradeline(ctx, tenantID, "tl-001", input); err != nil {
			t.Fatalf("SaveTradeline failed: %v", err)
		}

		retrieved, err := repo.GetTradeline(ctx, tenantID, "tl-001")
		if err != nil {
			t.Fatalf("GetTradeline failed: %v", err)
		}

		if retrieved.Fields.Furnisher != input.Fields.Furnisher {
			t.Errorf("expected furnisher %s, got %s", input.Fields.Furnisher, retrieved.Fields.Furnisher)
		}
		if len(retrieved.Disputes) != 1 || retrieved.Disputes[0].Result != "verified" {
			t.Errorf("dispute history not round-tripped: %+v", retrieved.Disputes)
		}
	})

	t.Run("UpsertTradeline", func(t *testing.T) {
		input := &domain.AnalysisInput{
			Fields: domain.Tradeline{CurrentBalance: "2600", Furnisher: "Midland Credit Management"},
		}
		if err := repo.SaveTradeline(ctx, tenantID, "tl-001", input); err != nil {
			t.Fatalf("second SaveTradeline failed: %v", err)
		}
		retrieved, err := repo.GetTradeline(ctx, tenantID, "tl-001")
		if err != nil {
			t.Fatalf("GetTradeline failed: %v", err)
		}
		if retrieved.Fields.CurrentBalance != "2600" {
			t.Errorf("expected updated balance, got %s", retrieved.Fields.CurrentBalance)
		}
	})

	t.Run("TenantIsolation", func(t *testing.T) {
		_, err := repo.GetTradeline(ctx, "tenant-002", "tl-001")
		if err != ErrNotFound {
			t.Errorf("expected ErrNotFound for different tenant, got: %v", err)
		}
	})

	t.Run("RequiresTenantID", func(t *testing.T) {
		err := repo.SaveTradeline(ctx, "", "tl-x", &domain.AnalysisInput{})
		if err == nil {
			t.Error("expected error for empty tenantID")
		}

		_, err = repo.GetTradeline(ctx, "", "tl-001")
		if err == nil {
			t.Error("expected error for empty tenantID")
		}
	})

	t.Run("SaveAndGetReport", func(t *testing.T) {
		report := &domain.AnalysisReport{
			ID:        "rep-001",
			TenantID:  tenantID,
			Timestamp: time.Now().UTC(),
			Fields:    domain.Tradeline{Furnisher: "Midland Credit Management"},
			Flags: []domain.RuleFlag{
				{RuleID: "RA2", Severity: domain.SeverityCritical},
				{RuleID: "FD2", Severity: domain.SeverityHigh},
			},
			Metadata: domain.ReportMetadata{EngineVersion: "harrier-1.0"},
		}

		if err := repo.SaveReport(ctx, tenantID, report); err != nil {
			t.Fatalf("SaveReport failed: %v", err)
		}

		retrieved, err := repo.GetReport(ctx, tenantID, report.ID)
		if err != nil {
			t.Fatalf("GetReport failed: %v", err)
		}
		if retrieved.ID != report.ID {
			t.Errorf("expected ID %s, got %s", report.ID, retrieved.ID)
		}
		if len(retrieved.Flags) != 2 {
			t.Errorf("expected 2 flags, got %d", len(retrieved.Flags))
		}
		if retrieved.Metadata.EngineVersion != "harrier-1.0" {
			t.Errorf("metadata not round-tripped: %+v", retrieved.Metadata)
		}
	})

	t.Run("ListReportsByFurnisher", func(t *testing.T) {
		report := &domain.AnalysisReport{
			ID:        "rep-002",
			TenantID:  tenantID,
			Timestamp: time.Now().UTC(),
			Fields:    domain.Tradeline{Furnisher: "Midland Credit Management"},
			Flags:     []domain.RuleFlag{{RuleID: "BF1", Severity: domain.SeverityCritical}},
		}
		if err := repo.SaveReport(ctx, tenantID, report); err != nil {
			t.Fatalf("SaveReport failed: %v", err)
		}

		since := time.Now().UTC().Add(-1 * time.Hour)
		reports, err := repo.ListReportsByFurnisher(ctx, tenantID, "Midland Credit Management", since)
		if err != nil {
			t.Fatalf("ListReportsByFurnisher failed: %v", err)
		}
		if len(reports) != 2 {
			t.Errorf("expected 2 reports, got %d", len(reports))
		}

		reports, err = repo.ListReportsByFurnisher(ctx, tenantID, "Some Other Furnisher", since)
		if err != nil {
			t.Fatalf("ListReportsByFurnisher failed: %v", err)
		}
		if len(reports) != 0 {
			t.Errorf("expected 0 reports for unknown furnisher, got %d", len(reports))
		}
	})

	t.Run("CustomRuleLifecycle", func(t *testing.T) {
		rule := &domain.CustomRuleConfig{
			ID:         "cr-001",
			Name:       "High balance collection",
			Version:    "1",
			Expression: `balance > 10000.0 && accountType.contains("collection")`,
			Severity:   domain.SeverityHigh,
			Statutory:  domain.MoneyRange{Min: 100, Max: 1000},
			Enabled:    true,
		}

		if err := repo.SaveCustomRule(ctx, tenantID, rule); err != nil {
			t.Fatalf("SaveCustomRule failed: %v", err)
		}

		retrieved, err := repo.GetCustomRule(ctx, tenantID, rule.ID)
		if err != nil {
			t.Fatalf("GetCustomRule failed: %v", err)
		}
		if retrieved.Expression != rule.Expression {
			t.Errorf("expression not round-tripped: %q", retrieved.Expression)
		}
		if retrieved.Severity != domain.SeverityHigh || retrieved.Statutory.Max != 1000 {
			t.Errorf("rule fields not round-tripped: %+v", retrieved)
		}

		rules, err := repo.ListCustomRules(ctx, tenantID)
		if err != nil {
			t.Fatalf("ListCustomRules failed: %v", err)
		}
		if len(rules) != 1 {
			t.Errorf("expected 1 rule, got %d", len(rules))
		}

		if err := repo.DeleteCustomRule(ctx, tenantID, rule.ID); err != nil {
			t.Fatalf("DeleteCustomRule failed: %v", err)
		}
		if _, err := repo.GetCustomRule(ctx, tenantID, rule.ID); err != ErrNotFound {
			t.Errorf("expected ErrNotFound after delete, got: %v", err)
		}

		if err := repo.DeleteCustomRule(ctx, tenantID, "nonexistent"); err != ErrNotFound {
			t.Errorf("expected ErrNotFound for unknown rule, got: %v", err)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := repo.GetTradeline(ctx, tenantID, "nonexistent")
		if err != ErrNotFound {
			t.Errorf("expected ErrNotFound, got: %v", err)
		}

		_, err = repo.GetReport(ctx, tenantID, "nonexistent")
		if err != ErrNotFound {
			t.Errorf("expected ErrNotFound, got: %v", err)
		}
	})
}

func TestUnsupportedDriver(t *testing.T) {
	cfg := domain.RepositoryConfig{
		Driver: "mysql",
	}

	_, err := New(cfg)
	if err == nil {
		t.Error("expected error for unsupported driver")
	}
}

func TestRebind(t *testing.T) {
	repo := &SQLRepository{driver: "postgres"}

	tests := []struct {
		input    string
		expected string
	}{
		{"SELECT * FROM t WHERE id = ?", "SELECT * FROM t WHERE id = $1"},
		{"INSERT INTO t (a, b) VALUES (?, ?)", "INSERT INTO t (a, b) VALUES ($1, $2)"},
		{"SELECT * FROM t", "SELECT * FROM t"},
	}

	for _, tt := range tests {
		result := repo.rebind(tt.input)
		if result != tt.expected {
			t.Errorf("rebind(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}
