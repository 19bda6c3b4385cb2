package history

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/opensource-credit/harrier/internal/cache"
	"github.com/opensource-credit/harrier/internal/domain"
	"github.com/opensource-credit/harrier/internal/repository"
)

func flaggedReport(tenantID, furnisher string, age time.Duration) *domain.AnalysisReport {
	return &domain.AnalysisReport{
		ID:        uuid.New().String(),
		TenantID:  tenantID,
		Timestamp: time.Now().UTC().Add(-age),
		Fields:    domain.Tradeline{Furnisher: furnisher},
		Flags: []domain.RuleFlag{
			{RuleID: "RA2", Severity: domain.SeverityCritical},
		},
	}
}

func TestHistoryService(t *testing.T) {
	// Create temp database
	tmpFile, err := os.CreateTemp("", "history-test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpPath := tmpFile.Name()
	tmpFile.Close()
	defer os.Remove(tmpPath)

	// Create repository
	repo, err := repository.New(domain.RepositoryConfig{
		Driver:     "sqlite",
		SQLitePath: tmpPath,
	})
	if err != nil {
		t.Fatalf("failed to create repository: %v", err)
	}
	defer repo.Close()

	// Create cache
	lruCache := cache.NewLRUCache(100)
	defer lruCache.Close()

	svc := NewService(repo, lruCache)

	ctx := context.Background()
	tenantID := "tenant-001"

	t.Run("EmptyDatabase", func(t *testing.T) {
		count, err := svc.FlaggedReportCount(ctx, tenantID, "Midland Credit Management", 365)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 0 {
			t.Errorf("expected count 0 for empty database, got %d", count)
		}
	})

	t.Run("RequiresFurnisher", func(t *testing.T) {
		if _, err := svc.FlaggedReportCount(ctx, tenantID, "", 365); err == nil {
			t.Error("expected error for empty furnisher")
		}
	})

	t.Run("CountsFlaggedReports", func(t *testing.T) {
		for i := 0; i < 4; i++ {
			report := flaggedReport(tenantID, "Midland Credit Management", time.Duration(i)*24*time.Hour)
			if err := repo.SaveReport(ctx, tenantID, report); err != nil {
				t.Fatalf("failed to save report %d: %v", i, err)
			}
		}

		count, err := svc.FlaggedReportCount(ctx, tenantID, "Midland Credit Management", 365)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 4 {
			t.Errorf("expected count 4, got %d", count)
		}
	})

	t.Run("WindowExcludesOldReports", func(t *testing.T) {
		furnisher := "Portfolio Recovery Associates"
		// Two recent, one stale
		for _, age := range []time.Duration{
			24 * time.Hour,
			48 * time.Hour,
			400 * 24 * time.Hour,
		} {
			if err := repo.SaveReport(ctx, tenantID, flaggedReport(tenantID, furnisher, age)); err != nil {
				t.Fatalf("failed to save report: %v", err)
			}
		}

		count, err := svc.FlaggedReportCount(ctx, tenantID, furnisher, 365)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 2 {
			t.Errorf("expected count 2 inside window, got %d", count)
		}
	})

	t.Run("CleanReportsDoNotCount", func(t *testing.T) {
		furnisher := "First Example Bank"
		report := &domain.AnalysisReport{
			ID:        uuid.New().String(),
			TenantID:  tenantID,
			Timestamp: time.Now().UTC(),
			Fields:    domain.Tradeline{Furnisher: furnisher},
		}
		if err := repo.SaveReport(ctx, tenantID, report); err != nil {
			t.Fatalf("failed to save report: %v", err)
		}

		count, err := svc.FlaggedReportCount(ctx, tenantID, furnisher, 365)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 0 {
			t.Errorf("expected count 0 for unflagged reports, got %d", count)
		}
	})

	t.Run("TenantIsolation", func(t *testing.T) {
		other := "tenant-002"
		furnisher := "Midland Credit Management"
		if err := repo.SaveReport(ctx, other, flaggedReport(other, furnisher, 24*time.Hour)); err != nil {
			t.Fatalf("failed to save report: %v", err)
		}

		count, err := svc.FlaggedReportCount(ctx, other, furnisher, 365)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if count != 1 {
			t.Errorf("expected count 1 for other tenant, got %d", count)
		}
	})

	t.Run("IsRecidivist", func(t *testing.T) {
		// Four flagged reports were saved above, over the threshold of three
		if !svc.IsRecidivist(ctx, tenantID, "Midland Credit Management") {
			t.Error("expected recidivist verdict at four flagged reports")
		}
		if svc.IsRecidivist(ctx, tenantID, "First Example Bank") {
			t.Error("expected non-recidivist verdict with no flagged reports")
		}
	})

	t.Run("RecordFlagged", func(t *testing.T) {
		// Counter writes must not panic with or without a cache
		svc.RecordFlagged(ctx, tenantID, "Midland Credit Management")

		bare := NewService(repo, nil)
		bare.RecordFlagged(ctx, tenantID, "Midland Credit Management")
	})
}

func TestHistoryServiceNoSources(t *testing.T) {
	svc := NewService(nil, nil)

	if _, err := svc.FlaggedReportCount(context.Background(), "tenant-001", "Midland", 365); err == nil {
		t.Error("expected error with no data source")
	}
	if svc.IsRecidivist(context.Background(), "tenant-001", "Midland") {
		t.Error("expected non-recidivist verdict with no data source")
	}
}
