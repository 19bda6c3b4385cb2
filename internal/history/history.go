// Package history tracks a furnisher's prior analysis reports to establish
// recidivism evidence.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/opensource-credit/harrier/internal/domain"
)

// recidivismThreshold is the number of prior flagged reports within the
// lookback window that marks a furnisher as a known recidivist.
const recidivismThreshold = 3

const lookbackDays = 365

// Service reports how often a furnisher has previously produced flagged
// analyses for a tenant.
type Service struct {
	repo  domain.Repository
	cache domain.Cache
	db    *sql.DB // direct access for count queries when available
}

// NewService creates a furnisher-history service.
func NewService(repo domain.Repository, cache domain.Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// FlaggedReportCount returns the number of stored reports naming the
// furnisher with at least one violation flag inside the window.
func (s *Service) FlaggedReportCount(ctx context.Context, tenantID, furnisher string, windowDays int) (int64, error) {
	if tenantID == "" || furnisher == "" {
		return 0, fmt.Errorf("tenantID and furnisher are required")
	}
	if windowDays <= 0 {
		windowDays = lookbackDays
	}
	since := time.Now().UTC().AddDate(0, 0, -windowDays)

	if s.db != nil {
		return s.countFromDB(ctx, tenantID, furnisher, since)
	}
	if s.repo != nil {
		return s.countFromRepo(ctx, tenantID, furnisher, since)
	}
	return 0, fmt.Errorf("no data source available")
}

func (s *Service) countFromDB(ctx context.Context, tenantID, furnisher string, since time.Time) (int64, error) {
	query := `
		SELECT COUNT(*) FROM reports
		WHERE tenant_id = ?
		AND furnisher = ?
		AND flag_count > 0
		AND created_at >= ?
	`
	var count int64
	err := s.db.QueryRowContext(ctx, query, tenantID, furnisher, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reports: %w", err)
	}
	return count, nil
}

func (s *Service) countFromRepo(ctx context.Context, tenantID, furnisher string, since time.Time) (int64, error) {
	reports, err := s.repo.ListReportsByFurnisher(ctx, tenantID, furnisher, since)
	if err != nil {
		return 0, fmt.Errorf("failed to list reports: %w", err)
	}
	var count int64
	for _, r := range reports {
		if len(r.Flags) > 0 {
			count++
		}
	}
	return count, nil
}

// IsRecidivist reports whether the furnisher crossed the recidivism
// threshold over the lookback window. Lookup failures read as false: a
// storage outage must not widen damages multipliers.
func (s *Service) IsRecidivist(ctx context.Context, tenantID, furnisher string) bool {
	count, err := s.FlaggedReportCount(ctx, tenantID, furnisher, lookbackDays)
	if err != nil {
		return false
	}
	return count >= recidivismThreshold
}

// RecordFlagged bumps the per-furnisher rolling counter after an analysis
// that produced flags, so rate counters stay warm without a repo query.
func (s *Service) RecordFlagged(ctx context.Context, tenantID, furnisher string) {
	if s.cache == nil || furnisher == "" {
		return
	}
	key := "furnisher-flags:" + furnisher
	_, _ = s.cache.IncrementCounter(ctx, tenantID, key, time.Duration(lookbackDays)*24*time.Hour)
}
