// Package repository provides data persistence implementations.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/opensource-credit/harrier/internal/domain"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrInvalidInput = errors.New("invalid input")
)

// SQLRepository implements domain.Repository using database/sql.
// Works with both SQLite and PostgreSQL drivers.
type SQLRepository struct {
	db     *sql.DB
	driver string
}

// New creates a new repository based on configuration.
func New(cfg domain.RepositoryConfig) (domain.Repository, error) {
	var db *sql.DB
	var err error

	switch cfg.Driver {
	case "sqlite":
		db, err = openSQLite(cfg)
	case "postgres":
		db, err = openPostgres(cfg)
	default:
		return nil, fmt.Errorf("unsupported driver: %s", cfg.Driver)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	repo := &SQLRepository{
		db:     db,
		driver: cfg.Driver,
	}

	// Run migrations
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repo, nil
}

func (r *SQLRepository) migrate() error {
	for _, schema := range AllSchemas() {
		if _, err := r.db.Exec(schema); err != nil {
			return err
		}
	}
	return nil
}

// DB exposes the underlying handle for services that run their own count
// queries against the denormalized report columns.
func (r *SQLRepository) DB() *sql.DB {
	return r.db
}

// SaveTradeline stores a submitted tradeline input with tenant isolation.
func (r *SQLRepository) SaveTradeline(ctx context.Context, tenantID string, id string, input *domain.AnalysisInput) error {
	if tenantID == "" {
		return fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}
	if id == "" {
		return fmt.Errorf("%w: id is required", ErrInvalidInput)
	}

	body, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("failed to encode input: %w", err)
	}

	query := `
		INSERT INTO tradelines (id, tenant_id, furnisher, account_type, input, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id, tenant_id) DO UPDATE SET
			furnisher = excluded.furnisher,
			account_type = excluded.account_type,
			input = excluded.input
	`

	_, err = r.db.ExecContext(ctx, r.rebind(query),
		id, tenantID, input.Fields.Furnisher, input.Fields.AccountType,
		string(body), time.Now().UTC(),
	)
	return err
}

// GetTradeline retrieves a stored tradeline input with tenant isolation.
func (r *SQLRepository) GetTradeline(ctx context.Context, tenantID string, id string) (*domain.AnalysisInput, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	query := `SELECT input FROM tradelines WHERE tenant_id = ? AND id = ?`

	var body string
	err := r.db.QueryRowContext(ctx, r.rebind(query), tenantID, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var input domain.AnalysisInput
	if err := json.Unmarshal([]byte(body), &input); err != nil {
		return nil, fmt.Errorf("failed to decode stored input: %w", err)
	}
	return &input, nil
}

// SaveReport stores an analysis report with tenant isolation. The
// furnisher, flag count, and overall risk columns are denormalized for the
// history queries.
func (r *SQLRepository) SaveReport(ctx context.Context, tenantID string, report *domain.AnalysisReport) error {
	if tenantID == "" {
		return fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}
	if report == nil || report.ID == "" {
		return fmt.Errorf("%w: report id is required", ErrInvalidInput)
	}

	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	critical := 0
	for _, f := range report.Flags {
		if f.Severity == domain.SeverityCritical {
			critical++
		}
	}

	query := `
		INSERT INTO reports (
			id, tenant_id, furnisher, flag_count, critical_count,
			overall_risk, report, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = r.db.ExecContext(ctx, r.rebind(query),
		report.ID, tenantID, report.Fields.Furnisher,
		len(report.Flags), critical, report.Patterns.OverallRisk,
		string(body), report.Timestamp.UTC(),
	)
	return err
}

// GetReport retrieves an analysis report by ID with tenant isolation.
func (r *SQLRepository) GetReport(ctx context.Context, tenantID string, reportID string) (*domain.AnalysisReport, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	query := `SELECT report FROM reports WHERE tenant_id = ? AND id = ?`

	var body string
	err := r.db.QueryRowContext(ctx, r.rebind(query), tenantID, reportID).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var report domain.AnalysisReport
	if err := json.Unmarshal([]byte(body), &report); err != nil {
		return nil, fmt.Errorf("failed to decode stored report: %w", err)
	}
	return &report, nil
}

// ListReportsByFurnisher retrieves reports naming a furnisher since the
// given time, newest first.
func (r *SQLRepository) ListReportsByFurnisher(ctx context.Context, tenantID string, furnisher string, since time.Time) ([]*domain.AnalysisReport, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	query := `
		SELECT report FROM reports
		WHERE tenant_id = ? AND furnisher = ? AND created_at >= ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, r.rebind(query), tenantID, furnisher, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []*domain.AnalysisReport
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		var report domain.AnalysisReport
		if err := json.Unmarshal([]byte(body), &report); err != nil {
			return nil, fmt.Errorf("failed to decode stored report: %w", err)
		}
		reports = append(reports, &report)
	}

	return reports, rows.Err()
}

// SaveCustomRule stores a custom rule configuration with tenant isolation.
func (r *SQLRepository) SaveCustomRule(ctx context.Context, tenantID string, rule *domain.CustomRuleConfig) error {
	if tenantID == "" {
		return fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	enabled := 0
	if rule.Enabled {
		enabled = 1
	}

	now := time.Now().UTC()

	query := `
		INSERT INTO custom_rules (
			id, tenant_id, name, description, version, expression,
			severity, willfulness_score, statutory_min, statutory_max,
			citation, remediation, enabled, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id, tenant_id, version) DO UPDATE SET
			name = excluded.name,
			description = excluded.description,
			expression = excluded.expression,
			severity = excluded.severity,
			willfulness_score = excluded.willfulness_score,
			statutory_min = excluded.statutory_min,
			statutory_max = excluded.statutory_max,
			citation = excluded.citation,
			remediation = excluded.remediation,
			enabled = excluded.enabled,
			updated_at = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, r.rebind(query),
		rule.ID, tenantID, rule.Name, rule.Description,
		rule.Version, rule.Expression,
		string(rule.Severity), rule.WillfulnessScore,
		rule.Statutory.Min, rule.Statutory.Max,
		rule.Citation, rule.Remediation, enabled,
		now, now,
	)
	return err
}

// GetCustomRule retrieves the latest enabled version of a custom rule.
func (r *SQLRepository) GetCustomRule(ctx context.Context, tenantID string, ruleID string) (*domain.CustomRuleConfig, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	query := `
		SELECT id, tenant_id, name, description, version, expression,
			   severity, willfulness_score, statutory_min, statutory_max,
			   citation, remediation, enabled
		FROM custom_rules
		WHERE tenant_id = ? AND id = ? AND enabled = 1
		ORDER BY version DESC
		LIMIT 1
	`

	rule, err := r.scanCustomRule(r.db.QueryRowContext(ctx, r.rebind(query), tenantID, ruleID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return rule, err
}

// ListCustomRules retrieves all enabled custom rules for a tenant.
func (r *SQLRepository) ListCustomRules(ctx context.Context, tenantID string) ([]*domain.CustomRuleConfig, error) {
	if tenantID == "" {
		return nil, fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	query := `
		SELECT id, tenant_id, name, description, version, expression,
			   severity, willfulness_score, statutory_min, statutory_max,
			   citation, remediation, enabled
		FROM custom_rules
		WHERE tenant_id = ? AND enabled = 1
		ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, r.rebind(query), tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rules []*domain.CustomRuleConfig
	for rows.Next() {
		rule, err := r.scanCustomRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}

	return rules, rows.Err()
}

// DeleteCustomRule soft-deletes a custom rule by setting enabled = 0.
func (r *SQLRepository) DeleteCustomRule(ctx context.Context, tenantID string, ruleID string) error {
	if tenantID == "" {
		return fmt.Errorf("%w: tenantID is required", ErrInvalidInput)
	}

	query := `
		UPDATE custom_rules
		SET enabled = 0, updated_at = ?
		WHERE tenant_id = ? AND id = ?
	`

	result, err := r.db.ExecContext(ctx, r.rebind(query), time.Now().UTC(), tenantID, ruleID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// scanner covers sql.Row and sql.Rows for shared scan code.
type scanner interface {
	Scan(dest ...any) error
}

func (r *SQLRepository) scanCustomRule(s scanner) (*domain.CustomRuleConfig, error) {
	var rule domain.CustomRuleConfig
	var severity string
	var enabled int

	err := s.Scan(
		&rule.ID, &rule.TenantID, &rule.Name, &rule.Description,
		&rule.Version, &rule.Expression,
		&severity, &rule.WillfulnessScore,
		&rule.Statutory.Min, &rule.Statutory.Max,
		&rule.Citation, &rule.Remediation, &enabled,
	)
	if err != nil {
		return nil, err
	}

	rule.Severity = domain.Severity(severity)
	rule.Enabled = enabled == 1
	return &rule, nil
}

// Ping checks database connectivity.
func (r *SQLRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close closes the database connection.
func (r *SQLRepository) Close() error {
	return r.db.Close()
}

// rebind converts ? placeholders to $1, $2, etc. for PostgreSQL.
func (r *SQLRepository) rebind(query string) string {
	if r.driver != "postgres" {
		return query
	}

	// Convert ? to $1, $2, etc.
	var result []byte
	n := 1
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			result = append(result, '$')
			result = append(result, fmt.Sprintf("%d", n)...)
			n++
		} else {
			result = append(result, query[i])
		}
	}
	return string(result)
}
