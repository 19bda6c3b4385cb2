// Package domain defines the core types and interfaces for Harrier.
package domain

import (
	"context"
	"time"
)

// Repository defines the interface for data persistence.
// All methods require tenantID for strict multi-tenancy isolation.
type Repository interface {
	// Tradeline submissions
	SaveTradeline(ctx context.Context, tenantID string, id string, input *AnalysisInput) error
	GetTradeline(ctx context.Context, tenantID string, id string) (*AnalysisInput, error)

	// Analysis reports
	SaveReport(ctx context.Context, tenantID string, report *AnalysisReport) error
	GetReport(ctx context.Context, tenantID string, reportID string) (*AnalysisReport, error)

	// ListReportsByFurnisher returns stored reports naming the furnisher
	// since the given time. Feeds the furnisher-history service.
	ListReportsByFurnisher(ctx context.Context, tenantID string, furnisher string, since time.Time) ([]*AnalysisReport, error)

	// Custom rule configuration operations
	SaveCustomRule(ctx context.Context, tenantID string, rule *CustomRuleConfig) error
	GetCustomRule(ctx context.Context, tenantID string, ruleID string) (*CustomRuleConfig, error)
	ListCustomRules(ctx context.Context, tenantID string) ([]*CustomRuleConfig, error)
	DeleteCustomRule(ctx context.Context, tenantID string, ruleID string) error

	// Health check
	Ping(ctx context.Context) error

	// Lifecycle
	Close() error
}

// RepositoryConfig holds configuration for repository initialization.
type RepositoryConfig struct {
	// Driver is the database driver: "sqlite" or "postgres"
	Driver string

	// SQLite specific
	SQLitePath string

	// PostgreSQL specific
	PostgresHost     string
	PostgresPort     int
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	// Connection pool settings
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}
