package domain

import (
	"context"
	"time"
)

// Cache defines the interface for caching operations.
// Supports two-phase caching: local LRU (Community) + Redis (Pro).
// All methods require tenantID for strict multi-tenancy isolation.
type Cache interface {
	// Get retrieves a value from cache.
	// Returns nil, nil if key not found.
	Get(ctx context.Context, tenantID string, key string) ([]byte, error)

	// Set stores a value in cache with expiration.
	Set(ctx context.Context, tenantID string, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from cache.
	Delete(ctx context.Context, tenantID string, key string) error

	// GetReportDigest retrieves a cached report digest by input hash.
	// The pipeline is deterministic, so a digest hit is exact.
	GetReportDigest(ctx context.Context, tenantID string, inputHash string) (*ReportDigest, error)

	// SetReportDigest caches a report digest keyed by input hash.
	SetReportDigest(ctx context.Context, tenantID string, inputHash string, digest *ReportDigest, ttl time.Duration) error

	// IncrementCounter atomically increments a counter and returns the new
	// value. Used for per-tenant analysis rate accounting.
	IncrementCounter(ctx context.Context, tenantID string, key string, window time.Duration) (int64, error)

	// Health check
	Ping(ctx context.Context) error

	// Lifecycle
	Close() error
}

// ReportDigest is the compact cached form of a stored analysis report,
// keyed by the SHA-256 of the canonical analysis input.
type ReportDigest struct {
	ReportID      string  `json:"reportId"`
	FlagCount     int     `json:"flagCount"`
	CriticalFlags int     `json:"criticalFlags"`
	PatternCount  int     `json:"patternCount"`
	OverallRisk   int     `json:"overallRisk"`
	ExpectedTotal float64 `json:"expectedTotal"`
	Timestamp     string  `json:"timestamp"`
}

// CacheConfig holds configuration for cache initialization.
type CacheConfig struct {
	// Type is the cache type: "memory" or "redis"
	Type string

	// Local LRU cache settings (Community tier)
	LocalMaxSize int
	LocalTTL     time.Duration

	// Redis settings (Pro tier)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Two-phase settings
	EnableTwoPhase bool // If true, check local first, then Redis
}
