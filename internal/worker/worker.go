// Package worker provides async analysis processing for the Pro tier.
package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/opensource-credit/harrier/internal/analyzer"
	"github.com/opensource-credit/harrier/internal/domain"
)

// Worker processes analysis requests asynchronously from the EventBus.
type Worker struct {
	bus      domain.EventBus
	repo     domain.Repository
	cache    domain.Cache
	analyzer *analyzer.Analyzer

	subscriptions []domain.Subscription
	wg            sync.WaitGroup
	ctx           context.Context
	cancel        context.CancelFunc
}

// Config holds worker configuration.
type Config struct {
	// TenantIDs is the list of tenants to process (empty = all via wildcard if supported)
	TenantIDs []string

	// WorkerCount is the number of concurrent workers per tenant
	WorkerCount int
}

// NewWorker creates a new async worker.
func NewWorker(bus domain.EventBus, repo domain.Repository, cache domain.Cache, an *analyzer.Analyzer) *Worker {
	ctx, cancel := context.WithCancel(context.Background())
	return &Worker{
		bus:      bus,
		repo:     repo,
		cache:    cache,
		analyzer: an,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Start begins processing messages for the given tenants.
func (w *Worker) Start(cfg Config) error {
	if len(cfg.TenantIDs) == 0 {
		return w.startGlobalWorker()
	}

	for _, tenantID := range cfg.TenantIDs {
		if err := w.startTenantWorker(tenantID); err != nil {
			slog.Error("failed to start worker for tenant",
				"tenant_id", tenantID,
				"error", err,
			)
			continue
		}
	}

	slog.Info("workers started",
		"tenant_count", len(cfg.TenantIDs),
	)

	return nil
}

// startGlobalWorker starts a worker that processes all tenants (for testing/dev).
func (w *Worker) startGlobalWorker() error {
	// Subscribe using a special "global" tenant ID
	// In production, you'd want to subscribe with wildcards or JetStream
	sub, err := w.bus.Subscribe(w.ctx, "_global", domain.TopicAnalysisRequested, w.handleMessage)
	if err != nil {
		return err
	}
	w.subscriptions = append(w.subscriptions, sub)

	slog.Info("global worker started")
	return nil
}

// startTenantWorker starts workers for a specific tenant.
func (w *Worker) startTenantWorker(tenantID string) error {
	sub, err := w.bus.Subscribe(w.ctx, tenantID, domain.TopicAnalysisRequested, func(ctx context.Context, msg *domain.Message) error {
		return w.processAnalysis(ctx, tenantID, msg)
	})
	if err != nil {
		return err
	}
	w.subscriptions = append(w.subscriptions, sub)

	slog.Info("tenant worker started",
		"tenant_id", tenantID,
		"topic", domain.TopicAnalysisRequested,
	)

	return nil
}

// handleMessage handles messages from global subscription.
func (w *Worker) handleMessage(ctx context.Context, msg *domain.Message) error {
	return w.processAnalysis(ctx, msg.TenantID, msg)
}

// AnalysisMessage is the message payload for async analysis processing.
type AnalysisMessage struct {
	TradelineID string               `json:"tradelineId,omitempty"`
	TenantID    string               `json:"tenantId"`
	TraceID     string               `json:"traceId"`
	Input       domain.AnalysisInput `json:"input"`
}

// processAnalysis runs one tradeline through the pipeline.
func (w *Worker) processAnalysis(ctx context.Context, tenantID string, msg *domain.Message) error {
	start := time.Now()

	// Parse message
	var req AnalysisMessage
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		slog.Error("failed to parse analysis message",
			"message_id", msg.ID,
			"error", err,
		)
		return err
	}

	// Use message tenant if provided
	if req.TenantID != "" {
		tenantID = req.TenantID
	}

	traceID := req.TraceID
	if traceID == "" {
		traceID = msg.ID
	}

	slog.Debug("processing analysis",
		"tradeline_id", req.TradelineID,
		"tenant_id", tenantID,
		"trace_id", traceID,
	)

	// 1. Run the pipeline
	report := w.analyzer.Analyze(ctx, &analyzer.Input{
		TenantID:  tenantID,
		TraceID:   traceID,
		Analysis:  req.Input,
		StartTime: start,
	})

	// 2. Save report
	if w.repo != nil {
		if err := w.repo.SaveReport(ctx, tenantID, report); err != nil {
			slog.Error("failed to save report",
				"report_id", report.ID,
				"error", err,
			)
		}
	}

	// 3. Cache the digest keyed by input hash
	if w.cache != nil {
		digest := buildDigest(report)
		if err := w.cache.SetReportDigest(ctx, tenantID, analyzer.InputHash(req.Input), digest, 24*time.Hour); err != nil {
			slog.Warn("failed to cache report digest",
				"report_id", report.ID,
				"error", err,
			)
		}
	}

	// 4. Publish result to completed topic
	resultPayload, _ := json.Marshal(report)
	if err := w.bus.Publish(ctx, tenantID, domain.TopicAnalysisCompleted, resultPayload); err != nil {
		slog.Error("failed to publish analysis result",
			"report_id", report.ID,
			"error", err,
		)
	}

	// 5. If the report warrants one, publish to the alert topic
	if report.ShouldAlert() {
		if err := w.bus.Publish(ctx, tenantID, domain.TopicAlert, resultPayload); err != nil {
			slog.Error("failed to publish alert",
				"report_id", report.ID,
				"error", err,
			)
		}
	}

	slog.Info("analysis processed",
		"report_id", report.ID,
		"tenant_id", tenantID,
		"flags", len(report.Flags),
		"patterns", len(report.Patterns.Patterns),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return nil
}

// buildDigest extracts the compact cacheable form of a report.
func buildDigest(report *domain.AnalysisReport) *domain.ReportDigest {
	critical := 0
	for _, f := range report.Flags {
		if f.Severity == domain.SeverityCritical {
			critical++
		}
	}
	return &domain.ReportDigest{
		ReportID:      report.ID,
		FlagCount:     len(report.Flags),
		CriticalFlags: critical,
		PatternCount:  len(report.Patterns.Patterns),
		OverallRisk:   report.Patterns.OverallRisk,
		ExpectedTotal: report.Damages.Total.Expected,
		Timestamp:     report.Timestamp.Format(time.RFC3339),
	}
}

// Stop gracefully stops all workers.
func (w *Worker) Stop() error {
	w.cancel()

	// Unsubscribe all
	for _, sub := range w.subscriptions {
		if err := sub.Unsubscribe(); err != nil {
			slog.Error("failed to unsubscribe",
				"topic", sub.Topic(),
				"error", err,
			)
		}
	}
	w.subscriptions = nil

	w.wg.Wait()

	slog.Info("workers stopped")
	return nil
}

// Stats returns worker statistics.
type Stats struct {
	SubscriptionCount int      `json:"subscriptionCount"`
	Topics            []string `json:"topics"`
}

// GetStats returns current worker statistics.
func (w *Worker) GetStats() Stats {
	topics := make([]string, len(w.subscriptions))
	for i, sub := range w.subscriptions {
		topics[i] = sub.Topic()
	}
	return Stats{
		SubscriptionCount: len(w.subscriptions),
		Topics:            topics,
	}
}
