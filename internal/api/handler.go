package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/opensource-credit/harrier/internal/analyzer"
	"github.com/opensource-credit/harrier/internal/damages"
	"github.com/opensource-credit/harrier/internal/domain"
	"github.com/opensource-credit/harrier/internal/history"
	"github.com/opensource-credit/harrier/internal/impact"
	"github.com/opensource-credit/harrier/internal/reconcile"
	"github.com/opensource-credit/harrier/internal/rules"
	"github.com/opensource-credit/harrier/internal/worker"
)

// Handler holds dependencies for API handlers.
type Handler struct {
	repo     domain.Repository
	cache    domain.Cache
	bus      domain.EventBus
	analyzer *analyzer.Analyzer
	recon    *reconcile.Reconciler
	history  *history.Service
	version  string
}

// NewHandler creates a new API handler.
func NewHandler(repo domain.Repository, cache domain.Cache, bus domain.EventBus, an *analyzer.Analyzer, hist *history.Service, version string) *Handler {
	return &Handler{
		repo:     repo,
		cache:    cache,
		bus:      bus,
		analyzer: an,
		recon:    reconcile.New(an.Rules()),
		history:  hist,
		version:  version,
	}
}

// AnalyzeRequest is the request body for POST /analyze.
type AnalyzeRequest struct {
	// TradelineID identifies the tradeline for persistence. Optional;
	// generated when omitted.
	TradelineID string `json:"tradelineId,omitempty"`

	Input domain.AnalysisInput `json:"input"`
}

// Analyze handles POST /analyze: the synchronous full pipeline.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx := r.Context()
	tenantID := GetTenantID(ctx)
	traceID := GetTraceID(ctx)

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid JSON request body",
		})
		return
	}

	if req.Input.Fields.Empty() {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "input.fields must contain at least one populated field",
		})
		return
	}

	tradelineID := req.TradelineID
	if tradelineID == "" {
		tradelineID = uuid.New().String()
	}

	// Persist the raw tradeline if a repository is available. Analysis
	// proceeds even when the save fails.
	if h.repo != nil {
		if err := h.repo.SaveTradeline(ctx, tenantID, tradelineID, &req.Input); err != nil {
			slog.Error("failed to save tradeline", "id", tradelineID, "error", err)
		}
	}

	// A digest for the same input hash means this exact tradeline was
	// analyzed before; the pipeline is deterministic, so the repeat is
	// flagged rather than short-circuited.
	inputHash := analyzer.InputHash(req.Input)
	var seen bool
	if h.cache != nil {
		if digest, err := h.cache.GetReportDigest(ctx, tenantID, inputHash); err == nil && digest != nil {
			seen = true
		}
	}

	report := h.analyzer.Analyze(ctx, &analyzer.Input{
		TenantID:  tenantID,
		TraceID:   traceID,
		Analysis:  req.Input,
		StartTime: start,
	})
	report.Metadata.CacheHit = seen

	if h.repo != nil {
		if err := h.repo.SaveReport(ctx, tenantID, report); err != nil {
			slog.Error("failed to save report", "id", report.ID, "error", err)
		}
	}

	if h.cache != nil {
		h.cache.SetReportDigest(ctx, tenantID, inputHash, digestOf(report), 24*time.Hour)
	}

	if h.history != nil && len(report.Flags) > 0 && report.Fields.Furnisher != "" {
		h.history.RecordFlagged(ctx, tenantID, report.Fields.Furnisher)
	}

	if h.bus != nil {
		if payload, err := json.Marshal(report); err == nil {
			if err := h.bus.Publish(ctx, tenantID, domain.TopicAnalysisCompleted, payload); err != nil {
				slog.Warn("failed to publish completed report", "error", err)
			}
			if report.ShouldAlert() {
				if err := h.bus.Publish(ctx, tenantID, domain.TopicAlert, payload); err != nil {
					slog.Warn("failed to publish alert", "error", err)
				}
			}
		}
	}

	writeJSON(w, http.StatusOK, report)
}

// AnalyzeAsync handles POST /analyze/async: the request is queued on the
// event bus and picked up by a worker.
func (h *Handler) AnalyzeAsync(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := GetTenantID(ctx)
	traceID := GetTraceID(ctx)

	if h.bus == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "event bus not available",
		})
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid JSON request body",
		})
		return
	}

	if req.Input.Fields.Empty() {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "input.fields must contain at least one populated field",
		})
		return
	}

	tradelineID := req.TradelineID
	if tradelineID == "" {
		tradelineID = uuid.New().String()
	}

	msg := worker.AnalysisMessage{
		TradelineID: tradelineID,
		TenantID:    tenantID,
		TraceID:     traceID,
		Input:       req.Input,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to encode analysis request",
		})
		return
	}

	if err := h.bus.Publish(ctx, tenantID, domain.TopicAnalysisRequested, payload); err != nil {
		slog.Error("failed to publish analysis request", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to queue analysis",
		})
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{
		"tradelineId": tradelineID,
		"traceId":     traceID,
		"status":      "queued",
	})
}

// GetReport retrieves a stored analysis report by ID.
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := GetTenantID(ctx)
	reportID := chi.URLParam(r, "id")

	if reportID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "report id is required",
		})
		return
	}

	if h.repo == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "repository not available",
		})
		return
	}

	report, err := h.repo.GetReport(ctx, tenantID, reportID)
	if err != nil {
		slog.Error("failed to get report", "id", reportID, "error", err)
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "report not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, report)
}

// GetTradeline retrieves a stored tradeline input by ID.
func (h *Handler) GetTradeline(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := GetTenantID(ctx)
	id := chi.URLParam(r, "id")

	if id == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "tradeline id is required",
		})
		return
	}

	if h.repo == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "repository not available",
		})
		return
	}

	input, err := h.repo.GetTradeline(ctx, tenantID, id)
	if err != nil {
		slog.Error("failed to get tradeline", "id", id, "error", err)
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "tradeline not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, input)
}

// ReconcileRequest is the request body for POST /reconcile.
type ReconcileRequest struct {
	Fields  domain.Tradeline        `json:"fields"`
	Bureaus []domain.BureauSnapshot `json:"bureaus"`
	State   string                  `json:"state,omitempty"`
}

// Reconcile handles POST /reconcile: standalone cross-bureau comparison.
func (h *Handler) Reconcile(w http.ResponseWriter, r *http.Request) {
	var req ReconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid JSON request body",
		})
		return
	}

	if len(req.Bureaus) < 2 {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "at least two bureau snapshots are required",
		})
		return
	}

	result := h.recon.Compare(req.Fields, req.Bureaus, rules.Options{
		Bureaus:    req.Bureaus,
		StateRules: req.State != "",
		State:      req.State,
	})

	writeJSON(w, http.StatusOK, result)
}

// DamagesRequest is the request body for POST /damages.
type DamagesRequest struct {
	Flags              []domain.RuleFlag        `json:"flags"`
	Patterns           []domain.DetectedPattern `json:"patterns,omitempty"`
	Harm               *domain.HarmFacts        `json:"harm,omitempty"`
	State              string                   `json:"state,omitempty"`
	VulnerableConsumer bool                     `json:"vulnerableConsumer,omitempty"`
	KnownRecidivist    bool                     `json:"knownRecidivist,omitempty"`
}

// Damages handles POST /damages: standalone damages modeling over
// previously computed flags.
func (h *Handler) Damages(w http.ResponseWriter, r *http.Request) {
	if h.analyzer.Mode() != domain.ModeFull {
		writeJSON(w, http.StatusForbidden, map[string]string{
			"error": "damages modeling is disabled in compliance mode",
		})
		return
	}

	var req DamagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid JSON request body",
		})
		return
	}

	calc := damages.Calculate(damages.Input{
		Flags:              req.Flags,
		Patterns:           req.Patterns,
		Harm:               req.Harm,
		State:              req.State,
		VulnerableConsumer: req.VulnerableConsumer,
		KnownRecidivist:    req.KnownRecidivist,
	})

	writeJSON(w, http.StatusOK, calc)
}

// ImpactRequest is the request body for POST /impact.
type ImpactRequest struct {
	Flags    []domain.RuleFlag        `json:"flags"`
	Patterns []domain.DetectedPattern `json:"patterns,omitempty"`
}

// Impact handles POST /impact: the dollar-free severity overlay.
func (h *Handler) Impact(w http.ResponseWriter, r *http.Request) {
	var req ImpactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid JSON request body",
		})
		return
	}

	writeJSON(w, http.StatusOK, impact.Assess(req.Flags, req.Patterns))
}

// Health returns server health status.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"

	if h.repo != nil {
		if err := h.repo.Ping(r.Context()); err != nil {
			status = "degraded"
		}
	}

	if h.cache != nil {
		if err := h.cache.Ping(r.Context()); err != nil {
			status = "degraded"
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  status,
		"version": h.version,
	})
}

// Ready returns whether the server is ready to accept traffic.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"ready": "true",
	})
}

// ListRules returns the built-in rule catalog.
func (h *Handler) ListRules(w http.ResponseWriter, r *http.Request) {
	defs := h.analyzer.Rules().Definitions()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rules": defs,
		"count": len(defs),
	})
}

// GetRule retrieves a built-in rule by ID.
func (h *Handler) GetRule(w http.ResponseWriter, r *http.Request) {
	ruleID := chi.URLParam(r, "id")

	if ruleID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "rule id is required",
		})
		return
	}

	if def, ok := h.analyzer.Rules().Definition(ruleID); ok {
		writeJSON(w, http.StatusOK, def)
		return
	}

	writeJSON(w, http.StatusNotFound, map[string]string{
		"error": "rule not found",
	})
}

// ListPatterns returns the built-in pattern catalog.
func (h *Handler) ListPatterns(w http.ResponseWriter, r *http.Request) {
	defs := h.analyzer.Patterns().Definitions()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"patterns": defs,
		"count":    len(defs),
	})
}

// ============================================================================
// CUSTOM RULE HANDLERS
// ============================================================================

// CreateCustomRuleRequest is the request body for creating a custom rule.
type CreateCustomRuleRequest struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Description      string            `json:"description,omitempty"`
	Expression       string            `json:"expression"`
	Severity         domain.Severity   `json:"severity"`
	WillfulnessScore int               `json:"willfulnessScore"`
	Statutory        domain.MoneyRange `json:"statutory"`
	Citation         string            `json:"citation,omitempty"`
	Remediation      string            `json:"remediation,omitempty"`
	Enabled          bool              `json:"enabled"`
}

// CreateCustomRule compiles, persists, and hot-loads a tenant CEL rule.
func (h *Handler) CreateCustomRule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := GetTenantID(ctx)

	var req CreateCustomRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid JSON request body",
		})
		return
	}

	if req.ID == "" || req.Name == "" || req.Expression == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "id, name, and expression are required",
		})
		return
	}

	severity := req.Severity
	if severity == "" {
		severity = domain.SeverityMedium
	}

	cfg := &domain.CustomRuleConfig{
		ID:               req.ID,
		TenantID:         tenantID,
		Name:             req.Name,
		Description:      req.Description,
		Version:          "1.0.0",
		Expression:       req.Expression,
		Severity:         severity,
		WillfulnessScore: req.WillfulnessScore,
		Statutory:        req.Statutory,
		Citation:         req.Citation,
		Remediation:      req.Remediation,
		Enabled:          req.Enabled,
	}

	// Compile before persisting so a bad expression never reaches storage.
	if err := h.analyzer.Custom().Validate(cfg); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "invalid CEL expression: " + err.Error(),
		})
		return
	}

	if h.repo != nil {
		if err := h.repo.SaveCustomRule(ctx, tenantID, cfg); err != nil {
			slog.Error("failed to save custom rule", "id", cfg.ID, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error": "failed to save rule",
			})
			return
		}
	}

	if cfg.Enabled {
		if err := h.analyzer.Custom().Load(cfg); err != nil {
			slog.Error("failed to load custom rule", "id", cfg.ID, "error", err)
		}
	}

	slog.Info("custom rule created", "id", cfg.ID, "name", cfg.Name, "tenant_id", tenantID)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"rule": cfg,
	})
}

// ListCustomRules returns the tenant's stored custom rules.
func (h *Handler) ListCustomRules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := GetTenantID(ctx)

	if h.repo == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "repository not available",
		})
		return
	}

	cfgs, err := h.repo.ListCustomRules(ctx, tenantID)
	if err != nil {
		slog.Error("failed to list custom rules", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to list custom rules",
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rules": cfgs,
		"count": len(cfgs),
	})
}

// GetCustomRule retrieves the latest enabled version of a custom rule.
func (h *Handler) GetCustomRule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := GetTenantID(ctx)
	ruleID := chi.URLParam(r, "id")

	if ruleID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "rule id is required",
		})
		return
	}

	if h.repo == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "repository not available",
		})
		return
	}

	cfg, err := h.repo.GetCustomRule(ctx, tenantID, ruleID)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": "custom rule not found",
		})
		return
	}

	writeJSON(w, http.StatusOK, cfg)
}

// DeleteCustomRule disables a custom rule and unloads it from the engine.
func (h *Handler) DeleteCustomRule(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := GetTenantID(ctx)
	ruleID := chi.URLParam(r, "id")

	if ruleID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": "rule id is required",
		})
		return
	}

	if h.repo != nil {
		if err := h.repo.DeleteCustomRule(ctx, tenantID, ruleID); err != nil {
			writeJSON(w, http.StatusNotFound, map[string]string{
				"error": "custom rule not found",
			})
			return
		}
	}

	h.analyzer.Custom().Remove(ruleID)

	slog.Info("custom rule deleted", "id", ruleID, "tenant_id", tenantID)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "custom rule deleted",
	})
}

// ReloadCustomRules reloads all stored custom rules into the engine.
func (h *Handler) ReloadCustomRules(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	tenantID := GetTenantID(ctx)

	if h.repo == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"error": "repository not available",
		})
		return
	}

	cfgs, err := h.repo.ListCustomRules(ctx, tenantID)
	if err != nil {
		slog.Error("failed to list custom rules", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to load custom rules from database",
		})
		return
	}

	if err := h.analyzer.Custom().LoadAll(cfgs); err != nil {
		slog.Error("failed to reload custom rules", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "failed to reload custom rules: " + err.Error(),
		})
		return
	}

	slog.Info("custom rules reloaded", "count", len(cfgs), "tenant_id", tenantID)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "custom rules reloaded successfully",
		"count":   len(cfgs),
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func digestOf(report *domain.AnalysisReport) *domain.ReportDigest {
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
