// Package analyzer runs the full tradeline analysis pipeline: signal
// extraction, rule evaluation, forensic scoring, pattern matching,
// cross-bureau reconciliation, damages modeling, and the impact overlay,
// assembled into a single AnalysisReport.
package analyzer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/opensource-credit/harrier/internal/damages"
	"github.com/opensource-credit/harrier/internal/domain"
	"github.com/opensource-credit/harrier/internal/history"
	"github.com/opensource-credit/harrier/internal/impact"
	"github.com/opensource-credit/harrier/internal/patterns"
	"github.com/opensource-credit/harrier/internal/reconcile"
	"github.com/opensource-credit/harrier/internal/rules"
	"github.com/opensource-credit/harrier/internal/signals"
)

// EngineVersion is stamped into every report's metadata.
const EngineVersion = "harrier-1.0"

// Analyzer wires the pipeline stages together. One instance serves all
// tenants; the stage engines are safe for concurrent use.
type Analyzer struct {
	eval    *rules.Evaluator
	custom  *rules.CustomEngine
	matcher *patterns.Matcher
	recon   *reconcile.Reconciler
	hist    *history.Service
	mode    domain.ReportMode
}

// New builds an analyzer with the built-in rule and pattern catalogs
// loaded. hist may be nil; recidivism lookups are then skipped.
func New(mode domain.ReportMode, hist *history.Service) (*Analyzer, error) {
	custom, err := rules.NewCustomEngine()
	if err != nil {
		return nil, err
	}
	eval := rules.NewEvaluator(rules.Catalog())
	return &Analyzer{
		eval:    eval,
		custom:  custom,
		matcher: patterns.NewMatcher(patterns.Catalog()),
		recon:   reconcile.New(eval),
		hist:    hist,
		mode:    mode,
	}, nil
}

// Rules exposes the static rule evaluator for catalog listing and reload.
func (a *Analyzer) Rules() *rules.Evaluator { return a.eval }

// Custom exposes the custom rule engine for tenant rule management.
func (a *Analyzer) Custom() *rules.CustomEngine { return a.custom }

// Patterns exposes the pattern matcher for catalog listing.
func (a *Analyzer) Patterns() *patterns.Matcher { return a.matcher }

// Mode reports the configured report exposure mode.
func (a *Analyzer) Mode() domain.ReportMode { return a.mode }

// Input carries one analysis request through the pipeline.
type Input struct {
	TenantID string
	TraceID  string
	Analysis domain.AnalysisInput

	// StartTime is when the request entered the system (for TotalMs).
	StartTime time.Time

	// Now anchors "today". Zero means time.Now().UTC().
	Now time.Time
}

// Analyze runs the pipeline. It never returns an error: missing or
// malformed input fields suppress the findings that need them, and the
// report reflects whatever could be computed.
func (a *Analyzer) Analyze(ctx context.Context, in *Input) *domain.AnalysisReport {
	now := in.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}
	start := in.StartTime
	if start.IsZero() {
		start = time.Now()
	}

	in.Analysis.Clamp()
	f := in.Analysis.Fields
	state := in.Analysis.StateCode()

	ropt := rules.Options{
		Historical: in.Analysis.Historical,
		Bureaus:    in.Analysis.Bureaus,
		Disputes:   in.Analysis.Disputes,
		StateRules: state != "",
		State:      state,
		Now:        now,
	}
	sopt := signals.Options{
		Historical: in.Analysis.Historical,
		Bureaus:    in.Analysis.Bureaus,
		Disputes:   in.Analysis.Disputes,
		Now:        now,
	}

	report := &domain.AnalysisReport{
		ID:        uuid.New().String(),
		TenantID:  in.TenantID,
		Timestamp: now.UTC(),
		Fields:    f,
	}

	t0 := time.Now()
	sigs := signals.Extract(f, sopt)
	signalsMs := time.Since(t0).Milliseconds()

	t0 = time.Now()
	flags := a.eval.Evaluate(f, ropt)
	if custom := a.custom.Evaluate(f, sigs, ropt); len(custom) > 0 {
		flags = append(flags, custom...)
		rules.SortFlags(flags)
	}
	report.Flags = flags
	report.Forensic = rules.Forensic(f, ropt)
	rulesMs := time.Since(t0).Milliseconds()

	// Some patterns are defined over rule ids, so the signal set is
	// re-derived with the flags folded in before matching.
	t0 = time.Now()
	sopt.Flags = flags
	sigs = signals.Extract(f, sopt)
	report.Signals = sigs.Sorted()
	report.Patterns = a.matcher.Match(sigs, flags)
	patternsMs := time.Since(t0).Milliseconds()

	t0 = time.Now()
	if len(in.Analysis.Bureaus) >= 2 {
		cmp := a.recon.Compare(f, in.Analysis.Bureaus, ropt)
		if cmp.Comparable {
			report.Comparison = &cmp
		}
	}
	reconcileMs := time.Since(t0).Milliseconds()

	recidivist := in.Analysis.KnownRecidivist
	if !recidivist && a.hist != nil && f.Furnisher != "" {
		recidivist = a.hist.IsRecidivist(ctx, in.TenantID, f.Furnisher)
	}

	t0 = time.Now()
	if a.mode == domain.ModeFull {
		report.Damages = damages.Calculate(damages.Input{
			Flags:              flags,
			Patterns:           report.Patterns.Patterns,
			Harm:               in.Analysis.Harm,
			State:              state,
			VulnerableConsumer: in.Analysis.VulnerableConsumer,
			KnownRecidivist:    recidivist,
		})
	}
	damagesMs := time.Since(t0).Milliseconds()

	report.Impact = impact.Assess(flags, report.Patterns.Patterns)

	report.Metadata = domain.ReportMetadata{
		TraceID:        in.TraceID,
		SignalsMs:      signalsMs,
		RulesMs:        rulesMs,
		PatternsMs:     patternsMs,
		ReconcileMs:    reconcileMs,
		DamagesMs:      damagesMs,
		TotalMs:        time.Since(start).Milliseconds(),
		RulesEvaluated: a.eval.Count() + a.custom.Count(),
		EngineVersion:  EngineVersion,
	}
	return report
}

// InputHash returns a stable digest of an analysis input, used as the
// report cache key. Identical inputs hash identically because the JSON
// encoding of the input is deterministic for a fixed struct shape.
func InputHash(in domain.AnalysisInput) string {
	b, err := json.Marshal(in)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
