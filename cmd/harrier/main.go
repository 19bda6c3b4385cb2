// Harrier - Tradeline forensics for credit report disputes.
// Copyright (c) 2025 opensource.credit
// Licensed under the Apache License 2.0

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opensource-credit/harrier/internal/analyzer"
	"github.com/opensource-credit/harrier/internal/api"
	"github.com/opensource-credit/harrier/internal/bus"
	"github.com/opensource-credit/harrier/internal/cache"
	"github.com/opensource-credit/harrier/internal/domain"
	"github.com/opensource-credit/harrier/internal/history"
	"github.com/opensource-credit/harrier/internal/repository"
	"github.com/opensource-credit/harrier/internal/worker"
)

// Version information (set via ldflags)
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

func main() {
	// Initialize structured logger
	logLevel := slog.LevelInfo
	if os.Getenv("HARRIER_DEBUG") == "true" {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Log startup
	slog.Info("starting harrier",
		"version", Version,
		"commit", Commit,
		"build_date", BuildDate,
	)

	// Load configuration
	cfg := domain.DefaultConfig()

	// Check for Pro tier via environment
	if os.Getenv("HARRIER_TIER") == "pro" {
		cfg = domain.ProConfig()
		slog.Info("running in Pro tier mode")
	}

	// Compliance mode strips the damages tree from every report
	if os.Getenv("HARRIER_MODE") == "compliance" {
		cfg.ReportMode = domain.ModeCompliance
		slog.Info("running in compliance report mode")
	}

	slog.Info("configuration loaded",
		"tier", cfg.Tier,
		"mode", cfg.ReportMode,
		"repository", cfg.Repository.Driver,
		"cache", cfg.Cache.Type,
		"eventbus", cfg.EventBus.Type,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		slog.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	// Initialize Repository
	repo, err := repository.New(cfg.Repository)
	if err != nil {
		slog.Error("failed to initialize repository", "error", err)
		os.Exit(1)
	}
	defer repo.Close()
	slog.Info("repository initialized", "driver", cfg.Repository.Driver)

	// Initialize Cache
	cacheImpl, err := cache.New(cfg.Cache)
	if err != nil {
		slog.Error("failed to initialize cache", "error", err)
		os.Exit(1)
	}
	defer cacheImpl.Close()
	slog.Info("cache initialized", "type", cfg.Cache.Type)

	// Initialize EventBus
	busImpl, err := bus.New(cfg.EventBus)
	if err != nil {
		slog.Error("failed to initialize event bus", "error", err)
		os.Exit(1)
	}
	defer busImpl.Close()
	slog.Info("event bus initialized", "type", cfg.EventBus.Type)

	// Initialize Furnisher History Service
	historySvc := history.NewService(repo, cacheImpl)
	slog.Info("furnisher history service initialized")

	// Initialize Analyzer with the built-in rule and pattern catalogs
	an, err := analyzer.New(cfg.ReportMode, historySvc)
	if err != nil {
		slog.Error("failed to initialize analyzer", "error", err)
		os.Exit(1)
	}
	slog.Info("analyzer initialized",
		"rules_count", an.Rules().Count(),
		"patterns_count", an.Patterns().Count(),
	)

	// Load custom rules from database (tenant rules reload via the API)
	if err := loadCustomRulesFromDatabase(ctx, repo, an); err != nil {
		slog.Error("failed to load custom rules", "error", err)
		os.Exit(1)
	}

	// Initialize async Worker (Pro tier)
	var asyncWorker *worker.Worker
	if cfg.Tier == domain.TierPro || os.Getenv("HARRIER_ASYNC_WORKER") == "true" {
		asyncWorker = worker.NewWorker(busImpl, repo, cacheImpl, an)

		// Get tenant IDs to process (from environment or default)
		tenantIDs := []string{}
		if envTenants := os.Getenv("HARRIER_TENANTS"); envTenants != "" {
			// Could parse comma-separated list here
			tenantIDs = []string{envTenants}
		}

		workerCfg := worker.Config{
			TenantIDs:   tenantIDs,
			WorkerCount: 5,
		}

		if err := asyncWorker.Start(workerCfg); err != nil {
			slog.Error("failed to start async worker", "error", err)
		} else {
			slog.Info("async worker started", "tenant_count", len(tenantIDs))
		}
	}

	// Initialize Server
	srv := api.NewServer(cfg.Server, repo, cacheImpl, busImpl, an, historySvc, Version)

	// Start Server in goroutine
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("harrier is ready",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	printBanner(cfg, Version)

	// Wait for shutdown signal
	<-ctx.Done()
	slog.Info("shutting down...")

	// Stop async worker first
	if asyncWorker != nil {
		if err := asyncWorker.Stop(); err != nil {
			slog.Error("failed to stop async worker", "error", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("harrier shutdown complete")
}

// GlobalTenantID is used for custom rules that apply to all tenants.
const GlobalTenantID = "*"

// loadCustomRulesFromDatabase loads global custom rules into the engine.
// Tenant-scoped rules are loaded on demand via POST /rules/custom/reload.
func loadCustomRulesFromDatabase(ctx context.Context, repo domain.Repository, an *analyzer.Analyzer) error {
	cfgs, err := repo.ListCustomRules(ctx, GlobalTenantID)
	if err != nil {
		slog.Warn("failed to list custom rules from database", "error", err)
		return nil // Start with the built-in catalog only
	}

	if len(cfgs) > 0 {
		slog.Info("loading custom rules from database", "count", len(cfgs))
		return an.Custom().LoadAll(cfgs)
	}

	return nil
}

func printBanner(cfg *domain.Config, version string) {
	fmt.Println()
	fmt.Println("  ╔═══════════════════════════════════════════╗")
	fmt.Println("  ║               🦅 HARRIER                  ║")
	fmt.Println("  ║     Tradeline Forensics Engine            ║")
	fmt.Println("  ║      Every field tells a story.           ║")
	fmt.Println("  ╚═══════════════════════════════════════════╝")
	fmt.Println()
	fmt.Printf("  Version:  %s\n", version)
	fmt.Printf("  Tier:     %s\n", cfg.Tier)
	fmt.Printf("  Mode:     %s\n", cfg.ReportMode)
	fmt.Printf("  Server:   http://%s:%d\n", cfg.Server.Host, cfg.Server.Port)
	fmt.Println()
	fmt.Println("  Endpoints:")
	fmt.Println("    POST /analyze             - Analyze a tradeline")
	fmt.Println("    POST /analyze/async       - Queue a tradeline for analysis")
	fmt.Println("    GET  /reports/{id}        - Get analysis report by ID")
	fmt.Println("    GET  /tradelines/{id}     - Get stored tradeline by ID")
	fmt.Println("    POST /reconcile           - Cross-bureau comparison")
	fmt.Println("    POST /damages             - Damages modeling")
	fmt.Println("    POST /impact              - Impact assessment")
	fmt.Println("    GET  /rules               - List built-in rules")
	fmt.Println("    GET  /patterns            - List built-in patterns")
	fmt.Println("    POST /rules/custom        - Create a custom rule")
	fmt.Println("    POST /rules/custom/reload - Hot-reload custom rules")
	fmt.Println("    GET  /health              - Health check")
	fmt.Println()
}
