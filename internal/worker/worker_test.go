package worker

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/opensource-credit/harrier/internal/analyzer"
	"github.com/opensource-credit/harrier/internal/bus"
	"github.com/opensource-credit/harrier/internal/domain"
)

func TestWorker(t *testing.T) {
	// Create channel bus
	eventBus := bus.NewChannelBus(100)
	defer eventBus.Close()

	an, err := analyzer.New(domain.ModeFull, nil)
	if err != nil {
		t.Fatalf("analyzer.New failed: %v", err)
	}

	// Create worker
	worker := NewWorker(eventBus, nil, nil, an)

	t.Run("StartAndStop", func(t *testing.T) {
		cfg := Config{
			TenantIDs:   []string{"tenant-001"},
			WorkerCount: 1,
		}

		err := worker.Start(cfg)
		if err != nil {
			t.Fatalf("Start failed: %v", err)
		}

		stats := worker.GetStats()
		if stats.SubscriptionCount != 1 {
			t.Errorf("expected 1 subscription, got %d", stats.SubscriptionCount)
		}

		err = worker.Stop()
		if err != nil {
			t.Errorf("Stop failed: %v", err)
		}

		stats = worker.GetStats()
		if stats.SubscriptionCount != 0 {
			t.Errorf("expected 0 subscriptions after stop, got %d", stats.SubscriptionCount)
		}
	})

	t.Run("ProcessAnalysis", func(t *testing.T) {
		// Create fresh worker for this test
		w := NewWorker(eventBus, nil, nil, an)

		cfg := Config{
			TenantIDs: []string{"tenant-test"},
		}
		w.Start(cfg)
		defer w.Stop()

		// Track completed reports
		var resultReceived atomic.Bool
		var resultPayload []byte

		eventBus.Subscribe(context.Background(), "tenant-test", domain.TopicAnalysisCompleted, func(ctx context.Context, msg *domain.Message) error {
			resultPayload = msg.Payload
			resultReceived.Store(true)
			return nil
		})

		// Allow subscriptions to be active
		time.Sleep(50 * time.Millisecond)

		// Publish an analysis request
		req := AnalysisMessage{
			TradelineID: "tl-001",
			TenantID:    "tenant-test",
			TraceID:     "trace-001",
			Input: domain.AnalysisInput{
				Fields: domain.Tradeline{
					DateOpened:     "2022-01-01",
					AccountType:    "credit card",
					AccountStatus:  "current",
					CurrentBalance: "250",
					Furnisher:      "First Example Bank",
				},
			},
		}

		payload, _ := json.Marshal(req)
		err := eventBus.Publish(context.Background(), "tenant-test", domain.TopicAnalysisRequested, payload)
		if err != nil {
			t.Fatalf("Publish failed: %v", err)
		}

		// Wait for processing
		time.Sleep(200 * time.Millisecond)

		if !resultReceived.Load() {
			t.Error("expected completed report to be published")
		}

		if resultPayload != nil {
			var report domain.AnalysisReport
			if err := json.Unmarshal(resultPayload, &report); err != nil {
				t.Fatalf("failed to parse report: %v", err)
			}

			if report.TenantID != "tenant-test" {
				t.Errorf("expected tenantID 'tenant-test', got '%s'", report.TenantID)
			}
			if report.Metadata.TraceID != "trace-001" {
				t.Errorf("expected traceID 'trace-001', got '%s'", report.Metadata.TraceID)
			}
		}
	})

	t.Run("AlertPublished", func(t *testing.T) {
		w := NewWorker(eventBus, nil, nil, an)

		cfg := Config{
			TenantIDs: []string{"tenant-alert"},
		}
		w.Start(cfg)
		defer w.Stop()

		// Track alerts
		var alertReceived atomic.Bool

		eventBus.Subscribe(context.Background(), "tenant-alert", domain.TopicAlert, func(ctx context.Context, msg *domain.Message) error {
			alertReceived.Store(true)
			return nil
		})

		time.Sleep(50 * time.Millisecond)

		// Re-aged collection: DOFD after the charge-off date is a critical flag
		req := AnalysisMessage{
			TradelineID: "tl-alert",
			TenantID:    "tenant-alert",
			Input: domain.AnalysisInput{
				Fields: domain.Tradeline{
					DateOpened:     "2018-03-01",
					DOFD:           "2021-06-01",
					ChargeOffDate:  "2019-02-01",
					CurrentBalance: "5200",
					OriginalAmount: "2000",
					AccountType:    "collection",
					AccountStatus:  "collection",
					Furnisher:      "Midland Credit Management",
				},
			},
		}

		payload, _ := json.Marshal(req)
		eventBus.Publish(context.Background(), "tenant-alert", domain.TopicAnalysisRequested, payload)

		time.Sleep(200 * time.Millisecond)

		if !alertReceived.Load() {
			t.Error("expected alert to be published for a critically flagged tradeline")
		}
	})

	t.Run("MultiTenant", func(t *testing.T) {
		w := NewWorker(eventBus, nil, nil, an)

		cfg := Config{
			TenantIDs: []string{"tenant-a", "tenant-b"},
		}
		w.Start(cfg)
		defer w.Stop()

		stats := w.GetStats()
		if stats.SubscriptionCount != 2 {
			t.Errorf("expected 2 subscriptions for 2 tenants, got %d", stats.SubscriptionCount)
		}
	})
}

func TestAnalysisMessageParsing(t *testing.T) {
	msg := AnalysisMessage{
		TradelineID: "tl-123",
		TenantID:    "tenant-001",
		TraceID:     "trace-456",
		Input: domain.AnalysisInput{
			Fields: domain.Tradeline{
				DOFD:           "2020-05-01",
				CurrentBalance: "1234.56",
				Furnisher:      "Portfolio Recovery Associates",
			},
			State: "CA",
		},
	}

	// Marshal and unmarshal
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var parsed AnalysisMessage
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	if parsed.TradelineID != msg.TradelineID {
		t.Errorf("expected TradelineID '%s', got '%s'", msg.TradelineID, parsed.TradelineID)
	}
	if parsed.Input.Fields.CurrentBalance != msg.Input.Fields.CurrentBalance {
		t.Errorf("expected balance '%s', got '%s'", msg.Input.Fields.CurrentBalance, parsed.Input.Fields.CurrentBalance)
	}
	if parsed.Input.State != "CA" {
		t.Errorf("expected state CA, got '%s'", parsed.Input.State)
	}
}
