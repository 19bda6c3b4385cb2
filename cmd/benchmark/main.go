// Benchmark tool for testing Harrier against labeled tradeline data.
//
// Usage:
//
//	go run cmd/benchmark/main.go -csv /path/to/tradelines.csv -url http://localhost:8080
//
// This tool:
//  1. Reads labeled tradeline data (with violation labels)
//  2. Sends each tradeline to Harrier for analysis
//  3. Compares Harrier's verdict (flagged / clean) with the actual labels
//  4. Calculates precision, recall, F1-score, and confusion matrix
//
// Expected CSV columns (header names are case-insensitive):
//
//	dateopened, dofd, chargeoffdate, dateclosed, lastpaymentdate,
//	lastreporteddate, currentbalance, originalamount, creditlimit,
//	accounttype, accountstatus, paymentstatus, furnisher, originalcreditor,
//	state, hasviolation
package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// LabeledTradeline represents a row from the benchmark dataset.
type LabeledTradeline struct {
	DateOpened       string
	DOFD             string
	ChargeOffDate    string
	DateClosed       string
	LastPaymentDate  string
	LastReportedDate string
	CurrentBalance   string
	OriginalAmount   string
	CreditLimit      string
	AccountType      string
	AccountStatus    string
	PaymentStatus    string
	Furnisher        string
	OriginalCreditor string
	State            string
	HasViolation     bool
}

// AnalyzeRequest is the Harrier API request format.
type AnalyzeRequest struct {
	Input AnalysisInput `json:"input"`
}

// AnalysisInput wraps the tradeline fields.
type AnalysisInput struct {
	Fields map[string]string `json:"fields"`
	State  string            `json:"state,omitempty"`
}

// AnalyzeResponse is the subset of the report the benchmark needs.
type AnalyzeResponse struct {
	ID    string `json:"id"`
	Flags []struct {
		RuleID   string `json:"ruleId"`
		Severity string `json:"severity"`
	} `json:"flags"`
	Patterns struct {
		OverallRisk int `json:"overallRisk"`
	} `json:"patterns"`
}

// Metrics tracks benchmark results.
type Metrics struct {
	TruePositives  int64 // Violation detected as flagged
	FalsePositives int64 // Clean tradeline flagged
	TrueNegatives  int64 // Clean tradeline passed
	FalseNegatives int64 // Violation missed

	TotalProcessed  int64
	TotalViolations int64
	TotalClean      int64
	TotalErrors     int64

	ProcessingTimeMs int64
}

func main() {
	// Parse flags
	csvPath := flag.String("csv", "", "Path to labeled tradeline CSV file")
	baseURL := flag.String("url", "http://localhost:8080", "Harrier base URL")
	tenantID := flag.String("tenant", "benchmark-test", "Tenant ID for requests")
	limit := flag.Int("limit", 10000, "Maximum tradelines to process (0 = all)")
	workers := flag.Int("workers", 10, "Number of concurrent workers")
	violationsOnly := flag.Bool("violations-only", false, "Only test labeled violations")
	verbose := flag.Bool("verbose", false, "Print each tradeline result")
	flag.Parse()

	if *csvPath == "" {
		fmt.Println("Usage: benchmark -csv /path/to/tradelines.csv [-url http://localhost:8080]")
		fmt.Println("\nFlags:")
		flag.PrintDefaults()
		os.Exit(1)
	}

	fmt.Println("╔═══════════════════════════════════════════════════════════════╗")
	fmt.Println("║        HARRIER BENCHMARK - Tradeline Violation Detection      ║")
	fmt.Println("╚═══════════════════════════════════════════════════════════════╝")
	fmt.Printf("\nCSV File:     %s\n", *csvPath)
	fmt.Printf("Harrier URL:  %s\n", *baseURL)
	fmt.Printf("Tenant ID:    %s\n", *tenantID)
	fmt.Printf("Workers:      %d\n", *workers)
	fmt.Printf("Limit:        %d\n", *limit)
	fmt.Println()

	// Check Harrier is running
	if err := checkHealth(*baseURL); err != nil {
		fmt.Printf("ERROR: Harrier not reachable at %s: %v\n", *baseURL, err)
		fmt.Println("\nMake sure Harrier is running:")
		fmt.Println("  cd harrier && go run cmd/harrier/main.go")
		os.Exit(1)
	}
	fmt.Println("✓ Harrier is healthy")

	// Read labeled data
	fmt.Printf("\nReading tradeline data from %s...\n", *csvPath)
	tradelines, err := readTradelineCSV(*csvPath, *limit, *violationsOnly)
	if err != nil {
		fmt.Printf("ERROR: Failed to read CSV: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✓ Loaded %d tradelines\n", len(tradelines))

	violationCount := 0
	for _, tl := range tradelines {
		if tl.HasViolation {
			violationCount++
		}
	}
	fmt.Printf("  - Violations: %d (%.2f%%)\n", violationCount, 100*float64(violationCount)/float64(len(tradelines)))
	fmt.Printf("  - Clean:      %d (%.2f%%)\n", len(tradelines)-violationCount, 100*float64(len(tradelines)-violationCount)/float64(len(tradelines)))

	// Run benchmark
	fmt.Printf("\nRunning benchmark with %d workers...\n", *workers)
	startTime := time.Now()
	metrics := runBenchmark(tradelines, *baseURL, *tenantID, *workers, *verbose)
	duration := time.Since(startTime)

	printResults(metrics, duration)
}

func checkHealth(baseURL string) error {
	resp, err := http.Get(baseURL + "/health")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unhealthy: status %d", resp.StatusCode)
	}
	return nil
}

func readTradelineCSV(path string, limit int, violationsOnly bool) ([]LabeledTradeline, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Read header
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Map column indices
	colIndex := make(map[string]int)
	for i, col := range header {
		colIndex[strings.ToLower(col)] = i
	}

	col := func(record []string, name string) string {
		if i, ok := colIndex[name]; ok && i < len(record) {
			return strings.TrimSpace(record[i])
		}
		return ""
	}

	var tradelines []LabeledTradeline

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // Skip malformed rows
		}

		hasViolation := col(record, "hasviolation") == "1"

		if violationsOnly && !hasViolation {
			continue
		}

		tl := LabeledTradeline{
			DateOpened:       col(record, "dateopened"),
			DOFD:             col(record, "dofd"),
			ChargeOffDate:    col(record, "chargeoffdate"),
			DateClosed:       col(record, "dateclosed"),
			LastPaymentDate:  col(record, "lastpaymentdate"),
			LastReportedDate: col(record, "lastreporteddate"),
			CurrentBalance:   col(record, "currentbalance"),
			OriginalAmount:   col(record, "originalamount"),
			CreditLimit:      col(record, "creditlimit"),
			AccountType:      col(record, "accounttype"),
			AccountStatus:    col(record, "accountstatus"),
			PaymentStatus:    col(record, "paymentstatus"),
			Furnisher:        col(record, "furnisher"),
			OriginalCreditor: col(record, "originalcreditor"),
			State:            col(record, "state"),
			HasViolation:     hasViolation,
		}

		tradelines = append(tradelines, tl)

		if limit > 0 && len(tradelines) >= limit {
			break
		}
	}

	return tradelines, nil
}

func runBenchmark(tradelines []LabeledTradeline, baseURL, tenantID string, numWorkers int, verbose bool) *Metrics {
	metrics := &Metrics{}

	work := make(chan LabeledTradeline, 100)
	var wg sync.WaitGroup

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			client := &http.Client{Timeout: 10 * time.Second}

			for tl := range work {
				start := time.Now()
				result, err := analyzeTradeline(client, baseURL, tenantID, tl)
				elapsed := time.Since(start).Milliseconds()

				atomic.AddInt64(&metrics.ProcessingTimeMs, elapsed)
				atomic.AddInt64(&metrics.TotalProcessed, 1)

				if err != nil {
					atomic.AddInt64(&metrics.TotalErrors, 1)
					if verbose {
						fmt.Printf("ERROR: %s -> %v\n", tl.Furnisher, err)
					}
					continue
				}

				// Track actual labels
				if tl.HasViolation {
					atomic.AddInt64(&metrics.TotalViolations, 1)
				} else {
					atomic.AddInt64(&metrics.TotalClean, 1)
				}

				// Calculate confusion matrix
				predicted := len(result.Flags) > 0
				actual := tl.HasViolation

				if predicted && actual {
					atomic.AddInt64(&metrics.TruePositives, 1)
				} else if predicted && !actual {
					atomic.AddInt64(&metrics.FalsePositives, 1)
				} else if !predicted && !actual {
					atomic.AddInt64(&metrics.TrueNegatives, 1)
				} else { // !predicted && actual
					atomic.AddInt64(&metrics.FalseNegatives, 1)
				}

				if verbose {
					status := "✓"
					if (predicted && !actual) || (!predicted && actual) {
						status = "✗"
					}
					name := tl.Furnisher
					if len(name) > 20 {
						name = name[:20]
					}
					fmt.Printf("%s %-20s | Type: %-12s | Flags: %3d | Risk: %3d | Labeled: %v\n",
						status,
						name,
						tl.AccountType,
						len(result.Flags),
						result.Patterns.OverallRisk,
						tl.HasViolation,
					)
				}
			}
		}()
	}

	for _, tl := range tradelines {
		work <- tl
	}
	close(work)

	wg.Wait()

	return metrics
}

func analyzeTradeline(client *http.Client, baseURL, tenantID string, tl LabeledTradeline) (*AnalyzeResponse, error) {
	fields := map[string]string{}
	put := func(key, val string) {
		if val != "" {
			fields[key] = val
		}
	}
	put("dateOpened", tl.DateOpened)
	put("dofd", tl.DOFD)
	put("chargeOffDate", tl.ChargeOffDate)
	put("dateClosed", tl.DateClosed)
	put("lastPaymentDate", tl.LastPaymentDate)
	put("lastReportedDate", tl.LastReportedDate)
	put("currentBalance", tl.CurrentBalance)
	put("originalAmount", tl.OriginalAmount)
	put("creditLimit", tl.CreditLimit)
	put("accountType", tl.AccountType)
	put("accountStatus", tl.AccountStatus)
	put("paymentStatus", tl.PaymentStatus)
	put("furnisher", tl.Furnisher)
	put("originalCreditor", tl.OriginalCreditor)

	req := AnalyzeRequest{
		Input: AnalysisInput{
			Fields: fields,
			State:  tl.State,
		},
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequest(http.MethodPost, baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Tenant-ID", tenantID)

	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}

	var result AnalyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

func printResults(m *Metrics, duration time.Duration) {
	fmt.Println("\n╔═══════════════════════════════════════════════════════════════╗")
	fmt.Println("║                      BENCHMARK RESULTS                        ║")
	fmt.Println("╚═══════════════════════════════════════════════════════════════╝")

	fmt.Printf("\n📊 DATASET STATISTICS\n")
	fmt.Printf("   Total Processed:   %d\n", m.TotalProcessed)
	fmt.Printf("   Total Violations:  %d\n", m.TotalViolations)
	fmt.Printf("   Total Clean:       %d\n", m.TotalClean)
	fmt.Printf("   Errors:            %d\n", m.TotalErrors)

	fmt.Printf("\n📈 CONFUSION MATRIX\n")
	fmt.Println("                        Predicted")
	fmt.Println("                 Flagged       Clean")
	fmt.Println("              ┌──────────┬──────────┐")
	fmt.Printf("   Actual  V  │ %8d │ %8d │  (TP, FN)\n", m.TruePositives, m.FalseNegatives)
	fmt.Println("              ├──────────┼──────────┤")
	fmt.Printf("           C  │ %8d │ %8d │  (FP, TN)\n", m.FalsePositives, m.TrueNegatives)
	fmt.Println("              └──────────┴──────────┘")

	// Calculate metrics
	precision := float64(0)
	if m.TruePositives+m.FalsePositives > 0 {
		precision = float64(m.TruePositives) / float64(m.TruePositives+m.FalsePositives)
	}

	recall := float64(0)
	if m.TruePositives+m.FalseNegatives > 0 {
		recall = float64(m.TruePositives) / float64(m.TruePositives+m.FalseNegatives)
	}

	f1 := float64(0)
	if precision+recall > 0 {
		f1 = 2 * (precision * recall) / (precision + recall)
	}

	accuracy := float64(0)
	total := m.TruePositives + m.TrueNegatives + m.FalsePositives + m.FalseNegatives
	if total > 0 {
		accuracy = float64(m.TruePositives+m.TrueNegatives) / float64(total)
	}

	fmt.Printf("\n🎯 DETECTION METRICS\n")
	fmt.Printf("   Precision:  %.4f  (of flagged tradelines, how many had violations)\n", precision)
	fmt.Printf("   Recall:     %.4f  (of violations, how many did we catch)\n", recall)
	fmt.Printf("   F1-Score:   %.4f  (harmonic mean of precision & recall)\n", f1)
	fmt.Printf("   Accuracy:   %.4f  (overall correct predictions)\n", accuracy)

	fmt.Printf("\n🔍 DETECTION ANALYSIS\n")
	if m.TotalViolations > 0 {
		detectionRate := float64(m.TruePositives) / float64(m.TotalViolations) * 100
		missRate := float64(m.FalseNegatives) / float64(m.TotalViolations) * 100
		fmt.Printf("   Violations Found:  %d / %d (%.2f%%)\n", m.TruePositives, m.TotalViolations, detectionRate)
		fmt.Printf("   Violations Missed: %d / %d (%.2f%%) ⚠️\n", m.FalseNegatives, m.TotalViolations, missRate)
	}
	if m.TotalClean > 0 {
		falseAlarmRate := float64(m.FalsePositives) / float64(m.TotalClean) * 100
		fmt.Printf("   False Alarms:      %d / %d (%.2f%%)\n", m.FalsePositives, m.TotalClean, falseAlarmRate)
	}

	fmt.Printf("\n⏱️  PERFORMANCE\n")
	fmt.Printf("   Total Duration:   %v\n", duration.Round(time.Millisecond))
	if m.TotalProcessed > 0 {
		avgMs := float64(m.ProcessingTimeMs) / float64(m.TotalProcessed)
		tps := float64(m.TotalProcessed) / duration.Seconds()
		fmt.Printf("   Avg Latency:      %.2f ms\n", avgMs)
		fmt.Printf("   Throughput:       %.2f tradelines/sec\n", tps)
	}

	// Interpretation
	fmt.Printf("\n💡 INTERPRETATION\n")
	if recall >= 0.9 {
		fmt.Println("   ✅ Excellent recall - catching most violations")
	} else if recall >= 0.7 {
		fmt.Println("   ⚠️  Good recall - but missing some violations")
	} else if recall >= 0.5 {
		fmt.Println("   ⚠️  Moderate recall - significant violations being missed")
	} else {
		fmt.Println("   ❌ Poor recall - most violations are being missed!")
	}

	if precision >= 0.5 {
		fmt.Println("   ✅ Good precision - flags are meaningful")
	} else if precision >= 0.2 {
		fmt.Println("   ⚠️  Low precision - many false alarms")
	} else {
		fmt.Println("   ❌ Very low precision - mostly false alarms")
	}

	fmt.Println()
}
