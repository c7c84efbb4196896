package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"kpi-pipeline/internal/aggregators"
	"kpi-pipeline/internal/generators"
	"kpi-pipeline/internal/ingestors"
	"kpi-pipeline/internal/reports"
	"kpi-pipeline/internal/shared/filestorages"
	"kpi-pipeline/internal/shared/loggers"
	"kpi-pipeline/internal/stores"
)

// ### Start - fixed configs (no change)
// These values define deterministic test data generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	totalRecords = 20000
	seed         = 42
	days         = 3
	umbralP90    = 500.0
)

// ### End - fixed configs

func fail(format string, args ...any) {
	fmt.Printf("FAIL: "+format+"\n", args...)
	os.Exit(1)
}

// main runs the e2e scenario: 001_full_pipeline
//
// This scenario exercises the whole batch pipeline in-process: synthetic
// record generation, JSONL persistence, KPI aggregation to CSV, CSV readback
// and the report roll-up with HTML rendering. It verifies the conservation
// invariants that must hold across every stage.
func main() {
	workDir, err := os.MkdirTemp("", "kpi-e2e-*")
	if err != nil {
		fail("creating work dir: %v", err)
	}
	defer os.RemoveAll(workDir)

	fmt.Println("Starting e2e scenario: 001_full_pipeline")
	fmt.Printf("WORK_DIR: %s\n", workDir)
	fmt.Printf("TOTAL_RECORDS: %d\n", totalRecords)
	fmt.Printf("SEED: %d\n", seed)
	fmt.Printf("DAYS: %d\n", days)
	fmt.Printf("UMBRAL_P90: %.2f\n", umbralP90)
	fmt.Println()

	logger, err := loggers.New("warn")
	if err != nil {
		fail("initializing logger: %v", err)
	}
	ctx := logger.WithContext(context.Background())

	fileStore := filestorages.NewFileStore()
	logPath := filepath.Join(workDir, "transacciones.jsonl")
	kpiPath := filepath.Join(workDir, "kpi_por_endpoint_dia.csv")
	reportDir := filepath.Join(workDir, "report")

	// 1) Generate
	fmt.Printf("Generating %d records...\n", totalRecords)
	records := generators.NewRecordGenerator(seed).Generate(ctx, totalRecords, days)
	if len(records) != totalRecords {
		fail("generated %d records, want %d", len(records), totalRecords)
	}
	if err := stores.NewRecordLogStore(fileStore).Write(ctx, logPath, records); err != nil {
		fail("writing record log: %v", err)
	}
	fmt.Printf("Record log written: %s\n\n", logPath)

	// 2) Aggregate
	fmt.Println("Aggregating KPI table...")
	source, err := ingestors.NewJSONLReader(ctx, fileStore, logPath)
	if err != nil {
		fail("opening record log: %v", err)
	}
	rows, err := aggregators.NewKPIAggregator().Compute(ctx, source)
	if err != nil {
		fail("aggregating: %v", err)
	}
	if err := stores.NewKPIRowStore(fileStore).Write(ctx, kpiPath, rows); err != nil {
		fail("writing kpi table: %v", err)
	}
	fmt.Printf("KPI table written: %s (%d rows)\n\n", kpiPath, len(rows))

	// Every generated record carries identity fields, so nothing is dropped.
	var total, classed int64
	for _, row := range rows {
		total += row.RequestsTotal
		classed += row.Success2xx + row.Client4xx + row.Server5xx
		if row.AvgElapsedMs < 50 || row.AvgElapsedMs >= 800 {
			fail("row %s %s: avg_elapsed_ms %.2f outside generator range", row.DateUTC, row.EndpointBase, row.AvgElapsedMs)
		}
		if row.P90ElapsedMs < row.AvgElapsedMs {
			// With uniform latencies p90 sits above the mean for any group
			// big enough; tiny groups can invert this, so only sanity-check.
			if row.RequestsTotal > 100 {
				fail("row %s %s: p90 %.2f below avg %.2f", row.DateUTC, row.EndpointBase, row.P90ElapsedMs, row.AvgElapsedMs)
			}
		}
	}
	if total != totalRecords {
		fail("kpi rows sum to %d requests, want %d", total, totalRecords)
	}
	if classed != totalRecords {
		fail("status classes sum to %d, want %d (generator emits only 2xx/4xx/5xx)", classed, totalRecords)
	}
	fmt.Printf("Conservation checks passed (requests_total=%d)\n\n", total)

	// 3) Report from the persisted CSV, not the in-memory rows
	fmt.Println("Building report from CSV readback...")
	readRows, err := stores.NewKPIRowStore(fileStore).Read(ctx, kpiPath)
	if err != nil {
		fail("reading kpi table back: %v", err)
	}
	if len(readRows) != len(rows) {
		fail("readback has %d rows, want %d", len(readRows), len(rows))
	}

	builder := reports.NewReportBuilder(reports.NewEndpointRolluper())
	report, err := builder.Build(ctx, readRows, umbralP90)
	if err != nil {
		fail("building report: %v", err)
	}
	if report.Global.Total != totalRecords {
		fail("report global total %d, want %d", report.Global.Total, totalRecords)
	}
	for i := 1; i < len(report.Endpoints); i++ {
		if report.Endpoints[i].RequestsTotal > report.Endpoints[i-1].RequestsTotal {
			fail("endpoints not sorted descending by requests_total at index %d", i)
		}
	}
	var rolledUp int64
	for _, endpoint := range report.Endpoints {
		rolledUp += endpoint.RequestsTotal
	}
	if rolledUp != totalRecords {
		fail("endpoint roll-up sums to %d, want %d", rolledUp, totalRecords)
	}
	fmt.Printf("Report built: %d endpoints\n\n", len(report.Endpoints))

	// 4) Render
	renderer, err := reports.NewHTMLRenderer(fileStore)
	if err != nil {
		fail("initializing renderer: %v", err)
	}
	if err := renderer.Render(ctx, report, reportDir); err != nil {
		fail("rendering report: %v", err)
	}
	if _, err := os.Stat(filepath.Join(reportDir, "index.html")); err != nil {
		fail("index.html not written: %v", err)
	}
	fmt.Printf("HTML report written: %s\n\n", filepath.Join(reportDir, "index.html"))

	fmt.Println("e2e scenario 001_full_pipeline passed")
}
