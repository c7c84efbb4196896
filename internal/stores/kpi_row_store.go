package stores

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"slices"
	"strconv"

	"kpi-pipeline/internal/models"
	"kpi-pipeline/internal/shared/filestorages"
)

// kpiHeader is the exact column order of the persisted KPI table.
var kpiHeader = []string{
	"date_utc",
	"endpoint_base",
	"requests_total",
	"success_2xx",
	"client_4xx",
	"server_5xx",
	"parse_errors",
	"avg_elapsed_ms",
	"p90_elapsed_ms",
}

//go:generate mockgen -source=kpi_row_store.go -destination=./mocks/kpi_row_store_mock.go -package=mocks
type KPIRowStore interface {
	// Write persists rows as a CSV table with a header row; the two latency
	// columns are formatted to 2 decimal places.
	Write(ctx context.Context, path string, rows []models.KPIRow) error
	// Read loads a previously written KPI table, validating the header.
	Read(ctx context.Context, path string) ([]models.KPIRow, error)
}

type kpiRowStore struct {
	fileStore filestorages.FileStore
}

func NewKPIRowStore(fileStore filestorages.FileStore) KPIRowStore {
	return &kpiRowStore{fileStore: fileStore}
}

func (s *kpiRowStore) Write(ctx context.Context, path string, rows []models.KPIRow) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(kpiHeader); err != nil {
		return fmt.Errorf("failed to write kpi header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			row.DateUTC,
			row.EndpointBase,
			strconv.FormatInt(row.RequestsTotal, 10),
			strconv.FormatInt(row.Success2xx, 10),
			strconv.FormatInt(row.Client4xx, 10),
			strconv.FormatInt(row.Server5xx, 10),
			strconv.FormatInt(row.ParseErrors, 10),
			strconv.FormatFloat(row.AvgElapsedMs, 'f', 2, 64),
			strconv.FormatFloat(row.P90ElapsedMs, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write kpi row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush kpi table: %w", err)
	}

	if err := s.fileStore.Put(ctx, path, &buf); err != nil {
		return fmt.Errorf("failed to put kpi table: %w", err)
	}
	return nil
}

func (s *kpiRowStore) Read(ctx context.Context, path string) ([]models.KPIRow, error) {
	file, err := s.fileStore.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open kpi table: %w", err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(kpiHeader)

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read kpi table: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("kpi table %q is empty: missing header", path)
	}
	if !slices.Equal(records[0], kpiHeader) {
		return nil, fmt.Errorf("unexpected kpi table header: %v", records[0])
	}

	rows := make([]models.KPIRow, 0, len(records)-1)
	for i, record := range records[1:] {
		row, err := parseKPIRecord(record)
		if err != nil {
			return nil, fmt.Errorf("invalid kpi row at line %d: %w", i+2, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseKPIRecord(record []string) (models.KPIRow, error) {
	row := models.KPIRow{
		DateUTC:      record[0],
		EndpointBase: record[1],
	}

	counts := []struct {
		name string
		dst  *int64
		raw  string
	}{
		{"requests_total", &row.RequestsTotal, record[2]},
		{"success_2xx", &row.Success2xx, record[3]},
		{"client_4xx", &row.Client4xx, record[4]},
		{"server_5xx", &row.Server5xx, record[5]},
		{"parse_errors", &row.ParseErrors, record[6]},
	}
	for _, c := range counts {
		n, err := strconv.ParseInt(c.raw, 10, 64)
		if err != nil {
			return models.KPIRow{}, fmt.Errorf("column %s: %w", c.name, err)
		}
		*c.dst = n
	}

	latencies := []struct {
		name string
		dst  *float64
		raw  string
	}{
		{"avg_elapsed_ms", &row.AvgElapsedMs, record[7]},
		{"p90_elapsed_ms", &row.P90ElapsedMs, record[8]},
	}
	for _, l := range latencies {
		f, err := strconv.ParseFloat(l.raw, 64)
		if err != nil {
			return models.KPIRow{}, fmt.Errorf("column %s: %w", l.name, err)
		}
		*l.dst = f
	}

	return row, nil
}
