package generators

import (
	"context"
	"testing"
	"time"

	"kpi-pipeline/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordGenerator_Generate_Count(t *testing.T) {
	t.Parallel()

	records := NewRecordGenerator(1).Generate(context.Background(), 250, 3)
	assert.Len(t, records, 250)
}

func TestRecordGenerator_Generate_Deterministic(t *testing.T) {
	t.Parallel()

	// Pin the clock so timestamps match across the two runs.
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	genA := NewRecordGenerator(42).(*recordGenerator)
	genA.now = func() time.Time { return now }
	genB := NewRecordGenerator(42).(*recordGenerator)
	genB.now = func() time.Time { return now }

	first := genA.Generate(context.Background(), 100, 3)
	second := genB.Generate(context.Background(), 100, 3)
	assert.Equal(t, first, second)
}

func TestRecordGenerator_Generate_DifferentSeedsDiffer(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	genA := NewRecordGenerator(1).(*recordGenerator)
	genA.now = func() time.Time { return now }
	genB := NewRecordGenerator(2).(*recordGenerator)
	genB.now = func() time.Time { return now }

	first := genA.Generate(context.Background(), 100, 3)
	second := genB.Generate(context.Background(), 100, 3)
	assert.NotEqual(t, first, second)
}

func TestRecordGenerator_Generate_RecordShape(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	gen := NewRecordGenerator(7).(*recordGenerator)
	gen.now = func() time.Time { return now }

	records := gen.Generate(context.Background(), 500, 3)

	windowStart := now.Add(-3 * 24 * time.Hour)
	catalogue := make(map[string]bool, len(endpoints))
	for _, e := range endpoints {
		catalogue[e] = true
	}

	for _, record := range records {
		assert.True(t, catalogue[record.Endpoint], "unknown endpoint %q", record.Endpoint)

		ts, err := time.Parse(models.TimestampLayoutUTC, record.TimestampUTC)
		require.NoError(t, err, "timestamp %q must match the input contract", record.TimestampUTC)
		assert.False(t, ts.Before(windowStart), "timestamp before window: %s", record.TimestampUTC)
		assert.False(t, ts.After(now), "timestamp in the future: %s", record.TimestampUTC)

		assert.GreaterOrEqual(t, record.ElapsedMs, 50.0)
		assert.Less(t, record.ElapsedMs, 800.0)

		validStatus := map[int]bool{200: true, 400: true, 401: true, 403: true, 404: true, 429: true, 500: true, 502: true, 503: true}
		assert.True(t, validStatus[record.StatusCode], "unexpected status %d", record.StatusCode)

		if record.Endpoint == "/status/403" {
			assert.Equal(t, 403, record.StatusCode)
		}
		assert.Contains(t, []string{models.ParseResultOK, models.ParseResultError}, record.ParseResult)
	}
}

func TestRecordGenerator_Generate_Distribution(t *testing.T) {
	t.Parallel()

	records := NewRecordGenerator(99).Generate(context.Background(), 5000, 3)

	var ok2xx, parseErrors int
	for _, record := range records {
		if record.StatusCode == 200 {
			ok2xx++
		}
		if record.ParseResult == models.ParseResultError {
			parseErrors++
		}
	}

	// Loose bounds: /status/403 skews success below the nominal 88%.
	successRate := float64(ok2xx) / float64(len(records))
	assert.Greater(t, successRate, 0.60)
	assert.Less(t, successRate, 0.90)

	errorRate := float64(parseErrors) / float64(len(records))
	assert.Greater(t, errorRate, 0.02)
	assert.Less(t, errorRate, 0.10)
}
