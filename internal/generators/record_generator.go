package generators

import (
	"context"
	"math/rand"
	"time"

	"kpi-pipeline/internal/models"
	"kpi-pipeline/internal/shared/loggers"
	"kpi-pipeline/internal/shared/stats"
)

// endpoints is the catalogue sampled by the generator. Two of them carry a
// query string so the normalizer has something to strip.
var endpoints = []string{
	"/get",
	"/post",
	"/status/403",
	"/basic-auth/user/passwd",
	"/cookies?set=1",
	"/xml",
	"/html?pretty=true",
}

var client4xxStatuses = []int{400, 401, 404, 429}
var server5xxStatuses = []int{500, 502, 503}

//go:generate mockgen -source=record_generator.go -destination=./mocks/record_generator_mock.go -package=mocks
type RecordGenerator interface {
	// Generate produces n synthetic transaction records spread over the last
	// days days, including a small share of parse_result="error" records.
	Generate(ctx context.Context, n int, days int) []models.SyntheticRecord
}

type recordGenerator struct {
	rng *rand.Rand
	now func() time.Time
}

// NewRecordGenerator builds a generator seeded with seed so runs are
// reproducible.
func NewRecordGenerator(seed int64) RecordGenerator {
	return &recordGenerator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

func (g *recordGenerator) Generate(ctx context.Context, n int, days int) []models.SyntheticRecord {
	logger := loggers.Ctx(ctx)

	records := make([]models.SyntheticRecord, 0, n)
	for i := 0; i < n; i++ {
		endpoint := endpoints[g.rng.Intn(len(endpoints))]
		record := models.SyntheticRecord{
			TimestampUTC: g.randomTimestamp(days),
			Endpoint:     endpoint,
			StatusCode:   g.statusFor(endpoint),
			ElapsedMs:    stats.Round2(50 + g.rng.Float64()*750),
			ParseResult:  models.ParseResultOK,
		}
		if g.rng.Float64() < 0.05 {
			record.ParseResult = models.ParseResultError
		}
		records = append(records, record)
		metricRecordsGeneratedTotal.Inc()
	}

	logger.Debug().
		Int(loggers.FieldRecords, len(records)).
		Int("days", days).
		Msg("synthetic records generated")
	return records
}

// statusFor picks a status code. /status/403 always answers 403; everything
// else follows a fixed mix of roughly 88% success, 8% client errors and 4%
// server errors.
func (g *recordGenerator) statusFor(endpoint string) int {
	if endpoint == "/status/403" {
		return 403
	}
	p := g.rng.Float64()
	switch {
	case p < 0.88:
		return 200
	case p < 0.96:
		return client4xxStatuses[g.rng.Intn(len(client4xxStatuses))]
	default:
		return server5xxStatuses[g.rng.Intn(len(server5xxStatuses))]
	}
}

func (g *recordGenerator) randomTimestamp(days int) string {
	window := time.Duration(days) * 24 * time.Hour
	offset := time.Duration(g.rng.Int63n(int64(window)))
	ts := g.now().UTC().Add(-offset).Truncate(time.Second)
	return ts.Format(models.TimestampLayoutUTC)
}
