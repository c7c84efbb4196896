package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroupAccumulator_Add_ClassifiesStatus(t *testing.T) {
	t.Parallel()

	acc := NewGroupAccumulator()
	acc.Add(200, 10, ParseResultOK)
	acc.Add(299, 20, ParseResultOK)
	acc.Add(404, 30, ParseResultOK)
	acc.Add(500, 40, ParseResultOK)
	acc.Add(302, 50, ParseResultOK) // 3xx has no class bucket

	assert.Equal(t, int64(5), acc.RequestsTotal)
	assert.Equal(t, int64(2), acc.Success2xx)
	assert.Equal(t, int64(1), acc.Client4xx)
	assert.Equal(t, int64(1), acc.Server5xx)
	assert.Equal(t, int64(0), acc.ParseErrors)

	// Class buckets never exceed the total
	assert.LessOrEqual(t, acc.Success2xx+acc.Client4xx+acc.Server5xx, acc.RequestsTotal)
}

func TestGroupAccumulator_Add_ParseErrorsStillCount(t *testing.T) {
	t.Parallel()

	acc := NewGroupAccumulator()
	acc.Add(200, 15, ParseResultError)
	acc.Add(200, 25, "weird")
	acc.Add(200, 35, ParseResultOK)

	// parse_result != "ok" counts toward ParseErrors but the record is a
	// full member of every other aggregate.
	assert.Equal(t, int64(3), acc.RequestsTotal)
	assert.Equal(t, int64(3), acc.Success2xx)
	assert.Equal(t, int64(2), acc.ParseErrors)
	assert.Len(t, acc.Elapsed, 3)
}

func TestGroupAccumulator_Summarize(t *testing.T) {
	t.Parallel()

	acc := NewGroupAccumulator()
	acc.Add(200, 100, ParseResultOK)
	acc.Add(200, 200, ParseResultOK)
	acc.Add(404, 300, ParseResultOK)
	acc.Add(500, 400, ParseResultError)

	row := acc.Summarize(GroupKey{DateUTC: "2026-08-20", EndpointBase: "/get"})

	assert.Equal(t, "2026-08-20", row.DateUTC)
	assert.Equal(t, "/get", row.EndpointBase)
	assert.Equal(t, int64(4), row.RequestsTotal)
	assert.Equal(t, int64(2), row.Success2xx)
	assert.Equal(t, int64(1), row.Client4xx)
	assert.Equal(t, int64(1), row.Server5xx)
	assert.Equal(t, int64(1), row.ParseErrors)
	assert.InDelta(t, 250.0, row.AvgElapsedMs, 1e-9)
	// rank = 0.9*3 = 2.7 -> 300 + 0.7*100
	assert.InDelta(t, 370.0, row.P90ElapsedMs, 1e-9)
}

func TestGroupAccumulator_Summarize_RoundsLatencies(t *testing.T) {
	t.Parallel()

	acc := NewGroupAccumulator()
	acc.Add(200, 100.004, ParseResultOK)
	acc.Add(200, 100.004, ParseResultOK)
	acc.Add(200, 100.004, ParseResultOK)

	row := acc.Summarize(GroupKey{DateUTC: "2026-08-20", EndpointBase: "/get"})

	assert.Equal(t, 100.0, row.AvgElapsedMs)
	assert.Equal(t, 100.0, row.P90ElapsedMs)
}

func TestEndpointSummary_AlertLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "SI", EndpointSummary{AlertP90: true}.AlertLabel())
	assert.Equal(t, "NO", EndpointSummary{AlertP90: false}.AlertLabel())
}
