package models

import "kpi-pipeline/internal/shared/stats"

// GroupAccumulator accumulates every sample and counter for one GroupKey
// during a single aggregation pass. Elapsed retains all samples because the
// percentile needs the full set before the group can be summarized, so
// memory grows with records, not groups.
type GroupAccumulator struct {
	Elapsed       []float64
	RequestsTotal int64
	Success2xx    int64
	Client4xx     int64
	Server5xx     int64
	ParseErrors   int64
}

func NewGroupAccumulator() *GroupAccumulator {
	return &GroupAccumulator{Elapsed: make([]float64, 0)}
}

// Add folds one record into the accumulator. Status classification uses
// inclusive ranges; a status outside 200-599 still counts toward
// RequestsTotal and the sample list, just no class bucket.
func (a *GroupAccumulator) Add(statusCode int, elapsedMs float64, parseResult string) {
	a.RequestsTotal++
	a.Elapsed = append(a.Elapsed, elapsedMs)

	switch {
	case statusCode >= 200 && statusCode <= 299:
		a.Success2xx++
	case statusCode >= 400 && statusCode <= 499:
		a.Client4xx++
	case statusCode >= 500 && statusCode <= 599:
		a.Server5xx++
	}

	if parseResult != ParseResultOK {
		a.ParseErrors++
	}
}

// AvgElapsedMs returns the arithmetic mean of the group's elapsed times.
func (a *GroupAccumulator) AvgElapsedMs() float64 {
	return stats.Mean(a.Elapsed)
}

// P90ElapsedMs returns the value below which 90% of the group's elapsed
// times fall, interpolated linearly between order statistics.
func (a *GroupAccumulator) P90ElapsedMs() float64 {
	return stats.Percentile(a.Elapsed, 90)
}

// Summarize reduces the accumulator to its KPI row for key, rounding the two
// latency fields to 2 decimals. Internal accumulation stays full precision.
func (a *GroupAccumulator) Summarize(key GroupKey) KPIRow {
	return KPIRow{
		DateUTC:       key.DateUTC,
		EndpointBase:  key.EndpointBase,
		RequestsTotal: a.RequestsTotal,
		Success2xx:    a.Success2xx,
		Client4xx:     a.Client4xx,
		Server5xx:     a.Server5xx,
		ParseErrors:   a.ParseErrors,
		AvgElapsedMs:  stats.Round2(a.AvgElapsedMs()),
		P90ElapsedMs:  stats.Round2(a.P90ElapsedMs()),
	}
}
