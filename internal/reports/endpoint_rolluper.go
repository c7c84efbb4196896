package reports

import (
	"fmt"

	"kpi-pipeline/internal/models"
	"kpi-pipeline/internal/shared/stats"
)

// EndpointRollup carries the running sums for one endpoint_base while KPI
// rows are rolled up. Latency sums are weighted by each row's requests_total
// so days with more traffic dominate the averages.
type EndpointRollup struct {
	EndpointBase   string
	RequestsTotal  int64
	Success2xx     int64
	Client4xx      int64
	Server5xx      int64
	WeightedAvgSum float64
	WeightedP90Sum float64
}

//go:generate mockgen -source=endpoint_rolluper.go -destination=./mocks/endpoint_rolluper_mock.go -package=mocks
type EndpointRolluper interface {
	// Rollup mutates rollup by accumulating counts and weighted latency
	// sums from row.
	Rollup(rollup *EndpointRollup, row models.KPIRow) error
	// Finalize reduces the rollup to its summary row, rounding the derived
	// fields to 2 decimals and flagging the alert against umbralP90.
	Finalize(rollup *EndpointRollup, umbralP90 float64) models.EndpointSummary
}

type endpointRolluper struct{}

func NewEndpointRolluper() EndpointRolluper {
	return &endpointRolluper{}
}

func (e *endpointRolluper) Rollup(rollup *EndpointRollup, row models.KPIRow) error {
	// Validate that identity fields match
	if rollup.EndpointBase != row.EndpointBase {
		return fmt.Errorf("endpointBase mismatch: rollup=%q, row=%q", rollup.EndpointBase, row.EndpointBase)
	}

	weight := float64(row.RequestsTotal)
	rollup.RequestsTotal += row.RequestsTotal
	rollup.Success2xx += row.Success2xx
	rollup.Client4xx += row.Client4xx
	rollup.Server5xx += row.Server5xx
	rollup.WeightedAvgSum += row.AvgElapsedMs * weight
	rollup.WeightedP90Sum += row.P90ElapsedMs * weight

	return nil
}

func (e *endpointRolluper) Finalize(rollup *EndpointRollup, umbralP90 float64) models.EndpointSummary {
	// max(weight, 1) turns an all-zero-traffic endpoint into zeros instead
	// of a division failure.
	divisor := float64(rollup.RequestsTotal)
	if divisor < 1 {
		divisor = 1
	}

	avg := stats.Round2(rollup.WeightedAvgSum / divisor)
	p90 := stats.Round2(rollup.WeightedP90Sum / divisor)

	summary := models.EndpointSummary{
		EndpointBase:  rollup.EndpointBase,
		RequestsTotal: rollup.RequestsTotal,
		Success2xx:    rollup.Success2xx,
		Client4xx:     rollup.Client4xx,
		Server5xx:     rollup.Server5xx,
		AvgElapsedMs:  avg,
		P90ElapsedMs:  p90,
		// The comparison uses the rounded value; a p90 exactly at the umbral
		// does not alert.
		AlertP90: p90 > umbralP90,
	}

	if rollup.RequestsTotal > 0 {
		total := float64(rollup.RequestsTotal)
		summary.PctSuccess = stats.Round2(float64(rollup.Success2xx) / total * 100)
		summary.PctClient4xx = stats.Round2(float64(rollup.Client4xx) / total * 100)
		summary.PctServer5xx = stats.Round2(float64(rollup.Server5xx) / total * 100)
	}

	return summary
}
