package generators

import (
	"kpi-pipeline/internal/shared/metrics"
)

var (
	// metricRecordsGeneratedTotal counts synthetic records produced.
	metricRecordsGeneratedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubGenerator,
			Name:      "records_generated_total",
		},
	)
)
