package ingestors

import (
	"kpi-pipeline/internal/shared/metrics"
)

var (
	// metricLinesReadTotal counts non-blank input lines that parsed as JSON.
	metricLinesReadTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "lines_read_total",
		},
	)
)
