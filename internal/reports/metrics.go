package reports

import (
	"kpi-pipeline/internal/shared/metrics"
)

var (
	// metricReportsBuiltTotal counts completed report builds.
	metricReportsBuiltTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "reports_built_total",
		},
	)

	// metricEndpointsAlertedTotal counts endpoint summaries whose weighted
	// p90 exceeded the alert umbral.
	metricEndpointsAlertedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubReport,
			Name:      "endpoints_alerted_total",
		},
	)
)
