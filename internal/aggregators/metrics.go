package aggregators

import (
	"kpi-pipeline/internal/shared/metrics"
)

var (
	// metricRecordsAggregatedTotal counts records folded into a group.
	metricRecordsAggregatedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "records_aggregated_total",
		},
	)

	// metricRecordsDroppedTotal counts records discarded for a missing
	// timestamp_utc or endpoint. Drops are silent by contract; this counter
	// is the only trace they leave.
	metricRecordsDroppedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "records_dropped_total",
		},
	)

	// metricFieldCoercionFailedTotal counts records where status_code or
	// elapsed_ms failed coercion and defaults were substituted.
	metricFieldCoercionFailedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "field_coercion_failed_total",
		},
	)

	// metricGroupsCreatedTotal counts distinct (date, endpoint_base) groups.
	metricGroupsCreatedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "groups_created_total",
		},
	)
)
