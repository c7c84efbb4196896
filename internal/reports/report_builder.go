package reports

import (
	"context"
	"sort"

	"kpi-pipeline/internal/models"
	"kpi-pipeline/internal/shared/loggers"
	"kpi-pipeline/internal/shared/stats"
)

//go:generate mockgen -source=report_builder.go -destination=./mocks/report_builder_mock.go -package=mocks
type ReportBuilder interface {
	// Build re-aggregates the KPI table into one summary row per
	// endpoint_base plus the four global scalars, flagging endpoints whose
	// rounded weighted p90 strictly exceeds umbralP90.
	Build(ctx context.Context, rows []models.KPIRow, umbralP90 float64) (*models.Report, error)
}

type reportBuilder struct {
	rolluper EndpointRolluper
}

func NewReportBuilder(rolluper EndpointRolluper) ReportBuilder {
	return &reportBuilder{rolluper: rolluper}
}

func (b *reportBuilder) Build(ctx context.Context, rows []models.KPIRow, umbralP90 float64) (*models.Report, error) {
	logger := loggers.Ctx(ctx)

	global := b.globalMetrics(rows)

	// Group rows by endpoint_base. First-seen order is preserved so the
	// stable sort below keeps ties in input order.
	rollupsByEndpoint := make(map[string]*EndpointRollup)
	order := make([]string, 0)
	for _, row := range rows {
		rollup, exists := rollupsByEndpoint[row.EndpointBase]
		if !exists {
			rollup = &EndpointRollup{EndpointBase: row.EndpointBase}
			rollupsByEndpoint[row.EndpointBase] = rollup
			order = append(order, row.EndpointBase)
		}
		if err := b.rolluper.Rollup(rollup, row); err != nil {
			return nil, errInternalEndpointRollupFailed(err)
		}
	}

	endpoints := make([]models.EndpointSummary, 0, len(order))
	for _, endpointBase := range order {
		summary := b.rolluper.Finalize(rollupsByEndpoint[endpointBase], umbralP90)
		if summary.AlertP90 {
			metricEndpointsAlertedTotal.Inc()
		}
		endpoints = append(endpoints, summary)
	}

	sort.SliceStable(endpoints, func(i, j int) bool {
		return endpoints[i].RequestsTotal > endpoints[j].RequestsTotal
	})

	metricReportsBuiltTotal.Inc()
	logger.Debug().
		Int(loggers.FieldEndpoints, len(endpoints)).
		Int64("requests_total", global.Total).
		Msg("report built")

	return &models.Report{Global: global, Endpoints: endpoints, UmbralP90: umbralP90}, nil
}

// globalMetrics computes the report-level scalars. P90Global interpolates
// over the per-row p90 column because raw samples are not available at this
// stage: it approximates a true global percentile and deliberately stays
// that way.
func (b *reportBuilder) globalMetrics(rows []models.KPIRow) models.GlobalMetrics {
	var total, success, client4xx, server5xx int64
	p90s := make([]float64, 0, len(rows))
	for _, row := range rows {
		total += row.RequestsTotal
		success += row.Success2xx
		client4xx += row.Client4xx
		server5xx += row.Server5xx
		p90s = append(p90s, row.P90ElapsedMs)
	}

	global := models.GlobalMetrics{Total: total}
	if total > 0 {
		global.PctSuccess = float64(success) / float64(total) * 100
		global.PctErrors = float64(client4xx+server5xx) / float64(total) * 100
	}
	global.P90Global = stats.Percentile(p90s, 90)

	return global
}
