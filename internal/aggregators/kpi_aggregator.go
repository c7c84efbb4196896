package aggregators

import (
	"context"
	"sort"

	"kpi-pipeline/internal/ingestors"
	"kpi-pipeline/internal/models"
	"kpi-pipeline/internal/shared/loggers"
)

//go:generate mockgen -source=kpi_aggregator.go -destination=./mocks/kpi_aggregator_mock.go -package=mocks
type KPIAggregator interface {
	// Compute consumes every record of source in a single pass and returns
	// one KPI row per (date_utc, endpoint_base) group, sorted ascending by
	// date then endpoint for deterministic output.
	Compute(ctx context.Context, source ingestors.RecordSource) ([]models.KPIRow, error)
}

type kpiAggregator struct{}

func NewKPIAggregator() KPIAggregator {
	return &kpiAggregator{}
}

func (a *kpiAggregator) Compute(ctx context.Context, source ingestors.RecordSource) ([]models.KPIRow, error) {
	logger := loggers.Ctx(ctx)

	// Accumulation state is owned by this call; nothing outlives it.
	groups := make(map[models.GroupKey]*models.GroupAccumulator)

	err := source.Each(ctx, func(record models.RawRecord) error {
		ts := record[models.FieldTimestampUTC]
		endpoint := record[models.FieldEndpoint]

		// A record without its identity fields cannot be grouped: drop it
		// silently, excluded from every aggregate.
		if ts == nil || endpoint == nil {
			metricRecordsDroppedTotal.Inc()
			return nil
		}

		// A present but malformed timestamp is fatal, unlike a missing one.
		dateUTC, err := ParseDateUTC(stringify(ts))
		if err != nil {
			return errInvalidTimestamp(stringify(ts), err)
		}

		key := models.GroupKey{
			DateUTC:      dateUTC,
			EndpointBase: NormalizeEndpoint(stringify(endpoint)),
		}

		parseResult := record[models.FieldParseResult]

		statusCode, statusOK := coerceInt(record[models.FieldStatusCode])
		if !statusOK {
			statusCode = 0
			parseResult = models.ParseResultError
		}

		elapsedMs, elapsedOK := coerceFloat(record[models.FieldElapsedMs])
		if !elapsedOK {
			elapsedMs = 0.0
			parseResult = models.ParseResultError
		}

		if !statusOK || !elapsedOK {
			metricFieldCoercionFailedTotal.Inc()
		}

		resolved := models.ParseResultError
		if parseResult != nil {
			resolved = stringify(parseResult)
		}

		acc, exists := groups[key]
		if !exists {
			acc = models.NewGroupAccumulator()
			groups[key] = acc
			metricGroupsCreatedTotal.Inc()
		}
		acc.Add(statusCode, elapsedMs, resolved)
		metricRecordsAggregatedTotal.Inc()

		return nil
	})
	if err != nil {
		return nil, err
	}

	rows := make([]models.KPIRow, 0, len(groups))
	for key, acc := range groups {
		rows = append(rows, acc.Summarize(key))
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].DateUTC != rows[j].DateUTC {
			return rows[i].DateUTC < rows[j].DateUTC
		}
		return rows[i].EndpointBase < rows[j].EndpointBase
	})

	logger.Debug().Int(loggers.FieldGroups, len(rows)).Msg("kpi aggregation finished")

	return rows, nil
}
