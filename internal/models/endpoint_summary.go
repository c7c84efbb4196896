package models

// EndpointSummary is one report row: every KPI row sharing an endpoint_base
// rolled up across dates. Latency fields are weighted averages (weight =
// requests_total of each contributing row), an approximation since the raw
// samples are gone at this stage.
type EndpointSummary struct {
	EndpointBase  string
	RequestsTotal int64
	Success2xx    int64
	Client4xx     int64
	Server5xx     int64
	AvgElapsedMs  float64
	P90ElapsedMs  float64
	PctSuccess    float64
	PctClient4xx  float64
	PctServer5xx  float64
	AlertP90      bool
}

// AlertLabel renders the alert flag in its wire form.
func (s EndpointSummary) AlertLabel() string {
	if s.AlertP90 {
		return "SI"
	}
	return "NO"
}

// GlobalMetrics are the four report-level scalars. P90Global is a percentile
// over the per-row p90 column, not over raw samples: explicitly approximate.
type GlobalMetrics struct {
	Total      int64
	PctSuccess float64
	PctErrors  float64
	P90Global  float64
}

// Report is the full report output: global scalars plus one summary row per
// endpoint_base, sorted descending by requests_total.
type Report struct {
	Global    GlobalMetrics
	Endpoints []EndpointSummary
	UmbralP90 float64
}
