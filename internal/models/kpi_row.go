package models

// GroupKey identifies one aggregation group: a UTC calendar day and a
// normalized endpoint family.
type GroupKey struct {
	DateUTC      string // YYYY-MM-DD
	EndpointBase string
}

// KPIRow is one row of the per-day, per-endpoint KPI table. The two latency
// fields are rounded to 2 decimals at emission; counters are exact.
type KPIRow struct {
	DateUTC       string
	EndpointBase  string
	RequestsTotal int64
	Success2xx    int64
	Client4xx     int64
	Server5xx     int64
	ParseErrors   int64
	AvgElapsedMs  float64
	P90ElapsedMs  float64
}
