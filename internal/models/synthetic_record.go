package models

// SyntheticRecord is one generated transaction log line. Field names match
// the raw record contract the kpi command ingests.
type SyntheticRecord struct {
	TimestampUTC string  `json:"timestamp_utc"`
	Endpoint     string  `json:"endpoint"`
	StatusCode   int     `json:"status_code"`
	ElapsedMs    float64 `json:"elapsed_ms"`
	ParseResult  string  `json:"parse_result"`
}
