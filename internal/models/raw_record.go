package models

// RawRecord is one parsed line of the input transaction log, kept as a loose
// mapping: the reader guarantees JSON well-formedness per line and nothing
// else. Field validation and coercion happen in the aggregation pass.
type RawRecord map[string]any

// Field names of a raw record.
const (
	FieldTimestampUTC = "timestamp_utc"
	FieldEndpoint     = "endpoint"
	FieldStatusCode   = "status_code"
	FieldElapsedMs    = "elapsed_ms"
	FieldParseResult  = "parse_result"
)

const (
	// ParseResultOK marks a record as cleanly parsed upstream; any other
	// resolved value counts toward parse_errors.
	ParseResultOK = "ok"
	// ParseResultError is the value forced onto a record when one of its
	// fields fails coercion, and the fallback when parse_result is absent.
	ParseResultError = "error"
)

// TimestampLayoutUTC is the only accepted input timestamp shape: second
// precision with a literal Z suffix.
const TimestampLayoutUTC = "2006-01-02T15:04:05Z"
