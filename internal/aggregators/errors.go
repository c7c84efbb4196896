package aggregators

import (
	"fmt"

	"kpi-pipeline/internal/shared/svcerrors"
)

const (
	codeInvalidTimestamp = "AGG_1000"
)

// errInvalidTimestamp returns a fatal error for a present but unparseable
// timestamp_utc. Absence of the field drops the record instead; malformed
// content aborts the whole batch.
func errInvalidTimestamp(value string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidTimestamp, fmt.Sprintf("invalid timestamp_utc %q", value), cause)
}
