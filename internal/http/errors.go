package http

import (
	"fmt"

	"kpi-pipeline/internal/shared/svcerrors"
)

const (
	codeInvalidUmbralParam      = "HTTP_1000"
	codeKPITableNotFound        = "HTTP_1001"
	codeInternalReportReadError = "HTTP_9000"
)

// errInvalidUmbralParam returns an error when the umbral_p90 query parameter is not a positive number.
func errInvalidUmbralParam(raw string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(
		codeInvalidUmbralParam,
		fmt.Sprintf("invalid umbral_p90 parameter: %q", raw),
		cause,
	)
}

// errKPITableNotFound returns an error when the KPI table has not been produced yet.
func errKPITableNotFound(path string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(
		codeKPITableNotFound,
		fmt.Sprintf("kpi table not found: %s", path),
		cause,
	)
}

// errInternalReportReadFailed returns an error when loading or building the report fails.
func errInternalReportReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalReportReadError, cause)
}
