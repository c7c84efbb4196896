package reports

import (
	"fmt"

	"kpi-pipeline/internal/shared/svcerrors"
)

const (
	codeInternalEndpointRollupFailed = "REP_9000"
	codeInternalRenderFailed         = "REP_9001"
)

// errInternalEndpointRollupFailed returns an error when an endpoint rollup fails.
func errInternalEndpointRollupFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalEndpointRollupFailed, fmt.Errorf("endpointRollupFailed: %w", cause))
}

// errInternalRenderFailed returns an error when rendering or writing the
// HTML report fails.
func errInternalRenderFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalRenderFailed, fmt.Errorf("reportRenderFailed: %w", cause))
}
