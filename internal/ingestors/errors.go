package ingestors

import (
	"fmt"

	"kpi-pipeline/internal/shared/svcerrors"
)

const (
	codeMalformedLine = "ING_1000"
	codeInputNotFound = "ING_1001"

	codeInternalInputReadFailed = "ING_9000"
)

// errMalformedLine returns a fatal error for a line that is not valid JSON.
// The whole ingestion aborts: no partial results are surfaced.
func errMalformedLine(lineNum int, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMalformedLine, fmt.Sprintf("malformed JSON at line %d: %v", lineNum, cause), cause)
}

// errInputFileNotFound returns an error for a missing input file, raised
// before any processing begins.
func errInputFileNotFound(path string) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeInputNotFound, fmt.Sprintf("input file does not exist: %s", path), nil)
}

// errInternalInputReadFailed returns an error when reading the input fails
// for reasons other than its content.
func errInternalInputReadFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalInputReadFailed, fmt.Errorf("inputReadFailed: %w", cause))
}
