package svcerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsServiceError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr *ServiceError
		wantOk  bool
	}{
		{
			name:    "nil input",
			err:     nil,
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "regular error",
			err:     errors.New("x"),
			wantErr: nil,
			wantOk:  false,
		},
		{
			name:    "direct ServiceError",
			err:     NewInvalidArgumentError("ING_1000", "malformed JSON at line 2", nil),
			wantErr: NewInvalidArgumentError("ING_1000", "malformed JSON at line 2", nil),
			wantOk:  true,
		},
		{
			name:    "wrapped ServiceError",
			err:     fmt.Errorf("wrap: %w", NewInternalError("REP_9000", nil)),
			wantErr: NewInternalError("REP_9000", nil),
			wantOk:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotErr, gotOk := AsServiceError(tt.err)

			assert.Equal(t, tt.wantOk, gotOk, "AsServiceError() ok value mismatch")

			if tt.wantErr == nil {
				assert.Nil(t, gotErr, "AsServiceError() should return nil error")
			} else {
				require.NotNil(t, gotErr, "AsServiceError() should return non-nil error")
				assert.Equal(t, tt.wantErr.Category, gotErr.Category, "Category mismatch")
				assert.Equal(t, tt.wantErr.Code, gotErr.Code, "Code mismatch")
				assert.Equal(t, tt.wantErr.Message, gotErr.Message, "Message mismatch")
			}
		})
	}
}

func TestServiceError_Categories(t *testing.T) {
	t.Parallel()

	invalidErr := NewInvalidArgumentError("AGG_1000", "invalid timestamp_utc", nil)
	assert.Equal(t, "invalid_argument", invalidErr.Category)
	assert.Equal(t, 400, invalidErr.HttpStatusCode)
	assert.False(t, invalidErr.IsInternalError())

	notFoundErr := NewNotFoundError("ING_1001", "input file does not exist", nil)
	assert.Equal(t, "not_found", notFoundErr.Category)
	assert.Equal(t, 404, notFoundErr.HttpStatusCode)
	assert.False(t, notFoundErr.IsInternalError())

	internalErr := NewInternalError("REP_9000", errors.New("boom"))
	assert.Equal(t, "internal", internalErr.Category)
	assert.Equal(t, 500, internalErr.HttpStatusCode)
	assert.True(t, internalErr.IsInternalError())
	assert.Equal(t, "internal server error", internalErr.Message)
}

func TestServiceError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("disk full")
	svcErr := NewInternalError("ING_9000", cause)

	assert.True(t, errors.Is(svcErr, cause))
	assert.Equal(t, cause, svcErr.Unwrap())
}

func TestServiceError_Error(t *testing.T) {
	t.Parallel()

	svcErr := NewInvalidArgumentError("ING_1000", "malformed JSON at line 2", nil)
	assert.Equal(t, "ING_1000: malformed JSON at line 2", svcErr.Error())
}
