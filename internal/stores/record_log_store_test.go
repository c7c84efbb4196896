package stores

import (
	"context"
	"errors"
	"io"
	"testing"

	"kpi-pipeline/internal/models"
	"kpi-pipeline/internal/shared/filestorages/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestRecordLogStore_Write_Success(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStore := mocks.NewMockFileStore(ctrl)
	store := NewRecordLogStore(mockFileStore)

	records := []models.SyntheticRecord{
		{TimestampUTC: "2026-08-20T10:00:00Z", Endpoint: "/get", StatusCode: 200, ElapsedMs: 123.45, ParseResult: "ok"},
		{TimestampUTC: "2026-08-20T11:00:00Z", Endpoint: "/status/403", StatusCode: 403, ElapsedMs: 60.1, ParseResult: "error"},
	}

	expected := `{"timestamp_utc":"2026-08-20T10:00:00Z","endpoint":"/get","status_code":200,"elapsed_ms":123.45,"parse_result":"ok"}
{"timestamp_utc":"2026-08-20T11:00:00Z","endpoint":"/status/403","status_code":403,"elapsed_ms":60.1,"parse_result":"error"}
`

	ctx := context.Background()
	mockFileStore.EXPECT().
		Put(ctx, "out/transacciones.jsonl", gomock.Any()).
		DoAndReturn(func(ctx context.Context, path string, r io.Reader) error {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, expected, string(data))
			return nil
		})

	err := store.Write(ctx, "out/transacciones.jsonl", records)
	assert.NoError(t, err)
}

func TestRecordLogStore_Write_Empty(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStore := mocks.NewMockFileStore(ctrl)
	store := NewRecordLogStore(mockFileStore)

	ctx := context.Background()
	mockFileStore.EXPECT().
		Put(ctx, "out/transacciones.jsonl", gomock.Any()).
		DoAndReturn(func(ctx context.Context, path string, r io.Reader) error {
			data, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Empty(t, data)
			return nil
		})

	err := store.Write(ctx, "out/transacciones.jsonl", nil)
	assert.NoError(t, err)
}

func TestRecordLogStore_Write_PutError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFileStore := mocks.NewMockFileStore(ctrl)
	store := NewRecordLogStore(mockFileStore)

	ctx := context.Background()
	mockFileStore.EXPECT().
		Put(ctx, "out/transacciones.jsonl", gomock.Any()).
		Return(errors.New("read-only filesystem"))

	err := store.Write(ctx, "out/transacciones.jsonl", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read-only filesystem")
}
