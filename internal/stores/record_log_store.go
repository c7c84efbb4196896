package stores

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"kpi-pipeline/internal/models"
	"kpi-pipeline/internal/shared/filestorages"
)

//go:generate mockgen -source=record_log_store.go -destination=./mocks/record_log_store_mock.go -package=mocks
type RecordLogStore interface {
	// Write persists records as newline-delimited JSON, one object per line,
	// the shape the kpi command ingests.
	Write(ctx context.Context, path string, records []models.SyntheticRecord) error
}

type recordLogStore struct {
	fileStore filestorages.FileStore
}

func NewRecordLogStore(fileStore filestorages.FileStore) RecordLogStore {
	return &recordLogStore{fileStore: fileStore}
}

func (s *recordLogStore) Write(ctx context.Context, path string, records []models.SyntheticRecord) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	for _, record := range records {
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
	}

	if err := s.fileStore.Put(ctx, path, &buf); err != nil {
		return fmt.Errorf("failed to put record log: %w", err)
	}
	return nil
}
