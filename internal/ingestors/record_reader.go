package ingestors

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"kpi-pipeline/internal/models"
	"kpi-pipeline/internal/shared/filestorages"
	"kpi-pipeline/internal/shared/loggers"
)

//go:generate mockgen -source=record_reader.go -destination=./mocks/record_reader_mock.go -package=mocks
type RecordSource interface {
	// Each streams every record of the source in file order, invoking fn
	// once per non-blank line. A syntactically invalid line aborts the
	// iteration with a fatal error naming the 1-based line number; an error
	// returned by fn aborts it as well. Each call re-opens the source from
	// the start; a single iteration is forward-only.
	Each(ctx context.Context, fn func(record models.RawRecord) error) error
}

type jsonlReader struct {
	fileStore filestorages.FileStore
	path      string
}

// NewJSONLReader creates a RecordSource over a newline-delimited JSON file.
// The file's existence is checked eagerly so a missing input fails before
// any processing starts.
func NewJSONLReader(ctx context.Context, fileStore filestorages.FileStore, path string) (RecordSource, error) {
	exists, err := fileStore.Exists(ctx, path)
	if err != nil {
		return nil, errInternalInputReadFailed(err)
	}
	if !exists {
		return nil, errInputFileNotFound(path)
	}

	return &jsonlReader{fileStore: fileStore, path: path}, nil
}

func (r *jsonlReader) Each(ctx context.Context, fn func(record models.RawRecord) error) error {
	file, err := r.fileStore.Open(ctx, r.path)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return errInputFileNotFound(r.path)
		}
		return errInternalInputReadFailed(err)
	}
	defer file.Close()

	// Lines are read without a length cap so every line-level failure
	// carries its 1-based line number, no matter how long the line is.
	reader := bufio.NewReader(file)
	lineNum := 0
	records := 0
	for {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return errInternalInputReadFailed(readErr)
		}
		if line == "" && errors.Is(readErr, io.EOF) {
			break
		}
		lineNum++

		if trimmed := strings.TrimSpace(line); trimmed != "" {
			var record models.RawRecord
			if err := json.Unmarshal([]byte(trimmed), &record); err != nil {
				return errMalformedLine(lineNum, err)
			}
			metricLinesReadTotal.Inc()
			records++

			if err := fn(record); err != nil {
				return err
			}
		}

		if errors.Is(readErr, io.EOF) {
			break
		}
	}

	loggers.Ctx(ctx).Debug().
		Str(loggers.FieldInputPath, r.path).
		Int(loggers.FieldRecords, records).
		Msg("input consumed")

	return nil
}
