package reports

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"path"
	"time"

	"kpi-pipeline/internal/models"
	"kpi-pipeline/internal/shared/filestorages"
	"kpi-pipeline/internal/shared/loggers"
)

//go:embed report_template.html
var reportTemplateHTML string

//go:generate mockgen -source=html_renderer.go -destination=./mocks/html_renderer_mock.go -package=mocks
type HTMLRenderer interface {
	// Render writes the report as index.html under rootDir.
	Render(ctx context.Context, report *models.Report, rootDir string) error
}

type htmlRenderer struct {
	fileStore filestorages.FileStore
	tmpl      *template.Template
	now       func() time.Time
}

func NewHTMLRenderer(fileStore filestorages.FileStore) (HTMLRenderer, error) {
	tmpl, err := template.New("report").Funcs(template.FuncMap{
		"f2": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	}).Parse(reportTemplateHTML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}
	return &htmlRenderer{fileStore: fileStore, tmpl: tmpl, now: time.Now}, nil
}

type reportPage struct {
	GeneratedAt string
	UmbralP90   float64
	Global      models.GlobalMetrics
	Endpoints   []models.EndpointSummary
}

func (r *htmlRenderer) Render(ctx context.Context, report *models.Report, rootDir string) error {
	logger := loggers.Ctx(ctx)

	page := reportPage{
		GeneratedAt: r.now().UTC().Format("2006-01-02 15:04:05 UTC"),
		UmbralP90:   report.UmbralP90,
		Global:      report.Global,
		Endpoints:   report.Endpoints,
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, page); err != nil {
		return errInternalRenderFailed(err)
	}

	outputPath := path.Join(rootDir, "index.html")
	if err := r.fileStore.Put(ctx, outputPath, &buf); err != nil {
		return errInternalRenderFailed(err)
	}

	logger.Debug().
		Str(loggers.FieldOutputPath, outputPath).
		Int(loggers.FieldEndpoints, len(report.Endpoints)).
		Msg("html report written")
	return nil
}
