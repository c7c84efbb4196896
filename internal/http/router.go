package http

import (
	"net/http"

	"kpi-pipeline/internal/reports"
	"kpi-pipeline/internal/shared/loggers"
	"kpi-pipeline/internal/shared/metrics"
	"kpi-pipeline/internal/stores"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router. The root path serves the
// rendered HTML report directory; /api/report rebuilds the report from the
// KPI table on demand.
func NewRouter(
	kpiRowStore stores.KPIRowStore,
	reportBuilder reports.ReportBuilder,
	kpiPath string,
	reportRootDir string,
	defaultUmbralP90 float64,
	httpLogger loggers.Logger,
) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	reportHandler := NewReportHandler(kpiRowStore, reportBuilder, kpiPath, defaultUmbralP90)

	// Routes
	router.Get("/api/report", errorHandlingAdapter(reportHandler))
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)
	router.Handle("/*", http.FileServer(http.Dir(reportRootDir)))

	return router
}
