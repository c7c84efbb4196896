package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"kpi-pipeline/internal/models"
	"kpi-pipeline/internal/reports"
	"kpi-pipeline/internal/shared/filestorages"
	"kpi-pipeline/internal/stores"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// reportResponse is the JSON shape of GET /api/report.
type reportResponse struct {
	UmbralP90 float64                   `json:"umbral_p90"`
	Global    globalMetricsResponse     `json:"global"`
	Endpoints []endpointSummaryResponse `json:"endpoints"`
}

type globalMetricsResponse struct {
	Total      int64   `json:"total"`
	PctSuccess float64 `json:"pct_success"`
	PctErrors  float64 `json:"pct_errors"`
	P90Global  float64 `json:"p90_global"`
}

type endpointSummaryResponse struct {
	EndpointBase  string  `json:"endpoint_base"`
	RequestsTotal int64   `json:"requests_total"`
	Success2xx    int64   `json:"success_2xx"`
	Client4xx     int64   `json:"client_4xx"`
	Server5xx     int64   `json:"server_5xx"`
	AvgElapsedMs  float64 `json:"avg_elapsed_ms"`
	P90ElapsedMs  float64 `json:"p90_elapsed_ms"`
	PctSuccess    float64 `json:"pct_success"`
	PctClient4xx  float64 `json:"pct_client_4xx"`
	PctServer5xx  float64 `json:"pct_server_5xx"`
	AlertaP90     string  `json:"alerta_p90"`
}

type reportHandler struct {
	kpiRowStore      stores.KPIRowStore
	reportBuilder    reports.ReportBuilder
	kpiPath          string
	defaultUmbralP90 float64
}

func NewReportHandler(kpiRowStore stores.KPIRowStore, reportBuilder reports.ReportBuilder, kpiPath string, defaultUmbralP90 float64) AppHttpHandler {
	return &reportHandler{
		kpiRowStore:      kpiRowStore,
		reportBuilder:    reportBuilder,
		kpiPath:          kpiPath,
		defaultUmbralP90: defaultUmbralP90,
	}
}

// Handle processes GET /api/report requests. The alert umbral defaults to
// the configured value and can be overridden per request with the
// umbral_p90 query parameter.
func (h *reportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	// Any float is a valid umbral; zero and negative just alert everything
	// with a positive rounded p90.
	umbralP90 := h.defaultUmbralP90
	if raw := r.URL.Query().Get("umbral_p90"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return errInvalidUmbralParam(raw, err)
		}
		umbralP90 = parsed
	}

	rows, err := h.kpiRowStore.Read(r.Context(), h.kpiPath)
	if err != nil {
		if errors.Is(err, filestorages.ErrFileNotFound) {
			return errKPITableNotFound(h.kpiPath, err)
		}
		return errInternalReportReadFailed(err)
	}

	report, err := h.reportBuilder.Build(r.Context(), rows, umbralP90)
	if err != nil {
		return errInternalReportReadFailed(err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	return json.NewEncoder(w).Encode(toReportResponse(report))
}

func toReportResponse(report *models.Report) reportResponse {
	endpoints := make([]endpointSummaryResponse, 0, len(report.Endpoints))
	for _, e := range report.Endpoints {
		endpoints = append(endpoints, endpointSummaryResponse{
			EndpointBase:  e.EndpointBase,
			RequestsTotal: e.RequestsTotal,
			Success2xx:    e.Success2xx,
			Client4xx:     e.Client4xx,
			Server5xx:     e.Server5xx,
			AvgElapsedMs:  e.AvgElapsedMs,
			P90ElapsedMs:  e.P90ElapsedMs,
			PctSuccess:    e.PctSuccess,
			PctClient4xx:  e.PctClient4xx,
			PctServer5xx:  e.PctServer5xx,
			AlertaP90:     e.AlertLabel(),
		})
	}
	return reportResponse{
		UmbralP90: report.UmbralP90,
		Global: globalMetricsResponse{
			Total:      report.Global.Total,
			PctSuccess: report.Global.PctSuccess,
			PctErrors:  report.Global.PctErrors,
			P90Global:  report.Global.P90Global,
		},
		Endpoints: endpoints,
	}
}
