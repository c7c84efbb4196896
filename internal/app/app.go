package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	internalhttp "kpi-pipeline/internal/http"
	"kpi-pipeline/internal/reports"
	"kpi-pipeline/internal/shared/configs"
	"kpi-pipeline/internal/shared/filestorages"
	"kpi-pipeline/internal/shared/loggers"
	"kpi-pipeline/internal/stores"
)

// App holds the report viewer dependencies and manages lifecycle.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	server    *http.Server
}

// New creates and initializes a new App instance.
func New(config *configs.Config) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	appLogger = appLogger.With().
		Str(loggers.FieldApp, "kpi-pipeline").
		Logger()

	// Initialize stores
	fileStore := filestorages.NewFileStore()
	kpiRowStore := stores.NewKPIRowStore(fileStore)

	// Initialize report builder
	rolluper := reports.NewEndpointRolluper()
	reportBuilder := reports.NewReportBuilder(rolluper)

	// Initialize http router
	httpLogger := appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(
		kpiRowStore,
		reportBuilder,
		config.Report.KPIPath,
		config.Report.RootDir,
		config.Report.UmbralP90,
		httpLogger,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(config.Server.ReadHeaderTimeout) * time.Second,
		ReadTimeout:       time.Duration(config.Server.ReadTimeout) * time.Second,
		WriteTimeout:      time.Duration(config.Server.WriteTimeout) * time.Second,
		IdleTimeout:       time.Duration(config.Server.IdleTimeout) * time.Second,
	}

	return &App{
		config:    config,
		appLogger: appLogger,
		server:    server,
	}, nil
}

// Start starts the HTTP server in a blocking manner.
func (app *App) Start() error {
	app.appLogger.Info().
		Msgf("Starting kpi-pipeline report viewer on port %d (log_level=%s, kpi_path=%s, report_root_dir=%s)",
			app.config.Server.Port,
			app.config.Log.Level,
			app.config.Report.KPIPath,
			app.config.Report.RootDir)

	return app.server.ListenAndServe()
}

// Shutdown gracefully shuts down the application.
func (app *App) Shutdown(ctx context.Context) error {
	app.appLogger.Info().Msg("Shutting down server...")
	if err := app.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	app.appLogger.Info().Msg("Server stopped")

	return nil
}
