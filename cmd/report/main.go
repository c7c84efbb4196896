package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"kpi-pipeline/internal/reports"
	"kpi-pipeline/internal/shared/configs"
	"kpi-pipeline/internal/shared/filestorages"
	"kpi-pipeline/internal/shared/loggers"
	"kpi-pipeline/internal/shared/metrics"
	"kpi-pipeline/internal/shared/ulid"
	"kpi-pipeline/internal/stores"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "report failed: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("report", pflag.ContinueOnError)
	input := flags.String("input", "", "path to the KPI CSV table (required)")
	output := flags.String("output", "", "directory for the HTML report (required)")
	umbralP90 := flags.Float64("umbral_p90", 0, "p90 latency alert umbral in ms (required)")
	configPath := flags.String("config", "", "path to YAML config file (optional)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *input == "" {
		return errors.New("--input is required")
	}
	if *output == "" {
		return errors.New("--output is required")
	}
	if !flags.Changed("umbral_p90") {
		return errors.New("--umbral_p90 is required")
	}

	cfg, err := configs.LoadConfig(*configPath)
	if err != nil {
		return err
	}

	logger, err := loggers.New(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	runID := ulid.NewULID()
	logger = logger.With().
		Str(loggers.FieldApp, "kpi-pipeline").
		Str(loggers.FieldComponent, "report").
		Str(loggers.FieldRunID, runID).
		Logger()
	ctx := logger.WithContext(context.Background())

	fileStore := filestorages.NewFileStore()

	rows, err := stores.NewKPIRowStore(fileStore).Read(ctx, *input)
	if err != nil {
		return err
	}

	builder := reports.NewReportBuilder(reports.NewEndpointRolluper())
	report, err := builder.Build(ctx, rows, *umbralP90)
	if err != nil {
		return err
	}

	renderer, err := reports.NewHTMLRenderer(fileStore)
	if err != nil {
		return err
	}
	if err := renderer.Render(ctx, report, *output); err != nil {
		return err
	}

	alerted := 0
	for _, endpoint := range report.Endpoints {
		if endpoint.AlertP90 {
			alerted++
			logger.Warn().
				Str("endpoint_base", endpoint.EndpointBase).
				Float64("p90_elapsed_ms", endpoint.P90ElapsedMs).
				Float64("umbral_p90", *umbralP90).
				Msg("endpoint p90 over umbral")
		}
	}

	logger.Info().
		Str(loggers.FieldInputPath, *input).
		Str(loggers.FieldOutputPath, *output).
		Int(loggers.FieldEndpoints, len(report.Endpoints)).
		Int("alerted", alerted).
		Msg("report written")

	if cfg.Metrics.PushGatewayURL != "" {
		if err := metrics.PushAll(cfg.Metrics.PushGatewayURL, "report", runID); err != nil {
			logger.Warn().Err(err).Msg("metrics push failed")
		}
	}
	return nil
}
