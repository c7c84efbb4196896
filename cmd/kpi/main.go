package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"kpi-pipeline/internal/aggregators"
	"kpi-pipeline/internal/ingestors"
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
		fmt.Fprintf(os.Stderr, "kpi failed: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("kpi", pflag.ContinueOnError)
	input := flags.String("input", "", "path to the JSONL transaction log (required)")
	output := flags.String("output", "", "path for the KPI CSV table (required)")
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
		Str(loggers.FieldComponent, "kpi").
		Str(loggers.FieldRunID, runID).
		Logger()
	ctx := logger.WithContext(context.Background())

	fileStore := filestorages.NewFileStore()

	// Missing input fails here, before anything is read or written.
	source, err := ingestors.NewJSONLReader(ctx, fileStore, *input)
	if err != nil {
		return err
	}

	rows, err := aggregators.NewKPIAggregator().Compute(ctx, source)
	if err != nil {
		return err
	}

	if err := stores.NewKPIRowStore(fileStore).Write(ctx, *output, rows); err != nil {
		return err
	}

	logger.Info().
		Str(loggers.FieldInputPath, *input).
		Str(loggers.FieldOutputPath, *output).
		Int(loggers.FieldGroups, len(rows)).
		Msg("kpi table written")

	pushMetrics(cfg, logger, runID)
	return nil
}

// pushMetrics delivers this run's metrics to the Pushgateway when one is
// configured. A failed push is logged, not fatal: the KPI output is already
// on disk.
func pushMetrics(cfg *configs.Config, logger loggers.Logger, runID string) {
	if cfg.Metrics.PushGatewayURL == "" {
		return
	}
	if err := metrics.PushAll(cfg.Metrics.PushGatewayURL, "kpi", runID); err != nil {
		logger.Warn().Err(err).Msg("metrics push failed")
	}
}
