package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"kpi-pipeline/internal/generators"
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
		fmt.Fprintf(os.Stderr, "generate failed: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("generate", pflag.ContinueOnError)
	nRecords := flags.Int("n_records", 0, "number of synthetic records to produce (required)")
	output := flags.String("output", "", "path for the JSONL output (required)")
	seed := flags.Int64("seed", 0, "RNG seed; 0 derives one from the clock")
	days := flags.Int("days", 0, "trailing window for timestamps; 0 uses the configured default")
	configPath := flags.String("config", "", "path to YAML config file (optional)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	if *nRecords <= 0 {
		return errors.New("--n_records is required and must be positive")
	}
	if *output == "" {
		return errors.New("--output is required")
	}

	cfg, err := configs.LoadConfig(*configPath)
	if err != nil {
		return err
	}
	if *days <= 0 {
		*days = cfg.Generator.Days
	}
	if !flags.Changed("seed") {
		*seed = time.Now().UnixNano()
	}

	logger, err := loggers.New(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	runID := ulid.NewULID()
	logger = logger.With().
		Str(loggers.FieldApp, "kpi-pipeline").
		Str(loggers.FieldComponent, "generate").
		Str(loggers.FieldRunID, runID).
		Logger()
	ctx := logger.WithContext(context.Background())

	records := generators.NewRecordGenerator(*seed).Generate(ctx, *nRecords, *days)

	fileStore := filestorages.NewFileStore()
	if err := stores.NewRecordLogStore(fileStore).Write(ctx, *output, records); err != nil {
		return err
	}

	logger.Info().
		Str(loggers.FieldOutputPath, *output).
		Int(loggers.FieldRecords, len(records)).
		Int64("seed", *seed).
		Msg("synthetic log written")

	if cfg.Metrics.PushGatewayURL != "" {
		if err := metrics.PushAll(cfg.Metrics.PushGatewayURL, "generate", runID); err != nil {
			logger.Warn().Err(err).Msg("metrics push failed")
		}
	}
	return nil
}
