package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/jessevdk/go-flags"

	"github.com/artie-labs/sampler/lib/config"
	"github.com/artie-labs/sampler/lib/logger"
	"github.com/artie-labs/sampler/lib/telemetry/metrics"
	"github.com/artie-labs/sampler/processes/publish"
	"github.com/artie-labs/sampler/processes/sampler"
)

func main() {
	settings, err := config.LoadSettings(os.Args[1:])
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			// go-flags already printed the usage.
			os.Exit(0)
		}
		logger.Fatal("Failed to load settings", slog.Any("err", err))
	}

	// Initialize default logger
	_logger, usingSentry := logger.NewLogger(settings)
	slog.SetDefault(_logger.With(slog.String("runID", uuid.NewString())))
	if usingSentry {
		slog.Debug("Sentry logging enabled")
	}

	ctx := context.Background()
	metricsClient := metrics.LoadExporter(settings.Config)
	defer func() {
		if err := metricsClient.Flush(); err != nil {
			slog.Warn("Failed to flush metrics", slog.Any("err", err))
		}
	}()

	slog.Debug("Config is loaded",
		slog.String("input", settings.Config.InputPath),
		slog.String("output", settings.Config.OutputPath),
		slog.Float64("sampleFraction", settings.Config.Fraction()),
		slog.Uint64("seed", settings.Config.RandomSeed()),
		slog.String("publish", settings.Config.Publish.String()),
	)

	result, err := sampler.Run(ctx, sampler.Args{
		InputPath:      settings.Config.InputPath,
		OutputPath:     settings.Config.OutputPath,
		SampleFraction: settings.Config.Fraction(),
		Seed:           settings.Config.RandomSeed(),
		MetricsClient:  metricsClient,
	})
	if err != nil {
		_ = metricsClient.Flush()
		logger.Fatal("Failed to sample households", slog.Any("err", err))
	}

	if _, err = publish.Publish(ctx, settings.Config.Publish, result.OutputPath, metricsClient); err != nil {
		_ = metricsClient.Flush()
		logger.Fatal("Failed to publish sample", slog.Any("err", err))
	}
}
