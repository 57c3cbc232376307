package metrics

import (
	"log/slog"
	"slices"

	"github.com/artie-labs/sampler/lib/config"
	"github.com/artie-labs/sampler/lib/config/constants"
	"github.com/artie-labs/sampler/lib/telemetry/metrics/base"
	"github.com/artie-labs/sampler/lib/telemetry/metrics/datadog"
)

var supportedExporterKinds = []constants.ExporterKind{constants.Datadog}

func exporterKindValid(kind constants.ExporterKind) bool {
	return slices.Contains(supportedExporterKinds, kind)
}

// runTags are attached to every metric emitted during this run.
func runTags(cfg config.Config) map[string]string {
	return map[string]string{"destination": string(cfg.Publish.Destination)}
}

// LoadExporter returns the configured metrics client. Metrics never fail a run, so any problem falls back to [NullMetricsProvider].
func LoadExporter(cfg config.Config) base.Client {
	kind := cfg.Telemetry.Metrics.Provider
	if !exporterKindValid(kind) {
		slog.Debug("Invalid or no exporter kind passed in, skipping...", slog.Any("exporterKind", kind))
		return NullMetricsProvider{}
	}

	statsClient, err := datadog.NewDatadogClient(cfg.Telemetry.Metrics.Settings, runTags(cfg))
	if err != nil {
		slog.Error("Metrics client error", slog.Any("err", err), slog.Any("provider", kind))
		return NullMetricsProvider{}
	}

	slog.Info("Metrics client loaded", slog.Any("provider", kind))
	return statsClient
}
