package sampler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/artie-labs/sampler/lib/csvreader"
	"github.com/artie-labs/sampler/lib/fileutil"
	"github.com/artie-labs/sampler/lib/heartbeats"
	"github.com/artie-labs/sampler/lib/jsonutil"
	"github.com/artie-labs/sampler/lib/numbers"
	"github.com/artie-labs/sampler/lib/random"
	"github.com/artie-labs/sampler/lib/telemetry/metrics"
	"github.com/artie-labs/sampler/lib/telemetry/metrics/base"
	"github.com/artie-labs/sampler/lib/typing"
	"github.com/artie-labs/sampler/lib/typing/converters"
	"github.com/artie-labs/sampler/models"
)

const outputFileMode = 0o644

type Args struct {
	InputPath      string
	OutputPath     string
	SampleFraction float64
	Seed           uint64

	// Source is optional, if it's not set we'll use a generator seeded with [Args.Seed].
	Source random.Source
	// MetricsClient is optional.
	MetricsClient base.Client
}

func (a Args) source() random.Source {
	if a.Source != nil {
		return a.Source
	}

	return random.NewSeeded(a.Seed)
}

func (a Args) metricsClient() base.Client {
	if a.MetricsClient != nil {
		return a.MetricsClient
	}

	return metrics.NullMetricsProvider{}
}

func (a Args) Validate() error {
	if a.InputPath == "" || a.OutputPath == "" {
		return fmt.Errorf("input and output paths must be set")
	}

	if filepath.Clean(a.InputPath) == filepath.Clean(a.OutputPath) {
		return fmt.Errorf("input and output paths must differ, path: %q", a.InputPath)
	}

	if !numbers.BetweenEq(0, 1, a.SampleFraction) {
		return fmt.Errorf("sample fraction must be between 0 and 1, got: %v", a.SampleFraction)
	}

	return nil
}

type Result struct {
	OutputPath string
	Summary    models.Summary
}

func (r Result) RowsWritten() int {
	return r.Summary.RowsWritten
}

// Run samples the input file and writes the sample to the output path. Nothing is written unless the whole input was read.
func Run(ctx context.Context, args Args) (Result, error) {
	if err := args.Validate(); err != nil {
		return Result{}, fmt.Errorf("invalid args: %w", err)
	}

	start := time.Now()
	var rowsRead atomic.Int64
	stopHeartbeats := heartbeats.New(heartbeats.DefaultInitialDelay, heartbeats.DefaultInterval, "sample", rowsRead.Load).Start()
	sample, summary, err := buildSample(args.InputPath, args.SampleFraction, args.source(), &rowsRead)
	stopHeartbeats()
	if err != nil {
		return Result{}, err
	}

	if err = ctx.Err(); err != nil {
		return Result{}, err
	}

	bytes, err := jsonutil.MarshalCompact(sample)
	if err != nil {
		return Result{}, fmt.Errorf("failed to encode sample: %w", err)
	}

	if err = fileutil.WriteFileAtomic(args.OutputPath, bytes, outputFileMode); err != nil {
		return Result{}, fmt.Errorf("failed to write output %q: %w", args.OutputPath, err)
	}

	slog.Info(fmt.Sprintf("Wrote %d rows to %s", summary.RowsWritten, args.OutputPath),
		slog.Int("rows", summary.RowsWritten),
		slog.String("path", args.OutputPath),
		slog.Int("rowsRead", summary.RowsRead),
		slog.Int("gainedPct", summary.GainedPercentage()),
		slog.Int("lostPct", summary.LostPercentage()),
		slog.Int("noChangePct", summary.NoChangePercentage()),
		slog.Any("nullValues", summary.NullValues),
	)

	emitMetrics(args.metricsClient(), summary, time.Since(start))
	return Result{OutputPath: args.OutputPath, Summary: summary}, nil
}

func buildSample(inputPath string, fraction float64, source random.Source, rowsRead *atomic.Int64) (models.Sample, models.Summary, error) {
	reader, err := csvreader.NewFilePath(inputPath)
	if err != nil {
		return nil, models.Summary{}, fmt.Errorf("failed to open input %q: %w", inputPath, err)
	}

	defer reader.Close()

	slog.Debug("Read input header", slog.String("path", inputPath), slog.Any("columns", reader.Header()))
	var missingColumns []string
	for _, name := range RequiredColumns() {
		if !reader.HasColumn(name) {
			missingColumns = append(missingColumns, name)
		}
	}

	if len(missingColumns) > 0 {
		return nil, models.Summary{}, fmt.Errorf("failed to validate input %q: %w", inputPath, typing.NewSchemaError(missingColumns))
	}

	sample := models.Sample{}
	summary := models.NewSummary()
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, models.Summary{}, fmt.Errorf("failed to read input %q: %w", inputPath, err)
		}

		summary.RowsRead++
		rowsRead.Add(1)
		// Draw for every row so that the selection only depends on the seed and the row's position.
		if source.Float64() > fraction {
			continue
		}

		item := project(row, &summary)
		summary.Observe(item)
		sample = append(sample, item)
	}

	return sample, summary, nil
}

func project(row csvreader.Row, summary *models.Summary) models.Item {
	var item models.Item
	for _, col := range columns {
		value, _ := row.Get(col.name)
		parsed, err := converters.Float64Converter{}.Convert(value)
		if err != nil {
			summary.ObserveNull(col.key)
			continue
		}

		col.set(&item, &parsed)
	}

	return item
}

func emitMetrics(client base.Client, summary models.Summary, duration time.Duration) {
	client.Count("sampler.rows_read", int64(summary.RowsRead), nil)
	client.Count("sampler.rows_written", int64(summary.RowsWritten), nil)
	for key, count := range summary.NullValues {
		client.Count("sampler.null_values", int64(count), map[string]string{"key": key})
	}

	client.Gauge("sampler.gained_pct", float64(summary.GainedPercentage()), nil)
	client.Gauge("sampler.lost_pct", float64(summary.LostPercentage()), nil)
	client.Timing("sampler.duration", duration, nil)
}
