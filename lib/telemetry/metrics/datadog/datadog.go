package datadog

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"time"

	"github.com/DataDog/datadog-go/v5/statsd"

	"github.com/artie-labs/sampler/lib/telemetry/metrics/base"
)

// NewDatadogClient builds a statsd client from the provider settings. [runTags] are attached to every metric on top of the configured tags.
func NewDatadogClient(rawSettings map[string]any, runTags map[string]string) (base.Client, error) {
	cfg, err := parseSettings(rawSettings)
	if err != nil {
		return nil, err
	}

	tags := append(slices.Clone(cfg.Tags), toDatadogTags(runTags)...)
	client, err := statsd.New(cfg.Addr, statsd.WithNamespace(cfg.Namespace), statsd.WithTags(tags))
	if err != nil {
		return nil, fmt.Errorf("failed to create statsd client for %q: %w", cfg.Addr, err)
	}

	slog.Debug("Datadog client created", slog.String("addr", cfg.Addr), slog.String("namespace", cfg.Namespace), slog.Any("tags", tags))
	return &statsClient{client: client, rate: cfg.SampleRate}, nil
}

type statsClient struct {
	client *statsd.Client
	rate   float64
}

func (s *statsClient) Timing(name string, value time.Duration, tags map[string]string) {
	_ = s.client.Timing(name, value, toDatadogTags(tags), s.rate)
}

func (s *statsClient) Incr(name string, tags map[string]string) {
	_ = s.client.Incr(name, toDatadogTags(tags), s.rate)
}

func (s *statsClient) Count(name string, value int64, tags map[string]string) {
	_ = s.client.Count(name, value, toDatadogTags(tags), s.rate)
}

func (s *statsClient) Gauge(name string, value float64, tags map[string]string) {
	_ = s.client.Gauge(name, value, toDatadogTags(tags), s.rate)
}

func (s *statsClient) Flush() error {
	return s.client.Flush()
}

// toDatadogTags converts tags to key:value pairs, sorted by key.
func toDatadogTags(tags map[string]string) []string {
	var out []string
	for _, key := range slices.Sorted(maps.Keys(tags)) {
		out = append(out, fmt.Sprintf("%s:%s", key, tags[key]))
	}

	return out
}
