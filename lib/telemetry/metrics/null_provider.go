package metrics

import "time"

// NullMetricsProvider drops every metric, it's used when no provider is configured.
type NullMetricsProvider struct{}

func (NullMetricsProvider) Timing(string, time.Duration, map[string]string) {}
func (NullMetricsProvider) Incr(string, map[string]string)                  {}
func (NullMetricsProvider) Count(string, int64, map[string]string)          {}
func (NullMetricsProvider) Gauge(string, float64, map[string]string)        {}
func (NullMetricsProvider) Flush() error                                    { return nil }
