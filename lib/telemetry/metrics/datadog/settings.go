package datadog

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/artie-labs/sampler/lib/environ"
)

const (
	// DefaultNamespace is prefixed to every metric name.
	DefaultNamespace = "sampler."
	// DefaultAddr is where the agent listens on a single host.
	DefaultAddr = "127.0.0.1:8125"
	// DefaultSampleRate sends every metric.
	DefaultSampleRate = 1.0

	hostEnvVar = "TELEMETRY_HOST"
	portEnvVar = "TELEMETRY_PORT"
)

type settings struct {
	Addr       string   `yaml:"addr"`
	Namespace  string   `yaml:"namespace"`
	Tags       []string `yaml:"tags"`
	SampleRate float64  `yaml:"sampling"`
}

// parseSettings decodes the free-form provider settings from the config file.
// YAML gives us nested values as any, so we round trip them through the same library to get a typed struct.
func parseSettings(raw map[string]any) (settings, error) {
	var out settings
	if len(raw) > 0 {
		bytes, err := yaml.Marshal(raw)
		if err != nil {
			return settings{}, fmt.Errorf("failed to marshal datadog settings: %w", err)
		}

		if err = yaml.Unmarshal(bytes, &out); err != nil {
			return settings{}, fmt.Errorf("failed to parse datadog settings: %w", err)
		}
	}

	if out.Addr == "" {
		out.Addr = DefaultAddr
	}

	if host, port := environ.GetOrDefault(hostEnvVar, ""), environ.GetOrDefault(portEnvVar, ""); host != "" && port != "" {
		out.Addr = fmt.Sprintf("%s:%s", host, port)
	}

	if out.Namespace == "" {
		out.Namespace = DefaultNamespace
	}

	if out.SampleRate <= 0 || out.SampleRate > 1 {
		out.SampleRate = DefaultSampleRate
	}

	return out, nil
}
