package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artie-labs/sampler/lib/config/constants"
	"github.com/artie-labs/sampler/lib/ptr"
)

func writeConfigFile(t *testing.T, contents string) string {
	fp := filepath.Join(t.TempDir(), "config.yaml")
	assert.NoError(t, os.WriteFile(fp, []byte(contents), 0o644))
	return fp
}

func TestReadNonExistentFile(t *testing.T) {
	_, err := readFileToConfig(filepath.Join(t.TempDir(), "213213231312"))
	assert.ErrorContains(t, err, "no such file or directory")
}

func TestReadFileNotYAML(t *testing.T) {
	_, err := readFileToConfig(writeConfigFile(t, "foo foo"))
	assert.ErrorContains(t, err, "yaml: unmarshal errors", "failed to read config file, because it's not proper yaml.")
}

func TestReadFileToConfig(t *testing.T) {
	fp := writeConfigFile(t, `
input: data/in.csv
output: data/out.json
sampleFraction: 0.5
seed: 7
publish:
 destination: s3
 bucket: charts
 prefix: households
 region: us-east-1
reporting:
 sentry:
  dsn: abc123
telemetry:
 metrics:
  provider: datadog
  settings:
   namespace: sampler.
   aNumber: 0.88
   tags:
    - env:bar
`)

	config, err := readFileToConfig(fp)
	assert.NoError(t, err)
	assert.Equal(t, "data/in.csv", config.InputPath)
	assert.Equal(t, "data/out.json", config.OutputPath)
	assert.Equal(t, 0.5, config.Fraction())
	assert.Equal(t, uint64(7), config.RandomSeed())
	assert.Equal(t, constants.S3, config.Publish.Destination)
	assert.Equal(t, "charts", config.Publish.Bucket)
	assert.Equal(t, "households", config.Publish.Prefix)
	assert.Equal(t, "us-east-1", config.Publish.Region)
	assert.Equal(t, "abc123", config.Reporting.Sentry.DSN)
	assert.Equal(t, constants.Datadog, config.Telemetry.Metrics.Provider)
	assert.Equal(t, map[string]any{
		"namespace": "sampler.",
		"aNumber":   0.88,
		"tags":      []any{"env:bar"},
	}, config.Telemetry.Metrics.Settings)
}

func TestConfig_Defaults(t *testing.T) {
	var cfg Config
	assert.Equal(t, 0.25, cfg.Fraction())
	assert.Equal(t, uint64(42), cfg.RandomSeed())

	cfg.applyDefaults()
	assert.Equal(t, constants.DefaultInputPath, cfg.InputPath)
	assert.Equal(t, constants.DefaultOutputPath, cfg.OutputPath)
	assert.Equal(t, constants.Local, cfg.Publish.Destination)
	assert.Equal(t, constants.DefaultPublishMaxAttempts, cfg.Publish.MaxAttempts)
	assert.NoError(t, cfg.Validate())

	{
		// An explicit zero fraction is kept.
		cfg := Config{SampleFraction: ptr.ToFloat64(0)}
		assert.Equal(t, float64(0), cfg.Fraction())
	}
}

func TestConfig_Validate(t *testing.T) {
	{
		// Nil config
		var cfg *Config
		assert.ErrorContains(t, cfg.Validate(), "config is nil")
	}
	{
		// Missing paths
		cfg := Config{InputPath: "in.csv"}
		assert.ErrorContains(t, cfg.Validate(), "input and output paths must be set")
	}
	{
		// Same paths
		cfg := Config{InputPath: "in.csv", OutputPath: "in.csv"}
		assert.ErrorContains(t, cfg.Validate(), "input and output paths must differ")
	}
	{
		// Fraction out of range
		for _, fraction := range []float64{-0.01, 1.01, 25} {
			cfg := Config{InputPath: "in.csv", OutputPath: "out.json", SampleFraction: ptr.ToFloat64(fraction)}
			cfg.applyDefaults()
			assert.ErrorContains(t, cfg.Validate(), "sample fraction is outside of our range")
		}
	}
	{
		// Fraction boundaries are valid
		for _, fraction := range []float64{0, 1} {
			cfg := Config{InputPath: "in.csv", OutputPath: "out.json", SampleFraction: ptr.ToFloat64(fraction)}
			cfg.applyDefaults()
			assert.NoError(t, cfg.Validate())
		}
	}
	{
		// Invalid destination
		cfg := Config{InputPath: "in.csv", OutputPath: "out.json", Publish: Publish{Destination: "ftp"}}
		cfg.applyDefaults()
		assert.ErrorContains(t, cfg.Validate(), `publish destination: "ftp" is invalid`)
	}
	{
		// Remote destination needs a bucket
		cfg := Config{InputPath: "in.csv", OutputPath: "out.json", Publish: Publish{Destination: constants.GCS}}
		cfg.applyDefaults()
		assert.ErrorContains(t, cfg.Validate(), "bucket is required for publishing")

		cfg.Publish.Bucket = "charts"
		assert.NoError(t, cfg.Validate())

		cfg.Publish.MaxAttempts = 11
		assert.ErrorContains(t, cfg.Validate(), "publish max attempts is outside of our range")
	}
	{
		// Static AWS credentials
		cfg := Config{InputPath: "in.csv", OutputPath: "out.json", Publish: Publish{Destination: constants.S3, Bucket: "charts", AwsAccessKeyID: "id"}}
		cfg.applyDefaults()
		assert.ErrorContains(t, cfg.Validate(), "awsAccessKeyID and awsSecretAccessKey must be set together")

		cfg.Publish.AwsSecretAccessKey = "secret"
		assert.True(t, cfg.Publish.HasStaticAWSCredentials())
		assert.ErrorContains(t, cfg.Validate(), "region is required when static AWS credentials are set")

		cfg.Publish.Region = "us-east-1"
		assert.NoError(t, cfg.Validate())
		assert.NotContains(t, cfg.Publish.String(), "secret")
	}
}
