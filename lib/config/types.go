package config

import (
	"fmt"

	"github.com/artie-labs/sampler/lib/config/constants"
)

type Sentry struct {
	DSN string `yaml:"dsn"`
}

type Reporting struct {
	Sentry *Sentry `yaml:"sentry"`
}

type Publish struct {
	Destination constants.DestinationKind `yaml:"destination"`
	Bucket      string                    `yaml:"bucket"`
	// Prefix is optional, the object key will be `prefix/<output file name>`.
	Prefix string `yaml:"prefix,omitempty"`
	// Region is only used by S3. If it's not set, we'll fall back to AWS_REGION.
	Region string `yaml:"region,omitempty"`
	// PathToCredentials is only used by GCS and is _optional_ if you have GOOGLE_APPLICATION_CREDENTIALS set as an env var.
	PathToCredentials string `yaml:"pathToCredentials,omitempty"`
	// AwsAccessKeyID and AwsSecretAccessKey are only used by S3, both must be set to skip the default credential chain.
	AwsAccessKeyID     string `yaml:"awsAccessKeyID,omitempty"`
	AwsSecretAccessKey string `yaml:"awsSecretAccessKey,omitempty"`
	MaxAttempts        int    `yaml:"maxAttempts,omitempty"`
}

func (p Publish) HasStaticAWSCredentials() bool {
	return p.AwsAccessKeyID != "" && p.AwsSecretAccessKey != ""
}

func (p Publish) String() string {
	return fmt.Sprintf("destination=%s, bucket=%s, prefix=%s", p.Destination, p.Bucket, p.Prefix)
}

type Metrics struct {
	Provider constants.ExporterKind `yaml:"provider"`
	Settings map[string]any         `yaml:"settings,omitempty"`
}

type Telemetry struct {
	Metrics Metrics `yaml:"metrics"`
}

type Config struct {
	InputPath  string `yaml:"input"`
	OutputPath string `yaml:"output"`

	// SampleFraction is a pointer so that an explicit 0 in the config file is not overwritten by the default.
	SampleFraction *float64 `yaml:"sampleFraction"`
	Seed           *uint64  `yaml:"seed"`

	Publish   Publish   `yaml:"publish"`
	Reporting Reporting `yaml:"reporting"`
	Telemetry Telemetry `yaml:"telemetry"`
}

func (c Config) Fraction() float64 {
	if c.SampleFraction == nil {
		return constants.DefaultSampleFraction
	}

	return *c.SampleFraction
}

func (c Config) RandomSeed() uint64 {
	if c.Seed == nil {
		return constants.DefaultSeed
	}

	return *c.Seed
}
