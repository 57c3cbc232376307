package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/artie-labs/sampler/lib/config/constants"
	"github.com/artie-labs/sampler/lib/numbers"
	"github.com/artie-labs/sampler/lib/stringutil"
)

const (
	publishMaxAttemptsStart = 1
	publishMaxAttemptsEnd   = 10
)

func readFileToConfig(pathToConfig string) (*Config, error) {
	file, err := os.Open(pathToConfig)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	var config Config
	if err = yaml.Unmarshal(bytes, &config); err != nil {
		return nil, err
	}

	return &config, nil
}

// applyDefaults fills in everything the config file and flags left unset.
func (c *Config) applyDefaults() {
	if c.InputPath == "" {
		c.InputPath = constants.DefaultInputPath
	}

	if c.OutputPath == "" {
		c.OutputPath = constants.DefaultOutputPath
	}

	if c.Publish.Destination == "" {
		c.Publish.Destination = constants.Local
	}

	if c.Publish.MaxAttempts == 0 {
		c.Publish.MaxAttempts = constants.DefaultPublishMaxAttempts
	}
}

// Validate will check the sampling settings and, if set, the publish destination.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("config is nil")
	}

	if stringutil.Empty(c.InputPath, c.OutputPath) {
		return fmt.Errorf("config is invalid, input and output paths must be set, input: %q, output: %q", c.InputPath, c.OutputPath)
	}

	if c.InputPath == c.OutputPath {
		return fmt.Errorf("config is invalid, input and output paths must differ, path: %q", c.InputPath)
	}

	if fraction := c.Fraction(); !numbers.BetweenEq(0, 1, fraction) {
		return fmt.Errorf("config is invalid, sample fraction is outside of our range: %v, expected start: 0, end: 1", fraction)
	}

	if !constants.IsValidDestination(c.Publish.Destination) {
		return fmt.Errorf("config is invalid, publish destination: %q is invalid", c.Publish.Destination)
	}

	if c.Publish.Destination != constants.Local {
		if c.Publish.Bucket == "" {
			return fmt.Errorf("config is invalid, bucket is required for publishing, publish: %s", c.Publish.String())
		}

		if (c.Publish.AwsAccessKeyID == "") != (c.Publish.AwsSecretAccessKey == "") {
			return fmt.Errorf("config is invalid, awsAccessKeyID and awsSecretAccessKey must be set together")
		}

		if c.Publish.HasStaticAWSCredentials() && c.Publish.Region == "" {
			return fmt.Errorf("config is invalid, region is required when static AWS credentials are set")
		}

		if !numbers.BetweenEq(publishMaxAttemptsStart, publishMaxAttemptsEnd, c.Publish.MaxAttempts) {
			return fmt.Errorf("config is invalid, publish max attempts is outside of our range: %d, expected start: %d, end: %d",
				c.Publish.MaxAttempts, publishMaxAttemptsStart, publishMaxAttemptsEnd)
		}
	}

	return nil
}
