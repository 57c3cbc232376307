package awslib

import (
	"cmp"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"github.com/artie-labs/sampler/lib/environ"
)

const regionEnvVar = "AWS_REGION"

func NewConfigWithCredentialsAndRegion(credentials credentials.StaticCredentialsProvider, region string) aws.Config {
	return aws.Config{
		Region:      region,
		Credentials: credentials,
	}
}

// NewDefaultConfig loads credentials from the default chain. If region is empty, AWS_REGION must be set.
func NewDefaultConfig(ctx context.Context, region string) (aws.Config, error) {
	if region == "" {
		if err := environ.MustGetEnv(regionEnvVar); err != nil {
			return aws.Config{}, fmt.Errorf("region is not configured: %w", err)
		}
	}

	return config.LoadDefaultConfig(ctx, config.WithRegion(cmp.Or(region, environ.GetOrDefault(regionEnvVar, ""))))
}
