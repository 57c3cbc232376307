package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/credentials"

	"github.com/artie-labs/sampler/lib/awslib"
	"github.com/artie-labs/sampler/lib/config"
	"github.com/artie-labs/sampler/lib/config/constants"
	"github.com/artie-labs/sampler/lib/gcslib"
	"github.com/artie-labs/sampler/lib/jitter"
	"github.com/artie-labs/sampler/lib/retry"
	"github.com/artie-labs/sampler/lib/telemetry/metrics/base"
)

const jitterBaseMs = 500

// Uploader copies a local file to a bucket and returns the URI of the object. Close releases the underlying client.
type Uploader interface {
	Upload(ctx context.Context, bucket, objectKey, fp string) (string, error)
	IsRetryableErr(err error) bool
	Close() error
}

type s3Uploader struct {
	client awslib.S3Client
}

func (s s3Uploader) Upload(ctx context.Context, bucket, objectKey, fp string) (string, error) {
	return s.client.UploadLocalFileToS3(ctx, bucket, objectKey, fp)
}

func (s3Uploader) IsRetryableErr(err error) bool {
	return awslib.IsRetryableErr(err)
}

// Close is a no-op, the S3 client holds no resources that need releasing.
func (s3Uploader) Close() error {
	return nil
}

type gcsUploader struct {
	client gcslib.GCSClient
}

func (g gcsUploader) Upload(ctx context.Context, bucket, objectKey, fp string) (string, error) {
	return g.client.UploadLocalFileToGCS(ctx, bucket, objectKey, fp)
}

func (gcsUploader) IsRetryableErr(err error) bool {
	return gcslib.IsRetryableErr(err)
}

func (g gcsUploader) Close() error {
	return g.client.Close()
}

func NewUploader(ctx context.Context, cfg config.Publish) (Uploader, error) {
	switch cfg.Destination {
	case constants.S3:
		if cfg.HasStaticAWSCredentials() {
			creds := credentials.NewStaticCredentialsProvider(cfg.AwsAccessKeyID, cfg.AwsSecretAccessKey, "")
			return s3Uploader{client: awslib.NewS3Client(awslib.NewConfigWithCredentialsAndRegion(creds, cfg.Region))}, nil
		}

		awsCfg, err := awslib.NewDefaultConfig(ctx, cfg.Region)
		if err != nil {
			return nil, fmt.Errorf("failed to load aws config: %w", err)
		}
		return s3Uploader{client: awslib.NewS3Client(awsCfg)}, nil
	case constants.GCS:
		client, err := gcslib.NewStorageClient(ctx, cfg.PathToCredentials)
		if err != nil {
			return nil, err
		}
		return gcsUploader{client: gcslib.NewGCSClient(client)}, nil
	}

	return nil, fmt.Errorf("unsupported destination: %q", cfg.Destination)
}

func ObjectKey(prefix, fp string) string {
	objectKey := filepath.Base(fp)
	if prefix != "" {
		objectKey = fmt.Sprintf("%s/%s", prefix, objectKey)
	}

	return objectKey
}

// Publish makes the sample available to the front end. For a local destination the file is already in place.
func Publish(ctx context.Context, cfg config.Publish, fp string, metricsClient base.Client) (string, error) {
	if cfg.Destination == constants.Local || cfg.Destination == "" {
		return fp, nil
	}

	uploader, err := NewUploader(ctx, cfg)
	if err != nil {
		return "", err
	}

	return uploadAndClose(ctx, uploader, cfg, fp, metricsClient)
}

func uploadAndClose(ctx context.Context, uploader Uploader, cfg config.Publish, fp string, metricsClient base.Client) (string, error) {
	defer func() {
		if err := uploader.Close(); err != nil {
			slog.Warn("Failed to close uploader", slog.Any("err", err), slog.String("destination", string(cfg.Destination)))
		}
	}()

	return Upload(ctx, uploader, cfg, fp, metricsClient)
}

func Upload(ctx context.Context, uploader Uploader, cfg config.Publish, fp string, metricsClient base.Client) (string, error) {
	retryCfg := retry.NewRetryConfig(retry.NewRetryConfigArgs{
		JitterBaseMs: jitterBaseMs,
		JitterMaxMs:  jitter.DefaultMaxMs,
		MaxAttempts:  cfg.MaxAttempts,
		IsRetryableErr: func(err error) bool {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return false
			}
			return uploader.IsRetryableErr(err)
		},
	})

	tags := map[string]string{"destination": string(cfg.Destination)}
	uri, err := retry.WithRetries(ctx, retryCfg, func(_ int, _ error) (string, error) {
		return uploader.Upload(ctx, cfg.Bucket, ObjectKey(cfg.Prefix, fp), fp)
	})
	if err != nil {
		metricsClient.Incr("publish.failure", tags)
		return "", fmt.Errorf("failed to publish %q to %s: %w", fp, cfg.Destination, err)
	}

	metricsClient.Incr("publish.success", tags)
	slog.Info("Published sample", slog.String("uri", uri), slog.String("destination", string(cfg.Destination)))
	return uri, nil
}
