package gcslib

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const jsonContentType = "application/json"

type GCSClient struct {
	client *storage.Client
}

func NewGCSClient(client *storage.Client) GCSClient {
	return GCSClient{
		client: client,
	}
}

// NewStorageClient will use [pathToCredentials] if set, else it falls back to application default credentials.
func NewStorageClient(ctx context.Context, pathToCredentials string) (*storage.Client, error) {
	var opts []option.ClientOption
	if pathToCredentials != "" {
		opts = append(opts, option.WithCredentialsFile(pathToCredentials))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}

	return client, nil
}

func (g GCSClient) UploadLocalFileToGCS(ctx context.Context, bucket, objectKey, fp string) (string, error) {
	file, err := os.Open(fp)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	writer := g.client.Bucket(bucket).Object(objectKey).NewWriter(ctx)
	writer.ContentType = jsonContentType

	if _, err = io.Copy(writer, file); err != nil {
		_ = writer.Close()
		return "", fmt.Errorf("failed to write file to GCS: %w", err)
	}

	if err = writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close GCS writer: %w", err)
	}

	return fmt.Sprintf("gs://%s/%s", bucket, objectKey), nil
}

func (g GCSClient) Close() error {
	return g.client.Close()
}

// IsRetryableErr returns false for client errors other than rate limiting.
func IsRetryableErr(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}

	return true
}
