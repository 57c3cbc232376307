package awslib

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
)

const jsonContentType = "application/json"

// nonRetryableErrorCodes will not go away by trying again.
var nonRetryableErrorCodes = []string{
	"AccessDenied",
	"InvalidAccessKeyId",
	"InvalidBucketName",
	"NoSuchBucket",
	"SignatureDoesNotMatch",
}

type S3Client struct {
	client *s3.Client
}

func NewS3Client(cfg aws.Config) S3Client {
	return S3Client{
		client: s3.NewFromConfig(cfg),
	}
}

func (s S3Client) UploadLocalFileToS3(ctx context.Context, bucket, objectKey, fp string) (string, error) {
	file, err := os.Open(fp)
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}

	defer file.Close()

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(objectKey),
		Body:        file,
		ContentType: aws.String(jsonContentType),
	})

	if err != nil {
		return "", fmt.Errorf("failed to upload file to s3: %w", err)
	}

	return fmt.Sprintf("s3://%s/%s", bucket, objectKey), nil
}

// IsRetryableErr returns false for S3 errors that point at a configuration problem.
func IsRetryableErr(err error) bool {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return !slices.Contains(nonRetryableErrorCodes, apiErr.ErrorCode())
	}

	return true
}
