package storage

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/aws/smithy-go/logging"
)

// s3Client implements Client on top of aws-sdk-go-v2.
type s3Client struct {
	client  *s3.Client
	presign *s3.PresignClient
}

func newS3Client(cfg Config, transport http.RoundTripper) *s3Client {
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		HTTPClient:  &http.Client{Transport: transport},
		Logger:      logging.Nop{},
	}
	// S3-compatible services (MinIO, LocalStack) need path-style addressing.
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(endpointURL(cfg.Endpoint, cfg.UseSSL))
		opts.UsePathStyle = true
	}

	client := s3.New(opts)
	return &s3Client{
		client:  client,
		presign: s3.NewPresignClient(client),
	}
}

func endpointURL(endpoint string, useSSL bool) string {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return endpoint
	}
	if useSSL {
		return "https://" + endpoint
	}
	return "http://" + endpoint
}

func (c *s3Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	_, err := c.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(bucketName)})
	if err == nil {
		return true, nil
	}

	var notFound *types.NotFound
	if errors.As(err, &notFound) {
		return false, nil
	}
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) && apiErr.ErrorCode() == "NotFound" {
		return false, nil
	}
	return false, err
}

func (c *s3Client) PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error) {
	input := &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectName),
	}
	if v := reqParams.Get("response-content-disposition"); v != "" {
		input.ResponseContentDisposition = aws.String(v)
	}
	if v := reqParams.Get("response-content-type"); v != "" {
		input.ResponseContentType = aws.String(v)
	}

	req, err := c.presign.PresignGetObject(ctx, input, s3.WithPresignExpires(expires))
	if err != nil {
		return nil, err
	}
	return url.Parse(req.URL)
}

func (c *s3Client) ListKeys(ctx context.Context, bucketName, prefix string) ([]string, error) {
	input := &s3.ListObjectsV2Input{Bucket: aws.String(bucketName)}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	var keys []string
	paginator := s3.NewListObjectsV2Paginator(c.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, obj := range page.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
	}
	return keys, nil
}
