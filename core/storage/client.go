package storage

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// Client defines the interface for storage operations.
type Client interface {
	// BucketExists checks if a bucket exists.
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	// PresignedGetObject returns a time-limited GET URL for an object.
	// reqParams may carry response-content-disposition / response-content-type overrides.
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
	// ListKeys returns every object key under prefix.
	ListKeys(ctx context.Context, bucketName, prefix string) ([]string, error)
}

// minioClient adds key listing on top of the minio client.
type minioClient struct {
	*minio.Client
}

var (
	_ Client = minioClient{}
	_ Client = (*s3Client)(nil)
)

// defaultEndpoint is used by the minio provider when no endpoint is configured.
const defaultEndpoint = "s3.amazonaws.com"

// NewClient creates a storage client for the configured provider.
// No network calls are made; presigning is done locally.
func NewClient(cfg Config) (Client, error) {
	transport := newTransport(cfg.timeout())

	switch cfg.provider() {
	case ProviderMinio:
		return newMinioClient(cfg, transport)
	case ProviderS3:
		return newS3Client(cfg, transport), nil
	default:
		return nil, fmt.Errorf("unknown storage provider: %s", cfg.Provider)
	}
}

func newMinioClient(cfg Config, transport http.RoundTripper) (Client, error) {
	// Minio expects endpoint without scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	mc, err := minio.New(endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	// With Region set, presigning never needs a bucket location lookup.
	return minioClient{Client: mc}, nil
}

func (c minioClient) ListKeys(ctx context.Context, bucketName, prefix string) ([]string, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}

	var keys []string
	for obj := range c.ListObjects(ctx, bucketName, opts) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		keys = append(keys, obj.Key)
	}
	return keys, nil
}

func newTransport(timeout time.Duration) *http.Transport {
	return &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeout,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeout,
	}
}
