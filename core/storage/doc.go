// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client and the AWS SDK v2 S3 client behind a small Client
// interface covering what the asset features need: bucket reachability,
// presigned GET URLs and key listing for the image audit. Both AWS S3 and self-hosted MinIO instances are supported.
//
// # Handle
//
// Initialize validates the configuration (all missing keys are reported together)
// and returns a Handle. When the configuration is incomplete the Handle is
// unavailable: it carries the *ConfigurationError instead of a client built from
// placeholder credentials, so callers fail fast at call time rather than at startup.
//
// # Providers
//
//   - minio (default): minio-go/v7, endpoint without scheme, UseSSL selects https.
//   - s3: aws-sdk-go-v2; a non-empty endpoint switches to path-style addressing.
//
// # Errors
//
//   - ConfigurationError: startup settings missing or invalid.
//   - ErrUnavailable: returned by an unavailable Handle; wraps its cause.
//   - InvalidArgumentError (matches ErrInvalidArgument): bad caller input.
//   - SignedURLError: the signing operation failed; wraps the cause.
//
// # Usage
//
//	handle := storage.Initialize(cfg.Storage, logger)
//	client, err := handle.Client()
//	u, err := client.PresignedGetObject(ctx, handle.Bucket(), "cards/1700000000000.png", time.Hour, nil)
package storage
