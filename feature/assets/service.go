package assets

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"card-assets/core/metrics"
	"card-assets/core/storage"
	"card-assets/core/utils"

	"go.uber.org/zap"
)

// Service resolves object keys to signed URLs.
// It holds no mutable state, so concurrent calls are independent.
type Service struct {
	storage *storage.Handle
	expiry  time.Duration
	logger  *zap.Logger
	metrics *metrics.Signing
}

// NewService creates a new asset service. defaultExpiry applies when callers pass zero.
func NewService(handle *storage.Handle, defaultExpiry time.Duration, logger *zap.Logger, m *metrics.Signing) *Service {
	if defaultExpiry <= 0 {
		defaultExpiry = storage.DefaultExpiry
	}
	return &Service{
		storage: handle,
		expiry:  defaultExpiry,
		logger:  logger,
		metrics: m,
	}
}

// Storage returns the storage handle the service signs with.
func (s *Service) Storage() *storage.Handle {
	return s.storage
}

// DefaultExpiry returns the lifetime used when callers pass zero.
func (s *Service) DefaultExpiry() time.Duration {
	return s.expiry
}

// ResolveSignedURL returns a time-limited GET URL for key.
// Each call signs afresh; nothing is cached and nothing is retried.
func (s *Service) ResolveSignedURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	return s.ResolveSignedURLWithParams(ctx, key, expires, nil)
}

// ResolveSignedURLWithParams is ResolveSignedURL with response header overrides
// (response-content-disposition, response-content-type) embedded in the signature.
func (s *Service) ResolveSignedURLWithParams(ctx context.Context, key string, expires time.Duration, reqParams url.Values) (string, error) {
	start := time.Now()
	signed, result, err := s.resolve(ctx, key, expires, reqParams)
	s.metrics.Observe(result, time.Since(start))
	return signed, err
}

func (s *Service) resolve(ctx context.Context, key string, expires time.Duration, reqParams url.Values) (string, string, error) {
	if key == "" {
		return "", metrics.ResultInvalid, storage.ErrKeyRequired
	}
	if expires < 0 {
		return "", metrics.ResultInvalid, storage.InvalidArgument("expiry must not be negative")
	}
	if expires > storage.MaxExpiry {
		return "", metrics.ResultInvalid, storage.InvalidArgument(fmt.Sprintf("expiry must not exceed %s", storage.MaxExpiry))
	}
	if expires == 0 {
		expires = s.expiry
	}

	objectKey := NormalizeKey(key)
	if objectKey == "" {
		return "", metrics.ResultInvalid, storage.ErrKeyRequired
	}

	client, err := s.storage.Client()
	if err != nil {
		s.logger.Warn("Signed URL requested while storage is unavailable",
			zap.String("key", objectKey), zap.Error(err))
		return "", metrics.ResultUnavailable, &storage.SignedURLError{Key: objectKey, Err: err}
	}

	u, err := client.PresignedGetObject(ctx, s.storage.Bucket(), objectKey, expires, reqParams)
	if err != nil {
		s.logger.Error("Failed to generate signed URL",
			zap.String("key", objectKey), zap.Duration("expires", expires), zap.Error(err))
		return "", metrics.ResultError, &storage.SignedURLError{Key: objectKey, Err: err}
	}

	return u.String(), metrics.ResultOK, nil
}

// ResolveFromURL derives the object key from a stored asset URL and signs it.
// The filename is placed under prefix (e.g. "cards/").
func (s *Service) ResolveFromURL(ctx context.Context, storedURL, prefix string, expires time.Duration) (string, error) {
	return s.ResolveSignedURL(ctx, KeyFromURL(storedURL, prefix), expires)
}

// NormalizeKey strips exactly one leading "/" from key.
func NormalizeKey(key string) string {
	return strings.TrimPrefix(key, "/")
}

// KeyFromURL builds an object key from the filename referenced by storedURL.
// It returns "" when no filename can be extracted.
func KeyFromURL(storedURL, prefix string) string {
	filename := utils.ExtractFilename(storedURL)
	if filename == "" {
		return ""
	}
	if prefix == "" {
		return filename
	}
	return strings.TrimSuffix(prefix, "/") + "/" + filename
}

// DownloadParams returns request parameters that make the signed URL download as filename.
func DownloadParams(filename string) url.Values {
	params := url.Values{}
	params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", filename))
	return params
}
