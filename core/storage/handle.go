package storage

import (
	"fmt"

	"go.uber.org/zap"
)

// Handle is the process-wide storage client, or the reason there is none.
// It is built once at startup and never mutated afterwards.
type Handle struct {
	client Client
	bucket string
	err    error
}

// NewHandle wraps a working client bound to a bucket.
func NewHandle(client Client, bucket string) *Handle {
	return &Handle{client: client, bucket: bucket}
}

// Unavailable returns a handle that fails every call with cause.
func Unavailable(cause error) *Handle {
	return &Handle{err: cause}
}

// Initialize validates cfg and builds the client. It never fails: on
// incomplete configuration or construction errors it logs and returns an
// unavailable handle so the process can still start.
func Initialize(cfg Config, logger *zap.Logger) *Handle {
	if err := cfg.Validate(); err != nil {
		logger.Warn("Storage configuration incomplete, signed URLs disabled", zap.Error(err))
		return Unavailable(err)
	}

	client, err := NewClient(cfg)
	if err != nil {
		logger.Error("Failed to create storage client, signed URLs disabled", zap.Error(err))
		return Unavailable(err)
	}

	logger.Info("Storage client initialized",
		zap.String("provider", cfg.provider()),
		zap.String("region", cfg.Region),
		zap.String("bucket", cfg.Bucket),
	)
	return NewHandle(client, cfg.Bucket)
}

// Available reports whether a working client is present.
func (h *Handle) Available() bool {
	return h.err == nil && h.client != nil
}

// Client returns the client, or an error matching ErrUnavailable that wraps
// the cause recorded at startup.
func (h *Handle) Client() (Client, error) {
	if h.err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, h.err)
	}
	if h.client == nil {
		return nil, ErrUnavailable
	}
	return h.client, nil
}

// Bucket returns the configured bucket name.
func (h *Handle) Bucket() string {
	return h.bucket
}

// Err returns the startup failure, if any.
func (h *Handle) Err() error {
	return h.err
}
