package storage

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidArgument is matched by every argument validation failure.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrUnavailable is matched by every call made through an unavailable Handle.
var ErrUnavailable = errors.New("storage unavailable")

// ErrKeyRequired is returned when an empty object key is passed to the resolver.
var ErrKeyRequired = InvalidArgument("object key is required")

// InvalidArgumentError is returned before any storage call is attempted.
type InvalidArgumentError struct {
	Message string
}

// InvalidArgument creates an error that satisfies errors.Is(err, ErrInvalidArgument).
func InvalidArgument(message string) error {
	return &InvalidArgumentError{Message: message}
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ConfigurationError reports storage settings that are absent or malformed.
// It is raised at startup and recovered by handing out an unavailable Handle.
type ConfigurationError struct {
	// Missing lists the config keys that have no value.
	Missing []string
	// Invalid lists key=value pairs that failed validation.
	Invalid []string
}

func (e *ConfigurationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required storage configuration: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid storage configuration: "+strings.Join(e.Invalid, ", "))
	}
	if len(parts) == 0 {
		return "storage configuration error"
	}
	return strings.Join(parts, "; ")
}

// SignedURLError wraps any failure of the underlying signing operation.
type SignedURLError struct {
	Key string
	Err error
}

func (e *SignedURLError) Error() string {
	return fmt.Sprintf("failed to sign url for %q: %v", e.Key, e.Err)
}

func (e *SignedURLError) Unwrap() error {
	return e.Err
}
