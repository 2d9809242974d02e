package storage

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	ProviderMinio = "minio"
	ProviderS3    = "s3"
)

// Config holds configuration for the storage provider.
type Config struct {
	// Provider selects the client implementation (minio, s3).
	Provider string `mapstructure:"provider" default:"minio" validate:"omitempty,oneof=minio s3"`
	// Endpoint is the URL of the storage service. Empty means AWS S3.
	Endpoint string `mapstructure:"endpoint" default:""`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:"" validate:"required"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"" validate:"required"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"" validate:"required"`
	// Bucket is the name of the bucket holding the assets.
	Bucket string `mapstructure:"bucket" default:"" validate:"required"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"true"`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// DefaultExpirySeconds is the signed URL lifetime used when callers pass none.
	DefaultExpirySeconds int `mapstructure:"default_expiry_seconds" default:"3600"`
}

// DefaultExpiry is the signed URL lifetime when neither caller nor config sets one.
const DefaultExpiry = time.Hour

// MaxExpiry is the longest lifetime SigV4 presigned URLs accept.
const MaxExpiry = 7 * 24 * time.Hour

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report config keys rather than Go field names.
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return field.Tag.Get("mapstructure")
	})
	return v
}

// Validate checks every field at once and returns a *ConfigurationError
// listing all missing or invalid keys.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	cfgErr := &ConfigurationError{}
	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			cfgErr.Missing = append(cfgErr.Missing, fe.Field())
			continue
		}
		cfgErr.Invalid = append(cfgErr.Invalid, fmt.Sprintf("%s=%v", fe.Field(), fe.Value()))
	}
	return cfgErr
}

// Expiry returns the configured default lifetime for signed URLs.
func (c Config) Expiry() time.Duration {
	if c.DefaultExpirySeconds <= 0 {
		return DefaultExpiry
	}
	return time.Duration(c.DefaultExpirySeconds) * time.Second
}

func (c Config) provider() string {
	if c.Provider == "" {
		return ProviderMinio
	}
	return c.Provider
}

func (c Config) timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
