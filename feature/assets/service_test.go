package assets

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"card-assets/core/metrics"
	"card-assets/core/storage"
	"card-assets/core/storage/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func signedURL(key string) *url.URL {
	return &url.URL{
		Scheme:   "https",
		Host:     "s3.example.com",
		Path:     "/assets/" + key,
		RawQuery: "X-Amz-Expires=3600&X-Amz-Signature=abc",
	}
}

func newTestService(client *mocks.Client) *Service {
	return NewService(storage.NewHandle(client, "assets"), time.Hour, zap.NewNop(), nil)
}

func TestResolveSignedURL_KeyPassthrough(t *testing.T) {
	for _, key := range []string{"cards/1700000000000.png", "a", "deep/nested/path/file.webp"} {
		t.Run(key, func(t *testing.T) {
			client := new(mocks.Client)
			client.On("PresignedGetObject", mock.Anything, "assets", key, time.Hour, url.Values(nil)).
				Return(signedURL(key), nil)

			got, err := newTestService(client).ResolveSignedURL(context.Background(), key, time.Hour)
			require.NoError(t, err)
			assert.Equal(t, signedURL(key).String(), got)
			client.AssertExpectations(t)
		})
	}
}

func TestResolveSignedURL_Normalization(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want string
	}{
		{"OneLeadingSeparator", "/cards/1.png", "cards/1.png"},
		{"TwoLeadingSeparators", "//cards/1.png", "/cards/1.png"},
		{"NoSeparator", "cards/1.png", "cards/1.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeKey(tt.key))

			client := new(mocks.Client)
			client.On("PresignedGetObject", mock.Anything, "assets", tt.want, time.Hour, mock.Anything).
				Return(signedURL(tt.want), nil)

			_, err := newTestService(client).ResolveSignedURL(context.Background(), tt.key, time.Hour)
			require.NoError(t, err)
			client.AssertExpectations(t)
		})
	}
}

func TestResolveSignedURL_InvalidArguments(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		expires time.Duration
	}{
		{"EmptyKey", "", time.Hour},
		{"OnlySeparator", "/", time.Hour},
		{"NegativeExpiry", "cards/1.png", -time.Second},
		{"ExpiryAboveMaximum", "cards/1.png", storage.MaxExpiry + time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := new(mocks.Client)

			got, err := newTestService(client).ResolveSignedURL(context.Background(), tt.key, tt.expires)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, storage.ErrInvalidArgument)
			client.AssertNotCalled(t, "PresignedGetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("EmptyKeyMessage", func(t *testing.T) {
		_, err := newTestService(new(mocks.Client)).ResolveSignedURL(context.Background(), "", 0)
		assert.Equal(t, storage.ErrKeyRequired, err)
	})
}

func TestResolveSignedURL_DefaultExpiry(t *testing.T) {
	client := new(mocks.Client)
	client.On("PresignedGetObject", mock.Anything, "assets", "a.png", 10*time.Minute, mock.Anything).
		Return(signedURL("a.png"), nil)

	svc := NewService(storage.NewHandle(client, "assets"), 10*time.Minute, zap.NewNop(), nil)
	_, err := svc.ResolveSignedURL(context.Background(), "a.png", 0)
	require.NoError(t, err)
	client.AssertExpectations(t)

	assert.Equal(t, storage.DefaultExpiry, NewService(nil, 0, zap.NewNop(), nil).DefaultExpiry())
}

func TestResolveSignedURL_Unavailable(t *testing.T) {
	cause := &storage.ConfigurationError{Missing: []string{"region", "access_key", "secret_key"}}
	core, logs := observer.New(zapcore.DebugLevel)
	svc := NewService(storage.Unavailable(cause), time.Hour, zap.New(core), nil)

	got, err := svc.ResolveSignedURL(context.Background(), "cards/1.png", 0)
	assert.Empty(t, got)

	var signErr *storage.SignedURLError
	require.ErrorAs(t, err, &signErr)
	assert.Equal(t, "cards/1.png", signErr.Key)
	assert.ErrorIs(t, err, storage.ErrUnavailable)

	var cfgErr *storage.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Same(t, cause, cfgErr)

	assert.Equal(t, 1, logs.FilterMessageSnippet("storage is unavailable").Len())
}

func TestResolveSignedURL_ClientFailure(t *testing.T) {
	cause := errors.New("InvalidAccessKeyId")
	client := new(mocks.Client)
	client.On("PresignedGetObject", mock.Anything, "assets", "cards/1.png", time.Hour, mock.Anything).
		Return(nil, cause)

	core, logs := observer.New(zapcore.DebugLevel)
	svc := NewService(storage.NewHandle(client, "assets"), time.Hour, zap.New(core), nil)

	_, err := svc.ResolveSignedURL(context.Background(), "/cards/1.png", 0)

	var signErr *storage.SignedURLError
	require.ErrorAs(t, err, &signErr)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, storage.ErrUnavailable)

	entries := logs.FilterMessage("Failed to generate signed URL").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "cards/1.png", entries[0].ContextMap()["key"])
}

func TestResolveSignedURL_NoCaching(t *testing.T) {
	client := new(mocks.Client)
	client.On("PresignedGetObject", mock.Anything, "assets", "cards/1.png", time.Hour, mock.Anything).
		Return(signedURL("cards/1.png"), nil)

	svc := newTestService(client)
	for i := 0; i < 2; i++ {
		_, err := svc.ResolveSignedURL(context.Background(), "cards/1.png", time.Hour)
		require.NoError(t, err)
	}

	client.AssertNumberOfCalls(t, "PresignedGetObject", 2)
}

func TestResolveSignedURL_Concurrent(t *testing.T) {
	client := new(mocks.Client)
	client.On("PresignedGetObject", mock.Anything, "assets", mock.Anything, time.Hour, mock.Anything).
		Return(signedURL("x"), nil)

	svc := newTestService(client)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ResolveSignedURL(context.Background(), "cards/x.png", time.Hour)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	client.AssertNumberOfCalls(t, "PresignedGetObject", 16)
}

func TestResolveSignedURL_Metrics(t *testing.T) {
	client := new(mocks.Client)
	client.On("PresignedGetObject", mock.Anything, "assets", "ok.png", time.Hour, mock.Anything).
		Return(signedURL("ok.png"), nil)
	client.On("PresignedGetObject", mock.Anything, "assets", "bad.png", time.Hour, mock.Anything).
		Return(nil, errors.New("boom"))

	m := metrics.NewSigning("test", prometheus.NewRegistry())
	svc := NewService(storage.NewHandle(client, "assets"), time.Hour, zap.NewNop(), m)
	ctx := context.Background()

	_, _ = svc.ResolveSignedURL(ctx, "ok.png", 0)
	_, _ = svc.ResolveSignedURL(ctx, "bad.png", 0)
	_, _ = svc.ResolveSignedURL(ctx, "", 0)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.Requests(metrics.ResultOK)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Requests(metrics.ResultError)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Requests(metrics.ResultInvalid)))

	unavailable := NewService(storage.Unavailable(&storage.ConfigurationError{}), time.Hour, zap.NewNop(), m)
	_, _ = unavailable.ResolveSignedURL(ctx, "ok.png", 0)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Requests(metrics.ResultUnavailable)))
}

func TestResolveFromURL(t *testing.T) {
	client := new(mocks.Client)
	client.On("PresignedGetObject", mock.Anything, "assets", "cards/1700000000000.png", time.Hour, mock.Anything).
		Return(signedURL("cards/1700000000000.png"), nil)

	svc := newTestService(client)
	got, err := svc.ResolveFromURL(context.Background(), "https://cdn.example.com/assets/1700000000000.png", "cards/", 0)
	require.NoError(t, err)
	assert.Contains(t, got, "cards/1700000000000.png")

	_, err = svc.ResolveFromURL(context.Background(), "", "cards/", 0)
	assert.ErrorIs(t, err, storage.ErrKeyRequired)
}

func TestKeyFromURL(t *testing.T) {
	assert.Equal(t, "cards/1700.png", KeyFromURL("https://cdn/x/1700.png", "cards"))
	assert.Equal(t, "cards/1700.png", KeyFromURL("https://cdn/x/1700.png", "cards/"))
	assert.Equal(t, "file", KeyFromURL("folder/subfolder/file", ""))
	assert.Equal(t, "", KeyFromURL("", "cards/"))
}

func TestDownloadParams(t *testing.T) {
	params := DownloadParams("1700.png")
	assert.Equal(t, `attachment; filename="1700.png"`, params.Get("response-content-disposition"))
}
