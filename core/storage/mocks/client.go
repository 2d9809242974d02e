package mocks

import (
	"context"
	"net/url"
	"time"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	args := m.Called(ctx, bucketName)
	return args.Bool(0), args.Error(1)
}

func (m *Client) PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error) {
	args := m.Called(ctx, bucketName, objectName, expires, reqParams)
	if fn, ok := args.Get(0).(func(context.Context, string, string, time.Duration, url.Values) *url.URL); ok {
		return fn(ctx, bucketName, objectName, expires, reqParams), args.Error(1)
	}
	if u, ok := args.Get(0).(*url.URL); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ListKeys(ctx context.Context, bucketName, prefix string) ([]string, error) {
	args := m.Called(ctx, bucketName, prefix)
	if keys, ok := args.Get(0).([]string); ok {
		return keys, args.Error(1)
	}
	return nil, args.Error(1)
}
