// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure for server settings: the listen port, the
// API key protecting the routes and the path prefixes left public.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the start command to configure the Fiber app and auth middleware.
package server
