// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - Auth: API key validation (X-API-Key or Authorization: Bearer). Configured
//     public prefixes such as /health and /metrics bypass the check.
//   - RayID: Assigns a Request ID (RayID) to every incoming request, reusing an
//     upstream X-Ray-ID when present, and exposes it in locals and response headers.
//
// These middleware components are registered globally in the start command.
package middleware
