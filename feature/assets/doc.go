// Package assets implements signed URL resolution for stored gift-card assets.
//
// The Service normalizes an object key (one leading "/" is stripped), then asks the
// storage client for a presigned GET URL valid for the requested lifetime (one hour
// by default). Every call signs afresh: URLs are time-bound and cheap, so nothing is
// cached, and failures are returned to the caller without retries.
//
// Callers holding a stored asset URL rather than a key use ResolveFromURL, which
// extracts the filename with utils.ExtractFilename and places it under a prefix.
//
// # Errors
//
//   - storage.ErrKeyRequired (400): empty key, rejected before any client call.
//   - *storage.SignedURLError wrapping storage.ErrUnavailable (503): storage was not
//     configured at startup.
//   - *storage.SignedURLError (502): the signing operation itself failed.
//
// # HTTP Endpoints
//
//   - GET /assets/url?key=&expires=&download= : JSON with the signed URL.
//   - GET /assets/redirect/*key : 307 redirect to a signed URL.
//   - GET /assets/filename?source= : filename extracted from a URL or path.
package assets
