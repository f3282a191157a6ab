// Package services implements the HTTP client for the playlist download backend.
//
// # Backend Contract
//
// The backend is an opaque service. [BackendService.Download] posts
//
//	POST <base>/download
//	Content-Type: application/json
//
//	{"playlist_url": "<url>"}
//
// and expects a JSON object carrying at least a "message" string. No other response fields are consumed.
//
// # Error Handling
//
// Failures are classified so callers can render them without inspecting transport details:
//   - [shared.ErrBackendUnreachable] : the request could not be sent or completed
//   - [StatusError] : non-2xx status, with the body's message or a synthesized one
//   - [shared.ErrInvalidResponse] : 2xx status with a body that is not the expected JSON
//
// Nothing is retried.
package services
