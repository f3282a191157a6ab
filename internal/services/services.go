// package services defines the [Downloader] interface for the playlist download backend
package services

import (
	"context"
	"fmt"
)

// Downloader triggers a playlist download on the backend.
type Downloader interface {
	// Download sends one download request for playlistURL and returns the backend's reply.
	Download(ctx context.Context, playlistURL string) (*DownloadResponse, error)
}

// DownloadRequest is the JSON body of a download request.
type DownloadRequest struct {
	PlaylistURL string `json:"playlist_url"`
}

// DownloadResponse is the subset of the backend reply that is consumed.
type DownloadResponse struct {
	Message string `json:"message"`
}

// StatusError is returned for a non-2xx backend response.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

// statusMessage is the message used when a failed response carries none.
func statusMessage(code int) string {
	return fmt.Sprintf("HTTP error! status: %d", code)
}
