// Backend [Downloader] implementation
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/desertthunder/pldl/internal/shared"
)

const (
	defaultBackendURL string = "http://localhost:5000"
	downloadPath      string = "/download"
)

var _ Downloader = (*BackendService)(nil)

// BackendService talks to the playlist download backend over HTTP.
type BackendService struct {
	baseURL    string
	httpClient *http.Client
}

// NewBackendService creates a backend client. An empty baseURL selects http://localhost:5000 and a nil client selects [http.DefaultClient].
func NewBackendService(baseURL string, client *http.Client) *BackendService {
	if baseURL == "" {
		baseURL = defaultBackendURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &BackendService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
	}
}

// BaseURL returns the backend root.
func (b *BackendService) BaseURL() string {
	return b.baseURL
}

// Download posts playlistURL to the backend's download endpoint.
//
// A non-2xx reply is returned as a [*StatusError] whose message comes from the JSON body when present.
// A 2xx reply must be a JSON object with a message field, otherwise [shared.ErrInvalidResponse] is returned.
func (b *BackendService) Download(ctx context.Context, playlistURL string) (*DownloadResponse, error) {
	payload, err := json.Marshal(DownloadRequest{PlaylistURL: playlistURL})
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+downloadPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", shared.GenerateID())

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrBackendUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", shared.ErrBackendUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newStatusError(resp.StatusCode, body)
	}

	var data struct {
		Message *string `json:"message"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInvalidResponse, err)
	}
	if data.Message == nil {
		return nil, fmt.Errorf("%w: missing message field", shared.ErrInvalidResponse)
	}

	return &DownloadResponse{Message: *data.Message}, nil
}

// Health fetches the backend root endpoint and returns its body as text.
func (b *BackendService) Health(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+"/", nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrBackendUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %v", shared.ErrBackendUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: status %d", shared.ErrServiceUnavailable, resp.StatusCode)
	}

	return strings.TrimSpace(string(body)), nil
}

func newStatusError(code int, body []byte) *StatusError {
	var data DownloadResponse
	if err := json.Unmarshal(body, &data); err != nil || data.Message == "" {
		return &StatusError{Code: code, Message: statusMessage(code)}
	}
	return &StatusError{Code: code, Message: data.Message}
}
