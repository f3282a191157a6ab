package services_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/desertthunder/pldl/internal/services"
	"github.com/desertthunder/pldl/internal/shared"
	tu "github.com/desertthunder/pldl/internal/testing"
)

func TestBackendServiceTransport(t *testing.T) {
	t.Run("Download", func(t *testing.T) {
		t.Run("Failed HTTP Request", func(t *testing.T) {
			rt := tu.NewMockRoundTripper(nil, errors.New("connection refused"))

			_, err := services.NewBackendService("http://localhost:5000", rt.Client()).Download(context.Background(), "u")
			if !errors.Is(err, shared.ErrBackendUnreachable) {
				t.Errorf("expected ErrBackendUnreachable, got %v", err)
			}
			if !strings.Contains(err.Error(), "connection refused") {
				t.Errorf("expected underlying cause in error, got %v", err)
			}
			if rt.Requests() != 1 {
				t.Errorf("expected exactly one request, got %d", rt.Requests())
			}
		})

		t.Run("Failed Body Read", func(t *testing.T) {
			rt := tu.NewMockRoundTripper(&http.Response{
				StatusCode: http.StatusOK,
				Body:       tu.FBody{},
				Header:     make(http.Header),
			}, nil)

			_, err := services.NewBackendService("http://localhost:5000", rt.Client()).Download(context.Background(), "u")
			if !errors.Is(err, shared.ErrBackendUnreachable) {
				t.Errorf("expected ErrBackendUnreachable, got %v", err)
			}
		})
	})

	t.Run("Health", func(t *testing.T) {
		t.Run("Unreachable", func(t *testing.T) {
			rt := tu.NewMockRoundTripper(nil, errors.New("dial tcp: refused"))

			_, err := services.NewBackendService("http://localhost:5000", rt.Client()).Health(context.Background())
			if !errors.Is(err, shared.ErrBackendUnreachable) {
				t.Errorf("expected ErrBackendUnreachable, got %v", err)
			}
		})
	})
}
