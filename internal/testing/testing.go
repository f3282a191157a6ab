// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/desertthunder/pldl/internal/services"
)

// MockDownloader is a test double for [services.Downloader] that records every call.
type MockDownloader struct {
	mu       sync.Mutex
	Response *services.DownloadResponse
	Err      error
	Calls    []string
	Hook     func(playlistURL string) // runs inside Download before it returns
}

func (m *MockDownloader) Download(ctx context.Context, playlistURL string) (*services.DownloadResponse, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, playlistURL)
	hook := m.Hook
	m.mu.Unlock()

	if hook != nil {
		hook(playlistURL)
	}
	return m.Response, m.Err
}

// CallCount reports how many times Download ran.
func (m *MockDownloader) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// FakeScheduler captures deferred functions so tests can fire them explicitly.
type FakeScheduler struct {
	mu      sync.Mutex
	pending []*FakeTimer
}

// FakeTimer is a pending function registered with [FakeScheduler].
type FakeTimer struct {
	Delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

// Stop cancels the timer. It reports whether the call stopped it before it fired.
func (t *FakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// AfterFunc registers fn without running it.
func (s *FakeScheduler) AfterFunc(d time.Duration, fn func()) interface{ Stop() bool } {
	s.mu.Lock()
	defer s.mu.Unlock()
	timer := &FakeTimer{Delay: d, fn: fn}
	s.pending = append(s.pending, timer)
	return timer
}

// Pending returns the timers that are neither stopped nor fired.
func (s *FakeScheduler) Pending() []*FakeTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*FakeTimer
	for _, t := range s.pending {
		if !t.stopped && !t.fired {
			out = append(out, t)
		}
	}
	return out
}

// FireAll runs every pending timer in registration order.
func (s *FakeScheduler) FireAll() {
	for _, t := range s.Pending() {
		t.fired = true
		t.fn()
	}
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// FBody is a response body that fails every Read
type FBody struct{}

func (FBody) Read([]byte) (int, error) { return 0, errors.New("read failed") }
func (FBody) Close() error             { return nil }

// MockRoundTripper answers every backend request with a fixed response or error and counts them.
type MockRoundTripper struct {
	mu       sync.Mutex
	response *http.Response
	err      error
	requests int
}

// NewMockRoundTripper returns a [MockRoundTripper] that yields r and e.
func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

// Client wraps the round tripper in an [http.Client].
func (m *MockRoundTripper) Client() *http.Client {
	return &http.Client{Transport: m}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests++
	return m.response, m.err
}

// Requests reports how many requests reached the round tripper.
func (m *MockRoundTripper) Requests() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.requests
}

func MustWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write file %s: %v", path, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
