package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/hpp-io/noosphere-sdk-sub001/interfaces"
)

// HTTPBackend is a read-only pass-through fetcher for plain http(s)
// locators. It is not a write target: content reachable over bare HTTP
// was published by someone else, so Upload is structurally unsupported.
type HTTPBackend struct {
	client *http.Client
	log    *slog.Logger
}

// NewHTTPBackend creates an HTTP fetch backend. A nil client gets a
// default with a 30 second timeout.
func NewHTTPBackend(client *http.Client, log *slog.Logger) *HTTPBackend {
	if client == nil {
		client = newHTTPClient()
	}
	return &HTTPBackend{
		client: client,
		log:    ensureLogger(log),
	}
}

// Name returns a unique identifier for this storage backend.
func (b *HTTPBackend) Name() string {
	return "http"
}

// IsConfigured always reports true: fetching needs no credentials.
func (b *HTTPBackend) IsConfigured() bool {
	return true
}

// CanHandle matches http:// and https:// locators.
func (b *HTTPBackend) CanHandle(uri string) bool {
	return strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://")
}

// Upload always fails: HTTP is a fetch mechanism, not a store.
func (b *HTTPBackend) Upload(ctx context.Context, data []byte) (interfaces.UploadResult, error) {
	return interfaces.UploadResult{}, fmt.Errorf("HTTP backend %w", interfaces.ErrUploadNotSupported)
}

// Download issues a GET against the locator and returns the body.
func (b *HTTPBackend) Download(ctx context.Context, uri string) ([]byte, error) {
	if !b.CanHandle(uri) {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrUnsupportedURI, uri)
	}

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, wrapNetErr(ctx, "HTTP fetch", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b.log.Warn("HTTP fetch returned non-success status",
			slog.String("uri", uri),
			slog.String("status", resp.Status),
			slog.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("HTTP fetch failed: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	b.log.Debug("Fetched content over HTTP",
		slog.String("uri", uri),
		slog.Int("size", len(data)),
		slog.Duration("duration", time.Since(start)))

	return data, nil
}

// Available always reports true: there is no single remote endpoint to
// probe, reachability is per-locator.
func (b *HTTPBackend) Available(ctx context.Context) bool {
	return true
}
