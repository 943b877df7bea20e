package storage

import (
	"log/slog"
	"net/http"

	"github.com/hpp-io/noosphere-sdk-sub001/interfaces"
)

// Config aggregates the per-variant backend configurations a deployment
// provides. Variants lacking their minimum configuration are skipped
// when assembling the backend list.
type Config struct {
	IPFS IPFSConfig
	S3   S3Config

	// HTTPClient, when set, is shared by the HTTP and S3 backends.
	// Tests inject one trusting their TLS fixtures.
	HTTPClient *http.Client
}

// Factory assembles priority-ordered storage backend lists.
type Factory struct {
	log *slog.Logger
}

// NewFactory creates a backend factory.
func NewFactory(log *slog.Logger) *Factory {
	return &Factory{log: ensureLogger(log)}
}

// Backends builds the default priority-ordered backend list:
// IPFS, then S3, then data URI, then plain HTTP.
//
// Upload selection walks this order and takes the first configured
// backend, so externalizing stores win over inlining and the data URI
// backend is the terminal fallback. Download dispatch walks the same
// order probing CanHandle; S3 sits before HTTP so signed object URLs
// reach the S3 variant rather than the pass-through fetcher.
//
// The order is deployment policy, not a resolver invariant: callers
// with different preferences hand the resolver their own slice.
func (f *Factory) Backends(cfg Config) []interfaces.StorageBackend {
	backends := make([]interfaces.StorageBackend, 0, 4)

	ipfs := NewIPFSBackend(cfg.IPFS, f.log)
	if ipfs.IsConfigured() {
		backends = append(backends, ipfs)
	} else {
		f.log.Warn("IPFS backend not configured, skipping",
			slog.String("backend_name", ipfs.Name()))
	}

	s3 := NewS3Backend(cfg.S3, cfg.HTTPClient, f.log)
	if s3.IsConfigured() {
		backends = append(backends, s3)
	} else {
		f.log.Warn("S3 backend not configured, skipping",
			slog.String("backend_name", s3.Name()))
	}

	backends = append(backends,
		NewDataURIBackend(f.log),
		NewHTTPBackend(cfg.HTTPClient, f.log),
	)

	return backends
}
