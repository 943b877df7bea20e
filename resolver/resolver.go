package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hpp-io/noosphere-sdk-sub001/datauri"
	"github.com/hpp-io/noosphere-sdk-sub001/interfaces"
)

// DefaultUploadThreshold is the byte-length cutoff above which content
// is externalized to a storage backend instead of inlined as a data
// URI.
const DefaultUploadThreshold = 4096

// Config configures a Resolver.
type Config struct {
	// UploadThreshold is the strict byte-length cutoff for
	// externalizing content. Zero means DefaultUploadThreshold.
	UploadThreshold int

	// Backends is the priority-ordered backend list used for upload
	// selection (first configured wins) and download dispatch (first
	// CanHandle match wins). The order is the caller's deployment
	// policy; see storage.Factory.Backends for the default.
	Backends []interfaces.StorageBackend

	// Log receives structured operation logs. Nil means slog.Default.
	Log *slog.Logger
}

// Resolver turns raw content into verifiable payloads and payloads back
// into verified content. It holds no per-call state: concurrent Encode
// and Resolve calls on one instance do not interfere. Payloads are an
// interoperability format, not bound to the instance that produced
// them; any resolver with equivalent backend configuration resolves
// them identically.
type Resolver struct {
	threshold int
	backends  []interfaces.StorageBackend
	log       *slog.Logger
}

// New creates a resolver from cfg.
func New(cfg Config) *Resolver {
	threshold := cfg.UploadThreshold
	if threshold == 0 {
		threshold = DefaultUploadThreshold
	}

	log := cfg.Log
	if log == nil {
		log = slog.Default()
	}

	return &Resolver{
		threshold: threshold,
		backends:  cfg.Backends,
		log:       log,
	}
}

// ShouldUpload reports whether content exceeds the upload threshold.
// Content at exactly the threshold is not uploaded.
func (r *Resolver) ShouldUpload(data []byte) bool {
	return len(data) > r.threshold
}

// Encode produces a payload for data. Content at or under the threshold
// is inlined as a data URI; larger content goes to the first configured
// backend in priority order. Upload failures surface as-is: there is no
// cross-backend fallback, a caller needing resilience wraps its own
// policy around this.
func (r *Resolver) Encode(ctx context.Context, data []byte) (interfaces.Payload, error) {
	hash := interfaces.ComputeContentHash(data)

	if !r.ShouldUpload(data) {
		r.log.Debug("Encoded content inline",
			slog.String("content_hash", hash.String()[:16]),
			slog.Int("size", len(data)))
		return interfaces.Payload{
			ContentHash: hash,
			URI:         datauri.Encode(data, datauri.DefaultMimeType),
		}, nil
	}

	backend := r.uploadBackend()
	if backend == nil {
		return interfaces.Payload{}, fmt.Errorf("%w: content exceeds %d byte threshold", interfaces.ErrNoConfiguredBackend, r.threshold)
	}

	start := time.Now()
	result, err := backend.Upload(ctx, data)
	if err != nil {
		return interfaces.Payload{}, fmt.Errorf("upload via %s: %w", backend.Name(), err)
	}

	r.log.Info("Uploaded content to storage backend",
		slog.String("backend_name", backend.Name()),
		slog.String("content_hash", hash.String()[:16]),
		slog.String("content_id", result.ContentID),
		slog.Int("size", len(data)),
		slog.Duration("duration", time.Since(start)))

	return interfaces.Payload{
		ContentHash: hash,
		URI:         result.URI,
	}, nil
}

// Resolve fetches the content behind a payload and verifies it against
// the payload's hash. A non-nil fallback short-circuits all fetching:
// the caller already holds the bytes and only wants verification. A
// verification mismatch is reported through ResolveResult.Verified, not
// an error. Payloads carrying the zero hash never verify.
func (r *Resolver) Resolve(ctx context.Context, p interfaces.Payload, fallback []byte) (interfaces.ResolveResult, error) {
	if fallback != nil {
		return r.finish(p, fallback), nil
	}

	if p.URI == "" {
		return interfaces.ResolveResult{}, fmt.Errorf("%w: inline payload requires raw content fallback", interfaces.ErrUnsupportedURI)
	}

	backend := r.downloadBackend(p.URI)
	if backend == nil {
		return interfaces.ResolveResult{}, fmt.Errorf("%w: %s", interfaces.ErrUnsupportedURI, p.URI)
	}

	start := time.Now()
	content, err := backend.Download(ctx, p.URI)
	if err != nil {
		return interfaces.ResolveResult{}, fmt.Errorf("download via %s: %w", backend.Name(), err)
	}

	r.log.Debug("Resolved payload",
		slog.String("backend_name", backend.Name()),
		slog.String("payload_type", interfaces.DetectPayloadType(p).String()),
		slog.Int("size", len(content)),
		slog.Duration("duration", time.Since(start)))

	return r.finish(p, content), nil
}

// Available reports whether any backend's service is reachable.
func (r *Resolver) Available(ctx context.Context) bool {
	for _, backend := range r.backends {
		if backend.Available(ctx) {
			return true
		}
	}
	return false
}

// finish assembles the result with the verification verdict.
func (r *Resolver) finish(p interfaces.Payload, content []byte) interfaces.ResolveResult {
	verified := p.ContentHash.Verify(content)
	if !verified && !p.ContentHash.IsZero() {
		r.log.Warn("Content hash verification failed",
			slog.String("expected", p.ContentHash.String()),
			slog.String("actual", interfaces.ComputeContentHash(content).String()))
	}
	return interfaces.ResolveResult{Content: content, Verified: verified}
}

// uploadBackend returns the first configured backend, or nil.
func (r *Resolver) uploadBackend() interfaces.StorageBackend {
	for _, backend := range r.backends {
		if backend.IsConfigured() {
			return backend
		}
	}
	return nil
}

// downloadBackend returns the first backend claiming the locator, or nil.
func (r *Resolver) downloadBackend(uri string) interfaces.StorageBackend {
	for _, backend := range r.backends {
		if backend.CanHandle(uri) {
			return backend
		}
	}
	return nil
}
