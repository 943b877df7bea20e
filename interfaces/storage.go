package interfaces

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured is returned when a backend is asked to upload
	// without the minimum required configuration.
	ErrNotConfigured = errors.New("storage backend not configured")

	// ErrUnsupportedURI is returned when no backend can handle a given
	// locator, or a codec is handed a URI of the wrong scheme.
	ErrUnsupportedURI = errors.New("unsupported URI")

	// ErrUploadNotSupported is returned by read-only backends.
	ErrUploadNotSupported = errors.New("upload not supported")

	// ErrNoConfiguredBackend is returned by the resolver when content
	// exceeds the upload threshold but no backend is configured.
	ErrNoConfiguredBackend = errors.New("no configured storage backend")

	// ErrRequestTimeout is returned when a backend network call was cut
	// short by its context deadline. Callers decide whether to retry;
	// backends never retry on their own.
	ErrRequestTimeout = errors.New("request timed out")
)

// StorageBackend stores and retrieves payload content for one storage
// medium. Implementations hold only immutable configuration and are
// safe for concurrent use.
type StorageBackend interface {
	// Name returns a stable identifier for logging.
	Name() string

	// IsConfigured reports whether the minimum required configuration
	// fields are present. It performs no I/O.
	IsConfigured() bool

	// CanHandle reports whether this backend recognizes the locator.
	// Pure predicate on the URI prefix.
	CanHandle(uri string) bool

	// Upload stores data and returns its locator. Fails with
	// ErrNotConfigured when IsConfigured is false.
	Upload(ctx context.Context, data []byte) (UploadResult, error)

	// Download retrieves the bytes behind a locator. Fails with
	// ErrUnsupportedURI when CanHandle(uri) is false.
	Download(ctx context.Context, uri string) ([]byte, error)

	// Available probes whether the backing service is reachable.
	// Advisory only; Upload and Download do not depend on it.
	Available(ctx context.Context) bool
}
