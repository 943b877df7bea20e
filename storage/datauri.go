package storage

import (
	"context"
	"log/slog"
	"strings"

	"github.com/hpp-io/noosphere-sdk-sub001/datauri"
	"github.com/hpp-io/noosphere-sdk-sub001/interfaces"
)

// DataURIBackend stores content by embedding it directly in the locator
// as a base64 data URI. There is no remote side: upload is an encode and
// download is a decode, which makes this the zero-infrastructure backend
// and the terminal fallback for small content.
type DataURIBackend struct {
	log *slog.Logger
}

// NewDataURIBackend creates a data URI storage backend.
func NewDataURIBackend(log *slog.Logger) *DataURIBackend {
	return &DataURIBackend{log: ensureLogger(log)}
}

// Name returns a unique identifier for this storage backend.
func (b *DataURIBackend) Name() string {
	return "data-uri"
}

// IsConfigured always reports true: encoding needs no configuration.
func (b *DataURIBackend) IsConfigured() bool {
	return true
}

// CanHandle matches data: locators.
func (b *DataURIBackend) CanHandle(uri string) bool {
	return strings.HasPrefix(uri, datauri.Scheme)
}

// Upload encodes data into a data:application/json;base64 URI. The
// content identifier is the hex content hash.
func (b *DataURIBackend) Upload(ctx context.Context, data []byte) (interfaces.UploadResult, error) {
	uri := datauri.Encode(data, datauri.DefaultMimeType)
	hash := interfaces.ComputeContentHash(data)

	b.log.Debug("Encoded content as data URI",
		slog.String("content_hash", hash.String()[:16]),
		slog.Int("size", len(data)))

	return interfaces.UploadResult{
		URI:       uri,
		ContentID: hash.String(),
	}, nil
}

// Download decodes the data URI back into bytes.
func (b *DataURIBackend) Download(ctx context.Context, uri string) ([]byte, error) {
	decoded, err := datauri.Decode(uri)
	if err != nil {
		return nil, err
	}
	return decoded.Content, nil
}

// Available always reports true: there is no remote service to probe.
func (b *DataURIBackend) Available(ctx context.Context) bool {
	return true
}
