package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpp-io/noosphere-sdk-sub001/interfaces"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDataURIBackend_UploadDownload(t *testing.T) {
	backend := NewDataURIBackend(testLogger())
	ctx := context.Background()
	data := []byte(`{"test":"value"}`)

	result, err := backend.Upload(ctx, data)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.URI, "data:application/json;base64,"))
	assert.Equal(t, interfaces.ComputeContentHash(data).String(), result.ContentID)

	fetched, err := backend.Download(ctx, result.URI)
	require.NoError(t, err)
	assert.Equal(t, data, fetched)
}

func TestDataURIBackend_DownloadRejectsOtherSchemes(t *testing.T) {
	backend := NewDataURIBackend(testLogger())

	_, err := backend.Download(context.Background(), "https://example.com/content")
	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrUnsupportedURI)
}

func TestDataURIBackend_Predicates(t *testing.T) {
	backend := NewDataURIBackend(testLogger())

	assert.Equal(t, "data-uri", backend.Name())
	assert.True(t, backend.IsConfigured())
	assert.True(t, backend.Available(context.Background()))
	assert.True(t, backend.CanHandle("data:application/json;base64,e30="))
	assert.False(t, backend.CanHandle("ipfs://QmTestCid"))
	assert.False(t, backend.CanHandle("https://example.com"))
	assert.False(t, backend.CanHandle(""))
}
