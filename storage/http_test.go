package storage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpp-io/noosphere-sdk-sub001/interfaces"
)

func TestHTTPBackend_Download(t *testing.T) {
	content := []byte(`{"fetched":"content"}`)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write(content)
	}))
	defer server.Close()

	backend := NewHTTPBackend(server.Client(), testLogger())

	data, err := backend.Download(context.Background(), server.URL+"/content.json")
	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestHTTPBackend_DownloadFailureEmbedsStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	backend := NewHTTPBackend(server.Client(), testLogger())

	_, err := backend.Download(context.Background(), server.URL+"/missing.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP fetch failed: 404")
}

func TestHTTPBackend_DownloadTimeoutKind(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	backend := NewHTTPBackend(server.Client(), testLogger())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := backend.Download(ctx, server.URL)
	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrRequestTimeout)
}

func TestHTTPBackend_UploadNotSupported(t *testing.T) {
	backend := NewHTTPBackend(nil, testLogger())

	_, err := backend.Upload(context.Background(), []byte("data"))
	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrUploadNotSupported)
}

func TestHTTPBackend_Predicates(t *testing.T) {
	backend := NewHTTPBackend(nil, testLogger())

	assert.Equal(t, "http", backend.Name())
	assert.True(t, backend.IsConfigured())
	assert.True(t, backend.CanHandle("http://example.com/content"))
	assert.True(t, backend.CanHandle("https://example.com/content"))
	assert.False(t, backend.CanHandle("ipfs://QmTestCid"))
	assert.False(t, backend.CanHandle("data:application/json;base64,e30="))
}

func TestHTTPBackend_DownloadRejectsOtherSchemes(t *testing.T) {
	backend := NewHTTPBackend(nil, testLogger())

	_, err := backend.Download(context.Background(), "ipfs://QmTestCid")
	require.Error(t, err)
	assert.ErrorIs(t, err, interfaces.ErrUnsupportedURI)
}
