package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpp-io/noosphere-sdk-sub001/interfaces"
)

func backendNames(backends []interfaces.StorageBackend) []string {
	names := make([]string, 0, len(backends))
	for _, b := range backends {
		names = append(names, b.Name())
	}
	return names
}

func TestFactory_DefaultBackends(t *testing.T) {
	factory := NewFactory(testLogger())

	t.Run("nothing configured", func(t *testing.T) {
		backends := factory.Backends(Config{})
		assert.Equal(t, []string{"data-uri", "http"}, backendNames(backends))
	})

	t.Run("everything configured", func(t *testing.T) {
		backends := factory.Backends(Config{
			IPFS: IPFSConfig{NodeURL: "http://127.0.0.1:5001"},
			S3: S3Config{
				Endpoint:        "https://account.r2.cloudflarestorage.com",
				Bucket:          "payloads",
				AccessKeyID:     "AKID",
				SecretAccessKey: "secret",
			},
		})
		assert.Equal(t, []string{"ipfs", "s3", "data-uri", "http"}, backendNames(backends))
	})

	t.Run("ipfs only", func(t *testing.T) {
		backends := factory.Backends(Config{
			IPFS: IPFSConfig{PinataAPIKey: "key", PinataSecretKey: "secret"},
		})
		assert.Equal(t, []string{"ipfs", "data-uri", "http"}, backendNames(backends))
	})
}

// Locators with a dedicated scheme are claimed by exactly one variant.
// HTTPS object storage locators are the designed overlap: the S3
// variant claims its endpoint and public-base forms, and the plain HTTP
// fetcher claims any http(s) URL, so the S3 variant sits first and
// first-match dispatch settles it.
func TestFactory_DispatchExclusivity(t *testing.T) {
	factory := NewFactory(testLogger())
	backends := factory.Backends(Config{
		IPFS: IPFSConfig{NodeURL: "http://127.0.0.1:5001"},
		S3: S3Config{
			Endpoint:        "https://account.r2.cloudflarestorage.com",
			Bucket:          "payloads",
			AccessKeyID:     "AKID",
			SecretAccessKey: "secret",
			PublicURLBase:   "https://cdn.example.com/payloads",
		},
	})

	exclusive := []struct {
		uri   string
		owner string
	}{
		{"data:application/json;base64,e30=", "data-uri"},
		{"ipfs://QmTestCid", "ipfs"},
		{"http://example.com/content.json", "http"},
	}

	for _, tt := range exclusive {
		t.Run(tt.uri, func(t *testing.T) {
			var claimed []string
			for _, b := range backends {
				if b.CanHandle(tt.uri) {
					claimed = append(claimed, b.Name())
				}
			}
			require.Len(t, claimed, 1)
			assert.Equal(t, tt.owner, claimed[0])
		})
	}

	t.Run("object storage locator dispatches to s3 first", func(t *testing.T) {
		for _, uri := range []string{
			"https://account.r2.cloudflarestorage.com/payloads/abc.json",
			"https://cdn.example.com/payloads/abc.json",
		} {
			var first string
			for _, b := range backends {
				if b.CanHandle(uri) {
					first = b.Name()
					break
				}
			}
			assert.Equal(t, "s3", first, uri)
		}
	})
}
