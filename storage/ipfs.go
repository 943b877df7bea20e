package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	shell "github.com/ipfs/go-ipfs-api"

	"github.com/hpp-io/noosphere-sdk-sub001/interfaces"
)

const (
	// IPFSScheme is the IPFS locator prefix.
	IPFSScheme = "ipfs://"

	// DefaultIPFSGateway serves downloads when no gateway is configured.
	DefaultIPFSGateway = "https://ipfs.io/ipfs/"

	// DefaultPinataEndpoint is the pinning service's pin-JSON endpoint.
	DefaultPinataEndpoint = "https://api.pinata.cloud/pinning/pinJSONToIPFS"
)

// IPFSConfig configures the IPFS backend. Uploads go through the
// pinning service when the credential pair is set, otherwise through a
// local node's add API. Downloads always go through the gateway.
type IPFSConfig struct {
	// PinataAPIKey and PinataSecretKey authenticate against the pinning
	// service. Both must be set for the pinning path to be used.
	PinataAPIKey    string
	PinataSecretKey string

	// PinataEndpoint overrides the pin-JSON endpoint, for tests and
	// self-hosted pinning services.
	PinataEndpoint string

	// NodeURL is a local IPFS node API address, e.g. http://127.0.0.1:5001.
	NodeURL string

	// GatewayURL prefixes CIDs for downloads. Defaults to the public
	// ipfs.io gateway.
	GatewayURL string
}

// IPFSBackend stores content on IPFS via a pinning service or a local
// node, and retrieves it through an HTTP gateway.
type IPFSBackend struct {
	cfg     IPFSConfig
	shell   *shell.Shell
	gateway string
	client  *http.Client
	log     *slog.Logger
}

// NewIPFSBackend creates an IPFS storage backend. Defaults are filled
// in here so instances never consult mutable package state.
func NewIPFSBackend(cfg IPFSConfig, log *slog.Logger) *IPFSBackend {
	if cfg.PinataEndpoint == "" {
		cfg.PinataEndpoint = DefaultPinataEndpoint
	}

	gateway := cfg.GatewayURL
	if gateway == "" {
		gateway = DefaultIPFSGateway
	}
	if !strings.HasSuffix(gateway, "/") {
		gateway += "/"
	}

	var sh *shell.Shell
	if cfg.NodeURL != "" {
		sh = shell.NewShell(cfg.NodeURL)
	}

	return &IPFSBackend{
		cfg:     cfg,
		shell:   sh,
		gateway: gateway,
		client:  newHTTPClient(),
		log:     ensureLogger(log),
	}
}

// Name returns a unique identifier for this storage backend.
func (b *IPFSBackend) Name() string {
	return "ipfs"
}

// IsConfigured reports true when either the pinning credential pair or
// a local node URL is present.
func (b *IPFSBackend) IsConfigured() bool {
	if b.cfg.PinataAPIKey != "" && b.cfg.PinataSecretKey != "" {
		return true
	}
	return b.cfg.NodeURL != ""
}

// CanHandle matches ipfs:// locators only.
func (b *IPFSBackend) CanHandle(uri string) bool {
	return strings.HasPrefix(uri, IPFSScheme)
}

// Upload pins data to IPFS and returns an ipfs://<cid> locator. The
// pinning service takes precedence over the local node when both are
// configured.
func (b *IPFSBackend) Upload(ctx context.Context, data []byte) (interfaces.UploadResult, error) {
	switch {
	case b.cfg.PinataAPIKey != "" && b.cfg.PinataSecretKey != "":
		return b.uploadPinata(ctx, data)
	case b.cfg.NodeURL != "":
		return b.uploadNode(ctx, data)
	default:
		return interfaces.UploadResult{}, fmt.Errorf("%w: IPFS upload requires either pinning credentials or local node URL", interfaces.ErrNotConfigured)
	}
}

// uploadPinata posts the JSON content to the pinning service's pin-JSON
// endpoint with the credential header pair.
func (b *IPFSBackend) uploadPinata(ctx context.Context, data []byte) (interfaces.UploadResult, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.cfg.PinataEndpoint, bytes.NewReader(data))
	if err != nil {
		return interfaces.UploadResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("pinata_api_key", b.cfg.PinataAPIKey)
	req.Header.Set("pinata_secret_api_key", b.cfg.PinataSecretKey)

	resp, err := b.client.Do(req)
	if err != nil {
		return interfaces.UploadResult{}, wrapNetErr(ctx, "Pinata upload", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return interfaces.UploadResult{}, fmt.Errorf("Pinata upload failed: %s", resp.Status)
	}

	var pinned struct {
		IpfsHash string `json:"IpfsHash"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&pinned); err != nil {
		return interfaces.UploadResult{}, fmt.Errorf("failed to decode Pinata response: %w", err)
	}
	if pinned.IpfsHash == "" {
		return interfaces.UploadResult{}, fmt.Errorf("Pinata response missing IpfsHash")
	}

	b.log.Debug("Pinned content via pinning service",
		slog.String("cid", pinned.IpfsHash),
		slog.Int("size", len(data)),
		slog.Duration("duration", time.Since(start)))

	return interfaces.UploadResult{
		URI:       IPFSScheme + pinned.IpfsHash,
		ContentID: pinned.IpfsHash,
	}, nil
}

// uploadNode adds the raw bytes through the local node's add API.
func (b *IPFSBackend) uploadNode(ctx context.Context, data []byte) (interfaces.UploadResult, error) {
	start := time.Now()

	cid, err := b.shell.Add(bytes.NewReader(data))
	if err != nil {
		return interfaces.UploadResult{}, wrapNetErr(ctx, "Local IPFS upload failed", err)
	}

	b.log.Debug("Added content to local IPFS node",
		slog.String("cid", cid),
		slog.String("node", b.cfg.NodeURL),
		slog.Int("size", len(data)),
		slog.Duration("duration", time.Since(start)))

	return interfaces.UploadResult{
		URI:       IPFSScheme + cid,
		ContentID: cid,
	}, nil
}

// Download strips the ipfs:// prefix and fetches the CID through the
// configured gateway.
func (b *IPFSBackend) Download(ctx context.Context, uri string) ([]byte, error) {
	if !b.CanHandle(uri) {
		return nil, fmt.Errorf("%w: %s", interfaces.ErrUnsupportedURI, uri)
	}

	start := time.Now()
	cid := strings.TrimPrefix(uri, IPFSScheme)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.gateway+cid, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, wrapNetErr(ctx, "IPFS fetch", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b.log.Warn("IPFS gateway returned non-success status",
			slog.String("cid", cid),
			slog.String("status", resp.Status),
			slog.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("IPFS fetch failed: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read gateway response: %w", err)
	}

	b.log.Debug("Fetched content from IPFS gateway",
		slog.String("cid", cid),
		slog.Int("size", len(data)),
		slog.Duration("duration", time.Since(start)))

	return data, nil
}

// Available probes the local node when one is configured. Gateway-only
// instances report true: the public gateway is assumed reachable.
func (b *IPFSBackend) Available(ctx context.Context) bool {
	if b.shell != nil {
		return b.shell.IsUp()
	}
	return true
}
