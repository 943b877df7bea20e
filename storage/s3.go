package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws/credentials"
	v4 "github.com/aws/aws-sdk-go/aws/signer/v4"

	"github.com/hpp-io/noosphere-sdk-sub001/interfaces"
)

// DefaultS3Region is used when no region is configured. S3-compatible
// stores like R2 accept it verbatim.
const DefaultS3Region = "auto"

// S3Config configures the object storage backend for S3-compatible
// services addressed path-style (endpoint/bucket/key).
type S3Config struct {
	// Endpoint is the service base URL, e.g. https://<account>.r2.cloudflarestorage.com.
	Endpoint string

	// Bucket is the target bucket name.
	Bucket string

	// AccessKeyID and SecretAccessKey sign write requests.
	AccessKeyID     string
	SecretAccessKey string

	// Region for request signing. Defaults to "auto".
	Region string

	// KeyPrefix is prepended to object keys when set.
	KeyPrefix string

	// PublicURLBase, when set, is the read-access base returned in
	// upload locators instead of the endpoint/bucket path.
	PublicURLBase string
}

// S3Backend stores content in S3-compatible object storage. Writes are
// signed PUTs (signature version 4); reads are plain GETs against the
// public or endpoint URL.
type S3Backend struct {
	cfg          S3Config
	bucketPrefix string
	signer       *v4.Signer
	client       *http.Client
	log          *slog.Logger
}

// NewS3Backend creates an object storage backend. A nil client gets a
// default with a 30 second timeout.
func NewS3Backend(cfg S3Config, client *http.Client, log *slog.Logger) *S3Backend {
	cfg.Endpoint = strings.TrimSuffix(cfg.Endpoint, "/")
	cfg.PublicURLBase = strings.TrimSuffix(cfg.PublicURLBase, "/")
	if cfg.Region == "" {
		cfg.Region = DefaultS3Region
	}
	if client == nil {
		client = newHTTPClient()
	}

	var signer *v4.Signer
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		signer = v4.NewSigner(
			credentials.NewStaticCredentials(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
			func(s *v4.Signer) { s.DisableURIPathEscaping = true },
		)
	}

	return &S3Backend{
		cfg:          cfg,
		bucketPrefix: cfg.Endpoint + "/" + cfg.Bucket,
		signer:       signer,
		client:       client,
		log:          ensureLogger(log),
	}
}

// Name returns a unique identifier for this storage backend.
func (b *S3Backend) Name() string {
	return "s3"
}

// IsConfigured requires endpoint, bucket, and both credential fields.
func (b *S3Backend) IsConfigured() bool {
	return b.cfg.Endpoint != "" && b.cfg.Bucket != "" &&
		b.cfg.AccessKeyID != "" && b.cfg.SecretAccessKey != ""
}

// CanHandle matches HTTPS locators under the endpoint/bucket path or,
// when configured, the public URL base. Plain HTTP never matches.
func (b *S3Backend) CanHandle(uri string) bool {
	if !strings.HasPrefix(uri, "https://") {
		return false
	}
	if b.cfg.Endpoint != "" && b.cfg.Bucket != "" && strings.HasPrefix(uri, b.bucketPrefix) {
		return true
	}
	return b.cfg.PublicURLBase != "" && strings.HasPrefix(uri, b.cfg.PublicURLBase)
}

// Upload PUTs data under a content-addressed key with a signature
// version 4 Authorization header. The returned locator prefers the
// public URL base when one is configured.
func (b *S3Backend) Upload(ctx context.Context, data []byte) (interfaces.UploadResult, error) {
	if !b.IsConfigured() {
		return interfaces.UploadResult{}, fmt.Errorf("%w: S3 upload requires endpoint, bucket, and credentials", interfaces.ErrNotConfigured)
	}

	start := time.Now()
	hash := interfaces.ComputeContentHash(data)
	key := b.objectKey(hash)
	uploadURL := b.bucketPrefix + "/" + key

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, bytes.NewReader(data))
	if err != nil {
		return interfaces.UploadResult{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Signing sets Authorization, X-Amz-Date, and X-Amz-Content-Sha256
	// from the canonical request and the payload digest.
	if _, err := b.signer.Sign(req, bytes.NewReader(data), "s3", b.cfg.Region, time.Now().UTC()); err != nil {
		return interfaces.UploadResult{}, fmt.Errorf("failed to sign request: %w", err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return interfaces.UploadResult{}, wrapNetErr(ctx, "S3 upload", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return interfaces.UploadResult{}, fmt.Errorf("S3 upload failed: %d %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	uri := uploadURL
	if b.cfg.PublicURLBase != "" {
		uri = b.cfg.PublicURLBase + "/" + key
	}

	b.log.Debug("Stored content in object storage",
		slog.String("bucket", b.cfg.Bucket),
		slog.String("key", key),
		slog.String("content_hash", hash.String()[:16]),
		slog.Duration("duration", time.Since(start)))

	return interfaces.UploadResult{
		URI:       uri,
		ContentID: key,
	}, nil
}

// Download issues a plain GET against the locator. Read access relies
// on the bucket or public base being readable without signing.
func (b *S3Backend) Download(ctx context.Context, uri string) ([]byte, error) {
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
		return nil, wrapNetErr(ctx, "S3 download", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b.log.Warn("S3 download returned non-success status",
			slog.String("uri", uri),
			slog.String("status", resp.Status),
			slog.Duration("duration", time.Since(start)))
		return nil, fmt.Errorf("S3 download failed: %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}

	b.log.Debug("Fetched content from object storage",
		slog.String("uri", uri),
		slog.Int("size", len(data)),
		slog.Duration("duration", time.Since(start)))

	return data, nil
}

// Available reports whether the backend is usable. Probing a bucket
// requires a signed request, so configuration presence is the proxy.
func (b *S3Backend) Available(ctx context.Context) bool {
	return b.IsConfigured()
}

// objectKey builds the content-addressed object key, optionally under
// the configured prefix.
func (b *S3Backend) objectKey(hash interfaces.ContentHash) string {
	name := hash.String() + ".json"
	if b.cfg.KeyPrefix == "" {
		return name
	}
	return path.Join(strings.Trim(b.cfg.KeyPrefix, "/"), name)
}
