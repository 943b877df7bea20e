package interfaces

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// ContentHash is a 32-byte SHA-256 digest uniquely identifying content.
// The zero value is the ZERO_HASH sentinel: it means "no verifiable hash
// was supplied" and never satisfies verification.
type ContentHash [32]byte

// ZeroHash is the sentinel digest meaning no verifiable hash exists.
var ZeroHash = ContentHash{}

// ComputeContentHash calculates the content hash of data.
func ComputeContentHash(data []byte) ContentHash {
	return ContentHash(sha256.Sum256(data))
}

// ParseContentHash decodes a hex-encoded content hash, accepting an
// optional 0x prefix.
func ParseContentHash(source string) (ContentHash, error) {
	clean := strings.TrimPrefix(source, "0x")
	if len(clean) != 64 {
		return ContentHash{}, errors.New("invalid content hash length: hex string must be 64 characters")
	}

	raw, err := hex.DecodeString(clean)
	if err != nil {
		return ContentHash{}, fmt.Errorf("invalid hex format: %w", err)
	}

	var hash [32]byte
	copy(hash[:], raw)
	return ContentHash(hash), nil
}

// String returns hex representation.
func (h ContentHash) String() string {
	return hex.EncodeToString(h[:])
}

// Bytes returns the raw 32-byte digest.
func (h ContentHash) Bytes() []byte {
	return h[:]
}

// Equal compares two content hashes.
func (h ContentHash) Equal(other ContentHash) bool {
	return bytes.Equal(h[:], other[:])
}

// IsZero reports whether h is the ZERO_HASH sentinel.
func (h ContentHash) IsZero() bool {
	return h == ZeroHash
}

// Verify recomputes the digest of data and compares it against h.
// Returns false on mismatch and false unconditionally when h is the
// zero sentinel, since there is nothing authoritative to check.
func (h ContentHash) Verify(data []byte) bool {
	if h.IsZero() {
		return false
	}
	return ComputeContentHash(data) == h
}

// Payload identifies stored content by its hash and a locator URI.
// An empty URI means the content travels out-of-band (inline) and the
// payload carries only the hash for later verification. Payloads are
// immutable once created.
type Payload struct {
	ContentHash ContentHash `json:"contentHash"`
	URI         string      `json:"uri"`
}

// InlinePayload builds a payload with no locator and the real hash of
// data, for callers that transmit the bytes alongside the payload.
func InlinePayload(data []byte) Payload {
	return Payload{ContentHash: ComputeContentHash(data)}
}

// UploadResult describes where a backend placed uploaded content.
// ContentID is backend-specific: a CID for IPFS, an object key for
// object storage, the hex digest for data URIs.
type UploadResult struct {
	URI       string `json:"uri"`
	ContentID string `json:"contentId"`
}

// ResolveResult carries resolved content together with the outcome of
// integrity verification. Verified is true only when a non-zero hash
// was available and matched the fetched bytes; a mismatch is not an
// error, since callers may want the content regardless.
type ResolveResult struct {
	Content  []byte `json:"content"`
	Verified bool   `json:"verified"`
}

// PayloadType classifies a payload by its locator scheme.
type PayloadType int

const (
	// PayloadTypeUnknown for URIs matching no known scheme.
	PayloadTypeUnknown PayloadType = iota
	// PayloadTypeInline for payloads without a locator.
	PayloadTypeInline
	// PayloadTypeDataURI for data: locators.
	PayloadTypeDataURI
	// PayloadTypeIPFS for ipfs:// locators.
	PayloadTypeIPFS
	// PayloadTypeHTTPS for http:// and https:// locators.
	PayloadTypeHTTPS
)

// String returns the type name.
func (pt PayloadType) String() string {
	switch pt {
	case PayloadTypeInline:
		return "inline"
	case PayloadTypeDataURI:
		return "data-uri"
	case PayloadTypeIPFS:
		return "ipfs"
	case PayloadTypeHTTPS:
		return "https"
	default:
		return "unknown"
	}
}

// DetectPayloadType classifies a payload purely by its URI prefix, or
// absence of one. It never touches a backend.
func DetectPayloadType(p Payload) PayloadType {
	switch {
	case p.URI == "":
		return PayloadTypeInline
	case strings.HasPrefix(p.URI, "data:"):
		return PayloadTypeDataURI
	case strings.HasPrefix(p.URI, "ipfs://"):
		return PayloadTypeIPFS
	case strings.HasPrefix(p.URI, "http://"), strings.HasPrefix(p.URI, "https://"):
		return PayloadTypeHTTPS
	default:
		return PayloadTypeUnknown
	}
}
