// Package datauri encodes byte content into self-describing data URIs
// and decodes them back. The wire format is
//
//	data:<mimeType>;base64,<base64Payload>
//
// with application/json as the default mime type. Encoding handles
// arbitrary byte sequences, not just valid UTF-8, and round-trips
// exactly including empty input.
package datauri

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/hpp-io/noosphere-sdk-sub001/interfaces"
)

const (
	// Scheme is the data URI scheme prefix.
	Scheme = "data:"

	// DefaultMimeType is used when the caller does not supply one.
	DefaultMimeType = "application/json"

	encodingBase64 = "base64"
)

// Decoded holds the parsed parts of a data URI.
type Decoded struct {
	Content  []byte
	MimeType string
	Encoding string
}

// Encode wraps data as a base64 data URI. An empty mimeType defaults to
// application/json.
func Encode(data []byte, mimeType string) string {
	if mimeType == "" {
		mimeType = DefaultMimeType
	}
	return fmt.Sprintf("%s%s;%s,%s", Scheme, mimeType, encodingBase64, base64.StdEncoding.EncodeToString(data))
}

// Decode parses a data URI into its content, mime type, and encoding
// tag. URIs without the data: prefix fail with ErrUnsupportedURI.
func Decode(uri string) (Decoded, error) {
	if !strings.HasPrefix(uri, Scheme) {
		return Decoded{}, fmt.Errorf("%w: not a data URI", interfaces.ErrUnsupportedURI)
	}

	meta, payload, found := strings.Cut(strings.TrimPrefix(uri, Scheme), ",")
	if !found {
		return Decoded{}, fmt.Errorf("malformed data URI: missing payload separator")
	}

	mimeType, encoding, _ := strings.Cut(meta, ";")
	if encoding != encodingBase64 {
		return Decoded{}, fmt.Errorf("unsupported data URI encoding: %q", encoding)
	}

	content, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return Decoded{}, fmt.Errorf("failed to decode data URI payload: %w", err)
	}

	return Decoded{
		Content:  content,
		MimeType: mimeType,
		Encoding: encoding,
	}, nil
}
