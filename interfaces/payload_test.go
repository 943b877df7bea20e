package interfaces

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeContentHash_Deterministic(t *testing.T) {
	data := []byte(`{"test":"value"}`)

	first := ComputeContentHash(data)
	second := ComputeContentHash(data)

	assert.Equal(t, first, second)
	assert.True(t, first.Equal(second))
	assert.Len(t, first.String(), 64)
}

func TestComputeContentHash_DistinctInputs(t *testing.T) {
	a := ComputeContentHash([]byte("content"))
	b := ComputeContentHash([]byte("content2"))

	assert.False(t, a.Equal(b))
}

func TestContentHash_Verify(t *testing.T) {
	data := []byte("some payload bytes")
	hash := ComputeContentHash(data)

	assert.True(t, hash.Verify(data))
	assert.False(t, hash.Verify([]byte("tampered payload bytes")))
	assert.False(t, hash.Verify(nil))
}

func TestContentHash_ZeroNeverVerifies(t *testing.T) {
	data := []byte("anything")

	assert.True(t, ZeroHash.IsZero())
	assert.False(t, ZeroHash.Verify(data))
	assert.False(t, ZeroHash.Verify([]byte{}))
	assert.False(t, ZeroHash.Verify(nil))
}

func TestParseContentHash(t *testing.T) {
	data := []byte("round trip me")
	hash := ComputeContentHash(data)

	parsed, err := ParseContentHash(hash.String())
	require.NoError(t, err)
	assert.Equal(t, hash, parsed)

	// 0x prefix is accepted
	prefixed, err := ParseContentHash("0x" + hash.String())
	require.NoError(t, err)
	assert.Equal(t, hash, prefixed)
}

func TestParseContentHash_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"too short", "abcd"},
		{"too long", strings.Repeat("ab", 33)},
		{"not hex", strings.Repeat("zz", 32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseContentHash(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestInlinePayload(t *testing.T) {
	data := []byte(`{"job":"input"}`)

	p := InlinePayload(data)

	assert.Empty(t, p.URI)
	assert.Equal(t, ComputeContentHash(data), p.ContentHash)
	assert.True(t, p.ContentHash.Verify(data))
}

func TestDetectPayloadType(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected PayloadType
	}{
		{"inline", "", PayloadTypeInline},
		{"data uri", "data:application/json;base64,e30=", PayloadTypeDataURI},
		{"ipfs", "ipfs://QmTestCid", PayloadTypeIPFS},
		{"http", "http://example.com/content", PayloadTypeHTTPS},
		{"https", "https://example.com/content", PayloadTypeHTTPS},
		{"unknown scheme", "file:///tmp/content", PayloadTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectPayloadType(Payload{URI: tt.uri})
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestPayloadType_String(t *testing.T) {
	assert.Equal(t, "inline", PayloadTypeInline.String())
	assert.Equal(t, "data-uri", PayloadTypeDataURI.String())
	assert.Equal(t, "ipfs", PayloadTypeIPFS.String())
	assert.Equal(t, "https", PayloadTypeHTTPS.String())
	assert.Equal(t, "unknown", PayloadTypeUnknown.String())
}
