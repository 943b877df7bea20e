// Package interfaces defines the core types and contracts of the payload
// storage system, separating interface definitions from implementations.
//
// # Data Model
//
// Payload: a {contentHash, uri} pair identifying stored content. The hash
// is the integrity anchor; the URI names exactly one retrieval mechanism
// by its scheme (data:, ipfs://, http(s)://, or a configured object
// storage URL). A payload with an empty URI is inline: its bytes travel
// out-of-band and only the hash is carried.
//
// ContentHash: a 32-byte SHA-256 digest. The all-zero value is a sentinel
// meaning "no verifiable hash"; verification against it always fails,
// since absence of a real hash means there is nothing authoritative to
// check.
//
// UploadResult and ResolveResult carry the outcomes of backend uploads
// and payload resolution. A verification mismatch during resolution is
// reported through ResolveResult.Verified rather than an error, leaving
// the policy decision to the caller.
//
// # Storage Contract
//
// StorageBackend is implemented once per storage medium (data URI, plain
// HTTP, IPFS, S3-compatible object storage). Backends are immutable
// after construction, hold no external resources, and are safe to share
// across concurrent operations.
package interfaces
