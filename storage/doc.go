// Package storage provides the pluggable backends that place payload
// content behind a locator URI and fetch it back.
//
// Four variants implement the interfaces.StorageBackend contract:
//
//   - DataURIBackend embeds content directly in the locator as a base64
//     data URI; no remote side exists.
//   - HTTPBackend is a read-only pass-through fetcher for http(s)
//     locators; uploads are structurally unsupported.
//   - IPFSBackend pins content through a pinning service or a local
//     node's add API and reads through an HTTP gateway, using ipfs://<cid>
//     locators.
//   - S3Backend writes to S3-compatible object storage with signature
//     version 4 signed PUTs and reads with plain GETs, using
//     <endpoint>/<bucket>/<key> or <publicUrlBase>/<key> locators.
//
// Backends are immutable after construction and safe for concurrent
// use. Each answers CanHandle as a pure predicate on the locator prefix
// and IsConfigured as a pure predicate on its configuration, so a
// resolver can probe them without side effects.
//
// Factory assembles the default priority-ordered list from an aggregate
// Config, skipping variants that lack their minimum configuration.
package storage
