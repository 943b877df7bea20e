// Package resolver orchestrates payload encoding and resolution over an
// ordered list of storage backends.
//
// Encode applies the size policy: content at or under the upload
// threshold becomes a self-contained data URI payload, larger content
// is handed to the first configured backend and referenced by the
// locator it returns. Either way the payload carries the SHA-256 hash
// of the original bytes.
//
// Resolve reverses the process: it dispatches the locator to the first
// backend that claims it, fetches the bytes, and reports whether they
// match the payload's hash. Callers that already hold the bytes pass
// them as a fallback and skip fetching entirely.
//
// The resolver deliberately has no retry, backend fallback, or caching.
// Failures surface with the originating backend's error so the calling
// orchestrator can apply its own policy.
package resolver
