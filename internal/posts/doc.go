// Package posts loads the remote list of posts shown by the pager widget.
//
// The package contains:
//   - Record: one post as returned by the endpoint
//   - Client: a single GET against the configured endpoint
//   - FetchError: the one error type for transport, status, and decode failures
//   - Loader: the LoadState machine (Idle, Loading, Loaded, Failed) with change subscribers
package posts
