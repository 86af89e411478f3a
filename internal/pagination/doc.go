// Package pagination provides page-window arithmetic for the posts table.
//
// This package contains:
//   - Pager: a 1-based page cursor over an in-memory slice with bounded advance/retreat
//   - Meta: a snapshot of the pager position for rendering page indicators
//
// Pages are fixed-size, contiguous windows over the full item sequence. Moving
// past either end is a no-op rather than a wrap or an error.
package pagination
