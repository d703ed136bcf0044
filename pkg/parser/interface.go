package parser

import (
	"context"
	"io"
)

// EntrySource provides an iterator over reassembled chat entries.
// Implementations must be safe for sequential access (not concurrent).
type EntrySource interface {
	// Next returns the next complete entry.
	// Returns io.EOF when no more entries are available.
	Next(ctx context.Context) (*Entry, error)

	// Close releases any resources held by the source.
	Close() error
}

// Ensure io.EOF is available for callers
var _ = io.EOF
