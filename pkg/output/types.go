// Package output provides formatting and output generation for parsed chats.
package output

import (
	"time"

	"github.com/ccollicutt/chatlog/pkg/chat"
	"github.com/ccollicutt/chatlog/pkg/parser"
)

// Report is the renderable view of a parsed chat.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary

	// Entries is the full entry list in file order.
	Entries []parser.Entry

	// Metadata provides context about the source.
	Metadata Metadata
}

// Summary provides aggregate statistics.
type Summary struct {
	// EntryCount is the number of entries in the chat.
	EntryCount int

	// SenderCount is the number of distinct senders.
	SenderCount int

	// First and Last bound the chat's timeline. Both are zero when no
	// entry carries a parseable timestamp.
	First time.Time
	Last  time.Time
}

// Metadata provides context about the report.
type Metadata struct {
	// Source is the export file the chat was read from.
	Source string

	// GeneratedAt is when the report was built.
	GeneratedAt time.Time
}

// NewReport creates a Report from a chat.
func NewReport(c *chat.Chat, source string) *Report {
	report := &Report{
		Entries: c.Entries(),
		Metadata: Metadata{
			Source:      source,
			GeneratedAt: time.Now(),
		},
		Summary: Summary{
			EntryCount:  c.Len(),
			SenderCount: len(c.Senders()),
		},
	}

	for _, e := range report.Entries {
		ts, err := e.When()
		if err != nil {
			continue
		}
		if report.Summary.First.IsZero() || ts.Before(report.Summary.First) {
			report.Summary.First = ts
		}
		if ts.After(report.Summary.Last) {
			report.Summary.Last = ts
		}
	}

	return report
}
