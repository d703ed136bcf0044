// Package chat provides an in-memory store of parsed chat entries with
// query and mutation operations.
package chat

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/ccollicutt/chatlog/pkg/parser"
)

// By selects which entry field a filter applies to.
type By int

const (
	// BySender filters on the sender field (the default).
	BySender By = iota

	// ByDate filters on the date field.
	ByDate

	// ByMessage filters on the message field.
	ByMessage
)

// String returns the field name the selector applies to.
func (b By) String() string {
	switch b {
	case BySender:
		return "sender"
	case ByDate:
		return "date"
	case ByMessage:
		return "message"
	default:
		return "unknown"
	}
}

// Chat owns an ordered collection of chat entries read from an export
// file, in file order. Chat is not safe for concurrent use; callers
// embedding it in a concurrent context must serialize access.
type Chat struct {
	entries []parser.Entry
}

// Open reads the export file at path and builds the entry collection.
// The whole file is read before Open returns; a path that cannot be
// opened or read surfaces as an error here.
func Open(ctx context.Context, path string) (*Chat, error) {
	src := parser.NewFileSource(path)
	defer src.Close()
	return OpenSource(ctx, src)
}

// OpenSource builds the entry collection by draining an
// already-constructed entry source, e.g. a MergedSource over several
// exports. The source is not closed.
func OpenSource(ctx context.Context, src parser.EntrySource) (*Chat, error) {
	c := &Chat{}
	for {
		entry, err := src.Next(ctx)
		if err == io.EOF {
			return c, nil
		}
		if err != nil {
			return nil, err
		}
		c.entries = append(c.entries, *entry)
	}
}

// Entries returns a copy of the entry collection in file order.
func (c *Chat) Entries() []parser.Entry {
	out := make([]parser.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Len returns the number of entries.
func (c *Chat) Len() int {
	return len(c.entries)
}

// Senders returns the distinct non-empty sender names, sorted.
func (c *Chat) Senders() []string {
	seen := make(map[string]struct{})
	for _, e := range c.entries {
		if e.Sender != "" {
			seen[e.Sender] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Messages returns the non-empty message texts in entry order.
func (c *Chat) Messages() []string {
	out := make([]string, 0, len(c.entries))
	for _, e := range c.entries {
		if e.Message != "" {
			out = append(out, e.Message)
		}
	}
	return out
}

// Filtered returns the entries whose field selected by the By selector
// contains any of the given substrings, in original order. Matching is
// case-sensitive. Entries whose selected field is empty never match.
func (c *Chat) Filtered(filters []string, by By) []parser.Entry {
	var out []parser.Entry
	for _, e := range c.entries {
		if matchesAny(field(e, by), filters) {
			out = append(out, e)
		}
	}
	return out
}

func field(e parser.Entry, by By) string {
	switch by {
	case BySender:
		return e.Sender
	case ByDate:
		return e.Date
	case ByMessage:
		return e.Message
	default:
		return ""
	}
}

func matchesAny(value string, filters []string) bool {
	if value == "" {
		return false
	}
	for _, f := range filters {
		if strings.Contains(value, f) {
			return true
		}
	}
	return false
}

// RemoveSender removes every entry whose sender exactly equals name.
// Removing a sender that does not occur is a no-op.
func (c *Chat) RemoveSender(name string) {
	kept := c.entries[:0]
	for _, e := range c.entries {
		if e.Sender != name {
			kept = append(kept, e)
		}
	}
	c.entries = kept
}

// RenameSender rewrites the sender of every entry whose sender exactly
// equals old, in place, preserving position and all other fields.
// Renaming a sender that does not occur is a no-op.
func (c *Chat) RenameSender(old, newName string) {
	for i := range c.entries {
		if c.entries[i].Sender == old {
			c.entries[i].Sender = newName
		}
	}
}
