package output

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ccollicutt/chatlog/pkg/parser"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "chatlog: %d entries from %d senders\n",
		report.Summary.EntryCount,
		report.Summary.SenderCount)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	// Header
	fmt.Fprintln(w, "=== Chat Report ===")
	fmt.Fprintln(w)

	if report.Metadata.Source != "" {
		fmt.Fprintf(w, "Source: %s\n", report.Metadata.Source)
	}
	if !report.Summary.First.IsZero() {
		fmt.Fprintf(w, "Timeline: %s to %s\n",
			report.Summary.First.Format(parser.TimestampLayout),
			report.Summary.Last.Format(parser.TimestampLayout))
	}
	fmt.Fprintf(w, "Entries: %d\n", report.Summary.EntryCount)
	fmt.Fprintf(w, "Senders: %d\n", report.Summary.SenderCount)

	if f.opts.Verbose {
		fmt.Fprintln(w)
		for i := range report.Entries {
			f.formatEntry(&report.Entries[i], w)
		}
	}

	return nil
}

func (f *TextFormatter) formatEntry(e *parser.Entry, w io.Writer) {
	lines := strings.Split(e.Message, "\n")
	fmt.Fprintf(w, "[%s, %s] %s: %s\n", e.Date, e.Time, e.Sender, lines[0])
	for _, line := range lines[1:] {
		fmt.Fprintf(w, "  %s\n", line)
	}
}
