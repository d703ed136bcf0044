// Package parser provides chat export reading and entry reassembly.
package parser

import "time"

// TimestampLayout is the Go time layout for an entry's combined date
// and time fields, joined by a single space.
const TimestampLayout = "02.01.06 15:04:05"

// Entry represents a single reassembled chat message.
type Entry struct {
	// Date is the message date in DD.MM.YY format.
	Date string `json:"date"`

	// Time is the message time in HH:MM:SS format.
	Time string `json:"time"`

	// Sender is the participant name the message is attributed to.
	Sender string `json:"sender"`

	// Message is the message text. Messages spanning several physical
	// lines are joined with newline characters.
	Message string `json:"message"`
}

// When parses the entry's date and time fields into a time.Time using
// the default layout.
func (e Entry) When() (time.Time, error) {
	return e.WhenLayout(TimestampLayout)
}

// WhenLayout parses the entry's date and time fields with a custom
// layout, for exports whose date format was overridden in config.
func (e Entry) WhenLayout(layout string) (time.Time, error) {
	return time.Parse(layout, e.Date+" "+e.Time)
}
