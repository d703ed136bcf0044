package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

// FileSource implements EntrySource for reading a single export file.
// Continuation lines are reattached to the preceding header line, so
// each call to Next yields one complete, possibly multi-line, entry.
type FileSource struct {
	path    string
	pattern *regexp.Regexp

	file    *os.File
	scanner *bufio.Scanner
	open    *Entry
	done    bool
}

// NewFileSource creates an EntrySource over the export file at path
// using the default header pattern.
func NewFileSource(path string) *FileSource {
	return NewFileSourceWithPattern(path, DefaultHeaderPattern)
}

// NewFileSourceWithPattern creates an EntrySource with a custom header
// pattern. The pattern must capture date, time, sender, and message,
// in that order.
func NewFileSourceWithPattern(path string, pattern *regexp.Regexp) *FileSource {
	return &FileSource{
		path:    path,
		pattern: pattern,
	}
}

// Next returns the next complete entry.
// Returns io.EOF once the file is exhausted and the final entry has
// been returned.
func (s *FileSource) Next(ctx context.Context) (*Entry, error) {
	if s.done {
		return nil, io.EOF
	}

	if s.scanner == nil {
		if err := s.openFile(); err != nil {
			return nil, err
		}
	}

	for {
		// Check for context cancellation
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if !s.scanner.Scan() {
			break
		}

		line := strings.TrimSpace(s.scanner.Text())
		if line == "" {
			continue
		}
		if !utf8.ValidString(line) {
			return nil, fmt.Errorf("reading %s: not valid UTF-8 text", s.path)
		}

		entry := splitLine(s.pattern, line)
		if entry.Date != "" {
			// Header line: commit the entry in progress, if any,
			// and start a new one.
			if s.open != nil {
				completed := s.open
				s.open = &entry
				return completed, nil
			}
			s.open = &entry
			continue
		}

		// Continuation line. Lines before the first header have no
		// entry to attach to and are discarded.
		if s.open != nil {
			s.open.Message += "\n" + line
		}
	}

	if err := s.scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	// File exhausted: the entry still in progress is the final one.
	s.done = true
	if s.open != nil {
		completed := s.open
		s.open = nil
		return completed, nil
	}
	return nil, io.EOF
}

// Close releases the underlying file.
func (s *FileSource) Close() error {
	if s.file != nil {
		err := s.file.Close()
		s.file = nil
		s.scanner = nil
		return err
	}
	return nil
}

func (s *FileSource) openFile() error {
	f, err := os.Open(s.path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("opening chat export %s: %w", s.path, err)
	}

	s.file = f
	s.scanner = bufio.NewScanner(f)
	s.scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024) // 1MB max line size

	return nil
}
