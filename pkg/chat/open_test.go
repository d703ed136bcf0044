package chat

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ccollicutt/chatlog/pkg/config"
)

func TestOpenConfigured_MergesSources(t *testing.T) {
	dir := t.TempDir()

	files := []struct {
		name    string
		content string
	}{
		{"alice.txt", "[01.01.23, 10:00:00] Alice: first\n[01.01.23, 10:00:20] Alice: third\n"},
		{"bob.txt", "[01.01.23, 10:00:10] Bob: second\n"},
	}

	cfg := config.DefaultConfig()
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, []byte(f.content), 0644); err != nil {
			t.Fatal(err)
		}
		cfg.Sources = append(cfg.Sources, path)
	}

	c, err := OpenConfigured(context.Background(), cfg)
	if err != nil {
		t.Fatalf("OpenConfigured() error = %v", err)
	}

	want := []string{"first", "second", "third"}
	messages := c.Messages()
	if len(messages) != len(want) {
		t.Fatalf("Got %d messages, want %d", len(messages), len(want))
	}
	for i, msg := range want {
		if messages[i] != msg {
			t.Errorf("messages[%d] = %q, want %q", i, messages[i], msg)
		}
	}
}

func TestOpenConfigured_PatternOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dash.txt")
	// Same shape as the default format but with dashes around the
	// timestamp block instead of brackets.
	content := "-01.01.23, 10:00:00- Alice: Hello\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Sources = []string{path}
	cfg.HeaderFormat.Pattern = `^-(\d{2}\.\d{2}\.\d{2}), (\d{2}:\d{2}:\d{2})- ([^:]+): (.+)$`

	c, err := OpenConfigured(context.Background(), cfg)
	if err != nil {
		t.Fatalf("OpenConfigured() error = %v", err)
	}

	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
	if got := c.Entries()[0].Sender; got != "Alice" {
		t.Errorf("Sender = %q, want %q", got, "Alice")
	}
}

func TestOpenConfigured_InvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig() // no sources

	_, err := OpenConfigured(context.Background(), cfg)
	if err == nil {
		t.Error("OpenConfigured() expected error for config without sources")
	}
}
