package index

import (
	"path/filepath"
	"testing"

	"github.com/ccollicutt/chatlog/pkg/parser"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "chatlog.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

var testEntries = []parser.Entry{
	{Date: "01.01.23", Time: "10:00:00", Sender: "Alice", Message: "planning the weekend trip"},
	{Date: "01.01.23", Time: "10:00:05", Sender: "Bob", Message: "sounds good, bringing the tent"},
	{Date: "01.01.23", Time: "10:01:00", Sender: "Alice", Message: "weather looks fine"},
}

func TestReindexAndSearch(t *testing.T) {
	db := openTestDB(t)

	if err := db.Reindex("family.txt", testEntries); err != nil {
		t.Fatalf("Reindex() error = %v", err)
	}

	n, err := db.EntryCount()
	if err != nil {
		t.Fatalf("EntryCount() error = %v", err)
	}
	if n != 3 {
		t.Errorf("EntryCount() = %d, want 3", n)
	}

	results, err := db.Search("tent", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("Got %d results, want 1", len(results))
	}
	if results[0].Sender != "Bob" {
		t.Errorf("Sender = %q, want %q", results[0].Sender, "Bob")
	}
	if results[0].Position != 1 {
		t.Errorf("Position = %d, want 1", results[0].Position)
	}
}

func TestReindex_Replaces(t *testing.T) {
	db := openTestDB(t)

	if err := db.Reindex("family.txt", testEntries); err != nil {
		t.Fatalf("Reindex() error = %v", err)
	}

	// Reindexing the same source must not duplicate entries
	if err := db.Reindex("family.txt", testEntries[:1]); err != nil {
		t.Fatalf("Reindex() error = %v", err)
	}

	n, err := db.EntryCount()
	if err != nil {
		t.Fatalf("EntryCount() error = %v", err)
	}
	if n != 1 {
		t.Errorf("EntryCount() = %d, want 1", n)
	}
}

func TestDeleteSource(t *testing.T) {
	db := openTestDB(t)

	if err := db.Reindex("a.txt", testEntries); err != nil {
		t.Fatal(err)
	}
	if err := db.Reindex("b.txt", testEntries[:1]); err != nil {
		t.Fatal(err)
	}

	if err := db.DeleteSource("a.txt"); err != nil {
		t.Fatalf("DeleteSource() error = %v", err)
	}

	n, err := db.SourceCount()
	if err != nil {
		t.Fatalf("SourceCount() error = %v", err)
	}
	if n != 1 {
		t.Errorf("SourceCount() = %d, want 1", n)
	}

	// Deleted entries no longer match
	results, err := db.Search("weather", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Got %d results after delete, want 0", len(results))
	}
}

func TestSearch_NoMatch(t *testing.T) {
	db := openTestDB(t)

	if err := db.Reindex("family.txt", testEntries); err != nil {
		t.Fatal(err)
	}

	results, err := db.Search("submarine", 10)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Got %d results, want 0", len(results))
	}
}

func TestMakeSnippet(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		query   string
		context int
		want    string
	}{
		{
			name:    "short text returned whole",
			text:    "bringing the tent",
			query:   "tent",
			context: 40,
			want:    "bringing the tent",
		},
		{
			name:    "no match returns head",
			text:    "short message",
			query:   "zzz",
			context: 40,
			want:    "short message",
		},
		{
			name:    "long text is windowed",
			text:    "aaaaaaaaaa needle bbbbbbbbbb",
			query:   "needle",
			context: 4,
			want:    "...aaa needle bbb...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := makeSnippet(tt.text, tt.query, tt.context); got != tt.want {
				t.Errorf("makeSnippet() = %q, want %q", got, tt.want)
			}
		})
	}
}
