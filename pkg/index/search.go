package index

import "strings"

// Result is one search hit.
type Result struct {
	Source   string
	Position int
	Date     string
	Time     string
	Sender   string
	Snippet  string
}

// DefaultSearchLimit caps result counts when the caller passes a
// non-positive limit.
const DefaultSearchLimit = 20

// Search runs a full-text query over indexed messages and returns the
// best-ranked hits, at most limit of them.
func (d *DB) Search(query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	rows, err := d.db.Query(`
		SELECT e.source, e.position, e.date, e.time, e.sender, e.message
		FROM entries_fts f
		JOIN entries e ON e.rowid = f.rowid
		WHERE entries_fts MATCH ?
		ORDER BY rank
		LIMIT ?`,
		ftsQuery(query), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var message string
		if err := rows.Scan(&r.Source, &r.Position, &r.Date, &r.Time, &r.Sender, &message); err != nil {
			return nil, err
		}
		r.Snippet = makeSnippet(message, query, 40)
		results = append(results, r)
	}
	return results, rows.Err()
}

// ftsQuery quotes the query as a single FTS5 phrase so user input is
// not interpreted as FTS syntax.
func ftsQuery(q string) string {
	return `"` + strings.ReplaceAll(q, `"`, `""`) + `"`
}

// makeSnippet extracts a snippet around the first occurrence of query
// in text, rune-safe, with ellipses marking truncation.
func makeSnippet(text, query string, contextChars int) string {
	lower := strings.ToLower(text)
	idx := strings.Index(lower, strings.ToLower(query))
	if idx < 0 {
		// no match in the message body, return the head
		runes := []rune(text)
		if len(runes) > contextChars*2 {
			return string(runes[:contextChars*2]) + "..."
		}
		return text
	}

	runes := []rune(text)
	runePos := len([]rune(text[:idx]))
	qLen := len([]rune(query))

	start := runePos - contextChars
	if start < 0 {
		start = 0
	}
	end := runePos + qLen + contextChars
	if end > len(runes) {
		end = len(runes)
	}

	snippet := string(runes[start:end])
	if start > 0 {
		snippet = "..." + snippet
	}
	if end < len(runes) {
		snippet += "..."
	}
	return snippet
}
