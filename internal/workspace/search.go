package workspace

import (
	"strings"
)

// Match is one line of a file that contains the search query.
type Match struct {
	Line  int    // 1-based
	Text  string // the whole line, trimmed
	Start int    // byte offset of the match within Text
}

// FileMatches groups the matches found in one file.
type FileMatches struct {
	File    *Node
	Matches []Match
}

// SearchResult is the outcome of a content search.
type SearchResult struct {
	Query string
	Files []FileMatches
}

// Total returns the number of matching lines across all files.
func (r SearchResult) Total() int {
	n := 0
	for _, f := range r.Files {
		n += len(f.Matches)
	}
	return n
}

// Search finds every line, in every file of the tree, that contains
// query case-insensitively. An empty query yields an empty result.
func (t *Tree) Search(query string) SearchResult {
	result := SearchResult{Query: query}
	if query == "" {
		return result
	}
	needle := strings.ToLower(query)

	for _, f := range t.Files() {
		var matches []Match
		for i, line := range strings.Split(f.Content, "\n") {
			trimmed := strings.TrimSpace(line)
			idx := strings.Index(strings.ToLower(trimmed), needle)
			if idx < 0 {
				continue
			}
			matches = append(matches, Match{Line: i + 1, Text: trimmed, Start: idx})
		}
		if len(matches) > 0 {
			result.Files = append(result.Files, FileMatches{File: f, Matches: matches})
		}
	}
	return result
}
