// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"regexp"
	"strings"
)

// Segment is one run of highlighted or plain text. Concatenating the Text
// of every segment reproduces the input exactly.
type Segment struct {
	Text  string
	Match bool
}

// Highlight splits text into segments, marking every case-insensitive
// occurrence of query. The query is escaped before pattern construction,
// so user input full of regex metacharacters is matched literally. An
// empty query or empty text comes back as-is.
func Highlight(text, query string) []Segment {
	if text == "" {
		return nil
	}
	if query == "" {
		return []Segment{{Text: text}}
	}

	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(query))
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return []Segment{{Text: text}}
	}

	var segments []Segment
	prev := 0
	for _, loc := range locs {
		if loc[0] > prev {
			segments = append(segments, Segment{Text: text[prev:loc[0]]})
		}
		segments = append(segments, Segment{Text: text[loc[0]:loc[1]], Match: true})
		prev = loc[1]
	}
	if prev < len(text) {
		segments = append(segments, Segment{Text: text[prev:]})
	}
	return segments
}

// Render joins segments, wrapping matched runs in the given markers. The
// CLI uses it for match-context snippets.
func Render(segments []Segment, open, close string) string {
	var b strings.Builder
	for _, seg := range segments {
		if seg.Match {
			b.WriteString(open)
			b.WriteString(seg.Text)
			b.WriteString(close)
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}
