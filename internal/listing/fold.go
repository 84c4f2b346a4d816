// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package listing decides which names in a static category or group page
// are visible under the origin toggles, and provides the name folding the
// rest of the application uses to compare record names.
package listing

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer strips combining marks: decompose, drop the marks,
// recompose. "Dāng Guī" and "Dang Gui" fold to the same key.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// FoldName canonicalizes a display name for lookup: diacritics stripped,
// lowercased, whitespace and hyphens removed.
func FoldName(name string) string {
	stripped, _, err := transform.String(foldTransformer, name)
	if err != nil {
		stripped = name
	}

	var b strings.Builder
	b.Grow(len(stripped))
	for _, r := range strings.ToLower(stripped) {
		if unicode.IsSpace(r) || r == '-' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// StripParenthetical cuts a trailing parenthetical qualifier, e.g.
// "Da Huang (wine-washed)" becomes "Da Huang ". Herb-group pages list
// preparation variants this way while the catalog records do not.
func StripParenthetical(name string) string {
	if i := strings.Index(name, "("); i >= 0 {
		return name[:i]
	}
	return name
}

// FoldGroupName folds a herb-group entry name, dropping any parenthetical
// variant suffix first.
func FoldGroupName(name string) string {
	return FoldName(StripParenthetical(name))
}
