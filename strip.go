package main

import (
	"regexp"
	"strings"
)

// Inline markdown patterns, applied in order. Order matters because the
// patterns overlap: bold must be consumed before italic so a ** pair is
// not eaten as two stray * markers, and likewise for underscores.
var (
	boldPattern           = regexp.MustCompile(`\*\*(.+?)\*\*`)
	italicPattern         = regexp.MustCompile(`\*(.+?)\*`)
	boldUnderscorePattern = regexp.MustCompile(`__(.+?)__`)
	italicUnderscorePat   = regexp.MustCompile(`_(.+?)_`)
	inlineCodePattern     = regexp.MustCompile("`(.+?)`")
	linkPattern           = regexp.MustCompile(`\[(.+?)\]\(.*?\)`)
	htmlTagPattern        = regexp.MustCompile(`<[^>]+>`)
)

// stripMarkdown removes inline markdown syntax from a single line,
// keeping the human-readable content. Links keep their label and lose
// the URL. This is a best-effort cosmetic pass, not a parser: lines
// with unbalanced markers may keep stray characters.
func stripMarkdown(line string) string {
	line = boldPattern.ReplaceAllString(line, "$1")
	line = italicPattern.ReplaceAllString(line, "$1")
	line = boldUnderscorePattern.ReplaceAllString(line, "$1")
	line = italicUnderscorePat.ReplaceAllString(line, "$1")
	line = inlineCodePattern.ReplaceAllString(line, "$1")
	line = linkPattern.ReplaceAllString(line, "$1")
	line = htmlTagPattern.ReplaceAllString(line, "")
	return line
}

// stripHeadingMarkers deletes the bold/italic/code marker characters
// themselves from a heading line. Unlike stripMarkdown this is not
// pair-aware; headings only need the glyphs gone, so character deletion
// is enough and much cheaper.
func stripHeadingMarkers(heading string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '*', '_', '`':
			return -1
		}
		return r
	}, heading)
}
