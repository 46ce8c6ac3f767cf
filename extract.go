package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	headingPattern  = regexp.MustCompile(`^(#{1,2}) (.+)$`)
	orderedListPat  = regexp.MustCompile(`^\d+\. `)
	boldMetadataPat = regexp.MustCompile(`^\*\*[^*]+:\*\*`)
)

// Line predicates used to decide whether a line contributes to the
// snippet. Each is independently testable. A horizontal rule is a line
// of three or more dashes and nothing else.

func isHeadingLine(line string) bool {
	return strings.HasPrefix(line, "#")
}

func isHorizontalRule(line string) bool {
	return len(line) >= 3 && strings.Trim(line, "-") == ""
}

func isListItem(line string) bool {
	return strings.HasPrefix(line, "- ") ||
		strings.HasPrefix(line, "* ") ||
		orderedListPat.MatchString(line)
}

func isBoldMetadata(line string) bool {
	return boldMetadataPat.MatchString(line)
}

// skipLine reports whether a (trimmed) line is excluded from snippet
// collection: blank lines, horizontal rules, list items, bold metadata
// lines like "**Status:** draft", and heading lines of any level.
func skipLine(trimmed string) bool {
	if trimmed == "" {
		return true
	}
	if isHorizontalRule(trimmed) {
		return true
	}
	if isListItem(trimmed) {
		return true
	}
	if isBoldMetadata(trimmed) {
		return true
	}
	return isHeadingLine(trimmed)
}

// extractContent makes a single pass over a file's text and returns the
// first H1/H2 heading and a stripped snippet of the first prose
// content. With collectSnippet false it is a reduced heading-only scan
// that stops at the first match.
//
// Snippet collection starts right after a found heading, or from the
// first line when no heading appears: lines seen before any heading go
// into a provisional buffer that is discarded once a heading shows up,
// so either case costs only the one pass. The pass ends as soon as the
// buffer reaches maxLen; a heading that would only appear past that
// point is never found, which is accepted.
func extractContent(content []byte, maxLen int, collectSnippet bool) (heading, snippet string) {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var buf strings.Builder
	runeCount := 0
	truncated := false
	headingFound := false

	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)

		if !headingFound {
			if m := headingPattern.FindStringSubmatch(trimmed); m != nil {
				heading = strings.TrimSpace(stripHeadingMarkers(m[2]))
				headingFound = true
				if !collectSnippet {
					return heading, ""
				}
				// The heading line never contributes to the snippet;
				// discard anything collected before it.
				buf.Reset()
				runeCount = 0
				continue
			}
		}

		if !collectSnippet {
			continue
		}

		if skipLine(trimmed) {
			continue
		}

		if buf.Len() > 0 {
			buf.WriteByte(' ')
			runeCount++
		}
		stripped := stripMarkdown(trimmed)
		buf.WriteString(stripped)
		runeCount += utf8.RuneCountInString(stripped)

		// The bound is measured in runes, not bytes, so multibyte
		// prose is never cut mid-character.
		if runeCount >= maxLen {
			truncated = runeCount > maxLen
			break
		}
	}

	snippet = strings.TrimSpace(buf.String())
	if runes := []rune(snippet); len(runes) > maxLen {
		snippet = string(runes[:maxLen])
		truncated = true
	}
	if truncated {
		snippet += "..."
	}
	return heading, snippet
}

// extractEntry runs extraction for one entry, reading from disk unless
// the entry carries preloaded content (web pages). Read failures are
// fatal for the run: this is a local tool, a file vanishing mid-run is
// not worth hardening against.
func extractEntry(entry *FileEntry, cfg Config) error {
	content := entry.Content
	if content == nil {
		var err error
		content, err = os.ReadFile(entry.Path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", entry.Path, err)
		}
	}

	collectSnippet := !cfg.NoSnippets && !cfg.Simple
	entry.Heading, entry.Snippet = extractContent(content, cfg.SnippetLength, collectSnippet)
	return nil
}
