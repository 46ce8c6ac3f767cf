package main

import (
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// noExtension is the sentinel extension for files without one.
const noExtension = "no-extension"

// FileEntry holds everything we know about one discovered file.
type FileEntry struct {
	Path       string // root-relative for local files, absolute URL for web pages
	Extension  string // lowercase, without the dot; noExtension when absent
	Heading    string // first H1/H2 found in the file, empty if none
	Snippet    string // stripped excerpt of the first prose content, empty if suppressed
	Size       int64  // resolved lazily, full mode only
	ModTime    time.Time
	Resolved   bool   // metadata has been resolved
	Content    []byte // preloaded content (web pages); read from disk when nil
	TokenCount int    // populated when token counting is enabled
	TokenErr   error  // error from the token-counting worker, if any
}

// NewFileEntry builds an entry for a path, deriving the extension.
func NewFileEntry(path string) FileEntry {
	return FileEntry{Path: path, Extension: extensionOf(path)}
}

// IsMarkdown reports whether the entry is a markdown file.
func (e FileEntry) IsMarkdown() bool {
	return e.Extension == "md"
}

// Title returns the extracted heading, falling back to a form derived
// from the filename: extension stripped, hyphens to spaces, each word
// capitalized. Never empty for a non-empty path.
func (e FileEntry) Title() string {
	if e.Heading != "" {
		return e.Heading
	}
	base := filepath.Base(e.Path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return capitalizeWords(strings.ReplaceAll(base, "-", " "))
}

// extensionOf derives the normalized extension from a path's final segment.
func extensionOf(path string) string {
	ext := filepath.Ext(filepath.Base(path))
	if ext == "" || ext == "." {
		return noExtension
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// capitalizeWords upper-cases the first letter of each space-separated word.
func capitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// Group is a named bucket of entries produced by the aggregator.
type Group struct {
	Key     string // directory path segment or normalized extension
	Label   string // rendered heading text
	Depth   int    // directory grouping only; separators below the scan root
	Entries []FileEntry
}

// Summary holds the counts shown in the full-mode document header.
type Summary struct {
	TotalFiles    int
	MarkdownFiles int
}
