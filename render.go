package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

const (
	closedFolderGlyph = "📁"
	openFolderGlyph   = "📂"
	dateLayout        = "2006-01-02"
)

// renderDocument turns the aggregated groups into the final markdown
// document. Full mode carries the summary block, snippets, and
// per-entry metadata; simple mode is a minimal linked-title list.
func renderDocument(groups []Group, root string, cfg Config, types *docTypes, now time.Time) string {
	var b strings.Builder

	b.WriteString("# ")
	b.WriteString(cfg.Title)
	b.WriteString("\n\n")

	if !cfg.Simple {
		summary := summarize(groups)
		fmt.Fprintf(&b, "*Generated: %s*\n\n", now.Format(dateLayout))
		fmt.Fprintf(&b, "Total files: %d (%d markdown files)\n\n", summary.TotalFiles, summary.MarkdownFiles)
		b.WriteString("---\n\n")
	}

	for _, group := range groups {
		if cfg.GroupBy != GroupNone {
			writeGroupHeading(&b, group, cfg, types)
		}
		for _, entry := range group.Entries {
			if cfg.Simple {
				writeSimpleEntry(&b, entry, root)
			} else {
				writeFullEntry(&b, entry, root, cfg)
			}
		}
		if cfg.Simple && cfg.GroupBy != GroupNone {
			b.WriteString("\n")
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

// summarize counts entries across groups for the document header.
func summarize(groups []Group) Summary {
	var s Summary
	for _, g := range groups {
		for _, e := range g.Entries {
			s.TotalFiles++
			if e.IsMarkdown() {
				s.MarkdownFiles++
			}
		}
	}
	return s
}

// writeGroupHeading renders one group heading. Directory groups pick
// their level from the nesting depth and a folder glyph; type groups
// are always H2 with a glyph from the doc-type definitions.
func writeGroupHeading(b *strings.Builder, group Group, cfg Config, types *docTypes) {
	switch cfg.GroupBy {
	case GroupDirectory:
		glyph := closedFolderGlyph
		if group.Depth >= 1 {
			glyph = openFolderGlyph
		}
		b.WriteString(strings.Repeat("#", headingLevel(group.Depth)))
		fmt.Fprintf(b, " %s %s\n\n", glyph, group.Label)
	case GroupType:
		fmt.Fprintf(b, "## %s %s\n\n", types.GlyphFor(group.Key), group.Label)
	}
}

// writeSimpleEntry renders the minimal list form.
func writeSimpleEntry(b *strings.Builder, entry FileEntry, root string) {
	fmt.Fprintf(b, "- [%s](%s)\n", entry.Title(), linkTarget(root, entry))
}

// writeFullEntry renders the verbose form: bold linked title for
// markdown files, plain bold title otherwise; optional snippet line;
// then the metadata line. Non-markdown entries show size only — no
// modification date. That asymmetry is long-standing output shape and
// is kept on purpose.
func writeFullEntry(b *strings.Builder, entry FileEntry, root string, cfg Config) {
	if entry.IsMarkdown() {
		fmt.Fprintf(b, "**[%s](%s)**\n\n", entry.Title(), linkTarget(root, entry))
	} else {
		fmt.Fprintf(b, "**%s**\n\n", entry.Title())
	}

	if entry.IsMarkdown() && !cfg.NoSnippets && entry.Snippet != "" {
		b.WriteString(entry.Snippet)
		b.WriteString("\n\n")
	}

	meta := humanSize(entry.Size)
	if entry.IsMarkdown() {
		meta += " • Modified: " + entry.ModTime.Format(dateLayout)
	}
	if cfg.CountTokens {
		if entry.TokenErr != nil {
			meta += fmt.Sprintf(" • tokens: error (%v)", entry.TokenErr)
		} else {
			meta += fmt.Sprintf(" • %d tokens", entry.TokenCount)
		}
	}
	fmt.Fprintf(b, "*%s*\n\n", meta)
}

// linkTarget returns the path rendered inside entry links: the URL for
// web entries, the root-relative path for local files.
func linkTarget(root string, entry FileEntry) string {
	if isWebURL(entry.Path) {
		return entry.Path
	}
	rel, err := filepath.Rel(root, entry.Path)
	if err != nil {
		return entry.Path
	}
	return filepath.ToSlash(rel)
}
