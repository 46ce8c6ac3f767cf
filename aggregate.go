package main

import (
	"path/filepath"
	"sort"
	"strings"
)

// maxHeadingLevel caps group headings at markdown's deepest level.
const maxHeadingLevel = 6

// aggregate runs extraction (and, in full mode, metadata resolution)
// over the ordered entry list and buckets the results according to the
// grouping mode. Every entry lands in exactly one group; within a
// group, entries keep the enumerator's order.
func aggregate(entries []FileEntry, root string, cfg Config) ([]Group, error) {
	for i := range entries {
		if err := extractEntry(&entries[i], cfg); err != nil {
			return nil, err
		}
		if !cfg.Simple {
			if err := resolveMetadata(&entries[i]); err != nil {
				return nil, err
			}
		}
	}

	switch cfg.GroupBy {
	case GroupDirectory:
		return groupByDirectory(entries, root), nil
	case GroupType:
		return groupByType(entries), nil
	default:
		return []Group{{Entries: entries}}, nil
	}
}

// groupByDirectory buckets entries by containing directory. Group order
// follows the order directories are first seen in the already-sorted
// entry list, not a separate directory sort.
func groupByDirectory(entries []FileEntry, root string) []Group {
	var groups []Group
	index := make(map[string]int)

	for _, entry := range entries {
		dir := relativeDir(root, entry.Path)
		i, seen := index[dir]
		if !seen {
			i = len(groups)
			index[dir] = i
			groups = append(groups, Group{
				Key:   dir,
				Label: directoryLabel(root, dir),
				Depth: countPathSeparators(dir),
			})
		}
		groups[i].Entries = append(groups[i].Entries, entry)
	}
	return groups
}

// groupByType buckets entries by normalized extension, alphabetically
// by key. The label is the upper-cased extension, or "No Extension".
func groupByType(entries []FileEntry) []Group {
	index := make(map[string]*Group)
	var keys []string

	for _, entry := range entries {
		key := entry.Extension
		g, seen := index[key]
		if !seen {
			label := strings.ToUpper(key)
			if key == noExtension {
				label = "No Extension"
			}
			g = &Group{Key: key, Label: label}
			index[key] = g
			keys = append(keys, key)
		}
		g.Entries = append(g.Entries, entry)
	}

	sort.Strings(keys)
	groups := make([]Group, 0, len(keys))
	for _, key := range keys {
		groups = append(groups, *index[key])
	}
	return groups
}

// relativeDir returns the entry's containing directory relative to the
// scan root; "." for files directly under the root. Web entries keep
// their URL untouched and all land in the root group.
func relativeDir(root, path string) string {
	if isWebURL(path) {
		return "."
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "."
	}
	dir := filepath.Dir(rel)
	return filepath.ToSlash(dir)
}

// directoryLabel prettifies a group directory: final path segment,
// hyphens to spaces, each word capitalized. The root group is labeled
// after the scan root itself.
func directoryLabel(root, dir string) string {
	segment := dir
	if dir == "." {
		segment = filepath.Base(filepath.Clean(root))
	} else {
		segment = filepath.Base(dir)
	}
	return capitalizeWords(strings.ReplaceAll(segment, "-", " "))
}

// headingLevel maps a directory group's nesting depth to a markdown
// heading level: depth 0 renders as an H2, each level below adds one
// starting at H4, capped at H6.
func headingLevel(depth int) int {
	if depth <= 0 {
		return 2
	}
	level := depth + 3
	if level > maxHeadingLevel {
		return maxHeadingLevel
	}
	return level
}
