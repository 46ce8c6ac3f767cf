package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gitignore "github.com/monochromegane/go-gitignore"
)

// enumerateFiles walks the configured root and returns the ordered list
// of surviving entries: hidden/gitignore/depth filtering, then the
// include/exclude patterns, then one of the three sort modes. Entry
// paths keep the root prefix so later stages can read them directly.
func enumerateFiles(cfg Config, status *statusPrinter) ([]FileEntry, error) {
	root := filepath.Clean(cfg.Dir)

	var matcher gitignore.IgnoreMatcher
	if !cfg.NoIgnore {
		// Only the root .gitignore is consulted, same as the rest of
		// the traversal rules: nested ignore files are out of scope.
		gitIgnorePath := filepath.Join(root, ".gitignore")
		if _, err := os.Stat(gitIgnorePath); err == nil {
			m, err := gitignore.NewGitIgnore(gitIgnorePath)
			if err != nil {
				status.Warnf("could not parse %s: %v", gitIgnorePath, err)
			} else {
				matcher = m
			}
		}
	}

	var entries []FileEntry

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("accessing %s: %w", path, err)
		}
		if path == root {
			return nil
		}

		isDir := d.IsDir()
		relPath, _ := filepath.Rel(root, path)

		if !cfg.ShowHidden && isHidden(d.Name()) {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}

		if matcher != nil && matcher.Match(relPath, isDir) {
			if isDir {
				return fs.SkipDir
			}
			return nil
		}

		separators := countPathSeparators(relPath)
		if cfg.MaxDepth > 0 {
			if isDir && separators >= cfg.MaxDepth {
				return fs.SkipDir
			}
			if !isDir && separators > cfg.MaxDepth {
				return nil
			}
		}

		if isDir {
			return nil
		}

		if !survivesFilters(path, d.Name(), cfg.Include, cfg.Exclude) {
			return nil
		}

		entry := NewFileEntry(path)
		if cfg.Sort != SortName {
			info, err := d.Info()
			if err != nil {
				return fmt.Errorf("reading info for %s: %w", path, err)
			}
			entry.Size = info.Size()
			entry.ModTime = info.ModTime()
			entry.Resolved = true
		}
		entries = append(entries, entry)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	sortEntries(entries, cfg.Sort)
	return entries, nil
}

// matchesPattern checks one pattern against a candidate both ways the
// tool has always matched: substring on the full path (so "api/" hits
// everything under api) and glob on the exact basename (so "*.json"
// works). The two modes are deliberately kept distinct.
func matchesPattern(pattern, path, base string) bool {
	if strings.Contains(path, pattern) {
		return true
	}
	matched, err := filepath.Match(pattern, base)
	if err != nil {
		return false // malformed glob never matches
	}
	return matched
}

// survivesFilters applies exclude-then-include: exclude always wins,
// and an empty include list accepts everything not excluded.
func survivesFilters(path, base string, include, exclude []string) bool {
	for _, pattern := range exclude {
		if matchesPattern(pattern, path, base) {
			return false
		}
	}
	if len(include) == 0 {
		return true
	}
	for _, pattern := range include {
		if matchesPattern(pattern, path, base) {
			return true
		}
	}
	return false
}

// sortEntries orders the filtered set once. Ties keep walk order via
// the stable sort; nothing beyond that is promised.
func sortEntries(entries []FileEntry, mode string) {
	switch mode {
	case SortName:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Path < entries[j].Path
		})
	case SortDate:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].ModTime.After(entries[j].ModTime)
		})
	case SortSize:
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Size > entries[j].Size
		})
	}
}

// isHidden reports whether a base name is a dotfile. "." and ".." are
// not considered hidden.
func isHidden(name string) bool {
	if name == "." || name == ".." {
		return false
	}
	return len(name) > 0 && name[0] == '.'
}

// countPathSeparators counts separators in a slash-normalized relative
// path; the root itself counts as zero.
func countPathSeparators(path string) int {
	path = filepath.ToSlash(path)
	if path == "." || path == "" {
		return 0
	}
	return strings.Count(strings.Trim(path, "/"), "/")
}

// parsePatterns splits a comma-separated pattern list.
func parsePatterns(patterns string) []string {
	if patterns == "" {
		return nil
	}
	parts := strings.Split(patterns, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
