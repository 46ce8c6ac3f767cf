package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
)

// pickRootInteractive walks the current directory for candidate
// directories and lets the user pick the scan root with a fuzzy finder.
// Returns "" with a nil error when the user aborts.
func pickRootInteractive(showHidden bool) (string, error) {
	candidates := []string{"."}

	err := filepath.WalkDir(".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // unreadable corners just don't show up in the picker
		}
		if path == "." || !d.IsDir() {
			return nil
		}
		if !showHidden && isHidden(d.Name()) {
			return fs.SkipDir
		}
		candidates = append(candidates, path)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("scanning for directories: %w", err)
	}

	idx, err := fuzzyfinder.Find(
		candidates,
		func(i int) string { return candidates[i] },
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return "Select the directory to index. Enter to confirm, Esc to abort."
			}
			dirEntries, readErr := os.ReadDir(candidates[i])
			if readErr != nil {
				return fmt.Sprintf("Path: %s\nError: %v", candidates[i], readErr)
			}
			return fmt.Sprintf("Path: %s\nEntries: %d", candidates[i], len(dirEntries))
		}),
	)
	if err != nil {
		if err == fuzzyfinder.ErrAbort {
			return "", nil
		}
		return "", fmt.Errorf("fuzzy finder: %w", err)
	}

	return candidates[idx], nil
}
