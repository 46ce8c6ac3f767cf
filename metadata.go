package main

import (
	"fmt"
	"os"
)

// resolveMetadata fills in an entry's size and modification time with a
// single stat call. It is invoked lazily, only when the renderer needs
// the values (full mode), so simple-mode runs never stat. Web entries
// arrive pre-resolved with the content length and fetch time.
func resolveMetadata(entry *FileEntry) error {
	if entry.Resolved {
		return nil
	}
	info, err := os.Stat(entry.Path)
	if err != nil {
		return fmt.Errorf("resolving metadata for %s: %w", entry.Path, err)
	}
	entry.Size = info.Size()
	entry.ModTime = info.ModTime()
	entry.Resolved = true
	return nil
}

// humanSize formats a byte count the way the document shows it:
// integer division, no decimals.
func humanSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%dB", n)
	case n < 1024*1024:
		return fmt.Sprintf("%dKB", n/1024)
	default:
		return fmt.Sprintf("%dMB", n/(1024*1024))
	}
}
