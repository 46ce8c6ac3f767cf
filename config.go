package main

import (
	"fmt"
	"os"
)

// Sort modes accepted by --sort.
const (
	SortName = "name"
	SortDate = "date"
	SortSize = "size"
)

// Grouping modes accepted by --group-by.
const (
	GroupDirectory = "directory"
	GroupType      = "type"
	GroupNone      = "none"
)

const (
	defaultDir           = "docs"
	defaultTitle         = "Documentation Table of Contents"
	defaultSnippetLength = 200
)

// Config is the immutable run configuration. It is built once from the
// resolved flag/env/file values in main.go and passed by value into
// every pipeline stage; nothing reads flag variables past this point.
type Config struct {
	// Source
	Dir      string
	Include  []string
	Exclude  []string
	MaxDepth int // 0 = unlimited

	// Ordering and grouping
	Sort    string
	GroupBy string

	// Extraction
	SnippetLength int
	NoSnippets    bool

	// Rendering
	Title  string
	Simple bool
	Quiet  bool

	// Traversal extras
	ShowHidden bool
	NoIgnore   bool

	// Output destinations
	OutputFile string
	Clipboard  bool
	PDFFile    string

	// Web source
	TraverseLinks bool
	LinkDepth     int

	// Token counting
	CountTokens    bool
	TokenizerType  string
	TokenizerModel string
	TokenizerFile  string
	Threads        int
}

// Validate rejects bad enumeration values and a missing root before any
// file is touched. The root check is skipped for web and git sources,
// which materialize their own trees.
func (c Config) Validate() error {
	switch c.Sort {
	case SortName, SortDate, SortSize:
	default:
		return fmt.Errorf("invalid sort mode %q: must be one of name, date, size", c.Sort)
	}

	switch c.GroupBy {
	case GroupDirectory, GroupType, GroupNone:
	default:
		return fmt.Errorf("invalid group mode %q: must be one of directory, type, none", c.GroupBy)
	}

	if c.SnippetLength <= 0 {
		return fmt.Errorf("snippet length must be positive, got %d", c.SnippetLength)
	}

	if !isWebURL(c.Dir) && !isGitURL(c.Dir) {
		info, err := os.Stat(c.Dir)
		if err != nil {
			return fmt.Errorf("directory %q does not exist: %w", c.Dir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("%q is not a directory", c.Dir)
		}
	}

	return nil
}
