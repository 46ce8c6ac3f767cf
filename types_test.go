package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTitle_HeadingPreferred(t *testing.T) {
	entry := FileEntry{Path: "docs/readme.md", Heading: "Main Documentation"}
	require.Equal(t, "Main Documentation", entry.Title())
}

func TestTitle_FallbackFromFilename(t *testing.T) {
	entry := NewFileEntry("docs/fallback-test.md")
	require.Equal(t, "Fallback Test", entry.Title())
}

func TestTitle_FallbackSingleWord(t *testing.T) {
	entry := NewFileEntry("docs/config.json")
	require.Equal(t, "Config", entry.Title())
}

func TestTitle_NeverEmpty(t *testing.T) {
	entry := NewFileEntry("docs/a.md")
	require.NotEmpty(t, entry.Title())
}

func TestExtensionOf_Normalized(t *testing.T) {
	require.Equal(t, "md", extensionOf("docs/README.MD"))
	require.Equal(t, "json", extensionOf("config.json"))
	require.Equal(t, "gz", extensionOf("archive.tar.gz"))
}

func TestExtensionOf_Missing_Sentinel(t *testing.T) {
	require.Equal(t, noExtension, extensionOf("Makefile"))
	require.Equal(t, noExtension, extensionOf("docs/LICENSE"))
}

func TestIsMarkdown(t *testing.T) {
	require.True(t, NewFileEntry("a.md").IsMarkdown())
	require.False(t, NewFileEntry("a.json").IsMarkdown())
	require.False(t, NewFileEntry("Makefile").IsMarkdown())
}

func TestCapitalizeWords(t *testing.T) {
	require.Equal(t, "Getting Started", capitalizeWords("getting started"))
	require.Equal(t, "API Reference", capitalizeWords("API reference"))
	require.Equal(t, "", capitalizeWords("   "))
}

func TestCapitalizeWords_MultibyteFirstLetter(t *testing.T) {
	require.Equal(t, "Émigré Guide", capitalizeWords("émigré guide"))
}

func TestTitle_FallbackAccentedFilename(t *testing.T) {
	entry := NewFileEntry("docs/études-overview.md")
	require.Equal(t, "Études Overview", entry.Title())
}
