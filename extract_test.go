package main

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestExtractContent_H1Heading_Extracted(t *testing.T) {
	heading, _ := extractContent([]byte("# Main Documentation\n\nSome text.\n"), 200, true)
	require.Equal(t, "Main Documentation", heading)
}

func TestExtractContent_H2Heading_Extracted(t *testing.T) {
	heading, _ := extractContent([]byte("## Section Title\n\nBody.\n"), 200, true)
	require.Equal(t, "Section Title", heading)
}

func TestExtractContent_H3Heading_NotAHeading(t *testing.T) {
	heading, snippet := extractContent([]byte("### Too Deep\n\nBody.\n"), 200, true)
	require.Empty(t, heading)
	require.Equal(t, "Body.", snippet)
}

func TestExtractContent_HeadingMarkers_Deleted(t *testing.T) {
	heading, _ := extractContent([]byte("# Heading with **bold** text\n"), 200, true)
	require.Equal(t, "Heading with bold text", heading)
}

func TestExtractContent_FirstHeadingWins(t *testing.T) {
	content := "# First\n\n## Second\n\nBody.\n"
	heading, _ := extractContent([]byte(content), 200, true)
	require.Equal(t, "First", heading)
}

func TestExtractContent_HeadingLine_ExcludedFromSnippet(t *testing.T) {
	heading, snippet := extractContent([]byte("# Title\nFirst paragraph.\n"), 200, true)
	require.Equal(t, "Title", heading)
	require.Equal(t, "First paragraph.", snippet)
}

func TestExtractContent_NoHeading_SnippetFromFirstLine(t *testing.T) {
	heading, snippet := extractContent([]byte("Just prose, no title.\nMore prose.\n"), 200, true)
	require.Empty(t, heading)
	require.Equal(t, "Just prose, no title. More prose.", snippet)
}

func TestExtractContent_ProseBeforeHeading_Discarded(t *testing.T) {
	content := "preamble text\n# Real Title\nactual body\n"
	heading, snippet := extractContent([]byte(content), 200, true)
	require.Equal(t, "Real Title", heading)
	require.Equal(t, "actual body", snippet)
}

func TestExtractContent_EmptyFile_BothEmpty(t *testing.T) {
	heading, snippet := extractContent(nil, 200, true)
	require.Empty(t, heading)
	require.Empty(t, snippet)
}

func TestExtractContent_WhitespaceOnlyFile_BothEmpty(t *testing.T) {
	heading, snippet := extractContent([]byte("   \n\t\n  \n"), 200, true)
	require.Empty(t, heading)
	require.Empty(t, snippet)
}

func TestExtractContent_HeadingOnlyFile_EmptySnippet(t *testing.T) {
	heading, snippet := extractContent([]byte("# Title\n## Subtitle\n### Deep\n"), 200, true)
	require.Equal(t, "Title", heading)
	require.Empty(t, snippet)
}

func TestExtractContent_SkippedLines_NotCollected(t *testing.T) {
	content := strings.Join([]string{
		"# Title",
		"",
		"---",
		"- list item",
		"* other list item",
		"3. numbered item",
		"**Status:** draft",
		"## Subheading",
		"Real prose sentence.",
	}, "\n")
	_, snippet := extractContent([]byte(content), 200, true)
	require.Equal(t, "Real prose sentence.", snippet)
}

func TestExtractContent_SnippetLines_StrippedAndSpaceJoined(t *testing.T) {
	content := "First **bold** line.\nSecond `code` line.\n"
	_, snippet := extractContent([]byte(content), 200, true)
	require.Equal(t, "First bold line. Second code line.", snippet)
}

func TestExtractContent_Truncation_SuffixAndBound(t *testing.T) {
	long := strings.Repeat("word ", 100) // 500 chars collected
	_, snippet := extractContent([]byte(long), 200, true)
	require.True(t, strings.HasSuffix(snippet, "..."))
	require.LessOrEqual(t, len(snippet), 200+3)
}

func TestExtractContent_MultibyteTruncation_ValidUTF8(t *testing.T) {
	long := strings.Repeat("日", 300)
	_, snippet := extractContent([]byte(long), 200, true)
	require.True(t, utf8.ValidString(snippet))
	require.True(t, strings.HasSuffix(snippet, "..."))
	require.LessOrEqual(t, utf8.RuneCountInString(snippet), 200+3)
}

func TestExtractContent_MultibyteWithinBound_NotTruncated(t *testing.T) {
	// 100 characters is 300 bytes; the bound counts characters.
	text := strings.Repeat("日", 100)
	_, snippet := extractContent([]byte(text), 200, true)
	require.Equal(t, text, snippet)
}

func TestExtractContent_ExactFit_NoSuffix(t *testing.T) {
	line := strings.Repeat("a", 50)
	_, snippet := extractContent([]byte(line+"\n"), 50, true)
	require.Equal(t, line, snippet)
	require.False(t, strings.HasSuffix(snippet, "..."))
}

func TestExtractContent_ShortContent_NoSuffix(t *testing.T) {
	_, snippet := extractContent([]byte("tiny\n"), 200, true)
	require.Equal(t, "tiny", snippet)
}

func TestExtractContent_HeadingOnlyMode_StopsAtFirstMatch(t *testing.T) {
	content := "intro\n# Title\nbody that would be a snippet\n"
	heading, snippet := extractContent([]byte(content), 200, false)
	require.Equal(t, "Title", heading)
	require.Empty(t, snippet)
}

func TestExtractContent_BufferFullBeforeHeading_HeadingStaysEmpty(t *testing.T) {
	// The heading search shares the snippet-length bound: a heading
	// past the point where collection stops is never seen.
	content := strings.Repeat("filler text line\n", 50) + "# Late Title\n"
	heading, _ := extractContent([]byte(content), 100, true)
	require.Empty(t, heading)
}

func TestSkipLine_Predicates(t *testing.T) {
	tests := []struct {
		name string
		line string
		skip bool
	}{
		{"blank", "", true},
		{"horizontal rule", "---", true},
		{"long rule", "----------", true},
		{"dash list item", "- item", true},
		{"star list item", "* item", true},
		{"numbered list item", "12. item", true},
		{"bold metadata", "**Author:** someone", true},
		{"h1", "# Title", true},
		{"h4", "#### Deep", true},
		{"prose", "Plain sentence.", false},
		{"dashes followed by text", "---text", false},
		{"two dashes", "--", false},
		{"bold prose without colon", "**just bold** prose", false},
		{"dash without space", "-not-a-list", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.skip, skipLine(tt.line))
		})
	}
}
