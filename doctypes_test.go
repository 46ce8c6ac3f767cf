package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDocTypes_GlyphFor_KnownExtension(t *testing.T) {
	types := newDocTypes(map[string]docTypeInfo{
		"markdown": {Glyph: "📝", Extensions: []string{"md", ".markdown"}},
		"data":     {Glyph: "🗃", Extensions: []string{"json", "yml"}},
	})

	require.Equal(t, "📝", types.GlyphFor("md"))
	require.Equal(t, "📝", types.GlyphFor("markdown")) // leading dot normalized away
	require.Equal(t, "🗃", types.GlyphFor("json"))
}

func TestDocTypes_GlyphFor_UnknownExtension_Default(t *testing.T) {
	types := newDocTypes(map[string]docTypeInfo{
		"markdown": {Glyph: "📝", Extensions: []string{"md"}},
	})
	require.Equal(t, defaultTypeGlyph, types.GlyphFor("rst"))
}

func TestDocTypes_NilReceiver_Default(t *testing.T) {
	var types *docTypes
	require.Equal(t, defaultTypeGlyph, types.GlyphFor("md"))
}

func TestDocTypes_EmptyGlyph_Skipped(t *testing.T) {
	types := newDocTypes(map[string]docTypeInfo{
		"broken": {Extensions: []string{"md"}},
	})
	require.Equal(t, defaultTypeGlyph, types.GlyphFor("md"))
}
