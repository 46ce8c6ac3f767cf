package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultTypeGlyph is shown before type-group headings when no
// doctypes.yml entry covers the extension.
const defaultTypeGlyph = "📄"

// docTypeInfo describes one document type in doctypes.yml.
type docTypeInfo struct {
	Glyph      string   `yaml:"glyph"`
	Extensions []string `yaml:"extensions"`
}

// docTypes provides glyph lookup for type-mode group headings. A nil
// receiver is valid and falls back to the default glyph everywhere.
type docTypes struct {
	glyphMap map[string]string // extension (no dot, lowercase) -> glyph
}

// loadDocTypes looks for doctypes.yml in the standard config locations
// and parses it. A missing file is not an error: the built-in defaults
// apply and type headings just use the generic glyph.
func loadDocTypes() (*docTypes, error) {
	configPaths := []string{}
	if home, err := os.UserHomeDir(); err == nil {
		configPaths = append(configPaths, filepath.Join(home, ".config", "doctoc"))
	}
	configPaths = append(configPaths, ".")

	var typesPath string
	for _, p := range configPaths {
		candidate := filepath.Join(p, "doctypes.yml")
		if _, err := os.Stat(candidate); err == nil {
			typesPath = candidate
			break
		}
	}
	if typesPath == "" {
		return nil, nil
	}

	raw, err := os.ReadFile(typesPath)
	if err != nil {
		return nil, fmt.Errorf("reading doc type file %s: %w", typesPath, err)
	}

	var defs map[string]docTypeInfo
	if err := yaml.Unmarshal(raw, &defs); err != nil {
		return nil, fmt.Errorf("parsing doc type file %s: %w", typesPath, err)
	}

	return newDocTypes(defs), nil
}

// newDocTypes builds the extension lookup map from parsed definitions.
// The first type to claim an extension wins.
func newDocTypes(defs map[string]docTypeInfo) *docTypes {
	types := &docTypes{glyphMap: make(map[string]string)}
	for _, info := range defs {
		if info.Glyph == "" {
			continue
		}
		for _, ext := range info.Extensions {
			key := strings.ToLower(strings.TrimPrefix(ext, "."))
			if _, taken := types.glyphMap[key]; !taken {
				types.glyphMap[key] = info.Glyph
			}
		}
	}
	return types
}

// GlyphFor returns the glyph for a normalized extension key.
func (t *docTypes) GlyphFor(ext string) string {
	if t == nil {
		return defaultTypeGlyph
	}
	if glyph, ok := t.glyphMap[ext]; ok {
		return glyph
	}
	return defaultTypeGlyph
}
