// Package theme builds the multi-variant theme artifact from a palette and a
// base template document.
package theme

// MetadataPrefix marks palette and template keys that carry annotations
// rather than colours. Prefixed keys never reach the flattened colour table.
const MetadataPrefix = "$"

// VariantOrder fixes the order in which variants appear in the artifact.
var VariantOrder = []string{"classic", "soft", "high_contrast"}

// Palette is the source-of-truth colour document. Base colours are grouped by
// role, variants carry flat dotted-key overrides on top of the base.
type Palette struct {
	Base     PaletteBase                  `json:"base" yaml:"base"`
	Syntax   map[string]string            `json:"syntax" yaml:"syntax"`
	Terminal map[string]string            `json:"terminal" yaml:"terminal"`
	Players  []string                     `json:"players" yaml:"players"`
	Variants map[string]map[string]string `json:"variants" yaml:"variants"`
}

// PaletteBase holds the role-grouped base colour mappings.
type PaletteBase struct {
	Background map[string]string `json:"background" yaml:"background"`
	Foreground map[string]string `json:"foreground" yaml:"foreground"`
	Border     map[string]string `json:"border" yaml:"border"`
}

// Base is the declarative template document: UI and terminal structures with
// {{token}} references, token grouping tables for syntax colours and styles,
// and per-variant metadata.
type Base struct {
	Schema        string                   `json:"$schema" yaml:"$schema"`
	Name          string                   `json:"name" yaml:"name"`
	Author        string                   `json:"author" yaml:"author"`
	UI            map[string]any           `json:"ui" yaml:"ui"`
	Terminal      map[string]any           `json:"terminal" yaml:"terminal"`
	SyntaxColors  map[string]any           `json:"syntax_colors" yaml:"syntax_colors"`
	SyntaxStyles  map[string]any           `json:"syntax_styles" yaml:"syntax_styles"`
	SyntaxSpecial map[string]string        `json:"syntax_special" yaml:"syntax_special"`
	Variants      map[string]VariantConfig `json:"variants" yaml:"variants"`
}

// VariantConfig is the per-variant metadata from the base template.
type VariantConfig struct {
	Name            string `json:"name" yaml:"name"`
	LineNumberAlpha string `json:"line_number_alpha" yaml:"line_number_alpha"`
}

// Artifact is the generated theme document.
type Artifact struct {
	Schema string    `json:"$schema"`
	Name   string    `json:"name"`
	Author string    `json:"author"`
	Themes []Variant `json:"themes"`
}

// Variant is one stylistic rendering of the theme.
type Variant struct {
	Name       string         `json:"name"`
	Appearance string         `json:"appearance"`
	Style      map[string]any `json:"style"`
}

// TokenStyle is the colour and styling of one syntax token.
type TokenStyle struct {
	Colour     string  `json:"color"`
	FontStyle  *string `json:"font_style"`
	FontWeight *int    `json:"font_weight"`
}

// Player is one collaborator accent colour triple.
type Player struct {
	Cursor     string `json:"cursor"`
	Background string `json:"background"`
	Selection  string `json:"selection"`
}
