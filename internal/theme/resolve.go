package theme

import (
	"regexp"
	"strings"
)

// tokenPattern matches a {{dotted.key}} reference inside a template string.
var tokenPattern = regexp.MustCompile(`\{\{([^}]+)\}\}`)

// ResolveTemplate substitutes every {{key}} reference in s from the colour
// table. References absent from the table are left in place verbatim: an
// unresolved token is a visible defect for validation to find, not an error.
func ResolveTemplate(s string, colours map[string]string) string {
	return tokenPattern.ReplaceAllStringFunc(s, func(match string) string {
		key := match[2 : len(match)-2]
		if v, ok := colours[key]; ok {
			return v
		}
		return match
	})
}

// ResolveValue recursively resolves {{token}} references inside an arbitrary
// nested value. Maps recurse preserving keys, slices recurse preserving
// order, strings without a marker and other scalars pass through unchanged.
func ResolveValue(value any, colours map[string]string) any {
	switch v := value.(type) {
	case string:
		if strings.Contains(v, "{{") {
			return ResolveTemplate(v, colours)
		}
		return v
	case map[string]any:
		resolved := make(map[string]any, len(v))
		for k, child := range v {
			resolved[k] = ResolveValue(child, colours)
		}
		return resolved
	case []any:
		resolved := make([]any, len(v))
		for i, child := range v {
			resolved[i] = ResolveValue(child, colours)
		}
		return resolved
	default:
		return value
	}
}

// VariantColours flattens the palette into the single-level dotted colour
// table for one variant: role groups get their group name as prefix, then
// non-classic variants overlay their overrides. Metadata keys are excluded.
func VariantColours(palette *Palette, variant string) map[string]string {
	colours := make(map[string]string)

	for k, v := range palette.Base.Background {
		colours["background."+k] = v
	}
	for k, v := range palette.Base.Foreground {
		colours["foreground."+k] = v
	}
	for k, v := range palette.Base.Border {
		colours["border."+k] = v
	}
	for k, v := range palette.Syntax {
		if strings.HasPrefix(k, MetadataPrefix) {
			continue
		}
		colours["syntax."+k] = v
	}
	for k, v := range palette.Terminal {
		colours["terminal."+k] = v
	}

	if variant != "classic" {
		for k, v := range palette.Variants[variant] {
			if strings.HasPrefix(k, MetadataPrefix) {
				continue
			}
			colours[k] = v
		}
	}

	return colours
}
