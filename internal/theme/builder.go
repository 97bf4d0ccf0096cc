package theme

import (
	"sort"
	"strings"
)

const (
	// selectionAlpha is the fixed alpha suffix appended to player selection
	// colours.
	selectionAlpha = "40"

	// boldWeight is the numeric font weight emitted for bold syntax tokens.
	boldWeight = 700

	// defaultRole is the syntax role assigned to tokens with no declared
	// colour group.
	defaultRole = "type"
)

// GenerateTheme builds the complete theme artifact from the base template and
// the palette. It is a pure function of its two inputs: identical documents
// always produce an identical artifact.
func GenerateTheme(base *Base, palette *Palette) *Artifact {
	themes := make([]Variant, 0, len(VariantOrder))
	for _, id := range VariantOrder {
		themes = append(themes, generateVariant(base, palette, id))
	}

	return &Artifact{
		Schema: base.Schema,
		Name:   base.Name,
		Author: base.Author,
		Themes: themes,
	}
}

// generateVariant produces one variant: the flattened colour table feeds the
// explicit style keys, the resolved UI and terminal templates, the syntax
// token map, and the player list.
func generateVariant(base *Base, palette *Palette, variant string) Variant {
	colours := VariantColours(palette, variant)
	config := base.Variants[variant]

	style := map[string]any{
		"background":                    colours["background.deep"],
		"foreground":                    colours["foreground.primary"],
		"accent":                        colours["syntax.type"],
		"border":                        colours["border.default"],
		"border.focused":                colours["border.focused"],
		"elevated_surface.background":   colours["background.surface"],
		"surface.background":            colours["background.surface"],
		"element.background":            colours["background.surface"],
		"element.hover":                 colours["background.elevated"],
		"element.active":                colours["background.active"],
		"element.selected":              colours["background.active"],
		"text":                          colours["foreground.primary"],
		"editor.background":             colours["background.surface"],
		"editor.active_line.background": colours["background.elevated"],
		"editor.line_number":            colours["foreground.primary"] + config.LineNumberAlpha,
	}

	if ui, ok := ResolveValue(base.UI, colours).(map[string]any); ok {
		for k, v := range ui {
			style[k] = v
		}
	}

	for k, v := range base.Terminal {
		style["terminal."+k] = ResolveValue(v, colours)
	}

	style["players"] = generatePlayers(palette)
	style["syntax"] = generateSyntax(base, colours)

	return Variant{
		Name:       config.Name,
		Appearance: "dark",
		Style:      style,
	}
}

// generatePlayers expands each palette player colour into its cursor,
// background, and translucent selection triple.
func generatePlayers(palette *Palette) []Player {
	players := make([]Player, 0, len(palette.Players))
	for _, c := range palette.Players {
		players = append(players, Player{
			Cursor:     c,
			Background: c,
			Selection:  c + selectionAlpha,
		})
	}
	return players
}

// generateSyntax assembles the syntax token map from the declarative
// colour-group and style-group tables, then lets special-case tokens with
// their own literal templates override the table-driven entries.
func generateSyntax(base *Base, colours map[string]string) map[string]any {
	tokenColours := tokenGroups(base.SyntaxColors)
	tokenStyles := tokenGroups(base.SyntaxStyles)

	tokens := make(map[string]struct{}, len(tokenColours)+len(tokenStyles))
	for t := range tokenColours {
		tokens[t] = struct{}{}
	}
	for t := range tokenStyles {
		tokens[t] = struct{}{}
	}

	ordered := make([]string, 0, len(tokens))
	for t := range tokens {
		ordered = append(ordered, t)
	}
	sort.Strings(ordered)

	syntax := make(map[string]any, len(ordered)+len(base.SyntaxSpecial))
	for _, token := range ordered {
		entry := TokenStyle{Colour: tokenColour(token, tokenColours, colours)}
		if style, ok := tokenStyles[token]; ok {
			entry.FontStyle = &style
			if style == "bold" {
				weight := boldWeight
				entry.FontWeight = &weight
			}
		}
		syntax[token] = entry
	}

	for key, template := range base.SyntaxSpecial {
		if strings.HasPrefix(key, MetadataPrefix) {
			continue
		}
		syntax[key] = map[string]any{"color": ResolveTemplate(template, colours)}
	}

	return syntax
}

// tokenColour looks up a token's colour via its declared role. The
// "foreground" role maps onto the primary foreground; everything else reads
// from the syntax group, with undeclared tokens falling back to the default
// role.
func tokenColour(token string, tokenColours, colours map[string]string) string {
	role, ok := tokenColours[token]
	if role == "foreground" {
		return colours["foreground.primary"]
	}
	if !ok {
		role = defaultRole
	}
	return colours["syntax."+role]
}

// tokenGroups inverts a group table ({role: [token, ...]}) into a flat
// token-to-role map. Metadata keys and non-list values are skipped.
func tokenGroups(groups map[string]any) map[string]string {
	out := make(map[string]string)
	for key, raw := range groups {
		if strings.HasPrefix(key, MetadataPrefix) {
			continue
		}
		list, ok := raw.([]any)
		if !ok {
			continue
		}
		for _, item := range list {
			if token, ok := item.(string); ok {
				out[token] = key
			}
		}
	}
	return out
}
