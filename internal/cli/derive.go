package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tonemill/tonemill/internal/colour"
	"github.com/tonemill/tonemill/internal/document"
	"github.com/tonemill/tonemill/internal/theme"
)

// newDeriveCmd builds the derive command.
func newDeriveCmd() *cobra.Command {
	var apply bool

	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Preview programmatically derived variant colours",
		Long: `Show, for every syntax token, the colour the variant policy would derive
against each variant background, next to the hand-maintained override from
the palette. With --apply the derived colours replace the overrides in the
palette document.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			palette, err := document.LoadPalette(palettePath)
			if err != nil {
				return err
			}

			tokens := syntaxTokens(palette)
			variants := theme.VariantOrder[1:]

			cmd.Println("Derived vs Manual Colors (WCAG contrast in parentheses)")
			cmd.Println()

			table := NewTable([]string{"Token", "Variant", "Manual", "Derived", "Diff", "Contrast"})
			for _, token := range tokens {
				baseColour := palette.Syntax[token]
				for _, variant := range variants {
					bg := variantBackground(palette, variant)
					derived := colour.DeriveVariantColor(baseColour, bg, variant)

					manual := baseColour
					if override, ok := palette.Variants[variant]["syntax."+token]; ok {
						manual = override
					}

					diff := "same"
					if !strings.EqualFold(manual, derived) {
						diff = "DIFF"
					}

					table.AddRow([]string{
						token,
						variant,
						manual,
						derived,
						diff,
						fmt.Sprintf("%.1f/%.1f",
							colour.HexContrastRatio(manual, bg),
							colour.HexContrastRatio(derived, bg)),
					})
				}
			}
			cmd.Print(table.Render())

			if !apply {
				cmd.Println()
				cmd.Println("Use '--apply' to update the palette with derived colors")
				return nil
			}

			cmd.Println()
			cmd.Println("Applying derived colors...")
			for _, variant := range variants {
				bg := variantBackground(palette, variant)
				if palette.Variants[variant] == nil {
					if palette.Variants == nil {
						palette.Variants = make(map[string]map[string]string)
					}
					palette.Variants[variant] = make(map[string]string)
				}
				for _, token := range tokens {
					palette.Variants[variant]["syntax."+token] = colour.DeriveVariantColor(palette.Syntax[token], bg, variant)
				}
			}

			if err := document.WriteJSON(palettePath, palette); err != nil {
				return err
			}
			cmd.Printf("Updated %s\n", palettePath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&apply, "apply", false, "write derived colours back into the palette document")

	return cmd
}

// syntaxTokens returns the palette's syntax roles in sorted order, without
// metadata keys.
func syntaxTokens(palette *theme.Palette) []string {
	tokens := make([]string, 0, len(palette.Syntax))
	for k := range palette.Syntax {
		if strings.HasPrefix(k, theme.MetadataPrefix) {
			continue
		}
		tokens = append(tokens, k)
	}
	sort.Strings(tokens)
	return tokens
}

// variantBackground picks the surface background the variant's derived
// colours are checked against, preferring the variant override.
func variantBackground(palette *theme.Palette, variant string) string {
	if bg, ok := palette.Variants[variant]["background.surface"]; ok {
		return bg
	}
	return palette.Base.Background["surface"]
}
