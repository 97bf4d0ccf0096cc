package cli

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/tonemill/tonemill/internal/document"
	"github.com/tonemill/tonemill/internal/preview"
	"github.com/tonemill/tonemill/internal/theme"
)

// newPreviewCmd builds the preview command.
func newPreviewCmd() *cobra.Command {
	var (
		variantName string
		outputPath  string
		cellSize    int
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render a variant's colours as a swatch image",
		Long: `Generate the theme from its source documents and render one variant's
colours as a PNG swatch strip. Translucent colours are composited over the
variant background.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := document.LoadBase(basePath)
			if err != nil {
				return err
			}
			palette, err := document.LoadPalette(palettePath)
			if err != nil {
				return err
			}

			img, err := preview.Render(theme.GenerateTheme(base, palette), variantName, cellSize)
			if err != nil {
				return err
			}

			f, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("failed to create preview file: %w", err)
			}
			defer f.Close()

			if err := png.Encode(f, img); err != nil {
				return fmt.Errorf("failed to encode preview: %w", err)
			}

			log.Debug("preview rendered", "variant", variantName, "cell_size", cellSize)
			cmd.Printf("Wrote %s\n", outputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&variantName, "variant", "", "variant display name (default: first variant)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "theme-preview.png", "path for the rendered PNG")
	cmd.Flags().IntVar(&cellSize, "cell-size", preview.DefaultCellSize, "swatch cell edge length in pixels")

	return cmd
}
