package cli

import (
	"github.com/spf13/cobra"

	"github.com/tonemill/tonemill/internal/document"
	"github.com/tonemill/tonemill/internal/theme"
)

// newGenerateCmd builds the generate command.
func newGenerateCmd() *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Build the theme artifact from the palette and base template",
		Long: `Build the theme artifact from the palette and base template documents.

Each variant gets its own flattened colour table (base colours plus variant
overrides), the UI and terminal templates are resolved against it, and the
syntax token map is assembled from the declarative token-group tables.

Examples:
  # Regenerate the artifact in place
  tonemill generate

  # Generate from explicit documents to an explicit path
  tonemill generate --palette palette.json --base src/base.json -o themes/out.json`,
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

			artifact := theme.GenerateTheme(base, palette)
			log.Debug("theme generated",
				"variants", len(artifact.Themes),
				"players", len(palette.Players))

			out := outputPath
			if out == "" {
				out = themePath
			}
			if err := document.WriteJSON(out, artifact); err != nil {
				return err
			}

			cmd.Printf("Generated %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the artifact to this path (default: the --theme path)")

	return cmd
}
