package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tonemill/tonemill/internal/document"
	"github.com/tonemill/tonemill/internal/theme"
)

// newCheckCmd builds the check command.
func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the theme artifact matches its source documents",
		Long: `Regenerate the theme from the palette and base template and compare it
byte-for-byte against the artifact on disk, over canonical key-sorted JSON.
A mismatch means the artifact has drifted from its source and needs
regenerating.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println("Checking theme matches source...")
			cmd.Println()

			current, err := document.LoadTheme(themePath)
			if err != nil {
				return err
			}
			base, err := document.LoadBase(basePath)
			if err != nil {
				return err
			}
			palette, err := document.LoadPalette(palettePath)
			if err != nil {
				return err
			}

			currentBytes, err := theme.Canonical(current)
			if err != nil {
				return err
			}
			generatedBytes, err := theme.Canonical(theme.GenerateTheme(base, palette))
			if err != nil {
				return err
			}

			offset := theme.FirstDiff(currentBytes, generatedBytes)
			if offset == -1 {
				cmd.Println("OK: Theme matches source")
				return nil
			}

			log.Debug("drift detected",
				"offset", offset,
				"current_len", len(currentBytes),
				"generated_len", len(generatedBytes))
			return fmt.Errorf("theme differs from source at position %d; run 'tonemill generate' to regenerate", offset)
		},
	}
}
