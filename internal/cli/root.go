// Package cli provides the command-line interface for tonemill.
package cli

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/tonemill/tonemill/internal/version"
)

var (
	// Document path flags shared by all commands.
	palettePath string
	basePath    string
	themePath   string
	verbose     bool

	log = hclog.New(&hclog.LoggerOptions{
		Name:   "tonemill",
		Level:  hclog.Info,
		Output: os.Stderr,
	})
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tonemill",
		Short: "Derive and validate multi-variant colour themes",
		Long: `Tonemill builds a multi-variant colour theme from a single source-of-truth
palette and a base template, keeping every variant structurally identical and
WCAG-compliant.

The palette holds the colours, the base template holds the structure; generate
expands them into the theme artifact, and validate checks the result against
structural, colour-format, contrast, and consistency rules.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(hclog.Debug)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&palettePath, "palette", "palette.json", "path to the palette document (JSON or YAML)")
	rootCmd.PersistentFlags().StringVar(&basePath, "base", filepath.Join("src", "base.json"), "path to the base template document (JSON or YAML)")
	rootCmd.PersistentFlags().StringVar(&themePath, "theme", filepath.Join("themes", "synthwave84.json"), "path to the generated theme artifact")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// cobra's Print helpers default to stderr; command output belongs on
	// stdout so it can be piped.
	rootCmd.SetOut(os.Stdout)

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newDeriveCmd())
	rootCmd.AddCommand(newCoverageCmd())
	rootCmd.AddCommand(newPreviewCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// newVersionCmd builds the version command.
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Println(version.String())
		},
	}
}
